// Copyright 2025 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package common

import (
	"github.com/NethermindEth/juno/core/felt"
)

type TxType uint

type Transaction interface {
	Type() TxType
	// Preimage returns the exact sequence of elements fed to the outer hash call
	Preimage(h Hasher, ctx HashContext) []*felt.Felt
	Hash(h Hasher, ctx HashContext) *felt.Felt
}

// HashContext holds the per-call inputs of a transaction hash besides the transaction
// itself
type HashContext struct {
	ChainId *felt.Felt
	IsQuery bool
	Block   BlockNumber
	Policy  EraPolicy
}

// NewHashContext returns a context using the default era policy
func NewHashContext(
	chainId *felt.Felt,
	isQuery bool,
	block BlockNumber,
) HashContext {
	return HashContext{
		ChainId: chainId,
		IsQuery: isQuery,
		Block:   block,
		Policy:  DefaultEraPolicy(),
	}
}

// HashCalldata hashes a calldata sequence as a single sub-call of the hash backend
func HashCalldata(h Hasher, calldata []*felt.Felt) *felt.Felt {
	return h.HashElements(calldata...)
}

const (
	TxTypeInvokeV0 TxType = iota
	TxTypeInvokeV1
	TxTypeDeclareV0
	TxTypeDeclareV1
	TxTypeDeclareV2
	TxTypeDeployAccount
	TxTypeDeploy
	TxTypeL1Handler
)

var txTypeNames = map[TxType]string{
	TxTypeInvokeV0:      "INVOKE_V0",
	TxTypeInvokeV1:      "INVOKE_V1",
	TxTypeDeclareV0:     "DECLARE_V0",
	TxTypeDeclareV1:     "DECLARE_V1",
	TxTypeDeclareV2:     "DECLARE_V2",
	TxTypeDeployAccount: "DEPLOY_ACCOUNT",
	TxTypeDeploy:        "DEPLOY",
	TxTypeL1Handler:     "L1_HANDLER",
}

func (t TxType) String() string {
	if name, ok := txTypeNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}
