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

package ledger

import (
	"github.com/blinklabs-io/gostarknet/ledger/common"
)

// Compatibility aliases
type (
	Transaction = common.Transaction
	TxType      = common.TxType
	Era         = common.Era
	EraPolicy   = common.EraPolicy
	BlockNumber = common.BlockNumber
	HashContext = common.HashContext
	Hasher      = common.Hasher
)

const (
	TxTypeInvokeV0      = common.TxTypeInvokeV0
	TxTypeInvokeV1      = common.TxTypeInvokeV1
	TxTypeDeclareV0     = common.TxTypeDeclareV0
	TxTypeDeclareV1     = common.TxTypeDeclareV1
	TxTypeDeclareV2     = common.TxTypeDeclareV2
	TxTypeDeployAccount = common.TxTypeDeployAccount
	TxTypeDeploy        = common.TxTypeDeploy
	TxTypeL1Handler     = common.TxTypeL1Handler

	EraCurrent   = common.EraCurrent
	EraLegacy    = common.EraLegacy
	EraPreLegacy = common.EraPreLegacy
)

var NoBlock = common.NoBlock

func AtBlock(number uint64) BlockNumber {
	return common.AtBlock(number)
}
