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

package deploy

import (
	"encoding/json"

	"github.com/NethermindEth/juno/core/felt"
	"github.com/blinklabs-io/gostarknet/cbor"
	"github.com/blinklabs-io/gostarknet/ledger/common"
)

const (
	TxTypeDeploy = common.TxTypeDeploy
)

// DeployTransaction deploys a contract directly. The transaction hash commits to the
// derived contract address rather than to the salt
type DeployTransaction struct {
	cbor.DecodeStoreCbor
	ClassHash           *felt.Felt
	ContractAddressSalt *felt.Felt
	ConstructorCalldata []*felt.Felt
}

func (DeployTransaction) Type() common.TxType {
	return TxTypeDeploy
}

// ContractAddress returns the address the contract is deployed to
func (tx *DeployTransaction) ContractAddress(h common.Hasher) *felt.Felt {
	return common.CalculateContractAddress(
		h,
		tx.ContractAddressSalt,
		tx.ClassHash,
		tx.ConstructorCalldata,
	)
}

func (tx *DeployTransaction) Preimage(
	h common.Hasher,
	ctx common.HashContext,
) []*felt.Felt {
	return tx.PreimageWithAddress(h, ctx, tx.ContractAddress(h))
}

// PreimageWithAddress builds the outer hash input for an already derived contract address
func (tx *DeployTransaction) PreimageWithAddress(
	h common.Hasher,
	ctx common.HashContext,
	contractAddress *felt.Felt,
) []*felt.Felt {
	calldataHash := common.HashCalldata(h, tx.ConstructorCalldata)
	if ctx.Policy.GeneralEra(ctx.Block) == common.EraLegacy {
		return []*felt.Felt{
			common.DeployPrefixFelt(),
			contractAddress,
			common.ConstructorSelector(),
			calldataHash,
			ctx.ChainId,
		}
	}
	return []*felt.Felt{
		common.DeployPrefixFelt(),
		common.FeltFromUint64(0),
		contractAddress,
		common.ConstructorSelector(),
		calldataHash,
		// Deploy transactions carry no fee
		new(felt.Felt),
		ctx.ChainId,
	}
}

func (tx *DeployTransaction) Hash(
	h common.Hasher,
	ctx common.HashContext,
) *felt.Felt {
	return h.HashElements(tx.Preimage(h, ctx)...)
}

type deployWire struct {
	cbor.StructAsArray
	TxType              string             `json:"type"    cbor:"-"`
	Version             common.FeltBytes   `json:"version" cbor:"-"`
	ClassHash           common.FeltBytes   `json:"class_hash"`
	ContractAddressSalt common.FeltBytes   `json:"contract_address_salt"`
	ConstructorCalldata []common.FeltBytes `json:"constructor_calldata"`
}

func (tx *DeployTransaction) toWire() deployWire {
	return deployWire{
		TxType:              common.JsonTypeDeploy,
		Version:             common.VersionBytes(0),
		ClassHash:           common.NewFeltBytes(tx.ClassHash),
		ContractAddressSalt: common.NewFeltBytes(tx.ContractAddressSalt),
		ConstructorCalldata: common.FeltsToBytes(tx.ConstructorCalldata),
	}
}

func (tx *DeployTransaction) fromWire(w deployWire) error {
	var tmp DeployTransaction
	var err error
	if tmp.ClassHash, err = common.DecodeFeltField("class_hash", w.ClassHash); err != nil {
		return err
	}
	if tmp.ContractAddressSalt, err = common.DecodeFeltField("contract_address_salt", w.ContractAddressSalt); err != nil {
		return err
	}
	if tmp.ConstructorCalldata, err = common.DecodeFeltSliceField("constructor_calldata", w.ConstructorCalldata); err != nil {
		return err
	}
	*tx = tmp
	return nil
}

func (tx *DeployTransaction) MarshalCBOR() ([]byte, error) {
	return cbor.Encode(tx.toWire())
}

func (tx *DeployTransaction) UnmarshalCBOR(cborData []byte) error {
	var w deployWire
	if _, err := cbor.Decode(cborData, &w); err != nil {
		return err
	}
	if err := tx.fromWire(w); err != nil {
		return err
	}
	tx.SetCbor(cborData)
	return nil
}

func (tx *DeployTransaction) MarshalJSON() ([]byte, error) {
	return json.Marshal(tx.toWire())
}

func (tx *DeployTransaction) UnmarshalJSON(data []byte) error {
	var w deployWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if err := common.CheckJsonHeader(w.TxType, w.Version, common.JsonTypeDeploy, 0); err != nil {
		return err
	}
	return tx.fromWire(w)
}

func NewDeployTransactionFromCbor(data []byte) (*DeployTransaction, error) {
	var tx DeployTransaction
	if _, err := cbor.Decode(data, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}
