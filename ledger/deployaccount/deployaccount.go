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

package deployaccount

import (
	"encoding/json"

	"github.com/NethermindEth/juno/core/felt"
	"github.com/blinklabs-io/gostarknet/cbor"
	"github.com/blinklabs-io/gostarknet/ledger/common"
	"github.com/holiman/uint256"
)

const (
	TxTypeDeployAccount = common.TxTypeDeployAccount
)

// DeployAccountTransaction deploys an account contract that pays for its own deployment
type DeployAccountTransaction struct {
	cbor.DecodeStoreCbor
	ClassHash           *felt.Felt
	ContractAddressSalt *felt.Felt
	ConstructorCalldata []*felt.Felt
	MaxFee              *uint256.Int
	Nonce               uint64
}

func (DeployAccountTransaction) Type() common.TxType {
	return TxTypeDeployAccount
}

// ContractAddress returns the address of the account being deployed
func (tx *DeployAccountTransaction) ContractAddress(h common.Hasher) *felt.Felt {
	return common.CalculateContractAddress(
		h,
		tx.ContractAddressSalt,
		tx.ClassHash,
		tx.ConstructorCalldata,
	)
}

func (tx *DeployAccountTransaction) Preimage(
	h common.Hasher,
	ctx common.HashContext,
) []*felt.Felt {
	return tx.PreimageWithAddress(h, ctx, tx.ContractAddress(h))
}

// PreimageWithAddress builds the outer hash input for an already derived contract address
func (tx *DeployAccountTransaction) PreimageWithAddress(
	h common.Hasher,
	ctx common.HashContext,
	contractAddress *felt.Felt,
) []*felt.Felt {
	calldata := make([]*felt.Felt, 0, len(tx.ConstructorCalldata)+2)
	calldata = append(calldata, tx.ClassHash, tx.ContractAddressSalt)
	calldata = append(calldata, tx.ConstructorCalldata...)
	return []*felt.Felt{
		common.DeployAccountPrefixFelt(),
		common.TxVersion(1, ctx.IsQuery),
		contractAddress,
		new(felt.Felt),
		common.HashCalldata(h, calldata),
		common.FeltFromUint256(tx.MaxFee),
		ctx.ChainId,
		common.FeltFromUint64(tx.Nonce),
	}
}

func (tx *DeployAccountTransaction) Hash(
	h common.Hasher,
	ctx common.HashContext,
) *felt.Felt {
	return h.HashElements(tx.Preimage(h, ctx)...)
}

type deployAccountWire struct {
	cbor.StructAsArray
	TxType              string             `json:"type"    cbor:"-"`
	Version             common.FeltBytes   `json:"version" cbor:"-"`
	ClassHash           common.FeltBytes   `json:"class_hash"`
	ContractAddressSalt common.FeltBytes   `json:"contract_address_salt"`
	ConstructorCalldata []common.FeltBytes `json:"constructor_calldata"`
	MaxFee              common.FeltBytes   `json:"max_fee"`
	Nonce               common.FeltBytes   `json:"nonce"`
}

func (tx *DeployAccountTransaction) toWire() deployAccountWire {
	return deployAccountWire{
		TxType:              common.JsonTypeDeployAccount,
		Version:             common.VersionBytes(1),
		ClassHash:           common.NewFeltBytes(tx.ClassHash),
		ContractAddressSalt: common.NewFeltBytes(tx.ContractAddressSalt),
		ConstructorCalldata: common.FeltsToBytes(tx.ConstructorCalldata),
		MaxFee:              common.FeeBytes(tx.MaxFee),
		Nonce:               common.NonceBytes(tx.Nonce),
	}
}

func (tx *DeployAccountTransaction) fromWire(w deployAccountWire) error {
	var tmp DeployAccountTransaction
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
	if tmp.MaxFee, err = common.DecodeFeeField("max_fee", w.MaxFee); err != nil {
		return err
	}
	if tmp.Nonce, err = common.DecodeNonceField("nonce", w.Nonce); err != nil {
		return err
	}
	*tx = tmp
	return nil
}

func (tx *DeployAccountTransaction) MarshalCBOR() ([]byte, error) {
	return cbor.Encode(tx.toWire())
}

func (tx *DeployAccountTransaction) UnmarshalCBOR(cborData []byte) error {
	var w deployAccountWire
	if _, err := cbor.Decode(cborData, &w); err != nil {
		return err
	}
	if err := tx.fromWire(w); err != nil {
		return err
	}
	tx.SetCbor(cborData)
	return nil
}

func (tx *DeployAccountTransaction) MarshalJSON() ([]byte, error) {
	return json.Marshal(tx.toWire())
}

func (tx *DeployAccountTransaction) UnmarshalJSON(data []byte) error {
	var w deployAccountWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if err := common.CheckJsonHeader(w.TxType, w.Version, common.JsonTypeDeployAccount, 1); err != nil {
		return err
	}
	return tx.fromWire(w)
}

func NewDeployAccountTransactionFromCbor(
	data []byte,
) (*DeployAccountTransaction, error) {
	var tx DeployAccountTransaction
	if _, err := cbor.Decode(data, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}
