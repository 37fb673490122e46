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

package invoke

import (
	"encoding/json"

	"github.com/NethermindEth/juno/core/felt"
	"github.com/blinklabs-io/gostarknet/cbor"
	"github.com/blinklabs-io/gostarknet/ledger/common"
	"github.com/holiman/uint256"
)

const (
	TxTypeInvokeV0 = common.TxTypeInvokeV0
	TxTypeInvokeV1 = common.TxTypeInvokeV1
)

// InvokeTransactionV0 calls an entry point of a contract directly, without an account
type InvokeTransactionV0 struct {
	cbor.DecodeStoreCbor
	ContractAddress    *felt.Felt
	EntryPointSelector *felt.Felt
	Calldata           []*felt.Felt
	MaxFee             *uint256.Int
}

func (InvokeTransactionV0) Type() common.TxType {
	return TxTypeInvokeV0
}

// Preimage returns the outer hash input. Legacy transactions have neither a version slot
// nor a fee
func (tx *InvokeTransactionV0) Preimage(
	h common.Hasher,
	ctx common.HashContext,
) []*felt.Felt {
	calldataHash := common.HashCalldata(h, tx.Calldata)
	if ctx.Policy.GeneralEra(ctx.Block) == common.EraLegacy {
		return []*felt.Felt{
			common.InvokePrefixFelt(),
			tx.ContractAddress,
			tx.EntryPointSelector,
			calldataHash,
			ctx.ChainId,
		}
	}
	return []*felt.Felt{
		common.InvokePrefixFelt(),
		common.TxVersion(0, ctx.IsQuery),
		tx.ContractAddress,
		tx.EntryPointSelector,
		calldataHash,
		common.FeltFromUint256(tx.MaxFee),
		ctx.ChainId,
	}
}

func (tx *InvokeTransactionV0) Hash(
	h common.Hasher,
	ctx common.HashContext,
) *felt.Felt {
	return h.HashElements(tx.Preimage(h, ctx)...)
}

type invokeV0Wire struct {
	cbor.StructAsArray
	TxType             string             `json:"type"    cbor:"-"`
	Version            common.FeltBytes   `json:"version" cbor:"-"`
	ContractAddress    common.FeltBytes   `json:"contract_address"`
	EntryPointSelector common.FeltBytes   `json:"entry_point_selector"`
	Calldata           []common.FeltBytes `json:"calldata"`
	MaxFee             common.FeltBytes   `json:"max_fee"`
}

func (tx *InvokeTransactionV0) toWire() invokeV0Wire {
	return invokeV0Wire{
		TxType:             common.JsonTypeInvoke,
		Version:            common.VersionBytes(0),
		ContractAddress:    common.NewFeltBytes(tx.ContractAddress),
		EntryPointSelector: common.NewFeltBytes(tx.EntryPointSelector),
		Calldata:           common.FeltsToBytes(tx.Calldata),
		MaxFee:             common.FeeBytes(tx.MaxFee),
	}
}

func (tx *InvokeTransactionV0) fromWire(w invokeV0Wire) error {
	var tmp InvokeTransactionV0
	var err error
	if tmp.ContractAddress, err = common.DecodeFeltField("contract_address", w.ContractAddress); err != nil {
		return err
	}
	if tmp.EntryPointSelector, err = common.DecodeFeltField("entry_point_selector", w.EntryPointSelector); err != nil {
		return err
	}
	if tmp.Calldata, err = common.DecodeFeltSliceField("calldata", w.Calldata); err != nil {
		return err
	}
	if tmp.MaxFee, err = common.DecodeFeeField("max_fee", w.MaxFee); err != nil {
		return err
	}
	*tx = tmp
	return nil
}

func (tx *InvokeTransactionV0) MarshalCBOR() ([]byte, error) {
	return cbor.Encode(tx.toWire())
}

func (tx *InvokeTransactionV0) UnmarshalCBOR(cborData []byte) error {
	var w invokeV0Wire
	if _, err := cbor.Decode(cborData, &w); err != nil {
		return err
	}
	if err := tx.fromWire(w); err != nil {
		return err
	}
	tx.SetCbor(cborData)
	return nil
}

func (tx *InvokeTransactionV0) MarshalJSON() ([]byte, error) {
	return json.Marshal(tx.toWire())
}

func (tx *InvokeTransactionV0) UnmarshalJSON(data []byte) error {
	var w invokeV0Wire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if err := common.CheckJsonHeader(w.TxType, w.Version, common.JsonTypeInvoke, 0); err != nil {
		return err
	}
	return tx.fromWire(w)
}

// InvokeTransactionV1 calls the __execute__ entry point of an account contract
type InvokeTransactionV1 struct {
	cbor.DecodeStoreCbor
	SenderAddress *felt.Felt
	Calldata      []*felt.Felt
	MaxFee        *uint256.Int
	Nonce         uint64
}

func (InvokeTransactionV1) Type() common.TxType {
	return TxTypeInvokeV1
}

func (tx *InvokeTransactionV1) Preimage(
	h common.Hasher,
	ctx common.HashContext,
) []*felt.Felt {
	return []*felt.Felt{
		common.InvokePrefixFelt(),
		common.TxVersion(1, ctx.IsQuery),
		tx.SenderAddress,
		// Entry point selector is implied by the account
		new(felt.Felt),
		common.HashCalldata(h, tx.Calldata),
		common.FeltFromUint256(tx.MaxFee),
		ctx.ChainId,
		common.FeltFromUint64(tx.Nonce),
	}
}

func (tx *InvokeTransactionV1) Hash(
	h common.Hasher,
	ctx common.HashContext,
) *felt.Felt {
	return h.HashElements(tx.Preimage(h, ctx)...)
}

type invokeV1Wire struct {
	cbor.StructAsArray
	TxType        string             `json:"type"    cbor:"-"`
	Version       common.FeltBytes   `json:"version" cbor:"-"`
	SenderAddress common.FeltBytes   `json:"sender_address"`
	Calldata      []common.FeltBytes `json:"calldata"`
	MaxFee        common.FeltBytes   `json:"max_fee"`
	Nonce         common.FeltBytes   `json:"nonce"`
}

func (tx *InvokeTransactionV1) toWire() invokeV1Wire {
	return invokeV1Wire{
		TxType:        common.JsonTypeInvoke,
		Version:       common.VersionBytes(1),
		SenderAddress: common.NewFeltBytes(tx.SenderAddress),
		Calldata:      common.FeltsToBytes(tx.Calldata),
		MaxFee:        common.FeeBytes(tx.MaxFee),
		Nonce:         common.NonceBytes(tx.Nonce),
	}
}

func (tx *InvokeTransactionV1) fromWire(w invokeV1Wire) error {
	var tmp InvokeTransactionV1
	var err error
	if tmp.SenderAddress, err = common.DecodeFeltField("sender_address", w.SenderAddress); err != nil {
		return err
	}
	if tmp.Calldata, err = common.DecodeFeltSliceField("calldata", w.Calldata); err != nil {
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

func (tx *InvokeTransactionV1) MarshalCBOR() ([]byte, error) {
	return cbor.Encode(tx.toWire())
}

func (tx *InvokeTransactionV1) UnmarshalCBOR(cborData []byte) error {
	var w invokeV1Wire
	if _, err := cbor.Decode(cborData, &w); err != nil {
		return err
	}
	if err := tx.fromWire(w); err != nil {
		return err
	}
	tx.SetCbor(cborData)
	return nil
}

func (tx *InvokeTransactionV1) MarshalJSON() ([]byte, error) {
	return json.Marshal(tx.toWire())
}

func (tx *InvokeTransactionV1) UnmarshalJSON(data []byte) error {
	var w invokeV1Wire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if err := common.CheckJsonHeader(w.TxType, w.Version, common.JsonTypeInvoke, 1); err != nil {
		return err
	}
	return tx.fromWire(w)
}

func NewInvokeTransactionV0FromCbor(data []byte) (*InvokeTransactionV0, error) {
	var tx InvokeTransactionV0
	if _, err := cbor.Decode(data, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

func NewInvokeTransactionV1FromCbor(data []byte) (*InvokeTransactionV1, error) {
	var tx InvokeTransactionV1
	if _, err := cbor.Decode(data, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}
