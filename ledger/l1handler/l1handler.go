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

package l1handler

import (
	"encoding/json"

	"github.com/NethermindEth/juno/core/felt"
	"github.com/blinklabs-io/gostarknet/cbor"
	"github.com/blinklabs-io/gostarknet/ledger/common"
)

const (
	TxTypeL1Handler = common.TxTypeL1Handler
)

// L1HandlerTransaction executes an L1 -> L2 message. It pays no L2 fee
type L1HandlerTransaction struct {
	cbor.DecodeStoreCbor
	ContractAddress    *felt.Felt
	EntryPointSelector *felt.Felt
	Calldata           []*felt.Felt
	Nonce              uint64
}

func (L1HandlerTransaction) Type() common.TxType {
	return TxTypeL1Handler
}

// Preimage returns the outer hash input. Historical L1 handler transactions were hashed
// as invoke transactions, first without and later with a nonce
func (tx *L1HandlerTransaction) Preimage(
	h common.Hasher,
	ctx common.HashContext,
) []*felt.Felt {
	calldataHash := common.HashCalldata(h, tx.Calldata)
	switch ctx.Policy.L1HandlerEra(ctx.Block) {
	case common.EraPreLegacy:
		return []*felt.Felt{
			common.InvokePrefixFelt(),
			tx.ContractAddress,
			tx.EntryPointSelector,
			calldataHash,
			ctx.ChainId,
		}
	case common.EraLegacy:
		return []*felt.Felt{
			common.InvokePrefixFelt(),
			tx.ContractAddress,
			tx.EntryPointSelector,
			calldataHash,
			ctx.ChainId,
			common.FeltFromUint64(tx.Nonce),
		}
	default:
		return []*felt.Felt{
			common.L1HandlerPrefixFelt(),
			common.FeltFromUint64(0),
			tx.ContractAddress,
			tx.EntryPointSelector,
			calldataHash,
			// Max fee is always zero
			new(felt.Felt),
			ctx.ChainId,
			common.FeltFromUint64(tx.Nonce),
		}
	}
}

func (tx *L1HandlerTransaction) Hash(
	h common.Hasher,
	ctx common.HashContext,
) *felt.Felt {
	return h.HashElements(tx.Preimage(h, ctx)...)
}

type l1HandlerWire struct {
	cbor.StructAsArray
	TxType             string             `json:"type"    cbor:"-"`
	Version            common.FeltBytes   `json:"version" cbor:"-"`
	ContractAddress    common.FeltBytes   `json:"contract_address"`
	EntryPointSelector common.FeltBytes   `json:"entry_point_selector"`
	Calldata           []common.FeltBytes `json:"calldata"`
	Nonce              common.FeltBytes   `json:"nonce"`
}

func (tx *L1HandlerTransaction) toWire() l1HandlerWire {
	return l1HandlerWire{
		TxType:             common.JsonTypeL1Handler,
		Version:            common.VersionBytes(0),
		ContractAddress:    common.NewFeltBytes(tx.ContractAddress),
		EntryPointSelector: common.NewFeltBytes(tx.EntryPointSelector),
		Calldata:           common.FeltsToBytes(tx.Calldata),
		Nonce:              common.NonceBytes(tx.Nonce),
	}
}

func (tx *L1HandlerTransaction) fromWire(w l1HandlerWire) error {
	var tmp L1HandlerTransaction
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
	if tmp.Nonce, err = common.DecodeNonceField("nonce", w.Nonce); err != nil {
		return err
	}
	*tx = tmp
	return nil
}

func (tx *L1HandlerTransaction) MarshalCBOR() ([]byte, error) {
	return cbor.Encode(tx.toWire())
}

func (tx *L1HandlerTransaction) UnmarshalCBOR(cborData []byte) error {
	var w l1HandlerWire
	if _, err := cbor.Decode(cborData, &w); err != nil {
		return err
	}
	if err := tx.fromWire(w); err != nil {
		return err
	}
	tx.SetCbor(cborData)
	return nil
}

func (tx *L1HandlerTransaction) MarshalJSON() ([]byte, error) {
	return json.Marshal(tx.toWire())
}

func (tx *L1HandlerTransaction) UnmarshalJSON(data []byte) error {
	var w l1HandlerWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if err := common.CheckJsonHeader(w.TxType, w.Version, common.JsonTypeL1Handler, 0); err != nil {
		return err
	}
	return tx.fromWire(w)
}

func NewL1HandlerTransactionFromCbor(data []byte) (*L1HandlerTransaction, error) {
	var tx L1HandlerTransaction
	if _, err := cbor.Decode(data, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}
