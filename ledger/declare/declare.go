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

package declare

import (
	"encoding/json"

	"github.com/NethermindEth/juno/core/felt"
	"github.com/blinklabs-io/gostarknet/cbor"
	"github.com/blinklabs-io/gostarknet/ledger/common"
	"github.com/holiman/uint256"
)

const (
	TxTypeDeclareV0 = common.TxTypeDeclareV0
	TxTypeDeclareV1 = common.TxTypeDeclareV1
	TxTypeDeclareV2 = common.TxTypeDeclareV2
)

// DeclareTransactionV0 declares a Cairo 0 class without a nonce
type DeclareTransactionV0 struct {
	cbor.DecodeStoreCbor
	SenderAddress *felt.Felt
	MaxFee        *uint256.Int
	ClassHash     *felt.Felt
}

func (DeclareTransactionV0) Type() common.TxType {
	return TxTypeDeclareV0
}

// Preimage returns the outer hash input. The calldata slot holds the hash of an empty
// list to keep the layout aligned with later versions, and the class hash takes the
// place of the nonce
func (tx *DeclareTransactionV0) Preimage(
	h common.Hasher,
	ctx common.HashContext,
) []*felt.Felt {
	return []*felt.Felt{
		common.DeclarePrefixFelt(),
		common.FeltFromUint64(0),
		tx.SenderAddress,
		new(felt.Felt),
		common.HashCalldata(h, nil),
		common.FeltFromUint256(tx.MaxFee),
		ctx.ChainId,
		tx.ClassHash,
	}
}

func (tx *DeclareTransactionV0) Hash(
	h common.Hasher,
	ctx common.HashContext,
) *felt.Felt {
	return h.HashElements(tx.Preimage(h, ctx)...)
}

// DeclareTransactionV1 declares a Cairo 0 class
type DeclareTransactionV1 struct {
	cbor.DecodeStoreCbor
	SenderAddress *felt.Felt
	MaxFee        *uint256.Int
	Nonce         uint64
	ClassHash     *felt.Felt
}

func (DeclareTransactionV1) Type() common.TxType {
	return TxTypeDeclareV1
}

func (tx *DeclareTransactionV1) Preimage(
	h common.Hasher,
	ctx common.HashContext,
) []*felt.Felt {
	return []*felt.Felt{
		common.DeclarePrefixFelt(),
		common.FeltFromUint64(1),
		tx.SenderAddress,
		new(felt.Felt),
		common.HashCalldata(h, []*felt.Felt{tx.ClassHash}),
		common.FeltFromUint256(tx.MaxFee),
		ctx.ChainId,
		common.FeltFromUint64(tx.Nonce),
	}
}

func (tx *DeclareTransactionV1) Hash(
	h common.Hasher,
	ctx common.HashContext,
) *felt.Felt {
	return h.HashElements(tx.Preimage(h, ctx)...)
}

// DeclareTransactionV2 declares a Sierra class together with its compiled class hash
type DeclareTransactionV2 struct {
	cbor.DecodeStoreCbor
	SenderAddress     *felt.Felt
	MaxFee            *uint256.Int
	Nonce             uint64
	ClassHash         *felt.Felt
	CompiledClassHash *felt.Felt
}

func (DeclareTransactionV2) Type() common.TxType {
	return TxTypeDeclareV2
}

func (tx *DeclareTransactionV2) Preimage(
	h common.Hasher,
	ctx common.HashContext,
) []*felt.Felt {
	return []*felt.Felt{
		common.DeclarePrefixFelt(),
		common.TxVersion(2, ctx.IsQuery),
		tx.SenderAddress,
		new(felt.Felt),
		common.HashCalldata(h, []*felt.Felt{tx.ClassHash}),
		common.FeltFromUint256(tx.MaxFee),
		ctx.ChainId,
		common.FeltFromUint64(tx.Nonce),
		tx.CompiledClassHash,
	}
}

func (tx *DeclareTransactionV2) Hash(
	h common.Hasher,
	ctx common.HashContext,
) *felt.Felt {
	return h.HashElements(tx.Preimage(h, ctx)...)
}

// All declare versions share one wire layout. Fields that a version does not use are
// zero on the wire and ignored on decode
type declareWire struct {
	cbor.StructAsArray
	TxType            string           `json:"type"    cbor:"-"`
	Version           common.FeltBytes `json:"version" cbor:"-"`
	SenderAddress     common.FeltBytes `json:"sender_address"`
	MaxFee            common.FeltBytes `json:"max_fee"`
	Nonce             common.FeltBytes `json:"nonce"`
	ClassHash         common.FeltBytes `json:"class_hash"`
	CompiledClassHash common.FeltBytes `json:"compiled_class_hash"`
}

func newDeclareWire(version uint64) declareWire {
	return declareWire{
		TxType:  common.JsonTypeDeclare,
		Version: common.VersionBytes(version),
	}
}

type declareFields struct {
	senderAddress     *felt.Felt
	maxFee            *uint256.Int
	nonce             uint64
	classHash         *felt.Felt
	compiledClassHash *felt.Felt
}

func (w declareWire) decode(version uint64) (declareFields, error) {
	var ret declareFields
	var err error
	if ret.senderAddress, err = common.DecodeFeltField("sender_address", w.SenderAddress); err != nil {
		return ret, err
	}
	if ret.maxFee, err = common.DecodeFeeField("max_fee", w.MaxFee); err != nil {
		return ret, err
	}
	if version > 0 {
		if ret.nonce, err = common.DecodeNonceField("nonce", w.Nonce); err != nil {
			return ret, err
		}
	}
	if ret.classHash, err = common.DecodeFeltField("class_hash", w.ClassHash); err != nil {
		return ret, err
	}
	if version > 1 {
		if ret.compiledClassHash, err = common.DecodeFeltField("compiled_class_hash", w.CompiledClassHash); err != nil {
			return ret, err
		}
	}
	return ret, nil
}

func decodeCborWire(cborData []byte) (declareWire, error) {
	var w declareWire
	_, err := cbor.Decode(cborData, &w)
	return w, err
}

func decodeJsonWire(data []byte, version uint64) (declareWire, error) {
	var w declareWire
	if err := json.Unmarshal(data, &w); err != nil {
		return w, err
	}
	if err := common.CheckJsonHeader(w.TxType, w.Version, common.JsonTypeDeclare, version); err != nil {
		return w, err
	}
	return w, nil
}

func (tx *DeclareTransactionV0) toWire() declareWire {
	w := newDeclareWire(0)
	w.SenderAddress = common.NewFeltBytes(tx.SenderAddress)
	w.MaxFee = common.FeeBytes(tx.MaxFee)
	w.ClassHash = common.NewFeltBytes(tx.ClassHash)
	return w
}

func (tx *DeclareTransactionV0) fromWire(w declareWire) error {
	fields, err := w.decode(0)
	if err != nil {
		return err
	}
	*tx = DeclareTransactionV0{
		SenderAddress: fields.senderAddress,
		MaxFee:        fields.maxFee,
		ClassHash:     fields.classHash,
	}
	return nil
}

func (tx *DeclareTransactionV0) MarshalCBOR() ([]byte, error) {
	return cbor.Encode(tx.toWire())
}

func (tx *DeclareTransactionV0) UnmarshalCBOR(cborData []byte) error {
	w, err := decodeCborWire(cborData)
	if err != nil {
		return err
	}
	if err := tx.fromWire(w); err != nil {
		return err
	}
	tx.SetCbor(cborData)
	return nil
}

func (tx *DeclareTransactionV0) MarshalJSON() ([]byte, error) {
	return json.Marshal(tx.toWire())
}

func (tx *DeclareTransactionV0) UnmarshalJSON(data []byte) error {
	w, err := decodeJsonWire(data, 0)
	if err != nil {
		return err
	}
	return tx.fromWire(w)
}

func (tx *DeclareTransactionV1) toWire() declareWire {
	w := newDeclareWire(1)
	w.SenderAddress = common.NewFeltBytes(tx.SenderAddress)
	w.MaxFee = common.FeeBytes(tx.MaxFee)
	w.Nonce = common.NonceBytes(tx.Nonce)
	w.ClassHash = common.NewFeltBytes(tx.ClassHash)
	return w
}

func (tx *DeclareTransactionV1) fromWire(w declareWire) error {
	fields, err := w.decode(1)
	if err != nil {
		return err
	}
	*tx = DeclareTransactionV1{
		SenderAddress: fields.senderAddress,
		MaxFee:        fields.maxFee,
		Nonce:         fields.nonce,
		ClassHash:     fields.classHash,
	}
	return nil
}

func (tx *DeclareTransactionV1) MarshalCBOR() ([]byte, error) {
	return cbor.Encode(tx.toWire())
}

func (tx *DeclareTransactionV1) UnmarshalCBOR(cborData []byte) error {
	w, err := decodeCborWire(cborData)
	if err != nil {
		return err
	}
	if err := tx.fromWire(w); err != nil {
		return err
	}
	tx.SetCbor(cborData)
	return nil
}

func (tx *DeclareTransactionV1) MarshalJSON() ([]byte, error) {
	return json.Marshal(tx.toWire())
}

func (tx *DeclareTransactionV1) UnmarshalJSON(data []byte) error {
	w, err := decodeJsonWire(data, 1)
	if err != nil {
		return err
	}
	return tx.fromWire(w)
}

func (tx *DeclareTransactionV2) toWire() declareWire {
	w := newDeclareWire(2)
	w.SenderAddress = common.NewFeltBytes(tx.SenderAddress)
	w.MaxFee = common.FeeBytes(tx.MaxFee)
	w.Nonce = common.NonceBytes(tx.Nonce)
	w.ClassHash = common.NewFeltBytes(tx.ClassHash)
	w.CompiledClassHash = common.NewFeltBytes(tx.CompiledClassHash)
	return w
}

func (tx *DeclareTransactionV2) fromWire(w declareWire) error {
	fields, err := w.decode(2)
	if err != nil {
		return err
	}
	*tx = DeclareTransactionV2{
		SenderAddress:     fields.senderAddress,
		MaxFee:            fields.maxFee,
		Nonce:             fields.nonce,
		ClassHash:         fields.classHash,
		CompiledClassHash: fields.compiledClassHash,
	}
	return nil
}

func (tx *DeclareTransactionV2) MarshalCBOR() ([]byte, error) {
	return cbor.Encode(tx.toWire())
}

func (tx *DeclareTransactionV2) UnmarshalCBOR(cborData []byte) error {
	w, err := decodeCborWire(cborData)
	if err != nil {
		return err
	}
	if err := tx.fromWire(w); err != nil {
		return err
	}
	tx.SetCbor(cborData)
	return nil
}

func (tx *DeclareTransactionV2) MarshalJSON() ([]byte, error) {
	return json.Marshal(tx.toWire())
}

func (tx *DeclareTransactionV2) UnmarshalJSON(data []byte) error {
	w, err := decodeJsonWire(data, 2)
	if err != nil {
		return err
	}
	return tx.fromWire(w)
}

func NewDeclareTransactionV0FromCbor(data []byte) (*DeclareTransactionV0, error) {
	var tx DeclareTransactionV0
	if _, err := cbor.Decode(data, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

func NewDeclareTransactionV1FromCbor(data []byte) (*DeclareTransactionV1, error) {
	var tx DeclareTransactionV1
	if _, err := cbor.Decode(data, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

func NewDeclareTransactionV2FromCbor(data []byte) (*DeclareTransactionV2, error) {
	var tx DeclareTransactionV2
	if _, err := cbor.Decode(data, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}
