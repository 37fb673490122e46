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
	"encoding/json"
	"errors"
	"fmt"

	"github.com/blinklabs-io/gostarknet/cbor"
	"github.com/blinklabs-io/gostarknet/ledger/common"
	"github.com/blinklabs-io/gostarknet/ledger/declare"
	"github.com/blinklabs-io/gostarknet/ledger/deploy"
	"github.com/blinklabs-io/gostarknet/ledger/deployaccount"
	"github.com/blinklabs-io/gostarknet/ledger/invoke"
	"github.com/blinklabs-io/gostarknet/ledger/l1handler"
)

func NewTransactionFromCbor(txType TxType, data []byte) (Transaction, error) {
	switch txType {
	case TxTypeInvokeV0:
		return invoke.NewInvokeTransactionV0FromCbor(data)
	case TxTypeInvokeV1:
		return invoke.NewInvokeTransactionV1FromCbor(data)
	case TxTypeDeclareV0:
		return declare.NewDeclareTransactionV0FromCbor(data)
	case TxTypeDeclareV1:
		return declare.NewDeclareTransactionV1FromCbor(data)
	case TxTypeDeclareV2:
		return declare.NewDeclareTransactionV2FromCbor(data)
	case TxTypeDeployAccount:
		return deployaccount.NewDeployAccountTransactionFromCbor(data)
	case TxTypeDeploy:
		return deploy.NewDeployTransactionFromCbor(data)
	case TxTypeL1Handler:
		return l1handler.NewL1HandlerTransactionFromCbor(data)
	}
	return nil, fmt.Errorf("unknown transaction type: %d", txType)
}

// TransactionEnvelope is the CBOR list [type, body] used to carry a transaction of any
// kind
type TransactionEnvelope struct {
	cbor.StructAsArray
	Type TxType
	Body cbor.RawMessage
}

// Transaction decodes the envelope body
func (e *TransactionEnvelope) Transaction() (Transaction, error) {
	return NewTransactionFromCbor(e.Type, e.Body)
}

// TransactionCbor returns the CBOR body of a transaction. A transaction decoded from CBOR
// returns the bytes it was decoded from, so it must not be modified afterwards
func TransactionCbor(tx Transaction) ([]byte, error) {
	if stored, ok := tx.(cbor.DecodeStoreCborInterface); ok {
		if cborData := stored.Cbor(); cborData != nil {
			return cborData, nil
		}
	}
	return cbor.Encode(tx)
}

// EncodeTransaction wraps a transaction in an envelope and encodes it
func EncodeTransaction(tx Transaction) ([]byte, error) {
	body, err := TransactionCbor(tx)
	if err != nil {
		return nil, err
	}
	return cbor.Encode(
		&TransactionEnvelope{
			Type: tx.Type(),
			Body: body,
		},
	)
}

// DetermineTransactionType returns the type of an enveloped transaction without decoding
// its body
func DetermineTransactionType(data []byte) (TxType, error) {
	id, err := cbor.DecodeIdFromList(data)
	if err != nil {
		return 0, err
	}
	txType := TxType(id)
	if txType.String() == "UNKNOWN" {
		return 0, fmt.Errorf("unknown transaction type: %d", id)
	}
	return txType, nil
}

func NewTransactionFromEnvelope(data []byte) (Transaction, error) {
	var envelope TransactionEnvelope
	if _, err := cbor.Decode(data, &envelope); err != nil {
		return nil, fmt.Errorf("decode transaction envelope: %w", err)
	}
	return envelope.Transaction()
}

type jsonHeader struct {
	Type    string           `json:"type"`
	Version common.FeltBytes `json:"version"`
}

// NewTransactionFromJson decodes a transaction in the JSON-RPC representation, using the
// type and version fields to pick the variant
func NewTransactionFromJson(data []byte) (Transaction, error) {
	var header jsonHeader
	if err := json.Unmarshal(data, &header); err != nil {
		return nil, err
	}
	version, err := header.Version.Uint64()
	if err != nil {
		return nil, err
	}
	var tx Transaction
	switch header.Type {
	case common.JsonTypeInvoke:
		switch version {
		case 0:
			tx = &invoke.InvokeTransactionV0{}
		case 1:
			tx = &invoke.InvokeTransactionV1{}
		}
	case common.JsonTypeDeclare:
		switch version {
		case 0:
			tx = &declare.DeclareTransactionV0{}
		case 1:
			tx = &declare.DeclareTransactionV1{}
		case 2:
			tx = &declare.DeclareTransactionV2{}
		}
	case common.JsonTypeDeployAccount:
		if version == 1 {
			tx = &deployaccount.DeployAccountTransaction{}
		}
	case common.JsonTypeDeploy:
		if version == 0 {
			tx = &deploy.DeployTransaction{}
		}
	case common.JsonTypeL1Handler:
		if version == 0 {
			tx = &l1handler.L1HandlerTransaction{}
		}
	default:
		return nil, fmt.Errorf("unknown transaction type: %q", header.Type)
	}
	if tx == nil {
		return nil, fmt.Errorf(
			"unsupported %s transaction version: %d",
			header.Type,
			version,
		)
	}
	if err := json.Unmarshal(data, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// IsUserTransaction reports whether the transaction kind can be submitted by users
func IsUserTransaction(tx Transaction) bool {
	switch tx.(type) {
	case *invoke.InvokeTransactionV0,
		*invoke.InvokeTransactionV1,
		*declare.DeclareTransactionV0,
		*declare.DeclareTransactionV1,
		*declare.DeclareTransactionV2,
		*deployaccount.DeployAccountTransaction:
		return true
	}
	return false
}

var errNilTransaction = errors.New("nil transaction")
