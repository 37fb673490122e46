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

// Package bench provides benchmark fixtures for transaction decoding and hashing.
package bench

import (
	"fmt"

	"github.com/NethermindEth/juno/core/felt"
	"github.com/blinklabs-io/gostarknet/ledger"
	"github.com/blinklabs-io/gostarknet/ledger/common"
	"github.com/blinklabs-io/gostarknet/ledger/declare"
	"github.com/blinklabs-io/gostarknet/ledger/deploy"
	"github.com/blinklabs-io/gostarknet/ledger/deployaccount"
	"github.com/blinklabs-io/gostarknet/ledger/invoke"
	"github.com/blinklabs-io/gostarknet/ledger/l1handler"
	"github.com/holiman/uint256"
)

// TxFixture contains a pre-built transaction and its CBOR envelope
type TxFixture struct {
	Name        string
	Transaction ledger.Transaction
	Cbor        []byte
}

// benchCalldata returns a calldata sequence of the given length
func benchCalldata(length int) []*felt.Felt {
	ret := make([]*felt.Felt, 0, length)
	for i := range length {
		ret = append(ret, common.FeltFromUint64(uint64(i)*0x1000193+7))
	}
	return ret
}

// TxKindNames returns the names of all transaction kinds with fixtures
func TxKindNames() []string {
	return []string{
		"invoke_v0",
		"invoke_v1",
		"declare_v0",
		"declare_v1",
		"declare_v2",
		"deploy_account",
		"deploy",
		"l1_handler",
	}
}

func newTransaction(kind string, calldataLen int) (ledger.Transaction, error) {
	address := common.FeltFromUint64(0x49d36570d4e46f48)
	classHash := common.FeltFromUint64(0x25ec026985a3bf9d)
	calldata := benchCalldata(calldataLen)
	fee := uint256.NewInt(1_000_000_000_000)
	switch kind {
	case "invoke_v0":
		return &invoke.InvokeTransactionV0{
			ContractAddress:    address,
			EntryPointSelector: common.EntryPointSelector("transfer"),
			Calldata:           calldata,
			MaxFee:             fee,
		}, nil
	case "invoke_v1":
		return &invoke.InvokeTransactionV1{
			SenderAddress: address,
			Calldata:      calldata,
			MaxFee:        fee,
			Nonce:         42,
		}, nil
	case "declare_v0":
		return &declare.DeclareTransactionV0{
			SenderAddress: address,
			MaxFee:        fee,
			ClassHash:     classHash,
		}, nil
	case "declare_v1":
		return &declare.DeclareTransactionV1{
			SenderAddress: address,
			MaxFee:        fee,
			Nonce:         42,
			ClassHash:     classHash,
		}, nil
	case "declare_v2":
		return &declare.DeclareTransactionV2{
			SenderAddress:     address,
			MaxFee:            fee,
			Nonce:             42,
			ClassHash:         classHash,
			CompiledClassHash: common.FeltFromUint64(0x1234),
		}, nil
	case "deploy_account":
		return &deployaccount.DeployAccountTransaction{
			ClassHash:           classHash,
			ContractAddressSalt: common.FeltFromUint64(7),
			ConstructorCalldata: calldata,
			MaxFee:              fee,
		}, nil
	case "deploy":
		return &deploy.DeployTransaction{
			ClassHash:           classHash,
			ContractAddressSalt: common.FeltFromUint64(7),
			ConstructorCalldata: calldata,
		}, nil
	case "l1_handler":
		return &l1handler.L1HandlerTransaction{
			ContractAddress:    address,
			EntryPointSelector: common.EntryPointSelector("handle_deposit"),
			Calldata:           calldata,
			Nonce:              42,
		}, nil
	}
	return nil, fmt.Errorf("unknown transaction kind: %s", kind)
}

// LoadTxFixture builds a fixture for the given transaction kind with the given calldata
// length
func LoadTxFixture(kind string, calldataLen int) (*TxFixture, error) {
	tx, err := newTransaction(kind, calldataLen)
	if err != nil {
		return nil, err
	}
	cborData, err := ledger.EncodeTransaction(tx)
	if err != nil {
		return nil, fmt.Errorf("encode %s fixture: %w", kind, err)
	}
	return &TxFixture{
		Name:        kind,
		Transaction: tx,
		Cbor:        cborData,
	}, nil
}

// MustLoadTxFixture is like LoadTxFixture but panics on error
func MustLoadTxFixture(kind string, calldataLen int) *TxFixture {
	fixture, err := LoadTxFixture(kind, calldataLen)
	if err != nil {
		panic(err)
	}
	return fixture
}
