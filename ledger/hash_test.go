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

package ledger_test

import (
	"errors"
	"testing"

	"github.com/NethermindEth/juno/core/felt"
	"github.com/blinklabs-io/gostarknet/internal/test"
	"github.com/blinklabs-io/gostarknet/ledger"
	"github.com/blinklabs-io/gostarknet/ledger/common"
	"github.com/blinklabs-io/gostarknet/ledger/declare"
	"github.com/blinklabs-io/gostarknet/ledger/deploy"
	"github.com/blinklabs-io/gostarknet/ledger/deployaccount"
	"github.com/blinklabs-io/gostarknet/ledger/invoke"
	"github.com/blinklabs-io/gostarknet/ledger/l1handler"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testChainId = common.MustFeltFromShortString("SN_MAIN")

func testTransactions() []ledger.Transaction {
	return []ledger.Transaction{
		&invoke.InvokeTransactionV0{
			ContractAddress:    test.Felt("0x1"),
			EntryPointSelector: test.Felt("0x2"),
			Calldata:           test.Felts("0x3"),
			MaxFee:             uint256.NewInt(4),
		},
		&invoke.InvokeTransactionV1{
			SenderAddress: test.Felt("0x1"),
			Calldata:      test.Felts("0x3"),
			MaxFee:        uint256.NewInt(4),
			Nonce:         5,
		},
		&declare.DeclareTransactionV0{
			SenderAddress: test.Felt("0x1"),
			MaxFee:        uint256.NewInt(4),
			ClassHash:     test.Felt("0x6"),
		},
		&declare.DeclareTransactionV1{
			SenderAddress: test.Felt("0x1"),
			MaxFee:        uint256.NewInt(4),
			Nonce:         5,
			ClassHash:     test.Felt("0x6"),
		},
		&declare.DeclareTransactionV2{
			SenderAddress:     test.Felt("0x1"),
			MaxFee:            uint256.NewInt(4),
			Nonce:             5,
			ClassHash:         test.Felt("0x6"),
			CompiledClassHash: test.Felt("0x7"),
		},
		&deployaccount.DeployAccountTransaction{
			ClassHash:           test.Felt("0x6"),
			ContractAddressSalt: test.Felt("0x8"),
			ConstructorCalldata: test.Felts("0x3"),
			MaxFee:              uint256.NewInt(4),
			Nonce:               5,
		},
		&deploy.DeployTransaction{
			ClassHash:           test.Felt("0x6"),
			ContractAddressSalt: test.Felt("0x8"),
			ConstructorCalldata: test.Felts("0x3"),
		},
		&l1handler.L1HandlerTransaction{
			ContractAddress:    test.Felt("0x1"),
			EntryPointSelector: test.Felt("0x2"),
			Calldata:           test.Felts("0x3"),
			Nonce:              5,
		},
	}
}

type unknownTransaction struct{}

func (unknownTransaction) Type() ledger.TxType {
	return ledger.TxType(99)
}

func (unknownTransaction) Preimage(ledger.Hasher, ledger.HashContext) []*felt.Felt {
	return nil
}

func (unknownTransaction) Hash(ledger.Hasher, ledger.HashContext) *felt.Felt {
	return new(felt.Felt)
}

func TestTransactionHashDispatch(t *testing.T) {
	h := common.PedersenHasher{}
	for _, block := range []ledger.BlockNumber{ledger.NoBlock, ledger.AtBlock(100), ledger.AtBlock(1000), ledger.AtBlock(5000)} {
		ctx := common.NewHashContext(testChainId, false, block)
		for _, tx := range testTransactions() {
			got := ledger.TransactionHash(tx, h, ctx)
			assert.True(t, got.Equal(tx.Hash(h, ctx)), "%s at block %s", tx.Type(), block)
			assert.True(t, got.Equal(h.HashElements(tx.Preimage(h, ctx)...)))
		}
	}
}

func TestTransactionHashUnknownType(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, common.ErrUnknownTransactionType))
	}()
	ledger.TransactionHash(
		unknownTransaction{},
		common.PedersenHasher{},
		common.NewHashContext(testChainId, false, ledger.NoBlock),
	)
	t.Fatal("did not panic")
}

func TestTransactionEra(t *testing.T) {
	policy := common.DefaultEraPolicy()
	txs := testTransactions()
	assert.Equal(t, ledger.EraLegacy, ledger.TransactionEra(txs[0], policy, ledger.AtBlock(1470)))
	assert.Equal(t, ledger.EraCurrent, ledger.TransactionEra(txs[1], policy, ledger.AtBlock(10)))
	assert.Equal(t, ledger.EraLegacy, ledger.TransactionEra(txs[6], policy, ledger.AtBlock(10)))
	assert.Equal(t, ledger.EraPreLegacy, ledger.TransactionEra(txs[7], policy, ledger.AtBlock(10)))
	assert.Panics(t, func() {
		ledger.TransactionEra(unknownTransaction{}, policy, ledger.NoBlock)
	})
}

func TestInvokeV1EndToEnd(t *testing.T) {
	h := test.NewRecordingHasher()
	tx := &invoke.InvokeTransactionV1{
		SenderAddress: test.Felt("0xa"),
		MaxFee:        uint256.NewInt(5),
		Nonce:         7,
	}
	hash, err := ledger.UserTransactionHash(tx, h, testChainId, false, common.DefaultEraPolicy())
	require.NoError(t, err)
	pedersen := common.PedersenHasher{}
	expected := pedersen.HashElements(
		common.InvokePrefixFelt(),
		common.FeltFromUint64(1),
		test.Felt("0xa"),
		new(felt.Felt),
		pedersen.HashElements(),
		common.FeltFromUint64(5),
		testChainId,
		common.FeltFromUint64(7),
	)
	assert.True(t, hash.Equal(expected))
	assert.Len(t, h.LastCall(), 8)
}

func TestUserTransactionHash(t *testing.T) {
	h := common.PedersenHasher{}
	policy := common.DefaultEraPolicy()
	for _, tx := range testTransactions() {
		hash, err := ledger.UserTransactionHash(tx, h, testChainId, false, policy)
		if !ledger.IsUserTransaction(tx) {
			assert.ErrorIs(t, err, common.ErrNotUserTransaction)
			continue
		}
		require.NoError(t, err)
		expected := ledger.TransactionHash(tx, h, common.NewHashContext(testChainId, false, ledger.NoBlock))
		assert.True(t, hash.Equal(expected))
	}
	_, err := ledger.UserTransactionHash(nil, h, testChainId, false, policy)
	assert.Error(t, err)
}

func TestIsUserTransaction(t *testing.T) {
	count := 0
	for _, tx := range testTransactions() {
		if ledger.IsUserTransaction(tx) {
			count++
		}
	}
	// Deploy and L1 handler are not submitted by users
	assert.Equal(t, 6, count)
}

func TestQueryOffsetIsolation(t *testing.T) {
	h := common.PedersenHasher{}
	offsetTypes := map[ledger.TxType]bool{
		ledger.TxTypeInvokeV0:      true,
		ledger.TxTypeInvokeV1:      true,
		ledger.TxTypeDeclareV2:     true,
		ledger.TxTypeDeployAccount: true,
	}
	for _, tx := range testTransactions() {
		// Invoke V0 has a version slot in the current era only
		for _, block := range []ledger.BlockNumber{ledger.NoBlock, ledger.AtBlock(100)} {
			plain := test.FeltStrings(tx.Preimage(h, common.NewHashContext(testChainId, false, block)))
			query := test.FeltStrings(tx.Preimage(h, common.NewHashContext(testChainId, true, block)))
			hasVersionSlot := offsetTypes[tx.Type()] &&
				ledger.TransactionEra(tx, common.DefaultEraPolicy(), block) == ledger.EraCurrent
			if !hasVersionSlot {
				assert.Equal(t, plain, query, "%s at block %s", tx.Type(), block)
				continue
			}
			require.Len(t, query, len(plain))
			for idx := range plain {
				if idx == 1 {
					expected := new(felt.Felt).Add(
						test.Felt(plain[idx]),
						common.SimulateTxVersionOffset(),
					)
					assert.Equal(t, expected.String(), query[idx], "%s version", tx.Type())
					continue
				}
				assert.Equal(t, plain[idx], query[idx], "%s element %d", tx.Type(), idx)
			}
		}
	}
}

func TestDeployAddressConsistency(t *testing.T) {
	h := common.PedersenHasher{}
	salt := test.Felt("0x77")
	classHash := test.Felt("0x1234")
	calldata := test.Felts("0x1", "0x2")
	d := &deploy.DeployTransaction{
		ClassHash:           classHash,
		ContractAddressSalt: salt,
		ConstructorCalldata: calldata,
	}
	da := &deployaccount.DeployAccountTransaction{
		ClassHash:           classHash,
		ContractAddressSalt: salt,
		ConstructorCalldata: calldata,
		MaxFee:              uint256.NewInt(1),
	}
	assert.True(t, d.ContractAddress(h).Equal(da.ContractAddress(h)))
	ctx := common.NewHashContext(testChainId, false, ledger.NoBlock)
	assert.Equal(t, d.ContractAddress(h).String(), d.Preimage(h, ctx)[2].String())
	assert.Equal(t, da.ContractAddress(h).String(), da.Preimage(h, ctx)[2].String())
}

func TestTransactionHashDeterministic(t *testing.T) {
	h := common.PoseidonHasher{}
	for _, tx := range testTransactions() {
		ctx := common.NewHashContext(testChainId, true, ledger.AtBlock(900))
		assert.True(t, ledger.TransactionHash(tx, h, ctx).Equal(ledger.TransactionHash(tx, h, ctx)))
	}
}

func TestContractAddressKnownValue(t *testing.T) {
	addr := common.CalculateContractAddress(
		common.PedersenHasher{},
		test.Felt("0x99"),
		test.Felt("0x77"),
		test.Felts("0x1", "0x2", "0x3"),
	)
	assert.Equal(
		t,
		"0x54eb6c71370f1a99896be268408b01daa8946d74c29fc9f07697d7528855fb6",
		addr.String(),
	)
	d := &deploy.DeployTransaction{
		ClassHash:           test.Felt("0x77"),
		ContractAddressSalt: test.Felt("0x99"),
		ConstructorCalldata: test.Felts("0x1", "0x2", "0x3"),
	}
	assert.True(t, addr.Equal(d.ContractAddress(common.PedersenHasher{})))
}

func TestTransactionHashZeroPolicy(t *testing.T) {
	h := common.PedersenHasher{}
	for _, block := range []ledger.BlockNumber{ledger.AtBlock(0), ledger.AtBlock(1000), ledger.AtBlock(5000)} {
		zero := ledger.HashContext{ChainId: testChainId, Block: block}
		mainnet := common.NewHashContext(testChainId, false, block)
		for _, tx := range testTransactions() {
			assert.Equal(
				t,
				test.FeltStrings(tx.Preimage(h, mainnet)),
				test.FeltStrings(tx.Preimage(h, zero)),
				"%s at block %s",
				tx.Type(),
				block,
			)
			assert.True(t, ledger.TransactionHash(tx, h, zero).Equal(ledger.TransactionHash(tx, h, mainnet)))
		}
	}
	txs := testTransactions()
	zero := ledger.HashContext{ChainId: testChainId, Block: ledger.AtBlock(1000)}
	assert.Len(t, txs[0].Preimage(h, zero), 5)
	assert.Equal(t, ledger.EraLegacy, ledger.TransactionEra(txs[7], ledger.EraPolicy{}, ledger.AtBlock(1000)))

	hash, err := ledger.UserTransactionHash(txs[1], h, testChainId, false, ledger.EraPolicy{})
	require.NoError(t, err)
	assert.True(t, hash.Equal(txs[1].Hash(h, common.NewHashContext(testChainId, false, ledger.NoBlock))))
}

func TestTransactionHashInvalidPolicy(t *testing.T) {
	h := common.PedersenHasher{}
	policy := common.EraPolicy{LegacyBlock: 100, LegacyL1HandlerBlock: 100}
	tx := testTransactions()[0]

	_, err := ledger.UserTransactionHash(tx, h, testChainId, false, policy)
	var policyErr common.InvalidEraPolicyError
	assert.True(t, errors.As(err, &policyErr))

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		var policyErr common.InvalidEraPolicyError
		assert.True(t, errors.As(err, &policyErr))
	}()
	ledger.TransactionHash(
		tx,
		h,
		ledger.HashContext{ChainId: testChainId, Block: ledger.AtBlock(1000), Policy: policy},
	)
	t.Fatal("did not panic")
}
