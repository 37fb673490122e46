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

package declare_test

import (
	"encoding/json"
	"testing"

	"github.com/blinklabs-io/gostarknet/cbor"
	"github.com/blinklabs-io/gostarknet/internal/test"
	"github.com/blinklabs-io/gostarknet/ledger/common"
	"github.com/blinklabs-io/gostarknet/ledger/declare"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testChainId = common.MustFeltFromShortString("SN_SEPOLIA")

func TestDeclareV0Preimage(t *testing.T) {
	h := test.NewRecordingHasher()
	tx := &declare.DeclareTransactionV0{
		SenderAddress: test.Felt("0x1"),
		MaxFee:        uint256.NewInt(100),
		ClassHash:     test.Felt("0xc1a55"),
	}
	tx.Hash(h, common.NewHashContext(testChainId, false, common.NoBlock))
	calls := h.Calls()
	require.Len(t, calls, 2)
	assert.Empty(t, calls[0])
	assert.Equal(
		t,
		[]string{
			"0x6465636c617265",
			"0x0",
			"0x1",
			"0x0",
			common.PedersenHasher{}.HashElements().String(),
			"0x64",
			testChainId.String(),
			"0xc1a55",
		},
		test.FeltStrings(calls[1]),
	)
}

func TestDeclareV1Preimage(t *testing.T) {
	h := test.NewRecordingHasher()
	tx := &declare.DeclareTransactionV1{
		SenderAddress: test.Felt("0x1"),
		MaxFee:        uint256.NewInt(100),
		Nonce:         3,
		ClassHash:     test.Felt("0xc1a55"),
	}
	tx.Hash(h, common.NewHashContext(testChainId, false, common.NoBlock))
	calls := h.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, []string{"0xc1a55"}, test.FeltStrings(calls[0]))
	assert.Equal(
		t,
		[]string{
			"0x6465636c617265",
			"0x1",
			"0x1",
			"0x0",
			common.PedersenHasher{}.HashElements(test.Felt("0xc1a55")).String(),
			"0x64",
			testChainId.String(),
			"0x3",
		},
		test.FeltStrings(calls[1]),
	)
}

func TestDeclareV2Preimage(t *testing.T) {
	tx := &declare.DeclareTransactionV2{
		SenderAddress:     test.Felt("0x1"),
		MaxFee:            uint256.NewInt(100),
		Nonce:             3,
		ClassHash:         test.Felt("0xc1a55"),
		CompiledClassHash: test.Felt("0xcc"),
	}
	h := common.PedersenHasher{}
	preimage := tx.Preimage(h, common.NewHashContext(testChainId, false, common.NoBlock))
	require.Len(t, preimage, 9)
	assert.Equal(t, "0x2", preimage[1].String())
	assert.Equal(t, "0xcc", preimage[8].String())

	queryPreimage := tx.Preimage(h, common.NewHashContext(testChainId, true, common.NoBlock))
	assert.Equal(t, common.TxVersion(2, true).String(), queryPreimage[1].String())
}

func TestDeclareQueryVersion(t *testing.T) {
	h := common.PedersenHasher{}
	ctx := common.NewHashContext(testChainId, false, common.NoBlock)
	queryCtx := common.NewHashContext(testChainId, true, common.NoBlock)
	v0 := &declare.DeclareTransactionV0{
		SenderAddress: test.Felt("0x1"),
		MaxFee:        uint256.NewInt(1),
		ClassHash:     test.Felt("0x2"),
	}
	v1 := &declare.DeclareTransactionV1{
		SenderAddress: test.Felt("0x1"),
		MaxFee:        uint256.NewInt(1),
		ClassHash:     test.Felt("0x2"),
	}
	v2 := &declare.DeclareTransactionV2{
		SenderAddress:     test.Felt("0x1"),
		MaxFee:            uint256.NewInt(1),
		ClassHash:         test.Felt("0x2"),
		CompiledClassHash: test.Felt("0x3"),
	}
	// Only V2 commits to the query flag
	assert.True(t, v0.Hash(h, ctx).Equal(v0.Hash(h, queryCtx)))
	assert.True(t, v1.Hash(h, ctx).Equal(v1.Hash(h, queryCtx)))
	assert.False(t, v2.Hash(h, ctx).Equal(v2.Hash(h, queryCtx)))
}

func TestDeclareJson(t *testing.T) {
	tx := &declare.DeclareTransactionV2{
		SenderAddress:     test.Felt("0x1"),
		MaxFee:            uint256.NewInt(100),
		Nonce:             3,
		ClassHash:         test.Felt("0xc1a55"),
		CompiledClassHash: test.Felt("0xcc"),
	}
	data, err := json.Marshal(tx)
	require.NoError(t, err)
	var decoded declare.DeclareTransactionV2
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "0xcc", decoded.CompiledClassHash.String())
	assert.Equal(t, uint64(3), decoded.Nonce)

	// Fields unused by a version may be omitted
	var v0 declare.DeclareTransactionV0
	require.NoError(
		t,
		json.Unmarshal(
			[]byte(`{"type":"DECLARE","version":"0x0","sender_address":"0x1","max_fee":"0x10","class_hash":"0x2"}`),
			&v0,
		),
	)
	assert.Equal(t, "0x2", v0.ClassHash.String())
	assert.Equal(t, uint64(16), v0.MaxFee.Uint64())

	// Wrong version
	var v1 declare.DeclareTransactionV1
	assert.Error(t, json.Unmarshal(data, &v1))
}

func TestDeclareCbor(t *testing.T) {
	tx := &declare.DeclareTransactionV1{
		SenderAddress: test.Felt("0x1"),
		MaxFee:        uint256.NewInt(100),
		Nonce:         3,
		ClassHash:     test.Felt("0xc1a55"),
	}
	cborData, err := cbor.Encode(tx)
	require.NoError(t, err)
	decoded, err := declare.NewDeclareTransactionV1FromCbor(cborData)
	require.NoError(t, err)
	h := common.PedersenHasher{}
	ctx := common.NewHashContext(testChainId, false, common.NoBlock)
	assert.True(t, tx.Hash(h, ctx).Equal(decoded.Hash(h, ctx)))
}
