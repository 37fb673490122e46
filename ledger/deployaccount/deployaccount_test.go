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

package deployaccount_test

import (
	"encoding/json"
	"testing"

	"github.com/blinklabs-io/gostarknet/cbor"
	"github.com/blinklabs-io/gostarknet/internal/test"
	"github.com/blinklabs-io/gostarknet/ledger/common"
	"github.com/blinklabs-io/gostarknet/ledger/deployaccount"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testChainId = common.MustFeltFromShortString("SN_MAIN")

func testDeployAccount() *deployaccount.DeployAccountTransaction {
	return &deployaccount.DeployAccountTransaction{
		ClassHash:           test.Felt("0x1234"),
		ContractAddressSalt: test.Felt("0x5"),
		ConstructorCalldata: test.Felts("0xa", "0xb"),
		MaxFee:              uint256.NewInt(1000),
		Nonce:               0,
	}
}

func TestDeployAccountPreimage(t *testing.T) {
	tx := testDeployAccount()
	h := common.PedersenHasher{}
	addr := tx.ContractAddress(h)
	calldataHash := h.HashElements(test.Felts("0x1234", "0x5", "0xa", "0xb")...)
	preimage := tx.Preimage(h, common.NewHashContext(testChainId, false, common.NoBlock))
	assert.Equal(
		t,
		[]string{
			"0x6465706c6f795f6163636f756e74",
			"0x1",
			addr.String(),
			"0x0",
			calldataHash.String(),
			"0x3e8",
			testChainId.String(),
			"0x0",
		},
		test.FeltStrings(preimage),
	)
}

func TestDeployAccountQuery(t *testing.T) {
	tx := testDeployAccount()
	h := common.PedersenHasher{}
	ctx := common.NewHashContext(testChainId, false, common.NoBlock)
	queryCtx := common.NewHashContext(testChainId, true, common.NoBlock)
	assert.Equal(t, common.TxVersion(1, true).String(), tx.Preimage(h, queryCtx)[1].String())
	assert.False(t, tx.Hash(h, ctx).Equal(tx.Hash(h, queryCtx)))
}

func TestDeployAccountUsesHasherForAddress(t *testing.T) {
	tx := testDeployAccount()
	pedersen := tx.ContractAddress(common.PedersenHasher{})
	poseidon := tx.ContractAddress(common.PoseidonHasher{})
	assert.False(t, pedersen.Equal(poseidon))
}

func TestDeployAccountCodec(t *testing.T) {
	tx := testDeployAccount()
	tx.Nonce = 12
	h := common.PedersenHasher{}
	ctx := common.NewHashContext(testChainId, false, common.NoBlock)

	data, err := json.Marshal(tx)
	require.NoError(t, err)
	var fromJson deployaccount.DeployAccountTransaction
	require.NoError(t, json.Unmarshal(data, &fromJson))
	assert.Equal(t, uint64(12), fromJson.Nonce)
	assert.True(t, tx.Hash(h, ctx).Equal(fromJson.Hash(h, ctx)))

	cborData, err := cbor.Encode(tx)
	require.NoError(t, err)
	fromCbor, err := deployaccount.NewDeployAccountTransactionFromCbor(cborData)
	require.NoError(t, err)
	assert.True(t, tx.Hash(h, ctx).Equal(fromCbor.Hash(h, ctx)))
}
