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

package common_test

import (
	"encoding/hex"
	"errors"
	"math/big"
	"testing"

	"github.com/NethermindEth/juno/core/felt"
	"github.com/blinklabs-io/gostarknet/ledger/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feltBytesFromBig(t *testing.T, v *big.Int) common.FeltBytes {
	t.Helper()
	ret, err := common.NewFeltBytesFromSlice(v.Bytes())
	require.NoError(t, err)
	return ret
}

func TestFeltBytesCheckedConversion(t *testing.T) {
	modulus := common.FeltModulus()

	// The modulus itself is out of range
	_, err := feltBytesFromBig(t, modulus).Felt()
	require.Error(t, err)
	var rangeErr common.FeltOutOfRangeError
	assert.True(t, errors.As(err, &rangeErr))

	// All bits set is out of range
	var allOnes common.FeltBytes
	for i := range allOnes {
		allOnes[i] = 0xff
	}
	_, err = allOnes.Felt()
	assert.Error(t, err)

	// The largest field element converts
	maxFelt := new(big.Int).Sub(modulus, big.NewInt(1))
	f, err := feltBytesFromBig(t, maxFelt).Felt()
	require.NoError(t, err)
	assert.Equal(t, "0x"+maxFelt.Text(16), f.String())

	// Zero converts
	f, err = common.FeltBytes{}.Felt()
	require.NoError(t, err)
	assert.True(t, f.IsZero())
}

func TestFeltModulusIsCopy(t *testing.T) {
	m := common.FeltModulus()
	m.SetUint64(1)
	assert.NotEqual(t, 0, common.FeltModulus().Cmp(big.NewInt(1)))
}

type shortStringTestDefinition struct {
	Value     string
	Hex       string
	ExpectErr bool
}

var shortStringTests = []shortStringTestDefinition{
	{Value: "invoke", Hex: "0x696e766f6b65"},
	{Value: "SN_MAIN", Hex: "0x534e5f4d41494e"},
	{Value: "SN_GOERLI", Hex: "0x534e5f474f45524c49"},
	{Value: "SN_SEPOLIA", Hex: "0x534e5f5345504f4c4941"},
	{
		Value: "STARKNET_CONTRACT_ADDRESS",
		Hex:   "0x535441524b4e45545f434f4e54524143545f41444452455353",
	},
	{Value: "", Hex: "0x0"},
	// 31 characters is the maximum
	{Value: "abcdefghijklmnopqrstuvwxyz01234", Hex: "0x6162636465666768696a6b6c6d6e6f707172737475767778797a3031323334"},
	{Value: "abcdefghijklmnopqrstuvwxyz012345", ExpectErr: true},
	{Value: "héllo", ExpectErr: true},
}

func TestFeltFromShortString(t *testing.T) {
	for _, test := range shortStringTests {
		f, err := common.FeltFromShortString(test.Value)
		if test.ExpectErr {
			if err == nil {
				t.Fatalf("did not get expected error for %q", test.Value)
			}
			continue
		}
		if err != nil {
			t.Fatalf("unexpected error for %q: %s", test.Value, err)
		}
		if f.String() != test.Hex {
			t.Fatalf(
				"did not get expected value for %q\n  got: %s\n  wanted: %s",
				test.Value,
				f.String(),
				test.Hex,
			)
		}
	}
}

func TestMustFeltFromShortStringPanics(t *testing.T) {
	assert.Panics(t, func() {
		common.MustFeltFromShortString("this string is far too long to be a short string")
	})
}

type feltHexTestDefinition struct {
	Input     string
	Output    string
	ExpectErr bool
}

var feltHexTests = []feltHexTestDefinition{
	{Input: "0x1", Output: "0x1"},
	{Input: "0X0abc", Output: "0xabc"},
	{Input: "abc", Output: "0xabc"},
	{Input: "0x0", Output: "0x0"},
	{Input: "", ExpectErr: true},
	{Input: "0x", ExpectErr: true},
	{Input: "0xzz", ExpectErr: true},
	// 33 bytes
	{Input: "0x01" + "0000000000000000000000000000000000000000000000000000000000000000", ExpectErr: true},
	// Modulus
	{Input: "0x800000000000011000000000000000000000000000000000000000000000001", ExpectErr: true},
}

func TestFeltFromHex(t *testing.T) {
	for _, test := range feltHexTests {
		f, err := common.FeltFromHex(test.Input)
		if test.ExpectErr {
			if err == nil {
				t.Fatalf("did not get expected error for %q", test.Input)
			}
			continue
		}
		if err != nil {
			t.Fatalf("unexpected error for %q: %s", test.Input, err)
		}
		if f.String() != test.Output {
			t.Fatalf(
				"did not get expected value for %q\n  got: %s\n  wanted: %s",
				test.Input,
				f.String(),
				test.Output,
			)
		}
	}
}

func TestFeltBytesText(t *testing.T) {
	b := common.NewFeltBytes(common.FeltFromUint64(0x1234))
	text, err := b.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "0x1234", string(text))
	var decoded common.FeltBytes
	require.NoError(t, decoded.UnmarshalText(text))
	assert.Equal(t, b, decoded)
	assert.Equal(t, "0x0", common.FeltBytes{}.String())
}

func TestFeltBytesCbor(t *testing.T) {
	b := common.NewFeltBytes(common.FeltFromUint64(1))
	cborData, err := b.MarshalCBOR()
	require.NoError(t, err)
	// Always a full 32-byte string
	assert.Equal(
		t,
		"5820"+"0000000000000000000000000000000000000000000000000000000000000001",
		hex.EncodeToString(cborData),
	)
	var decoded common.FeltBytes
	require.NoError(t, decoded.UnmarshalCBOR(cborData))
	assert.Equal(t, b, decoded)

	// Shorter byte strings are left-padded
	require.NoError(t, decoded.UnmarshalCBOR([]byte{0x41, 0x07}))
	assert.Equal(t, "0x7", decoded.String())

	// Longer byte strings are rejected
	tooLong := append([]byte{0x58, 0x21}, make([]byte, 33)...)
	assert.Error(t, decoded.UnmarshalCBOR(tooLong))
}

func TestFeltBytesIntegers(t *testing.T) {
	b := common.NewFeltBytes(common.FeltFromUint64(42))
	v, err := b.Uint64()
	require.NoError(t, err)
	assert.Equal(t, uint64(42), v)

	big128 := feltBytesFromBig(t, new(big.Int).Lsh(big.NewInt(1), 128))
	_, err = big128.Uint64()
	assert.Error(t, err)
	_, err = big128.Uint256(128)
	assert.Error(t, err)
	u, err := big128.Uint256(129)
	require.NoError(t, err)
	assert.Equal(t, 129, u.BitLen())

	max128 := new(uint256.Int).SubUint64(
		new(uint256.Int).Lsh(uint256.NewInt(1), 128),
		1,
	)
	fee := common.FeeBytes(max128)
	assert.Equal(t, 128, fee.BitLen())
	u, err = fee.Uint256(common.MaxFeeBits)
	require.NoError(t, err)
	assert.True(t, u.Eq(max128))
}

func TestFeltsBytesRoundTrip(t *testing.T) {
	elems := common.FeltsToBytes(
		[]*felt.Felt{
			common.FeltFromUint64(1),
			common.FeltFromUint64(2),
		},
	)
	decoded, err := common.FeltsFromBytes(elems)
	require.NoError(t, err)
	require.Len(t, decoded, 2)
	assert.Equal(t, "0x2", decoded[1].String())

	_, err = common.FeltsFromBytes(
		[]common.FeltBytes{{}, feltBytesFromBig(t, common.FeltModulus())},
	)
	assert.ErrorContains(t, err, "element 1")
}
