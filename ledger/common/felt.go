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

package common

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/NethermindEth/juno/core/felt"
	"github.com/blinklabs-io/gostarknet/cbor"
	"github.com/consensys/gnark-crypto/ecc/stark-curve/fp"
	"github.com/holiman/uint256"
)

const (
	FeltSize = 32

	// Cairo short strings are limited to 31 bytes so they always fit below the modulus
	ShortStringMaxLength = 31
)

var feltModulus = fp.Modulus()

// FeltModulus returns a copy of the Stark field prime
func FeltModulus() *big.Int {
	return new(big.Int).Set(feltModulus)
}

// FeltFromUint64 converts a native integer into a field element. It never fails, since
// every uint64 is below the field modulus
func FeltFromUint64(v uint64) *felt.Felt {
	return new(felt.Felt).SetUint64(v)
}

// FeltFromUint256 converts a 256-bit integer into a field element. Values at or above
// the field modulus are reduced, so callers holding fees must keep them within 128 bits
func FeltFromUint256(v *uint256.Int) *felt.Felt {
	if v == nil {
		return new(felt.Felt)
	}
	b := v.Bytes32()
	return new(felt.Felt).SetBytes(b[:])
}

// FeltFromShortString encodes an ASCII string as a Cairo short string, which is the
// big-endian integer of its bytes
func FeltFromShortString(s string) (*felt.Felt, error) {
	if len(s) > ShortStringMaxLength {
		return nil, ShortStringError{Value: s, Reason: "too long"}
	}
	for i := range len(s) {
		if s[i] > 0x7f {
			return nil, ShortStringError{Value: s, Reason: "non-ASCII byte"}
		}
	}
	return new(felt.Felt).SetBytes([]byte(s)), nil
}

// MustFeltFromShortString is like FeltFromShortString but panics on error. It is meant
// for package-level constants, where a failure is a build defect
func MustFeltFromShortString(s string) *felt.Felt {
	ret, err := FeltFromShortString(s)
	if err != nil {
		panic(fmt.Sprintf("invalid short string constant: %s", err))
	}
	return ret
}

// FeltFromHex parses a 0x-prefixed (or bare) hex string into a field element, rejecting
// values at or above the modulus
func FeltFromHex(s string) (*felt.Felt, error) {
	var b FeltBytes
	if err := b.UnmarshalText([]byte(s)); err != nil {
		return nil, err
	}
	return b.Felt()
}

// FeltBytes is the fixed-width big-endian wire representation of a field element
type FeltBytes [FeltSize]byte

// NewFeltBytes returns the canonical wire representation of a field element
func NewFeltBytes(f *felt.Felt) FeltBytes {
	if f == nil {
		return FeltBytes{}
	}
	return FeltBytes(f.Bytes())
}

// NewFeltBytesFromSlice copies a big-endian byte string of up to 32 bytes, left-padding
// with zeroes
func NewFeltBytesFromSlice(data []byte) (FeltBytes, error) {
	var ret FeltBytes
	if len(data) > FeltSize {
		return ret, fmt.Errorf(
			"field element too long: %d bytes (max %d)",
			len(data),
			FeltSize,
		)
	}
	copy(ret[FeltSize-len(data):], data)
	return ret, nil
}

// Felt converts the wire representation into a field element. The conversion is checked:
// values at or above the field modulus are rejected rather than silently reduced
func (b FeltBytes) Felt() (*felt.Felt, error) {
	if new(big.Int).SetBytes(b[:]).Cmp(feltModulus) >= 0 {
		return nil, FeltOutOfRangeError{Value: b}
	}
	return new(felt.Felt).SetBytes(b[:]), nil
}

// BitLen returns the number of significant bits in the value
func (b FeltBytes) BitLen() int {
	return new(big.Int).SetBytes(b[:]).BitLen()
}

// Uint64 returns the value as a native integer if it fits
func (b FeltBytes) Uint64() (uint64, error) {
	v := new(big.Int).SetBytes(b[:])
	if !v.IsUint64() {
		return 0, fmt.Errorf("value %s does not fit in 64 bits", b.String())
	}
	return v.Uint64(), nil
}

// Uint256 returns the value as a 256-bit integer if it fits in the given number of bits
func (b FeltBytes) Uint256(maxBits int) (*uint256.Int, error) {
	if b.BitLen() > maxBits {
		return nil, fmt.Errorf(
			"value %s does not fit in %d bits",
			b.String(),
			maxBits,
		)
	}
	return new(uint256.Int).SetBytes(b[:]), nil
}

// String returns the minimal 0x-prefixed hex representation
func (b FeltBytes) String() string {
	trimmed := strings.TrimLeft(hex.EncodeToString(b[:]), "0")
	if trimmed == "" {
		trimmed = "0"
	}
	return "0x" + trimmed
}

func (b FeltBytes) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

func (b *FeltBytes) UnmarshalText(data []byte) error {
	s := strings.TrimPrefix(strings.TrimPrefix(string(data), "0x"), "0X")
	if s == "" {
		return errors.New("empty hex value")
	}
	if len(s) > FeltSize*2 {
		return fmt.Errorf("hex value too long: %s", string(data))
	}
	if len(s)%2 != 0 {
		s = "0" + s
	}
	decoded, err := hex.DecodeString(s)
	if err != nil {
		return fmt.Errorf("invalid hex value %q: %w", string(data), err)
	}
	tmp, err := NewFeltBytesFromSlice(decoded)
	if err != nil {
		return err
	}
	*b = tmp
	return nil
}

func (b FeltBytes) MarshalCBOR() ([]byte, error) {
	// Always encode a full-sized bytestring, even if the value is zero
	return cbor.Encode(b[:])
}

func (b *FeltBytes) UnmarshalCBOR(cborData []byte) error {
	var tmpData []byte
	if _, err := cbor.Decode(cborData, &tmpData); err != nil {
		return err
	}
	tmp, err := NewFeltBytesFromSlice(tmpData)
	if err != nil {
		return err
	}
	*b = tmp
	return nil
}

// FeltsToBytes converts a slice of field elements into their wire representation
func FeltsToBytes(elems []*felt.Felt) []FeltBytes {
	ret := make([]FeltBytes, 0, len(elems))
	for _, elem := range elems {
		ret = append(ret, NewFeltBytes(elem))
	}
	return ret
}

// FeltsFromBytes converts a slice of wire values into field elements, failing on the
// first value that is out of range
func FeltsFromBytes(data []FeltBytes) ([]*felt.Felt, error) {
	ret := make([]*felt.Felt, 0, len(data))
	for idx, item := range data {
		tmp, err := item.Felt()
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", idx, err)
		}
		ret = append(ret, tmp)
	}
	return ret, nil
}
