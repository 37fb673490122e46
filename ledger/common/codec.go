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
	"fmt"

	"github.com/NethermindEth/juno/core/felt"
	"github.com/holiman/uint256"
)

const (
	// Fees are u128 on the wire
	MaxFeeBits = 128
)

// JSON transaction type names
const (
	JsonTypeInvoke        = "INVOKE"
	JsonTypeDeclare       = "DECLARE"
	JsonTypeDeployAccount = "DEPLOY_ACCOUNT"
	JsonTypeDeploy        = "DEPLOY"
	JsonTypeL1Handler     = "L1_HANDLER"
)

// DecodeFeltField converts a wire value into a field element, reporting the field name
// on failure
func DecodeFeltField(name string, b FeltBytes) (*felt.Felt, error) {
	ret, err := b.Felt()
	if err != nil {
		return nil, FieldDecodeError{Field: name, Err: err}
	}
	return ret, nil
}

// DecodeFeltSliceField converts a list of wire values into field elements
func DecodeFeltSliceField(name string, data []FeltBytes) ([]*felt.Felt, error) {
	ret, err := FeltsFromBytes(data)
	if err != nil {
		return nil, FieldDecodeError{Field: name, Err: err}
	}
	return ret, nil
}

// DecodeFeeField converts a wire value into a fee amount of at most 128 bits
func DecodeFeeField(name string, b FeltBytes) (*uint256.Int, error) {
	ret, err := b.Uint256(MaxFeeBits)
	if err != nil {
		return nil, FieldDecodeError{Field: name, Err: err}
	}
	return ret, nil
}

// DecodeNonceField converts a wire value into a native nonce
func DecodeNonceField(name string, b FeltBytes) (uint64, error) {
	ret, err := b.Uint64()
	if err != nil {
		return 0, FieldDecodeError{Field: name, Err: err}
	}
	return ret, nil
}

// FeeBytes returns the wire representation of a fee amount
func FeeBytes(fee *uint256.Int) FeltBytes {
	if fee == nil {
		return FeltBytes{}
	}
	return FeltBytes(fee.Bytes32())
}

// NonceBytes returns the wire representation of a nonce
func NonceBytes(nonce uint64) FeltBytes {
	return NewFeltBytes(FeltFromUint64(nonce))
}

// VersionBytes returns the wire representation of a transaction version
func VersionBytes(version uint64) FeltBytes {
	return NewFeltBytes(FeltFromUint64(version))
}

// CheckJsonHeader verifies the type and version of a decoded JSON transaction
func CheckJsonHeader(
	gotType string,
	gotVersion FeltBytes,
	wantType string,
	wantVersion uint64,
) error {
	if gotType != wantType {
		return fmt.Errorf(
			"unexpected transaction type %q, expected %q",
			gotType,
			wantType,
		)
	}
	version, err := gotVersion.Uint64()
	if err != nil || version != wantVersion {
		return fmt.Errorf(
			"unexpected %s transaction version %s, expected %d",
			wantType,
			gotVersion.String(),
			wantVersion,
		)
	}
	return nil
}
