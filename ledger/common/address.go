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
	"math/big"

	"github.com/NethermindEth/juno/core/felt"
)

// CalculateContractAddress derives the address of a contract deployed with the given
// salt, class hash and constructor calldata, with deployer address 0:
//
//	h(CONTRACT_ADDRESS_PREFIX, 0, salt, class_hash, h(calldata)) mod 2**251 - 256
func CalculateContractAddress(
	h Hasher,
	salt *felt.Felt,
	classHash *felt.Felt,
	constructorCalldata []*felt.Felt,
) *felt.Felt {
	tmpHash := h.HashElements(
		ContractAddressPrefixFelt(),
		new(felt.Felt),
		salt,
		classHash,
		h.HashElements(constructorCalldata...),
	)
	tmpInt := tmpHash.BigInt(new(big.Int))
	tmpInt.Mod(tmpInt, addressBound)
	return new(felt.Felt).SetBigInt(tmpInt)
}
