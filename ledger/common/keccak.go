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
	"github.com/NethermindEth/juno/core/felt"
	"golang.org/x/crypto/sha3"
)

// StarknetKeccak returns the keccak256 hash of the data truncated to its 250 least
// significant bits, as used for entry point selectors
func StarknetKeccak(data []byte) *felt.Felt {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	digest := h.Sum(nil)
	// Mask the top 6 bits
	digest[0] &= 0x03
	return new(felt.Felt).SetBytes(digest)
}

// EntryPointSelector returns the selector for the named entry point
func EntryPointSelector(name string) *felt.Felt {
	return StarknetKeccak([]byte(name))
}
