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

	"github.com/NethermindEth/juno/core/crypto"
	"github.com/NethermindEth/juno/core/felt"
)

const (
	HasherNamePedersen = "pedersen"
	HasherNamePoseidon = "poseidon"
)

// Hasher reduces an ordered sequence of field elements to a single field element.
// Implementations must be order-sensitive, define a result for the empty sequence and
// be safe for concurrent use
type Hasher interface {
	HashElements(elems ...*felt.Felt) *felt.Felt
}

// HasherFunc adapts a plain function to the Hasher interface
type HasherFunc func(elems ...*felt.Felt) *felt.Felt

func (f HasherFunc) HashElements(elems ...*felt.Felt) *felt.Felt {
	return f(elems...)
}

// PedersenHasher computes the Starknet compute_hash_on_elements chain:
// h(h(h(0, a), b), len)
type PedersenHasher struct{}

func (PedersenHasher) HashElements(elems ...*felt.Felt) *felt.Felt {
	return crypto.PedersenArray(elems...)
}

func (PedersenHasher) String() string {
	return HasherNamePedersen
}

// PoseidonHasher computes the Poseidon hash of the sequence
type PoseidonHasher struct{}

func (PoseidonHasher) HashElements(elems ...*felt.Felt) *felt.Felt {
	return crypto.PoseidonArray(elems...)
}

func (PoseidonHasher) String() string {
	return HasherNamePoseidon
}

// HasherByName returns the hash backend with the given name
func HasherByName(name string) (Hasher, error) {
	switch name {
	case HasherNamePedersen, "":
		return PedersenHasher{}, nil
	case HasherNamePoseidon:
		return PoseidonHasher{}, nil
	}
	return nil, fmt.Errorf("unknown hasher: %s", name)
}

// HasherName returns the configured name of a known backend, or a Go type name for
// anything else
func HasherName(h Hasher) string {
	if s, ok := h.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", h)
}
