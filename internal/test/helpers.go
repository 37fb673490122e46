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

package test

import (
	"encoding/hex"
	"fmt"
	"strings"
	"sync"

	"github.com/NethermindEth/juno/core/felt"
	"github.com/blinklabs-io/gostarknet/ledger/common"
)

// DecodeHexString is a helper function for tests that decodes hex strings. It doesn't return
// an error value, which makes it usable inline.
func DecodeHexString(hexData string) []byte {
	// Strip off any leading/trailing whitespace in hex string
	hexData = strings.TrimSpace(hexData)
	decoded, err := hex.DecodeString(hexData)
	if err != nil {
		panic(fmt.Sprintf("error decoding hex: %s", err))
	}
	return decoded
}

// Felt parses a hex string into a field element and panics on error
func Felt(hexData string) *felt.Felt {
	ret, err := common.FeltFromHex(hexData)
	if err != nil {
		panic(fmt.Sprintf("error decoding felt: %s", err))
	}
	return ret
}

// Felts parses a list of hex strings into field elements
func Felts(hexData ...string) []*felt.Felt {
	ret := make([]*felt.Felt, 0, len(hexData))
	for _, item := range hexData {
		ret = append(ret, Felt(item))
	}
	return ret
}

// RecordingHasher wraps a hash backend and records every sequence passed to it, in call
// order
type RecordingHasher struct {
	Backend common.Hasher
	mu      sync.Mutex
	calls   [][]*felt.Felt
}

// NewRecordingHasher returns a recorder over the Pedersen backend
func NewRecordingHasher() *RecordingHasher {
	return &RecordingHasher{
		Backend: common.PedersenHasher{},
	}
}

func (r *RecordingHasher) HashElements(elems ...*felt.Felt) *felt.Felt {
	tmp := make([]*felt.Felt, len(elems))
	copy(tmp, elems)
	r.mu.Lock()
	r.calls = append(r.calls, tmp)
	r.mu.Unlock()
	return r.Backend.HashElements(elems...)
}

// Calls returns all recorded sequences
func (r *RecordingHasher) Calls() [][]*felt.Felt {
	r.mu.Lock()
	defer r.mu.Unlock()
	ret := make([][]*felt.Felt, len(r.calls))
	copy(ret, r.calls)
	return ret
}

// LastCall returns the most recent sequence, which is the outer hash call of a
// transaction hash
func (r *RecordingHasher) LastCall() []*felt.Felt {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.calls) == 0 {
		return nil
	}
	return r.calls[len(r.calls)-1]
}

func (r *RecordingHasher) Reset() {
	r.mu.Lock()
	r.calls = nil
	r.mu.Unlock()
}

// FeltStrings renders field elements for readable test failures
func FeltStrings(elems []*felt.Felt) []string {
	ret := make([]string, 0, len(elems))
	for _, elem := range elems {
		ret = append(ret, elem.String())
	}
	return ret
}
