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

// Package common provides the types shared by all Starknet transaction kinds.
//
// # Key Files by Purpose
//
// Field elements:
//   - felt.go: conversions between field elements, integers, short strings and the
//     fixed-width wire form FeltBytes
//   - constants.go: hash domain prefixes, the constructor selector and era cutoffs
//   - keccak.go: StarknetKeccak and entry point selectors
//
// Hashing:
//   - hash.go: the Hasher interface and the Pedersen and Poseidon backends
//   - era.go: BlockNumber and the EraPolicy that picks a historical encoding
//   - address.go: contract address derivation
//   - tx.go: the Transaction interface, TxType and HashContext
//
// Decoding:
//   - codec.go: checked conversion of wire fields
//   - errors.go: error types shared across transaction kinds
//
// # Testing
//
// Use RecordingHasher from internal/test to assert the exact preimage a transaction
// feeds to the hash backend.
package common
