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

// Package cbor provides CBOR encoding/decoding utilities for Starknet transaction envelopes.
//
// This package wraps github.com/fxamacker/cbor/v2 with a deterministic encoder
// and a cached decoder that rejects unknown fields.
//
// # Key Types
//
// Embeddable types for struct encoding:
//   - StructAsArray: Embed to encode struct fields as CBOR array instead of map
//   - DecodeStoreCbor: Embed to preserve original CBOR bytes, set with SetCbor
//
// Utility types:
//   - RawMessage: Deferred decoding (like json.RawMessage)
//
// # Envelopes
//
// Transactions travel as a two-element list of the transaction type and the
// encoded body. DecodeIdFromList reads the type without decoding the body.
package cbor
