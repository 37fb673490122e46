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
	"errors"
	"fmt"
)

// ErrUnknownTransactionType is raised when a transaction value of an unexpected type
// reaches the hash dispatcher. This is a programming error
var ErrUnknownTransactionType = errors.New("unknown transaction type")

// ErrNotUserTransaction indicates a transaction kind that cannot be submitted by users
var ErrNotUserTransaction = errors.New("not a user transaction")

// UnknownTransactionTypeError carries the offending type for ErrUnknownTransactionType
type UnknownTransactionTypeError struct {
	Type string
}

func (e UnknownTransactionTypeError) Error() string {
	return fmt.Sprintf("unknown transaction type: %s", e.Type)
}

func (UnknownTransactionTypeError) Is(target error) bool {
	return target == ErrUnknownTransactionType
}

// InvalidEraPolicyError indicates an era policy that cannot be used for hashing
type InvalidEraPolicyError struct {
	Reason string
}

func (e InvalidEraPolicyError) Error() string {
	return "invalid era policy: " + e.Reason
}

// FeltOutOfRangeError indicates a wire value at or above the field modulus
type FeltOutOfRangeError struct {
	Value FeltBytes
}

func (e FeltOutOfRangeError) Error() string {
	return fmt.Sprintf(
		"value %s is not a valid field element",
		e.Value.String(),
	)
}

// ShortStringError indicates a string that cannot be encoded as a Cairo short string
type ShortStringError struct {
	Value  string
	Reason string
}

func (e ShortStringError) Error() string {
	return fmt.Sprintf("invalid short string %q: %s", e.Value, e.Reason)
}

// FieldDecodeError wraps a failure to decode a named transaction field
type FieldDecodeError struct {
	Field string
	Err   error
}

func (e FieldDecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Field, e.Err)
}

func (e FieldDecodeError) Unwrap() error { return e.Err }
