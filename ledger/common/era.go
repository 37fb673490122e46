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
	"strconv"
)

// BlockNumber is an optional block height. The zero value means that no block height
// is known, which is distinct from block 0
type BlockNumber struct {
	number uint64
	known  bool
}

// NoBlock is the absent block height, used when hashing transactions that are not yet
// part of a block
var NoBlock = BlockNumber{}

// AtBlock returns a known block height
func AtBlock(number uint64) BlockNumber {
	return BlockNumber{number: number, known: true}
}

// Get returns the block height and whether it is known
func (b BlockNumber) Get() (uint64, bool) {
	return b.number, b.known
}

func (b BlockNumber) Known() bool {
	return b.known
}

func (b BlockNumber) String() string {
	if !b.known {
		return "none"
	}
	return strconv.FormatUint(b.number, 10)
}

// Era identifies the hash encoding in effect for a transaction
type Era uint8

const (
	EraCurrent Era = iota
	// Historical encoding without a version slot
	EraLegacy
	// Oldest L1 handler encoding, without a nonce. Only L1 handler transactions use it
	EraPreLegacy
)

func (e Era) String() string {
	switch e {
	case EraCurrent:
		return "current"
	case EraLegacy:
		return "legacy"
	case EraPreLegacy:
		return "pre-legacy"
	}
	return fmt.Sprintf("Era(%d)", uint8(e))
}

// ParseEra parses the string form of an era
func ParseEra(s string) (Era, error) {
	switch s {
	case "current":
		return EraCurrent, nil
	case "legacy":
		return EraLegacy, nil
	case "pre-legacy", "prelegacy":
		return EraPreLegacy, nil
	}
	return 0, fmt.Errorf("unknown era: %s", s)
}

func (e Era) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

func (e *Era) UnmarshalText(data []byte) error {
	tmp, err := ParseEra(string(data))
	if err != nil {
		return err
	}
	*e = tmp
	return nil
}

// EraPolicy selects the hash encoding for a transaction from its block height.
//
// Invoke V0 and Deploy transactions use GeneralEra, L1 handler transactions use
// L1HandlerEra. Both cutoffs are inclusive. A transaction without a known block height
// uses the era configured for its family rather than any implicit ordering of the
// absent value.
//
// The zero value is the same as DefaultEraPolicy
type EraPolicy struct {
	LegacyBlock             uint64
	LegacyL1HandlerBlock    uint64
	AbsentBlockEra          Era
	AbsentBlockL1HandlerEra Era
}

// DefaultEraPolicy returns the mainnet thresholds, with absent block heights hashed in
// the current era
func DefaultEraPolicy() EraPolicy {
	return EraPolicy{
		LegacyBlock:             LegacyBlockNumber,
		LegacyL1HandlerBlock:    LegacyL1HandlerBlockNumber,
		AbsentBlockEra:          EraCurrent,
		AbsentBlockL1HandlerEra: EraCurrent,
	}
}

// Effective returns the policy used for hashing, which is DefaultEraPolicy for the zero
// value
func (p EraPolicy) Effective() EraPolicy {
	if p == (EraPolicy{}) {
		return DefaultEraPolicy()
	}
	return p
}

// Validate checks the policy for configuration defects. A policy that fails validation
// must not be used for hashing
func (p EraPolicy) Validate() error {
	p = p.Effective()
	if p.LegacyL1HandlerBlock >= p.LegacyBlock {
		return InvalidEraPolicyError{
			Reason: fmt.Sprintf(
				"L1 handler cutoff %d must be lower than legacy cutoff %d",
				p.LegacyL1HandlerBlock,
				p.LegacyBlock,
			),
		}
	}
	switch p.AbsentBlockEra {
	case EraCurrent, EraLegacy:
	default:
		return InvalidEraPolicyError{
			Reason: fmt.Sprintf(
				"era %s is not valid for transactions without a block",
				p.AbsentBlockEra,
			),
		}
	}
	switch p.AbsentBlockL1HandlerEra {
	case EraCurrent, EraLegacy, EraPreLegacy:
	default:
		return InvalidEraPolicyError{
			Reason: fmt.Sprintf(
				"era %s is not valid for L1 handler transactions without a block",
				p.AbsentBlockL1HandlerEra,
			),
		}
	}
	return nil
}

// GeneralEra returns the era for invoke and deploy transactions. It never returns
// EraPreLegacy
func (p EraPolicy) GeneralEra(block BlockNumber) Era {
	p = p.Effective()
	number, ok := block.Get()
	if !ok {
		return p.AbsentBlockEra
	}
	if number <= p.LegacyBlock {
		return EraLegacy
	}
	return EraCurrent
}

// L1HandlerEra returns the era for L1 handler transactions
func (p EraPolicy) L1HandlerEra(block BlockNumber) Era {
	p = p.Effective()
	number, ok := block.Get()
	if !ok {
		return p.AbsentBlockL1HandlerEra
	}
	if number <= p.LegacyL1HandlerBlock {
		return EraPreLegacy
	}
	if number <= p.LegacyBlock {
		return EraLegacy
	}
	return EraCurrent
}
