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

// Domain separation prefixes for transaction hashes
const (
	DeclarePrefix       = "declare"
	DeployAccountPrefix = "deploy_account"
	DeployPrefix        = "deploy"
	InvokePrefix        = "invoke"
	L1HandlerPrefix     = "l1_handler"

	ContractAddressPrefix = "STARKNET_CONTRACT_ADDRESS"

	ConstructorEntryPointName = "constructor"
)

// Block heights at or below which the historical hash encodings apply
const (
	LegacyBlockNumber          uint64 = 1470
	LegacyL1HandlerBlockNumber uint64 = 854
)

// These are built once at package init and must never be mutated. Callers receive copies
// from the accessor functions below
var (
	declarePrefixFelt         = MustFeltFromShortString(DeclarePrefix)
	deployAccountPrefixFelt   = MustFeltFromShortString(DeployAccountPrefix)
	deployPrefixFelt          = MustFeltFromShortString(DeployPrefix)
	invokePrefixFelt          = MustFeltFromShortString(InvokePrefix)
	l1HandlerPrefixFelt       = MustFeltFromShortString(L1HandlerPrefix)
	contractAddressPrefixFelt = MustFeltFromShortString(ContractAddressPrefix)

	constructorSelectorFelt = StarknetKeccak([]byte(ConstructorEntryPointName))

	// 2**128
	simulateTxVersionOffset = new(felt.Felt).SetBigInt(
		new(big.Int).Lsh(big.NewInt(1), 128),
	)

	// 2**251 - 256
	addressBound = new(big.Int).Sub(
		new(big.Int).Lsh(big.NewInt(1), 251),
		big.NewInt(256),
	)
)

func DeclarePrefixFelt() *felt.Felt {
	return cloneFelt(declarePrefixFelt)
}

func DeployAccountPrefixFelt() *felt.Felt {
	return cloneFelt(deployAccountPrefixFelt)
}

func DeployPrefixFelt() *felt.Felt {
	return cloneFelt(deployPrefixFelt)
}

func InvokePrefixFelt() *felt.Felt {
	return cloneFelt(invokePrefixFelt)
}

func L1HandlerPrefixFelt() *felt.Felt {
	return cloneFelt(l1HandlerPrefixFelt)
}

func ContractAddressPrefixFelt() *felt.Felt {
	return cloneFelt(contractAddressPrefixFelt)
}

// ConstructorSelector returns the entry point selector of the "constructor" function
func ConstructorSelector() *felt.Felt {
	return cloneFelt(constructorSelectorFelt)
}

// SimulateTxVersionOffset returns the offset added to the version of query transactions
func SimulateTxVersionOffset() *felt.Felt {
	return cloneFelt(simulateTxVersionOffset)
}

// AddressBound returns 2**251 - 256, the exclusive upper bound of contract addresses
func AddressBound() *big.Int {
	return new(big.Int).Set(addressBound)
}

// TxVersion returns the value of the version slot, shifted by the simulation offset for
// query transactions
func TxVersion(version uint64, isQuery bool) *felt.Felt {
	ret := FeltFromUint64(version)
	if isQuery {
		ret.Add(ret, simulateTxVersionOffset)
	}
	return ret
}

func cloneFelt(f *felt.Felt) *felt.Felt {
	ret := new(felt.Felt)
	*ret = *f
	return ret
}
