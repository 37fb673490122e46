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

package ledger

import (
	"fmt"

	"github.com/NethermindEth/juno/core/felt"
	"github.com/blinklabs-io/gostarknet/ledger/common"
	"github.com/blinklabs-io/gostarknet/ledger/declare"
	"github.com/blinklabs-io/gostarknet/ledger/deploy"
	"github.com/blinklabs-io/gostarknet/ledger/deployaccount"
	"github.com/blinklabs-io/gostarknet/ledger/invoke"
	"github.com/blinklabs-io/gostarknet/ledger/l1handler"
)

// TransactionHash computes the commitment hash of a transaction.
//
// Every transaction kind is listed explicitly. A value of any other type is a
// programming error and causes a panic rather than a made-up hash. An era policy that
// fails validation panics with its InvalidEraPolicyError for the same reason
func TransactionHash(tx Transaction, h Hasher, ctx HashContext) *felt.Felt {
	if err := ctx.Policy.Validate(); err != nil {
		panic(err)
	}
	switch t := tx.(type) {
	case *invoke.InvokeTransactionV0:
		return t.Hash(h, ctx)
	case *invoke.InvokeTransactionV1:
		return t.Hash(h, ctx)
	case *declare.DeclareTransactionV0:
		return t.Hash(h, ctx)
	case *declare.DeclareTransactionV1:
		return t.Hash(h, ctx)
	case *declare.DeclareTransactionV2:
		return t.Hash(h, ctx)
	case *deployaccount.DeployAccountTransaction:
		return t.Hash(h, ctx)
	case *deploy.DeployTransaction:
		return t.Hash(h, ctx)
	case *l1handler.L1HandlerTransaction:
		return t.Hash(h, ctx)
	default:
		panic(common.UnknownTransactionTypeError{Type: fmt.Sprintf("%T", tx)})
	}
}

// TransactionEra returns the encoding era that applies to the transaction. Kinds without
// historical encodings are always in the current era
func TransactionEra(tx Transaction, policy EraPolicy, block BlockNumber) Era {
	switch tx.(type) {
	case *invoke.InvokeTransactionV0, *deploy.DeployTransaction:
		return policy.GeneralEra(block)
	case *l1handler.L1HandlerTransaction:
		return policy.L1HandlerEra(block)
	case *invoke.InvokeTransactionV1,
		*declare.DeclareTransactionV0,
		*declare.DeclareTransactionV1,
		*declare.DeclareTransactionV2,
		*deployaccount.DeployAccountTransaction:
		return common.EraCurrent
	default:
		panic(common.UnknownTransactionTypeError{Type: fmt.Sprintf("%T", tx)})
	}
}

// UserTransactionHash hashes a transaction submitted by a user, which is never part of a
// block yet
func UserTransactionHash(
	tx Transaction,
	h Hasher,
	chainId *felt.Felt,
	isQuery bool,
	policy EraPolicy,
) (*felt.Felt, error) {
	if tx == nil {
		return nil, errNilTransaction
	}
	if !IsUserTransaction(tx) {
		return nil, fmt.Errorf(
			"%w: %s",
			common.ErrNotUserTransaction,
			tx.Type().String(),
		)
	}
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	ctx := HashContext{
		ChainId: chainId,
		IsQuery: isQuery,
		Block:   common.NoBlock,
		Policy:  policy,
	}
	return TransactionHash(tx, h, ctx), nil
}
