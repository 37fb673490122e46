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

// Package starknet computes Starknet transaction commitment hashes.
//
// The TransactionHasher ties a network, a hash backend and an era policy together and
// hashes transactions from the ledger packages, one at a time or in parallel batches
package starknet

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/NethermindEth/juno/core/felt"
	"github.com/blinklabs-io/gostarknet/ledger"
	"github.com/blinklabs-io/gostarknet/ledger/common"
	"github.com/gammazero/workerpool"
	lru "github.com/hashicorp/golang-lru"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/crypto/blake2b"
)

// TransactionHasher computes transaction hashes for a single network. It is immutable
// after New returns and safe for concurrent use
type TransactionHasher struct {
	network      Network
	chainId      *felt.Felt
	hasher       common.Hasher
	policy       *common.EraPolicy
	logger       *slog.Logger
	cacheSize    int
	cache        *lru.Cache
	workers      int
	promRegistry prometheus.Registerer
	metrics      *hashMetrics
}

// HashRequest is a single item of a batch
type HashRequest struct {
	Transaction ledger.Transaction
	IsQuery     bool
	Block       common.BlockNumber
}

// New returns a TransactionHasher configured with the provided options. It fails on any
// configuration defect, such as a missing chain ID or an inconsistent era policy
func New(options ...HasherOptionFunc) (*TransactionHasher, error) {
	t := &TransactionHasher{
		network: NetworkMainnet,
	}
	for _, option := range options {
		option(t)
	}
	if t.logger == nil {
		t.logger = slog.Default()
	}
	if t.hasher == nil {
		t.hasher = common.PedersenHasher{}
	}
	if t.chainId == nil {
		t.chainId = t.network.ChainIdFelt()
		if t.chainId == nil {
			return nil, fmt.Errorf(
				"no chain ID for network %q",
				t.network.Name,
			)
		}
	}
	if t.policy == nil {
		policy := t.network.EraPolicy()
		t.policy = &policy
	}
	policy := t.policy.Effective()
	t.policy = &policy
	if err := t.policy.Validate(); err != nil {
		return nil, err
	}
	if t.workers <= 0 {
		t.workers = runtime.GOMAXPROCS(0)
	}
	if t.cacheSize > 0 {
		cache, err := lru.New(t.cacheSize)
		if err != nil {
			return nil, fmt.Errorf("create hash cache: %w", err)
		}
		t.cache = cache
	}
	if t.promRegistry != nil {
		metrics, err := newHashMetrics(t.promRegistry)
		if err != nil {
			return nil, fmt.Errorf("register metrics: %w", err)
		}
		t.metrics = metrics
	}
	t.logger.Info(
		"transaction hasher configured",
		"component", "ledger",
		"network", t.network.Name,
		"chain_id", t.chainId.String(),
		"hasher", common.HasherName(t.hasher),
		"legacy_block", t.policy.LegacyBlock,
		"legacy_l1_handler_block", t.policy.LegacyL1HandlerBlock,
		"absent_block_era", t.policy.AbsentBlockEra.String(),
		"absent_block_l1_handler_era", t.policy.AbsentBlockL1HandlerEra.String(),
	)
	return t, nil
}

func (t *TransactionHasher) Network() Network {
	return t.network
}

// ChainId returns a copy of the chain ID used for hashing
func (t *TransactionHasher) ChainId() *felt.Felt {
	ret := new(felt.Felt)
	*ret = *t.chainId
	return ret
}

func (t *TransactionHasher) EraPolicy() common.EraPolicy {
	return *t.policy
}

func (t *TransactionHasher) Hasher() common.Hasher {
	return t.hasher
}

func (t *TransactionHasher) hashContext(
	isQuery bool,
	block common.BlockNumber,
) common.HashContext {
	return common.HashContext{
		ChainId: t.chainId,
		IsQuery: isQuery,
		Block:   block,
		Policy:  *t.policy,
	}
}

// Hash computes the commitment hash of a transaction
func (t *TransactionHasher) Hash(
	tx ledger.Transaction,
	isQuery bool,
	block common.BlockNumber,
) *felt.Felt {
	var cacheKey [blake2b.Size256]byte
	useCache := false
	if t.cache != nil {
		if key, err := t.cacheKey(tx, isQuery, block); err == nil {
			cacheKey = key
			useCache = true
			if cached, ok := t.cache.Get(cacheKey); ok {
				t.metrics.observeCache(true)
				ret := new(felt.Felt)
				*ret = cached.(felt.Felt)
				return ret
			}
			t.metrics.observeCache(false)
		} else {
			t.logger.Warn(
				"failed to build hash cache key",
				"component", "ledger",
				"error", err,
			)
		}
	}
	era := ledger.TransactionEra(tx, *t.policy, block)
	ret := ledger.TransactionHash(tx, t.hasher, t.hashContext(isQuery, block))
	t.metrics.observeHash(tx.Type().String(), era.String())
	if useCache {
		t.cache.Add(cacheKey, *ret)
	}
	if t.logger.Enabled(context.Background(), slog.LevelDebug) {
		t.logger.Debug(
			"computed transaction hash",
			"component", "ledger",
			"type", tx.Type().String(),
			"era", era.String(),
			"block", block.String(),
			"query", isQuery,
			"hash", ret.String(),
		)
	}
	return ret
}

// HashUserTransaction computes the hash of a transaction submitted by a user, outside of
// any block
func (t *TransactionHasher) HashUserTransaction(
	tx ledger.Transaction,
	isQuery bool,
) (*felt.Felt, error) {
	if tx == nil || !ledger.IsUserTransaction(tx) {
		// Let the ledger package produce the error
		return ledger.UserTransactionHash(tx, t.hasher, t.chainId, isQuery, *t.policy)
	}
	return t.Hash(tx, isQuery, common.NoBlock), nil
}

// Preimage returns the sequence of elements that the outer hash call receives
func (t *TransactionHasher) Preimage(
	tx ledger.Transaction,
	isQuery bool,
	block common.BlockNumber,
) []*felt.Felt {
	// Panics on unknown transaction kinds before calling into them
	era := ledger.TransactionEra(tx, *t.policy, block)
	ret := tx.Preimage(t.hasher, t.hashContext(isQuery, block))
	t.logger.Debug(
		"built transaction preimage",
		"component", "ledger",
		"type", tx.Type().String(),
		"era", era.String(),
		"block", block.String(),
		"query", isQuery,
		"elements", len(ret),
	)
	return ret
}

// ContractAddress derives a contract address with the configured hash backend
func (t *TransactionHasher) ContractAddress(
	salt *felt.Felt,
	classHash *felt.Felt,
	constructorCalldata []*felt.Felt,
) *felt.Felt {
	return common.CalculateContractAddress(
		t.hasher,
		salt,
		classHash,
		constructorCalldata,
	)
}

// HashBatch hashes many transactions in parallel. Results are returned in request order.
// Cancelling the context stops any work that has not started yet
func (t *TransactionHasher) HashBatch(
	ctx context.Context,
	reqs []HashRequest,
) ([]*felt.Felt, error) {
	for idx, req := range reqs {
		if req.Transaction == nil {
			return nil, fmt.Errorf("batch item %d: %w", idx, errNilTransaction)
		}
	}
	start := time.Now()
	results := make([]*felt.Felt, len(reqs))
	wp := workerpool.New(t.workers)
	for idx, req := range reqs {
		if err := ctx.Err(); err != nil {
			wp.Stop()
			return nil, err
		}
		wp.Submit(func() {
			if ctx.Err() != nil {
				return
			}
			results[idx] = t.Hash(req.Transaction, req.IsQuery, req.Block)
		})
	}
	wp.StopWait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t.metrics.observeBatch(time.Since(start))
	t.logger.Debug(
		"hashed transaction batch",
		"component", "ledger",
		"count", len(reqs),
		"duration", time.Since(start),
	)
	return results, nil
}

var errNilTransaction = errors.New("nil transaction")

// cacheKey digests the per-call hash inputs. The chain ID, backend and policy are fixed
// for the lifetime of the hasher
func (t *TransactionHasher) cacheKey(
	tx ledger.Transaction,
	isQuery bool,
	block common.BlockNumber,
) ([blake2b.Size256]byte, error) {
	var ret [blake2b.Size256]byte
	txCbor, err := ledger.TransactionCbor(tx)
	if err != nil {
		return ret, err
	}
	h, err := blake2b.New256(nil)
	if err != nil {
		return ret, err
	}
	var flags [18]byte
	binary.BigEndian.PutUint64(flags[:8], uint64(tx.Type()))
	if isQuery {
		flags[8] = 1
	}
	if number, ok := block.Get(); ok {
		flags[9] = 1
		binary.BigEndian.PutUint64(flags[10:], number)
	}
	h.Write(flags[:])
	h.Write(txCbor)
	copy(ret[:], h.Sum(nil))
	return ret, nil
}
