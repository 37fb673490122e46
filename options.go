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

package starknet

import (
	"log/slog"

	"github.com/NethermindEth/juno/core/felt"
	"github.com/blinklabs-io/gostarknet/ledger/common"
	"github.com/prometheus/client_golang/prometheus"
)

// HasherOptionFunc is a type that represents functions that modify the TransactionHasher config
type HasherOptionFunc func(*TransactionHasher)

// WithNetwork specifies the network, which supplies the chain ID and the default era
// thresholds
func WithNetwork(network Network) HasherOptionFunc {
	return func(t *TransactionHasher) {
		t.network = network
	}
}

// WithChainId overrides the chain ID of the network
func WithChainId(chainId *felt.Felt) HasherOptionFunc {
	return func(t *TransactionHasher) {
		if chainId == nil {
			t.chainId = nil
			return
		}
		tmp := *chainId
		t.chainId = &tmp
	}
}

// WithHasher specifies the hash backend. The default is Pedersen
func WithHasher(hasher common.Hasher) HasherOptionFunc {
	return func(t *TransactionHasher) {
		t.hasher = hasher
	}
}

// WithEraPolicy overrides the era policy derived from the network
func WithEraPolicy(policy common.EraPolicy) HasherOptionFunc {
	return func(t *TransactionHasher) {
		t.policy = &policy
	}
}

// WithLogger specifies the logger to use. The default is slog.Default()
func WithLogger(logger *slog.Logger) HasherOptionFunc {
	return func(t *TransactionHasher) {
		t.logger = logger
	}
}

// WithCacheSize enables a result cache holding up to the given number of hashes
func WithCacheSize(size int) HasherOptionFunc {
	return func(t *TransactionHasher) {
		t.cacheSize = size
	}
}

// WithWorkers specifies the number of workers used by HashBatch
func WithWorkers(workers int) HasherOptionFunc {
	return func(t *TransactionHasher) {
		t.workers = workers
	}
}

// WithPromRegistry specifies a prometheus registerer for hash metrics
func WithPromRegistry(registry prometheus.Registerer) HasherOptionFunc {
	return func(t *TransactionHasher) {
		t.promRegistry = registry
	}
}
