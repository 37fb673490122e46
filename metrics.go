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
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "starknet_txhash"

type hashMetrics struct {
	hashes        *prometheus.CounterVec
	cacheHits     prometheus.Counter
	cacheMisses   prometheus.Counter
	batchDuration prometheus.Histogram
}

func newHashMetrics(registry prometheus.Registerer) (*hashMetrics, error) {
	m := &hashMetrics{
		hashes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "hashes_total",
				Help:      "Transaction hashes computed, by transaction type and era",
			},
			[]string{"type", "era"},
		),
		cacheHits: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "cache_hits_total",
				Help:      "Transaction hashes served from the result cache",
			},
		),
		cacheMisses: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "cache_misses_total",
				Help:      "Transaction hash lookups not found in the result cache",
			},
		),
		batchDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "batch_duration_seconds",
				Help:      "Time spent hashing a batch of transactions",
				Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
			},
		),
	}
	collectors := []prometheus.Collector{
		m.hashes,
		m.cacheHits,
		m.cacheMisses,
		m.batchDuration,
	}
	for _, collector := range collectors {
		if err := registry.Register(collector); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// The methods below accept a nil receiver so that metrics are optional

func (m *hashMetrics) observeHash(txType string, era string) {
	if m == nil {
		return
	}
	m.hashes.WithLabelValues(txType, era).Inc()
}

func (m *hashMetrics) observeCache(hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.cacheHits.Inc()
	} else {
		m.cacheMisses.Inc()
	}
}

func (m *hashMetrics) observeBatch(duration time.Duration) {
	if m == nil {
		return
	}
	m.batchDuration.Observe(duration.Seconds())
}
