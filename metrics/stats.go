// Copyright 2022 StarRocks Authors.
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

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Statistics metrics.
var (
	HistogramCacheHitCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "starrocks",
			Subsystem: "statistics",
			Name:      "histogram_cache_hit_total",
			Help:      "Counter of histogram cache hits.",
		})

	HistogramCacheMissCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "starrocks",
			Subsystem: "statistics",
			Name:      "histogram_cache_miss_total",
			Help:      "Counter of histogram cache misses.",
		})

	ReadHistogramDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "starrocks",
			Subsystem: "statistics",
			Name:      "read_histogram_duration_seconds",
			Help:      "Bucketed histogram of the time spent loading one column histogram.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 20), // 1ms ~ 524s
		})

	LoadHistogramFailedCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "starrocks",
			Subsystem: "statistics",
			Name:      "load_histogram_failed_total",
			Help:      "Counter of failed histogram loads.",
		}, []string{LblType})
)
