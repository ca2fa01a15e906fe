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
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestRegisterMetrics(t *testing.T) {
	require.NotPanics(t, RegisterMetrics)

	HistogramCacheHitCounter.Inc()
	HistogramCacheMissCounter.Inc()
	ReadHistogramDuration.Observe(0.01)
	LoadHistogramFailedCounter.WithLabelValues(LblFetch).Inc()
	LoadHistogramFailedCounter.WithLabelValues(LblDecode).Inc()

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)
	registered := make(map[string]bool, len(families))
	for _, mf := range families {
		registered[mf.GetName()] = true
	}
	for _, name := range []string{
		"starrocks_statistics_histogram_cache_hit_total",
		"starrocks_statistics_histogram_cache_miss_total",
		"starrocks_statistics_read_histogram_duration_seconds",
		"starrocks_statistics_load_histogram_failed_total",
	} {
		require.True(t, registered[name], name)
	}
}
