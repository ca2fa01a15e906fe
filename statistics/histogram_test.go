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

package statistics_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shineyearpf/starrocks/statistics"
)

func TestHistogramRowCounts(t *testing.T) {
	hg := statistics.NewHistogram(
		[]statistics.Bucket{
			{Lower: 1, Upper: 10, Count: 100, Repeat: 7},
			{Lower: 11, Upper: 20, Count: 50, Repeat: 3},
		},
		map[float64]int64{42: 1000, 43: 500},
	)
	require.Equal(t, 2, hg.Len())
	require.Equal(t, int64(1500), hg.TopNRowCount())
	require.Equal(t, int64(1650), hg.TotalRows())
}

func TestHistogramMemoryUsage(t *testing.T) {
	var nilHist *statistics.Histogram
	require.Equal(t, int64(0), nilHist.MemoryUsage())

	empty := statistics.NewHistogram(nil, nil)
	small := statistics.NewHistogram(
		[]statistics.Bucket{{Lower: 1, Upper: 2, Count: 3, Repeat: 1}},
		map[float64]int64{1: 1},
	)
	require.Greater(t, empty.MemoryUsage(), int64(0))
	require.Greater(t, small.MemoryUsage(), empty.MemoryUsage())
}
