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

	"github.com/shineyearpf/starrocks/expression"
	"github.com/shineyearpf/starrocks/statistics"
)

func TestStatisticsOutputSize(t *testing.T) {
	colA := &expression.Column{UniqueID: 1, Name: "a"}
	colB := &expression.Column{UniqueID: 2, Name: "b"}
	colC := &expression.Column{UniqueID: 3, Name: "c"}
	stats := statistics.NewStatisticsBuilder().
		SetOutputRowCount(100).
		AddColumnStatistic(colA, &statistics.ColumnStatistic{AverageRowSize: 4}).
		AddColumnStatistic(colB, &statistics.ColumnStatistic{AverageRowSize: 8}).
		Build()

	require.Equal(t, float64(100), stats.OutputRowCount())
	require.True(t, stats.HasColumnStatistic(colA))
	require.False(t, stats.HasColumnStatistic(colC))
	require.Nil(t, stats.ColumnStatistic(colC))

	require.Equal(t, float64(1200), stats.OutputSize([]*expression.Column{colA, colB}))
	// columns without statistics contribute nothing to the row width
	require.Equal(t, float64(400), stats.OutputSize([]*expression.Column{colA, colC}))
	require.Equal(t, float64(0), stats.OutputSize(nil))
}
