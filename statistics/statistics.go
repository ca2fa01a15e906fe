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

package statistics

import (
	"github.com/shineyearpf/starrocks/expression"
)

// ColumnStatistic carries the per-column estimates consumed by cost models.
// Values over non-numeric domains are encoded the same way histogram bounds
// are, so Min/Max comparisons stay order-consistent.
type ColumnStatistic struct {
	MinValue       float64
	MaxValue       float64
	NullsFraction  float64
	AverageRowSize float64
	DistinctCount  float64
}

// Statistics is the estimated output of one plan node: its row count and the
// statistics of the columns it produces. It is read-only for consumers.
type Statistics struct {
	outputRowCount float64
	columnStats    map[int64]*ColumnStatistic
}

// OutputRowCount returns the estimated number of output rows.
func (s *Statistics) OutputRowCount() float64 {
	return s.outputRowCount
}

// ColumnStatistic returns the statistic of the given column, or nil.
func (s *Statistics) ColumnStatistic(col *expression.Column) *ColumnStatistic {
	return s.columnStats[col.UniqueID]
}

// HasColumnStatistic reports whether a statistic exists for the column.
func (s *Statistics) HasColumnStatistic(col *expression.Column) bool {
	_, ok := s.columnStats[col.UniqueID]
	return ok
}

// OutputSize returns the estimated output size, in bytes, of the node
// restricted to the given columns: row count times the summed average row
// size of those columns.
func (s *Statistics) OutputSize(cols []*expression.Column) float64 {
	var rowSize float64
	for _, col := range cols {
		if cs, ok := s.columnStats[col.UniqueID]; ok {
			rowSize += cs.AverageRowSize
		}
	}
	return s.outputRowCount * rowSize
}

// StatisticsBuilder assembles an immutable Statistics.
type StatisticsBuilder struct {
	stats Statistics
}

// NewStatisticsBuilder creates an empty builder.
func NewStatisticsBuilder() *StatisticsBuilder {
	return &StatisticsBuilder{
		stats: Statistics{columnStats: make(map[int64]*ColumnStatistic)},
	}
}

// SetOutputRowCount sets the estimated output row count.
func (b *StatisticsBuilder) SetOutputRowCount(count float64) *StatisticsBuilder {
	b.stats.outputRowCount = count
	return b
}

// AddColumnStatistic records the statistic of one output column.
func (b *StatisticsBuilder) AddColumnStatistic(col *expression.Column, cs *ColumnStatistic) *StatisticsBuilder {
	b.stats.columnStats[col.UniqueID] = cs
	return b
}

// Build returns the assembled Statistics.
func (b *StatisticsBuilder) Build() *Statistics {
	return &b.stats
}
