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

package core

import (
	"github.com/shineyearpf/starrocks/expression"
	"github.com/shineyearpf/starrocks/statistics"
)

// ExpressionContext carries the derived per-child information a physical
// cost model reads: each child's statistics and the child output columns
// actually needed downstream.
type ExpressionContext struct {
	childStatistics    []*statistics.Statistics
	childOutputColumns [][]*expression.Column
}

// NewExpressionContext creates an ExpressionContext over per-child
// statistics and output columns, index-aligned.
func NewExpressionContext(childStatistics []*statistics.Statistics, childOutputColumns [][]*expression.Column) *ExpressionContext {
	return &ExpressionContext{
		childStatistics:    childStatistics,
		childOutputColumns: childOutputColumns,
	}
}

// ChildStatistics returns the statistics of the i-th child.
func (ctx *ExpressionContext) ChildStatistics(i int) *statistics.Statistics {
	return ctx.childStatistics[i]
}

// ChildOutputColumns returns the output columns of the i-th child.
func (ctx *ExpressionContext) ChildOutputColumns(i int) []*expression.Column {
	return ctx.childOutputColumns[i]
}
