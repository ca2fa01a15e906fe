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
	"math"

	"go.uber.org/zap"

	"github.com/shineyearpf/starrocks/expression"
	"github.com/shineyearpf/starrocks/planner/property"
	"github.com/shineyearpf/starrocks/sessionctx"
	"github.com/shineyearpf/starrocks/statistics"
	"github.com/shineyearpf/starrocks/util/logutil"
)

const (
	// bottomNumber is the hash table entry count beyond which each probe
	// starts paying cache miss penalties.
	bottomNumber = 100000
	// shuffleMaxRatio is the upper limit of the probe penalty of shuffle
	// joins, it avoids cost distortion caused by huge tables.
	shuffleMaxRatio = 3
	// broadcastMaxRatio is the upper limit of the probe penalty of
	// broadcast joins.
	broadcastMaxRatio = 12
)

type joinExecMode int

const (
	// joinExecModeEmpty: no child input property info, use the original
	// evaluation mode.
	joinExecModeEmpty joinExecMode = iota
	// joinExecModeBroadcast: right child with broadcast info, use the
	// broadcast join evaluation mode.
	joinExecModeBroadcast
	// joinExecModeShuffle: right child without broadcast info, use the
	// shuffle join evaluation mode.
	joinExecModeShuffle
)

func (m joinExecMode) String() string {
	switch m {
	case joinExecModeBroadcast:
		return "BROADCAST"
	case joinExecModeShuffle:
		return "SHUFFLE"
	}
	return "EMPTY"
}

// EqualCondition is one equi-join predicate, LeftCol = RightCol.
type EqualCondition struct {
	LeftCol  *expression.Column
	RightCol *expression.Column
}

// HashJoinCostModel prices a binary hash join under its distributed
// execution method.
//
// Broadcast join and the shuffle family (shuffle, bucket shuffle, colocate)
// have different execution characteristics and deserve different cost. The
// shuffle variants redistribute both sides, so each worker builds a hash
// table over 1/parallelism of the right side, while broadcast join builds
// the full right side on every worker with build parallelism 1 and redundant
// memory on each backend. A small per-worker hash table also probes faster.
// The dominant term of the model is the average probe cost per left row:
// once the estimated hash table exceeds bottomNumber entries, probes are
// penalized logarithmically with table size, shuffle execution offsets part
// of that penalty, and both penalties are capped so huge tables cannot
// distort plan choice.
type HashJoinCostModel struct {
	sctx            sessionctx.Context
	ectx            *ExpressionContext
	inputProperties []property.PhysicalPropertySet
	eqOnPredicates  []EqualCondition
	leftStatistics  *statistics.Statistics
	rightStatistics *statistics.Statistics
}

// NewHashJoinCostModel creates a cost model for one hash join alternative.
// The session context and both children's statistics are mandatory; a nil
// value is a programming error, not a costing outcome.
func NewHashJoinCostModel(sctx sessionctx.Context, ectx *ExpressionContext,
	inputProperties []property.PhysicalPropertySet, eqOnPredicates []EqualCondition) *HashJoinCostModel {
	if sctx == nil {
		panic("session context is required by the hash join cost model")
	}
	left, right := ectx.ChildStatistics(0), ectx.ChildStatistics(1)
	if left == nil || right == nil {
		panic("hash join costing requires statistics of both children")
	}
	return &HashJoinCostModel{
		sctx:            sctx,
		ectx:            ectx,
		inputProperties: inputProperties,
		eqOnPredicates:  eqOnPredicates,
		leftStatistics:  left,
		rightStatistics: right,
	}
}

// CPUCost estimates the CPU cost of building the hash table over the right
// child and probing it with the left child.
func (m *HashJoinCostModel) CPUCost() float64 {
	execMode := m.deriveJoinExecMode()
	leftOutput := m.leftStatistics.OutputSize(m.ectx.ChildOutputColumns(0))
	rightOutput := m.rightStatistics.OutputSize(m.ectx.ChildOutputColumns(1))
	parallelFactor := max(m.sctx.GetAliveBackendNumber(), m.sctx.GetSessionVars().DegreeOfParallelism)
	var buildCost, probeCost float64
	switch execMode {
	case joinExecModeBroadcast:
		buildCost = rightOutput
		probeCost = leftOutput * m.avgProbeCost()
	case joinExecModeShuffle:
		buildCost = rightOutput / float64(parallelFactor)
		probeCost = leftOutput * m.avgProbeCost()
	default:
		buildCost = rightOutput
		probeCost = leftOutput
	}
	return buildCost + probeCost
}

// MemCost estimates the memory cost of the materialized right side. A
// broadcast join keeps a full copy on every live backend.
func (m *HashJoinCostModel) MemCost() float64 {
	execMode := m.deriveJoinExecMode()
	rightOutput := m.rightStatistics.OutputSize(m.ectx.ChildOutputColumns(1))
	beNum := max(1, m.sctx.GetAliveBackendNumber())
	if execMode == joinExecModeBroadcast {
		return rightOutput * float64(beNum)
	}
	return rightOutput
}

// avgProbeCost is the multiplicative probe cost per left row.
func (m *HashJoinCostModel) avgProbeCost() float64 {
	execMode := m.deriveJoinExecMode()
	var keySize float64
	for _, pred := range m.eqOnPredicates {
		if m.rightStatistics.HasColumnStatistic(pred.LeftCol) {
			keySize += m.rightStatistics.ColumnStatistic(pred.LeftCol).AverageRowSize
		} else if m.rightStatistics.HasColumnStatistic(pred.RightCol) {
			keySize += m.rightStatistics.ColumnStatistic(pred.RightCol).AverageRowSize
		}
	}
	parallelFactor := max(m.sctx.GetAliveBackendNumber(), m.sctx.GetSessionVars().DegreeOfParallelism) * 2
	mapSize := math.Min(1, keySize) * m.rightStatistics.OutputRowCount()

	var cachePenaltyFactor float64
	if execMode == joinExecModeBroadcast {
		cachePenaltyFactor = math.Max(1, math.Log(mapSize/bottomNumber))
		// normalize the ratio when it hits the limit
		cachePenaltyFactor = math.Min(broadcastMaxRatio, cachePenaltyFactor)
	} else {
		cachePenaltyFactor = math.Max(1, math.Log(mapSize/bottomNumber)-
			math.Log(float64(parallelFactor))/math.Log(2))
		cachePenaltyFactor = math.Min(shuffleMaxRatio, cachePenaltyFactor)
	}
	logutil.BgLogger().Debug("derive hash join probe cost",
		zap.Stringer("execMode", execMode),
		zap.Float64("cachePenaltyFactor", cachePenaltyFactor))
	return cachePenaltyFactor
}

func (m *HashJoinCostModel) deriveJoinExecMode() joinExecMode {
	if len(m.inputProperties) == 0 {
		return joinExecModeEmpty
	}
	if m.inputProperties[1].Distribution.IsBroadcast() {
		return joinExecModeBroadcast
	}
	return joinExecModeShuffle
}
