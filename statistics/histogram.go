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
	"unsafe"
)

// Bucket is one equi-height histogram bucket over the encoded float64 value
// domain.
//
// Count is the number of rows whose value falls in [Lower, Upper]. Repeat is
// the number of rows exactly equal to Upper, it can be used to find popular
// values. Buckets arrive from the statistics storage in ascending order of
// Lower and are kept in that order.
type Bucket struct {
	Lower  float64
	Upper  float64
	Count  int64
	Repeat int64
}

// Histogram represents the value distribution of one column.
//
// TopN holds the heavy hitter values that were excluded from bucket smoothing
// because of their outsized frequency, mapping each encoded value to its row
// count. A Histogram is immutable once constructed.
type Histogram struct {
	Buckets []Bucket
	TopN    map[float64]int64
}

// NewHistogram creates a histogram over decoded buckets and top-n values.
func NewHistogram(buckets []Bucket, topN map[float64]int64) *Histogram {
	return &Histogram{Buckets: buckets, TopN: topN}
}

// Len returns the number of buckets.
func (hg *Histogram) Len() int {
	return len(hg.Buckets)
}

// TopNRowCount returns the total row count of the top-n values.
func (hg *Histogram) TopNRowCount() int64 {
	var rows int64
	for _, count := range hg.TopN {
		rows += count
	}
	return rows
}

// TotalRows returns the row count covered by the histogram, buckets plus
// top-n values.
func (hg *Histogram) TotalRows() int64 {
	rows := hg.TopNRowCount()
	for _, bkt := range hg.Buckets {
		rows += bkt.Count
	}
	return rows
}

const (
	emptyHistogramSize = int64(unsafe.Sizeof(Histogram{}))
	emptyBucketSize    = int64(unsafe.Sizeof(Bucket{}))
	emptyTopNEntrySize = int64(unsafe.Sizeof(float64(0)) + unsafe.Sizeof(int64(0)))
)

// MemoryUsage returns the approximate heap footprint of the histogram. It is
// used as the entry cost when the histogram is admitted to the stats cache.
func (hg *Histogram) MemoryUsage() int64 {
	if hg == nil {
		return 0
	}
	return emptyHistogramSize +
		int64(cap(hg.Buckets))*emptyBucketSize +
		int64(len(hg.TopN))*emptyTopNEntrySize
}
