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

package handle

import (
	"context"
	"encoding/json"

	"github.com/pingcap/errors"
	"github.com/pingcap/failpoint"

	"github.com/shineyearpf/starrocks/infoschema"
	"github.com/shineyearpf/starrocks/metrics"
	"github.com/shineyearpf/starrocks/statistics"
)

// StatisticData is one raw histogram row returned by the statistics storage.
// Histogram is the JSON payload produced by the statistics collector.
type StatisticData struct {
	DBID       int64
	TableID    int64
	ColumnName string
	Histogram  string
}

// StatisticExecutor fetches raw statistics rows from the statistics storage.
// One call serves one table; the storage returns at most one row per
// requested column and simply omits columns without a collected histogram.
type StatisticExecutor interface {
	QueryHistogram(ctx context.Context, tableID int64, columns []string) ([]StatisticData, error)
}

// histogramPayload is the wire shape of the histogram column. Every element
// is string-serialized: a bucket is [low, high, rowCount, upperRepeatCount],
// a top-n entry is [value, frequency].
type histogramPayload struct {
	Buckets [][]string `json:"buckets"`
	TopN    [][]string `json:"top-n"`
}

func (c *HistogramCache) queryHistogram(ctx context.Context, tableID int64, columns []string) ([]StatisticData, error) {
	if val, _err_ := failpoint.Eval(_curpkg_("mockQueryHistogramFail")); _err_ == nil {
		if val.(bool) {
			return nil, errors.Annotate(ErrQueryHistogramFailed, "gofail QueryHistogram error")
		}
	}
	rows, err := c.executor.QueryHistogram(ctx, tableID, columns)
	if err != nil {
		cause := errors.Cause(err)
		if cause == context.Canceled || cause == context.DeadlineExceeded {
			return nil, errors.Trace(err)
		}
		metrics.LoadHistogramFailedCounter.WithLabelValues(metrics.LblFetch).Inc()
		return nil, errors.Annotatef(ErrQueryHistogramFailed, "table %d columns %v: %s", tableID, columns, err)
	}
	return rows, nil
}

// convertToHistogram resolves the owning column of one raw row through the
// catalog and decodes its histogram payload. Resolution happens first, the
// column's logical type drives value decoding.
func (c *HistogramCache) convertToHistogram(data StatisticData) (*statistics.Histogram, error) {
	is := c.getSchema()
	db, ok := is.SchemaByID(data.DBID)
	if !ok {
		return nil, c.decodeFailed(errors.Annotatef(infoschema.ErrDatabaseNotExists, "database id %d", data.DBID))
	}
	tbl := db.TableByID(data.TableID)
	if tbl == nil || !tbl.IsOlapTable() {
		return nil, c.decodeFailed(errors.Annotatef(infoschema.ErrTableNotExists, "table id %d", data.TableID))
	}
	col := tbl.FindColumn(data.ColumnName)
	if col == nil {
		return nil, c.decodeFailed(errors.Annotatef(infoschema.ErrColumnNotExists, "column %s of table %s", data.ColumnName, tbl.Name))
	}

	var payload histogramPayload
	if err := json.Unmarshal([]byte(data.Histogram), &payload); err != nil {
		return nil, c.decodeFailed(errors.Annotatef(ErrMalformedHistogram, "column %s: %s", data.ColumnName, err))
	}
	if payload.Buckets == nil || payload.TopN == nil {
		return nil, c.decodeFailed(errors.Annotatef(ErrMalformedHistogram, "column %s: missing buckets or top-n array", data.ColumnName))
	}

	buckets := make([]statistics.Bucket, 0, len(payload.Buckets))
	for _, raw := range payload.Buckets {
		if len(raw) != 4 {
			return nil, c.decodeFailed(errors.Annotatef(ErrMalformedHistogram, "column %s: bucket has %d elements, want 4", data.ColumnName, len(raw)))
		}
		lower, err := DecodeStatsValue(col.FieldType, raw[0])
		if err != nil {
			return nil, c.decodeFailed(errors.Trace(err))
		}
		upper, err := DecodeStatsValue(col.FieldType, raw[1])
		if err != nil {
			return nil, c.decodeFailed(errors.Trace(err))
		}
		count, err := decodeStatsInt(raw[2])
		if err != nil {
			return nil, c.decodeFailed(errors.Trace(err))
		}
		repeat, err := decodeStatsInt(raw[3])
		if err != nil {
			return nil, c.decodeFailed(errors.Trace(err))
		}
		buckets = append(buckets, statistics.Bucket{Lower: lower, Upper: upper, Count: count, Repeat: repeat})
	}

	topN := make(map[float64]int64, len(payload.TopN))
	for _, raw := range payload.TopN {
		if len(raw) != 2 {
			return nil, c.decodeFailed(errors.Annotatef(ErrMalformedHistogram, "column %s: top-n entry has %d elements, want 2", data.ColumnName, len(raw)))
		}
		value, err := DecodeStatsValue(col.FieldType, raw[0])
		if err != nil {
			return nil, c.decodeFailed(errors.Trace(err))
		}
		freq, err := decodeStatsInt(raw[1])
		if err != nil {
			return nil, c.decodeFailed(errors.Trace(err))
		}
		// last write wins if the collector ever emits a duplicated value
		topN[value] = freq
	}
	return statistics.NewHistogram(buckets, topN), nil
}

func (c *HistogramCache) decodeFailed(err error) error {
	metrics.LoadHistogramFailedCounter.WithLabelValues(metrics.LblDecode).Inc()
	return err
}
