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
	"fmt"
	"sync"
	"time"
	"unsafe"

	"github.com/cespare/xxhash/v2"
	"github.com/dgraph-io/ristretto"
	"github.com/pingcap/errors"
	"go.uber.org/zap"

	"github.com/shineyearpf/starrocks/config"
	"github.com/shineyearpf/starrocks/infoschema"
	"github.com/shineyearpf/starrocks/metrics"
	"github.com/shineyearpf/starrocks/statistics"
	"github.com/shineyearpf/starrocks/util/logutil"
)

// ColumnStatsCacheKey identifies one column's histogram in the cache.
type ColumnStatsCacheKey struct {
	TableID    int64
	ColumnName string
}

// String implements fmt.Stringer.
func (k ColumnStatsCacheKey) String() string {
	return fmt.Sprintf("%d#%s", k.TableID, k.ColumnName)
}

// cacheEntry is one immutable cached outcome. A nil hist records that the
// storage has no histogram for the column, which is distinct from the key
// being absent from the cache.
type cacheEntry struct {
	hist *statistics.Histogram
}

const emptyCacheEntrySize = int64(unsafe.Sizeof(cacheEntry{}))

// inflightCall is one in-progress load. Waiters block on done and then read
// hist/err; both are written exactly once before done is closed.
type inflightCall struct {
	done chan struct{}
	hist *statistics.Histogram
	err  error
}

// HistogramCache serves per-column histogram statistics, loading them from
// the statistics storage on miss and caching both histograms and confirmed
// absences.
//
// For a given key at most one load is in flight at a time, no matter whether
// the key was requested through Load or as a member of a LoadAll batch;
// concurrent requesters attach to the pending call and observe the identical
// result or failure. A LoadAll issues one batched storage query covering
// exactly the keys it came to own, and joins the existing flights for the
// rest.
type HistogramCache struct {
	executor  StatisticExecutor
	getSchema func() infoschema.InfoSchema
	ttl       time.Duration

	store *ristretto.Cache

	mu       sync.Mutex
	inflight map[ColumnStatsCacheKey]*inflightCall
}

// NewHistogramCache creates a HistogramCache over the given statistics
// storage executor and catalog accessor. Cache capacity and entry TTL come
// from the global config.
func NewHistogramCache(executor StatisticExecutor, getSchema func() infoschema.InfoSchema) (*HistogramCache, error) {
	cfg := config.GetGlobalConfig().Performance
	quota := cfg.HistogramCacheMemQuota
	if quota <= 0 {
		quota = 128 << 20
	}
	numCounters := quota / 1024 * 10
	if numCounters < 1024 {
		numCounters = 1024
	}
	store, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: numCounters,
		MaxCost:     quota,
		BufferItems: 64,
		KeyToHash: func(key any) (uint64, uint64) {
			k := key.(ColumnStatsCacheKey)
			return xxhash.Sum64String(k.String()), xxhash.Sum64String(k.ColumnName)
		},
	})
	if err != nil {
		return nil, errors.Trace(err)
	}
	return &HistogramCache{
		executor:  executor,
		getSchema: getSchema,
		ttl:       cfg.StatsCacheTTL.Duration,
		store:     store,
		inflight:  make(map[ColumnStatsCacheKey]*inflightCall),
	}, nil
}

// Close releases the backing store.
func (c *HistogramCache) Close() {
	c.store.Close()
}

// Get returns the cached outcome for the key without triggering a load. The
// second result reports presence; a present nil histogram is a cached
// absence.
func (c *HistogramCache) Get(key ColumnStatsCacheKey) (*statistics.Histogram, bool) {
	ent, ok := c.peek(key)
	if !ok {
		return nil, false
	}
	return ent.hist, true
}

// Load returns the histogram of the keyed column, fetching it from the
// statistics storage on miss. A nil histogram with a nil error means the
// storage has no histogram for the column; that outcome is cached.
//
// Loads are not cancellable: ctx cancellation abandons the wait but the
// in-flight call runs to completion, so the cache is never left partially
// populated and later requesters reuse the result.
func (c *HistogramCache) Load(ctx context.Context, key ColumnStatsCacheKey) (*statistics.Histogram, error) {
	if ent, ok := c.peek(key); ok {
		metrics.HistogramCacheHitCounter.Inc()
		return ent.hist, nil
	}
	metrics.HistogramCacheMissCounter.Inc()
	return c.wait(ctx, c.startLoad(ctx, key, false))
}

// Reload forces a full load of the key, replacing whatever is cached. There
// is no incremental refresh; the old entry is discarded wholesale.
func (c *HistogramCache) Reload(ctx context.Context, key ColumnStatsCacheKey) (*statistics.Histogram, error) {
	return c.wait(ctx, c.startLoad(ctx, key, true))
}

// LoadAll loads a batch of keys of one table with a single storage query and
// returns the keys that have a histogram. Keys for which the storage holds
// no histogram are absent from the result and stay uncached; a later Load
// records the absence through the single-key path.
//
// All keys must share the same table id; the caller groups by table.
func (c *HistogramCache) LoadAll(ctx context.Context, keys []ColumnStatsCacheKey) (map[ColumnStatsCacheKey]*statistics.Histogram, error) {
	result := make(map[ColumnStatsCacheKey]*statistics.Histogram, len(keys))
	if len(keys) == 0 {
		return result, nil
	}
	calls := make(map[ColumnStatsCacheKey]*inflightCall, len(keys))
	var owned []ColumnStatsCacheKey
	for _, key := range keys {
		if _, ok := calls[key]; ok {
			continue
		}
		if ent, ok := c.peek(key); ok {
			metrics.HistogramCacheHitCounter.Inc()
			if ent.hist != nil {
				result[key] = ent.hist
			}
			continue
		}
		metrics.HistogramCacheMissCounter.Inc()
		call, owner := c.acquire(key)
		calls[key] = call
		if owner {
			owned = append(owned, key)
		}
	}
	if len(owned) > 0 {
		go c.runBatchLoad(context.WithoutCancel(ctx), keys[0].TableID, owned, calls)
	}
	for key, call := range calls {
		hist, err := c.wait(ctx, call)
		if err != nil {
			return nil, errors.Trace(err)
		}
		if hist != nil {
			result[key] = hist
		}
	}
	return result, nil
}

// Expire drops the entries of the given keys so that the next request loads
// them afresh.
func (c *HistogramCache) Expire(keys []ColumnStatsCacheKey) {
	for _, key := range keys {
		c.store.Del(key)
	}
}

func (c *HistogramCache) peek(key ColumnStatsCacheKey) (*cacheEntry, bool) {
	v, ok := c.store.Get(key)
	if !ok {
		return nil, false
	}
	return v.(*cacheEntry), true
}

func (c *HistogramCache) insert(key ColumnStatsCacheKey, hist *statistics.Histogram) {
	ent := &cacheEntry{hist: hist}
	cost := hist.MemoryUsage() + emptyCacheEntrySize
	if c.ttl > 0 {
		c.store.SetWithTTL(key, ent, cost, c.ttl)
	} else {
		c.store.Set(key, ent, cost)
	}
	c.store.Wait()
}

// acquire registers a call for the key, or returns the pending one. The
// second result reports whether the caller became the owner and must run the
// load.
func (c *HistogramCache) acquire(key ColumnStatsCacheKey) (*inflightCall, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if call, ok := c.inflight[key]; ok {
		return call, false
	}
	call := &inflightCall{done: make(chan struct{})}
	c.inflight[key] = call
	return call, true
}

// complete publishes the outcome of a call: the entry is inserted first, the
// flight is deregistered, then waiters are released. cache reports whether a
// successful outcome should be recorded (batch members without a storage row
// are not).
func (c *HistogramCache) complete(key ColumnStatsCacheKey, call *inflightCall, hist *statistics.Histogram, err error, cache bool) {
	if err == nil && cache {
		c.insert(key, hist)
	}
	call.hist, call.err = hist, err
	c.mu.Lock()
	delete(c.inflight, key)
	c.mu.Unlock()
	close(call.done)
}

func (c *HistogramCache) startLoad(ctx context.Context, key ColumnStatsCacheKey, force bool) *inflightCall {
	call, owner := c.acquire(key)
	if owner {
		go c.runSingleLoad(context.WithoutCancel(ctx), key, call, force)
	}
	return call
}

func (c *HistogramCache) wait(ctx context.Context, call *inflightCall) (*statistics.Histogram, error) {
	select {
	case <-call.done:
		return call.hist, call.err
	case <-ctx.Done():
		return nil, errors.Trace(ctx.Err())
	}
}

func (c *HistogramCache) runSingleLoad(ctx context.Context, key ColumnStatsCacheKey, call *inflightCall, force bool) {
	if !force {
		// the entry may have been inserted between the miss and the
		// flight registration
		if ent, ok := c.peek(key); ok {
			c.complete(key, call, ent.hist, nil, false)
			return
		}
	}
	start := time.Now()
	hist, err := c.loadFromStorage(ctx, key)
	if err != nil {
		logutil.StatsLogger().Error("load column histogram failed",
			zap.Int64("tableID", key.TableID),
			zap.String("column", key.ColumnName),
			zap.Error(err))
	} else {
		metrics.ReadHistogramDuration.Observe(time.Since(start).Seconds())
	}
	c.complete(key, call, hist, err, err == nil)
}

func (c *HistogramCache) loadFromStorage(ctx context.Context, key ColumnStatsCacheKey) (*statistics.Histogram, error) {
	rows, err := c.queryHistogram(ctx, key.TableID, []string{key.ColumnName})
	if err != nil {
		return nil, errors.Trace(err)
	}
	// the storage may hold no histogram for the column yet, e.g. not enough
	// data has been collected; that is a valid cacheable outcome
	if len(rows) == 0 {
		return nil, nil
	}
	// at most one row is expected per column; trust the first
	return c.convertToHistogram(rows[0])
}

func (c *HistogramCache) runBatchLoad(ctx context.Context, tableID int64, owned []ColumnStatsCacheKey, calls map[ColumnStatsCacheKey]*inflightCall) {
	columns := make([]string, 0, len(owned))
	for _, key := range owned {
		columns = append(columns, key.ColumnName)
	}
	start := time.Now()
	rows, err := c.queryHistogram(ctx, tableID, columns)
	var loaded map[ColumnStatsCacheKey]*statistics.Histogram
	if err == nil {
		loaded = make(map[ColumnStatsCacheKey]*statistics.Histogram, len(rows))
		for _, row := range rows {
			key := ColumnStatsCacheKey{TableID: row.TableID, ColumnName: row.ColumnName}
			var hist *statistics.Histogram
			hist, err = c.convertToHistogram(row)
			if err != nil {
				break
			}
			loaded[key] = hist
		}
	}
	if err != nil {
		logutil.StatsLogger().Error("batch load column histograms failed",
			zap.Int64("tableID", tableID),
			zap.Int("columns", len(owned)),
			zap.Error(err))
		// a batch fails as a whole; every waiter observes the same failure
		for _, key := range owned {
			c.complete(key, calls[key], nil, err, false)
		}
		return
	}
	metrics.ReadHistogramDuration.Observe(time.Since(start).Seconds())
	for _, key := range owned {
		hist, ok := loaded[key]
		c.complete(key, calls[key], hist, nil, ok)
	}
}
