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

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	conf := NewConfig()
	require.Equal(t, "info", conf.Log.Level)
	require.Equal(t, int64(128<<20), conf.Performance.HistogramCacheMemQuota)
	require.Equal(t, time.Duration(0), conf.Performance.StatsCacheTTL.Duration)
}

func TestConfigLoad(t *testing.T) {
	confFile := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(confFile, []byte(`
[log]
level = "warn"
format = "json"

[performance]
histogram-cache-mem-quota = 1048576
stats-cache-ttl = "10m"
`), 0o644))

	conf := NewConfig()
	require.NoError(t, conf.Load(confFile))
	require.Equal(t, "warn", conf.Log.Level)
	require.Equal(t, "json", conf.Log.Format)
	require.Equal(t, int64(1<<20), conf.Performance.HistogramCacheMemQuota)
	require.Equal(t, 10*time.Minute, conf.Performance.StatsCacheTTL.Duration)
}

func TestUpdateGlobal(t *testing.T) {
	defer func(orig *Config) { StoreGlobalConfig(orig) }(GetGlobalConfig())

	UpdateGlobal(func(conf *Config) {
		conf.Performance.HistogramCacheMemQuota = 64 << 20
	})
	require.Equal(t, int64(64<<20), GetGlobalConfig().Performance.HistogramCacheMemQuota)
}
