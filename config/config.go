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
	"sync/atomic"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pingcap/errors"
)

// Config contains configuration options of the optimizer statistics layer.
type Config struct {
	Log         Log         `toml:"log" json:"log"`
	Performance Performance `toml:"performance" json:"performance"`
}

// Log is the log section of config.
type Log struct {
	// Log level.
	Level string `toml:"level" json:"level"`
	// Log format, one of json or text.
	Format string `toml:"format" json:"format"`
	// Disable automatic timestamps in output.
	DisableTimestamp bool `toml:"disable-timestamp" json:"disable-timestamp"`
	// File is the log file name; empty means stderr.
	File string `toml:"file" json:"file"`
}

// Performance is the performance section of the config.
type Performance struct {
	// HistogramCacheMemQuota is the memory quota in bytes of the column
	// histogram statistics cache.
	HistogramCacheMemQuota int64 `toml:"histogram-cache-mem-quota" json:"histogram-cache-mem-quota"`
	// StatsCacheTTL is how long a cached histogram entry stays valid.
	// Zero means entries never expire by time.
	StatsCacheTTL Duration `toml:"stats-cache-ttl" json:"stats-cache-ttl"`
}

// Duration is a wrapper of time.Duration for toml decoding.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return errors.Trace(err)
}

var defaultConf = Config{
	Log: Log{
		Level:  "info",
		Format: "text",
	},
	Performance: Performance{
		HistogramCacheMemQuota: 128 << 20,
	},
}

var globalConf atomic.Value

func init() {
	conf := defaultConf
	StoreGlobalConfig(&conf)
}

// NewConfig creates a new config instance with default value.
func NewConfig() *Config {
	conf := defaultConf
	return &conf
}

// GetGlobalConfig returns the global configuration for this server.
// Other parts of the system read their options through this function.
func GetGlobalConfig() *Config {
	return globalConf.Load().(*Config)
}

// StoreGlobalConfig stores a new config to the globalConf.
func StoreGlobalConfig(config *Config) {
	globalConf.Store(config)
}

// UpdateGlobal updates the global config in a copy-on-write manner.
func UpdateGlobal(f func(conf *Config)) {
	g := GetGlobalConfig()
	newConf := *g
	f(&newConf)
	StoreGlobalConfig(&newConf)
}

// Load loads config options from a toml file.
func (c *Config) Load(confFile string) error {
	_, err := toml.DecodeFile(confFile, c)
	return errors.Trace(err)
}
