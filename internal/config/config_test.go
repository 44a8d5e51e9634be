package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tstromberg/primemark/prime"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, prime.DefaultMaxSpan, cfg.Limits.MaxSpan)
	assert.Equal(t, 10_000, cfg.Limits.CacheCapacity)
	assert.Zero(t, cfg.Limits.BatchWorkers)
	assert.Equal(t, "info", cfg.Logging.Level)
	require.NoError(t, cfg.Validate())
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "primemark.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
limits:
  max_span: 5000
  batch_workers: 4
bench:
  sizes: [128, 256]
logging:
  level: debug
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(5000), cfg.Limits.MaxSpan)
	assert.Equal(t, 4, cfg.Limits.BatchWorkers)
	assert.Equal(t, 10_000, cfg.Limits.CacheCapacity)
	assert.Equal(t, []int{128, 256}, cfg.Bench.Sizes)
	assert.Equal(t, 0.99, cfg.Bench.Alpha)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("limits: [unterminated"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "primemark.yaml")
	cfg := DefaultConfig()
	cfg.Limits.CacheCapacity = 42
	cfg.Bench.Threads = []int{2}
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PRIMEMARK_MAX_SPAN", "77")
	t.Setenv("PRIMEMARK_CACHE_CAPACITY", "3")
	t.Setenv("PRIMEMARK_LOG_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, uint64(77), cfg.Limits.MaxSpan)
	assert.Equal(t, 3, cfg.Limits.CacheCapacity)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestEnvOverrideRejectsGarbage(t *testing.T) {
	t.Setenv("PRIMEMARK_MAX_SPAN", "lots")
	_, err := Load("")
	assert.ErrorContains(t, err, "PRIMEMARK_MAX_SPAN")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero span", func(c *Config) { c.Limits.MaxSpan = 0 }, "max_span"},
		{"zero capacity", func(c *Config) { c.Limits.CacheCapacity = 0 }, "cache_capacity"},
		{"negative workers", func(c *Config) { c.Limits.BatchWorkers = -1 }, "batch_workers"},
		{"no sizes", func(c *Config) { c.Bench.Sizes = nil }, "bench.sizes"},
		{"bad size", func(c *Config) { c.Bench.Sizes = []int{0} }, "bench.sizes"},
		{"bad threads", func(c *Config) { c.Bench.Threads = []int{-2} }, "bench.threads"},
		{"no ops", func(c *Config) { c.Bench.Ops = 0 }, "bench.ops"},
		{"alpha of one", func(c *Config) { c.Bench.Alpha = 1 }, "bench.alpha"},
		{"zero base", func(c *Config) { c.Bench.Base = 0 }, "bench.base"},
		{"unknown level", func(c *Config) { c.Logging.Level = "chatty" }, "logging.level"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(), tc.want)
		})
	}
}

func TestRangeOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Limits.MaxSpan = 10

	_, err := prime.PrimesInRange(1, 100, cfg.RangeOptions()...)
	require.ErrorIs(t, err, prime.ErrRange)

	got, err := prime.PrimesInRange(1, 11, cfg.RangeOptions()...)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 5, 7, 11}, got)
}

func TestNewLogger(t *testing.T) {
	cfg := DefaultConfig()
	log, err := cfg.NewLogger(false)
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(-1), "debug disabled at info level")

	log, err = cfg.NewLogger(true)
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(-1), "verbose enables debug")

	cfg.Logging.Level = "nope"
	_, err = cfg.NewLogger(false)
	assert.Error(t, err)
}
