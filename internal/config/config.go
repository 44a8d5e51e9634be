// Package config loads primemark settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/tstromberg/primemark/prime"
)

// Config holds all primemark configuration.
type Config struct {
	Limits  LimitsConfig  `yaml:"limits"`
	Bench   BenchConfig   `yaml:"bench"`
	Logging LoggingConfig `yaml:"logging"`
}

// LimitsConfig bounds the work a single library call may do.
type LimitsConfig struct {
	MaxSpan       uint64 `yaml:"max_span"`       // widest range PrimesInRange accepts
	CacheCapacity int    `yaml:"cache_capacity"` // entries before the factor cache flushes
	BatchWorkers  int    `yaml:"batch_workers"`  // 0 = one goroutine per input
}

// BenchConfig configures the benchmark suites.
type BenchConfig struct {
	Sizes          []int   `yaml:"sizes"`
	Threads        []int   `yaml:"threads"`
	KeySpace       int     `yaml:"key_space"`
	Ops            int     `yaml:"ops"`
	Alpha          float64 `yaml:"alpha"` // Zipf skew
	Base           int64   `yaml:"base"`  // smallest input factorized
	MemoryCapacity int     `yaml:"memory_capacity"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Limits: LimitsConfig{
			MaxSpan:       prime.DefaultMaxSpan,
			CacheCapacity: 10_000,
		},
		Bench: BenchConfig{
			Sizes:          []int{1_024, 4_096, 16_384, 65_536},
			Threads:        []int{1, 8, 16, 32},
			KeySpace:       250_000,
			Ops:            1_000_000,
			Alpha:          0.99,
			Base:           1_000_000,
			MemoryCapacity: 32_768,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // config is not secret
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("PRIMEMARK_MAX_SPAN"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("PRIMEMARK_MAX_SPAN: %w", err)
		}
		c.Limits.MaxSpan = n
	}
	if v := os.Getenv("PRIMEMARK_CACHE_CAPACITY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PRIMEMARK_CACHE_CAPACITY: %w", err)
		}
		c.Limits.CacheCapacity = n
	}
	if v := os.Getenv("PRIMEMARK_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	return nil
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	if c.Limits.MaxSpan == 0 {
		return fmt.Errorf("limits.max_span must be positive")
	}
	if c.Limits.CacheCapacity < 1 {
		return fmt.Errorf("limits.cache_capacity must be at least 1, got %d", c.Limits.CacheCapacity)
	}
	if c.Limits.BatchWorkers < 0 {
		return fmt.Errorf("limits.batch_workers must not be negative, got %d", c.Limits.BatchWorkers)
	}

	if len(c.Bench.Sizes) == 0 {
		return fmt.Errorf("bench.sizes must not be empty")
	}
	for _, s := range c.Bench.Sizes {
		if s < 1 {
			return fmt.Errorf("bench.sizes: invalid size %d", s)
		}
	}
	for _, t := range c.Bench.Threads {
		if t < 1 {
			return fmt.Errorf("bench.threads: invalid thread count %d", t)
		}
	}
	if c.Bench.KeySpace < 1 || c.Bench.Ops < 1 {
		return fmt.Errorf("bench.key_space and bench.ops must be positive")
	}
	if c.Bench.Alpha <= 0 || c.Bench.Alpha == 1 {
		return fmt.Errorf("bench.alpha must be positive and not 1, got %v", c.Bench.Alpha)
	}
	if c.Bench.Base < 1 {
		return fmt.Errorf("bench.base must be positive, got %d", c.Bench.Base)
	}

	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	return nil
}

// RangeOptions returns the options PrimesInRange needs.
func (c *Config) RangeOptions() []prime.RangeOption {
	return []prime.RangeOption{prime.WithMaxSpan(c.Limits.MaxSpan)}
}

// NewLogger builds a zap logger from the logging section. verbose forces
// debug level.
func (c *Config) NewLogger(verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if c.Logging.Development {
		zc = zap.NewDevelopmentConfig()
	}
	level, err := zapcore.ParseLevel(c.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("logging.level: %w", err)
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}
