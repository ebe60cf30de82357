// Package config loads the hyperpath configuration file and applies
// environment variable overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hyperpath/hyperspace"
)

// File is the on-disk configuration document.
type File struct {
	Engine  EngineConfig  `yaml:"engine"`
	Batch   BatchConfig   `yaml:"batch"`
	Logging LoggingConfig `yaml:"logging"`
}

// EngineConfig mirrors hyperspace.Params.
type EngineConfig struct {
	LimitDimensions int     `yaml:"limit_dimensions"`
	SystemLength    float64 `yaml:"system_length"`
	BaseSlope       float64 `yaml:"base_slope"`
	SlopeGrowth     float64 `yaml:"slope_growth"`
	AngleStep       float64 `yaml:"angle_step"`
	ScaleTime       bool    `yaml:"scale_time"`
}

// BatchConfig holds batch processing settings. Workers == 0 means "one per CPU".
type BatchConfig struct {
	Workers int `yaml:"workers"`
}

// LoggingConfig holds configuration for logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug|info|warn|error
	Format string `yaml:"format"` // console|json
}

// Default returns the configuration used when no file is given.
func Default() *File {
	p := hyperspace.DefaultParams()

	return &File{
		Engine: EngineConfig{
			LimitDimensions: p.LimitDimensions,
			SystemLength:    p.SystemLength,
			BaseSlope:       p.BaseSlope,
			SlopeGrowth:     p.SlopeGrowth,
			AngleStep:       p.AngleStep,
			ScaleTime:       p.ScaleTime,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads the configuration file at path (defaults only when path is
// empty), applies environment overrides and validates the result.
func Load(path string) (*File, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := decode(bytes.NewReader(data), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := applyEnvOverrides(cfg, os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// decode overlays the YAML document on cfg; unknown keys are rejected.
func decode(r io.Reader, cfg *File) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

func applyEnvOverrides(cfg *File, lookup func(string) (string, bool)) error {
	ints := []struct {
		key string
		dst *int
	}{
		{"HYPERPATH_LIMIT_DIMENSIONS", &cfg.Engine.LimitDimensions},
		{"HYPERPATH_WORKERS", &cfg.Batch.Workers},
	}
	for _, o := range ints {
		if val, ok := lookup(o.key); ok && val != "" {
			n, err := strconv.Atoi(strings.TrimSpace(val))
			if err != nil {
				return fmt.Errorf("%w: %s=%q is not an integer", hyperspace.ErrConfiguration, o.key, val)
			}
			*o.dst = n
		}
	}

	floats := []struct {
		key string
		dst *float64
	}{
		{"HYPERPATH_SYSTEM_LENGTH", &cfg.Engine.SystemLength},
		{"HYPERPATH_BASE_SLOPE", &cfg.Engine.BaseSlope},
		{"HYPERPATH_SLOPE_GROWTH", &cfg.Engine.SlopeGrowth},
		{"HYPERPATH_ANGLE_STEP", &cfg.Engine.AngleStep},
	}
	for _, o := range floats {
		if val, ok := lookup(o.key); ok && val != "" {
			f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
			if err != nil {
				return fmt.Errorf("%w: %s=%q is not a number", hyperspace.ErrConfiguration, o.key, val)
			}
			*o.dst = f
		}
	}

	if val, ok := lookup("HYPERPATH_LOG_LEVEL"); ok && val != "" {
		cfg.Logging.Level = val
	}

	return nil
}

// Validate checks the engine parameters, batch settings and logging block.
func (f *File) Validate() error {
	if _, err := f.EngineConfig(); err != nil {
		return err
	}
	if f.Batch.Workers < 0 {
		return fmt.Errorf("%w: batch.workers=%d must not be negative", hyperspace.ErrConfiguration, f.Batch.Workers)
	}
	if _, err := zapcore.ParseLevel(f.Logging.Level); err != nil {
		return fmt.Errorf("%w: logging.level: %v", hyperspace.ErrConfiguration, err)
	}
	switch f.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("%w: logging.format=%q (want console or json)", hyperspace.ErrConfiguration, f.Logging.Format)
	}

	return nil
}

// EngineConfig freezes the engine block into a validated hyperspace.Config.
func (f *File) EngineConfig() (hyperspace.Config, error) {
	return hyperspace.NewConfig(hyperspace.Params{
		LimitDimensions: f.Engine.LimitDimensions,
		SystemLength:    f.Engine.SystemLength,
		BaseSlope:       f.Engine.BaseSlope,
		SlopeGrowth:     f.Engine.SlopeGrowth,
		AngleStep:       f.Engine.AngleStep,
		ScaleTime:       f.Engine.ScaleTime,
	})
}

// Logger builds a zap logger from the logging block. Console output goes to
// stderr so stdout stays free for results.
func (f *File) Logger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(f.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: logging.level: %v", hyperspace.ErrConfiguration, err)
	}

	var zc zap.Config
	if f.Logging.Format == "json" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
		zc.DisableStacktrace = true
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	return zc.Build()
}
