// Package config provides the configuration system for colvec.
// It defines a single BaseConfig structure shared by the vector store,
// the logger and the metrics layer.
//
// The configuration is organized into logical sections:
//   - Store: Partition layout and worker pool sizing
//   - Logging: Level, encoding and development mode
//   - Metrics: Prometheus collection settings
//
// Example usage:
//
//	cfg := config.NewBaseConfig("ingest")
//	cfg.Store.RowsPerPartition = 1 << 16
//
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package config

import (
	"math"
	"runtime"

	"github.com/ajitpratap0/colvec/pkg/errors"
)

// DefaultRowsPerPartition is the partition size used when none is configured.
const DefaultRowsPerPartition = 4096

// BaseConfig is the unified configuration structure.
type BaseConfig struct {
	// Name identifies the store instance in logs
	Name string `yaml:"name" json:"name"`

	// Store settings control partition layout and parallelism
	Store StoreConfig `yaml:"store" json:"store"`

	// Logging settings for the global logger
	Logging LoggingConfig `yaml:"logging" json:"logging"`

	// Metrics settings for Prometheus collection
	Metrics MetricsConfig `yaml:"metrics" json:"metrics"`
}

// StoreConfig contains the vector store layout and worker settings.
type StoreConfig struct {
	// RowsPerPartition is the default number of rows in each partition of
	// a newly allocated vector. The last partition may be shorter.
	RowsPerPartition int `yaml:"rows_per_partition" json:"rows_per_partition"`
	// Workers bounds the number of partition tasks running at once
	Workers int `yaml:"workers" json:"workers"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	// Level sets logging verbosity (debug, info, warn, error)
	Level string `yaml:"level" json:"level"`
	// Encoding is json or console
	Encoding string `yaml:"encoding" json:"encoding"`
	// Development enables colored levels and error stack traces
	Development bool `yaml:"development" json:"development"`
	// OutputPaths lists zap sinks; empty means stdout
	OutputPaths []string `yaml:"output_paths" json:"output_paths"`
}

// MetricsConfig contains metrics settings.
type MetricsConfig struct {
	// Enabled turns Prometheus recording on
	Enabled bool `yaml:"enabled" json:"enabled"`
}

// NewBaseConfig creates a new BaseConfig with sensible defaults.
func NewBaseConfig(name string) *BaseConfig {
	return &BaseConfig{
		Name: name,
		Store: StoreConfig{
			RowsPerPartition: DefaultRowsPerPartition,
			Workers:          runtime.NumCPU(),
		},
		Logging: LoggingConfig{
			Level:    "info",
			Encoding: "json",
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

// Validate validates the configuration for correctness.
func (bc *BaseConfig) Validate() error {
	if bc.Name == "" {
		return errors.New(errors.ErrorTypeConfig, "name is required")
	}
	if err := bc.Store.Validate(); err != nil {
		return err
	}
	switch bc.Logging.Encoding {
	case "", "json", "console":
	default:
		return errors.New(errors.ErrorTypeConfig, "logging.encoding must be json or console").
			WithDetail("value", bc.Logging.Encoding)
	}
	return nil
}

// Validate checks the store section.
func (s *StoreConfig) Validate() error {
	if s.RowsPerPartition <= 0 {
		return errors.New(errors.ErrorTypeConfig, "store.rows_per_partition must be positive").
			WithDetail("value", s.RowsPerPartition)
	}
	// NA masks address local rows with uint32.
	if int64(s.RowsPerPartition) > math.MaxUint32 {
		return errors.New(errors.ErrorTypeConfig, "store.rows_per_partition exceeds uint32 range").
			WithDetail("value", s.RowsPerPartition)
	}
	if s.Workers < 0 {
		return errors.New(errors.ErrorTypeConfig, "store.workers cannot be negative").
			WithDetail("value", s.Workers)
	}
	return nil
}

// GetWorkers returns the number of workers, ensuring it's at least 1
func (s *StoreConfig) GetWorkers() int {
	if s.Workers <= 0 {
		return runtime.NumCPU()
	}
	return s.Workers
}
