// Package config defines runner configuration and its loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load layers defaults, an optional YAML file and environment variables.
// - Errors returned from this package wrap ErrLoadConfig or ErrInvalidConfig.
package config

import (
	"runtime"

	"github.com/okian/streamkata/internal/domain/model"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Queries selects catalog queries by name. Empty runs the whole catalog.
	Queries []string `koanf:"queries"`

	// Concurrency bounds how many queries the runner evaluates at once.
	Concurrency int `koanf:"concurrency"`

	// Artist is the argument for the per-artist playlist queries.
	Artist string `koanf:"artist"`

	// Verbose adds each query's description to its result record.
	Verbose bool `koanf:"verbose"`

	// Datasets optionally replaces the built-in sample data.
	Datasets Datasets `koanf:"datasets"`
}

// Datasets holds dataset overrides. A nil field keeps the sample dataset.
type Datasets struct {
	Times          []float64    `koanf:"times"`
	Prices         []float64    `koanf:"prices"`
	TimesBySession [][]float64  `koanf:"times_by_session"`
	Scores         []int        `koanf:"scores"`
	RoundsByMatch  [][]int      `koanf:"rounds_by_match"`
	Songs          []model.Song `koanf:"songs"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:    "info",
		Concurrency: runtime.NumCPU(),
		Artist:      "Noa",
	}
}
