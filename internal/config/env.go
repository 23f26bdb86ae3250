package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds runtime settings read from the environment. Command-line flags
// override them.
type Env struct {
	// Workers is the number of search goroutines; 0 means GOMAXPROCS.
	Workers int `env:"SEEDSEARCH_WORKERS" envDefault:"0"`

	LogLevel string `env:"SEEDSEARCH_LOG_LEVEL" envDefault:"info"`
	LogJSON  bool   `env:"SEEDSEARCH_LOG_JSON" envDefault:"false"`

	// MetricsAddr, when set, serves Prometheus metrics on this address.
	MetricsAddr string `env:"SEEDSEARCH_METRICS_ADDR"`

	// ProgressInterval is the number of seeds between progress reports.
	ProgressInterval int `env:"SEEDSEARCH_PROGRESS_INTERVAL" envDefault:"1024"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadEnv returns the Env of the current process.
func LoadEnv() (Env, error) {
	var e Env
	if err := ParseEnv(&e); err != nil {
		return Env{}, err
	}
	return e, nil
}
