// Package config reads server settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"
)

const (
	envPort       = "PORT"
	envMaxSize    = "GRIDPATH_MAX_SIZE"
	envWorkers    = "GRIDPATH_WORKERS"
	envCORSOrigin = "GRIDPATH_CORS_ORIGIN"
	envStepDelay  = "GRIDPATH_STEP_DELAY_MS"
	envMaxBatch   = "GRIDPATH_MAX_BATCH_QUERIES"
)

type Config struct {
	Port            string
	MaxGridSize     int
	MaxBatchQueries int
	Workers         int
	CORSOrigin      string
	StepDelay       time.Duration
}

func Default() Config {
	return Config{
		Port:            "8080",
		MaxGridSize:     256,
		MaxBatchQueries: 256,
		Workers:         runtime.NumCPU(),
		CORSOrigin:      "*",
	}
}

// Addr is the listen address for Port.
func (c Config) Addr() string { return ":" + c.Port }

// Load starts from Default and applies every variable lookup finds. An
// invalid value keeps the default and is reported in the returned slice.
func Load(lookup func(string) (string, bool)) (Config, []error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	cfg := Default()
	var problems []error

	if raw, ok := lookup(envPort); ok && raw != "" {
		if _, err := strconv.ParseUint(raw, 10, 16); err != nil {
			problems = append(problems, fmt.Errorf("invalid %s=%q: %w", envPort, raw, err))
		} else {
			cfg.Port = raw
		}
	}
	positive := func(name string, dst *int) {
		raw, ok := lookup(name)
		if !ok || raw == "" {
			return
		}
		value, err := strconv.Atoi(raw)
		if err == nil && value <= 0 {
			err = errors.New("must be positive")
		}
		if err != nil {
			problems = append(problems, fmt.Errorf("invalid %s=%q: %w", name, raw, err))
			return
		}
		*dst = value
	}
	positive(envMaxSize, &cfg.MaxGridSize)
	positive(envWorkers, &cfg.Workers)
	positive(envMaxBatch, &cfg.MaxBatchQueries)

	if raw, ok := lookup(envCORSOrigin); ok && raw != "" {
		cfg.CORSOrigin = raw
	}
	if raw, ok := lookup(envStepDelay); ok && raw != "" {
		ms, err := strconv.Atoi(raw)
		if err == nil && ms < 0 {
			err = errors.New("must not be negative")
		}
		if err != nil {
			problems = append(problems, fmt.Errorf("invalid %s=%q: %w", envStepDelay, raw, err))
		} else {
			cfg.StepDelay = time.Duration(ms) * time.Millisecond
		}
	}
	return cfg, problems
}
