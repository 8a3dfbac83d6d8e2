package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/specialistvlad/insectgrid/internal/simulation"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	InputPath  string // scenario file, "-" for stdin
	OutputPath string // empty writes to stdout
	BatchDir   string
	Workers    int
	Limits     simulation.Limits

	LogFormat       string
	LogLevel        string
	HealthcheckPort int

	StreamPort       int
	TUI              bool
	ReplayDelay      time.Duration
	PublishURL       string
	PublishNamespace string
	PublishTimeout   time.Duration
}

// NewConfig validates cfg and returns a copy with defaults applied.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.InputPath == "" && cfg.BatchDir == "" {
		return nil, errors.New("an input scenario or a batch directory is required")
	}
	if cfg.InputPath != "" && cfg.BatchDir != "" {
		return nil, errors.New("input and batch cannot be used together")
	}
	if cfg.BatchDir != "" && (cfg.OutputPath != "" || cfg.TUI || cfg.StreamPort > 0 || cfg.PublishURL != "") {
		return nil, errors.New("batch mode writes one output per scenario and does not support output, tui, stream or publish")
	}

	if cfg.Limits == (simulation.Limits{}) {
		cfg.Limits = simulation.DefaultLimits()
	}
	if err := cfg.Limits.Validate(); err != nil {
		return nil, err
	}

	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	for name, port := range map[string]int{"healthcheck": cfg.HealthcheckPort, "stream": cfg.StreamPort} {
		if port < 0 || port > 65535 {
			return nil, fmt.Errorf("invalid %s port: %d", name, port)
		}
	}
	if cfg.ReplayDelay < 0 {
		return nil, errors.New("replay delay cannot be negative")
	}
	if cfg.PublishTimeout <= 0 {
		cfg.PublishTimeout = 10 * time.Second
	}
	if cfg.PublishNamespace == "" {
		cfg.PublishNamespace = "/"
	}

	return &cfg, nil
}
