package config

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/insectgrid/internal/ctxlog"
	"github.com/specialistvlad/insectgrid/internal/simulation"
)

// File is the decoded run configuration. Nil fields were not set.
type File struct {
	Input    *string        `hcl:"input,optional"`
	Output   *string        `hcl:"output,optional"`
	Batch    *string        `hcl:"batch,optional"`
	Workers  *int           `hcl:"workers,optional"`
	Limits   *LimitsBlock   `hcl:"limits,block"`
	Stream   *StreamBlock   `hcl:"stream,block"`
	Publish  *PublishBlock  `hcl:"publish,block"`
	Terminal *TerminalBlock `hcl:"terminal,block"`
}

// LimitsBlock overrides individual scenario limits.
type LimitsBlock struct {
	MinBoardSize *int `hcl:"min_board_size,optional"`
	MaxBoardSize *int `hcl:"max_board_size,optional"`
	MinInsects   *int `hcl:"min_insects,optional"`
	MaxInsects   *int `hcl:"max_insects,optional"`
	MinFood      *int `hcl:"min_food,optional"`
	MaxFood      *int `hcl:"max_food,optional"`
}

// StreamBlock enables the websocket stream.
type StreamBlock struct {
	Port int `hcl:"port"`
}

// PublishBlock enables the socket.io publisher.
type PublishBlock struct {
	URL       string  `hcl:"url"`
	Namespace *string `hcl:"namespace,optional"`
	Timeout   *string `hcl:"timeout,optional"`
}

// TerminalBlock enables the terminal replay.
type TerminalBlock struct {
	Delay *string `hcl:"delay,optional"`
}

// Load reads and decodes the configuration file at path.
func Load(ctx context.Context, path string) (*File, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading run configuration.", "path", path)

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	f, err := Parse(src, path)
	if err != nil {
		return nil, err
	}
	logger.Debug("Run configuration loaded.", "path", path)
	return f, nil
}

// Parse decodes src and checks the values that cannot be checked by the
// decoder itself.
func Parse(src []byte, filename string) (*File, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config %s: %w", filename, diags)
	}

	var f File
	if diags := gohcl.DecodeBody(hclFile.Body, nil, &f); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config %s: %w", filename, diags)
	}

	if f.Workers != nil && *f.Workers < 1 {
		return nil, fmt.Errorf("config %s: workers must be at least 1", filename)
	}
	if f.Stream != nil && (f.Stream.Port < 1 || f.Stream.Port > 65535) {
		return nil, fmt.Errorf("config %s: stream port %d is out of range", filename, f.Stream.Port)
	}
	if _, err := f.PublishTimeout(); err != nil {
		return nil, fmt.Errorf("config %s: %w", filename, err)
	}
	if _, err := f.TerminalDelay(); err != nil {
		return nil, fmt.Errorf("config %s: %w", filename, err)
	}
	if err := f.ApplyLimits(simulation.DefaultLimits()).Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", filename, err)
	}
	return &f, nil
}

// ApplyLimits returns base with every limit the file sets replaced.
func (f *File) ApplyLimits(base simulation.Limits) simulation.Limits {
	if f == nil || f.Limits == nil {
		return base
	}
	override := func(dst *int, src *int) {
		if src != nil {
			*dst = *src
		}
	}
	l := f.Limits
	override(&base.MinBoardSize, l.MinBoardSize)
	override(&base.MaxBoardSize, l.MaxBoardSize)
	override(&base.MinInsects, l.MinInsects)
	override(&base.MaxInsects, l.MaxInsects)
	override(&base.MinFood, l.MinFood)
	override(&base.MaxFood, l.MaxFood)
	return base
}

// PublishTimeout returns the publish connection timeout, or zero when unset.
func (f *File) PublishTimeout() (time.Duration, error) {
	if f == nil || f.Publish == nil || f.Publish.Timeout == nil {
		return 0, nil
	}
	d, err := time.ParseDuration(*f.Publish.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid publish timeout: %w", err)
	}
	return d, nil
}

// TerminalDelay returns the replay delay, or zero when unset.
func (f *File) TerminalDelay() (time.Duration, error) {
	if f == nil || f.Terminal == nil || f.Terminal.Delay == nil {
		return 0, nil
	}
	d, err := time.ParseDuration(*f.Terminal.Delay)
	if err != nil {
		return 0, fmt.Errorf("invalid terminal delay: %w", err)
	}
	return d, nil
}
