// Package batch runs every scenario in a directory concurrently. Each
// scenario is independent: it owns its board and writes its own output file
// next to the input, named after it with the .out extension.
package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/specialistvlad/insectgrid/internal/ctxlog"
	"github.com/specialistvlad/insectgrid/internal/scenario"
	"golang.org/x/sync/errgroup"
)

// Job runs the scenario at input and writes its result to output.
type Job func(ctx context.Context, input, output string) error

// Entry is one scenario of a batch.
type Entry struct {
	Input  string
	Output string
}

// Discover lists the scenario files directly inside dir in name order. Two
// scenarios that map to the same output file are an error.
func Discover(dir string) ([]Entry, error) {
	items, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch directory %s: %w", dir, err)
	}
	var entries []Entry
	owners := make(map[string]string)
	for _, item := range items {
		if item.IsDir() || !scenario.IsScenario(item.Name()) {
			continue
		}
		out := OutputName(item.Name())
		if prev, taken := owners[out]; taken {
			return nil, fmt.Errorf("scenarios %s and %s would both write %s", prev, item.Name(), out)
		}
		owners[out] = item.Name()
		entries = append(entries, Entry{
			Input:  filepath.Join(dir, item.Name()),
			Output: filepath.Join(dir, out),
		})
	}
	return entries, nil
}

// OutputName maps a scenario file name to its result file name.
func OutputName(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name)) + ".out"
}

// Run executes job for every scenario in dir with at most workers running at
// once. The first job error stops scenarios that have not started yet and is
// returned.
func Run(ctx context.Context, dir string, workers int, job Job) ([]Entry, error) {
	logger := ctxlog.FromContext(ctx).With("batch", dir)

	entries, err := Discover(dir)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		logger.Warn("No scenarios found in batch directory.")
		return nil, nil
	}
	if workers < 1 {
		workers = 1
	}
	logger.Info("🚀 Starting batch run.", "scenarios", len(entries), "workers", workers)
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, entry := range entries {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			jobCtx := ctxlog.With(gctx, "scenario", filepath.Base(entry.Input))
			if err := job(jobCtx, entry.Input, entry.Output); err != nil {
				return fmt.Errorf("scenario %s: %w", entry.Input, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error("Batch run failed.", "error", err)
		return entries, err
	}

	logger.Info("🏁 Batch run finished.", "scenarios", len(entries), "duration", time.Since(start))
	return entries, nil
}
