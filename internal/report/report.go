// Package report renders the outcome of a run: one line per elimination, or
// a single line describing why the scenario was rejected.
package report

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/specialistvlad/insectgrid/internal/ctxlog"
	"github.com/specialistvlad/insectgrid/internal/simulation"
)

// Result is the outcome of a single run. Exactly one of Eliminations and Err
// is meaningful: when Err is set nothing was simulated.
type Result struct {
	Eliminations []simulation.Elimination
	Err          error
}

// Lines returns the output lines of the result.
func (r Result) Lines() []string {
	if r.Err != nil {
		return []string{simulation.Message(r.Err)}
	}
	lines := make([]string, len(r.Eliminations))
	for i, e := range r.Eliminations {
		lines[i] = e.String()
	}
	return lines
}

// WriteTo writes every line followed by a newline.
func (r Result) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var total int64
	for _, line := range r.Lines() {
		n, err := fmt.Fprintln(bw, line)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, bw.Flush()
}

// Save writes the result to path, replacing any previous content. A failure
// is logged and returned; the caller decides whether it is fatal.
func Save(ctx context.Context, path string, r Result) error {
	logger := ctxlog.FromContext(ctx).With("output", path)

	f, err := os.Create(path)
	if err != nil {
		logger.Error("Failed to create output file.", "error", err)
		return fmt.Errorf("failed to create output %s: %w", path, err)
	}
	if _, err := r.WriteTo(f); err != nil {
		f.Close()
		logger.Error("Failed to write output file.", "error", err)
		return fmt.Errorf("failed to write output %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		logger.Error("Failed to close output file.", "error", err)
		return fmt.Errorf("failed to close output %s: %w", path, err)
	}

	logger.Debug("Output written.", "lines", len(r.Lines()))
	return nil
}
