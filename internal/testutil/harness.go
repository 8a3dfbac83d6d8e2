package testutil

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/specialistvlad/insectgrid/internal/app"
	"github.com/stretchr/testify/require"
)

// HarnessResult holds the outcome of an end-to-end run.
type HarnessResult struct {
	Output    string
	LogOutput string
	Err       error
	Dir       string
}

// Lines splits Output into lines without the trailing newline.
func (r *HarnessResult) Lines() []string {
	out := strings.TrimSuffix(r.Output, "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

// ReadFile returns the content of a file in the run's directory.
func (r *HarnessResult) ReadFile(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(r.Dir, name))
	require.NoError(t, err)
	return string(data)
}

// WriteFiles writes files into a fresh temporary directory and returns it.
func WriteFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return dir
}

// RunScenario writes the scenario under name, runs the app on it and
// captures stdout and logs. configure may adjust the config before it is
// validated; relative paths in it are resolved against the run directory.
func RunScenario(t *testing.T, name, content string, configure ...func(dir string, cfg *app.Config)) *HarnessResult {
	t.Helper()
	dir := WriteFiles(t, map[string]string{name: content})

	cfg := app.Config{
		InputPath: filepath.Join(dir, name),
		LogLevel:  "debug",
		LogFormat: "text",
	}
	for _, fn := range configure {
		fn(dir, &cfg)
	}
	return run(t, dir, cfg)
}

// RunBatch writes files into a directory and runs the app in batch mode.
func RunBatch(t *testing.T, files map[string]string, workers int) *HarnessResult {
	t.Helper()
	dir := WriteFiles(t, files)
	return run(t, dir, app.Config{
		BatchDir:  dir,
		Workers:   workers,
		LogLevel:  "debug",
		LogFormat: "text",
	})
}

func run(t *testing.T, dir string, cfg app.Config) *HarnessResult {
	t.Helper()
	validated, err := app.NewConfig(cfg)
	require.NoError(t, err)

	out := &SafeBuffer{}
	logs := &SafeBuffer{}
	runErr := app.NewApp(out, logs, validated).Run(context.Background())

	if os.Getenv("INSECTGRID_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
	}

	return &HarnessResult{
		Output:    out.String(),
		LogOutput: logs.String(),
		Err:       runErr,
		Dir:       dir,
	}
}
