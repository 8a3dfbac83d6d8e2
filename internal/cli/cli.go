package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/specialistvlad/insectgrid/internal/app"
	"github.com/specialistvlad/insectgrid/internal/config"
	"github.com/specialistvlad/insectgrid/internal/simulation"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) error {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("insectgrid", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
insectgrid - runs insect board scenarios.

Usage:
  insectgrid [options] [SCENARIO]

Arguments:
  SCENARIO
    Path to a .txt or .hcl scenario, or "-" to read text from stdin.

Options:
`)
		flagSet.PrintDefaults()
	}

	inputFlag := flagSet.String("input", "", "Path to the scenario file.")
	iFlag := flagSet.String("i", "", "Path to the scenario file (shorthand).")
	outputFlag := flagSet.String("output", "", "Path to the result file. Defaults to stdout.")
	oFlag := flagSet.String("o", "", "Path to the result file (shorthand).")
	configFlag := flagSet.String("config", "", "Path to an HCL run configuration file.")
	batchFlag := flagSet.String("batch", "", "Run every scenario in this directory, writing <name>.out next to each.")
	workersFlag := flagSet.Int("workers", 4, "Number of scenarios run concurrently in batch mode.")
	healthPortFlag := flagSet.Int("healthcheck-port", 0, "Port for the HTTP health check server. 0 is disabled.")
	streamPortFlag := flagSet.Int("stream-port", 0, "Port for the websocket turn stream. 0 is disabled.")
	tuiFlag := flagSet.Bool("tui", false, "Replay the run in the terminal.")
	replayDelayFlag := flagSet.Duration("replay-delay", 300*time.Millisecond, "How long each turn stays on screen with --tui.")
	publishURLFlag := flagSet.String("publish-url", "", "socket.io server to publish eliminations to.")
	publishNSFlag := flagSet.String("publish-namespace", "/", "socket.io namespace for --publish-url.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, usageError("%s", err.Error())
	}
	slog.Debug("Arguments parsed successfully.")

	set := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) { set[f.Name] = true })

	cfg := app.Config{
		InputPath:        firstNonEmpty(*inputFlag, *iFlag, flagSet.Arg(0)),
		OutputPath:       firstNonEmpty(*outputFlag, *oFlag),
		BatchDir:         *batchFlag,
		Workers:          *workersFlag,
		Limits:           simulation.DefaultLimits(),
		HealthcheckPort:  *healthPortFlag,
		StreamPort:       *streamPortFlag,
		TUI:              *tuiFlag,
		ReplayDelay:      *replayDelayFlag,
		PublishURL:       *publishURLFlag,
		PublishNamespace: *publishNSFlag,
	}

	if *configFlag != "" {
		file, err := config.Load(context.Background(), *configFlag)
		if err != nil {
			return nil, false, usageError("%s", err.Error())
		}
		if err := merge(&cfg, file, set); err != nil {
			return nil, false, usageError("%s", err.Error())
		}
	}

	if cfg.InputPath == "" && cfg.BatchDir == "" {
		slog.Debug("No scenario provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if !slices.Contains(app.LogFormats, logFormat) {
		return nil, false, usageError("invalid log-format: must be 'text' or 'json'")
	}
	logLevel := strings.ToLower(*logLevelFlag)
	if _, err := app.ParseLevel(logLevel); err != nil {
		return nil, false, usageError("%s", err.Error())
	}
	cfg.LogFormat = logFormat
	cfg.LogLevel = logLevel
	slog.Debug("CLI parameter validation complete.")

	validated, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, usageError("%s", err.Error())
	}

	slog.Debug("CLI parser finished successfully.", "config", validated)
	return validated, false, nil
}

// merge copies values from the config file into cfg for every setting the
// command line did not set explicitly.
func merge(cfg *app.Config, file *config.File, set map[string]bool) error {
	if file.Input != nil && !set["input"] && !set["i"] && cfg.InputPath == "" {
		cfg.InputPath = *file.Input
	}
	if file.Output != nil && !set["output"] && !set["o"] {
		cfg.OutputPath = *file.Output
	}
	if file.Batch != nil && !set["batch"] {
		cfg.BatchDir = *file.Batch
	}
	if file.Workers != nil && !set["workers"] {
		cfg.Workers = *file.Workers
	}
	cfg.Limits = file.ApplyLimits(cfg.Limits)

	if file.Stream != nil && !set["stream-port"] {
		cfg.StreamPort = file.Stream.Port
	}
	if file.Publish != nil {
		if !set["publish-url"] {
			cfg.PublishURL = file.Publish.URL
		}
		if file.Publish.Namespace != nil && !set["publish-namespace"] {
			cfg.PublishNamespace = *file.Publish.Namespace
		}
		timeout, err := file.PublishTimeout()
		if err != nil {
			return err
		}
		cfg.PublishTimeout = timeout
	}
	if file.Terminal != nil {
		if !set["tui"] {
			cfg.TUI = true
		}
		if file.Terminal.Delay != nil && !set["replay-delay"] {
			delay, err := file.TerminalDelay()
			if err != nil {
				return err
			}
			cfg.ReplayDelay = delay
		}
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
