package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/insectgrid/internal/batch"
	"github.com/specialistvlad/insectgrid/internal/ctxlog"
	"github.com/specialistvlad/insectgrid/internal/report"
	"github.com/specialistvlad/insectgrid/internal/scenario"
	"github.com/specialistvlad/insectgrid/internal/simulation"
)

// Run executes the main application logic based on the app's configuration.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.ctx = ctx
	a.logger.Debug("App.Run method started.")

	a.startHealthCheckServer()
	defer a.closeHealthCheckServer()

	if a.config.BatchDir != "" {
		_, err := batch.Run(ctx, a.config.BatchDir, a.config.Workers, a.runFile)
		return err
	}

	observers, closeObservers, err := a.observers(ctx)
	if err != nil {
		return err
	}
	defer closeObservers()

	result, err := a.simulate(ctx, a.config.InputPath, observers...)
	if err != nil {
		return err
	}
	if a.config.OutputPath == "" {
		if _, err := result.WriteTo(a.outW); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
	} else if err := report.Save(ctx, a.config.OutputPath, result); err != nil {
		return err
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// runFile is the batch job: one scenario in, one result file out.
func (a *App) runFile(ctx context.Context, input, output string) error {
	result, err := a.simulate(ctx, input)
	if err != nil {
		return err
	}
	return report.Save(ctx, output, result)
}

// simulate loads and runs one scenario. Rejected scenarios are reported in
// the result; only failures to read the input are returned as errors.
func (a *App) simulate(ctx context.Context, input string, observers ...simulation.Observer) (report.Result, error) {
	logger := ctxlog.FromContext(ctx).With("input", input)

	src, err := scenario.Open(input)
	if err != nil {
		var ve *simulation.ValidationError
		if errors.As(err, &ve) {
			logger.Warn("Scenario rejected.", "reason", ve.Code.Message(), "detail", ve.Detail)
			return report.Result{Err: err}, nil
		}
		return report.Result{}, err
	}

	b, err := simulation.Load(ctx, src, a.config.Limits)
	if err != nil {
		var ve *simulation.ValidationError
		if !errors.As(err, &ve) {
			return report.Result{}, err
		}
		logger.Warn("Scenario rejected.", "reason", ve.Code.Message(), "detail", ve.Detail)
		return report.Result{Err: err}, nil
	}

	eliminations := simulation.Run(ctx, b, observers...)
	logger.Info("🏁 Scenario finished.", "eliminations", len(eliminations))
	return report.Result{Eliminations: eliminations}, nil
}
