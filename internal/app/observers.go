package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/insectgrid/internal/ctxlog"
	"github.com/specialistvlad/insectgrid/internal/publish"
	"github.com/specialistvlad/insectgrid/internal/simulation"
	"github.com/specialistvlad/insectgrid/internal/stream"
	"github.com/specialistvlad/insectgrid/internal/termview"
)

// observers starts every observer the config enables. The returned func
// tears them down in reverse order and is safe to call when none started.
func (a *App) observers(ctx context.Context) ([]simulation.Observer, func(), error) {
	logger := ctxlog.FromContext(ctx)
	var observers []simulation.Observer
	var closers []func()
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	if a.config.StreamPort > 0 {
		srv, err := stream.Start(ctx, fmt.Sprintf(":%d", a.config.StreamPort), stream.NewHub(a.logger))
		if err != nil {
			return nil, nil, err
		}
		observers = append(observers, srv.Hub)
		closers = append(closers, func() {
			if err := srv.Shutdown(context.WithoutCancel(ctx)); err != nil {
				logger.Error("Stream server shutdown failed", "error", err)
			}
		})
	}

	if a.config.PublishURL != "" {
		connectCtx, cancel := context.WithTimeout(ctx, a.config.PublishTimeout)
		pub, err := publish.Connect(connectCtx, a.config.PublishURL, a.config.PublishNamespace)
		cancel()
		if err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("failed to start publisher: %w", err)
		}
		observers = append(observers, pub)
		closers = append(closers, pub.Close)
	}

	if a.config.TUI {
		view, err := termview.Open(a.config.ReplayDelay)
		if err != nil {
			closeAll()
			return nil, nil, err
		}
		observers = append(observers, view)
		closers = append(closers, view.Close)
	}

	logger.Debug("Observers started.", "count", len(observers))
	return observers, closeAll, nil
}
