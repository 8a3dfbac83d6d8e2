// Package publish forwards eliminations to a socket.io server as they
// happen. Each turn is emitted as one "elimination" event.
package publish

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/specialistvlad/insectgrid/internal/ctxlog"
	"github.com/specialistvlad/insectgrid/internal/simulation"
	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"
)

// EventName is the socket.io event carrying one elimination.
const EventName = "elimination"

// Publisher is a connected socket.io client.
type Publisher struct {
	logger *slog.Logger
	io     *socket.Socket
}

var _ simulation.Observer = (*Publisher)(nil)

// Connect dials rawURL and joins namespace. It blocks until the connection
// is established, fails, or ctx is done.
func Connect(ctx context.Context, rawURL, namespace string) (*Publisher, error) {
	logger := ctxlog.FromContext(ctx).With("publisher", "socketio", "url", rawURL, "namespace", namespace)

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, fmt.Errorf("publish URL %q must include scheme and host", rawURL)
	}
	if namespace == "" {
		namespace = "/"
	}

	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	opts := socket.DefaultOptions()
	if parsedURL.Path != "" && parsedURL.Path != "/" {
		opts.SetPath(parsedURL.Path)
	}
	opts.SetTransports(types.NewSet(transports.WebSocket))

	manager := socket.NewManager(baseURL, opts)
	io := manager.Socket(namespace, opts)

	done := make(chan error, 1)
	io.On(types.EventName("connect"), func(...any) {
		select {
		case done <- nil:
		default:
		}
	})
	io.On(types.EventName("connect_error"), func(errs ...any) {
		err := errors.New("connect_error")
		if len(errs) > 0 {
			if e, ok := errs[0].(error); ok {
				err = e
			}
		}
		select {
		case done <- err:
		default:
		}
	})

	io.Connect()

	select {
	case <-ctx.Done():
		io.Disconnect()
		return nil, fmt.Errorf("timed out while waiting for socket.io connection: %w", ctx.Err())
	case err := <-done:
		if err != nil {
			io.Disconnect()
			return nil, fmt.Errorf("socket.io connection failed: %w", err)
		}
	}

	logger.Info("Publisher connected", "sid", io.Id())
	return &Publisher{logger: logger, io: io}, nil
}

// ObserveTurn emits the turn's elimination.
func (p *Publisher) ObserveTurn(ctx context.Context, turn simulation.Turn) {
	payload := Payload(turn)
	if err := p.io.Emit(EventName, payload); err != nil {
		p.logger.Warn("Failed to emit elimination", "turn", turn.Number, "error", err)
		return
	}
	ctxlog.FromContext(ctx).Debug("Elimination published.", "turn", turn.Number)
}

// Close disconnects the client.
func (p *Publisher) Close() {
	p.logger.Debug("Disconnecting socket client")
	p.io.Disconnect()
}

// Payload is the event body emitted for a turn.
func Payload(turn simulation.Turn) map[string]any {
	e := turn.Elimination
	return map[string]any{
		"turn":      turn.Number,
		"color":     e.Color.String(),
		"kind":      e.Kind.String(),
		"direction": e.Direction.Label(),
		"gathered":  e.Gathered,
		"line":      e.String(),
	}
}
