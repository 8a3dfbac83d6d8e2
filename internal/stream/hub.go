package stream

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/specialistvlad/insectgrid/internal/ctxlog"
	"github.com/specialistvlad/insectgrid/internal/simulation"
)

const writeWait = 5 * time.Second

// Hub keeps the set of connected clients and fans messages out to them.
type Hub struct {
	logger   *slog.Logger
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

var _ simulation.Observer = (*Hub)(nil)

// NewHub creates an empty hub. A nil logger falls back to slog.Default.
func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		logger: logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		clients: make(map[*websocket.Conn]struct{}),
	}
}

// Handler returns the hub's routes: /ws for clients and /health.
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/ws", h)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "OK")
	})
	return mux
}

// ServeHTTP upgrades the request and registers the client.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("Failed to upgrade stream connection.", "remote_addr", r.RemoteAddr, "error", err)
		return
	}

	h.mu.Lock()
	h.clients[conn] = struct{}{}
	count := len(h.clients)
	h.mu.Unlock()
	h.logger.Debug("Stream client connected.", "remote_addr", r.RemoteAddr, "clients", count)

	go h.readLoop(conn)
}

func (h *Hub) readLoop(conn *websocket.Conn) {
	defer h.drop(conn)
	for {
		if _, _, err := conn.NextReader(); err != nil {
			return
		}
	}
}

func (h *Hub) drop(conn *websocket.Conn) {
	h.mu.Lock()
	_, ok := h.clients[conn]
	delete(h.clients, conn)
	h.mu.Unlock()
	if ok {
		conn.Close()
		h.logger.Debug("Stream client disconnected.", "remote_addr", conn.RemoteAddr().String())
	}
}

// Clients reports the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Broadcast sends v as JSON to every client. Clients that fail the write are
// dropped.
func (h *Hub) Broadcast(v any) {
	h.mu.Lock()
	var failed []*websocket.Conn
	for conn := range h.clients {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(v); err != nil {
			h.logger.Warn("Failed to write to stream client.", "remote_addr", conn.RemoteAddr().String(), "error", err)
			failed = append(failed, conn)
		}
	}
	h.mu.Unlock()

	for _, conn := range failed {
		h.drop(conn)
	}
}

// ObserveTurn broadcasts the turn to all clients.
func (h *Hub) ObserveTurn(ctx context.Context, turn simulation.Turn) {
	ctxlog.FromContext(ctx).Debug("Broadcasting turn.", "turn", turn.Number, "clients", h.Clients())
	h.Broadcast(NewTurnMessage(turn))
}

// Close disconnects every client.
func (h *Hub) Close() {
	h.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(h.clients))
	for conn := range h.clients {
		conns = append(conns, conn)
	}
	h.mu.Unlock()

	for _, conn := range conns {
		conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "run finished"),
			time.Now().Add(writeWait))
		h.drop(conn)
	}
}

// Server runs a hub behind an HTTP listener.
type Server struct {
	Hub        *Hub
	httpServer *http.Server
	addr       string
}

// Start listens on addr and serves the hub in the background. A listen
// failure such as a port already in use is returned before anything runs.
func Start(ctx context.Context, addr string, hub *Hub) (*Server, error) {
	logger := ctxlog.FromContext(ctx)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("stream server failed to listen on %s: %w", addr, err)
	}
	s := &Server{
		Hub:        hub,
		httpServer: &http.Server{Addr: addr, Handler: hub.Handler()},
		addr:       ln.Addr().String(),
	}

	go func() {
		logger.Info("📡 Stream server starting", "address", fmt.Sprintf("ws://%s/ws", s.addr))
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Stream server failed unexpectedly", "error", err)
		}
	}()
	return s, nil
}

// Addr returns the address the server is listening on.
func (s *Server) Addr() string {
	return s.addr
}

// Shutdown closes all clients and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	s.Hub.Close()
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("stream server shutdown failed: %w", err)
	}
	return nil
}
