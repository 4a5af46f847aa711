package wsline

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
)

// Keeper - takes ownership of the accepted connection.
type Keeper interface {
	KeepConnection(conn io.ReadWriteCloser, remote string) error
}

// Handler - upgrades HTTP requests to WebSocket and passes connections to keeper.
type Handler struct {
	keeper   Keeper
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewHandler - builds upgrade handler. checkOrigin may be nil to use same-origin policy.
func NewHandler(keeper Keeper, checkOrigin func(r *http.Request) bool, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		keeper: keeper,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin,
		},
		logger: logger,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// upgrader has replied with error already
		h.logger.Warn("WebSocket upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}
	conn := NewConn(ws)
	if err := h.keeper.KeepConnection(conn, "ws "+r.RemoteAddr); err != nil {
		h.logger.Warn("WebSocket connection rejected", "remote", r.RemoteAddr, "error", err)
		conn.Close()
	}
}
