// Package ws is the WebSocket transport adapter. It terminates client
// sockets, assigns the opaque connection identifiers the rest of the system
// tracks, and exposes the per-connection send primitive the broadcaster
// drives.
package ws

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/ta11ey/chaticusMaximus/errors"
)

// client wraps a socket with a write mutex: gorilla/websocket allows at most
// one concurrent writer per connection.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

// Hub maps connection identifiers to live sockets. It implements
// contract.Sender.
type Hub struct {
	mu           sync.RWMutex
	clients      map[string]*client
	log          *slog.Logger
	writeTimeout time.Duration
}

func NewHub(log *slog.Logger, writeTimeout time.Duration) *Hub {
	return &Hub{clients: make(map[string]*client), log: log, writeTimeout: writeTimeout}
}

// Register tracks a freshly upgraded socket and returns its new identifier.
func (h *Hub) Register(conn *websocket.Conn) string {
	connectionID := uuid.NewString()
	h.mu.Lock()
	h.clients[connectionID] = &client{conn: conn}
	h.mu.Unlock()
	return connectionID
}

// Unregister drops the socket. Safe to call for unknown identifiers.
func (h *Hub) Unregister(connectionID string) {
	h.mu.Lock()
	c, ok := h.clients[connectionID]
	delete(h.clients, connectionID)
	h.mu.Unlock()
	if ok {
		_ = c.conn.Close()
	}
}

// Send writes one payload frame to one connection. Unknown identifiers and
// closed sockets report ErrStaleConnection, every other write failure is
// ErrTransientDelivery.
func (h *Hub) Send(_ context.Context, connectionID string, payload []byte) error {
	h.mu.RLock()
	c, ok := h.clients[connectionID]
	h.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: unknown connection %q", errors.ErrStaleConnection, connectionID)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(h.writeTimeout))
	err := c.conn.WriteMessage(websocket.TextMessage, payload)
	if err == nil {
		return nil
	}
	if isClosedConn(err) {
		return fmt.Errorf("%w: %v", errors.ErrStaleConnection, err)
	}
	return fmt.Errorf("%w: %v", errors.ErrTransientDelivery, err)
}

func isClosedConn(err error) bool {
	return stderrors.Is(err, net.ErrClosed) ||
		stderrors.Is(err, websocket.ErrCloseSent) ||
		websocket.IsUnexpectedCloseError(err)
}
