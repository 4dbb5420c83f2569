package ws

import (
	"context"
	"errors"
	"sync"

	"github.com/dauletm/pickup-share/pkg/logger"
	wrap "github.com/dauletm/pickup-share/pkg/logger/wrapper"
)

var (
	ErrEmptyConn      = errors.New("connection is empty")
	ErrConnIsNotFound = errors.New("connection not found")
)

// ConnectionHub stores and manages all active WebSocket connections,
// keyed by the owner identifier of the connected driver.
type ConnectionHub struct {
	clients map[string]*Conn
	l       logger.Logger
	mu      sync.Mutex
	wg      sync.WaitGroup
}

func NewConnHub(l logger.Logger) *ConnectionHub {
	return &ConnectionHub{
		clients: make(map[string]*Conn),
		l:       l,
	}
}

// Add registers a new connection in the hub.
// If a connection for this owner already exists it is closed first.
func (h *ConnectionHub) Add(newConn *Conn) error {
	if newConn == nil {
		return ErrEmptyConn
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	ctx := wrap.WithAction(context.Background(), "add_ws_connection")

	if existing, ok := h.clients[newConn.ownerID]; ok {
		h.l.Warn(ctx,
			"replacing existing connection",
			"owner_id", existing.ownerID,
		)
		if err := existing.Close(); err != nil {
			h.l.Warn(ctx,
				"failed to close existing conn",
				"owner_id", existing.ownerID,
				"err", err.Error(),
			)
		}
	}

	h.clients[newConn.ownerID] = newConn
	h.wg.Add(1)

	return nil
}

// Delete removes and closes the connection for an owner
func (h *ConnectionHub) Delete(ownerID string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	ctx := wrap.WithAction(context.Background(), "ws_connection_delete")

	conn, ok := h.clients[ownerID]
	if !ok {
		h.l.Warn(ctx,
			"delete called for unknown owner",
			"owner_id", ownerID,
		)
		return ErrConnIsNotFound
	}

	if err := conn.Close(); err != nil {
		h.l.Warn(ctx,
			"failed to close conn",
			"owner_id", conn.ownerID,
			"err", err.Error(),
		)
	}

	delete(h.clients, ownerID)
	h.wg.Done()

	return nil
}

// SendTo sends a message to the owner's connection.
// Returns ErrConnIsNotFound when the owner has no open connection.
func (h *ConnectionHub) SendTo(ownerID string, msg map[string]any) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conn, ok := h.clients[ownerID]; ok {
		return conn.Send(msg)
	}
	return ErrConnIsNotFound
}

// Close closes every websocket connection
func (h *ConnectionHub) Close() {
	ctx := wrap.WithAction(context.Background(), "hub_close")

	// copy clients under the lock, close outside it
	h.mu.Lock()
	clients := make([]*Conn, 0, len(h.clients))
	for _, conn := range h.clients {
		clients = append(clients, conn)
	}
	h.mu.Unlock()

	for _, conn := range clients {
		_ = h.Delete(conn.ownerID)
	}

	h.wg.Wait()

	h.l.Info(ctx, "all websocket connections closed gracefully")
}

// GetConn returns the connection for an owner
func (h *ConnectionHub) GetConn(ownerID string) (*Conn, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conn, ok := h.clients[ownerID]
	if !ok {
		return nil, ErrConnIsNotFound
	}
	return conn, nil
}
