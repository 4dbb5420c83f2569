package wshandler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/dauletm/pickup-share/pkg/logger"
	wrap "github.com/dauletm/pickup-share/pkg/logger/wrapper"
	"github.com/dauletm/pickup-share/pkg/metrics"
	"github.com/dauletm/pickup-share/pkg/uuid"
	ws "github.com/dauletm/pickup-share/pkg/wsHub"
)

const serviceName = "pickup-share"

var upgrader = websocket.Upgrader{
	ReadBufferSize:   1024,
	WriteBufferSize:  1024,
	HandshakeTimeout: 10 * time.Second,
	CheckOrigin:      func(r *http.Request) bool { return true },
}

// RosterHub pushes roster-changed events to connected drivers so a phone
// showing the passenger list refreshes without polling.
type RosterHub struct {
	connections *ws.ConnectionHub
	l           logger.Logger
}

func NewRosterHub(connections *ws.ConnectionHub, l logger.Logger) *RosterHub {
	return &RosterHub{
		connections: connections,
		l:           l,
	}
}

// HandleWS upgrades the request and keeps the connection registered until
// the peer goes away.
func (h *RosterHub) HandleWS(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "owner_ws_connect")

	ownerID := r.PathValue("owner_id")
	if ownerID == "" {
		http.Error(w, "owner_id is required", http.StatusBadRequest)
		return
	}
	ctx = wrap.WithOwnerID(ctx, ownerID)

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.l.Error(ctx, "failed to upgrade websocket connection", err)
		return
	}

	// The connection outlives the handler, so its lifetime context must not
	// come from the request.
	client := ws.NewConn(context.Background(), ownerID, conn)
	if err := h.connections.Add(client); err != nil {
		h.l.Error(ctx, "failed to register websocket connection", err)
		conn.Close()
		return
	}

	metrics.WebSocketConnectionsGauge.WithLabelValues(serviceName).Inc()
	h.l.Info(ctx, "driver connected", "owner_id", ownerID)

	// Incoming messages are ignored, the socket is push-only. The read loop
	// keeps the connection alive and detects the peer closing it.
	go func() {
		defer func() {
			_ = h.connections.Delete(ownerID)
			metrics.WebSocketConnectionsGauge.WithLabelValues(serviceName).Dec()
			h.l.Info(ctx, "driver disconnected", "owner_id", ownerID)
		}()

		_ = client.Listen(func(msg any) error { return nil })
	}()
}

// Close terminates every open connection and waits for them to drain.
func (h *RosterHub) Close() {
	h.connections.Close()
}

// NotifyRosterChanged sends a roster event to the owner's connection.
// Owners without an open socket are skipped quietly.
func (h *RosterHub) NotifyRosterChanged(ctx context.Context, ownerID, event string, passengerIDs []uuid.UUID) {
	ids := make([]string, 0, len(passengerIDs))
	for _, id := range passengerIDs {
		ids = append(ids, id.String())
	}

	msg := map[string]any{
		"event":        event,
		"passengerIds": ids,
		"timestamp":    time.Now().Format(time.RFC3339),
	}

	if err := h.connections.SendTo(ownerID, msg); err != nil {
		if errors.Is(err, ws.ErrConnIsNotFound) {
			return
		}
		h.l.Warn(wrap.WithOwnerID(ctx, ownerID), "failed to push roster update", "err", err.Error())
	}
}
