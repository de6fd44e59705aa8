package adapters

import (
	"sync"
	"time"

	"coffee-backend/internal/features/stream/domain"

	"github.com/gofiber/contrib/websocket"
)

// writeWait bounds how long a single socket write may take.
const writeWait = 10 * time.Second

// WSHandle bridges the hub to one WebSocket connection. Like SSEHandle it
// decouples the publisher from the socket with a bounded queue drained by a
// dedicated write pump, so one stalled client cannot slow fan-out.
type WSHandle struct {
	conn *websocket.Conn

	mu     sync.Mutex
	closed bool
	ch     chan domain.Envelope
}

// NewWSHandle creates a handle for the connection with the given queue capacity.
func NewWSHandle(conn *websocket.Conn, buffer int) *WSHandle {
	return &WSHandle{conn: conn, ch: make(chan domain.Envelope, buffer)}
}

// Send enqueues one event for the connection without blocking.
func (h *WSHandle) Send(event domain.EventType, payload interface{}) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrHandleClosed
	}
	select {
	case h.ch <- domain.Envelope{Event: event, Data: payload}:
		return nil
	default:
		return ErrBufferFull
	}
}

// Close marks the handle dead and stops the write pump. Idempotent.
func (h *WSHandle) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.closed {
		h.closed = true
		close(h.ch)
	}
}

// WritePump drains queued envelopes onto the socket and pings the client on
// the given interval so dead connections are detected. It closes the
// underlying connection on exit, which also unblocks the read loop.
func (h *WSHandle) WritePump(pingEvery time.Duration) {
	ticker := time.NewTicker(pingEvery)
	defer func() {
		ticker.Stop()
		h.conn.Close()
	}()

	for {
		select {
		case env, ok := <-h.ch:
			if !ok {
				h.conn.SetWriteDeadline(time.Now().Add(writeWait))
				h.conn.WriteMessage(websocket.CloseMessage, nil)
				return
			}
			h.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := h.conn.WriteJSON(env); err != nil {
				return
			}
		case <-ticker.C:
			h.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := h.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
