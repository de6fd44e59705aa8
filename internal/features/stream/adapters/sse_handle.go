package adapters

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"coffee-backend/internal/features/stream/domain"
)

// ErrHandleClosed is returned by Send after the connection has gone away.
var ErrHandleClosed = errors.New("subscriber handle closed")

// ErrBufferFull is returned by Send when the subscriber cannot keep up.
var ErrBufferFull = errors.New("subscriber buffer full")

// SSEHandle bridges the hub to one Server-Sent Events connection. Send
// enqueues without blocking; Run drains the queue onto the HTTP response
// from the fasthttp stream-writer goroutine.
type SSEHandle struct {
	mu     sync.Mutex
	closed bool
	ch     chan domain.Envelope
}

// NewSSEHandle creates a handle with the given queue capacity.
func NewSSEHandle(buffer int) *SSEHandle {
	return &SSEHandle{ch: make(chan domain.Envelope, buffer)}
}

// Send enqueues one event for the connection. It never blocks: a closed
// handle or a full queue reports a delivery failure so the hub prunes us.
func (h *SSEHandle) Send(event domain.EventType, payload interface{}) error {
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

// Close marks the handle dead and releases the queue. Idempotent.
func (h *SSEHandle) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.closed {
		h.closed = true
		close(h.ch)
	}
}

// Run writes queued events to w until the queue closes or a write fails
// (client disconnected), emitting a ping event on the given interval. It
// closes the handle on exit.
func (h *SSEHandle) Run(w *bufio.Writer, pingEvery time.Duration) {
	defer h.Close()

	ticker := time.NewTicker(pingEvery)
	defer ticker.Stop()

	for {
		select {
		case env, ok := <-h.ch:
			if !ok {
				return
			}
			if err := writeSSE(w, env); err != nil {
				return
			}
		case <-ticker.C:
			ping := domain.Envelope{
				Event: domain.EventPing,
				Data:  map[string]int64{"t": time.Now().UnixMilli()},
			}
			if err := writeSSE(w, ping); err != nil {
				return
			}
		}
	}
}

// writeSSE renders one envelope in text/event-stream framing and flushes it.
func writeSSE(w *bufio.Writer, env domain.Envelope) error {
	data, err := json.Marshal(env.Data)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", env.Event, err)
	}
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", env.Event, data); err != nil {
		return err
	}
	return w.Flush()
}
