package handler

import (
	"encoding/json"
	"errors"
	"time"

	"coffee-backend/internal/features/stream/adapters"
	"coffee-backend/internal/features/stream/domain"
	"coffee-backend/internal/features/stream/ports"

	"github.com/gofiber/contrib/websocket"
)

const (
	// wsBufferSize bounds how many undelivered events one socket may hold.
	wsBufferSize = 64
	// wsPingInterval is the heartbeat cadence toward the client.
	wsPingInterval = 30 * time.Second
	// wsPongWait is how long a client may stay silent before being dropped.
	wsPongWait = 60 * time.Second
)

var (
	errBadJSON    = errors.New("bad json")
	errBadPayload = errors.New("bad payload")
)

// WSHandler serves the bidirectional WebSocket channel. Clients send a
// subscribe message naming an order id and receive the same event stream as
// SSE subscribers.
type WSHandler struct {
	hub ports.Hub
}

// NewWSHandler creates a new WSHandler.
func NewWSHandler(hub ports.Hub) *WSHandler {
	return &WSHandler{hub: hub}
}

// subscribeMessage is the client request on the socket.
type subscribeMessage struct {
	Type    string `json:"type"`
	OrderID string `json:"orderId"`
}

// Handle runs one WebSocket session: a write pump with heartbeat, and a
// read loop processing subscribe messages. A connection follows one order
// at a time; a new subscribe replaces the previous one.
func (h *WSHandler) Handle(conn *websocket.Conn) {
	handle := adapters.NewWSHandle(conn, wsBufferSize)
	go handle.WritePump(wsPingInterval)

	conn.SetReadDeadline(time.Now().Add(wsPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsPongWait))
	})

	var subscribed string
	defer func() {
		if subscribed != "" {
			h.hub.Unsubscribe(subscribed, handle)
		}
		handle.Close()
	}()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return
		}

		msg, err := parseSubscribe(raw)
		if err != nil {
			handle.Send(domain.EventError, domain.ErrorPayload{Message: err.Error()})
			continue
		}

		if subscribed != "" {
			h.hub.Unsubscribe(subscribed, handle)
		}
		subscribed = msg.OrderID
		h.hub.Subscribe(msg.OrderID, handle)
	}
}

// parseSubscribe validates a raw client message.
func parseSubscribe(raw []byte) (*subscribeMessage, error) {
	var msg subscribeMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		return nil, errBadJSON
	}
	if msg.Type != "subscribe" || msg.OrderID == "" {
		return nil, errBadPayload
	}
	return &msg, nil
}
