package handler

import (
	"bufio"
	"time"

	"coffee-backend/internal/features/stream/adapters"
	"coffee-backend/internal/features/stream/ports"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

const (
	// sseBufferSize bounds how many undelivered events one stream may hold.
	sseBufferSize = 64
	// ssePingInterval is the keepalive cadence on the event stream.
	ssePingInterval = 15 * time.Second
)

// SSEHandler serves the per-order Server-Sent Events stream.
type SSEHandler struct {
	hub    ports.Hub
	orders ports.OrderSource
}

// NewSSEHandler creates a new SSEHandler.
func NewSSEHandler(hub ports.Hub, orders ports.OrderSource) *SSEHandler {
	return &SSEHandler{hub: hub, orders: orders}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"error"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// Stream godoc
// @Summary Stream order events
// @Description Server-Sent Events stream of snapshot, update, location and ping events for one order
// @Tags orders
// @Produce text/event-stream
// @Param id path string true "Order ID"
// @Success 200 {string} string "event stream"
// @Failure 404 {object} ErrorResponse
// @Router /orders/{id}/stream [get]
func (h *SSEHandler) Stream(c *fiber.Ctx) error {
	orderID := c.Params("id")
	if _, ok := h.orders.OrderSnapshot(orderID); !ok {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Message: "order not found",
			RayID:   c.Locals("requestid").(string),
		})
	}

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")

	handle := adapters.NewSSEHandle(sseBufferSize)
	// Subscribe before streaming starts so the snapshot is first in queue.
	h.hub.Subscribe(orderID, handle)

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer h.hub.Unsubscribe(orderID, handle)
		handle.Run(w, ssePingInterval)
	}))

	return nil
}
