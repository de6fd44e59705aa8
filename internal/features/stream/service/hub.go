package service

import (
	"sync"

	"coffee-backend/internal/core/logger"
	"coffee-backend/internal/features/stream/domain"
	"coffee-backend/internal/features/stream/ports"

	"go.uber.org/zap"
)

// SubscriptionHub implements ports.Hub: it tracks the set of live handles
// per order id and fans events out to them. Delivery is best effort; a
// handle that fails to accept an event is removed as part of the same
// publish call so dead connections never accumulate.
type SubscriptionHub struct {
	orders ports.OrderSource

	mu          sync.Mutex
	subscribers map[string]map[ports.Handle]struct{}
}

// NewSubscriptionHub creates a hub resolving snapshots from the given source.
func NewSubscriptionHub(orders ports.OrderSource) *SubscriptionHub {
	return &SubscriptionHub{
		orders:      orders,
		subscribers: make(map[string]map[ports.Handle]struct{}),
	}
}

// Subscribe registers the handle under the order id and sends it the current
// order snapshot. An unknown order id still registers the handle but sends
// an error event instead, so the client learns why no updates will follow.
func (h *SubscriptionHub) Subscribe(orderID string, handle ports.Handle) {
	h.mu.Lock()
	set, ok := h.subscribers[orderID]
	if !ok {
		set = make(map[ports.Handle]struct{})
		h.subscribers[orderID] = set
	}
	set[handle] = struct{}{}
	h.mu.Unlock()

	if snapshot, ok := h.orders.OrderSnapshot(orderID); ok {
		h.deliver(orderID, handle, domain.EventSnapshot, snapshot)
		return
	}
	h.deliver(orderID, handle, domain.EventError, domain.ErrorPayload{Message: "order not found"})
}

// Unsubscribe removes the handle from the order's subscriber set.
func (h *SubscriptionHub) Unsubscribe(orderID string, handle ports.Handle) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if set, ok := h.subscribers[orderID]; ok {
		delete(set, handle)
	}
}

// Publish fans the event out to every current subscriber of the order.
func (h *SubscriptionHub) Publish(orderID string, event domain.EventType, payload interface{}) {
	h.mu.Lock()
	set, ok := h.subscribers[orderID]
	if !ok || len(set) == 0 {
		h.mu.Unlock()
		return
	}
	handles := make([]ports.Handle, 0, len(set))
	for handle := range set {
		handles = append(handles, handle)
	}
	h.mu.Unlock()

	for _, handle := range handles {
		h.deliver(orderID, handle, event, payload)
	}
}

// SubscriberCount returns the number of live handles for an order id.
func (h *SubscriptionHub) SubscriberCount(orderID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers[orderID])
}

// deliver sends one event to one handle, pruning the handle on failure.
func (h *SubscriptionHub) deliver(orderID string, handle ports.Handle, event domain.EventType, payload interface{}) {
	if err := handle.Send(event, payload); err != nil {
		h.Unsubscribe(orderID, handle)
		logger.Named("stream").Debug("Pruned dead subscriber",
			zap.String("order_id", orderID),
			zap.String("event", string(event)),
			zap.Error(err),
		)
	}
}
