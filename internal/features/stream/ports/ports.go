package ports

import "coffee-backend/internal/features/stream/domain"

// Handle abstracts one live subscriber connection. Implementations must make
// Send non-blocking with respect to the caller: a slow or dead consumer
// returns an error instead of stalling the publisher.
type Handle interface {
	// Send delivers one event to the connection. A non-nil error means the
	// handle is no longer usable and should be pruned.
	Send(event domain.EventType, payload interface{}) error
}

// Hub defines the primary port for subscriber registration and fan-out.
type Hub interface {
	// Subscribe registers a handle for an order id and sends it the current
	// order snapshot, or an error event when the order id is unknown. The
	// handle is registered either way so clients can react gracefully.
	Subscribe(orderID string, h Handle)
	// Unsubscribe removes a handle registered for an order id. Handles are
	// compared by identity.
	Unsubscribe(orderID string, h Handle)
	// Publish fans an event out to every handle subscribed to the order id,
	// pruning handles whose delivery fails. Publishing with no subscribers
	// is a no-op.
	Publish(orderID string, event domain.EventType, payload interface{})
}

// OrderSource resolves the current state of an order for the initial
// snapshot event. Implemented by the orders service.
type OrderSource interface {
	// OrderSnapshot returns the order payload for the given id, and whether
	// the order exists.
	OrderSnapshot(orderID string) (interface{}, bool)
}
