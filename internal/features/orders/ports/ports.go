package ports

import (
	"context"

	"coffee-backend/internal/core/geo"
	"coffee-backend/internal/features/orders/domain"
	shopsdomain "coffee-backend/internal/features/shops/domain"
	streamdomain "coffee-backend/internal/features/stream/domain"
)

// OrderStore owns the canonical mutable state of every order. Orders are
// retained for the process lifetime.
type OrderStore interface {
	// Create inserts a new order.
	Create(order *domain.Order) error
	// Get returns a snapshot of the order, or domain.ErrNotFound.
	Get(id string) (*domain.Order, error)
	// Apply merges the patch into the stored order under the lifecycle
	// invariants and returns the resulting snapshot plus what changed.
	// It is the only mutation path.
	Apply(id string, patch domain.Patch) (*domain.Order, domain.ChangeSet, error)
	// ListByUser returns a user's orders, newest first.
	ListByUser(userID string) []*domain.Order
}

// Publisher fans order events out to live subscribers of an order id.
type Publisher interface {
	Publish(orderID string, event streamdomain.EventType, payload interface{})
}

// Dispatcher starts the courier trajectory simulation for a dispatched
// order. A nil origin or destination makes it a silent no-op.
type Dispatcher interface {
	Start(orderID string, from, to *geo.Point)
}

// Catalog is the subset of the shop feature the order core consumes.
type Catalog interface {
	ShopByID(id string) (*shopsdomain.Shop, bool)
	MenuForShop(shopID string) ([]shopsdomain.MenuItem, bool)
}

// UserLedger is the loyalty-side bookkeeping invoked by the order endpoints.
type UserLedger interface {
	// RecordOrder stores the user's most recent order id.
	RecordOrder(ctx context.Context, userID, orderID string) error
	// LastOrderID returns the user's most recent order id, or "" when none.
	LastOrderID(ctx context.Context, userID string) (string, error)
}
