package ports

import "coffee-backend/internal/features/orders/domain"

// OrderUpdater receives the simulation output: one courier snapshot per
// tick and a single terminal transition when the run completes.
type OrderUpdater interface {
	ApplyCourier(orderID string, snapshot domain.CourierSnapshot)
	MarkDelivered(orderID string)
}
