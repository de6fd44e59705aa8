package ports

import (
	"context"

	loyaltydomain "coffee-backend/internal/features/loyalty/domain"
	ordersdomain "coffee-backend/internal/features/orders/domain"
)

// OrderCharger advances an order's payment status. The changed flag is
// false when the order was already at or past the requested status.
type OrderCharger interface {
	RecordPayment(orderID string, status ordersdomain.PaymentStatus) (*ordersdomain.Order, bool, error)
}

// PointsLedger is the loyalty side of a confirmed payment.
type PointsLedger interface {
	AwardForPayment(ctx context.Context, userID string, totalCents int) (*loyaltydomain.User, error)
	Status(ctx context.Context, userID string) (*loyaltydomain.User, error)
}
