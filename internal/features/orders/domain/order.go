package domain

import (
	"errors"
	"time"

	"coffee-backend/internal/core/geo"
)

// ErrNotFound is returned when an order id does not exist.
var ErrNotFound = errors.New("order not found")

// ErrValidation marks malformed order-placement input. Specific causes are
// wrapped around it; callers match with errors.Is.
var ErrValidation = errors.New("invalid order")

// LineItem is one ordered product with its option selections, keyed by
// option group id.
type LineItem struct {
	ItemID   string              `json:"itemId"`
	Quantity int                 `json:"quantity"`
	Selected map[string][]string `json:"selected"`
}

// CourierSnapshot is the simulated courier state for an order in delivery.
// It is derived on every simulation tick, never hand-edited.
type CourierSnapshot struct {
	// Location is the interpolated courier position.
	Location geo.Point `json:"location"`
	// Bearing is the heading toward the destination in degrees [0, 360).
	Bearing float64 `json:"bearing"`
	// EtaSeconds is the remaining simulated travel time, never negative.
	EtaSeconds int `json:"etaSeconds"`
	// Progress is the completed fraction of the trajectory in [0, 1].
	Progress float64 `json:"progress"`
}

// Order represents a single customer purchase progressing through the
// lifecycle. Orders are mutated only through ApplyPatch so every change is
// observable by subscribers.
type Order struct {
	ID            string           `json:"id"`
	UserID        string           `json:"userId"`
	ShopID        string           `json:"shopId"`
	CreatedAt     time.Time        `json:"createdAt"`
	ScheduledAt   *time.Time       `json:"scheduledAt"`
	DeliveryTo    *geo.Point       `json:"deliveryTo"`
	Items         []LineItem       `json:"items"`
	SubtotalCents int              `json:"subtotalCents"`
	TaxCents      int              `json:"taxCents"`
	TotalCents    int              `json:"totalCents"`
	Status        OrderStatus      `json:"status"`
	PaymentStatus PaymentStatus    `json:"paymentStatus"`
	Courier       *CourierSnapshot `json:"courier"`
}

// Clone returns a deep copy of the order.
func (o *Order) Clone() *Order {
	c := *o
	if o.ScheduledAt != nil {
		at := *o.ScheduledAt
		c.ScheduledAt = &at
	}
	if o.DeliveryTo != nil {
		to := *o.DeliveryTo
		c.DeliveryTo = &to
	}
	if o.Courier != nil {
		courier := *o.Courier
		c.Courier = &courier
	}
	c.Items = make([]LineItem, len(o.Items))
	copy(c.Items, o.Items)
	return &c
}

// LocationUpdate is the lightweight payload broadcast on every simulation
// tick instead of the full order.
type LocationUpdate struct {
	OrderID string           `json:"orderId"`
	Courier *CourierSnapshot `json:"courier"`
}
