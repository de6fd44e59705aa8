package domain

// OrderStatus represents the current state of an order. Statuses advance
// along a fixed sequence and never regress.
type OrderStatus string

const (
	// StatusPending indicates the order was placed and not yet accepted.
	StatusPending OrderStatus = "pending"
	// StatusPreparing indicates the shop is making the order.
	StatusPreparing OrderStatus = "preparing"
	// StatusReady indicates the order is ready for pickup or dispatch.
	StatusReady OrderStatus = "ready"
	// StatusOutForDelivery indicates a courier is en route to the customer.
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	// StatusDelivered is the terminal state for delivery orders.
	StatusDelivered OrderStatus = "delivered"
)

var statusRank = map[OrderStatus]int{
	StatusPending:        0,
	StatusPreparing:      1,
	StatusReady:          2,
	StatusOutForDelivery: 3,
	StatusDelivered:      4,
}

// Valid reports whether s is a known lifecycle status.
func (s OrderStatus) Valid() bool {
	_, ok := statusRank[s]
	return ok
}

// Before reports whether s precedes other in the lifecycle sequence.
func (s OrderStatus) Before(other OrderStatus) bool {
	return statusRank[s] < statusRank[other]
}

// Terminal reports whether no further automatic transition can occur.
func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered
}

// PaymentStatus represents the mock payment state of an order.
type PaymentStatus string

const (
	// PaymentNone means no payment intent exists yet.
	PaymentNone PaymentStatus = "none"
	// PaymentRequiresConfirmation means an intent was created.
	PaymentRequiresConfirmation PaymentStatus = "requires_confirmation"
	// PaymentSucceeded means the payment was confirmed.
	PaymentSucceeded PaymentStatus = "succeeded"
)

var paymentRank = map[PaymentStatus]int{
	PaymentNone:                 0,
	PaymentRequiresConfirmation: 1,
	PaymentSucceeded:            2,
}

// Valid reports whether p is a known payment status.
func (p PaymentStatus) Valid() bool {
	_, ok := paymentRank[p]
	return ok
}

// Before reports whether p precedes other in the payment sequence.
func (p PaymentStatus) Before(other PaymentStatus) bool {
	return paymentRank[p] < paymentRank[other]
}
