package domain

// Patch is a partial update routed through the single mutation path. Nil
// fields are left untouched.
type Patch struct {
	Status        *OrderStatus
	PaymentStatus *PaymentStatus
	Courier       *CourierSnapshot
}

// StatusPatch builds a Patch advancing the lifecycle status.
func StatusPatch(s OrderStatus) Patch {
	return Patch{Status: &s}
}

// PaymentPatch builds a Patch advancing the payment status.
func PaymentPatch(p PaymentStatus) Patch {
	return Patch{PaymentStatus: &p}
}

// CourierPatch builds a Patch carrying a new courier snapshot.
func CourierPatch(c CourierSnapshot) Patch {
	return Patch{Courier: &c}
}

// ChangeSet reports which parts of an order a Patch actually changed.
type ChangeSet struct {
	Status  bool
	Payment bool
	Courier bool
}

// StateChanged reports whether the full order state changed, i.e. an
// `update` event is due.
func (c ChangeSet) StateChanged() bool {
	return c.Status || c.Payment
}

// Any reports whether the patch had any effect at all.
func (c ChangeSet) Any() bool {
	return c.Status || c.Payment || c.Courier
}

// ApplyPatch merges p into the order while enforcing the lifecycle
// invariants: statuses and payment statuses only ever advance (a stale
// timer re-applying a passed status is a no-op), and the courier snapshot
// is accepted only while the order is out for delivery, which freezes the
// last snapshot once the order is delivered.
func (o *Order) ApplyPatch(p Patch) ChangeSet {
	var cs ChangeSet

	if p.Status != nil && p.Status.Valid() && o.Status.Before(*p.Status) {
		o.Status = *p.Status
		cs.Status = true
	}

	if p.PaymentStatus != nil && p.PaymentStatus.Valid() && o.PaymentStatus.Before(*p.PaymentStatus) {
		o.PaymentStatus = *p.PaymentStatus
		cs.Payment = true
	}

	if p.Courier != nil && o.Status == StatusOutForDelivery {
		courier := *p.Courier
		o.Courier = &courier
		cs.Courier = true
	}

	return cs
}
