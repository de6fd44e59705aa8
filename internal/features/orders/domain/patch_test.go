package domain

import (
	"testing"

	"coffee-backend/internal/core/geo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestApplyPatch_StatusAdvances verifies forward transitions along the
// lifecycle sequence.
func TestApplyPatch_StatusAdvances(t *testing.T) {
	o := &Order{Status: StatusPending}

	cs := o.ApplyPatch(StatusPatch(StatusPreparing))
	assert.True(t, cs.Status)
	assert.Equal(t, StatusPreparing, o.Status)

	cs = o.ApplyPatch(StatusPatch(StatusDelivered))
	assert.True(t, cs.Status)
	assert.Equal(t, StatusDelivered, o.Status)
}

// TestApplyPatch_StatusNeverRegresses verifies a stale transition is a no-op.
func TestApplyPatch_StatusNeverRegresses(t *testing.T) {
	o := &Order{Status: StatusReady}

	for _, stale := range []OrderStatus{StatusPending, StatusPreparing, StatusReady} {
		cs := o.ApplyPatch(StatusPatch(stale))
		assert.False(t, cs.Status, "applying %s over ready must be ignored", stale)
		assert.Equal(t, StatusReady, o.Status)
	}
}

// TestApplyPatch_UnknownStatusIgnored verifies garbage statuses are rejected.
func TestApplyPatch_UnknownStatusIgnored(t *testing.T) {
	o := &Order{Status: StatusPending}

	cs := o.ApplyPatch(StatusPatch(OrderStatus("teleported")))
	assert.False(t, cs.Status)
	assert.Equal(t, StatusPending, o.Status)
}

// TestApplyPatch_Courier verifies the courier snapshot is only accepted
// while out for delivery and stays frozen after delivery.
func TestApplyPatch_Courier(t *testing.T) {
	snap := CourierSnapshot{
		Location:   geo.Point{Lat: 1, Lon: 2},
		Bearing:    90,
		EtaSeconds: 30,
		Progress:   0.5,
	}

	t.Run("RejectedBeforeDispatch", func(t *testing.T) {
		o := &Order{Status: StatusReady}
		cs := o.ApplyPatch(CourierPatch(snap))
		assert.False(t, cs.Courier)
		assert.Nil(t, o.Courier)
	})

	t.Run("AcceptedInDelivery", func(t *testing.T) {
		o := &Order{Status: StatusOutForDelivery}
		cs := o.ApplyPatch(CourierPatch(snap))
		require.True(t, cs.Courier)
		assert.Equal(t, snap, *o.Courier)
	})

	t.Run("FrozenAfterDelivery", func(t *testing.T) {
		o := &Order{Status: StatusOutForDelivery}
		o.ApplyPatch(CourierPatch(snap))
		o.ApplyPatch(StatusPatch(StatusDelivered))

		late := snap
		late.Progress = 0.9
		cs := o.ApplyPatch(CourierPatch(late))
		assert.False(t, cs.Courier)
		assert.Equal(t, 0.5, o.Courier.Progress)
	})
}

// TestApplyPatch_Payment verifies payment statuses only advance.
func TestApplyPatch_Payment(t *testing.T) {
	o := &Order{Status: StatusPending, PaymentStatus: PaymentNone}

	cs := o.ApplyPatch(PaymentPatch(PaymentRequiresConfirmation))
	assert.True(t, cs.Payment)
	assert.True(t, cs.StateChanged())

	cs = o.ApplyPatch(PaymentPatch(PaymentSucceeded))
	assert.True(t, cs.Payment)

	// A duplicate confirmation is a no-op.
	cs = o.ApplyPatch(PaymentPatch(PaymentSucceeded))
	assert.False(t, cs.Payment)
	assert.Equal(t, PaymentSucceeded, o.PaymentStatus)
}

// TestClone verifies Clone is a deep copy.
func TestClone(t *testing.T) {
	to := geo.Point{Lat: 1, Lon: 2}
	o := &Order{
		ID:         "ord_1",
		Status:     StatusOutForDelivery,
		DeliveryTo: &to,
		Items:      []LineItem{{ItemID: "latte", Quantity: 1}},
		Courier:    &CourierSnapshot{Progress: 0.25},
	}

	c := o.Clone()
	c.DeliveryTo.Lat = 9
	c.Courier.Progress = 0.75
	c.Items[0].Quantity = 5

	assert.Equal(t, 1.0, o.DeliveryTo.Lat)
	assert.Equal(t, 0.25, o.Courier.Progress)
	assert.Equal(t, 1, o.Items[0].Quantity)
}
