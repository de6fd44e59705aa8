package service

import (
	"sync"
	"time"
)

// LifecycleDelays are the automatic transition delays measured from order
// creation.
type LifecycleDelays struct {
	// Preparing is when the shop starts making the order.
	Preparing time.Duration
	// Ready is when the order is ready for pickup or dispatch.
	Ready time.Duration
	// Dispatch is when a delivery order goes out for delivery.
	Dispatch time.Duration
}

// DefaultLifecycleDelays returns the production transition timings.
func DefaultLifecycleDelays() LifecycleDelays {
	return LifecycleDelays{
		Preparing: 10 * time.Second,
		Ready:     30 * time.Second,
		Dispatch:  33 * time.Second,
	}
}

// lifecycleScheduler owns the one-shot timers that drive automatic status
// transitions, one set per order, so they can be cancelled as a unit when
// the order reaches a terminal state.
type lifecycleScheduler struct {
	mu     sync.Mutex
	timers map[string][]*time.Timer
}

func newLifecycleScheduler() *lifecycleScheduler {
	return &lifecycleScheduler{timers: make(map[string][]*time.Timer)}
}

// schedule registers a one-shot deferred action for the order.
func (s *lifecycleScheduler) schedule(orderID string, delay time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timers[orderID] = append(s.timers[orderID], time.AfterFunc(delay, fn))
}

// cancel stops every pending timer for the order. Timers that already fired
// are unaffected; a timer firing after a terminal state is harmless because
// stale transitions are no-ops in the apply path.
func (s *lifecycleScheduler) cancel(orderID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.timers[orderID] {
		t.Stop()
	}
	delete(s.timers, orderID)
}
