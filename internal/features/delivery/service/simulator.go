package service

import (
	"math"
	"sync"
	"time"

	"coffee-backend/internal/core/geo"
	"coffee-backend/internal/core/logger"
	"coffee-backend/internal/features/delivery/ports"
	"coffee-backend/internal/features/orders/domain"

	"go.uber.org/zap"
)

const (
	// minTripDuration and maxTripDuration clamp the raw travel time before
	// the speed factor is applied, so every delivery is watchable but none
	// drags on.
	minTripDuration = 45 * time.Second
	maxTripDuration = 600 * time.Second

	defaultTickInterval = time.Second
)

// Options tune the trajectory simulation.
type Options struct {
	// SpeedMps is the courier's straight-line speed in meters per second.
	SpeedMps float64
	// SimSpeedFactor divides the trip duration, compressing simulated time.
	SimSpeedFactor float64
	// TickInterval is the wall-clock period between courier snapshots.
	TickInterval time.Duration
}

// Simulator drives one courier trajectory per dispatched order: straight
// line from the shop to the destination, one snapshot per tick, a single
// delivered transition at the end.
type Simulator struct {
	updater ports.OrderUpdater
	opts    Options
	log     *zap.Logger
	now     func() time.Time

	mu   sync.Mutex
	runs map[string]*run
}

type run struct {
	from, to geo.Point
	duration time.Duration
	started  time.Time
	stop     chan struct{}
}

// NewSimulator creates a simulator delivering snapshots to updater.
func NewSimulator(updater ports.OrderUpdater, opts Options) *Simulator {
	if opts.SpeedMps <= 0 {
		opts.SpeedMps = 5.0
	}
	if opts.SimSpeedFactor <= 0 {
		opts.SimSpeedFactor = 1.0
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = defaultTickInterval
	}
	return &Simulator{
		updater: updater,
		opts:    opts,
		log:     logger.Named("sim"),
		now:     time.Now,
		runs:    make(map[string]*run),
	}
}

// Start begins the courier run for an order. A nil origin or destination
// skips the simulation. Starting again for the same order replaces the
// previous run.
func (s *Simulator) Start(orderID string, from, to *geo.Point) {
	if from == nil || to == nil {
		s.log.Debug("Skipping courier run, incomplete coordinates", zap.String("order_id", orderID))
		return
	}

	r := &run{
		from:     *from,
		to:       *to,
		duration: plannedDuration(*from, *to, s.opts.SpeedMps, s.opts.SimSpeedFactor),
		started:  s.now(),
		stop:     make(chan struct{}),
	}

	s.mu.Lock()
	if prev, ok := s.runs[orderID]; ok {
		close(prev.stop)
	}
	s.runs[orderID] = r
	s.mu.Unlock()

	s.log.Info("Courier run started",
		zap.String("order_id", orderID),
		zap.Duration("duration", r.duration),
	)

	go s.loop(orderID, r)
}

// Stop cancels the order's run, if any, without a delivered transition.
func (s *Simulator) Stop(orderID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.runs[orderID]; ok {
		close(r.stop)
		delete(s.runs, orderID)
	}
}

func (s *Simulator) loop(orderID string, r *run) {
	ticker := time.NewTicker(s.opts.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stop:
			return
		case <-ticker.C:
			elapsed := s.now().Sub(r.started)
			snapshot := courierAt(r.from, r.to, r.duration, elapsed)
			s.updater.ApplyCourier(orderID, snapshot)

			if elapsed >= r.duration {
				s.finish(orderID, r)
				return
			}
		}
	}
}

// finish applies the terminal transition, but only when r is still the
// order's current run. A replaced run may still be draining its last tick;
// it must not deliver the order a second time.
func (s *Simulator) finish(orderID string, r *run) {
	s.mu.Lock()
	current := s.runs[orderID] == r
	if current {
		delete(s.runs, orderID)
	}
	s.mu.Unlock()

	if !current {
		return
	}

	s.log.Info("Courier run completed", zap.String("order_id", orderID))
	s.updater.MarkDelivered(orderID)
}

// plannedDuration computes the trip time: straight-line distance over the
// courier speed, clamped to [minTripDuration, maxTripDuration], then
// compressed by the speed factor.
func plannedDuration(from, to geo.Point, speedMps, simSpeedFactor float64) time.Duration {
	raw := time.Duration(from.DistanceTo(to) / speedMps * float64(time.Second))
	if raw < minTripDuration {
		raw = minTripDuration
	}
	if raw > maxTripDuration {
		raw = maxTripDuration
	}
	return time.Duration(float64(raw) / simSpeedFactor)
}

// courierAt computes the snapshot at a given elapsed time: linear position
// interpolation, heading toward the destination, remaining ETA in whole
// seconds.
func courierAt(from, to geo.Point, duration, elapsed time.Duration) domain.CourierSnapshot {
	progress := 1.0
	if duration > 0 {
		progress = float64(elapsed) / float64(duration)
	}
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}

	pos := geo.Lerp(from, to, progress)

	remaining := duration - elapsed
	if remaining < 0 {
		remaining = 0
	}

	return domain.CourierSnapshot{
		Location:   pos,
		Bearing:    pos.BearingTo(to),
		EtaSeconds: int(math.Round(remaining.Seconds())),
		Progress:   progress,
	}
}
