package service

import (
	"fmt"
	"sync"
	"time"

	"coffee-backend/internal/core/geo"
	"coffee-backend/internal/core/logger"
	"coffee-backend/internal/features/orders/domain"
	"coffee-backend/internal/features/orders/ports"
	streamdomain "coffee-backend/internal/features/stream/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PlaceOrderInput is the request to create an order.
type PlaceOrderInput struct {
	UserID      string            `json:"userId"`
	ShopID      string            `json:"shopId"`
	Items       []domain.LineItem `json:"items"`
	ScheduledAt *time.Time        `json:"scheduledAt"`
	DeliveryTo  *geo.Point        `json:"deliveryTo"`
}

// OrderService is the order-lifecycle core: it creates orders, serializes
// every mutation per order, broadcasts each change and drives the automatic
// status transitions.
type OrderService struct {
	store     ports.OrderStore
	catalog   ports.Catalog
	publisher ports.Publisher
	delays    LifecycleDelays
	scheduler *lifecycleScheduler
	log       *zap.Logger

	// dispatcher is bound after construction; the simulator needs this
	// service as its updater.
	dispatcher ports.Dispatcher

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewOrderService creates the order core.
func NewOrderService(store ports.OrderStore, catalog ports.Catalog, publisher ports.Publisher, delays LifecycleDelays) *OrderService {
	return &OrderService{
		store:     store,
		catalog:   catalog,
		publisher: publisher,
		delays:    delays,
		scheduler: newLifecycleScheduler(),
		log:       logger.Named("orders"),
		locks:     make(map[string]*sync.Mutex),
	}
}

// SetDispatcher binds the courier simulator. Orders dispatched before a
// dispatcher is bound skip the simulation.
func (s *OrderService) SetDispatcher(d ports.Dispatcher) {
	s.dispatcher = d
}

// SetPublisher binds the event hub. The hub reads order snapshots from
// this service, so one of the two is always constructed first; bind the
// hub here before serving traffic.
func (s *OrderService) SetPublisher(p ports.Publisher) {
	s.publisher = p
}

// Place validates, prices and creates a new order, then schedules its
// automatic lifecycle transitions. No partial order is created on failure.
func (s *OrderService) Place(input PlaceOrderInput) (*domain.Order, error) {
	if input.UserID == "" {
		input.UserID = "demo-user"
	}
	if input.ShopID == "" {
		return nil, fmt.Errorf("%w: shopId required", domain.ErrValidation)
	}
	if len(input.Items) == 0 {
		return nil, fmt.Errorf("%w: items required", domain.ErrValidation)
	}

	menu, ok := s.catalog.MenuForShop(input.ShopID)
	if !ok {
		return nil, fmt.Errorf("%w: unknown shop %s", domain.ErrValidation, input.ShopID)
	}

	items, totals, err := computeTotals(menu, input.Items)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		ID:            "ord_" + uuid.NewString(),
		UserID:        input.UserID,
		ShopID:        input.ShopID,
		CreatedAt:     time.Now().UTC(),
		ScheduledAt:   input.ScheduledAt,
		DeliveryTo:    input.DeliveryTo,
		Items:         items,
		SubtotalCents: totals.Subtotal,
		TaxCents:      totals.Tax,
		TotalCents:    totals.Total,
		Status:        domain.StatusPending,
		PaymentStatus: domain.PaymentNone,
	}

	if err := s.store.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.scheduleLifecycle(order)

	s.log.Info("Order placed",
		zap.String("order_id", order.ID),
		zap.String("shop_id", order.ShopID),
		zap.Int("total_cents", order.TotalCents),
		zap.Bool("delivery", order.DeliveryTo != nil),
	)
	return order, nil
}

// Get returns a snapshot of the order.
func (s *OrderService) Get(id string) (*domain.Order, error) {
	return s.store.Get(id)
}

// ListByUser returns a user's orders, newest first.
func (s *OrderService) ListByUser(userID string) []*domain.Order {
	return s.store.ListByUser(userID)
}

// ForceDispatch manually transitions the order to out_for_delivery,
// bypassing the lifecycle timers. Delivered orders are unaffected.
func (s *OrderService) ForceDispatch(id string) (*domain.Order, error) {
	order, _, err := s.apply(id, domain.StatusPatch(domain.StatusOutForDelivery))
	return order, err
}

// RecordPayment advances the order's payment status. The returned flag
// reports whether the status actually changed, so duplicate confirmations
// do not trigger duplicate side effects.
func (s *OrderService) RecordPayment(id string, status domain.PaymentStatus) (*domain.Order, bool, error) {
	if !status.Valid() {
		return nil, false, fmt.Errorf("%w: unknown payment status %q", domain.ErrValidation, status)
	}
	order, cs, err := s.apply(id, domain.PaymentPatch(status))
	return order, cs.Payment, err
}

// ApplyCourier records a new courier snapshot for an order in delivery.
// Called by the trajectory simulator on every tick.
func (s *OrderService) ApplyCourier(orderID string, snapshot domain.CourierSnapshot) {
	if _, _, err := s.apply(orderID, domain.CourierPatch(snapshot)); err != nil {
		s.log.Warn("Courier update failed", zap.String("order_id", orderID), zap.Error(err))
	}
}

// MarkDelivered applies the terminal transition. Called by the trajectory
// simulator exactly once per completed run.
func (s *OrderService) MarkDelivered(orderID string) {
	if _, _, err := s.apply(orderID, domain.StatusPatch(domain.StatusDelivered)); err != nil {
		s.log.Warn("Delivered transition failed", zap.String("order_id", orderID), zap.Error(err))
	}
}

// OrderSnapshot implements the stream feature's order lookup for initial
// snapshot events.
func (s *OrderService) OrderSnapshot(orderID string) (interface{}, bool) {
	order, err := s.store.Get(orderID)
	if err != nil {
		return nil, false
	}
	return order, true
}

// apply is the single mutation path. The per-order lock makes the store
// mutation and the broadcast one atomic step, so all subscribers observe
// changes to one order in apply order.
func (s *OrderService) apply(id string, patch domain.Patch) (*domain.Order, domain.ChangeSet, error) {
	unlock := s.lockOrder(id)
	defer unlock()

	order, cs, err := s.store.Apply(id, patch)
	if err != nil {
		return nil, cs, err
	}

	if s.publisher != nil {
		if cs.StateChanged() {
			s.publisher.Publish(id, streamdomain.EventUpdate, order)
		}
		if cs.Courier {
			s.publisher.Publish(id, streamdomain.EventLocation, domain.LocationUpdate{
				OrderID: id,
				Courier: order.Courier,
			})
		}
	}

	if cs.Status {
		s.log.Info("Order status changed",
			zap.String("order_id", id),
			zap.String("status", string(order.Status)),
		)
		switch order.Status {
		case domain.StatusOutForDelivery:
			s.startDelivery(order)
		case domain.StatusDelivered:
			s.scheduler.cancel(id)
		}
	}

	return order, cs, nil
}

// scheduleLifecycle registers the automatic transitions for a new order.
// Pickup orders end at ready; only delivery orders get dispatched.
func (s *OrderService) scheduleLifecycle(order *domain.Order) {
	id := order.ID
	s.scheduler.schedule(id, s.delays.Preparing, func() { s.autoAdvance(id, domain.StatusPreparing) })
	s.scheduler.schedule(id, s.delays.Ready, func() { s.autoAdvance(id, domain.StatusReady) })
	if order.DeliveryTo != nil {
		s.scheduler.schedule(id, s.delays.Dispatch, func() { s.autoAdvance(id, domain.StatusOutForDelivery) })
	}
}

func (s *OrderService) autoAdvance(id string, status domain.OrderStatus) {
	if _, _, err := s.apply(id, domain.StatusPatch(status)); err != nil {
		s.log.Warn("Scheduled transition failed",
			zap.String("order_id", id),
			zap.String("status", string(status)),
			zap.Error(err),
		)
	}
}

// startDelivery hands the order to the simulator. A missing shop coordinate
// or destination skips the simulation; that is a documented no-op, not an
// error.
func (s *OrderService) startDelivery(order *domain.Order) {
	if s.dispatcher == nil || order.DeliveryTo == nil {
		return
	}
	var from *geo.Point
	if shop, ok := s.catalog.ShopByID(order.ShopID); ok {
		loc := shop.Location()
		from = &loc
	}
	s.dispatcher.Start(order.ID, from, order.DeliveryTo)
}

// lockOrder acquires the order's serialization lock and returns its
// release. Locks live for the process lifetime, like orders themselves.
func (s *OrderService) lockOrder(id string) func() {
	s.mu.Lock()
	l, ok := s.locks[id]
	if !ok {
		l = &sync.Mutex{}
		s.locks[id] = l
	}
	s.mu.Unlock()

	l.Lock()
	return l.Unlock
}
