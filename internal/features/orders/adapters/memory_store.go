package adapters

import (
	"fmt"
	"sort"
	"sync"

	"coffee-backend/internal/features/orders/domain"
)

// MemoryStore implements ports.OrderStore with a process-local map. All
// callers receive deep copies; the stored orders are only reachable through
// Create/Get/Apply/ListByUser.
type MemoryStore struct {
	mu     sync.RWMutex
	orders map[string]*domain.Order
}

// NewMemoryStore creates an empty order store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{orders: make(map[string]*domain.Order)}
}

// Create inserts a new order.
func (s *MemoryStore) Create(order *domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.orders[order.ID]; exists {
		return fmt.Errorf("order %s already exists", order.ID)
	}
	s.orders[order.ID] = order.Clone()
	return nil
}

// Get returns a snapshot of the order, or domain.ErrNotFound.
func (s *MemoryStore) Get(id string) (*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.orders[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}
	return order.Clone(), nil
}

// Apply merges the patch into the stored order and returns the new snapshot
// plus what actually changed.
func (s *MemoryStore) Apply(id string, patch domain.Patch) (*domain.Order, domain.ChangeSet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return nil, domain.ChangeSet{}, fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}

	cs := order.ApplyPatch(patch)
	return order.Clone(), cs, nil
}

// ListByUser returns the user's orders, newest first.
func (s *MemoryStore) ListByUser(userID string) []*domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*domain.Order
	for _, order := range s.orders {
		if order.UserID == userID {
			out = append(out, order.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
