package ports

import (
	"context"

	"coffee-backend/internal/features/loyalty/domain"
)

// UserRepository persists loyalty records keyed by user id.
type UserRepository interface {
	// Get returns the stored record, or (nil, nil) when the user has no
	// record yet.
	Get(ctx context.Context, userID string) (*domain.User, error)
	// Save stores the record, overwriting any previous one.
	Save(ctx context.Context, user *domain.User) error
}
