package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"coffee-backend/internal/core/cache"
	"coffee-backend/internal/features/loyalty/domain"
)

// RedisUserRepository implements ports.UserRepository using the cache port.
type RedisUserRepository struct {
	cache cache.Cache
}

// NewRedisUserRepository creates a new RedisUserRepository.
func NewRedisUserRepository(c cache.Cache) *RedisUserRepository {
	return &RedisUserRepository{
		cache: c,
	}
}

func userKey(userID string) string {
	return "user:" + userID
}

// Save stores the user record. Records never expire.
func (r *RedisUserRepository) Save(ctx context.Context, user *domain.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	if err := r.cache.Set(ctx, userKey(user.UserID), data, 0); err != nil {
		return fmt.Errorf("failed to save user to cache: %w", err)
	}

	return nil
}

// Get retrieves the user record, or (nil, nil) when the user is unknown.
func (r *RedisUserRepository) Get(ctx context.Context, userID string) (*domain.User, error) {
	data, err := r.cache.Get(ctx, userKey(userID))
	if err != nil {
		if errors.Is(err, cache.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user from cache: %w", err)
	}

	var user domain.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}

	return &user, nil
}
