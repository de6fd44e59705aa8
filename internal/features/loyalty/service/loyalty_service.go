package service

import (
	"context"
	"fmt"

	"coffee-backend/internal/core/logger"
	"coffee-backend/internal/features/loyalty/domain"
	"coffee-backend/internal/features/loyalty/ports"

	"go.uber.org/zap"
)

// pointsPerDollar is awarded for every whole dollar of a confirmed payment.
const pointsPerDollar = 10

// LoyaltyService manages loyalty records: point balances, membership and
// the user's most recent order.
type LoyaltyService struct {
	repo ports.UserRepository
	log  *zap.Logger
}

// NewLoyaltyService creates the loyalty core.
func NewLoyaltyService(repo ports.UserRepository) *LoyaltyService {
	return &LoyaltyService{
		repo: repo,
		log:  logger.Named("loyalty"),
	}
}

// Status returns the user's loyalty record, creating the default one on
// first touch.
func (s *LoyaltyService) Status(ctx context.Context, userID string) (*domain.User, error) {
	return s.getOrCreate(ctx, userID)
}

// AddPoints adds a non-negative number of points and returns the updated
// record.
func (s *LoyaltyService) AddPoints(ctx context.Context, userID string, points int) (*domain.User, error) {
	if points < 0 {
		points = 0
	}

	user, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Points += points
	if err := s.repo.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// AwardForPayment converts a confirmed payment total into points, ten per
// whole dollar, and returns the updated record.
func (s *LoyaltyService) AwardForPayment(ctx context.Context, userID string, totalCents int) (*domain.User, error) {
	points := (totalCents / 100) * pointsPerDollar
	user, err := s.AddPoints(ctx, userID, points)
	if err != nil {
		return nil, err
	}

	s.log.Info("Loyalty points awarded",
		zap.String("user_id", userID),
		zap.Int("points", points),
		zap.Int("balance", user.Points),
	)
	return user, nil
}

// RecordOrder stores the user's most recent order id.
func (s *LoyaltyService) RecordOrder(ctx context.Context, userID, orderID string) error {
	user, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return err
	}

	user.LastOrderID = orderID
	return s.repo.Save(ctx, user)
}

// LastOrderID returns the user's most recent order id, or "" when none.
func (s *LoyaltyService) LastOrderID(ctx context.Context, userID string) (string, error) {
	user, err := s.repo.Get(ctx, userID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", nil
	}
	return user.LastOrderID, nil
}

func (s *LoyaltyService) getOrCreate(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user %s: %w", userID, err)
	}
	if user != nil {
		return user, nil
	}

	user = domain.NewUser(userID)
	if err := s.repo.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user %s: %w", userID, err)
	}
	return user, nil
}
