package service

import (
	"context"
	"fmt"
	"strings"

	"coffee-backend/internal/core/logger"
	loyaltydomain "coffee-backend/internal/features/loyalty/domain"
	ordersdomain "coffee-backend/internal/features/orders/domain"
	"coffee-backend/internal/features/payments/ports"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Intent is the mock payment intent handed to the client.
type Intent struct {
	OrderID      string `json:"orderId"`
	ClientSecret string `json:"clientSecret"`
}

// Receipt is the result of a confirmed payment.
type Receipt struct {
	OK     bool                `json:"ok"`
	Order  *ordersdomain.Order `json:"order"`
	Points *loyaltydomain.User `json:"points"`
}

// PaymentService is the mock payment flow: an intent marks the order
// requires_confirmation, a confirmation marks it succeeded and awards
// loyalty points exactly once.
type PaymentService struct {
	charger ports.OrderCharger
	ledger  ports.PointsLedger
	log     *zap.Logger
}

// NewPaymentService creates the payment core.
func NewPaymentService(charger ports.OrderCharger, ledger ports.PointsLedger) *PaymentService {
	return &PaymentService{
		charger: charger,
		ledger:  ledger,
		log:     logger.Named("payments"),
	}
}

// CreateIntent moves the order to requires_confirmation and returns the
// client secret for the mock confirmation step.
func (s *PaymentService) CreateIntent(orderID string) (*Intent, error) {
	if _, _, err := s.charger.RecordPayment(orderID, ordersdomain.PaymentRequiresConfirmation); err != nil {
		return nil, err
	}

	nonce := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return &Intent{
		OrderID:      orderID,
		ClientSecret: fmt.Sprintf("pi_%s_secret_%s", orderID, nonce),
	}, nil
}

// Confirm marks the payment succeeded and awards loyalty points. A repeat
// confirmation succeeds but awards nothing.
func (s *PaymentService) Confirm(ctx context.Context, orderID string) (*Receipt, error) {
	order, changed, err := s.charger.RecordPayment(orderID, ordersdomain.PaymentSucceeded)
	if err != nil {
		return nil, err
	}

	var points *loyaltydomain.User
	if changed {
		points, err = s.ledger.AwardForPayment(ctx, order.UserID, order.TotalCents)
	} else {
		points, err = s.ledger.Status(ctx, order.UserID)
	}
	if err != nil {
		s.log.Warn("Loyalty update failed after payment",
			zap.String("order_id", orderID),
			zap.Error(err),
		)
	}

	return &Receipt{OK: true, Order: order, Points: points}, nil
}
