package handler

import (
	"errors"

	ordersdomain "coffee-backend/internal/features/orders/domain"
	"coffee-backend/internal/features/payments/service"

	"github.com/gofiber/fiber/v2"
)

// PaymentHandler handles HTTP requests for the mock payment flow.
type PaymentHandler struct {
	paymentService *service.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"error"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// CreateIntent godoc
// @Summary Create a payment intent
// @Description Marks the order awaiting confirmation and returns the mock client secret
// @Tags payments
// @Produce json
// @Param orderId path string true "Order ID"
// @Success 200 {object} service.Intent
// @Failure 404 {object} ErrorResponse
// @Router /payments/intent/{orderId} [post]
func (h *PaymentHandler) CreateIntent(c *fiber.Ctx) error {
	intent, err := h.paymentService.CreateIntent(c.Params("orderId"))
	if err != nil {
		if errors.Is(err, ordersdomain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
				Message: "order not found",
				RayID:   c.Locals("requestid").(string),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   c.Locals("requestid").(string),
		})
	}
	return c.JSON(intent)
}

// ConfirmPayment godoc
// @Summary Confirm a payment
// @Description Marks the payment succeeded and awards loyalty points once
// @Tags payments
// @Produce json
// @Param orderId path string true "Order ID"
// @Success 200 {object} service.Receipt
// @Failure 404 {object} ErrorResponse
// @Router /payments/confirm/{orderId} [post]
func (h *PaymentHandler) ConfirmPayment(c *fiber.Ctx) error {
	receipt, err := h.paymentService.Confirm(c.Context(), c.Params("orderId"))
	if err != nil {
		if errors.Is(err, ordersdomain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
				Message: "order not found",
				RayID:   c.Locals("requestid").(string),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   c.Locals("requestid").(string),
		})
	}
	return c.JSON(receipt)
}
