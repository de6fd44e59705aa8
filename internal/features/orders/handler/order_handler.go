package handler

import (
	"errors"

	"coffee-backend/internal/core/logger"
	"coffee-backend/internal/features/orders/domain"
	"coffee-backend/internal/features/orders/ports"
	"coffee-backend/internal/features/orders/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// OrderHandler handles HTTP requests for order placement and lookup.
type OrderHandler struct {
	orderService *service.OrderService
	users        ports.UserLedger
	log          *zap.Logger
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orderService *service.OrderService, users ports.UserLedger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		users:        users,
		log:          logger.Named("orders"),
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"error"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// OrderResponse wraps a single order.
type OrderResponse struct {
	Order *domain.Order `json:"order"`
}

// DispatchResponse is returned after a manual dispatch.
type DispatchResponse struct {
	OK    bool          `json:"ok"`
	Order *domain.Order `json:"order"`
}

// PlaceOrder godoc
// @Summary Place an order
// @Description Validates and prices the items, creates the order and starts its lifecycle
// @Tags orders
// @Accept json
// @Produce json
// @Param order body service.PlaceOrderInput true "Order to place"
// @Success 201 {object} OrderResponse
// @Failure 400 {object} ErrorResponse
// @Router /orders [post]
func (h *OrderHandler) PlaceOrder(c *fiber.Ctx) error {
	var input service.PlaceOrderInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "invalid request body",
			RayID:   c.Locals("requestid").(string),
		})
	}

	order, err := h.orderService.Place(input)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Message: err.Error(),
				RayID:   c.Locals("requestid").(string),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   c.Locals("requestid").(string),
		})
	}

	if err := h.users.RecordOrder(c.Context(), order.UserID, order.ID); err != nil {
		h.log.Warn("Failed to record last order",
			zap.String("user_id", order.UserID),
			zap.String("order_id", order.ID),
			zap.Error(err),
		)
	}

	return c.Status(fiber.StatusCreated).JSON(OrderResponse{Order: order})
}

// GetOrder godoc
// @Summary Get an order
// @Description Returns the current snapshot of one order
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} OrderResponse
// @Failure 404 {object} ErrorResponse
// @Router /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	order, err := h.orderService.Get(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Message: "order not found",
			RayID:   c.Locals("requestid").(string),
		})
	}
	return c.JSON(OrderResponse{Order: order})
}

// GetCourier godoc
// @Summary Get the courier position
// @Description Returns the latest courier snapshot for an order in delivery
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} domain.LocationUpdate
// @Failure 404 {object} ErrorResponse
// @Router /orders/{id}/courier [get]
func (h *OrderHandler) GetCourier(c *fiber.Ctx) error {
	order, err := h.orderService.Get(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Message: "order not found",
			RayID:   c.Locals("requestid").(string),
		})
	}
	if order.Courier == nil {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Message: "order not in delivery",
			RayID:   c.Locals("requestid").(string),
		})
	}
	return c.JSON(domain.LocationUpdate{OrderID: order.ID, Courier: order.Courier})
}

// DispatchOrder godoc
// @Summary Force-dispatch an order
// @Description Immediately transitions the order to out_for_delivery, bypassing the lifecycle timers
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} DispatchResponse
// @Failure 404 {object} ErrorResponse
// @Router /orders/{id}/dispatch [post]
func (h *OrderHandler) DispatchOrder(c *fiber.Ctx) error {
	order, err := h.orderService.ForceDispatch(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Message: "order not found",
			RayID:   c.Locals("requestid").(string),
		})
	}
	return c.JSON(DispatchResponse{OK: true, Order: order})
}

// ListUserOrders godoc
// @Summary List a user's orders
// @Description Returns the user's orders, newest first
// @Tags orders
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {array} domain.Order
// @Router /users/{userId}/orders [get]
func (h *OrderHandler) ListUserOrders(c *fiber.Ctx) error {
	return c.JSON(h.orderService.ListByUser(c.Params("userId")))
}

// LastOrder godoc
// @Summary Get a user's most recent order
// @Description Returns the last order the user placed, the "your usual" shortcut
// @Tags orders
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} OrderResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/{userId}/last-order [get]
func (h *OrderHandler) LastOrder(c *fiber.Ctx) error {
	lastID, err := h.users.LastOrderID(c.Context(), c.Params("userId"))
	if err != nil || lastID == "" {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Message: "no orders yet",
			RayID:   c.Locals("requestid").(string),
		})
	}

	order, err := h.orderService.Get(lastID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Message: "order not found",
			RayID:   c.Locals("requestid").(string),
		})
	}
	return c.JSON(OrderResponse{Order: order})
}
