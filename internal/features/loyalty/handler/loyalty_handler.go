package handler

import (
	"coffee-backend/internal/features/loyalty/service"

	"github.com/gofiber/fiber/v2"
)

// LoyaltyHandler handles HTTP requests for loyalty records.
type LoyaltyHandler struct {
	loyaltyService *service.LoyaltyService
}

// NewLoyaltyHandler creates a new LoyaltyHandler.
func NewLoyaltyHandler(loyaltyService *service.LoyaltyService) *LoyaltyHandler {
	return &LoyaltyHandler{loyaltyService: loyaltyService}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"error"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// AddPointsRequest is the body for a manual point grant.
type AddPointsRequest struct {
	Points int `json:"points"`
}

// Status godoc
// @Summary Get loyalty status
// @Description Returns the user's points balance and membership, creating the record on first touch
// @Tags loyalty
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} domain.User
// @Failure 500 {object} ErrorResponse
// @Router /loyalty/{userId} [get]
func (h *LoyaltyHandler) Status(c *fiber.Ctx) error {
	user, err := h.loyaltyService.Status(c.Context(), c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Message: "failed to load loyalty status",
			RayID:   c.Locals("requestid").(string),
		})
	}
	return c.JSON(user)
}

// AddPoints godoc
// @Summary Add loyalty points
// @Description Adds points to the user's balance; negative amounts are ignored
// @Tags loyalty
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Param request body AddPointsRequest true "Points to add"
// @Success 200 {object} domain.User
// @Failure 400 {object} ErrorResponse
// @Router /loyalty/{userId}/add [post]
func (h *LoyaltyHandler) AddPoints(c *fiber.Ctx) error {
	var req AddPointsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "invalid request body",
			RayID:   c.Locals("requestid").(string),
		})
	}

	user, err := h.loyaltyService.AddPoints(c.Context(), c.Params("userId"), req.Points)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Message: "failed to add points",
			RayID:   c.Locals("requestid").(string),
		})
	}
	return c.JSON(user)
}
