package handler

import (
	"errors"
	"strconv"

	"coffee-backend/internal/features/shops/service"

	"github.com/gofiber/fiber/v2"
)

// ShopHandler handles HTTP requests for the shop catalog.
type ShopHandler struct {
	shopService *service.ShopService
}

// NewShopHandler creates a new ShopHandler.
func NewShopHandler(shopService *service.ShopService) *ShopHandler {
	return &ShopHandler{shopService: shopService}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"error"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// NearestResponse is the payload returned by the nearest-shop lookup.
type NearestResponse struct {
	Shop           interface{} `json:"shop"`
	DistanceMeters int         `json:"distanceMeters"`
}

// ListShops godoc
// @Summary List all shops
// @Description Returns every shop in the catalog with coordinates and opening hours
// @Tags shops
// @Produce json
// @Success 200 {array} domain.Shop
// @Router /shops [get]
func (h *ShopHandler) ListShops(c *fiber.Ctx) error {
	return c.JSON(h.shopService.List())
}

// NearestShop godoc
// @Summary Find the nearest shop
// @Description Returns the shop closest to the given coordinate and the distance in meters
// @Tags shops
// @Produce json
// @Param lat query number true "Latitude in degrees"
// @Param lon query number true "Longitude in degrees"
// @Success 200 {object} NearestResponse
// @Failure 400 {object} ErrorResponse
// @Router /shops/nearest [get]
func (h *ShopHandler) NearestShop(c *fiber.Ctx) error {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lon, lonErr := strconv.ParseFloat(c.Query("lon"), 64)
	if latErr != nil || lonErr != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "lat/lon required",
			RayID:   c.Locals("requestid").(string),
		})
	}

	shop, distance, err := h.shopService.Nearest(lat, lon)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   c.Locals("requestid").(string),
		})
	}

	return c.JSON(NearestResponse{Shop: shop, DistanceMeters: distance})
}

// ShopMenu godoc
// @Summary Get a shop menu
// @Description Returns the menu items, option groups and prices for one shop
// @Tags shops
// @Produce json
// @Param id path string true "Shop ID"
// @Success 200 {array} domain.MenuItem
// @Failure 404 {object} ErrorResponse
// @Router /shops/{id}/menu [get]
func (h *ShopHandler) ShopMenu(c *fiber.Ctx) error {
	menu, err := h.shopService.Menu(c.Params("id"))
	if err != nil {
		if errors.Is(err, service.ErrShopNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
				Message: "shop not found",
				RayID:   c.Locals("requestid").(string),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   c.Locals("requestid").(string),
		})
	}

	return c.JSON(menu)
}
