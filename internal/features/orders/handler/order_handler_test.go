package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"coffee-backend/internal/features/orders/adapters"
	"coffee-backend/internal/features/orders/domain"
	"coffee-backend/internal/features/orders/service"
	shopsadapters "coffee-backend/internal/features/shops/adapters"
	streamdomain "coffee-backend/internal/features/stream/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testShopID = "us_ny_48th_lex"

type noopPublisher struct{}

func (noopPublisher) Publish(string, streamdomain.EventType, interface{}) {}

type memoryLedger struct {
	last map[string]string
}

func (l *memoryLedger) RecordOrder(_ context.Context, userID, orderID string) error {
	l.last[userID] = orderID
	return nil
}

func (l *memoryLedger) LastOrderID(_ context.Context, userID string) (string, error) {
	return l.last[userID], nil
}

func newTestApp() (*fiber.App, *service.OrderService, *memoryLedger) {
	delays := service.LifecycleDelays{Preparing: time.Hour, Ready: time.Hour, Dispatch: time.Hour}
	svc := service.NewOrderService(adapters.NewMemoryStore(), shopsadapters.NewStaticCatalog(), noopPublisher{}, delays)
	ledger := &memoryLedger{last: make(map[string]string)}
	h := NewOrderHandler(svc, ledger)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("requestid", "test-ray-id")
		return c.Next()
	})
	app.Post("/orders", h.PlaceOrder)
	app.Get("/orders/:id", h.GetOrder)
	app.Get("/orders/:id/courier", h.GetCourier)
	app.Post("/orders/:id/dispatch", h.DispatchOrder)
	app.Get("/users/:userId/orders", h.ListUserOrders)
	app.Get("/users/:userId/last-order", h.LastOrder)
	return app, svc, ledger
}

func placeOrderBody() string {
	return `{
		"shopId": "` + testShopID + `",
		"items": [{"itemId": "croissant_` + testShopID + `", "quantity": 1}],
		"deliveryTo": {"lat": 40.75, "lon": -73.98}
	}`
}

func TestOrderHandler_PlaceOrder(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		app, _, ledger := newTestApp()

		req := httptest.NewRequest("POST", "/orders", strings.NewReader(placeOrderBody()))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

		var result OrderResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		require.NotNil(t, result.Order)
		assert.Equal(t, domain.StatusPending, result.Order.Status)
		assert.Equal(t, "demo-user", result.Order.UserID)

		assert.Equal(t, result.Order.ID, ledger.last["demo-user"])
	})

	t.Run("ValidationError", func(t *testing.T) {
		app, _, _ := newTestApp()

		req := httptest.NewRequest("POST", "/orders", strings.NewReader(`{"shopId": "nope", "items": [{"itemId": "x"}]}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		var result ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.Equal(t, "test-ray-id", result.RayID)
	})

	t.Run("MalformedBody", func(t *testing.T) {
		app, _, _ := newTestApp()

		req := httptest.NewRequest("POST", "/orders", strings.NewReader(`{`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestOrderHandler_GetOrder(t *testing.T) {
	app, svc, _ := newTestApp()

	placed, err := svc.Place(service.PlaceOrderInput{
		ShopID: testShopID,
		Items:  []domain.LineItem{{ItemID: "croissant_" + testShopID, Quantity: 1}},
	})
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest("GET", "/orders/"+placed.ID, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/orders/ord_missing", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestOrderHandler_GetCourier(t *testing.T) {
	app, svc, _ := newTestApp()

	req := httptest.NewRequest("POST", "/orders", strings.NewReader(placeOrderBody()))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	var placed OrderResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&placed))

	// No courier until the order is out for delivery.
	resp, err = app.Test(httptest.NewRequest("GET", "/orders/"+placed.Order.ID+"/courier", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	_, err = svc.ForceDispatch(placed.Order.ID)
	require.NoError(t, err)
	svc.ApplyCourier(placed.Order.ID, domain.CourierSnapshot{EtaSeconds: 42, Progress: 0.25})

	resp, err = app.Test(httptest.NewRequest("GET", "/orders/"+placed.Order.ID+"/courier", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var update domain.LocationUpdate
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&update))
	assert.Equal(t, placed.Order.ID, update.OrderID)
	require.NotNil(t, update.Courier)
	assert.Equal(t, 42, update.Courier.EtaSeconds)
}

func TestOrderHandler_DispatchOrder(t *testing.T) {
	app, svc, _ := newTestApp()

	placed, err := svc.Place(service.PlaceOrderInput{
		ShopID: testShopID,
		Items:  []domain.LineItem{{ItemID: "croissant_" + testShopID, Quantity: 1}},
	})
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest("POST", "/orders/"+placed.ID+"/dispatch", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result DispatchResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.True(t, result.OK)
	assert.Equal(t, domain.StatusOutForDelivery, result.Order.Status)

	resp, err = app.Test(httptest.NewRequest("POST", "/orders/ord_missing/dispatch", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestOrderHandler_UserOrders(t *testing.T) {
	app, svc, _ := newTestApp()

	placed, err := svc.Place(service.PlaceOrderInput{
		UserID: "user-a",
		ShopID: testShopID,
		Items:  []domain.LineItem{{ItemID: "croissant_" + testShopID, Quantity: 1}},
	})
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest("GET", "/users/user-a/orders", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var orders []domain.Order
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&orders))
	require.Len(t, orders, 1)
	assert.Equal(t, placed.ID, orders[0].ID)

	resp, err = app.Test(httptest.NewRequest("GET", "/users/user-b/orders", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestOrderHandler_LastOrder(t *testing.T) {
	app, _, _ := newTestApp()

	// Nothing placed yet.
	resp, err := app.Test(httptest.NewRequest("GET", "/users/demo-user/last-order", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	req := httptest.NewRequest("POST", "/orders", strings.NewReader(placeOrderBody()))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	var placed OrderResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&placed))

	resp, err = app.Test(httptest.NewRequest("GET", "/users/demo-user/last-order", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result OrderResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, placed.Order.ID, result.Order.ID)
}
