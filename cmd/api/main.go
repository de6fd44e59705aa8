package main

import (
	"context"
	"log"

	"coffee-backend/internal/core/cache"
	"coffee-backend/internal/core/config"
	"coffee-backend/internal/core/logger"
	"coffee-backend/internal/core/server"
	deliveryservice "coffee-backend/internal/features/delivery/service"
	loyaltyadapters "coffee-backend/internal/features/loyalty/adapters"
	loyaltyhandler "coffee-backend/internal/features/loyalty/handler"
	loyaltyservice "coffee-backend/internal/features/loyalty/service"
	orderadapters "coffee-backend/internal/features/orders/adapters"
	orderhandler "coffee-backend/internal/features/orders/handler"
	orderservice "coffee-backend/internal/features/orders/service"
	paymenthandler "coffee-backend/internal/features/payments/handler"
	paymentservice "coffee-backend/internal/features/payments/service"
	shopadapters "coffee-backend/internal/features/shops/adapters"
	shophandler "coffee-backend/internal/features/shops/handler"
	shopservice "coffee-backend/internal/features/shops/service"
	streamhandler "coffee-backend/internal/features/stream/handler"
	streamservice "coffee-backend/internal/features/stream/service"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// @title Coffee Backend API
// @version 1.0
// @description Coffee ordering backend with live order tracking over SSE and WebSocket.
// @contact.name API Support
// @contact.email support@coffeebackend.dev
// @license.name MIT
// @host localhost:4000
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	// Redis backs the loyalty ledger.
	redisCache, err := cache.NewRedisAdapter(cfg.Redis.URL)
	if err != nil {
		l.Fatal("Failed to connect to redis", zap.Error(err))
	}
	defer redisCache.Close()
	if err := redisCache.Ping(context.Background()); err != nil {
		l.Fatal("Redis health check failed", zap.Error(err))
	}
	l.Info("Redis connection verified")

	// Shops
	catalog := shopadapters.NewStaticCatalog()
	shopSvc := shopservice.NewShopService(catalog)
	shopHdl := shophandler.NewShopHandler(shopSvc)

	// Orders core plus the live-event hub. The hub needs the order core
	// for snapshots and the order core needs the hub for broadcasts, so
	// the hub is built first with the store-backed snapshot source.
	orderStore := orderadapters.NewMemoryStore()
	orderSvc := orderservice.NewOrderService(orderStore, catalog, nil, orderservice.DefaultLifecycleDelays())
	hub := streamservice.NewSubscriptionHub(orderSvc)
	orderSvc.SetPublisher(hub)

	// Courier simulation feeds back into the order core.
	sim := deliveryservice.NewSimulator(orderSvc, deliveryservice.Options{
		SpeedMps:       cfg.Delivery.CourierSpeedMps,
		SimSpeedFactor: cfg.Delivery.SimSpeedFactor,
	})
	orderSvc.SetDispatcher(sim)

	// Loyalty & payments
	loyaltySvc := loyaltyservice.NewLoyaltyService(loyaltyadapters.NewRedisUserRepository(redisCache))
	loyaltyHdl := loyaltyhandler.NewLoyaltyHandler(loyaltySvc)
	paymentSvc := paymentservice.NewPaymentService(orderSvc, loyaltySvc)
	paymentHdl := paymenthandler.NewPaymentHandler(paymentSvc)

	orderHdl := orderhandler.NewOrderHandler(orderSvc, loyaltySvc)
	sseHdl := streamhandler.NewSSEHandler(hub, orderSvc)
	wsHdl := streamhandler.NewWSHandler(hub)

	srv := server.New(cfg)

	// Register Routes
	srv.App.Get("/shops", shopHdl.ListShops)
	srv.App.Get("/shops/nearest", shopHdl.NearestShop)
	srv.App.Get("/shops/:id/menu", shopHdl.ShopMenu)

	srv.App.Post("/orders", orderHdl.PlaceOrder)
	srv.App.Get("/orders/:id", orderHdl.GetOrder)
	srv.App.Get("/orders/:id/stream", sseHdl.Stream)
	srv.App.Get("/orders/:id/courier", orderHdl.GetCourier)
	srv.App.Post("/orders/:id/dispatch", orderHdl.DispatchOrder)

	srv.App.Get("/users/:userId/orders", orderHdl.ListUserOrders)
	srv.App.Get("/users/:userId/last-order", orderHdl.LastOrder)

	srv.App.Post("/payments/intent/:orderId", paymentHdl.CreateIntent)
	srv.App.Post("/payments/confirm/:orderId", paymentHdl.ConfirmPayment)

	srv.App.Get("/loyalty/:userId", loyaltyHdl.Status)
	srv.App.Post("/loyalty/:userId/add", loyaltyHdl.AddPoints)

	srv.App.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	srv.App.Get("/ws", websocket.New(wsHdl.Handle))

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
