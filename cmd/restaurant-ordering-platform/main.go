package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/lusakaeats/restaurant-ordering-platform/docs"
	"github.com/lusakaeats/restaurant-ordering-platform/internal/api/handlers"
	"github.com/lusakaeats/restaurant-ordering-platform/internal/api/middleware"
	"github.com/lusakaeats/restaurant-ordering-platform/internal/cache"
	"github.com/lusakaeats/restaurant-ordering-platform/internal/config"
	"github.com/lusakaeats/restaurant-ordering-platform/internal/health"
	"github.com/lusakaeats/restaurant-ordering-platform/internal/metrics"
	repository "github.com/lusakaeats/restaurant-ordering-platform/internal/repositories"
	service "github.com/lusakaeats/restaurant-ordering-platform/internal/services"
	"github.com/lusakaeats/restaurant-ordering-platform/internal/telemetry"
	"github.com/lusakaeats/restaurant-ordering-platform/pkg/sendgrid"
)

//	@title			Restaurant Ordering Platform API
//	@version		1.0
//	@description	Online ordering, cart and coupon pricing, order tracking and table reservations.
//	@BasePath		/api/v1

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Tracing setup
	shutdownTracing, err := telemetry.Setup(context.Background(), cfg)
	if err != nil {
		slog.Error("❌ Error setting up tracing", "error", err.Error())
		os.Exit(1)
	}

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", "error", err.Error())
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	// Redis setup
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Host,
		Username: cfg.Redis.Username,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		slog.Error("❌ Error accessing the redis instance", "error", err.Error())
		os.Exit(1)
	}

	jwtKey := []byte(cfg.Security.JWTKey)
	emailClient := sendgrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	menuCache := cache.NewRedisCache(redisClient, &cfg.Cache)
	cartRepo := repository.NewCartRepo(redisClient, cfg.Cache.CartTTL)
	loginLimiter := repository.NewLoginRateLimiter(redisClient, cfg.RateLimit.MaxAttempts, cfg.RateLimit.WindowSize)

	menuService := service.NewMenuService(repos.Menu, menuCache, cfg.Cache.MenuTTL)
	menuHandler := handlers.NewMenuHandler(menuService)
	cartService := service.NewCartService(cartRepo, repos.Menu)
	cartHandler := handlers.NewCartHandler(cartService)
	notificationService := service.NewNotificationService(emailClient)
	orderService := service.NewOrderService(repos.Order, cartRepo, notificationService)
	orderHandler := handlers.NewOrderHandler(orderService)
	reservationService := service.NewReservationService(repos.Reservation)
	reservationHandler := handlers.NewReservationHandler(reservationService)
	staffService := service.NewStaffService(repos.Staff, loginLimiter, jwtKey, cfg.Security.TokenTTL)
	authHandler := handlers.NewAuthHandler(staffService)
	authMiddleware := middleware.NewAuthMiddleware(jwtKey)

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("GET /api/v1/restaurants/{id}/menu", menuHandler.GetMenu())
	routerMux.HandleFunc("GET /api/v1/carts", cartHandler.GetCart())
	routerMux.HandleFunc("POST /api/v1/carts/items", cartHandler.AddItem())
	routerMux.HandleFunc("PUT /api/v1/carts/items/{lineId}", cartHandler.UpdateQuantity())
	routerMux.HandleFunc("DELETE /api/v1/carts/items/{lineId}", cartHandler.RemoveItem())
	routerMux.HandleFunc("POST /api/v1/carts/coupon", cartHandler.ApplyCoupon())
	routerMux.HandleFunc("DELETE /api/v1/carts/coupon", cartHandler.ClearCoupon())
	routerMux.HandleFunc("POST /api/v1/orders", orderHandler.Checkout())
	routerMux.HandleFunc("GET /api/v1/orders/token/{token}", orderHandler.TrackOrder())
	routerMux.HandleFunc("POST /api/v1/reservations", reservationHandler.CreateReservation())
	routerMux.HandleFunc("POST /api/v1/staff/login", authHandler.Login())
	routerMux.HandleFunc("GET /api/v1/orders", authMiddleware.Authenticate(orderHandler.ListOrders()))
	routerMux.HandleFunc("GET /api/v1/orders/{id}", authMiddleware.Authenticate(orderHandler.GetOrder()))
	routerMux.HandleFunc("PATCH /api/v1/orders/{id}/status", authMiddleware.Authenticate(orderHandler.UpdateOrderStatus()))
	routerMux.HandleFunc("GET /api/v1/reservations", authMiddleware.Authenticate(reservationHandler.ListReservations()))
	routerMux.HandleFunc("GET /api/v1/reservations/{id}", authMiddleware.Authenticate(reservationHandler.GetReservation()))
	routerMux.HandleFunc("PATCH /api/v1/reservations/{id}/status", authMiddleware.Authenticate(reservationHandler.UpdateReservationStatus()))

	// Operational endpoints
	healthHandler, err := health.NewHealthHandler(cfg, &health.Endpoints{DB: repos.DB, RedisClient: redisClient})
	if err != nil {
		slog.Error("❌ Error setting up health checks", "error", err.Error())
		os.Exit(1)
	}

	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, "http.server")

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("⚠️ Tracer shutdown encountered an issue", slog.String("error", err.Error()))
	}
}
