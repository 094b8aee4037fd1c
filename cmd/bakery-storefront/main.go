package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/bluemoonhaven/bakery-storefront/internal/api/handlers"
	"github.com/bluemoonhaven/bakery-storefront/internal/api/middleware"
	"github.com/bluemoonhaven/bakery-storefront/internal/cache"
	"github.com/bluemoonhaven/bakery-storefront/internal/config"
	"github.com/bluemoonhaven/bakery-storefront/internal/health"
	"github.com/bluemoonhaven/bakery-storefront/internal/metrics"
	repository "github.com/bluemoonhaven/bakery-storefront/internal/repositories"
	service "github.com/bluemoonhaven/bakery-storefront/internal/services"
	"github.com/bluemoonhaven/bakery-storefront/internal/telemetry"
	"github.com/bluemoonhaven/bakery-storefront/pkg/sendgrid"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	ctx := context.Background()

	// Tracing setup (optional)
	if cfg.Telemetry.OTLPEndpoint != "" {
		shutdown, err := telemetry.Setup(ctx, cfg.Telemetry.OTLPEndpoint)
		if err != nil {
			slog.Error("❌ Error setting up tracing", "error", err.Error())
			os.Exit(1)
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				slog.Error("⚠️ Error shutting down tracer provider", slog.String("error", err.Error()))
			}
		}()
	}

	// Catalog setup: the feed is read once, and a failed read leaves the
	// storefront up with an empty catalog.
	catalogService := service.NewCatalogService(repository.NewCatalogFeed(&cfg.Catalog))
	catalogService.Load(ctx)

	// Cart store: Redis when configured, in-memory otherwise
	var cartStore repository.CartStore

	if cfg.RedisConnect.Enabled() {
		redisClient, err := repository.NewRedisClient(&cfg.RedisConnect)
		if err != nil {
			slog.Error("❌ Error accessing the redis instance", "error", err.Error())
			os.Exit(1)
		}

		redisCache := cache.NewRedisCache(redisClient, cfg.RedisConnect.CartTTL)
		defer func() {
			if err := redisCache.Close(); err != nil {
				slog.Error("⚠️ Error closing redis connection", slog.String("error", err.Error()))
			}
		}()

		cartStore = repository.NewRedisCartStore(redisCache, cfg.RedisConnect.CartTTL)
	} else {
		cartStore = repository.NewMemoryCartStore()
	}

	// Order archive: Postgres when configured, in-memory otherwise
	var orderArchive repository.OrderArchive

	if cfg.Database.Enabled() {
		db, err := repository.OpenDatabase(&cfg.Database)
		if err != nil {
			slog.Error("❌ Error accessing the database", "error", err.Error())
			os.Exit(1)
		}

		defer func() {
			if err := db.Close(); err != nil {
				slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
			} else {
				slog.Info("✅ Database connection closed")
			}
		}()

		orderArchive = repository.NewOrderRepository(db)
	} else {
		orderArchive = repository.NewMemoryOrderArchive()
	}

	// Order notification email (optional)
	var notifier sendgrid.EmailService
	if cfg.SendGrid.APIKey != "" {
		notifier = sendgrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	}

	cartService := service.NewCartService(cartStore, catalogService)
	orderService := service.NewOrderService(orderArchive, cartService, notifier, cfg.SendGrid.OrderInbox)

	catalogHandler := handlers.NewCatalogHandler(catalogService)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(orderService, cartService)
	paymentHandler := handlers.NewPaymentHandler()

	healthHandler, err := health.NewHealthHandler(cfg, catalogService)
	if err != nil {
		slog.Error("❌ Error setting up health checks", "error", err.Error())
		os.Exit(1)
	}

	slog.Info("storefront initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("GET /api/v1/products", catalogHandler.ListProducts())
	routerMux.HandleFunc("GET /api/v1/products/{id}", catalogHandler.GetProduct())
	routerMux.HandleFunc("GET /api/v1/products/{id}/price", catalogHandler.GetPrice())
	routerMux.HandleFunc("GET /api/v1/categories", catalogHandler.ListCategories())
	routerMux.HandleFunc("GET /api/v1/carts", cartHandler.GetCart())
	routerMux.HandleFunc("POST /api/v1/carts/items", cartHandler.AddItem())
	routerMux.HandleFunc("DELETE /api/v1/carts/items/{index}", cartHandler.RemoveItem())
	routerMux.HandleFunc("DELETE /api/v1/carts", cartHandler.ClearCart())
	routerMux.HandleFunc("POST /api/v1/orders/quote", orderHandler.Quote())
	routerMux.HandleFunc("POST /api/v1/orders", orderHandler.SubmitOrder())
	routerMux.HandleFunc("GET /api/v1/orders/{id}", orderHandler.GetOrder())
	routerMux.HandleFunc("GET /api/v1/payment-methods", paymentHandler.ListMethods())
	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = middleware.Session(handler)
	handler = middleware.Logging(handler)
	handler = metrics.Middleware(handler)
	handler = otelhttp.NewHandler(handler, "bakery-storefront")

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

}
