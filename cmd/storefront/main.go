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
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/velvetglow/storefront/internal/api/handlers"
	"github.com/velvetglow/storefront/internal/api/middleware"
	"github.com/velvetglow/storefront/internal/cart"
	"github.com/velvetglow/storefront/internal/catalog"
	"github.com/velvetglow/storefront/internal/checkout"
	"github.com/velvetglow/storefront/internal/config"
	"github.com/velvetglow/storefront/internal/health"
	"github.com/velvetglow/storefront/internal/metrics"
	"github.com/velvetglow/storefront/internal/storage"
	"github.com/velvetglow/storefront/internal/view"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Cart persistence backend
	kv, err := newStorage(cfg)
	if err != nil {
		slog.Error("❌ Error initializing cart storage", "error", err.Error())
		os.Exit(1)
	}

	defer func() {
		if err := kv.Close(); err != nil {
			slog.Error("⚠️ Error closing cart storage", slog.String("error", err.Error()))
		}
	}()

	// Stores: the catalog loads once per process start, the cart rehydrates
	// from whatever is persisted. Neither can fail the startup.
	catalogStore := catalog.NewStore(&cfg.Catalog)
	catalogStore.Load(context.Background())

	cartStore := cart.NewStore(catalogStore, kv)
	cartStore.Load(context.Background())

	renderer, err := view.NewRenderer()
	if err != nil {
		slog.Error("❌ Error parsing page templates", "error", err.Error())
		os.Exit(1)
	}

	flow := checkout.NewFlow(cartStore, &cfg.Checkout)

	catalogHandler := handlers.NewCatalogHandler(catalogStore)
	cartHandler := handlers.NewCartHandler(cartStore)
	checkoutHandler := handlers.NewCheckoutHandler(flow, renderer)
	pagesHandler := handlers.NewPagesHandler(catalogStore, cartStore, renderer)
	newsletterHandler := handlers.NewNewsletterHandler()

	healthHandler, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("❌ Error creating health handler", "error", err.Error())
		os.Exit(1)
	}

	slog.Info("storefront initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("GET /{$}", pagesHandler.Home())
	routerMux.HandleFunc("GET /pages/products", pagesHandler.Products())
	routerMux.HandleFunc("GET /pages/cart", pagesHandler.Cart())
	routerMux.HandleFunc("GET /api/v1/products", catalogHandler.ListProducts())
	routerMux.HandleFunc("GET /api/v1/products/{id}", catalogHandler.GetProduct())
	routerMux.HandleFunc("GET /api/v1/cart", cartHandler.GetCart())
	routerMux.HandleFunc("POST /api/v1/cart/items", cartHandler.AddItem())
	routerMux.HandleFunc("PUT /api/v1/cart/items", cartHandler.UpdateQuantity())
	routerMux.HandleFunc("DELETE /api/v1/cart/items/{id}", cartHandler.RemoveItem())
	routerMux.HandleFunc("POST /api/v1/checkout/summary", checkoutHandler.OpenSummary())
	routerMux.HandleFunc("POST /api/v1/checkout/cancel", checkoutHandler.Cancel())
	routerMux.HandleFunc("POST /api/v1/checkout", checkoutHandler.Submit())
	routerMux.HandleFunc("POST /api/v1/newsletter", newsletterHandler.Subscribe())
	routerMux.Handle("GET /healthz", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, "storefront")

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

func newStorage(cfg *config.Config) (storage.KV, error) {

	if cfg.Storage.Backend == "redis" {

		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisConnect.Addr,
			Username: cfg.RedisConnect.Username,
			Password: cfg.RedisConnect.Password,
			DB:       cfg.RedisConnect.DB,
		})

		return storage.NewRedisStore(client), nil
	}

	return storage.NewFileStore(cfg.Storage.Path)
}
