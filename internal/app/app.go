package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/indrajewels/storefront/pkg/health"
	"github.com/indrajewels/storefront/pkg/middleware"
	"github.com/indrajewels/storefront/pkg/tracing"

	"github.com/indrajewels/storefront/internal/config"
	handler "github.com/indrajewels/storefront/internal/handler/http"
	"github.com/indrajewels/storefront/internal/repository"
	"github.com/indrajewels/storefront/internal/repository/memory"
	redisrepo "github.com/indrajewels/storefront/internal/repository/redis"
	"github.com/indrajewels/storefront/internal/service"
)

// App wires together all dependencies and runs the storefront service.
type App struct {
	cfg             *config.Config
	logger          *slog.Logger
	rdb             *redis.Client
	httpServer      *http.Server
	tracingShutdown func(context.Context) error
}

// NewApp creates a new application instance, initializing all dependencies.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	healthHandler := health.NewHandler()

	// Cart store: in-memory by default, Redis when configured.
	var rdb *redis.Client
	var carts repository.CartRepository
	cartTTL := time.Duration(cfg.CartTTLHours) * time.Hour

	switch cfg.CartStore {
	case config.CartStoreRedis:
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
			DB:       cfg.RedisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("connect to redis: %w", err)
		}
		logger.Info("connected to Redis",
			slog.String("addr", cfg.RedisAddr),
			slog.Int("db", cfg.RedisDB),
		)
		carts = redisrepo.NewCartRepository(rdb, cartTTL)
		healthHandler.Register("redis", func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		})
	default:
		carts = memory.NewCartRepository()
	}

	products := memory.NewProductRepository(memory.SeedCatalog())
	orders := memory.NewOrderRepository(memory.SeedOrders())

	// Tracing.
	traceCfg := tracing.DefaultConfig("storefront")
	traceCfg.Environment = cfg.Environment
	traceCfg.OTLPEndpoint = cfg.OTLPEndpoint
	traceCfg.SampleRate = cfg.TraceSampleRate
	traceCfg.Enabled = cfg.TracingEnabled

	tracingShutdown, err := tracing.InitTracer(ctx, traceCfg)
	if err != nil {
		return nil, fmt.Errorf("init tracing: %w", err)
	}

	// Build the dependency graph.
	checkoutDelay := time.Duration(cfg.CheckoutDelayMS) * time.Millisecond
	catalogService := service.NewCatalogService(products, logger)
	cartService := service.NewCartService(carts, products, logger, cartTTL)
	checkoutService := service.NewCheckoutService(carts, orders, logger, checkoutDelay)
	orderService := service.NewOrderService(orders, logger)

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.Environment = cfg.Environment
	if len(cfg.CORSAllowedOrigins) > 0 {
		corsCfg.AllowedOrigins = cfg.CORSAllowedOrigins
	}

	router := handler.NewRouter(handler.RouterConfig{
		Catalog:       catalogService,
		Cart:          cartService,
		Checkout:      checkoutService,
		Orders:        orderService,
		HealthHandler: healthHandler,
		Logger:        logger,
		CORS:          corsCfg,
		PprofCIDRs:    cfg.PprofCIDRs,
	})

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &App{
		cfg:             cfg,
		logger:          logger,
		rdb:             rdb,
		httpServer:      httpServer,
		tracingShutdown: tracingShutdown,
	}, nil
}

// Run starts the HTTP server and blocks until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting HTTP server",
			slog.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.Shutdown()
}

// Shutdown gracefully stops all components.
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
	}

	if err := a.tracingShutdown(shutdownCtx); err != nil {
		a.logger.Error("tracing shutdown error", slog.String("error", err.Error()))
	}

	if a.rdb != nil {
		if err := a.rdb.Close(); err != nil {
			a.logger.Error("redis close error", slog.String("error", err.Error()))
		}
	}

	a.logger.Info("application shutdown complete")
	return nil
}
