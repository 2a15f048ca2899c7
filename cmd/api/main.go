// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/carterperez-dev/templates/inventory-api/internal/admin"
	"github.com/carterperez-dev/templates/inventory-api/internal/analytics"
	"github.com/carterperez-dev/templates/inventory-api/internal/config"
	"github.com/carterperez-dev/templates/inventory-api/internal/core"
	"github.com/carterperez-dev/templates/inventory-api/internal/events"
	"github.com/carterperez-dev/templates/inventory-api/internal/health"
	"github.com/carterperez-dev/templates/inventory-api/internal/ledger"
	"github.com/carterperez-dev/templates/inventory-api/internal/middleware"
	"github.com/carterperez-dev/templates/inventory-api/internal/note"
	"github.com/carterperez-dev/templates/inventory-api/internal/order"
	"github.com/carterperez-dev/templates/inventory-api/internal/product"
	"github.com/carterperez-dev/templates/inventory-api/internal/server"
	"github.com/carterperez-dev/templates/inventory-api/internal/user"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

//nolint:funlen // bootstrap code is inherently verbose
func run(configPath string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
	)

	var telemetry *core.Telemetry
	if cfg.Otel.Enabled {
		tel, telErr := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
		if telErr != nil {
			logger.Warn("failed to initialize telemetry", "error", telErr)
		} else {
			telemetry = tel
			logger.Info("OpenTelemetry tracer initialized",
				"endpoint", cfg.Otel.Endpoint,
			)
		}
	}

	redis, err := core.NewRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	if redis.Enabled() {
		logger.Info("redis connected", "pool_size", cfg.Redis.PoolSize)
	} else {
		logger.Info("redis disabled, rate limiting is per process")
	}

	ledgerOpts := []ledger.Option{
		ledger.WithLowStockThreshold(cfg.Ledger.LowStockThreshold),
	}
	if !cfg.Ledger.SeedOnStart {
		ledgerOpts = append(ledgerOpts, ledger.WithEmptyStore())
	}
	store := ledger.New(ledgerOpts...)

	counts := store.Counts()
	logger.Info("ledger initialized",
		"users", counts.Users,
		"products", counts.Products,
		"orders", counts.Orders,
		"low_stock_threshold", store.LowStockThreshold(),
	)

	publisher := newPublisher(cfg.Events, logger)

	userHandler := user.NewHandler(user.NewService(store, publisher))
	productHandler := product.NewHandler(product.NewService(store, publisher))
	orderHandler := order.NewHandler(order.NewService(store, publisher))
	noteHandler := note.NewHandler(note.NewService(store))
	analyticsHandler := analytics.NewHandler(store, cfg.App)

	healthHandler := health.NewHandler(
		health.Dependency{Name: "ledger", Checker: store},
		health.Dependency{Name: "redis", Checker: redis},
	)

	adminHandler := admin.NewHandler(admin.HandlerConfig{
		Ledger:     store,
		RedisStats: redis.PoolStats,
		RedisPing:  redis.Ping,
	})

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
	})

	router := srv.Router()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger))

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(redis.Client, middleware.RateLimitConfig{
			Limit: middleware.PerWindow(
				cfg.RateLimit.Requests,
				cfg.RateLimit.Burst,
				cfg.RateLimit.Window,
			),
			FailOpen:   true,
			BypassFunc: middleware.SkipPaths("/healthz", "/livez", "/readyz"),
		})
		router.Use(limiter.Handler)
	}

	router.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	router.Use(middleware.CORS(cfg.CORS))

	healthHandler.RegisterRoutes(router)
	analyticsHandler.RegisterRoutes(router)
	userHandler.RegisterRoutes(router)
	productHandler.RegisterRoutes(router)
	orderHandler.RegisterRoutes(router)
	noteHandler.RegisterRoutes(router)
	adminHandler.RegisterRoutes(router)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	drainDelay := cfg.Server.DrainDelay

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout+drainDelay+5*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx, drainDelay); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if limiter != nil {
		limiter.Close()
	}

	if err := publisher.Close(); err != nil {
		logger.Error("event publisher close error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown error", "error", err)
		}
	}

	if err := redis.Close(); err != nil {
		logger.Error("redis close error", "error", err)
	}

	logger.Info("application stopped")
	return nil
}

// newPublisher falls back to logging events when the broker is disabled
// or unreachable at startup.
func newPublisher(cfg config.EventsConfig, logger *slog.Logger) events.Publisher {
	if !cfg.Enabled {
		return events.NewLogPublisher(logger)
	}

	pub, err := events.NewAMQPPublisher(cfg, logger)
	if err != nil {
		logger.Warn("event broker unavailable, logging events instead",
			"error", err,
		)
		return events.NewLogPublisher(logger)
	}

	logger.Info("event publisher connected", "exchange", cfg.Exchange)
	return pub
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var handler slog.Handler

	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
