package api

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	cataloghttp "restaurant-orders/internal/domains/catalog/adapters/http"
	catalogmemory "restaurant-orders/internal/domains/catalog/adapters/memory"
	catalogapp "restaurant-orders/internal/domains/catalog/application"
	identityhttp "restaurant-orders/internal/domains/identity/adapters/http"
	identitymemory "restaurant-orders/internal/domains/identity/adapters/memory"
	identityapp "restaurant-orders/internal/domains/identity/application"
	identityports "restaurant-orders/internal/domains/identity/ports"
	ordershttp "restaurant-orders/internal/domains/orders/adapters/http"
	ordersmemory "restaurant-orders/internal/domains/orders/adapters/memory"
	ordersobs "restaurant-orders/internal/domains/orders/adapters/observability"
	orderspostgres "restaurant-orders/internal/domains/orders/adapters/persistence/postgres"
	ordersstream "restaurant-orders/internal/domains/orders/adapters/stream"
	ordersapp "restaurant-orders/internal/domains/orders/application"
	ordersports "restaurant-orders/internal/domains/orders/ports"
	streamsse "restaurant-orders/internal/domains/stream/adapters/sse"
	streamapp "restaurant-orders/internal/domains/stream/application"
	platformobservability "restaurant-orders/internal/platform/observability"
	platformpostgres "restaurant-orders/internal/platform/postgres"
)

// Run boots the restaurant orders HTTP API with observability,
// repositories, and the live event stream wired.
func Run(ctx context.Context) error {
	const serviceName = "restaurant-orders-api"
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	registry := streamapp.NewRegistry(streamapp.WithLogger(logger))
	dispatcher := streamapp.NewDispatcher(registry)

	orderRepo, cleanupRepo := buildOrderRepository(ctx, cfg, logger)
	defer cleanupRepo()
	coreOrderService := ordersapp.NewService(orderRepo, ordersstream.NewPublisher(dispatcher))
	orderService := ordersobs.New(
		coreOrderService,
		ordersobs.WithLogger(logger),
		ordersobs.WithTracer(instruments.Tracer("internal.orders.application")),
		ordersobs.WithMeter(instruments.Meter("internal.orders.application")),
	)

	catalogService := catalogapp.NewService(catalogmemory.NewSeededRepository())

	tokenStore := identitymemory.NewTokenStore()
	identityService := identityapp.NewService(
		identitymemory.NewRepository(),
		tokenStore,
		catalogService,
		identityapp.WithTokenTTL(cfg.TokenTTL),
	)
	go purgeTokens(ctx, tokenStore, cfg.TokenPurgeInterval, logger)

	streamHandler := streamsse.NewHandler(
		registry,
		identityService,
		cfg.SSEKeepAliveInterval,
		cfg.StreamSubscriberBuffer,
		cfg.StreamSendTimeout,
		logger,
	)

	router := newRouter(serviceName, handlers{
		auth:    identityhttp.NewAuthAPI(identityService),
		catalog: cataloghttp.NewCatalogAPI(catalogService),
		orders:  ordershttp.NewOrderAPI(orderService),
		stream:  streamHandler,
	}, identityService)

	addr := ":" + cfg.Port
	logger.Info("restaurant orders API listening", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("restaurant orders API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

func buildOrderRepository(ctx context.Context, cfg Config, logger *slog.Logger) (ordersports.Repository, func()) {
	if cfg.PostgresDSN == "" {
		logger.Warn("POSTGRES_DSN not set, falling back to in-memory order repository")
		return ordersmemory.NewRepository(), func() {}
	}
	db, err := platformpostgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		logger.Warn("failed to connect to postgres, falling back to memory", slog.String("error", err.Error()))
		return ordersmemory.NewRepository(), func() {}
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Warn("failed to unwrap postgres connection, falling back to memory", slog.String("error", err.Error()))
		return ordersmemory.NewRepository(), func() {}
	}
	logger.Info("order repository configured with postgres")
	return orderspostgres.NewRepository(db), func() { _ = sqlDB.Close() }
}

// purgeTokens drops expired bearer tokens on a fixed cadence for the
// lifetime of the process.
func purgeTokens(ctx context.Context, tokens identityports.TokenStore, interval time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if purged := tokens.PurgeExpired(ctx); purged > 0 {
				logger.Info("purged expired tokens", slog.Int("count", purged))
			}
		}
	}
}
