package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/auctionpulse/config"
	"github.com/guttosm/auctionpulse/internal/api"
	"github.com/guttosm/auctionpulse/internal/bus"
	"github.com/guttosm/auctionpulse/internal/pricing"
	"github.com/guttosm/auctionpulse/internal/service"
	"github.com/guttosm/auctionpulse/internal/storage"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Connects to PostgreSQL (InitPostgres) and Redis (InitRedis).
//   - Builds the message bus client on top of Redis Pub/Sub.
//   - Initializes repositories, services and the HTTP handler.
//   - Configures the Gin router and registers health and readiness probes.
//   - Provides a cleanup function closing the Redis client and the DB pool.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	db, err := postgresOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	rdb, err := redisOpener(cfg)
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to initialize redis: %w", err)
	}

	transport := bus.NewRedisTransport(rdb)
	client := bus.NewClient(transport, cfg.Bus.RequestTimeout)

	users := storage.NewUsersRepository(db)
	prefs := storage.NewPreferencesRepository(db)
	pricelists := storage.NewPricelistsRepository(db)

	handler := api.NewHandler(
		service.NewAuthService(users, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL),
		service.NewPreferenceService(prefs),
		service.NewPricelistService(pricelists),
		service.NewAuctionDataService(client, pricing.NewAggregator(nil), cfg.Bus.CacheSize, cfg.Bus.CacheTTL),
	)

	router := api.NewRouter(handler, api.RouterConfig{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		RateLimitRPS:   cfg.Server.RateLimitRPS,
		RateLimitBurst: cfg.Server.RateLimitBurst,
	})

	api.NewHealthHandler(
		api.Check{Name: "postgres", Ping: func(ctx context.Context) error { return db.PingContext(ctx) }},
		api.Check{Name: "redis", Ping: client.Ping},
	).Register(router)

	cleanup := func() {
		_ = transport.Close()
		_ = db.Close()
	}

	return router, cleanup, nil
}
