package app

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/stockpulse/config"
	"github.com/guttosm/stockpulse/internal/api"
	"github.com/guttosm/stockpulse/internal/provider"
	"github.com/guttosm/stockpulse/internal/service"
)

// upstreamCtor builds the market-data provider; indirection so tests can
// substitute a stub without real network access.
var upstreamCtor = func(cfg config.Config) (provider.MarketProvider, func() error) {
	client := provider.NewYahooClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout)
	return client, client.Ping
}

// InitializeApp sets up all application dependencies and returns a fully
// configured Gin router, a cleanup function for graceful shutdown, and any
// error encountered during initialization.
//
// Responsibilities:
//   - Constructs the upstream market-data client (owned HTTP client,
//     built once here and injected; no ambient global state).
//   - Initializes the service layer (business logic).
//   - Creates the HTTP handler layer and configures the router.
//   - Registers health and readiness probes.
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	// Upstream market-data provider (the only external collaborator)
	upstream, ping := upstreamCtor(cfg)

	// Service layer (business logic)
	svc := service.NewMarketService(upstream)

	// HTTP handler layer (business logic to HTTP mapping)
	handler := api.NewHandler(svc)

	// Gin router with routes
	router := api.NewRouter(handler)

	// Health and readiness probes
	healthHandler := api.NewHealthHandler(ping)
	healthHandler.Register(router)

	// Nothing stateful to release; kept for symmetry with server shutdown.
	cleanup := func() {}

	return router, cleanup, nil
}
