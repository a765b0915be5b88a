package app

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/nishanthjadav/financial-backend/config"
	"github.com/nishanthjadav/financial-backend/internal/api"
	"github.com/nishanthjadav/financial-backend/internal/fmp"
	"github.com/nishanthjadav/financial-backend/internal/service"
)

// clientBuilder constructs the provider client. Indirection for unit testing.
var clientBuilder = func(cfg config.ProviderConfig) *fmp.Client {
	return fmp.NewClient(cfg)
}

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Creates the Financial Modeling Prep client from configuration.
//   - Initializes the service layer (fetch + filter/sort).
//   - Creates the HTTP handler layer to handle requests.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to release resources (idle connections).
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	if cfg.Provider.APIKey == "" {
		return nil, nil, errors.New("provider API key is not configured")
	}

	// Initialize provider client (responsible for upstream access)
	client := clientBuilder(cfg.Provider)

	// Initialize service layer (business logic)
	svc := service.NewStatementService(client)

	// Initialize HTTP handler layer (business logic to HTTP mapping)
	handler := api.NewHandler(svc)

	// Setup Gin router with routes
	router := api.NewRouter(handler)

	// Register health and readiness probes. The readiness check only
	// verifies local preconditions; it never spends upstream quota.
	healthHandler := api.NewHealthHandler(func() error {
		if config.AppConfig.Provider.APIKey == "" {
			return errors.New("provider API key missing")
		}
		return nil
	})
	healthHandler.Register(router)

	// Cleanup resources on shutdown
	cleanup := func() {
		client.CloseIdleConnections()
	}

	return router, cleanup, nil
}
