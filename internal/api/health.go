package api

import "github.com/gin-gonic/gin"

// HealthHandler provides liveness and readiness endpoints for the service.
//
// Responsibilities:
//   - /healthz: Basic liveness probe (always returns 200 OK).
//   - /readyz: Readiness probe (depends on the provider check).
type HealthHandler struct {
	providerCheck func() error // Function to verify the upstream provider is usable
}

// NewHealthHandler constructs a HealthHandler with the provided check function.
//
// Parameters:
//   - providerCheck (func() error): Verifies the upstream provider can be
//     called (e.g., credentials configured). May be nil to report ready.
//
// Returns:
//   - *HealthHandler: A new handler instance.
func NewHealthHandler(providerCheck func() error) *HealthHandler {
	return &HealthHandler{providerCheck: providerCheck}
}

// Register mounts the health and readiness endpoints into the provided Gin router.
//
// Routes:
//   - GET /healthz: Always returns 200 OK.
//   - GET /readyz: Returns 200 OK if the provider check succeeds, 503 otherwise.
//
// Parameters:
//   - r (*gin.Engine): The Gin router to register routes on.
func (h *HealthHandler) Register(r *gin.Engine) {
	// Liveness probe (just checks if the service is up)
	// @Summary      Liveness probe
	// @Description  Always returns OK if the service is running
	// @Tags         health
	// @Produce      json
	// @Success      200  {object}  map[string]string
	// @Router       /healthz [get]
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Readiness probe (checks provider configuration)
	// @Summary      Readiness probe
	// @Description  Returns ready if the upstream provider is usable
	// @Tags         health
	// @Produce      json
	// @Success      200  {object}  map[string]string
	// @Failure      503  {object}  map[string]string
	// @Router       /readyz [get]
	r.GET("/readyz", func(c *gin.Context) {
		if h.providerCheck != nil && h.providerCheck() != nil {
			c.JSON(503, gin.H{"status": "degraded"})
			return
		}
		c.JSON(200, gin.H{"status": "ready"})
	})
}
