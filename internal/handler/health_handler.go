package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"TeleCareZone-Web/internal/infrastructure/backend"
)

// BackendProber reports whether the backend API answers.
type BackendProber interface {
	Probe(ctx context.Context) backend.BackendStatus
}

// DatabaseChecker pings the directory database.
type DatabaseChecker interface {
	HealthCheck(ctx context.Context) error
}

// HealthHandler serves the health probe.
type HealthHandler struct {
	prober   BackendProber
	database DatabaseChecker
}

// NewHealthHandler creates a HealthHandler. database may be nil when the
// directory is not read from a database.
func NewHealthHandler(prober BackendProber, database DatabaseChecker) *HealthHandler {
	return &HealthHandler{prober: prober, database: database}
}

// Health GET /health
//
// "php_backend" repeats "backend" for monitors that read the older key.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx := c.Request.Context()
	status := h.prober.Probe(ctx)

	body := gin.H{
		"status":      "running",
		"bridge":      "operational",
		"backend":     status,
		"php_backend": status,
	}
	if h.database != nil {
		body["database"] = "healthy"
		if err := h.database.HealthCheck(ctx); err != nil {
			body["database"] = "unhealthy"
		}
	}

	c.JSON(http.StatusOK, body)
}
