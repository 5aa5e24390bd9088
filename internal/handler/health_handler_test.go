package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TeleCareZone-Web/internal/infrastructure/backend"
)

type stubProber struct {
	status backend.BackendStatus
}

func (p stubProber) Probe(ctx context.Context) backend.BackendStatus {
	return p.status
}

type stubDatabase struct {
	err error
}

func (d stubDatabase) HealthCheck(ctx context.Context) error {
	return d.err
}

func healthBody(t *testing.T, h *HealthHandler) map[string]string {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/health", h.Health)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHealthHandler_Health(t *testing.T) {
	t.Run("without database", func(t *testing.T) {
		body := healthBody(t, NewHealthHandler(stubProber{status: backend.StatusUnreachable}, nil))

		assert.Equal(t, map[string]string{
			"status":      "running",
			"bridge":      "operational",
			"backend":     "unreachable",
			"php_backend": "unreachable",
		}, body)
	})

	t.Run("healthy database", func(t *testing.T) {
		body := healthBody(t, NewHealthHandler(stubProber{status: backend.StatusHealthy}, stubDatabase{}))

		assert.Equal(t, "healthy", body["database"])
		assert.Equal(t, "healthy", body["backend"])
	})

	t.Run("unhealthy database", func(t *testing.T) {
		body := healthBody(t, NewHealthHandler(stubProber{status: backend.StatusHealthy}, stubDatabase{err: errors.New("connection reset")}))

		assert.Equal(t, "unhealthy", body["database"])
	})
}
