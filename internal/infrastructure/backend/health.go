package backend

import (
	"context"
	"net/http"
	"time"
)

// BackendStatus is the result of a backend health probe.
type BackendStatus string

const (
	StatusHealthy     BackendStatus = "healthy"
	StatusUnhealthy   BackendStatus = "unhealthy"
	StatusUnreachable BackendStatus = "unreachable"
)

// HealthProber checks that the backend API root answers 200.
type HealthProber struct {
	baseURL    string
	httpClient *http.Client
}

// NewHealthProber creates a prober for GET {baseURL}/api.
func NewHealthProber(baseURL string, timeout time.Duration) *HealthProber {
	client := NewProfessionalsClient(baseURL, timeout)
	return &HealthProber{
		baseURL:    client.BaseURL(),
		httpClient: client.httpClient,
	}
}

// Probe reports healthy on 200, unhealthy on any other status and unreachable on transport errors.
func (p *HealthProber) Probe(ctx context.Context) BackendStatus {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/api", nil)
	if err != nil {
		return StatusUnreachable
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return StatusUnreachable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return StatusUnhealthy
	}
	return StatusHealthy
}
