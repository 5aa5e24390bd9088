package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"TeleCareZone-Web/internal/domain/model"
)

const approvedProfessionalsPath = "/api/professionals/approved"

// ErrUnexpectedStatus is wrapped by StatusError.
var ErrUnexpectedStatus = errors.New("unexpected status from backend")

// StatusError is returned when the backend answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend returned status %d: %s", e.StatusCode, e.Body)
}

func (e *StatusError) Unwrap() error {
	return ErrUnexpectedStatus
}

// ProfessionalsClient calls the backend REST API for the professionals directory.
type ProfessionalsClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewProfessionalsClient creates a client for the backend at baseURL.
func NewProfessionalsClient(baseURL string, timeout time.Duration) *ProfessionalsClient {
	return &ProfessionalsClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the backend base URL without a trailing slash.
func (c *ProfessionalsClient) BaseURL() string {
	return c.baseURL
}

// GetApproved GET /api/professionals/approved
func (c *ProfessionalsClient) GetApproved(ctx context.Context) ([]model.Professional, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+approvedProfessionalsPath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build directory request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("directory request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var professionals []model.Professional
	if err := json.NewDecoder(resp.Body).Decode(&professionals); err != nil {
		return nil, fmt.Errorf("failed to decode directory response: %w", err)
	}

	return professionals, nil
}
