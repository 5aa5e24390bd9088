package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProxyHandler forwards /api requests to the backend.
type ProxyHandler struct {
	proxy  *httputil.ReverseProxy
	logger *zap.Logger
}

// NewProxyHandler creates a ProxyHandler for the backend at baseURL.
func NewProxyHandler(baseURL string, logger *zap.Logger) (*ProxyHandler, error) {
	target, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse backend url: %w", err)
	}

	h := &ProxyHandler{logger: logger}
	h.proxy = &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.SetURL(target)
		},
		ErrorHandler: h.handleError,
	}
	return h, nil
}

// Forward ANY /api/*path
func (h *ProxyHandler) Forward(c *gin.Context) {
	h.proxy.ServeHTTP(proxyWriter{c.Writer}, c.Request)
}

// proxyWriter hides gin's CloseNotify, which panics when the underlying
// writer is not an http.CloseNotifier. Flushing still reaches gin.
type proxyWriter struct {
	w gin.ResponseWriter
}

func (p proxyWriter) Header() http.Header         { return p.w.Header() }
func (p proxyWriter) Write(b []byte) (int, error) { return p.w.Write(b) }
func (p proxyWriter) WriteHeader(statusCode int)  { p.w.WriteHeader(statusCode) }
func (p proxyWriter) Flush()                      { p.w.Flush() }

func (h *ProxyHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	body := gin.H{"error": "bridge error: " + err.Error()}

	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		status = http.StatusServiceUnavailable
		body = gin.H{"error": "backend is not running"}
	}

	h.logger.Warn("proxy request failed",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Int("status", status),
		zap.Error(err),
	)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
