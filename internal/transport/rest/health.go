package rest

import (
	"context"
	"net/http"
	"time"
)

// storePinger is satisfied by every record store backend.
type storePinger interface {
	Ping(ctx context.Context) error
}

// pingTimeout bounds every store probe.
const pingTimeout = 3 * time.Second

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	store   storePinger
	driver  string
	version string
}

// NewHealthHandler creates a HealthHandler. driver names the store backend
// in the detailed report.
func NewHealthHandler(store storePinger, driver, version string) *HealthHandler {
	return &HealthHandler{store: store, driver: driver, version: version}
}

// HealthResponse is the JSON response for /live, /ready and /health.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Driver  string `json:"driver,omitempty"`
	Latency string `json:"latency,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready is the readiness probe: 200 when the record store answers, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if _, err := h.ping(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "down", Timestamp: time.Now()})
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Health is the full report: store status with latency, plus build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	latency, err := h.ping(r.Context())

	store := CompStatus{Status: "ok", Driver: h.driver, Latency: latency.String()}
	overall, status := "ok", http.StatusOK
	if err != nil {
		store = CompStatus{Status: "down", Driver: h.driver}
		overall, status = "down", http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: map[string]CompStatus{"store": store},
		Timestamp:  time.Now(),
	})
}

func (h *HealthHandler) ping(ctx context.Context) (time.Duration, error) {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	start := time.Now()
	err := h.store.Ping(ctx)
	return time.Since(start), err
}
