package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// llmProbe reports whether an insight generator is configured.
type llmProbe interface {
	GeneratorAvailable() bool
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	db      dbPinger
	llm     llmProbe
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db dbPinger, llm llmProbe, version string) *HealthHandler {
	return &HealthHandler{db: db, llm: llm, version: version}
}

// HealthResponse is the JSON response for /live and /ready.
type HealthResponse struct {
	Status    string    `json:"status"`
	Version   string    `json:"version,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// HealthcheckResponse is the JSON response for /healthcheck.
type HealthcheckResponse struct {
	DBIsUp  bool `json:"db_is_up"`
	LLMIsUp bool `json:"llm_is_up"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Version:   h.version,
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe. Pings DB: 200 if OK, 503 if not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if !h.pingDB(r.Context()) {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "down",
			Timestamp: time.Now(),
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Healthcheck is the availability probe for external monitors.
// It always answers 200 and reports each dependency separately.
// GET /healthcheck
func (h *HealthHandler) Healthcheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthcheckResponse{
		DBIsUp:  h.pingDB(r.Context()),
		LLMIsUp: h.llm != nil && h.llm.GeneratorAvailable(),
	})
}

func (h *HealthHandler) pingDB(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return h.db.Ping(ctx) == nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
