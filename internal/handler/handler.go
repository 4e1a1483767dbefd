package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"storefront/internal/repository"
)

// Handler serves the storefront REST API from a repository store.
type Handler struct {
	store *repository.Store
	log   zerolog.Logger
}

// New creates a handler over the given store.
func New(store *repository.Store, log zerolog.Logger) *Handler {
	return &Handler{store: store, log: log}
}

// ErrorResponse is the JSON shape of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the JSON shape of GET /health.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("encode response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, ErrorResponse{Error: msg})
}

// emptyList substitutes an empty slice for nil so list endpoints always
// encode as a JSON array, never null.
func emptyList[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
