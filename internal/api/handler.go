// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/medprep/backend/internal/auth"
	"github.com/medprep/backend/internal/domain/attempt"
	"github.com/medprep/backend/internal/service"
	"github.com/medprep/backend/internal/store"
)

// Handler holds all dependencies needed by HTTP handlers.
// Instead of relying on package-level globals, every handler method
// receives its dependencies through this struct.
type Handler struct {
	store    store.Store
	sessions *service.SessionService
	analysis *service.AnalysisService
	verifier *auth.Verifier
	logger   *slog.Logger
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(s store.Store, sessions *service.SessionService, analysis *service.AnalysisService, verifier *auth.Verifier, logger *slog.Logger) *Handler {
	return &Handler{
		store:    s,
		sessions: sessions,
		analysis: analysis,
		verifier: verifier,
		logger:   logger,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError writes a JSON error body with the given status code.
func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, errorResponse{Error: msg})
}

// decodeJSON decodes the request body into v. On failure it writes a 400 and
// returns false; the caller should return immediately.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}

type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the body and runs the request's own validation.
// Writes a 400 and returns false on either failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v validatable) bool {
	if !decodeJSON(w, r, v) {
		return false
	}
	if err := v.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// handleStoreError maps store failures to HTTP responses. A validation error
// is the client's fault; anything else is logged and hidden behind a 500.
// Returns true if an error was handled (caller should return).
func (h *Handler) handleStoreError(w http.ResponseWriter, err error, op string) bool {
	if err == nil {
		return false
	}
	var verr *attempt.ValidationError
	if errors.As(err, &verr) {
		respondError(w, http.StatusBadRequest, verr.Error())
		return true
	}
	h.logger.Error("store error", "op", op, "error", err)
	respondError(w, http.StatusInternalServerError, "internal error")
	return true
}

// identity pulls the authenticated owner out of the request context. The auth
// middleware put it there; a miss means the route was wired without it.
func (h *Handler) identity(w http.ResponseWriter, r *http.Request) (auth.Identity, bool) {
	id, err := auth.IdentityFrom(r.Context())
	if err != nil {
		respondError(w, http.StatusUnauthorized, "not authenticated")
		return auth.Identity{}, false
	}
	return id, true
}
