// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/quizmaster/backend/internal/backup"
	"github.com/quizmaster/backend/internal/domain/session"
	"github.com/quizmaster/backend/internal/generator"
	"github.com/quizmaster/backend/internal/service"
	"github.com/quizmaster/backend/internal/store"
)

// Handler holds all dependencies needed by HTTP handlers.
// Instead of relying on package-level globals, every handler method
// receives its dependencies through this struct.
type Handler struct {
	sessions *service.SessionService
	backup   *backup.Engine
	logger   *slog.Logger
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(sessions *service.SessionService, backupEngine *backup.Engine, logger *slog.Logger) *Handler {
	return &Handler{
		sessions: sessions,
		backup:   backupEngine,
		logger:   logger,
	}
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError writes a JSON error body with the given status code.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// decodeJSON decodes the request body into v. On failure it writes a 400
// response and returns false (caller should return).
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}

// handleServiceError maps known error conditions to HTTP responses and
// returns true if an error was handled (caller should return).
func (h *Handler) handleServiceError(w http.ResponseWriter, err error) bool {
	if err == nil {
		return false
	}

	var genErr *generator.GenerateError

	switch {
	case errors.Is(err, store.ErrNotFound):
		respondError(w, http.StatusNotFound, "session not found")
	case errors.Is(err, session.ErrQuestionNotFound):
		respondError(w, http.StatusNotFound, "question not found in session")
	case errors.Is(err, store.ErrWriteFailed):
		h.logger.Error("write failed", "error", err)
		respondError(w, http.StatusServiceUnavailable, "write failed")
	case errors.Is(err, store.ErrUnavailable):
		h.logger.Error("storage unavailable", "error", err)
		respondError(w, http.StatusServiceUnavailable, "storage unavailable")
	case errors.As(err, &genErr):
		h.logger.Error("generation failed", "error", err)
		respondError(w, http.StatusBadGateway, "generation failed, please try again")
	case errors.Is(err, backup.ErrMalformedBackup):
		respondError(w, http.StatusBadRequest, "malformed backup file")
	default:
		h.logger.Error("internal error", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
	return true
}
