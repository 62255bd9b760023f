package api

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

// ── Handlers ────────────────────────────────────────────────────────────────

// exportBackup godoc
// @Summary  Download the full session history as a JSON backup file
// @Produce  json
// @Success  200 {array} SessionResponse
// @Router   /export [get]
func (h *Handler) exportBackup(w http.ResponseWriter, r *http.Request) {
	data, err := h.backup.Export(r.Context())
	if h.handleServiceError(w, err) {
		return
	}

	filename := fmt.Sprintf("quiz_master_backup_%s.json", time.Now().UTC().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	w.Write(data)
}

// importBackup godoc
// @Summary  Merge a backup file into the session history by id
// @Accept   json
// @Produce  json
// @Success  200 {array} SessionResponse
// @Failure  400 {object} map[string]string "malformed backup"
// @Router   /import [post]
func (h *Handler) importBackup(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	sessions, err := h.backup.Import(r.Context(), body)
	if h.handleServiceError(w, err) {
		return
	}

	// The import bypassed the lifecycle controller; refresh its working set
	// so the next read reflects the merged history.
	if err := h.sessions.Reload(r.Context()); h.handleServiceError(w, err) {
		return
	}

	respondJSON(w, http.StatusOK, toSessionResponses(sessions))
}
