package api

import (
	"net/http"
)

// listMistakes godoc
// @Summary  List every question answered incorrectly or flagged unsure, across all sessions
// @Produce  json
// @Success  200 {array} review.Item
// @Router   /mistakes [get]
func (h *Handler) listMistakes(w http.ResponseWriter, r *http.Request) {
	items, err := h.sessions.Mistakes(r.Context())
	if h.handleServiceError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, items)
}
