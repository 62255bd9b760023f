package api

import "net/http"

// RegisterRoutes wires every handler onto the mux.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Sessions
	mux.HandleFunc("GET /sessions", h.listSessions)
	mux.HandleFunc("POST /quizzes", h.generateQuiz)
	mux.HandleFunc("GET /sessions/{sessionID}", h.getSession)
	mux.HandleFunc("PUT /sessions/{sessionID}/answers/{questionID}", h.recordAnswer)
	mux.HandleFunc("POST /sessions/{sessionID}/unsure/{questionID}", h.toggleUnsure)
	mux.HandleFunc("POST /sessions/{sessionID}/complete", h.completeSession)
	mux.HandleFunc("DELETE /sessions/{sessionID}", h.deleteSession)

	// Backup / restore
	mux.HandleFunc("GET /export", h.exportBackup)
	mux.HandleFunc("POST /import", h.importBackup)

	// Mistake book
	mux.HandleFunc("GET /mistakes", h.listMistakes)
}
