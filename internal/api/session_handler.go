package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/quizmaster/backend/internal/domain/quiz"
	"github.com/quizmaster/backend/internal/domain/session"
)

// ── Request / Response types ────────────────────────────────────────────────

type GenerateQuizRequest struct {
	Text        string `json:"text" example:"The capital of France is Paris."`
	ImageBase64 string `json:"imageBase64,omitempty"`
	Shuffle     bool   `json:"shuffle"`
}

func (r *GenerateQuizRequest) Validate() error {
	if r.Text == "" && r.ImageBase64 == "" {
		return errors.New("text or imageBase64 is required")
	}
	return nil
}

type RecordAnswerRequest struct {
	Answer string `json:"answer" example:"Paris"`
}

type CompleteSessionRequest struct {
	Answers   map[int]string `json:"answers"`
	UnsureIDs []int          `json:"unsureQuestionIds"`
}

type SessionResponse struct {
	ID                string         `json:"id"`
	Timestamp         int64          `json:"timestamp"`
	QuizData          quiz.QuizData  `json:"quizData"`
	UserAnswers       map[int]string `json:"userAnswers"`
	UnsureQuestionIDs []int          `json:"unsureQuestionIds"`
	IsCompleted       bool           `json:"isCompleted"`
	Score             int            `json:"score"`
}

func toSessionResponse(s *session.QuizSession) SessionResponse {
	return SessionResponse{
		ID:                s.ID,
		Timestamp:         s.Timestamp,
		QuizData:          s.QuizData,
		UserAnswers:       s.UserAnswers,
		UnsureQuestionIDs: s.UnsureQuestionIDs,
		IsCompleted:       s.IsCompleted,
		Score:             s.Score,
	}
}

func toSessionResponses(sessions []*session.QuizSession) []SessionResponse {
	out := make([]SessionResponse, len(sessions))
	for i, s := range sessions {
		out[i] = toSessionResponse(s)
	}
	return out
}

// ── Handlers ────────────────────────────────────────────────────────────────

// listSessions godoc
// @Summary  List all quiz sessions, newest first
// @Produce  json
// @Success  200 {array} SessionResponse
// @Router   /sessions [get]
func (h *Handler) listSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.sessions.ListSessions(r.Context())
	if h.handleServiceError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, toSessionResponses(sessions))
}

// generateQuiz godoc
// @Summary  Generate a quiz from text and/or an image and start a session
// @Accept   json
// @Produce  json
// @Param    request body GenerateQuizRequest true "content to build the quiz from"
// @Success  201 {object} SessionResponse
// @Router   /quizzes [post]
func (h *Handler) generateQuiz(w http.ResponseWriter, r *http.Request) {
	var req GenerateQuizRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	sess, err := h.sessions.Generate(r.Context(), req.Text, req.ImageBase64, req.Shuffle)
	if h.handleServiceError(w, err) {
		return
	}
	respondJSON(w, http.StatusCreated, toSessionResponse(sess))
}

// getSession godoc
// @Summary  Fetch one session to resume or review it
// @Produce  json
// @Param    sessionID path string true "session id"
// @Success  200 {object} SessionResponse
// @Router   /sessions/{sessionID} [get]
func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	sess, err := h.sessions.Get(r.Context(), r.PathValue("sessionID"))
	if h.handleServiceError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, toSessionResponse(sess))
}

// recordAnswer godoc
// @Summary  Record or overwrite the answer for one question
// @Accept   json
// @Param    sessionID  path string true "session id"
// @Param    questionID path int    true "question id"
// @Param    request    body RecordAnswerRequest true "the answer"
// @Success  204
// @Router   /sessions/{sessionID}/answers/{questionID} [put]
func (h *Handler) recordAnswer(w http.ResponseWriter, r *http.Request) {
	questionID, err := strconv.Atoi(r.PathValue("questionID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid question id")
		return
	}

	var req RecordAnswerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	err = h.sessions.RecordAnswer(r.Context(), r.PathValue("sessionID"), questionID, req.Answer)
	if h.handleServiceError(w, err) {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// toggleUnsure godoc
// @Summary  Toggle the unsure flag on one question
// @Param    sessionID  path string true "session id"
// @Param    questionID path int    true "question id"
// @Success  204
// @Router   /sessions/{sessionID}/unsure/{questionID} [post]
func (h *Handler) toggleUnsure(w http.ResponseWriter, r *http.Request) {
	questionID, err := strconv.Atoi(r.PathValue("questionID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid question id")
		return
	}

	err = h.sessions.ToggleUnsure(r.Context(), r.PathValue("sessionID"), questionID)
	if h.handleServiceError(w, err) {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// completeSession godoc
// @Summary  Submit final answers, compute the score, and mark completed
// @Accept   json
// @Produce  json
// @Param    sessionID path string true "session id"
// @Param    request   body CompleteSessionRequest true "final answers and unsure flags"
// @Success  200 {object} SessionResponse
// @Router   /sessions/{sessionID}/complete [post]
func (h *Handler) completeSession(w http.ResponseWriter, r *http.Request) {
	var req CompleteSessionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Answers == nil {
		req.Answers = map[int]string{}
	}

	sess, err := h.sessions.Complete(r.Context(), r.PathValue("sessionID"), req.Answers, req.UnsureIDs)
	if h.handleServiceError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, toSessionResponse(sess))
}

// deleteSession godoc
// @Summary  Delete a session
// @Param    sessionID path string true "session id"
// @Success  204
// @Router   /sessions/{sessionID} [delete]
func (h *Handler) deleteSession(w http.ResponseWriter, r *http.Request) {
	err := h.sessions.Delete(r.Context(), r.PathValue("sessionID"))
	if h.handleServiceError(w, err) {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
