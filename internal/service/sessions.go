// internal/service/sessions.go
package service

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"

	"github.com/quizmaster/backend/internal/domain/quiz"
	"github.com/quizmaster/backend/internal/domain/session"
	"github.com/quizmaster/backend/internal/generator"
	"github.com/quizmaster/backend/internal/review"
	"github.com/quizmaster/backend/internal/store"
)

// SessionService is the lifecycle controller: it owns the in-memory working
// set of sessions, is the sole writer of the truth the store persists, and
// writes every mutation through before returning. The store stays the source
// of truth; the mirror is rebuilt from it on first use and after every bulk
// operation (import, migration).
//
// The mutex serializes mutations, matching the single-logical-writer model.
// When a write fails the in-memory state may transiently diverge from storage
// until the next successful write; that divergence is accepted, not corrected.
type SessionService struct {
	store     store.Store
	generator generator.Generator
	logger    *slog.Logger

	mu       sync.Mutex
	sessions map[string]*session.QuizSession
	loaded   bool
}

func NewSessionService(s store.Store, g generator.Generator, logger *slog.Logger) *SessionService {
	return &SessionService{
		store:     s,
		generator: g,
		logger:    logger,
		sessions:  make(map[string]*session.QuizSession),
	}
}

// ensureLoadedLocked rebuilds the mirror from the store on first use.
// The store runs legacy migration inside GetAllSessions, so the first list a
// caller sees is already the fully migrated set. Callers must hold s.mu.
func (s *SessionService) ensureLoadedLocked(ctx context.Context) error {
	if s.loaded {
		return nil
	}
	return s.reloadLocked(ctx)
}

func (s *SessionService) reloadLocked(ctx context.Context) error {
	stored, err := s.store.GetAllSessions(ctx)
	if err != nil {
		return err
	}
	s.sessions = make(map[string]*session.QuizSession, len(stored))
	for _, sess := range stored {
		s.sessions[sess.ID] = sess
	}
	s.loaded = true
	return nil
}

// Reload rebuilds the mirror from the store. Call after bulk operations that
// bypass the controller, such as a snapshot import.
func (s *SessionService) Reload(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reloadLocked(ctx)
}

// ListSessions returns every session, newest first.
func (s *SessionService) ListSessions(ctx context.Context) ([]*session.QuizSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoadedLocked(ctx); err != nil {
		return nil, err
	}
	return s.snapshotLocked(), nil
}

func (s *SessionService) snapshotLocked() []*session.QuizSession {
	sessions := make([]*session.QuizSession, 0, len(s.sessions))
	for _, sess := range s.sessions {
		sessions = append(sessions, sess.Clone())
	}
	session.SortByNewest(sessions)
	return sessions
}

// Get returns one session by id.
func (s *SessionService) Get(ctx context.Context, sessionID string) (*session.QuizSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoadedLocked(ctx); err != nil {
		return nil, err
	}
	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, store.ErrNotFound
	}
	return sess.Clone(), nil
}

// Create starts a new session for already-generated quiz data and persists it.
func (s *SessionService) Create(ctx context.Context, data quiz.QuizData) (*session.QuizSession, error) {
	if err := data.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoadedLocked(ctx); err != nil {
		return nil, err
	}

	sess := session.New(data)
	if err := s.store.PutSession(ctx, sess); err != nil {
		return nil, err
	}
	s.sessions[sess.ID] = sess

	s.logger.Info("session created", "session_id", sess.ID, "questions", len(data.Questions))
	return sess.Clone(), nil
}

// Generate calls the generation collaborator and starts a session from its
// output. A generation failure is surfaced unchanged with nothing persisted.
// When shuffle is set the question order is randomized before the session is
// created; ids stay stable so answers keep referencing the same questions.
func (s *SessionService) Generate(ctx context.Context, text, imageBase64 string, shuffle bool) (*session.QuizSession, error) {
	data, err := s.generator.Generate(ctx, text, imageBase64)
	if err != nil {
		return nil, err
	}

	if shuffle {
		shuffled := make([]quiz.Question, len(data.Questions))
		copy(shuffled, data.Questions)
		rand.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		data.Questions = shuffled
	}

	return s.Create(ctx, *data)
}

// RecordAnswer sets or overwrites one answer and persists the whole session
// before returning. There is no batching: every edit is durable before the
// next user action can observe stale state.
func (s *SessionService) RecordAnswer(ctx context.Context, sessionID string, questionID int, answer string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoadedLocked(ctx); err != nil {
		return err
	}

	sess, ok := s.sessions[sessionID]
	if !ok {
		return store.ErrNotFound
	}
	if err := sess.SetAnswer(questionID, answer); err != nil {
		return err
	}
	return s.store.PutSession(ctx, sess)
}

// ToggleUnsure flips the unsure flag for one question and persists.
func (s *SessionService) ToggleUnsure(ctx context.Context, sessionID string, questionID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoadedLocked(ctx); err != nil {
		return err
	}

	sess, ok := s.sessions[sessionID]
	if !ok {
		return store.ErrNotFound
	}
	if err := sess.ToggleUnsure(questionID); err != nil {
		return err
	}
	return s.store.PutSession(ctx, sess)
}

// Complete submits the final answers, computes the score from them as they
// stand now, marks the session completed, and persists. Completing an
// already-completed session recomputes and overwrites the score.
func (s *SessionService) Complete(ctx context.Context, sessionID string, finalAnswers map[int]string, finalUnsureIDs []int) (*session.QuizSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoadedLocked(ctx); err != nil {
		return nil, err
	}

	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, store.ErrNotFound
	}
	if err := sess.Complete(finalAnswers, finalUnsureIDs); err != nil {
		return nil, err
	}
	if err := s.store.PutSession(ctx, sess); err != nil {
		return nil, err
	}

	s.logger.Info("session completed", "session_id", sessionID, "score", sess.Score)
	return sess.Clone(), nil
}

// Delete removes the session from the store and the working set. Deleting an
// id that does not exist is a no-op, same as the store contract.
func (s *SessionService) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoadedLocked(ctx); err != nil {
		return err
	}

	if err := s.store.DeleteSession(ctx, sessionID); err != nil {
		return err
	}
	delete(s.sessions, sessionID)
	return nil
}

// Mistakes recomputes the cross-session review list from the live working
// set. Nothing is cached; a deleted session disappears from the output on the
// next call.
func (s *SessionService) Mistakes(ctx context.Context) ([]review.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoadedLocked(ctx); err != nil {
		return nil, err
	}
	return review.Mistakes(s.snapshotLocked()), nil
}
