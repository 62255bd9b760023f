package store

import (
	"context"
	"errors"

	"github.com/quizmaster/backend/internal/domain/session"
)

var (
	// ErrNotFound is returned when a looked-up session does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnavailable means the store could not be opened. This is fatal to
	// every operation until the process is restarted with a working store.
	ErrUnavailable = errors.New("storage unavailable")

	// ErrWriteFailed means a single put or delete failed. Other records are
	// unaffected and reads keep working.
	ErrWriteFailed = errors.New("write failed")
)

// Store is the durable session repository keyed by session id.
// PutSession is an id-keyed upsert with last-write-wins semantics;
// GetAllSessions returns every session in no guaranteed order;
// DeleteSession is a no-op when the id does not exist.
type Store interface {
	PutSession(ctx context.Context, s *session.QuizSession) error
	GetAllSessions(ctx context.Context) ([]*session.QuizSession, error)
	DeleteSession(ctx context.Context, id string) error
	Close() error
}
