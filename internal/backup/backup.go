// Package backup serializes the full session set to a portable snapshot and
// merges externally supplied snapshots back into the store.
package backup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/quizmaster/backend/internal/domain/quiz"
	"github.com/quizmaster/backend/internal/domain/session"
	"github.com/quizmaster/backend/internal/store"
)

// ErrMalformedBackup is returned when an import payload is not a JSON array
// of session records. No writes happen in that case.
var ErrMalformedBackup = errors.New("malformed backup")

type Engine struct {
	store  store.Store
	logger *slog.Logger
}

func NewEngine(s store.Store, logger *slog.Logger) *Engine {
	return &Engine{store: s, logger: logger}
}

// Export reads the entire repository and serializes it as an indented JSON
// array of session records, newest first. Handing the bytes to a download
// mechanism is the caller's job.
func (e *Engine) Export(ctx context.Context) ([]byte, error) {
	sessions, err := e.store.GetAllSessions(ctx)
	if err != nil {
		return nil, err
	}
	session.SortByNewest(sessions)
	if sessions == nil {
		sessions = []*session.QuizSession{}
	}
	return json.MarshalIndent(sessions, "", "  ")
}

// recordProbe is the minimal shape a snapshot element must have to be
// accepted: a non-empty id and a present quizData.
type recordProbe struct {
	ID       string         `json:"id"`
	QuizData *quiz.QuizData `json:"quizData"`
}

// Import merges a snapshot into the repository by id-wise upsert: a matching
// id fully replaces the stored session, a new id is added, and sessions not
// named in the snapshot are untouched. A payload that does not parse as an
// array fails with ErrMalformedBackup before any write; individual elements
// failing the minimal shape check are logged and skipped. On success the
// freshly re-read session set is returned, newest first.
func (e *Engine) Import(ctx context.Context, data []byte) ([]*session.QuizSession, error) {
	var elements []json.RawMessage
	if err := json.Unmarshal(data, &elements); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBackup, err)
	}

	imported, skipped := 0, 0
	for i, element := range elements {
		var probe recordProbe
		if err := json.Unmarshal(element, &probe); err != nil {
			e.logger.Warn("import: skipping unreadable record", "index", i, "error", err)
			skipped++
			continue
		}
		if probe.ID == "" || probe.QuizData == nil {
			e.logger.Warn("import: skipping record without id or quizData", "index", i)
			skipped++
			continue
		}

		var sess session.QuizSession
		if err := json.Unmarshal(element, &sess); err != nil {
			e.logger.Warn("import: skipping undecodable record", "index", i, "id", probe.ID, "error", err)
			skipped++
			continue
		}

		if err := e.store.PutSession(ctx, &sess); err != nil {
			return nil, err
		}
		imported++
	}

	e.logger.Info("import finished", "imported", imported, "skipped", skipped)

	sessions, err := e.store.GetAllSessions(ctx)
	if err != nil {
		return nil, err
	}
	session.SortByNewest(sessions)
	return sessions, nil
}
