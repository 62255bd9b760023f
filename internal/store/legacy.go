package store

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"github.com/quizmaster/backend/internal/domain/session"
)

// migrateLegacy performs the one-time transfer of the flat pre-database
// history file into the sessions table. The file holds a JSON array of
// sessions in the current schema. The transfer commits all writes in one
// transaction and removes the file only afterwards, so a second run is
// naturally a no-op. Failures are logged and leave the file in place for a
// retry on the next read; they never propagate to the caller.
func (s *SQLiteStore) migrateLegacy(ctx context.Context) {
	if s.legacyPath == "" {
		return
	}

	raw, err := os.ReadFile(s.legacyPath)
	if errors.Is(err, fs.ErrNotExist) {
		return
	}
	if err != nil {
		s.logger.Error("legacy migration: read failed", "path", s.legacyPath, "error", err)
		return
	}

	var history []*session.QuizSession
	if err := json.Unmarshal(raw, &history); err != nil {
		s.logger.Error("legacy migration: malformed history file", "path", s.legacyPath, "error", err)
		return
	}
	if len(history) == 0 {
		return
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("legacy migration: begin failed", "error", err)
		return
	}
	defer tx.Rollback()

	for i, sess := range history {
		// A JSON null in the array decodes to a nil pointer. Skip it like any
		// other unusable record instead of failing the whole read.
		if sess == nil {
			s.logger.Warn("legacy migration: skipping null record", "index", i)
			continue
		}
		document, err := json.Marshal(sess)
		if err != nil {
			s.logger.Error("legacy migration: marshal failed", "session_id", sess.ID, "error", err)
			return
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO sessions (id, created_at, document) VALUES (?, ?, ?)
             ON CONFLICT(id) DO UPDATE SET created_at = excluded.created_at, document = excluded.document`,
			sess.ID, sess.Timestamp, string(document),
		)
		if err != nil {
			s.logger.Error("legacy migration: write failed", "session_id", sess.ID, "error", err)
			return
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("legacy migration: commit failed", "error", err)
		return
	}

	// The data is durable; the old file only causes confusion from here on.
	if err := os.Remove(s.legacyPath); err != nil {
		s.logger.Error("legacy migration: could not remove history file", "path", s.legacyPath, "error", err)
		return
	}

	s.logger.Info("legacy migration complete", "sessions", len(history))
}
