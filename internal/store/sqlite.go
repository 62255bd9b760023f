// internal/store/sqlite.go
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	_ "modernc.org/sqlite"

	"github.com/quizmaster/backend/internal/domain/session"
)

// migrations is the additive schema history. The slot index plus one is the
// PRAGMA user_version after the statement has been applied; existing slots are
// never edited, new schema changes append a new statement.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS sessions (
    id TEXT PRIMARY KEY,
    created_at INTEGER NOT NULL,
    document TEXT NOT NULL
);`,
}

// SQLiteStore keeps each session as a single JSON document keyed by id.
// The document is the wire format: a put replaces the whole record, so a
// reader never observes a half-written session.
type SQLiteStore struct {
	db         *sql.DB
	legacyPath string
	logger     *slog.Logger
}

// NewSQLite opens (or creates) the session database and applies any pending
// schema migrations. legacyPath points at the flat pre-database history file;
// pass "" to disable legacy migration. An open or migration failure is
// reported as ErrUnavailable.
func NewSQLite(dbPath, legacyPath string, logger *slog.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	// modernc's driver serializes through a single connection; this also
	// matches the single-logical-writer model of the callers.
	db.SetMaxOpenConns(1)

	if err := applyMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return &SQLiteStore{
		db:         db,
		legacyPath: legacyPath,
		logger:     logger,
	}, nil
}

func applyMigrations(db *sql.DB) error {
	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return err
	}
	for ; version < len(migrations); version++ {
		if _, err := db.Exec(migrations[version]); err != nil {
			return fmt.Errorf("schema migration %d: %w", version+1, err)
		}
		if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", version+1)); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// PutSession inserts or fully overwrites the record for the session's id.
func (s *SQLiteStore) PutSession(ctx context.Context, sess *session.QuizSession) error {
	document, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO sessions (id, created_at, document) VALUES (?, ?, ?)
         ON CONFLICT(id) DO UPDATE SET created_at = excluded.created_at, document = excluded.document`,
		sess.ID, sess.Timestamp, string(document),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	return nil
}

// GetAllSessions returns every stored session in no guaranteed order.
// It first attempts the one-time legacy migration so callers only ever see
// either the pre-migration set or the fully migrated set.
func (s *SQLiteStore) GetAllSessions(ctx context.Context) ([]*session.QuizSession, error) {
	s.migrateLegacy(ctx)

	rows, err := s.db.QueryContext(ctx, "SELECT document FROM sessions")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []*session.QuizSession
	for rows.Next() {
		var document string
		if err := rows.Scan(&document); err != nil {
			return nil, err
		}
		var sess session.QuizSession
		if err := json.Unmarshal([]byte(document), &sess); err != nil {
			return nil, fmt.Errorf("corrupt session document: %w", err)
		}
		sessions = append(sessions, &sess)
	}
	return sessions, rows.Err()
}

// DeleteSession removes the record. A missing id is not an error.
func (s *SQLiteStore) DeleteSession(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM sessions WHERE id = ?", id); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	return nil
}
