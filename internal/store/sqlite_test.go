package store_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/quizmaster/backend/internal/domain/quiz"
	"github.com/quizmaster/backend/internal/domain/session"
	"github.com/quizmaster/backend/internal/store"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func openTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	s, err := store.NewSQLite(filepath.Join(t.TempDir(), "test.db"), "", testLogger())
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func newSession(title string) *session.QuizSession {
	return session.New(quiz.QuizData{
		Title: title,
		Questions: []quiz.Question{
			{ID: 0, Type: quiz.TypeFillInBlank, QuestionText: "Capital of France?", CorrectAnswer: "Paris"},
		},
	})
}

func TestPutAndGetAll_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sess := newSession("Capitals")
	if err := sess.SetAnswer(0, "Paris"); err != nil {
		t.Fatal(err)
	}
	if err := sess.ToggleUnsure(0); err != nil {
		t.Fatal(err)
	}

	if err := s.PutSession(ctx, sess); err != nil {
		t.Fatalf("PutSession returned error: %v", err)
	}

	got, err := s.GetAllSessions(ctx)
	if err != nil {
		t.Fatalf("GetAllSessions returned error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 session, got %d", len(got))
	}
	if got[0].ID != sess.ID {
		t.Errorf("expected id %s, got %s", sess.ID, got[0].ID)
	}
	if got[0].AnswerFor(0) != "Paris" {
		t.Errorf("expected answer to survive the round trip, got %q", got[0].AnswerFor(0))
	}
	if !got[0].IsUnsure(0) {
		t.Error("expected unsure flag to survive the round trip")
	}
}

func TestPut_OverwritesWholeRecord(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sess := newSession("Capitals")
	if err := s.PutSession(ctx, sess); err != nil {
		t.Fatal(err)
	}

	if err := sess.Complete(map[int]string{0: "Paris"}, nil); err != nil {
		t.Fatal(err)
	}
	if err := s.PutSession(ctx, sess); err != nil {
		t.Fatal(err)
	}

	got, err := s.GetAllSessions(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("expected overwrite, not insert; got %d sessions", len(got))
	}
	if !got[0].IsCompleted || got[0].Score != 100 {
		t.Errorf("expected the stored record to be the latest write, got completed=%v score=%d", got[0].IsCompleted, got[0].Score)
	}
}

func TestDelete_RemovesOnlyThatSession(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	keep := newSession("Keep")
	drop := newSession("Drop")
	for _, sess := range []*session.QuizSession{keep, drop} {
		if err := s.PutSession(ctx, sess); err != nil {
			t.Fatal(err)
		}
	}

	if err := s.DeleteSession(ctx, drop.ID); err != nil {
		t.Fatalf("DeleteSession returned error: %v", err)
	}

	got, err := s.GetAllSessions(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].ID != keep.ID {
		t.Errorf("expected only session %s to remain, got %d sessions", keep.ID, len(got))
	}
}

func TestDelete_MissingIDIsNoOp(t *testing.T) {
	s := openTestStore(t)
	if err := s.DeleteSession(context.Background(), "does-not-exist"); err != nil {
		t.Errorf("expected no error for missing id, got %v", err)
	}
}

func TestNewSQLite_ReportsUnavailable(t *testing.T) {
	_, err := store.NewSQLite(filepath.Join(t.TempDir(), "no", "such", "dir", "test.db"), "", testLogger())
	if !errors.Is(err, store.ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}

func TestReopen_KeepsData(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "test.db")
	ctx := context.Background()

	s, err := store.NewSQLite(dbPath, "", testLogger())
	if err != nil {
		t.Fatal(err)
	}
	sess := newSession("Persist")
	if err := s.PutSession(ctx, sess); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	reopened, err := store.NewSQLite(dbPath, "", testLogger())
	if err != nil {
		t.Fatalf("expected reopen to succeed against an existing schema, got %v", err)
	}
	defer reopened.Close()

	got, err := reopened.GetAllSessions(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].ID != sess.ID {
		t.Errorf("expected data to survive a reopen, got %d sessions", len(got))
	}
}

// ── Legacy migration ────────────────────────────────────────────────────────

func writeLegacyFile(t *testing.T, path string, sessions []*session.QuizSession) {
	t.Helper()
	raw, err := json.Marshal(sessions)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestMigration_MovesLegacySessionsIntoStore(t *testing.T) {
	dir := t.TempDir()
	legacyPath := filepath.Join(dir, "quiz_master_history_v2.json")
	a := newSession("Legacy A")
	b := newSession("Legacy B")
	writeLegacyFile(t, legacyPath, []*session.QuizSession{a, b})

	s, err := store.NewSQLite(filepath.Join(dir, "test.db"), legacyPath, testLogger())
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	got, err := s.GetAllSessions(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 migrated sessions, got %d", len(got))
	}
	if _, err := os.Stat(legacyPath); !errors.Is(err, os.ErrNotExist) {
		t.Error("expected the legacy file to be removed after migration")
	}
}

func TestMigration_IsIdempotent(t *testing.T) {
	dir := t.TempDir()
	legacyPath := filepath.Join(dir, "quiz_master_history_v2.json")
	writeLegacyFile(t, legacyPath, []*session.QuizSession{newSession("Legacy")})

	s, err := store.NewSQLite(filepath.Join(dir, "test.db"), legacyPath, testLogger())
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	ctx := context.Background()
	first, err := s.GetAllSessions(ctx)
	if err != nil {
		t.Fatal(err)
	}
	second, err := s.GetAllSessions(ctx)
	if err != nil {
		t.Fatal(err)
	}

	if len(first) != 1 || len(second) != 1 {
		t.Errorf("expected 1 session after both reads, got %d then %d", len(first), len(second))
	}
}

func TestMigration_MalformedFileIsLeftForRetry(t *testing.T) {
	dir := t.TempDir()
	legacyPath := filepath.Join(dir, "quiz_master_history_v2.json")
	if err := os.WriteFile(legacyPath, []byte("{not an array"), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := store.NewSQLite(filepath.Join(dir, "test.db"), legacyPath, testLogger())
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	got, err := s.GetAllSessions(context.Background())
	if err != nil {
		t.Fatalf("expected the read to succeed despite a bad legacy file, got %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no sessions, got %d", len(got))
	}
	if _, err := os.Stat(legacyPath); err != nil {
		t.Error("expected the malformed legacy file to stay in place")
	}
}

func TestMigration_SkipsNullRecords(t *testing.T) {
	dir := t.TempDir()
	legacyPath := filepath.Join(dir, "quiz_master_history_v2.json")
	kept := newSession("Kept")
	raw, err := json.Marshal([]*session.QuizSession{nil, kept, nil})
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(legacyPath, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := store.NewSQLite(filepath.Join(dir, "test.db"), legacyPath, testLogger())
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	got, err := s.GetAllSessions(context.Background())
	if err != nil {
		t.Fatalf("expected the read to succeed, got %v", err)
	}
	if len(got) != 1 || got[0].ID != kept.ID {
		t.Errorf("expected only the real record to migrate, got %d sessions", len(got))
	}
	if _, err := os.Stat(legacyPath); !errors.Is(err, os.ErrNotExist) {
		t.Error("expected the legacy file to be removed after migration")
	}
}

func TestMigration_AllNullRecords(t *testing.T) {
	dir := t.TempDir()
	legacyPath := filepath.Join(dir, "quiz_master_history_v2.json")
	if err := os.WriteFile(legacyPath, []byte("[null]"), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := store.NewSQLite(filepath.Join(dir, "test.db"), legacyPath, testLogger())
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	got, err := s.GetAllSessions(context.Background())
	if err != nil {
		t.Fatalf("expected the read to succeed, got %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no sessions, got %d", len(got))
	}
	if _, err := os.Stat(legacyPath); !errors.Is(err, os.ErrNotExist) {
		t.Error("expected the drained legacy file to be removed")
	}
}

func TestMigration_MissingFileIsSilent(t *testing.T) {
	dir := t.TempDir()
	s, err := store.NewSQLite(filepath.Join(dir, "test.db"), filepath.Join(dir, "missing.json"), testLogger())
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	if _, err := s.GetAllSessions(context.Background()); err != nil {
		t.Errorf("expected a silent no-op for a missing legacy file, got %v", err)
	}
}

func TestMigration_OverwritesExistingIDFromLegacy(t *testing.T) {
	dir := t.TempDir()
	legacyPath := filepath.Join(dir, "quiz_master_history_v2.json")

	stored := newSession("Stored")
	legacy := stored.Clone()
	legacy.QuizData.Title = "Legacy copy"
	writeLegacyFile(t, legacyPath, []*session.QuizSession{legacy})

	s, err := store.NewSQLite(filepath.Join(dir, "test.db"), legacyPath, testLogger())
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	ctx := context.Background()
	if err := s.PutSession(ctx, stored); err != nil {
		t.Fatal(err)
	}

	got, err := s.GetAllSessions(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("expected the legacy record to upsert, got %d sessions", len(got))
	}
	if got[0].QuizData.Title != "Legacy copy" {
		t.Errorf("expected last-write-wins on id collision, got title %q", got[0].QuizData.Title)
	}
}
