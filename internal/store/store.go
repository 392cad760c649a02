package store

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

const currentVersion = 1

// Entry retention used when the storage medium reports it is full: everything
// but the newest retainOnEvict entries is dropped before the single retry.
const retainOnEvict = 50

// Answer length bounds for a response to count as valid.
const (
	MinAnswerLength = 10
	MaxAnswerLength = 500
)

// ErrStorageFull is returned when a write fails on a full medium even after
// evicting old entries and retrying once. The caller may surface it and keep
// the draft in memory.
var ErrStorageFull = errors.New("storage full")

// ValidationError reports an entry that fails shape, range, or length checks.
// Nothing is persisted when one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid entry: %s %s", e.Field, e.Reason)
}

type Store struct {
	db  *sql.DB
	log *slog.Logger
}

// New opens (or creates) the SQLite database at dbPath and runs migrations.
// A nil logger discards all diagnostics. Failure here is fatal to the app:
// an unavailable medium means nothing can run.
func New(dbPath string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(1)

	// Configure pragmas.
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("exec pragma %q: %w", p, err)
		}
	}

	s := &Store{db: db, log: logger}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// NewMemory creates an in-memory store for testing.
func NewMemory() (*Store, error) {
	return New(":memory:", nil)
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	var version int
	err := s.db.QueryRow("PRAGMA user_version").Scan(&version)
	if err != nil {
		return fmt.Errorf("read user_version: %w", err)
	}

	if version >= currentVersion {
		return nil
	}

	if version < 1 {
		if err := s.migrateV1(); err != nil {
			return err
		}
	}

	_, err = s.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentVersion))
	return err
}

func (s *Store) migrateV1() error {
	const ddl = `
	CREATE TABLE IF NOT EXISTS entries (
		id            TEXT PRIMARY KEY,
		date          TEXT NOT NULL,
		timestamp_ms  INTEGER NOT NULL DEFAULT 0,
		completed_at  TEXT,
		mood          INTEGER,
		activities    TEXT NOT NULL DEFAULT '[]',
		questions     TEXT NOT NULL DEFAULT '[]',
		answers       TEXT NOT NULL DEFAULT '{}',
		notes         TEXT NOT NULL DEFAULT '',
		diary_text    TEXT NOT NULL DEFAULT '',
		completed     INTEGER NOT NULL DEFAULT 0
	);

	CREATE INDEX IF NOT EXISTS idx_entries_date      ON entries(date);
	CREATE INDEX IF NOT EXISTS idx_entries_completed ON entries(completed);

	CREATE TABLE IF NOT EXISTS user_data (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(ddl)
	return err
}

// isFull reports whether err looks like a capacity rejection from the medium.
// The pure-Go driver exposes SQLITE_FULL only through the message text.
func isFull(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "database or disk is full") ||
		strings.Contains(msg, "SQLITE_FULL")
}

// DefaultDBPath returns ~/.config/dailysync/dailysync.db
func DefaultDBPath() (string, error) {
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfg, "dailysync", "dailysync.db"), nil
}

// DefaultLogPath returns ~/.config/dailysync/dailysync.log
func DefaultLogPath() (string, error) {
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfg, "dailysync", "dailysync.log"), nil
}
