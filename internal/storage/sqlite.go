// Package storage persists the store's snapshot as a single named blob.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/zerodividas/zerodividas/internal/store"
)

// StorageKey is the fixed identifier of the snapshot blob.
const StorageKey = "zero-dividas-storage"

// schemaVersion is bumped whenever the serialized snapshot shape changes.
// Blobs written by a newer schema refuse to load instead of guessing.
const schemaVersion = 1

// ErrUnsupportedVersion indicates a snapshot written by an incompatible
// schema version.
var ErrUnsupportedVersion = errors.New("unsupported snapshot schema version")

// SQLiteStore implements store.Persister and store.Loader on a local SQLite
// database.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStore opens (and if needed creates) the snapshot database.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("dbPath cannot be empty")
	}

	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &SQLiteStore{db: db, dbPath: dbPath}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS snapshots (
			name       TEXT PRIMARY KEY,
			version    INTEGER NOT NULL,
			data       BLOB NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`)
	return err
}

// Persist serializes the full snapshot and upserts it under the fixed
// storage key. The changed-key list is informational here: this adapter
// always writes the whole blob.
func (s *SQLiteStore) Persist(ctx context.Context, snap store.Snapshot, changed []string) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to serialize snapshot: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO snapshots (name, version, data, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			version = excluded.version,
			data = excluded.data,
			updated_at = excluded.updated_at`,
		StorageKey, schemaVersion, data, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	slog.Debug("Persisted snapshot", "changed", changed, "bytes", len(data))
	return nil
}

// Load reads the snapshot blob back. The boolean is false when nothing was
// persisted yet.
func (s *SQLiteStore) Load(ctx context.Context) (store.Snapshot, bool, error) {
	var (
		version int
		data    []byte
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT version, data FROM snapshots WHERE name = ?`, StorageKey).
		Scan(&version, &data)
	if errors.Is(err, sql.ErrNoRows) {
		return store.NewSnapshot(), false, nil
	}
	if err != nil {
		return store.Snapshot{}, false, fmt.Errorf("failed to read snapshot: %w", err)
	}

	if version != schemaVersion {
		return store.Snapshot{}, false, fmt.Errorf("%w: got %d, want %d", ErrUnsupportedVersion, version, schemaVersion)
	}

	var snap store.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return store.Snapshot{}, false, fmt.Errorf("failed to deserialize snapshot: %w", err)
	}
	return snap, true, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
