package query

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteStore is the durable cache store. A CLI process is short-lived,
// so staleness windows measured in hours or days only mean anything if
// the cache outlives the process.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStore opens (or creates) the cache database.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("cache database path is required")
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	store := &SQLiteStore{db: db, dbPath: dbPath}
	if err := store.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

func (s *SQLiteStore) migrate() error {
	const schema = `
	CREATE TABLE IF NOT EXISTS query_cache (
		key        TEXT PRIMARY KEY,
		payload    BLOB NOT NULL,
		fetched_at INTEGER NOT NULL
	);`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to migrate cache schema: %w", err)
	}
	return nil
}

// Get returns the cached entry for a key.
func (s *SQLiteStore) Get(key string) (Entry, bool, error) {
	var payload []byte
	var fetchedAt int64

	err := s.db.QueryRow(
		"SELECT payload, fetched_at FROM query_cache WHERE key = ?", key,
	).Scan(&payload, &fetchedAt)
	if err == sql.ErrNoRows {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, fmt.Errorf("failed to read cache entry %s: %w", key, err)
	}

	return Entry{Payload: payload, FetchedAt: time.Unix(fetchedAt, 0)}, true, nil
}

// Set caches a payload under a key.
func (s *SQLiteStore) Set(key string, payload []byte, fetchedAt time.Time) error {
	_, err := s.db.Exec(
		`INSERT INTO query_cache (key, payload, fetched_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, fetched_at = excluded.fetched_at`,
		key, payload, fetchedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to write cache entry %s: %w", key, err)
	}
	return nil
}

// InvalidatePrefix drops every entry under a resource prefix.
func (s *SQLiteStore) InvalidatePrefix(prefix string) error {
	_, err := s.db.Exec(
		"DELETE FROM query_cache WHERE key = ? OR key LIKE ?",
		prefix, prefix+":%",
	)
	if err != nil {
		return fmt.Errorf("failed to invalidate cache prefix %s: %w", prefix, err)
	}
	return nil
}

// Clear drops every cached entry.
func (s *SQLiteStore) Clear() error {
	if _, err := s.db.Exec("DELETE FROM query_cache"); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// DefaultCachePath is the cache database location used when none is
// configured: $XDG_DATA_HOME/buddy/cache.db or ~/.local/share/buddy/cache.db.
func DefaultCachePath() (string, error) {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataDir, "buddy", "cache.db"), nil
}
