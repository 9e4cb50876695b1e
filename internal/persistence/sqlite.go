// Package persistence implements engine.Persister backed by SQLite, the
// concrete SaveMemory/LoadMemory storage seam of spec.md §6.
//
// Grounded on teacher's internal/storage/sqlite.go (schema bootstrap via
// PRAGMA tuning + a single schema_metadata version row, opened once with
// pooled *sql.DB) and internal/storage/factory.go's env-driven
// constructor; adapted from the teacher's thought/branch/insight schema to
// a single concepts/beliefs/desires schema matching engine.Snapshot.
package persistence

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS schema_metadata (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS concepts (
	term TEXT PRIMARY KEY
);

CREATE TABLE IF NOT EXISTS beliefs (
	term TEXT NOT NULL,
	f    REAL NOT NULL,
	c    REAL NOT NULL,
	FOREIGN KEY (term) REFERENCES concepts(term)
);

CREATE TABLE IF NOT EXISTS desires (
	term TEXT NOT NULL,
	f    REAL NOT NULL,
	c    REAL NOT NULL,
	FOREIGN KEY (term) REFERENCES concepts(term)
);
`

const schemaVersion = 1

// SQLiteStore implements engine.Persister. Unlike teacher's long-lived
// SQLiteStorage (one *sql.DB for the server's whole lifetime), SQLiteStore
// opens and closes its connection per Save/Load call: spec.md §6's
// save/load are infrequent, operator-triggered snapshots, not a hot path,
// so there is no pooled connection worth keeping warm between them.
type SQLiteStore struct {
	busyTimeoutMs int
}

// NewSQLiteStore creates a store with the given SQLite busy-timeout.
func NewSQLiteStore(busyTimeoutMs int) *SQLiteStore {
	if busyTimeoutMs <= 0 {
		busyTimeoutMs = 5000
	}
	return &SQLiteStore{busyTimeoutMs: busyTimeoutMs}
}

func (s *SQLiteStore) open(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("%s?_busy_timeout=%d", path, s.busyTimeoutMs)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("persistence: open %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("persistence: ping %s: %w", path, err)
	}
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("persistence: configure %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("persistence: schema %s: %w", path, err)
	}
	if _, err := db.Exec(
		"INSERT INTO schema_metadata (key, value) VALUES ('version', ?) ON CONFLICT(key) DO UPDATE SET value=excluded.value",
		schemaVersion,
	); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("persistence: schema version %s: %w", path, err)
	}
	return db, nil
}
