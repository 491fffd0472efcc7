package prefs

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// SQLite is the durable Backend: one prefs(k, v) table in the per-user
// settings database. It stands in for the platform settings subsystem.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (and if needed creates) the settings database at path.
func OpenSQLite(ctx context.Context, path string) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// Pragmas for multi-process local usage. WAL enables one writer + many
	// readers; busy_timeout helps avoid "database is locked" flakiness when a
	// CLI invocation races the TUI.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS prefs (
		k TEXT PRIMARY KEY,
		v INTEGER NOT NULL
	);`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLite{db: db}, nil
}

// Open opens the default per-user settings database.
func Open(ctx context.Context) (*SQLite, error) {
	path, err := DBPath()
	if err != nil {
		return nil, err
	}
	return OpenSQLite(ctx, path)
}

func (s *SQLite) Close() error { return s.db.Close() }

// GetInt reports ok=false for absent keys and for any read failure; callers
// fold both into their default.
func (s *SQLite) GetInt(key string) (int64, bool) {
	var v int64
	err := s.db.QueryRow(`SELECT v FROM prefs WHERE k = ?`, key).Scan(&v)
	if err != nil {
		return 0, false
	}
	return v, true
}

// SetInt persists immediately. Write failures are swallowed: the preference
// path has no error surface, and the worst case is the old value winning on
// the next read.
func (s *SQLite) SetInt(key string, v int64) {
	_, _ = s.db.Exec(`INSERT OR REPLACE INTO prefs(k, v) VALUES(?, ?)`, key, v)
}
