package index

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	_ "modernc.org/sqlite"
)

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA busy_timeout = 5000;

CREATE TABLE IF NOT EXISTS sessions (
    seq        INTEGER PRIMARY KEY,
    subject    TEXT NOT NULL,
    duration   INTEGER NOT NULL DEFAULT 0,
    timestamp  TEXT NOT NULL,
    started_at TEXT NOT NULL DEFAULT '',
    day        TEXT NOT NULL DEFAULT '',
    month      TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS sessions_subject ON sessions(subject);
CREATE INDEX IF NOT EXISTS sessions_day ON sessions(day);

CREATE TABLE IF NOT EXISTS meta (key TEXT PRIMARY KEY, value TEXT);
`

// schemaVersion should be bumped whenever the sessions table changes shape
// to force a rebuild from the study log.
const schemaVersion = "1"

// DB is a sqlite mirror of the study log. The JSON file stays the source of
// truth; the index only serves queries.
type DB struct {
	db *sql.DB
}

func OpenDB(dbPath string) (*DB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	d := &DB{db: db}
	if err := d.migrateSchemaVersion(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate schema: %w", err)
	}
	return d, nil
}

func (d *DB) migrateSchemaVersion() error {
	ver, err := d.meta("schema_version")
	if err != nil {
		return err
	}
	if ver == schemaVersion {
		return nil
	}
	// force a rebuild on the next sync
	if _, err := d.db.Exec("DELETE FROM meta WHERE key IN ('source_mtime', 'source_size')"); err != nil {
		return err
	}
	return d.setMeta(d.db, "schema_version", schemaVersion)
}

func (d *DB) Close() error {
	return d.db.Close()
}

func (d *DB) Raw() *sql.DB {
	return d.db
}

func (d *DB) SessionCount() (int, error) {
	var n int
	err := d.db.QueryRow("SELECT COUNT(*) FROM sessions").Scan(&n)
	return n, err
}

func (d *DB) TotalDuration() (int, error) {
	var n int
	err := d.db.QueryRow("SELECT COALESCE(SUM(duration), 0) FROM sessions").Scan(&n)
	return n, err
}

// SourceInfo is the study log file state the index was last built from.
type SourceInfo struct {
	Mtime int64
	Size  int64
}

func (d *DB) GetSourceInfo() (*SourceInfo, error) {
	mtime, err := d.meta("source_mtime")
	if err != nil {
		return nil, err
	}
	size, err := d.meta("source_size")
	if err != nil {
		return nil, err
	}
	if mtime == "" || size == "" {
		return nil, nil
	}

	var info SourceInfo
	if info.Mtime, err = strconv.ParseInt(mtime, 10, 64); err != nil {
		return nil, nil
	}
	if info.Size, err = strconv.ParseInt(size, 10, 64); err != nil {
		return nil, nil
	}
	return &info, nil
}

func (d *DB) meta(key string) (string, error) {
	var v string
	err := d.db.QueryRow("SELECT value FROM meta WHERE key = ?", key).Scan(&v)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return v, err
}

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func (d *DB) setMeta(ex execer, key, value string) error {
	_, err := ex.Exec("INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)", key, value)
	return err
}

type SessionRow struct {
	Seq       int
	Subject   string
	Duration  int
	Timestamp string
	StartedAt string
	Day       string
	Month     string
}
