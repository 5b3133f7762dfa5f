package index

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/Zuo-Peng/study-tracker/internal/store"
)

type Stats struct {
	Records int
	Indexed int
	Skipped int // records with an unparseable timestamp
	Rebuilt bool
}

func (s Stats) String() string {
	return fmt.Sprintf("records=%d indexed=%d skipped=%d rebuilt=%t",
		s.Records, s.Indexed, s.Skipped, s.Rebuilt)
}

// Sync rebuilds the index from the study log when the log file changed since
// the last sync. A missing log empties the index.
func Sync(db *DB, st *store.Store, logger *zap.Logger) (Stats, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	var stats Stats

	var mtime, size int64
	fi, err := os.Stat(st.Path())
	switch {
	case err == nil:
		mtime, size = fi.ModTime().UnixNano(), fi.Size()
	case errors.Is(err, os.ErrNotExist):
	default:
		return stats, fmt.Errorf("stat study log: %w", err)
	}

	needs, err := needsUpdate(db, mtime, size)
	if err != nil {
		return stats, err
	}
	if !needs {
		n, err := db.SessionCount()
		if err != nil {
			return stats, err
		}
		stats.Records, stats.Indexed = n, n
		return stats, nil
	}

	records := st.Load()
	stats.Records = len(records)
	stats.Rebuilt = true

	indexed, err := rebuild(db, records, mtime, size)
	if err != nil {
		return stats, fmt.Errorf("rebuild index: %w", err)
	}
	stats.Indexed = indexed
	stats.Skipped = len(records) - indexed
	if stats.Skipped > 0 {
		logger.Warn("skipped records with bad timestamps", zap.Int("count", stats.Skipped))
	}
	logger.Info("index synced", zap.Int("records", stats.Records), zap.Int("indexed", stats.Indexed))
	return stats, nil
}

func needsUpdate(db *DB, mtime, size int64) (bool, error) {
	info, err := db.GetSourceInfo()
	if err != nil {
		return false, err
	}
	if info == nil {
		return true, nil // never synced
	}
	return info.Mtime != mtime || info.Size != size, nil
}

func rebuild(db *DB, records []store.Record, mtime, size int64) (int, error) {
	tx, err := db.Raw().Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM sessions"); err != nil {
		return 0, err
	}

	stmt, err := tx.Prepare(
		`INSERT INTO sessions (seq, subject, duration, timestamp, started_at, day, month)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	indexed := 0
	for i, r := range records {
		t, err := r.Time()
		if err != nil {
			continue
		}
		started := t.Add(-time.Duration(r.Duration) * time.Second)
		_, err = stmt.Exec(
			i,
			r.Subject,
			r.Duration,
			t.Format(time.RFC3339),
			started.Format(time.RFC3339),
			t.Format("2006-01-02"),
			t.Format("2006-01"),
		)
		if err != nil {
			return 0, err
		}
		indexed++
	}

	if err := db.setMeta(tx, "source_mtime", strconv.FormatInt(mtime, 10)); err != nil {
		return 0, err
	}
	if err := db.setMeta(tx, "source_size", strconv.FormatInt(size, 10)); err != nil {
		return 0, err
	}
	return indexed, tx.Commit()
}

// Consistency compares the indexable part of the study log with the index.
// Records with an unparseable timestamp are never indexed, so they are counted
// apart instead of as a difference.
type Consistency struct {
	LogSessions   int
	LogSeconds    int
	IndexSessions int
	IndexSeconds  int
	Unindexable   int
}

func (c Consistency) InSync() bool {
	return c.LogSessions == c.IndexSessions && c.LogSeconds == c.IndexSeconds
}

func Compare(db *DB, records []store.Record) (Consistency, error) {
	var c Consistency
	for _, r := range records {
		if _, err := r.Time(); err != nil {
			c.Unindexable++
			continue
		}
		c.LogSessions++
		c.LogSeconds += r.Duration
	}

	var err error
	if c.IndexSessions, err = db.SessionCount(); err != nil {
		return c, fmt.Errorf("count sessions: %w", err)
	}
	if c.IndexSeconds, err = db.TotalDuration(); err != nil {
		return c, fmt.Errorf("sum durations: %w", err)
	}
	return c, nil
}
