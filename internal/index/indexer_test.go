package index

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zuo-Peng/study-tracker/internal/store"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenDB(filepath.Join(t.TempDir(), "db", "stt.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpenDB_SetsSchemaVersion(t *testing.T) {
	db := openTestDB(t)
	ver, err := db.meta("schema_version")
	require.NoError(t, err)
	assert.Equal(t, schemaVersion, ver)

	info, err := db.GetSourceInfo()
	require.NoError(t, err)
	assert.Nil(t, info)
}

func TestSync_MissingLog(t *testing.T) {
	db := openTestDB(t)
	st := store.New(filepath.Join(t.TempDir(), "study_data.json"), nil)

	stats, err := Sync(db, st, nil)
	require.NoError(t, err)
	assert.True(t, stats.Rebuilt)
	assert.Zero(t, stats.Records)

	stats, err = Sync(db, st, nil)
	require.NoError(t, err)
	assert.False(t, stats.Rebuilt)
}

func TestSync_IndexesAndSkipsUnchanged(t *testing.T) {
	db := openTestDB(t)
	st := store.New(filepath.Join(t.TempDir(), "study_data.json"), nil)

	at := time.Date(2024, 3, 10, 9, 30, 0, 0, time.Local)
	require.NoError(t, st.Save([]store.Record{
		store.NewRecord("Math", 1500, at),
		{Subject: "Broken", Duration: 10, Timestamp: "???"},
		store.NewRecord("Physics", 600, at.AddDate(0, 1, 0)),
	}))

	stats, err := Sync(db, st, nil)
	require.NoError(t, err)
	assert.Equal(t, Stats{Records: 3, Indexed: 2, Skipped: 1, Rebuilt: true}, stats)

	n, err := db.SessionCount()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	total, err := db.TotalDuration()
	require.NoError(t, err)
	assert.Equal(t, 2100, total)

	var row SessionRow
	err = db.Raw().QueryRow(
		"SELECT seq, subject, duration, timestamp, started_at, day, month FROM sessions WHERE subject = 'Math'",
	).Scan(&row.Seq, &row.Subject, &row.Duration, &row.Timestamp, &row.StartedAt, &row.Day, &row.Month)
	require.NoError(t, err)
	assert.Equal(t, 0, row.Seq)
	assert.Equal(t, "2024-03-10", row.Day)
	assert.Equal(t, "2024-03", row.Month)
	assert.Equal(t, at.Add(-25*time.Minute).Format(time.RFC3339), row.StartedAt)

	stats, err = Sync(db, st, nil)
	require.NoError(t, err)
	assert.False(t, stats.Rebuilt)
	assert.Equal(t, 2, stats.Indexed)
}

func TestSync_RebuildsOnChange(t *testing.T) {
	db := openTestDB(t)
	path := filepath.Join(t.TempDir(), "study_data.json")
	st := store.New(path, nil)

	at := time.Date(2024, 3, 10, 9, 30, 0, 0, time.Local)
	_, err := st.Append(store.NewRecord("Math", 60, at))
	require.NoError(t, err)
	_, err = Sync(db, st, nil)
	require.NoError(t, err)

	_, err = st.Append(store.NewRecord("Math", 120, at.Add(time.Hour)))
	require.NoError(t, err)
	// make sure the mtime moves even on coarse filesystems
	future := time.Now().Add(time.Minute)
	require.NoError(t, os.Chtimes(path, future, future))

	stats, err := Sync(db, st, nil)
	require.NoError(t, err)
	assert.True(t, stats.Rebuilt)
	assert.Equal(t, 2, stats.Indexed)
}

func TestStatsString(t *testing.T) {
	s := Stats{Records: 3, Indexed: 2, Skipped: 1, Rebuilt: true}
	assert.Equal(t, "records=3 indexed=2 skipped=1 rebuilt=true", s.String())
}

func TestCompare_IgnoresUnindexableRecords(t *testing.T) {
	db := openTestDB(t)
	st := store.New(filepath.Join(t.TempDir(), "study_data.json"), nil)

	at := time.Date(2024, 3, 10, 9, 30, 0, 0, time.Local)
	records := []store.Record{
		store.NewRecord("Math", 1500, at),
		{Subject: "Broken", Duration: 10, Timestamp: "???"},
	}
	require.NoError(t, st.Save(records))
	_, err := Sync(db, st, nil)
	require.NoError(t, err)

	c, err := Compare(db, st.Load())
	require.NoError(t, err)
	assert.True(t, c.InSync(), "a skipped record is not a mismatch: %+v", c)
	assert.Equal(t, 1, c.Unindexable)
	assert.Equal(t, 1500, c.LogSeconds)
	assert.Equal(t, 1500, c.IndexSeconds)

	records = append(records, store.NewRecord("Physics", 600, at.Add(time.Hour)))
	c, err = Compare(db, records)
	require.NoError(t, err)
	assert.False(t, c.InSync(), "a record missing from the index is reported")
	assert.Equal(t, 2, c.LogSessions)
	assert.Equal(t, 1, c.IndexSessions)
}
