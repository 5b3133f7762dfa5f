package history_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zuo-Peng/study-tracker/internal/history"
	"github.com/Zuo-Peng/study-tracker/internal/index"
	"github.com/Zuo-Peng/study-tracker/internal/store"
)

func seed(t *testing.T) *index.DB {
	t.Helper()
	dir := t.TempDir()

	db, err := index.OpenDB(filepath.Join(dir, "stt.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	day := func(m time.Month, d int) time.Time {
		return time.Date(2024, m, d, 10, 0, 0, 0, time.Local)
	}
	st := store.New(filepath.Join(dir, "study_data.json"), nil)
	require.NoError(t, st.Save([]store.Record{
		store.NewRecord("Math", 600, day(3, 1)),
		store.NewRecord("Physics", 1200, day(3, 1)),
		store.NewRecord("Math", 300, day(3, 2)),
		store.NewRecord("Biology", 900, day(4, 5)),
	}))
	_, err = index.Sync(db, st, nil)
	require.NoError(t, err)
	return db
}

func subjects(rs []history.Result) []string {
	var out []string
	for _, r := range rs {
		out = append(out, r.Subject)
	}
	return out
}

func TestList(t *testing.T) {
	db := seed(t)

	all, err := history.List(db, history.Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Biology", "Math", "Physics", "Math"}, subjects(all), "newest first")
	assert.Equal(t, 3, all[0].Seq)
	assert.Equal(t, "2024-04-05", all[0].Day)

	math, err := history.List(db, history.Options{Subject: "Math"})
	require.NoError(t, err)
	assert.Len(t, math, 2)

	march, err := history.List(db, history.Options{Since: "2024-03-02", Until: "2024-03-31"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Math"}, subjects(march))

	limited, err := history.List(db, history.Options{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"Biology", "Math"}, subjects(limited))
}

func TestTotals(t *testing.T) {
	db := seed(t)

	bySubject, err := history.Totals(db, history.Options{}, history.BySubject)
	require.NoError(t, err)
	assert.Equal(t, []history.Total{
		{Key: "Physics", Seconds: 1200, Sessions: 1},
		{Key: "Biology", Seconds: 900, Sessions: 1},
		{Key: "Math", Seconds: 900, Sessions: 2},
	}, bySubject)

	byDay, err := history.Totals(db, history.Options{Subject: "Math"}, history.ByDay)
	require.NoError(t, err)
	assert.Equal(t, []history.Total{
		{Key: "2024-03-01", Seconds: 600, Sessions: 1},
		{Key: "2024-03-02", Seconds: 300, Sessions: 1},
	}, byDay)

	byMonth, err := history.Totals(db, history.Options{}, history.ByMonth)
	require.NoError(t, err)
	assert.Equal(t, []history.Total{
		{Key: "2024-03", Seconds: 2100, Sessions: 3},
		{Key: "2024-04", Seconds: 900, Sessions: 1},
	}, byMonth)

	_, err = history.Totals(db, history.Options{}, history.GroupBy("duration; DROP TABLE sessions"))
	assert.Error(t, err)
}

func TestParseGroupBy(t *testing.T) {
	g, err := history.ParseGroupBy("Subject")
	require.NoError(t, err)
	assert.Equal(t, history.BySubject, g)

	_, err = history.ParseGroupBy("week")
	assert.Error(t, err)
}
