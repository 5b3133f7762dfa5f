package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Zuo-Peng/study-tracker/internal/stats"
	"github.com/Zuo-Peng/study-tracker/internal/store"
)

func TestFormatTime(t *testing.T) {
	assert.Equal(t, "01:01:01", FormatTime(3661))
	assert.Equal(t, "00:00:00", FormatTime(0))
	assert.Equal(t, "00:25:00", FormatTime(1500))
	assert.Equal(t, "100:00:00", FormatTime(360000))
	assert.Equal(t, "00:00:00", FormatTime(-10))
}

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "1.5h", FormatHours(5400))
	assert.Equal(t, "0.0h", FormatHours(0))
}

func TestBar(t *testing.T) {
	assert.Equal(t, "█████░░░░░", Bar(5, 10, 10))
	assert.Equal(t, "██████████", Bar(20, 10, 10))
	assert.Equal(t, "░░░░░", Bar(0, 10, 5))
	assert.Equal(t, "█░░░░", Bar(1, 1000, 5), "non-zero values show at least one cell")
	assert.Equal(t, "", Bar(1, 1, 0))
}

func TestChart_AlignsLabels(t *testing.T) {
	out := Chart([]Row{
		{Label: "Math", Seconds: 3600},
		{Label: "Chemistry", Seconds: 1800, Note: "33.3%"},
	}, 50, false)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "Math      "))
	assert.Contains(t, lines[0], "01:00:00")
	assert.True(t, strings.HasSuffix(lines[1], "00:30:00 33.3%"))
	assert.Equal(t, strings.Index(lines[0], "█"), strings.Index(lines[1], "█"))
	assert.Empty(t, Chart(nil, 50, false))
}

func TestReport_Lifetime(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.Local)
	log := []store.Record{
		store.NewRecord("Math", 3600, now.AddDate(0, -1, 0)),
		store.NewRecord("Physics", 1800, now),
	}
	out := Report(stats.Build(log, stats.Lifetime, "", now), Options{Width: 60})

	assert.Contains(t, out, "Lifetime statistics")
	assert.Contains(t, out, "Total study time  01:30:00")
	assert.Contains(t, out, "Average session   00:45:00")
	assert.Contains(t, out, "Monthly trend")
	assert.Contains(t, out, "2024-02")
	assert.Contains(t, out, "Most studied subject  Math (01:00:00)")
	assert.Contains(t, out, "Longest session       01:00:00 (Math)")
	assert.NotContains(t, out, "\033[", "no colors unless asked")
}

func TestReport_EmptyDaily(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.Local)
	out := Report(stats.Build(nil, stats.Daily, "", now), Options{Color: true})
	assert.Contains(t, out, "No study sessions recorded today")
	assert.Contains(t, out, colorTitle)
}

func TestReport_WeeklyShowsDays(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.Local)
	log := []store.Record{store.NewRecord("Math", 600, now.AddDate(0, 0, -1))}
	out := Report(stats.Build(log, stats.Weekly, "", now), Options{})
	assert.Contains(t, out, "Last 7 days")
	assert.Contains(t, out, "Sat 03-09")
	assert.Contains(t, out, "100.0%")
}

func TestSummaryAndTSV(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.Local)
	log := []store.Record{store.NewRecord("Math", 600, now), store.NewRecord("Art", 60, now)}
	rep := stats.Build(log, stats.Daily, "", now)

	assert.Equal(t, "Daily: 00:11:00 studied over 2 sessions | Math 00:10:00 | Art 00:01:00", Summary(rep))

	tsv := TSV(rep)
	assert.Contains(t, tsv, "total\t660\n")
	assert.Contains(t, tsv, "average\t330.0\n")
	assert.Contains(t, tsv, "subject\tMath\t600\n")
	assert.Contains(t, tsv, "day\t2024-03-10\t660\n")
}
