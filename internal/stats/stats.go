// Package stats reduces a study log into totals, averages and grouped views.
package stats

import (
	"sort"
	"time"

	"github.com/Zuo-Peng/study-tracker/internal/store"
)

// Aggregate sums durations over records for subject (every record when
// subject is empty) and returns the total with the mean per record.
func Aggregate(log []store.Record, subject string) (int, float64) {
	total, count := 0, 0
	for _, r := range log {
		if subject != "" && r.Subject != subject {
			continue
		}
		total += r.Duration
		count++
	}
	if count == 0 {
		return total, 0
	}
	return total, float64(total) / float64(count)
}

type DayTotal struct {
	Date    time.Time // local midnight
	Seconds int
}

type SubjectTotal struct {
	Subject string
	Seconds int
}

type MonthTotal struct {
	Month   string // YYYY-MM
	Seconds int
}

// DailyTotals groups durations by calendar date, oldest first. Records with
// an unparseable timestamp are skipped.
func DailyTotals(log []store.Record) []DayTotal {
	byDay := make(map[time.Time]int)
	for _, r := range log {
		t, err := r.Time()
		if err != nil {
			continue
		}
		byDay[Day(t)] += r.Duration
	}

	out := make([]DayTotal, 0, len(byDay))
	for d, s := range byDay {
		out = append(out, DayTotal{Date: d, Seconds: s})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// SubjectTotals groups durations by subject, largest first, ties by name.
func SubjectTotals(log []store.Record) []SubjectTotal {
	bySubject := make(map[string]int)
	for _, r := range log {
		bySubject[r.Subject] += r.Duration
	}

	out := make([]SubjectTotal, 0, len(bySubject))
	for s, secs := range bySubject {
		out = append(out, SubjectTotal{Subject: s, Seconds: secs})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Seconds != out[j].Seconds {
			return out[i].Seconds > out[j].Seconds
		}
		return out[i].Subject < out[j].Subject
	})
	return out
}

// MonthlyTotals groups durations by calendar month, oldest first.
func MonthlyTotals(log []store.Record) []MonthTotal {
	byMonth := make(map[string]int)
	for _, r := range log {
		t, err := r.Time()
		if err != nil {
			continue
		}
		byMonth[t.Format("2006-01")] += r.Duration
	}

	out := make([]MonthTotal, 0, len(byMonth))
	for m, s := range byMonth {
		out = append(out, MonthTotal{Month: m, Seconds: s})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// TopSubject returns the subject with the largest total.
func TopSubject(log []store.Record) (SubjectTotal, bool) {
	totals := SubjectTotals(log)
	if len(totals) == 0 {
		return SubjectTotal{}, false
	}
	return totals[0], true
}

// LongestSession returns the record with the largest duration; the earliest
// such record wins.
func LongestSession(log []store.Record) (store.Record, bool) {
	if len(log) == 0 {
		return store.Record{}, false
	}
	best := log[0]
	for _, r := range log[1:] {
		if r.Duration > best.Duration {
			best = r
		}
	}
	return best, true
}

// Day truncates t to local midnight.
func Day(t time.Time) time.Time {
	t = t.Local()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}
