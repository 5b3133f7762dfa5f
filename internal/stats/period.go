package stats

import (
	"fmt"
	"strings"
	"time"

	"github.com/Zuo-Peng/study-tracker/internal/store"
)

type Period int

const (
	Daily Period = iota
	Weekly
	Lifetime
)

// Periods lists the periods in the order the dashboard cycles through them.
var Periods = []Period{Daily, Weekly, Lifetime}

func (p Period) String() string {
	switch p {
	case Daily:
		return "Daily"
	case Weekly:
		return "Weekly"
	case Lifetime:
		return "Lifetime"
	default:
		return fmt.Sprintf("Period(%d)", int(p))
	}
}

// Next returns the period after p, wrapping around.
func (p Period) Next() Period {
	return Periods[(int(p)+1)%len(Periods)]
}

func ParsePeriod(s string) (Period, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "daily", "day", "today":
		return Daily, nil
	case "weekly", "week":
		return Weekly, nil
	case "lifetime", "all", "":
		return Lifetime, nil
	default:
		return 0, fmt.Errorf("unknown period %q (want daily, weekly or lifetime)", s)
	}
}

// Filter keeps the records that fall in p relative to now. Daily is today's
// calendar date, Weekly the last seven calendar days including today.
func Filter(log []store.Record, p Period, now time.Time) []store.Record {
	if p == Lifetime {
		return log
	}

	today := Day(now)
	var cutoff time.Time
	if p == Daily {
		cutoff = today
	} else {
		cutoff = today.AddDate(0, 0, -6)
	}

	var out []store.Record
	for _, r := range log {
		t, err := r.Time()
		if err != nil {
			continue
		}
		d := Day(t)
		if !d.Before(cutoff) && !d.After(today) {
			out = append(out, r)
		}
	}
	return out
}

// Report gathers everything the dashboard and the stats command show for a
// period.
type Report struct {
	Period   Period
	Subject  string // subject filter, empty for none
	Total    int
	Average  float64
	Count    int
	Daily    []DayTotal
	Subjects []SubjectTotal
	Monthly  []MonthTotal
	Top      *SubjectTotal
	Longest  *store.Record
}

// Build reduces log to a Report for period p. A non-empty subject narrows
// every view of the report to that subject.
func Build(log []store.Record, p Period, subject string, now time.Time) Report {
	records := Filter(log, p, now)
	if subject != "" {
		matching := records[:0:0]
		for _, r := range records {
			if r.Subject == subject {
				matching = append(matching, r)
			}
		}
		records = matching
	}

	rep := Report{
		Period:   p,
		Subject:  subject,
		Count:    len(records),
		Daily:    DailyTotals(records),
		Subjects: SubjectTotals(records),
		Monthly:  MonthlyTotals(records),
	}
	rep.Total, rep.Average = Aggregate(records, "")
	if top, ok := TopSubject(records); ok {
		rep.Top = &top
	}
	if longest, ok := LongestSession(records); ok {
		rep.Longest = &longest
	}
	return rep
}
