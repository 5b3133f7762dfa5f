package store

import (
	"fmt"
	"time"
)

// Record is one finished study session as it appears in the study log.
type Record struct {
	Subject   string `json:"subject" yaml:"subject"`
	Duration  int    `json:"duration" yaml:"duration"` // seconds
	Timestamp string `json:"timestamp" yaml:"timestamp"`
}

// timestampLayouts are tried in order. Layouts without an offset are read as
// local time, which is how older logs were written.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
}

// NewRecord builds a record stamped at t.
func NewRecord(subject string, duration int, t time.Time) Record {
	if duration < 0 {
		duration = 0
	}
	return Record{
		Subject:   subject,
		Duration:  duration,
		Timestamp: t.Format(time.RFC3339),
	}
}

// Time parses the record timestamp.
func (r Record) Time() (time.Time, error) {
	for _, layout := range timestampLayouts {
		var (
			t   time.Time
			err error
		)
		if layout == time.RFC3339Nano {
			t, err = time.Parse(layout, r.Timestamp)
		} else {
			t, err = time.ParseInLocation(layout, r.Timestamp, time.Local)
		}
		if err == nil {
			return t.Local(), nil
		}
	}
	return time.Time{}, fmt.Errorf("parse timestamp %q", r.Timestamp)
}
