// Package history answers listing and grouping queries against the session
// index.
package history

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/Zuo-Peng/study-tracker/internal/index"
)

type Result struct {
	Seq       int
	Subject   string
	Duration  int
	Timestamp string
	Day       string
}

type Options struct {
	Subject string // "" = all
	Since   string // "" = no filter, e.g. "2024-01-01"
	Until   string // inclusive, same format as Since
	Limit   int    // 0 = no limit
}

// GroupBy selects the key for Totals.
type GroupBy string

const (
	ByDay     GroupBy = "day"
	BySubject GroupBy = "subject"
	ByMonth   GroupBy = "month"
)

func ParseGroupBy(s string) (GroupBy, error) {
	switch g := GroupBy(strings.ToLower(s)); g {
	case ByDay, BySubject, ByMonth:
		return g, nil
	default:
		return "", fmt.Errorf("unknown grouping %q (want day, subject or month)", s)
	}
}

type Total struct {
	Key      string
	Seconds  int
	Sessions int
}

func where(opts Options) (string, []any) {
	conditions := []string{"1 = 1"}
	var args []any

	// subject filter
	if opts.Subject != "" {
		conditions = append(conditions, "subject = ?")
		args = append(args, opts.Subject)
	}

	// since filter
	if opts.Since != "" {
		conditions = append(conditions, "day >= ?")
		args = append(args, opts.Since)
	}

	// until filter
	if opts.Until != "" {
		conditions = append(conditions, "day <= ?")
		args = append(args, opts.Until)
	}

	return strings.Join(conditions, " AND "), args
}

// List returns matching sessions, newest first.
func List(db *index.DB, opts Options) ([]Result, error) {
	w, args := where(opts)
	query := fmt.Sprintf(`
		SELECT seq, subject, duration, timestamp, day
		FROM sessions
		WHERE %s
		ORDER BY seq DESC
	`, w)
	if opts.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := db.Raw().Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("history query: %w", err)
	}
	defer rows.Close()

	return scanResults(rows)
}

// Totals sums matching sessions per group. Days and months come oldest
// first; subjects largest first.
func Totals(db *index.DB, opts Options, by GroupBy) ([]Total, error) {
	switch by {
	case ByDay, BySubject, ByMonth:
	default:
		return nil, fmt.Errorf("unknown grouping %q", by)
	}

	order := "grp"
	if by == BySubject {
		order = "secs DESC, grp"
	}
	w, args := where(opts)
	query := fmt.Sprintf(`
		SELECT %s AS grp, SUM(duration) AS secs, COUNT(*)
		FROM sessions
		WHERE %s
		GROUP BY grp
		ORDER BY %s
	`, string(by), w, order)
	if opts.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := db.Raw().Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("totals query: %w", err)
	}
	defer rows.Close()

	var totals []Total
	for rows.Next() {
		var t Total
		if err := rows.Scan(&t.Key, &t.Seconds, &t.Sessions); err != nil {
			return nil, err
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}

func scanResults(rows *sql.Rows) ([]Result, error) {
	var results []Result
	for rows.Next() {
		var r Result
		if err := rows.Scan(&r.Seq, &r.Subject, &r.Duration, &r.Timestamp, &r.Day); err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
