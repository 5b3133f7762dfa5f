package render

import (
	"fmt"
	"strings"

	"github.com/Zuo-Peng/study-tracker/internal/stats"
)

type Options struct {
	Width int  // line width for charts (0 = 60)
	Color bool // emit ANSI colors
}

// Report renders a period report: summary metrics, then the charts the
// period calls for.
func Report(rep stats.Report, opts Options) string {
	if opts.Width <= 0 {
		opts.Width = 60
	}

	var b strings.Builder
	title := func(s string) {
		if opts.Color {
			s = colorTitle + s + colorReset
		}
		b.WriteString(s)
		b.WriteString("\n")
	}
	dim := func(s string) string {
		if opts.Color {
			return colorDim + s + colorReset
		}
		return s
	}

	heading := fmt.Sprintf("%s statistics", rep.Period)
	if rep.Subject != "" {
		heading += " for " + rep.Subject
	}
	title(heading)
	fmt.Fprintf(&b, "  Total study time  %s\n", FormatTime(rep.Total))
	fmt.Fprintf(&b, "  Average session   %s\n", FormatTime(int(rep.Average)))
	fmt.Fprintf(&b, "  Sessions          %d\n", rep.Count)

	if len(rep.Subjects) == 0 {
		b.WriteString("\n")
		b.WriteString(dim(emptyMessage(rep.Period)))
		b.WriteString("\n")
		return b.String()
	}

	switch rep.Period {
	case stats.Weekly:
		b.WriteString("\n")
		title("Last 7 days")
		b.WriteString(Chart(dayRows(rep.Daily), opts.Width, opts.Color))
	case stats.Lifetime:
		b.WriteString("\n")
		title("Monthly trend")
		b.WriteString(Chart(monthRows(rep.Monthly), opts.Width, opts.Color))
	}

	b.WriteString("\n")
	title("Subject distribution")
	b.WriteString(Chart(subjectRows(rep.Subjects), opts.Width, opts.Color))

	if rep.Period == stats.Lifetime {
		b.WriteString("\n")
		if rep.Top != nil {
			fmt.Fprintf(&b, "Most studied subject  %s (%s)\n", highlight(rep.Top.Subject, opts.Color), FormatTime(rep.Top.Seconds))
		}
		if rep.Longest != nil {
			fmt.Fprintf(&b, "Longest session       %s (%s)\n", highlight(FormatTime(rep.Longest.Duration), opts.Color), rep.Longest.Subject)
		}
	}
	return b.String()
}

func emptyMessage(p stats.Period) string {
	switch p {
	case stats.Daily:
		return "No study sessions recorded today. Time to start studying!"
	case stats.Weekly:
		return "No study sessions recorded in the last week. Let's change that!"
	default:
		return "No study sessions recorded yet. Start your first session to see statistics!"
	}
}

func highlight(s string, color bool) string {
	if color {
		return colorHit + s + colorReset
	}
	return s
}

func dayRows(days []stats.DayTotal) []Row {
	rows := make([]Row, 0, len(days))
	for _, d := range days {
		rows = append(rows, Row{Label: d.Date.Format("Mon 01-02"), Seconds: d.Seconds, Note: FormatHours(d.Seconds)})
	}
	return rows
}

func monthRows(months []stats.MonthTotal) []Row {
	rows := make([]Row, 0, len(months))
	for _, m := range months {
		rows = append(rows, Row{Label: m.Month, Seconds: m.Seconds, Note: FormatHours(m.Seconds)})
	}
	return rows
}

func subjectRows(subjects []stats.SubjectTotal) []Row {
	sum := 0
	for _, s := range subjects {
		sum += s.Seconds
	}
	rows := make([]Row, 0, len(subjects))
	for _, s := range subjects {
		pct := 0.0
		if sum > 0 {
			pct = float64(s.Seconds) * 100 / float64(sum)
		}
		rows = append(rows, Row{Label: s.Subject, Seconds: s.Seconds, Note: fmt.Sprintf("%5.1f%%", pct)})
	}
	return rows
}

// Summary is a one-paragraph plain-text digest of a report, suitable for the
// clipboard.
func Summary(rep stats.Report) string {
	var parts []string
	parts = append(parts, fmt.Sprintf("%s: %s studied over %d sessions", rep.Period, FormatTime(rep.Total), rep.Count))
	for _, s := range rep.Subjects {
		parts = append(parts, fmt.Sprintf("%s %s", s.Subject, FormatTime(s.Seconds)))
	}
	return strings.Join(parts, " | ")
}

// TSV renders the subject distribution as tab-separated lines for pipes.
func TSV(rep stats.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "total\t%d\n", rep.Total)
	fmt.Fprintf(&b, "average\t%.1f\n", rep.Average)
	fmt.Fprintf(&b, "sessions\t%d\n", rep.Count)
	for _, s := range rep.Subjects {
		fmt.Fprintf(&b, "subject\t%s\t%d\n", s.Subject, s.Seconds)
	}
	for _, d := range rep.Daily {
		fmt.Fprintf(&b, "day\t%s\t%d\n", d.Date.Format("2006-01-02"), d.Seconds)
	}
	return b.String()
}
