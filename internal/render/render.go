package render

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	colorReset   = "\033[0m"
	colorBar     = "\033[1;34m" // bold blue
	colorSubject = "\033[1;32m" // bold green
	colorDim     = "\033[2m"
	colorTitle   = "\033[1m"
	colorHit     = "\033[1;33m" // bold yellow
)

// FormatTime renders seconds as HH:MM:SS. Hours widen past 99; negative
// input renders as zero.
func FormatTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// FormatHours renders seconds as fractional hours, e.g. "1.5h".
func FormatHours(seconds int) string {
	return fmt.Sprintf("%.1fh", float64(seconds)/3600)
}

// Bar draws a horizontal bar of at most width cells, proportional to
// value/max.
func Bar(value, max, width int) string {
	if width <= 0 {
		return ""
	}
	filled := 0
	if max > 0 && value > 0 {
		filled = value * width / max
		if filled == 0 {
			filled = 1
		}
		if filled > width {
			filled = width
		}
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// Row is one labelled bar in a chart.
type Row struct {
	Label   string
	Seconds int
	Note    string // appended after the value, e.g. a percentage
}

// Chart renders rows as aligned labelled bars. width is the whole line width;
// labels are truncated to fit.
func Chart(rows []Row, width int, color bool) string {
	if len(rows) == 0 {
		return ""
	}

	labelW := 0
	maxSecs := 0
	for _, r := range rows {
		if w := runewidth.StringWidth(r.Label); w > labelW {
			labelW = w
		}
		if r.Seconds > maxSecs {
			maxSecs = r.Seconds
		}
	}
	if labelW > 16 {
		labelW = 16
	}

	// label + space + bar + space + HH:MM:SS + note
	barW := width - labelW - 2 - 8 - 8
	if barW < 5 {
		barW = 5
	}

	var b strings.Builder
	for _, r := range rows {
		label := runewidth.Truncate(r.Label, labelW, "…")
		label = runewidth.FillRight(label, labelW)
		bar := Bar(r.Seconds, maxSecs, barW)
		if color {
			label = colorSubject + label + colorReset
			bar = colorBar + bar + colorReset
		}
		line := fmt.Sprintf("%s %s %s", label, bar, FormatTime(r.Seconds))
		if r.Note != "" {
			line += " " + r.Note
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
