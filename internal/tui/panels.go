package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/Zuo-Peng/study-tracker/internal/quote"
	"github.com/Zuo-Peng/study-tracker/internal/render"
	"github.com/Zuo-Peng/study-tracker/internal/stats"
)

// newViewport creates the stats panel viewport with the given dimensions.
func newViewport(width, height int) viewport.Model {
	vp := viewport.New(width, height-1) // one row for the period tabs
	return vp
}

// renderHeader renders the quote of the day and the lifetime total.
func (m model) renderHeader(now time.Time, width int) string {
	q := styleQuote.Render(runewidth.Truncate(`"`+quote.Daily(now)+`"`, width, "…"))
	total, _ := stats.Aggregate(m.log, "")
	return lipgloss.JoinVertical(lipgloss.Left,
		q,
		styleTotal.Render("Total Study Time: "+render.FormatTime(total)),
	)
}

// renderTimer renders the timer box: state, clock, progress and streak.
//
//	Studying Math                 25 min
//	████████████░░░░░░░░░░░░░░░░░░░░░░░░
//	         00:13:42 left
//	🔥 3 Day Streak!
func (m model) renderTimer(now time.Time, width int) string {
	s := m.state
	var lines []string

	status := styleTitle.Render("Idle")
	if s.Running() {
		status = styleListActive.Render("Studying " + s.Subject)
	}
	pomodoro := styleTitle.Render(fmt.Sprintf("%d min", s.PomodoroMinutes))
	gap := width - lipgloss.Width(status) - lipgloss.Width(pomodoro)
	if gap < 1 {
		gap = 1
	}
	lines = append(lines, status+strings.Repeat(" ", gap)+pomodoro)

	lines = append(lines, styleProgress.Render(progressBar(s.Progress(now), width)))

	clock := styleClock.Render(render.FormatTime(int(s.Remaining(now) / time.Second)))
	if s.Running() {
		clock = styleClockRunning.Render(render.FormatTime(int(s.Remaining(now)/time.Second)) + " left")
	}
	lines = append(lines, lipgloss.PlaceHorizontal(width, lipgloss.Center, clock))

	if m.celebrate {
		lines = append(lines, lipgloss.PlaceHorizontal(width, lipgloss.Center,
			styleCelebrate.Render("🎉 Great job! Take a break!")))
	}
	if s.Streak > 0 {
		lines = append(lines, styleStreak.Render(fmt.Sprintf("🔥 %d Day Streak!", s.Streak)))
	}

	style := stylePanelBorder
	if s.Running() {
		style = styleActiveBorder
	}
	return style.Width(width).Render(strings.Join(lines, "\n"))
}

// progressBar draws the completed fraction p of width cells.
func progressBar(p float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(p * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// renderSubjects renders the subject list with the cursor, scrolling so the
// cursor stays visible.
func (m model) renderSubjects(width, height int) string {
	subjects := m.state.Subjects
	if len(subjects) == 0 {
		return lipgloss.NewStyle().
			Foreground(colorDim).
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render("No subjects (press a to add)")
	}

	offset := 0
	if m.cursor >= height {
		offset = m.cursor - height + 1
	}

	var lines []string
	for i := offset; i < len(subjects) && len(lines) < height; i++ {
		name := runewidth.Truncate(subjects[i], width-4, "…")
		var line string
		switch {
		case i == m.cursor:
			line = styleListSelected.Render("> " + name)
		default:
			line = "  " + styleListNormal.Render(name)
		}
		if m.state.Running() && subjects[i] == m.state.Subject {
			line += styleListActive.Render(" ●")
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// renderPeriodTabs renders the period selector above the stats panel.
func (m model) renderPeriodTabs() string {
	var tabs []string
	for i, p := range stats.Periods {
		label := fmt.Sprintf("%d %s", i+1, p)
		if p == m.period {
			tabs = append(tabs, styleListSelected.Render("["+label+"]"))
		} else {
			tabs = append(tabs, styleTitle.Render(" "+label+" "))
		}
	}
	return strings.Join(tabs, " ")
}
