package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/Zuo-Peng/study-tracker/internal/render"
	"github.com/Zuo-Peng/study-tracker/internal/stats"
	"github.com/Zuo-Peng/study-tracker/internal/store"
	"github.com/Zuo-Peng/study-tracker/internal/timer"
)

const tickInterval = time.Second

type inputMode int

const (
	inputNone inputMode = iota
	inputAddSubject
	inputAdjust
)

// message types

type tickMsg time.Time

// savedMsg is sent when a snapshot of the log has been written.
type savedMsg struct {
	records int
	err     error
}

type copiedMsg struct {
	err error
}

// Options configures the dashboard.
type Options struct {
	Store            *store.Store
	State            timer.State
	RecordOnComplete bool
	Logger           *zap.Logger
}

// model

type model struct {
	store            *store.Store
	logger           *zap.Logger
	recordOnComplete bool
	now              func() time.Time
	tick             func() tea.Cmd

	state     timer.State
	log       []store.Record
	period    stats.Period
	cursor    int
	mode      inputMode
	input     textinput.Model
	statsView viewport.Model
	help      help.Model
	flash     string
	flashWarn bool
	celebrate bool
	width     int
	height    int
	ready     bool
	quitting  bool
	err       error // fatal, returned from Run

	// At most one save runs at a time. Records added meanwhile mark the log
	// dirty and are written by a follow-up save.
	saving        bool
	dirty         bool
	quitAfterSave bool
}

func newModel(opts Options) model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	ti := textinput.New()
	ti.Prompt = "> "
	ti.PromptStyle = styleInputPrompt
	ti.TextStyle = styleInput
	ti.CharLimit = 64

	return model{
		store:            opts.Store,
		logger:           logger,
		recordOnComplete: opts.RecordOnComplete,
		now:              time.Now,
		tick:             tickCmd,
		state:            opts.State,
		log:              opts.Store.Load(),
		period:           stats.Daily,
		input:            ti,
		statsView:        viewport.New(0, 0),
		help:             help.New(),
	}
}

// Run starts the dashboard and blocks until it exits. A failed save ends the
// program and is returned.
func Run(opts Options) error {
	m := newModel(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	fm := finalModel.(model)
	if fm.err != nil {
		return fm.err
	}
	if fm.state.Running() {
		// sessions are only recorded on stop or completion
		fm.logger.Info("dashboard closed with a running timer",
			zap.String("subject", fm.state.Subject),
			zap.Duration("elapsed", fm.state.Elapsed(fm.now())))
	}
	return nil
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// saveCmd writes a snapshot of the whole log off the update loop.
func saveCmd(st *store.Store, log []store.Record) tea.Cmd {
	return func() tea.Msg {
		return savedMsg{records: len(log), err: st.Save(log)}
	}
}

func copyCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}

// Init starts the refresh tick.
func (m model) Init() tea.Cmd {
	return m.tick()
}

// Update handles messages.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.help.Width = msg.Width
		m.statsView = newViewport(m.statsWidth(), m.panelHeight())
		m.refreshStats()
		return m, nil

	case tickMsg:
		var cmds []tea.Cmd
		next, done := m.state.Tick(m.now())
		m.state = next
		if done != nil {
			m.celebrate = true
			m.setFlash("Great job! Take a break!", false)
			m.logger.Info("pomodoro completed",
				zap.String("subject", done.Subject),
				zap.Int("streak", m.state.Streak))
			if m.recordOnComplete {
				cmds = append(cmds, m.record(done.Record))
			}
		}
		cmds = append(cmds, m.tick())
		return m, tea.Batch(cmds...)

	case savedMsg:
		if msg.err != nil {
			m.logger.Error("save session", zap.Error(msg.err))
			m.err = msg.err
			m.quitting = true
			return m, tea.Quit
		}
		m.saving = false
		m.logger.Info("study log saved", zap.Int("records", msg.records))
		if m.dirty {
			m.dirty = false
			cmd := m.persist()
			return m, cmd
		}
		if m.quitAfterSave {
			m.quitting = true
			return m, tea.Quit
		}
		if !m.celebrate {
			m.setFlash("Session saved", false)
		}
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.setFlash("Copy failed: "+msg.err.Error(), true)
		} else {
			m.setFlash("Summary copied to clipboard", false)
		}
		return m, nil

	case tea.KeyMsg:
		if m.mode != inputNone {
			return m.updateInput(msg)
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	now := m.now()

	switch {
	case key.Matches(msg, keys.Quit):
		if m.saving || m.dirty {
			m.quitAfterSave = true
			m.setFlash("Saving...", false)
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, keys.Down):
		if m.cursor < len(m.state.Subjects)-1 {
			m.cursor++
		}

	case key.Matches(msg, keys.Start):
		subject, ok := m.selectedSubject()
		if !ok {
			m.setFlash("Add a subject first", true)
			return m, nil
		}
		next, err := m.state.Start(subject, now)
		if err != nil {
			m.warn(err)
			return m, nil
		}
		m.state = next
		m.celebrate = false
		m.setFlash("Studying "+subject, false)

	case key.Matches(msg, keys.Stop):
		next, rec, err := m.state.Stop(now)
		if err != nil {
			m.warn(err)
			return m, nil
		}
		m.state = next
		m.setFlash(fmt.Sprintf("Stopped %s after %s, saving...", rec.Subject, render.FormatTime(rec.Duration)), false)
		cmd := m.record(rec)
		return m, cmd

	case key.Matches(msg, keys.Longer), key.Matches(msg, keys.Shorter):
		delta := 1
		if key.Matches(msg, keys.Shorter) {
			delta = -1
		}
		next, err := m.state.SetPomodoro(m.state.PomodoroMinutes + delta)
		if err != nil {
			m.warn(err)
			return m, nil
		}
		m.state = next

	case key.Matches(msg, keys.Adjust):
		if !m.state.Running() {
			m.warn(timer.ErrNotRunning)
			return m, nil
		}
		minutes := int(m.state.Elapsed(now) / time.Minute)
		return m.openInput(inputAdjust, "Elapsed minutes", strconv.Itoa(minutes))

	case key.Matches(msg, keys.Add):
		return m.openInput(inputAddSubject, "New subject", "")

	case key.Matches(msg, keys.Remove):
		subject, ok := m.selectedSubject()
		if !ok {
			return m, nil
		}
		next, err := m.state.RemoveSubject(subject)
		if err != nil {
			m.warn(err)
			return m, nil
		}
		m.state = next
		if m.cursor >= len(m.state.Subjects) && m.cursor > 0 {
			m.cursor--
		}
		m.setFlash("Removed "+subject, false)

	case key.Matches(msg, keys.NextPeriod):
		m.period = m.period.Next()
		m.refreshStats()

	case key.Matches(msg, keys.Daily):
		m.period = stats.Daily
		m.refreshStats()

	case key.Matches(msg, keys.Weekly):
		m.period = stats.Weekly
		m.refreshStats()

	case key.Matches(msg, keys.Lifetime):
		m.period = stats.Lifetime
		m.refreshStats()

	case key.Matches(msg, keys.Copy):
		return m, copyCmd(render.Summary(m.report()))

	case key.Matches(msg, keys.ScrollUp):
		m.statsView.LineUp(m.panelHeight() / 2)

	case key.Matches(msg, keys.ScrollDown):
		m.statsView.LineDown(m.panelHeight() / 2)
	}

	return m, nil
}

func (m model) openInput(mode inputMode, placeholder, value string) (tea.Model, tea.Cmd) {
	m.mode = mode
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m, m.input.Focus()
}

func (m model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keyCancel):
		m.closeInput()
		return m, nil

	case key.Matches(msg, keySubmit):
		value := strings.TrimSpace(m.input.Value())
		mode := m.mode
		m.closeInput()
		m.submit(mode, value)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) closeInput() {
	m.mode = inputNone
	m.input.Blur()
	m.input.SetValue("")
}

func (m *model) submit(mode inputMode, value string) {
	switch mode {
	case inputAddSubject:
		next, err := m.state.AddSubject(value)
		if errors.Is(err, timer.ErrDuplicateSubject) {
			m.setFlash("Subject already exists!", true)
			return
		}
		if err != nil {
			m.warn(err)
			return
		}
		m.state = next
		m.setFlash(fmt.Sprintf("Added %s to subjects!", value), false)

	case inputAdjust:
		minutes, err := strconv.Atoi(value)
		if err != nil || minutes < 0 {
			m.warn(timer.ErrInvalidDuration)
			return
		}
		next, err := m.state.Adjust(minutes, m.now())
		if err != nil {
			m.warn(err)
			return
		}
		m.state = next
		m.setFlash("Timer adjusted!", false)
	}
}

// record appends r to the in-memory log and schedules a save of it.
func (m *model) record(r store.Record) tea.Cmd {
	log := make([]store.Record, len(m.log), len(m.log)+1)
	copy(log, m.log)
	m.log = append(log, r)
	m.refreshStats()
	return m.persist()
}

// persist starts a save of the current log, or marks the log dirty when a
// save is already running.
func (m *model) persist() tea.Cmd {
	if m.saving {
		m.dirty = true
		return nil
	}
	m.saving = true
	snapshot := make([]store.Record, len(m.log))
	copy(snapshot, m.log)
	return saveCmd(m.store, snapshot)
}

func (m *model) setFlash(s string, warn bool) {
	m.flash = s
	m.flashWarn = warn
}

func (m *model) warn(err error) {
	m.setFlash(err.Error(), true)
}

func (m model) selectedSubject() (string, bool) {
	if m.cursor < 0 || m.cursor >= len(m.state.Subjects) {
		return "", false
	}
	return m.state.Subjects[m.cursor], true
}

func (m model) report() stats.Report {
	return stats.Build(m.log, m.period, "", m.now())
}

func (m *model) refreshStats() {
	m.statsView.SetContent(render.Report(m.report(), render.Options{Width: m.statsWidth() - 2}))
}

// View renders the full dashboard.
func (m model) View() string {
	if m.quitting || !m.ready {
		return ""
	}

	now := m.now()
	leftW := m.timerWidth()
	rightW := m.statsWidth()
	panelH := m.panelHeight()

	header := m.renderHeader(now, m.width)

	timerBox := m.renderTimer(now, leftW)
	subjectsH := panelH - lipgloss.Height(timerBox) - 2
	if subjectsH < 3 {
		subjectsH = 3
	}
	subjectsBox := stylePanelBorder.
		Width(leftW).
		Height(subjectsH).
		Render(m.renderSubjects(leftW, subjectsH))
	left := lipgloss.JoinVertical(lipgloss.Left, timerBox, subjectsBox)

	m.statsView.Width = rightW
	m.statsView.Height = panelH - 1 // period tabs
	right := styleActiveBorder.
		Width(rightW).
		Height(panelH).
		Render(lipgloss.JoinVertical(lipgloss.Left, m.renderPeriodTabs(), m.statsView.View()))

	panels := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	rows := []string{header, panels}
	if m.mode != inputNone {
		rows = append(rows, m.input.View())
	}
	rows = append(rows, m.statusBar())
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// helper methods

func (m model) timerWidth() int {
	if m.width <= 0 {
		return 36
	}
	// 40% for timer and subjects, minus border padding
	w := m.width*40/100 - 4
	if w < 24 {
		w = 24
	}
	return w
}

func (m model) statsWidth() int {
	if m.width <= 0 {
		return 56
	}
	// 60% for stats, minus border padding
	w := m.width*60/100 - 4
	if w < 30 {
		w = 30
	}
	return w
}

func (m model) panelHeight() int {
	if m.height <= 0 {
		return 20
	}
	// Subtract header (2) + status bar (1) + input row (1) + borders (2)
	h := m.height - 6
	if h < 10 {
		h = 10
	}
	return h
}

func (m model) statusBar() string {
	if m.flash != "" {
		style := styleStatusBar
		if m.flashWarn {
			style = styleStatusWarn
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, style.Render(m.flash), m.help.View(keys))
	}
	return styleStatusBar.Render(m.help.View(keys))
}
