// Package timer holds the dashboard's session state. Every transition is a
// method on State that returns the next State instead of mutating the
// receiver, so the UI decides when a change takes effect.
package timer

import (
	"errors"
	"strings"
	"time"

	"github.com/Zuo-Peng/study-tracker/internal/store"
)

const (
	MinPomodoroMinutes = 1
	MaxPomodoroMinutes = 60
)

var (
	ErrEmptySubject     = errors.New("subject name is empty")
	ErrDuplicateSubject = errors.New("subject already exists")
	ErrUnknownSubject   = errors.New("unknown subject")
	ErrAlreadyRunning   = errors.New("timer already running")
	ErrNotRunning       = errors.New("timer not running")
	ErrInvalidDuration  = errors.New("invalid duration")
)

type Phase int

const (
	Idle Phase = iota
	Running
)

func (p Phase) String() string {
	if p == Running {
		return "running"
	}
	return "idle"
}

type State struct {
	Phase           Phase
	StartedAt       time.Time // zero while idle
	Subject         string    // empty while idle
	PomodoroMinutes int
	Streak          int
	LastStudyDate   time.Time // local midnight, zero before the first session
	Subjects        []string
}

// New returns an idle state. Blank and repeated subjects are dropped.
func New(subjects []string, pomodoroMinutes int) State {
	s := State{PomodoroMinutes: pomodoroMinutes}
	for _, name := range subjects {
		name = strings.TrimSpace(name)
		if name == "" || s.HasSubject(name) {
			continue
		}
		s.Subjects = append(s.Subjects, name)
	}
	return s
}

func (s State) Running() bool {
	return s.Phase == Running
}

func (s State) HasSubject(name string) bool {
	for _, existing := range s.Subjects {
		if existing == name {
			return true
		}
	}
	return false
}

// Target is the configured pomodoro length.
func (s State) Target() time.Duration {
	return time.Duration(s.PomodoroMinutes) * time.Minute
}

// Elapsed is the time since the timer started, never negative.
func (s State) Elapsed(now time.Time) time.Duration {
	if !s.Running() {
		return 0
	}
	d := now.Sub(s.StartedAt)
	if d < 0 {
		return 0
	}
	return d
}

// Remaining is the time left until the pomodoro completes. While idle it is
// the full pomodoro length.
func (s State) Remaining(now time.Time) time.Duration {
	if !s.Running() {
		return s.Target()
	}
	d := s.Target() - s.Elapsed(now)
	if d < 0 {
		return 0
	}
	return d
}

// Progress is the completed fraction of the pomodoro in [0, 1].
func (s State) Progress(now time.Time) float64 {
	target := s.Target()
	if !s.Running() || target <= 0 {
		return 0
	}
	p := float64(s.Elapsed(now)) / float64(target)
	if p > 1 {
		return 1
	}
	return p
}

// Start begins timing subject.
func (s State) Start(subject string, now time.Time) (State, error) {
	if s.Running() {
		return s, ErrAlreadyRunning
	}
	if subject == "" {
		return s, ErrEmptySubject
	}
	if !s.HasSubject(subject) {
		return s, ErrUnknownSubject
	}
	s.Phase = Running
	s.StartedAt = now
	s.Subject = subject
	return s, nil
}

// Stop ends the running session and returns the record to persist. The
// recorded duration is the elapsed time truncated to whole seconds.
func (s State) Stop(now time.Time) (State, store.Record, error) {
	if !s.Running() {
		return s, store.Record{}, ErrNotRunning
	}
	rec := store.NewRecord(s.Subject, int(s.Elapsed(now)/time.Second), now)
	s = s.reset()
	s.LastStudyDate, s.Streak = UpdateStreak(s.LastStudyDate, s.Streak, now)
	return s, rec, nil
}

// Completion describes a pomodoro that ran to its full length.
type Completion struct {
	Subject string
	Record  store.Record // stamped at the completion tick, lasting the full pomodoro
}

// Tick checks the running timer against the pomodoro length. When it has
// elapsed the state folds back to idle, the streak is updated and a
// Completion is returned. Callers decide whether to persist the record.
func (s State) Tick(now time.Time) (State, *Completion) {
	if !s.Running() || s.Elapsed(now) < s.Target() {
		return s, nil
	}
	c := &Completion{
		Subject: s.Subject,
		Record:  store.NewRecord(s.Subject, s.PomodoroMinutes*60, now),
	}
	s = s.reset()
	s.LastStudyDate, s.Streak = UpdateStreak(s.LastStudyDate, s.Streak, now)
	return s, c
}

// Adjust rewinds the start so that minutes have elapsed as of now.
func (s State) Adjust(minutes int, now time.Time) (State, error) {
	if !s.Running() {
		return s, ErrNotRunning
	}
	if minutes < 0 {
		return s, ErrInvalidDuration
	}
	s.StartedAt = now.Add(-time.Duration(minutes) * time.Minute)
	return s, nil
}

func (s State) AddSubject(name string) (State, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return s, ErrEmptySubject
	}
	if s.HasSubject(name) {
		return s, ErrDuplicateSubject
	}
	subjects := make([]string, 0, len(s.Subjects)+1)
	subjects = append(subjects, s.Subjects...)
	s.Subjects = append(subjects, name)
	return s, nil
}

// RemoveSubject drops name from the subject list. A running session keeps its
// subject.
func (s State) RemoveSubject(name string) (State, error) {
	if !s.HasSubject(name) {
		return s, ErrUnknownSubject
	}
	subjects := make([]string, 0, len(s.Subjects))
	for _, existing := range s.Subjects {
		if existing != name {
			subjects = append(subjects, existing)
		}
	}
	s.Subjects = subjects
	return s, nil
}

func (s State) SetPomodoro(minutes int) (State, error) {
	if minutes < MinPomodoroMinutes || minutes > MaxPomodoroMinutes {
		return s, ErrInvalidDuration
	}
	s.PomodoroMinutes = minutes
	return s, nil
}

func (s State) reset() State {
	s.Phase = Idle
	s.StartedAt = time.Time{}
	s.Subject = ""
	return s
}
