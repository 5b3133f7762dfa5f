package timer_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zuo-Peng/study-tracker/internal/timer"
)

func day(d int) time.Time {
	return time.Date(2024, 3, d, 0, 0, 0, 0, time.Local)
}

func TestUpdateStreak(t *testing.T) {
	tests := []struct {
		name       string
		last       time.Time
		streak     int
		now        time.Time
		wantStreak int
	}{
		{"first session", time.Time{}, 0, day(10).Add(9 * time.Hour), 0},
		{"same day", day(10), 3, day(10).Add(23 * time.Hour), 3},
		{"next day", day(9), 0, day(10).Add(time.Minute), 1},
		{"next day extends", day(9), 4, day(10).Add(time.Minute), 5},
		{"two day gap", day(7), 4, day(10).Add(time.Minute), 1},
		{"gap from zero", day(1), 0, day(10), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotLast, gotStreak := timer.UpdateStreak(tt.last, tt.streak, tt.now)
			assert.Equal(t, tt.wantStreak, gotStreak)
			assert.True(t, gotLast.Equal(day(10)), "last study date is always today, got %v", gotLast)
		})
	}
}

func TestStreak_AcrossStops(t *testing.T) {
	s := newState()
	first := time.Date(2024, 3, 10, 20, 0, 0, 0, time.Local)

	var err error
	s, err = s.Start("Math", first)
	require.NoError(t, err)
	s, _, err = s.Stop(first.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 0, s.Streak)
	assert.True(t, s.LastStudyDate.Equal(day(10)))

	next := first.AddDate(0, 0, 1)
	s, err = s.Start("Math", next)
	require.NoError(t, err)
	s, _, err = s.Stop(next.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 1, s.Streak)

	later := next.AddDate(0, 0, 3)
	s, err = s.Start("Physics", later)
	require.NoError(t, err)
	s, _, err = s.Stop(later.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 1, s.Streak)
}
