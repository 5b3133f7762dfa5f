package timer

import "time"

// UpdateStreak applies a finished session on now's calendar day to the
// (lastStudyDate, streak) pair and returns the new pair.
//
// The first session ever only records the date. A session the day after the
// last one extends the streak, a longer gap restarts it at 1, and another
// session on the same day changes nothing.
func UpdateStreak(last time.Time, streak int, now time.Time) (time.Time, int) {
	today := calendarDay(now)
	if !last.IsZero() {
		switch gap := daysBetween(calendarDay(last), today); {
		case gap == 1:
			streak++
		case gap > 1:
			streak = 1
		}
	}
	return today, streak
}

func calendarDay(t time.Time) time.Time {
	t = t.Local()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// daysBetween counts calendar days from a to b, both local midnights. Rounding
// absorbs the 23h and 25h days around DST changes.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Round(24*time.Hour) / (24 * time.Hour))
}
