package quote

import "time"

var quotes = []string{
	"Time you enjoy wasting is not wasted time.",
	"The journey of a thousand miles begins with one step.",
	"Focus on progress, not perfection.",
	"Every minute spent learning is an investment in your future.",
	"Small progress is still progress.",
	"The best time to start was yesterday. The next best time is now.",
}

// Daily returns the quote for the calendar day of now. The same quote is
// returned all day.
func Daily(now time.Time) string {
	return quotes[now.YearDay()%len(quotes)]
}

// All returns a copy of the quote list.
func All() []string {
	return append([]string(nil), quotes...)
}
