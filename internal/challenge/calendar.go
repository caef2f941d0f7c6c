package challenge

import "time"

// TotalDays is the fixed length of the challenge window.
const TotalDays = 90

// DateLayout is the canonical calendar-date form used on the wire and in
// the store.
const DateLayout = "2006-01-02"

// Day normalizes t to UTC midnight. All calendar math in this package
// operates on normalized dates, never instants.
func Day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a canonical YYYY-MM-DD date string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// FormatDate renders a date in canonical form.
func FormatDate(t time.Time) string {
	return Day(t).Format(DateLayout)
}

// DayNumber maps a calendar date onto a challenge-day number relative to
// start: the start date itself is day 1, start+89 is day 90. The result is
// not clamped; callers decide whether out-of-range values are an error.
func DayNumber(start, date time.Time) int {
	start = Day(start)
	date = Day(date)
	return int(date.Sub(start).Hours()/24) + 1
}

// DateForDay is the inverse of DayNumber: the calendar date of challenge
// day n (1-based).
func DateForDay(start time.Time, day int) time.Time {
	return Day(start).AddDate(0, 0, day-1)
}

// InWindow reports whether date falls inside the 90-day challenge window
// beginning at start, both endpoints inclusive.
func InWindow(start, date time.Time) bool {
	n := DayNumber(start, date)
	return n >= 1 && n <= TotalDays
}
