package booking

import "time"

// Window is the rolling booking horizon: the inclusive range of selectable
// dates. Same-day booking is excluded.
type Window struct {
	Min time.Time
	Max time.Time
}

// WindowFrom computes the booking window relative to "today" at render
// time: [tomorrow, tomorrow+29 days].
func WindowFrom(now time.Time) Window {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return Window{
		Min: today.AddDate(0, 0, 1),
		Max: today.AddDate(0, 0, 30),
	}
}

// Contains reports whether the date (YYYY-MM-DD) lies inside the window.
func (w Window) Contains(date string) bool {
	t, err := time.ParseInLocation("2006-01-02", date, w.Min.Location())
	if err != nil {
		return false
	}
	return !t.Before(w.Min) && !t.After(w.Max)
}
