// Package dateutil holds calendar-day helpers. A "day" is represented as
// midnight UTC of the date's year/month/day in the location it was given in,
// so days from different time zones compare by calendar date only.
package dateutil

import "time"

const (
	Layout        = "2006-01-02"
	secondsPerDay = 24 * 60 * 60
)

// StartOfDay returns the calendar day of t.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of calendar days from a to b.
// It is negative when b is before a.
func DaysBetween(a, b time.Time) int {
	// Both values are UTC midnights, so the difference is a whole number of days.
	// Unix seconds do not saturate the way time.Duration does.
	return int((StartOfDay(b).Unix() - StartOfDay(a).Unix()) / secondsPerDay)
}

// Range returns every day in [start, end] in ascending order.
// The result is empty when start is after end.
func Range(start, end time.Time) []time.Time {
	from, to := StartOfDay(start), StartOfDay(end)
	if from.After(to) {
		return []time.Time{}
	}
	days := make([]time.Time, 0, DaysBetween(from, to)+1)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// Parse reads a YYYY-MM-DD value as a calendar day.
func Parse(s string) (time.Time, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, err
	}
	return StartOfDay(t), nil
}
