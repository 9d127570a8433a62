package entity

import (
	"time"

	"github.com/limbo/journal/pkg/dateutil"
)

// StreakTracking is the single row holding the writing streak counters.
type StreakTracking struct {
	ID            int64      `json:"id"`
	CurrentStreak int        `json:"current_streak"`
	LongestStreak int        `json:"longest_streak"`
	LastEntryDate *time.Time `json:"last_entry_date,omitempty"`
	TotalEntries  int        `json:"total_entries"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// NewStreak returns the record for the very first entry.
func NewStreak(date time.Time) *StreakTracking {
	day := dateutil.StartOfDay(date)
	return &StreakTracking{
		CurrentStreak: 1,
		LongestStreak: 1,
		LastEntryDate: &day,
		TotalEntries:  1,
	}
}

// Record accounts for a new entry written for date.
//
// A date before LastEntryDate is a back-filled day: the counters stay but
// LastEntryDate still moves to date.
func (s *StreakTracking) Record(date time.Time) {
	day := dateutil.StartOfDay(date)
	s.TotalEntries++
	if s.LastEntryDate == nil {
		s.CurrentStreak = 1
		s.raiseLongest()
		s.LastEntryDate = &day
		return
	}
	diff := dateutil.DaysBetween(*s.LastEntryDate, day)
	switch {
	case diff <= 0:
		// back-filled or same day, counters stay as they are
	case diff == 1:
		s.CurrentStreak++
		s.raiseLongest()
	default:
		s.CurrentStreak = 1
		s.raiseLongest()
	}
	s.LastEntryDate = &day
}

// Expire zeroes a current streak that ended before yesterday. It reports
// whether the record changed and has to be saved.
func (s *StreakTracking) Expire(today time.Time) bool {
	if s.LastEntryDate == nil || s.CurrentStreak == 0 {
		return false
	}
	if dateutil.DaysBetween(*s.LastEntryDate, today) <= 1 {
		return false
	}
	s.CurrentStreak = 0
	return true
}

func (s *StreakTracking) Info() StreakInfo {
	return StreakInfo{
		Current: s.CurrentStreak,
		Longest: s.LongestStreak,
		Total:   s.TotalEntries,
	}
}

func (s *StreakTracking) raiseLongest() {
	if s.CurrentStreak > s.LongestStreak {
		s.LongestStreak = s.CurrentStreak
	}
}
