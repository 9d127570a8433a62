package entity

import (
	"time"
)

type MoodType string

const (
	MoodPositive MoodType = "Positive"
	MoodNeutral  MoodType = "Neutral"
	MoodNegative MoodType = "Negative"
)

type Mood struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Type      MoodType  `json:"type"`
	Emoji     string    `json:"emoji"`
	ColorCode string    `json:"color_code"`
	CreatedAt time.Time `json:"created_at"`
}

type Category struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	ColorCode string    `json:"color_code"`
	IconName  string    `json:"icon_name"`
	CreatedAt time.Time `json:"created_at"`
}

type Tag struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	IsCustom   bool      `json:"is_custom"`
	UsageCount int       `json:"usage_count"`
	CreatedAt  time.Time `json:"created_at"`
}

// EntryMood links an entry to one of its moods. Exactly one association per
// entry is primary.
type EntryMood struct {
	EntryID   int64 `json:"entry_id"`
	MoodID    int64 `json:"mood_id"`
	IsPrimary bool  `json:"is_primary"`
	Mood      Mood  `json:"mood"`
}

type EntryTag struct {
	EntryID int64 `json:"entry_id"`
	TagID   int64 `json:"tag_id"`
}

// JournalEntry is the record of a single calendar day. EntryDate is always a
// day value (see dateutil.StartOfDay).
type JournalEntry struct {
	ID            int64       `json:"id"`
	EntryDate     time.Time   `json:"entry_date"`
	Title         string      `json:"title"`
	Content       string      `json:"content"`
	WordCount     int         `json:"word_count"`
	CategoryID    *int64      `json:"category_id,omitempty"`
	Category      *Category   `json:"category,omitempty"`
	PrimaryMoodID int64       `json:"primary_mood_id"`
	PrimaryMood   *Mood       `json:"primary_mood,omitempty"`
	Moods         []EntryMood `json:"moods"`
	Tags          []Tag       `json:"tags"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// SecondaryMoods returns the non-primary mood associations.
func (e *JournalEntry) SecondaryMoods() []EntryMood {
	res := make([]EntryMood, 0, 2)
	for _, m := range e.Moods {
		if !m.IsPrimary {
			res = append(res, m)
		}
	}
	return res
}

// EntryFilter narrows down entry queries. Every set field is combined with AND.
type EntryFilter struct {
	From *time.Time
	To   *time.Time
	// Entries having any of these moods (primary or secondary).
	MoodIDs []int64
	// Entries whose primary mood is this one.
	PrimaryMoodID *int64
	// Entries having any of these tags.
	TagIDs []int64
	// Substring of title or content.
	Search        string
	CaseSensitive bool
}

type StreakInfo struct {
	Current int `json:"current_streak"`
	Longest int `json:"longest_streak"`
	Total   int `json:"total_entries"`
}
