package service

import (
	"context"
	"time"

	"github.com/limbo/journal/pkg/entity"
)

//go:generate mockgen -destination=mocks/mock_service.go -package=mocks github.com/limbo/journal/internal/service JournalServiceI,CatalogServiceI,StreakServiceI,QueryServiceI

// EntryRequest carries the editable part of an entry for create and update.
type EntryRequest struct {
	Title   string `json:"title" validate:"not_blank,max=200"`
	Content string `json:"content" validate:"not_blank"`
	// Mood marked as primary
	PrimaryMoodID int64 `json:"primary_mood_id" validate:"gt=0"`
	// Only the first two are kept
	SecondaryMoodIDs []int64 `json:"secondary_mood_ids" validate:"dive,gt=0"`
	CategoryID       *int64  `json:"category_id" validate:"omitempty,gt=0"`
	TagIDs           []int64 `json:"tag_ids" validate:"dive,gt=0"`
}

type SearchRequest struct {
	Text string
	From *time.Time
	To   *time.Time
	// Matches entries with this primary mood
	MoodID   *int64  `validate:"omitempty,gt=0"`
	TagIDs   []int64 `validate:"dive,gt=0"`
	Page     int
	PageSize int
}

type SearchOptions struct {
	// Restores exact-case substring matching for free-text search
	CaseSensitive bool
}

type JournalServiceI interface {
	// Creates entry for the day of date, associates moods and tags and records it in the streak.
	// Fails with ErrDuplicateDate if the day already has an entry
	CreateEntry(ctx context.Context, date time.Time, req *EntryRequest) (*entity.JournalEntry, error)
	// Replaces content, moods and tags of entry. Entry date never changes
	UpdateEntry(ctx context.Context, id int64, req *EntryRequest) (*entity.JournalEntry, error)
	// Deletes entry with its associations
	DeleteEntry(ctx context.Context, id int64) error
	HasEntryForDate(ctx context.Context, date time.Time) (bool, error)
	GetEntryForDate(ctx context.Context, date time.Time) (*entity.JournalEntry, error)
	GetEntry(ctx context.Context, id int64) (*entity.JournalEntry, error)
}

type CatalogServiceI interface {
	ListMoods(ctx context.Context) ([]entity.Mood, error)
	ListCategories(ctx context.Context) ([]entity.Category, error)
	ListTags(ctx context.Context) ([]entity.Tag, error)
	// Returns the tag with the given name, creating a custom one when there is none
	CreateCustomTag(ctx context.Context, name string) (*entity.Tag, error)
}

type StreakServiceI interface {
	// Accounts for a newly written entry
	RecordEntry(ctx context.Context, date time.Time) error
	// Returns counters, zeroing the current streak first if it has lapsed
	GetStreakInfo(ctx context.Context) (entity.StreakInfo, error)
	// Lists days within [start, end] without an entry, ascending
	GetMissedDays(ctx context.Context, start, end time.Time) ([]time.Time, error)
}

type QueryServiceI interface {
	// Lists every entry matching filter, most recent first
	GetEntries(ctx context.Context, filter entity.EntryFilter) ([]entity.JournalEntry, error)
	// Returns one page of all entries and the total count
	GetPaginatedEntries(ctx context.Context, page, pageSize int) ([]entity.JournalEntry, int, error)
	// Returns one page of entries matching req and the count of all matches
	SearchAndFilterEntries(ctx context.Context, req *SearchRequest) ([]entity.JournalEntry, int, error)
}

// CatalogCache keeps snapshots of the reference data that never changes at runtime.
type CatalogCache interface {
	Moods(ctx context.Context) ([]entity.Mood, bool)
	SetMoods(ctx context.Context, moods []entity.Mood)
	Categories(ctx context.Context) ([]entity.Category, bool)
	SetCategories(ctx context.Context, categories []entity.Category)
}
