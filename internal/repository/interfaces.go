package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/journal/pkg/entity"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/limbo/journal/internal/repository EntriesRepositoryI,CatalogRepositoryI,StreakRepositoryI,TxManagerI

type EntriesRepositoryI interface {
	// Inserts entry row. ID, CreatedAt and UpdatedAt are filled in on success
	Create(ctx context.Context, entry *entity.JournalEntry) error
	// Returns entry with category, moods and tags loaded
	GetByID(ctx context.Context, id int64) (*entity.JournalEntry, error)
	// Returns entry written for the day of date
	GetByDate(ctx context.Context, date time.Time) (*entity.JournalEntry, error)
	// Inspects if the day of date already has an entry
	ExistsForDate(ctx context.Context, date time.Time) (bool, error)
	// Updates title, content, word count, category and primary mood by entry.ID
	Update(ctx context.Context, entry *entity.JournalEntry) error
	// Deletes entry row, associations go with it
	Delete(ctx context.Context, id int64) error
	// Associates moods with entry. Primary is stored first, secondary in given order
	AddMoods(ctx context.Context, entryID, primaryID int64, secondaryIDs []int64) error
	// Removes every mood association of entry
	DeleteMoods(ctx context.Context, entryID int64) error
	// Associates tags with entry
	AddTags(ctx context.Context, entryID int64, tagIDs []int64) error
	// Removes every tag association of entry
	DeleteTags(ctx context.Context, entryID int64) error
	// Returns ids of tags associated with entry
	GetTagIDs(ctx context.Context, entryID int64) ([]int64, error)
	// Lists entries matching filter, most recent first. limit <= 0 means no limit
	Find(ctx context.Context, filter entity.EntryFilter, limit, offset int) ([]entity.JournalEntry, error)
	// Counts entries matching filter
	Count(ctx context.Context, filter entity.EntryFilter) (int, error)
	// Returns days within [from, to] having an entry, ascending
	DatesInRange(ctx context.Context, from, to time.Time) ([]time.Time, error)
}

type CatalogRepositoryI interface {
	ListMoods(ctx context.Context) ([]entity.Mood, error)
	ListCategories(ctx context.Context) ([]entity.Category, error)
	ListTags(ctx context.Context) ([]entity.Tag, error)
	// Looks up tag by exact name. Returns nil, nil when there is none
	GetTagByName(ctx context.Context, name string) (*entity.Tag, error)
	// Creates custom tag with zero usage
	CreateTag(ctx context.Context, name string) (*entity.Tag, error)
	// Adds one to usage count of every tag in ids
	IncrementTagUsage(ctx context.Context, ids []int64) error
	// Subtracts one from usage count of every tag in ids, never below zero
	DecrementTagUsage(ctx context.Context, ids []int64) error
}

type StreakRepositoryI interface {
	// Returns the streak record locked for update. Returns nil, nil when there is none yet.
	// Must be called within a transaction for the lock to be held
	Get(ctx context.Context) (*entity.StreakTracking, error)
	// Inserts or updates the streak record
	Save(ctx context.Context, streak *entity.StreakTracking) error
}

type TxManagerI interface {
	// Runs fn in a transaction. Repositories called with the ctx passed to fn
	// take part in it. Returning an error from fn rolls everything back
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
	// Runs fn in a read-only repeatable read transaction, so every statement
	// in fn sees the same snapshot
	WithinReadTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type DBConfig interface {
	ConnString() string
}

// Querier is the part of a connection shared by pools and transactions.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PgConnection interface {
	Querier
	Ping(ctx context.Context) error
	Begin(ctx context.Context) (pgx.Tx, error)
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
