package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	errorvalues "github.com/limbo/journal/internal/error_values"
	"github.com/limbo/journal/pkg/dateutil"
	"github.com/limbo/journal/pkg/entity"
)

type StreakRepository struct {
	conn PgConnection
}

func NewStreakRepo(conn PgConnection) *StreakRepository {
	return &StreakRepository{
		conn: conn,
	}
}

func (sr *StreakRepository) Get(ctx context.Context) (*entity.StreakTracking, error) {
	var (
		s    entity.StreakTracking
		last *time.Time
	)
	row := querier(ctx, sr.conn).QueryRow(
		ctx,
		`SELECT id, current_streak, longest_streak, last_entry_date, total_entries, updated_at FROM streak_tracking ORDER BY id LIMIT 1 FOR UPDATE;`,
	)
	if err := row.Scan(&s.ID, &s.CurrentStreak, &s.LongestStreak, &last, &s.TotalEntries, &s.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errorvalues.Storage("getting streak", err)
	}
	if last != nil {
		day := dateutil.StartOfDay(*last)
		s.LastEntryDate = &day
	}
	return &s, nil
}

// Save inserts the record when streak.ID is zero and updates it otherwise.
func (sr *StreakRepository) Save(ctx context.Context, streak *entity.StreakTracking) error {
	q := querier(ctx, sr.conn)
	if streak.ID == 0 {
		row := q.QueryRow(
			ctx,
			`INSERT INTO streak_tracking (current_streak, longest_streak, last_entry_date, total_entries) VALUES ($1, $2, $3, $4) RETURNING id, updated_at;`,
			streak.CurrentStreak,
			streak.LongestStreak,
			streak.LastEntryDate,
			streak.TotalEntries,
		)
		if err := row.Scan(&streak.ID, &streak.UpdatedAt); err != nil {
			return errorvalues.Storage("creating streak", err)
		}
		return nil
	}
	row := q.QueryRow(
		ctx,
		`UPDATE streak_tracking SET current_streak = $1, longest_streak = $2, last_entry_date = $3, total_entries = $4, updated_at = now() WHERE id = $5 RETURNING updated_at;`,
		streak.CurrentStreak,
		streak.LongestStreak,
		streak.LastEntryDate,
		streak.TotalEntries,
		streak.ID,
	)
	if err := row.Scan(&streak.UpdatedAt); err != nil {
		return errorvalues.Storage("updating streak", err)
	}
	return nil
}
