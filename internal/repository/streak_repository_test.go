package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/journal/internal/error_values"
	"github.com/limbo/journal/internal/repository"
	"github.com/limbo/journal/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStreak(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewStreakRepo(mock)
	ctx := context.Background()
	query := regexp.QuoteMeta(`SELECT id, current_streak, longest_streak, last_entry_date, total_entries, updated_at FROM streak_tracking ORDER BY id LIMIT 1 FOR UPDATE;`)
	columns := []string{"id", "current_streak", "longest_streak", "last_entry_date", "total_entries", "updated_at"}
	t.Run("existing", func(t *testing.T) {
		mock.ExpectQuery(query).
			WillReturnRows(pgxmock.NewRows(columns).AddRow(int64(1), 3, 5, ptr(entryDay), 12, createdAt))
		s, err := repo.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, entity.StreakInfo{Current: 3, Longest: 5, Total: 12}, s.Info())
		assert.Equal(t, entryDay, *s.LastEntryDate)
	})
	t.Run("none yet", func(t *testing.T) {
		mock.ExpectQuery(query).WillReturnError(pgx.ErrNoRows)
		s, err := repo.Get(ctx)
		assert.NoError(t, err)
		assert.Nil(t, s)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).WillReturnError(errors.New("db error"))
		_, err := repo.Get(ctx)
		assert.ErrorIs(t, err, errorvalues.ErrStorage)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveStreak(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewStreakRepo(mock)
	ctx := context.Background()
	t.Run("insert", func(t *testing.T) {
		s := entity.NewStreak(entryDay)
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO streak_tracking (current_streak, longest_streak, last_entry_date, total_entries) VALUES ($1, $2, $3, $4) RETURNING id, updated_at;`)).
			WithArgs(1, 1, s.LastEntryDate, 1).
			WillReturnRows(pgxmock.NewRows([]string{"id", "updated_at"}).AddRow(int64(1), createdAt))
		require.NoError(t, repo.Save(ctx, s))
		assert.Equal(t, int64(1), s.ID)
	})
	t.Run("update", func(t *testing.T) {
		s := &entity.StreakTracking{ID: 1, CurrentStreak: 0, LongestStreak: 4, LastEntryDate: ptr(entryDay), TotalEntries: 9}
		mock.ExpectQuery(regexp.QuoteMeta(`UPDATE streak_tracking SET current_streak = $1, longest_streak = $2, last_entry_date = $3, total_entries = $4, updated_at = now() WHERE id = $5 RETURNING updated_at;`)).
			WithArgs(0, 4, s.LastEntryDate, 9, int64(1)).
			WillReturnRows(pgxmock.NewRows([]string{"updated_at"}).AddRow(createdAt))
		require.NoError(t, repo.Save(ctx, s))
		assert.Equal(t, createdAt, s.UpdatedAt)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}
