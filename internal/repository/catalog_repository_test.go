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

func TestListCatalog(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewCatalogRepo(mock)
	ctx := context.Background()
	t.Run("moods", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, mood_type, emoji, color_code, created_at FROM moods ORDER BY name;`)).
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "mood_type", "emoji", "color_code", "created_at"}).
				AddRow(int64(12), "Angry", "Negative", "😠", "#DC3545", createdAt).
				AddRow(int64(15), "Anxious", "Negative", "😨", "#C06C84", createdAt))
		moods, err := repo.ListMoods(ctx)
		require.NoError(t, err)
		assert.Equal(t, []entity.Mood{
			{ID: 12, Name: "Angry", Type: entity.MoodNegative, Emoji: "😠", ColorCode: "#DC3545", CreatedAt: createdAt},
			{ID: 15, Name: "Anxious", Type: entity.MoodNegative, Emoji: "😨", ColorCode: "#C06C84", CreatedAt: createdAt},
		}, moods)
	})
	t.Run("categories", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, color_code, icon_name, created_at FROM categories ORDER BY name;`)).
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "color_code", "icon_name", "created_at"}).
				AddRow(int64(2), "Family", "#E74C3C", "Home", createdAt))
		categories, err := repo.ListCategories(ctx)
		require.NoError(t, err)
		assert.Equal(t, []entity.Category{{ID: 2, Name: "Family", ColorCode: "#E74C3C", IconName: "Home", CreatedAt: createdAt}}, categories)
	})
	t.Run("tags", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, is_custom, usage_count, created_at FROM tags ORDER BY name;`)).
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "is_custom", "usage_count", "created_at"}).
				AddRow(int64(16), "Birthday", false, 1, createdAt).
				AddRow(int64(40), "Garden", true, 0, createdAt))
		tags, err := repo.ListTags(ctx)
		require.NoError(t, err)
		assert.Len(t, tags, 2)
		assert.True(t, tags[1].IsCustom)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, is_custom, usage_count, created_at FROM tags ORDER BY name;`)).
			WillReturnError(errors.New("db error"))
		_, err := repo.ListTags(ctx)
		assert.ErrorIs(t, err, errorvalues.ErrStorage)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTag(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewCatalogRepo(mock)
	ctx := context.Background()
	insert := regexp.QuoteMeta(`INSERT INTO tags (name, is_custom, usage_count) VALUES ($1, TRUE, 0) ON CONFLICT (name) DO NOTHING RETURNING id, is_custom, usage_count, created_at;`)
	byName := regexp.QuoteMeta(`SELECT id, name, is_custom, usage_count, created_at FROM tags WHERE name = $1;`)
	t.Run("created", func(t *testing.T) {
		mock.ExpectQuery(insert).
			WithArgs("Garden").
			WillReturnRows(pgxmock.NewRows([]string{"id", "is_custom", "usage_count", "created_at"}).AddRow(int64(40), true, 0, createdAt))
		tag, err := repo.CreateTag(ctx, "Garden")
		require.NoError(t, err)
		assert.Equal(t, entity.Tag{ID: 40, Name: "Garden", IsCustom: true, CreatedAt: createdAt}, *tag)
	})
	t.Run("existing name", func(t *testing.T) {
		mock.ExpectQuery(insert).
			WithArgs("Work").
			WillReturnError(pgx.ErrNoRows)
		mock.ExpectQuery(byName).
			WithArgs("Work").
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "is_custom", "usage_count", "created_at"}).AddRow(int64(1), "Work", false, 5, createdAt))
		tag, err := repo.CreateTag(ctx, "Work")
		require.NoError(t, err)
		assert.Equal(t, entity.Tag{ID: 1, Name: "Work", UsageCount: 5, CreatedAt: createdAt}, *tag)
	})
	t.Run("lookup miss", func(t *testing.T) {
		mock.ExpectQuery(byName).
			WithArgs("Nope").
			WillReturnError(pgx.ErrNoRows)
		tag, err := repo.GetTagByName(ctx, "Nope")
		assert.NoError(t, err)
		assert.Nil(t, tag)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTagUsage(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewCatalogRepo(mock)
	ctx := context.Background()
	inc := regexp.QuoteMeta(`UPDATE tags SET usage_count = usage_count + 1 WHERE id = ANY($1);`)
	dec := regexp.QuoteMeta(`UPDATE tags SET usage_count = GREATEST(usage_count - 1, 0) WHERE id = ANY($1);`)
	t.Run("increment", func(t *testing.T) {
		mock.ExpectExec(inc).
			WithArgs([]int64{1, 2}).
			WillReturnResult(pgxmock.NewResult("UPDATE", 2))
		assert.NoError(t, repo.IncrementTagUsage(ctx, []int64{1, 2}))
	})
	t.Run("increment unknown tag", func(t *testing.T) {
		mock.ExpectExec(inc).
			WithArgs([]int64{1, 404}).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.ErrorIs(t, repo.IncrementTagUsage(ctx, []int64{1, 404}), errorvalues.ErrReferenceNotFound)
	})
	t.Run("decrement", func(t *testing.T) {
		mock.ExpectExec(dec).
			WithArgs([]int64{1, 2}).
			WillReturnResult(pgxmock.NewResult("UPDATE", 2))
		assert.NoError(t, repo.DecrementTagUsage(ctx, []int64{1, 2}))
	})
	t.Run("nothing to do", func(t *testing.T) {
		assert.NoError(t, repo.IncrementTagUsage(ctx, nil))
		assert.NoError(t, repo.DecrementTagUsage(ctx, []int64{}))
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}
