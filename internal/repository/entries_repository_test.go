package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/journal/internal/error_values"
	"github.com/limbo/journal/internal/repository"
	"github.com/limbo/journal/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	entrySelect = `SELECT e.id, e.entry_date, e.title, e.content, e.word_count, e.category_id, e.primary_mood_id, e.created_at, e.updated_at, c.name, c.color_code, c.icon_name FROM journal_entries e LEFT JOIN categories c ON c.id = e.category_id`
	moodsQuery  = `SELECT em.entry_id, m.id, em.is_primary, m.name, m.mood_type, m.emoji, m.color_code, m.created_at FROM entry_moods em JOIN moods m ON m.id = em.mood_id WHERE em.entry_id = ANY($1) ORDER BY em.entry_id, em.position;`
	tagsQuery   = `SELECT et.entry_id, t.id, t.name, t.is_custom, t.usage_count, t.created_at FROM entry_tags et JOIN tags t ON t.id = et.tag_id WHERE et.entry_id = ANY($1) ORDER BY t.name;`
)

var (
	entryColumns = []string{"id", "entry_date", "title", "content", "word_count", "category_id", "primary_mood_id", "created_at", "updated_at", "name", "color_code", "icon_name"}
	moodColumns  = []string{"entry_id", "id", "is_primary", "name", "mood_type", "emoji", "color_code", "created_at"}
	tagColumns   = []string{"entry_id", "id", "name", "is_custom", "usage_count", "created_at"}

	createdAt = time.Date(2024, 3, 10, 8, 30, 0, 0, time.UTC)
	entryDay  = time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
)

func ptr[T any](v T) *T {
	return &v
}

func TestCreateEntry(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewEntriesRepo(mock)
	ctx := context.Background()
	query := regexp.QuoteMeta(`INSERT INTO journal_entries (entry_date, title, content, word_count, category_id, primary_mood_id) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at, updated_at;`)
	newEntry := func() *entity.JournalEntry {
		return &entity.JournalEntry{
			EntryDate:     time.Date(2024, 3, 10, 21, 15, 0, 0, time.UTC),
			Title:         "a day",
			Content:       "walked the dog",
			WordCount:     3,
			CategoryID:    ptr(int64(4)),
			PrimaryMoodID: 1,
		}
	}
	t.Run("successfully created", func(t *testing.T) {
		entry := newEntry()
		mock.ExpectQuery(query).
			WithArgs(entryDay, entry.Title, entry.Content, entry.WordCount, entry.CategoryID, entry.PrimaryMoodID).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(7), createdAt, createdAt))
		err := repo.Create(ctx, entry)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), entry.ID)
		assert.Equal(t, entryDay, entry.EntryDate)
		assert.Equal(t, createdAt, entry.CreatedAt)
	})
	t.Run("unique violation", func(t *testing.T) {
		entry := newEntry()
		mock.ExpectQuery(query).
			WithArgs(entryDay, entry.Title, entry.Content, entry.WordCount, entry.CategoryID, entry.PrimaryMoodID).
			WillReturnError(&pgconn.PgError{Code: "23505"})
		err := repo.Create(ctx, entry)
		assert.ErrorIs(t, err, errorvalues.ErrDuplicateDate)
	})
	t.Run("FK violation", func(t *testing.T) {
		entry := newEntry()
		mock.ExpectQuery(query).
			WithArgs(entryDay, entry.Title, entry.Content, entry.WordCount, entry.CategoryID, entry.PrimaryMoodID).
			WillReturnError(&pgconn.PgError{Code: "23503"})
		err := repo.Create(ctx, entry)
		assert.ErrorIs(t, err, errorvalues.ErrReferenceNotFound)
		assert.ErrorIs(t, err, errorvalues.ErrStorage)
	})
	t.Run("db error", func(t *testing.T) {
		entry := newEntry()
		mock.ExpectQuery(query).
			WithArgs(entryDay, entry.Title, entry.Content, entry.WordCount, entry.CategoryID, entry.PrimaryMoodID).
			WillReturnError(errors.New("db error"))
		err := repo.Create(ctx, entry)
		assert.ErrorIs(t, err, errorvalues.ErrStorage)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetEntryByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewEntriesRepo(mock)
	ctx := context.Background()
	query := regexp.QuoteMeta(entrySelect + ` WHERE e.id = $1;`)
	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(int64(7)).
			WillReturnRows(pgxmock.NewRows(entryColumns).
				AddRow(int64(7), entryDay, "a day", "walked the dog", 3, ptr(int64(4)), int64(1), createdAt, createdAt, ptr("Personal"), ptr("#1ABC9C"), ptr("Person")))
		mock.ExpectQuery(regexp.QuoteMeta(moodsQuery)).
			WithArgs([]int64{7}).
			WillReturnRows(pgxmock.NewRows(moodColumns).
				AddRow(int64(7), int64(1), true, "Happy", "Positive", "😊", "#FFD700", createdAt).
				AddRow(int64(7), int64(6), false, "Calm", "Neutral", "😐", "#A8E6CF", createdAt))
		mock.ExpectQuery(regexp.QuoteMeta(tagsQuery)).
			WithArgs([]int64{7}).
			WillReturnRows(pgxmock.NewRows(tagColumns).
				AddRow(int64(7), int64(13), "Nature", false, 2, createdAt))
		entry, err := repo.GetByID(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, "a day", entry.Title)
		require.NotNil(t, entry.Category)
		assert.Equal(t, entity.Category{ID: 4, Name: "Personal", ColorCode: "#1ABC9C", IconName: "Person"}, *entry.Category)
		require.NotNil(t, entry.PrimaryMood)
		assert.Equal(t, "Happy", entry.PrimaryMood.Name)
		assert.Equal(t, entity.MoodPositive, entry.PrimaryMood.Type)
		assert.Len(t, entry.Moods, 2)
		assert.Equal(t, int64(6), entry.SecondaryMoods()[0].MoodID)
		assert.Equal(t, []entity.Tag{{ID: 13, Name: "Nature", UsageCount: 2, CreatedAt: createdAt}}, entry.Tags)
	})
	t.Run("no category", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(int64(8)).
			WillReturnRows(pgxmock.NewRows(entryColumns).
				AddRow(int64(8), entryDay, "t", "c", 1, nil, int64(1), createdAt, createdAt, nil, nil, nil))
		mock.ExpectQuery(regexp.QuoteMeta(moodsQuery)).
			WithArgs([]int64{8}).
			WillReturnRows(pgxmock.NewRows(moodColumns))
		mock.ExpectQuery(regexp.QuoteMeta(tagsQuery)).
			WithArgs([]int64{8}).
			WillReturnRows(pgxmock.NewRows(tagColumns))
		entry, err := repo.GetByID(ctx, 8)
		require.NoError(t, err)
		assert.Nil(t, entry.CategoryID)
		assert.Nil(t, entry.Category)
		assert.Empty(t, entry.Tags)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(int64(9)).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByID(ctx, 9)
		assert.ErrorIs(t, err, errorvalues.ErrEntryNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(int64(9)).
			WillReturnError(errors.New("db error"))
		_, err := repo.GetByID(ctx, 9)
		assert.ErrorIs(t, err, errorvalues.ErrStorage)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExistsForDate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewEntriesRepo(mock)
	query := regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM journal_entries WHERE entry_date = $1);`)
	mock.ExpectQuery(query).
		WithArgs(entryDay).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	exists, err := repo.ExistsForDate(context.Background(), entryDay.Add(18*time.Hour))
	assert.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateEntry(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewEntriesRepo(mock)
	ctx := context.Background()
	query := regexp.QuoteMeta(`UPDATE journal_entries SET title = $1, content = $2, word_count = $3, category_id = $4, primary_mood_id = $5, updated_at = now() WHERE id = $6 RETURNING updated_at;`)
	entry := &entity.JournalEntry{ID: 7, Title: "new", Content: "new content", WordCount: 2, PrimaryMoodID: 3}
	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(entry.Title, entry.Content, entry.WordCount, entry.CategoryID, entry.PrimaryMoodID, entry.ID).
			WillReturnRows(pgxmock.NewRows([]string{"updated_at"}).AddRow(createdAt))
		err := repo.Update(ctx, entry)
		assert.NoError(t, err)
		assert.Equal(t, createdAt, entry.UpdatedAt)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(entry.Title, entry.Content, entry.WordCount, entry.CategoryID, entry.PrimaryMoodID, entry.ID).
			WillReturnError(pgx.ErrNoRows)
		err := repo.Update(ctx, entry)
		assert.ErrorIs(t, err, errorvalues.ErrEntryNotFound)
	})
	t.Run("unknown mood", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(entry.Title, entry.Content, entry.WordCount, entry.CategoryID, entry.PrimaryMoodID, entry.ID).
			WillReturnError(&pgconn.PgError{Code: "23503"})
		err := repo.Update(ctx, entry)
		assert.ErrorIs(t, err, errorvalues.ErrReferenceNotFound)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteEntry(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewEntriesRepo(mock)
	query := regexp.QuoteMeta(`DELETE FROM journal_entries WHERE id = $1;`)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(int64(7)).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))
		err := repo.Delete(ctx, 7)
		assert.NoError(t, err)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(int64(7)).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		err := repo.Delete(ctx, 7)
		assert.ErrorIs(t, err, errorvalues.ErrEntryNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(int64(7)).
			WillReturnError(errors.New("db error"))
		err := repo.Delete(ctx, 7)
		assert.ErrorIs(t, err, errorvalues.ErrStorage)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssociations(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewEntriesRepo(mock)
	ctx := context.Background()
	moodInsert := regexp.QuoteMeta(`INSERT INTO entry_moods (entry_id, mood_id, is_primary, position) VALUES ($1, $2, $3, $4) ON CONFLICT (entry_id, mood_id) DO NOTHING;`)
	tagInsert := regexp.QuoteMeta(`INSERT INTO entry_tags (entry_id, tag_id) VALUES ($1, $2);`)
	t.Run("add moods", func(t *testing.T) {
		mock.ExpectExec(moodInsert).WithArgs(int64(7), int64(1), true, 0).WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec(moodInsert).WithArgs(int64(7), int64(4), false, 1).WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec(moodInsert).WithArgs(int64(7), int64(6), false, 2).WillReturnResult(pgxmock.NewResult("INSERT", 1))
		err := repo.AddMoods(ctx, 7, 1, []int64{4, 6})
		assert.NoError(t, err)
	})
	t.Run("unknown mood", func(t *testing.T) {
		mock.ExpectExec(moodInsert).WithArgs(int64(7), int64(99), true, 0).WillReturnError(&pgconn.PgError{Code: "23503"})
		err := repo.AddMoods(ctx, 7, 99, nil)
		assert.ErrorIs(t, err, errorvalues.ErrReferenceNotFound)
	})
	t.Run("add tags", func(t *testing.T) {
		mock.ExpectExec(tagInsert).WithArgs(int64(7), int64(2)).WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec(tagInsert).WithArgs(int64(7), int64(5)).WillReturnResult(pgxmock.NewResult("INSERT", 1))
		err := repo.AddTags(ctx, 7, []int64{2, 5})
		assert.NoError(t, err)
	})
	t.Run("unknown tag", func(t *testing.T) {
		mock.ExpectExec(tagInsert).WithArgs(int64(7), int64(404)).WillReturnError(&pgconn.PgError{Code: "23503"})
		err := repo.AddTags(ctx, 7, []int64{404})
		assert.ErrorIs(t, err, errorvalues.ErrReferenceNotFound)
	})
	t.Run("delete moods and tags", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM entry_moods WHERE entry_id = $1;`)).
			WithArgs(int64(7)).
			WillReturnResult(pgxmock.NewResult("DELETE", 3))
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM entry_tags WHERE entry_id = $1;`)).
			WithArgs(int64(7)).
			WillReturnResult(pgxmock.NewResult("DELETE", 2))
		assert.NoError(t, repo.DeleteMoods(ctx, 7))
		assert.NoError(t, repo.DeleteTags(ctx, 7))
	})
	t.Run("tag ids", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT tag_id FROM entry_tags WHERE entry_id = $1 ORDER BY tag_id;`)).
			WithArgs(int64(7)).
			WillReturnRows(pgxmock.NewRows([]string{"tag_id"}).AddRow(int64(2)).AddRow(int64(5)))
		ids, err := repo.GetTagIDs(ctx, 7)
		assert.NoError(t, err)
		assert.Equal(t, []int64{2, 5}, ids)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindEntries(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewEntriesRepo(mock)
	ctx := context.Background()
	t.Run("page without filters", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(entrySelect+` ORDER BY e.entry_date DESC, e.id ASC LIMIT $1 OFFSET $2;`)).
			WithArgs(10, 20).
			WillReturnRows(pgxmock.NewRows(entryColumns).
				AddRow(int64(2), entryDay, "later", "c", 1, nil, int64(1), createdAt, createdAt, nil, nil, nil).
				AddRow(int64(1), entryDay.AddDate(0, 0, -1), "earlier", "c", 1, nil, int64(1), createdAt, createdAt, nil, nil, nil))
		mock.ExpectQuery(regexp.QuoteMeta(moodsQuery)).
			WithArgs([]int64{2, 1}).
			WillReturnRows(pgxmock.NewRows(moodColumns).
				AddRow(int64(1), int64(1), true, "Happy", "Positive", "😊", "#FFD700", createdAt).
				AddRow(int64(2), int64(11), true, "Sad", "Negative", "😢", "#6C757D", createdAt))
		mock.ExpectQuery(regexp.QuoteMeta(tagsQuery)).
			WithArgs([]int64{2, 1}).
			WillReturnRows(pgxmock.NewRows(tagColumns).
				AddRow(int64(1), int64(3), "Studies", false, 1, createdAt))
		entries, err := repo.Find(ctx, entity.EntryFilter{}, 10, 20)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "later", entries[0].Title)
		assert.Equal(t, "Sad", entries[0].PrimaryMood.Name)
		assert.Empty(t, entries[0].Tags)
		assert.Equal(t, "Happy", entries[1].PrimaryMood.Name)
		assert.Len(t, entries[1].Tags, 1)
	})
	t.Run("all filters without limit", func(t *testing.T) {
		from := entryDay.AddDate(0, 0, -7)
		filter := entity.EntryFilter{
			From:    &from,
			To:      &entryDay,
			MoodIDs: []int64{1, 2},
			TagIDs:  []int64{3},
			Search:  "Dog",
		}
		where := ` WHERE e.entry_date >= $1 AND e.entry_date <= $2` +
			` AND EXISTS (SELECT 1 FROM entry_moods em WHERE em.entry_id = e.id AND em.mood_id = ANY($3))` +
			` AND EXISTS (SELECT 1 FROM entry_tags et WHERE et.entry_id = e.id AND et.tag_id = ANY($4))` +
			` AND (strpos(lower(e.title), lower($5)) > 0 OR strpos(lower(e.content), lower($5)) > 0)`
		mock.ExpectQuery(regexp.QuoteMeta(entrySelect+where+` ORDER BY e.entry_date DESC, e.id ASC;`)).
			WithArgs(from, entryDay, []int64{1, 2}, []int64{3}, "Dog").
			WillReturnRows(pgxmock.NewRows(entryColumns))
		entries, err := repo.Find(ctx, filter, 0, 0)
		assert.NoError(t, err)
		assert.Empty(t, entries)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(entrySelect + ` ORDER BY e.entry_date DESC, e.id ASC;`)).
			WillReturnError(errors.New("db error"))
		_, err := repo.Find(ctx, entity.EntryFilter{}, 0, 0)
		assert.ErrorIs(t, err, errorvalues.ErrStorage)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountEntries(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewEntriesRepo(mock)
	moodID := int64(5)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM journal_entries e WHERE e.primary_mood_id = $1 AND (strpos(e.title, $2) > 0 OR strpos(e.content, $2) > 0);`)).
		WithArgs(moodID, "Dog").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))
	count, err := repo.Count(context.Background(), entity.EntryFilter{PrimaryMoodID: &moodID, Search: "Dog", CaseSensitive: true})
	assert.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDatesInRange(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewEntriesRepo(mock)
	from := entryDay.AddDate(0, 0, -3)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT entry_date FROM journal_entries WHERE entry_date >= $1 AND entry_date <= $2 ORDER BY entry_date;`)).
		WithArgs(from, entryDay).
		WillReturnRows(pgxmock.NewRows([]string{"entry_date"}).AddRow(from).AddRow(entryDay))
	dates, err := repo.DatesInRange(context.Background(), from, entryDay)
	assert.NoError(t, err)
	assert.Equal(t, []time.Time{from, entryDay}, dates)
	assert.NoError(t, mock.ExpectationsWereMet())
}
