package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	errorvalues "github.com/limbo/journal/internal/error_values"
	"github.com/limbo/journal/pkg/dateutil"
	"github.com/limbo/journal/pkg/entity"
)

const entrySelect = `SELECT e.id, e.entry_date, e.title, e.content, e.word_count, e.category_id, e.primary_mood_id, e.created_at, e.updated_at, c.name, c.color_code, c.icon_name FROM journal_entries e LEFT JOIN categories c ON c.id = e.category_id`

type EntriesRepository struct {
	conn PgConnection
}

func NewEntriesRepo(conn PgConnection) *EntriesRepository {
	return &EntriesRepository{
		conn: conn,
	}
}

// translateWriteErr maps constraint violations of entry writes to error kinds.
func translateWriteErr(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		// Unique violation
		case "23505":
			return errorvalues.ErrDuplicateDate
		// FK violation
		case "23503":
			return errorvalues.ErrReferenceNotFound
		}
	}
	return errorvalues.Storage(op, err)
}

func (er *EntriesRepository) Create(ctx context.Context, entry *entity.JournalEntry) error {
	entry.EntryDate = dateutil.StartOfDay(entry.EntryDate)
	row := querier(ctx, er.conn).QueryRow(
		ctx,
		`INSERT INTO journal_entries (entry_date, title, content, word_count, category_id, primary_mood_id) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at, updated_at;`,
		entry.EntryDate,
		entry.Title,
		entry.Content,
		entry.WordCount,
		entry.CategoryID,
		entry.PrimaryMoodID,
	)
	if err := row.Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt); err != nil {
		return translateWriteErr("creating entry", err)
	}
	return nil
}

func (er *EntriesRepository) GetByID(ctx context.Context, id int64) (*entity.JournalEntry, error) {
	return er.getOne(ctx, entrySelect+` WHERE e.id = $1;`, id)
}

func (er *EntriesRepository) GetByDate(ctx context.Context, date time.Time) (*entity.JournalEntry, error) {
	return er.getOne(ctx, entrySelect+` WHERE e.entry_date = $1;`, dateutil.StartOfDay(date))
}

func (er *EntriesRepository) getOne(ctx context.Context, query string, arg any) (*entity.JournalEntry, error) {
	q := querier(ctx, er.conn)
	entry, err := scanEntry(q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrEntryNotFound
		}
		return nil, errorvalues.Storage("getting entry", err)
	}
	entries := []entity.JournalEntry{*entry}
	if err = er.loadAssociations(ctx, q, entries); err != nil {
		return nil, err
	}
	return &entries[0], nil
}

func (er *EntriesRepository) ExistsForDate(ctx context.Context, date time.Time) (bool, error) {
	var exists bool
	row := querier(ctx, er.conn).QueryRow(
		ctx,
		`SELECT EXISTS(SELECT 1 FROM journal_entries WHERE entry_date = $1);`,
		dateutil.StartOfDay(date),
	)
	if err := row.Scan(&exists); err != nil {
		return false, errorvalues.Storage("inspecting if entry exists", err)
	}
	return exists, nil
}

func (er *EntriesRepository) Update(ctx context.Context, entry *entity.JournalEntry) error {
	row := querier(ctx, er.conn).QueryRow(
		ctx,
		`UPDATE journal_entries SET title = $1, content = $2, word_count = $3, category_id = $4, primary_mood_id = $5, updated_at = now() WHERE id = $6 RETURNING updated_at;`,
		entry.Title,
		entry.Content,
		entry.WordCount,
		entry.CategoryID,
		entry.PrimaryMoodID,
		entry.ID,
	)
	if err := row.Scan(&entry.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return errorvalues.ErrEntryNotFound
		}
		return translateWriteErr("updating entry", err)
	}
	return nil
}

func (er *EntriesRepository) Delete(ctx context.Context, id int64) error {
	ct, err := querier(ctx, er.conn).Exec(ctx, `DELETE FROM journal_entries WHERE id = $1;`, id)
	if err != nil {
		return errorvalues.Storage("deleting entry", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrEntryNotFound
	}
	return nil
}

func (er *EntriesRepository) AddMoods(ctx context.Context, entryID, primaryID int64, secondaryIDs []int64) error {
	q := querier(ctx, er.conn)
	const query = `INSERT INTO entry_moods (entry_id, mood_id, is_primary, position) VALUES ($1, $2, $3, $4) ON CONFLICT (entry_id, mood_id) DO NOTHING;`
	if _, err := q.Exec(ctx, query, entryID, primaryID, true, 0); err != nil {
		return translateWriteErr("adding primary mood", err)
	}
	for i, moodID := range secondaryIDs {
		if _, err := q.Exec(ctx, query, entryID, moodID, false, i+1); err != nil {
			return translateWriteErr("adding secondary mood", err)
		}
	}
	return nil
}

func (er *EntriesRepository) DeleteMoods(ctx context.Context, entryID int64) error {
	if _, err := querier(ctx, er.conn).Exec(ctx, `DELETE FROM entry_moods WHERE entry_id = $1;`, entryID); err != nil {
		return errorvalues.Storage("deleting entry moods", err)
	}
	return nil
}

func (er *EntriesRepository) AddTags(ctx context.Context, entryID int64, tagIDs []int64) error {
	q := querier(ctx, er.conn)
	for _, tagID := range tagIDs {
		_, err := q.Exec(ctx, `INSERT INTO entry_tags (entry_id, tag_id) VALUES ($1, $2);`, entryID, tagID)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23503" {
				return errorvalues.ErrReferenceNotFound
			}
			return errorvalues.Storage("adding entry tag", err)
		}
	}
	return nil
}

func (er *EntriesRepository) DeleteTags(ctx context.Context, entryID int64) error {
	if _, err := querier(ctx, er.conn).Exec(ctx, `DELETE FROM entry_tags WHERE entry_id = $1;`, entryID); err != nil {
		return errorvalues.Storage("deleting entry tags", err)
	}
	return nil
}

func (er *EntriesRepository) GetTagIDs(ctx context.Context, entryID int64) ([]int64, error) {
	rows, err := querier(ctx, er.conn).Query(ctx, `SELECT tag_id FROM entry_tags WHERE entry_id = $1 ORDER BY tag_id;`, entryID)
	if err != nil {
		return nil, errorvalues.Storage("getting entry tag ids", err)
	}
	defer rows.Close()
	ids := make([]int64, 0, 4)
	for rows.Next() {
		var id int64
		if err = rows.Scan(&id); err != nil {
			return nil, errorvalues.Storage("tag id row parsing", err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, errorvalues.Storage("unexpected tag id rows error", err)
	}
	return ids, nil
}

func (er *EntriesRepository) Find(ctx context.Context, filter entity.EntryFilter, limit, offset int) ([]entity.JournalEntry, error) {
	cond := entryConditions(filter)
	query := entrySelect + cond.Clause + ` ORDER BY e.entry_date DESC, e.id ASC`
	args := cond.Params
	if limit > 0 {
		args = append(args, limit, offset)
		query += fmt.Sprintf(` LIMIT $%d OFFSET $%d`, len(args)-1, len(args))
	}
	q := querier(ctx, er.conn)
	rows, err := q.Query(ctx, query+`;`, args...)
	if err != nil {
		return nil, errorvalues.Storage("finding entries", err)
	}
	entries := make([]entity.JournalEntry, 0, 8)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			rows.Close()
			return nil, errorvalues.Storage("entry row parsing", err)
		}
		entries = append(entries, *entry)
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return nil, errorvalues.Storage("unexpected entry rows error", err)
	}
	if err = er.loadAssociations(ctx, q, entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (er *EntriesRepository) Count(ctx context.Context, filter entity.EntryFilter) (int, error) {
	cond := entryConditions(filter)
	var count int
	row := querier(ctx, er.conn).QueryRow(ctx, `SELECT COUNT(*) FROM journal_entries e`+cond.Clause+`;`, cond.Params...)
	if err := row.Scan(&count); err != nil {
		return 0, errorvalues.Storage("counting entries", err)
	}
	return count, nil
}

func (er *EntriesRepository) DatesInRange(ctx context.Context, from, to time.Time) ([]time.Time, error) {
	rows, err := querier(ctx, er.conn).Query(
		ctx,
		`SELECT entry_date FROM journal_entries WHERE entry_date >= $1 AND entry_date <= $2 ORDER BY entry_date;`,
		dateutil.StartOfDay(from),
		dateutil.StartOfDay(to),
	)
	if err != nil {
		return nil, errorvalues.Storage("getting entry dates", err)
	}
	defer rows.Close()
	dates := make([]time.Time, 0, 8)
	for rows.Next() {
		var d time.Time
		if err = rows.Scan(&d); err != nil {
			return nil, errorvalues.Storage("entry date row parsing", err)
		}
		dates = append(dates, dateutil.StartOfDay(d))
	}
	if err = rows.Err(); err != nil {
		return nil, errorvalues.Storage("unexpected entry date rows error", err)
	}
	return dates, nil
}

// loadAssociations fills moods, primary mood and tags of entries with two
// queries regardless of how many entries there are.
func (er *EntriesRepository) loadAssociations(ctx context.Context, q Querier, entries []entity.JournalEntry) error {
	if len(entries) == 0 {
		return nil
	}
	ids := make([]int64, len(entries))
	index := make(map[int64]int, len(entries))
	for i := range entries {
		ids[i] = entries[i].ID
		index[entries[i].ID] = i
		entries[i].Moods = make([]entity.EntryMood, 0, 3)
		entries[i].Tags = make([]entity.Tag, 0, 4)
	}

	rows, err := q.Query(
		ctx,
		`SELECT em.entry_id, m.id, em.is_primary, m.name, m.mood_type, m.emoji, m.color_code, m.created_at FROM entry_moods em JOIN moods m ON m.id = em.mood_id WHERE em.entry_id = ANY($1) ORDER BY em.entry_id, em.position;`,
		ids,
	)
	if err != nil {
		return errorvalues.Storage("loading entry moods", err)
	}
	for rows.Next() {
		var (
			em       entity.EntryMood
			moodType string
		)
		if err = rows.Scan(&em.EntryID, &em.Mood.ID, &em.IsPrimary, &em.Mood.Name, &moodType, &em.Mood.Emoji, &em.Mood.ColorCode, &em.Mood.CreatedAt); err != nil {
			rows.Close()
			return errorvalues.Storage("entry mood row parsing", err)
		}
		em.MoodID = em.Mood.ID
		em.Mood.Type = entity.MoodType(moodType)
		e := &entries[index[em.EntryID]]
		e.Moods = append(e.Moods, em)
		if em.IsPrimary {
			mood := em.Mood
			e.PrimaryMood = &mood
		}
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return errorvalues.Storage("unexpected entry mood rows error", err)
	}

	rows, err = q.Query(
		ctx,
		`SELECT et.entry_id, t.id, t.name, t.is_custom, t.usage_count, t.created_at FROM entry_tags et JOIN tags t ON t.id = et.tag_id WHERE et.entry_id = ANY($1) ORDER BY t.name;`,
		ids,
	)
	if err != nil {
		return errorvalues.Storage("loading entry tags", err)
	}
	for rows.Next() {
		var (
			entryID int64
			tag     entity.Tag
		)
		if err = rows.Scan(&entryID, &tag.ID, &tag.Name, &tag.IsCustom, &tag.UsageCount, &tag.CreatedAt); err != nil {
			rows.Close()
			return errorvalues.Storage("entry tag row parsing", err)
		}
		e := &entries[index[entryID]]
		e.Tags = append(e.Tags, tag)
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return errorvalues.Storage("unexpected entry tag rows error", err)
	}
	return nil
}

func scanEntry(row pgx.Row) (*entity.JournalEntry, error) {
	var (
		entry                          entity.JournalEntry
		catName, catColor, catIconName *string
	)
	err := row.Scan(
		&entry.ID,
		&entry.EntryDate,
		&entry.Title,
		&entry.Content,
		&entry.WordCount,
		&entry.CategoryID,
		&entry.PrimaryMoodID,
		&entry.CreatedAt,
		&entry.UpdatedAt,
		&catName,
		&catColor,
		&catIconName,
	)
	if err != nil {
		return nil, err
	}
	entry.EntryDate = dateutil.StartOfDay(entry.EntryDate)
	if entry.CategoryID != nil && catName != nil {
		entry.Category = &entity.Category{
			ID:   *entry.CategoryID,
			Name: *catName,
		}
		if catColor != nil {
			entry.Category.ColorCode = *catColor
		}
		if catIconName != nil {
			entry.Category.IconName = *catIconName
		}
	}
	return &entry, nil
}
