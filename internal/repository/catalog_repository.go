package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	errorvalues "github.com/limbo/journal/internal/error_values"
	"github.com/limbo/journal/pkg/entity"
)

type CatalogRepository struct {
	conn PgConnection
}

func NewCatalogRepo(conn PgConnection) *CatalogRepository {
	return &CatalogRepository{
		conn: conn,
	}
}

func (cr *CatalogRepository) ListMoods(ctx context.Context) ([]entity.Mood, error) {
	rows, err := querier(ctx, cr.conn).Query(ctx, `SELECT id, name, mood_type, emoji, color_code, created_at FROM moods ORDER BY name;`)
	if err != nil {
		return nil, errorvalues.Storage("listing moods", err)
	}
	defer rows.Close()
	moods := make([]entity.Mood, 0, 16)
	for rows.Next() {
		var (
			mood     entity.Mood
			moodType string
		)
		if err = rows.Scan(&mood.ID, &mood.Name, &moodType, &mood.Emoji, &mood.ColorCode, &mood.CreatedAt); err != nil {
			return nil, errorvalues.Storage("mood row parsing", err)
		}
		mood.Type = entity.MoodType(moodType)
		moods = append(moods, mood)
	}
	if err = rows.Err(); err != nil {
		return nil, errorvalues.Storage("unexpected mood rows error", err)
	}
	return moods, nil
}

func (cr *CatalogRepository) ListCategories(ctx context.Context) ([]entity.Category, error) {
	rows, err := querier(ctx, cr.conn).Query(ctx, `SELECT id, name, color_code, icon_name, created_at FROM categories ORDER BY name;`)
	if err != nil {
		return nil, errorvalues.Storage("listing categories", err)
	}
	defer rows.Close()
	categories := make([]entity.Category, 0, 8)
	for rows.Next() {
		var c entity.Category
		if err = rows.Scan(&c.ID, &c.Name, &c.ColorCode, &c.IconName, &c.CreatedAt); err != nil {
			return nil, errorvalues.Storage("category row parsing", err)
		}
		categories = append(categories, c)
	}
	if err = rows.Err(); err != nil {
		return nil, errorvalues.Storage("unexpected category rows error", err)
	}
	return categories, nil
}

func (cr *CatalogRepository) ListTags(ctx context.Context) ([]entity.Tag, error) {
	rows, err := querier(ctx, cr.conn).Query(ctx, `SELECT id, name, is_custom, usage_count, created_at FROM tags ORDER BY name;`)
	if err != nil {
		return nil, errorvalues.Storage("listing tags", err)
	}
	defer rows.Close()
	tags := make([]entity.Tag, 0, 32)
	for rows.Next() {
		var t entity.Tag
		if err = rows.Scan(&t.ID, &t.Name, &t.IsCustom, &t.UsageCount, &t.CreatedAt); err != nil {
			return nil, errorvalues.Storage("tag row parsing", err)
		}
		tags = append(tags, t)
	}
	if err = rows.Err(); err != nil {
		return nil, errorvalues.Storage("unexpected tag rows error", err)
	}
	return tags, nil
}

func (cr *CatalogRepository) GetTagByName(ctx context.Context, name string) (*entity.Tag, error) {
	var t entity.Tag
	row := querier(ctx, cr.conn).QueryRow(ctx, `SELECT id, name, is_custom, usage_count, created_at FROM tags WHERE name = $1;`, name)
	if err := row.Scan(&t.ID, &t.Name, &t.IsCustom, &t.UsageCount, &t.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errorvalues.Storage("getting tag by name", err)
	}
	return &t, nil
}

// CreateTag leaves an existing tag with the same name untouched and returns it.
func (cr *CatalogRepository) CreateTag(ctx context.Context, name string) (*entity.Tag, error) {
	t := entity.Tag{Name: name}
	row := querier(ctx, cr.conn).QueryRow(
		ctx,
		`INSERT INTO tags (name, is_custom, usage_count) VALUES ($1, TRUE, 0) ON CONFLICT (name) DO NOTHING RETURNING id, is_custom, usage_count, created_at;`,
		name,
	)
	if err := row.Scan(&t.ID, &t.IsCustom, &t.UsageCount, &t.CreatedAt); err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.Storage("creating tag", err)
		}
		existing, err := cr.GetTagByName(ctx, name)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, errorvalues.Storage("creating tag", errors.New("tag vanished after conflict"))
		}
		return existing, nil
	}
	return &t, nil
}

func (cr *CatalogRepository) IncrementTagUsage(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	ct, err := querier(ctx, cr.conn).Exec(ctx, `UPDATE tags SET usage_count = usage_count + 1 WHERE id = ANY($1);`, ids)
	if err != nil {
		return errorvalues.Storage("incrementing tag usage", err)
	}
	if ct.RowsAffected() != int64(len(ids)) {
		return errorvalues.ErrReferenceNotFound
	}
	return nil
}

func (cr *CatalogRepository) DecrementTagUsage(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := querier(ctx, cr.conn).Exec(ctx, `UPDATE tags SET usage_count = GREATEST(usage_count - 1, 0) WHERE id = ANY($1);`, ids)
	if err != nil {
		return errorvalues.Storage("decrementing tag usage", err)
	}
	return nil
}
