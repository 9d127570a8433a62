package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"

	"github.com/limbo/journal/pkg/entity"
)

const (
	moodsKey      = "journal:catalog:moods"
	categoriesKey = "journal:catalog:categories"
)

// NewRedis parses url, connects and pings before returning the client.
func NewRedis(url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parsing redis URL: %w", err)
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}
	return client, nil
}

// CatalogCache stores mood and category snapshots in Redis. Failures are
// logged and reported as misses so the caller falls back to the database.
type CatalogCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewCatalogCache(rdb *redis.Client, ttl time.Duration) *CatalogCache {
	return &CatalogCache{
		rdb: rdb,
		ttl: ttl,
	}
}

func (c *CatalogCache) Moods(ctx context.Context) ([]entity.Mood, bool) {
	var moods []entity.Mood
	return moods, c.get(ctx, moodsKey, &moods)
}

func (c *CatalogCache) SetMoods(ctx context.Context, moods []entity.Mood) {
	c.set(ctx, moodsKey, moods)
}

func (c *CatalogCache) Categories(ctx context.Context) ([]entity.Category, bool) {
	var categories []entity.Category
	return categories, c.get(ctx, categoriesKey, &categories)
}

func (c *CatalogCache) SetCategories(ctx context.Context, categories []entity.Category) {
	c.set(ctx, categoriesKey, categories)
}

// Invalidate drops every snapshot.
func (c *CatalogCache) Invalidate(ctx context.Context) error {
	return c.rdb.Del(ctx, moodsKey, categoriesKey).Err()
}

func (c *CatalogCache) get(ctx context.Context, key string, dst any) bool {
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.WarnContext(ctx, "catalog cache read failed", slog.String("key", key), slog.String("error", err.Error()))
		}
		return false
	}
	if err = sonic.Unmarshal(data, dst); err != nil {
		slog.WarnContext(ctx, "catalog cache payload is broken", slog.String("key", key), slog.String("error", err.Error()))
		return false
	}
	return true
}

func (c *CatalogCache) set(ctx context.Context, key string, v any) {
	data, err := sonic.Marshal(v)
	if err != nil {
		slog.WarnContext(ctx, "catalog cache encoding failed", slog.String("key", key), slog.String("error", err.Error()))
		return
	}
	if err = c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		slog.WarnContext(ctx, "catalog cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}
