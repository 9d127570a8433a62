package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	errorvalues "github.com/limbo/journal/internal/error_values"
	"github.com/limbo/journal/internal/repository"
	"github.com/limbo/journal/pkg/entity"
)

const maxTagNameLen = 50

type CatalogService struct {
	catalogRepo repository.CatalogRepositoryI
	cache       CatalogCache
}

// NewCatalogService accepts a nil cache, reads then always go to the repository.
func NewCatalogService(catalogRepo repository.CatalogRepositoryI, cache CatalogCache) *CatalogService {
	if catalogRepo == nil {
		log.Fatal("on catalog service provided nil repo")
	}
	return &CatalogService{
		catalogRepo: catalogRepo,
		cache:       cache,
	}
}

func (serv *CatalogService) ListMoods(ctx context.Context) ([]entity.Mood, error) {
	if serv.cache != nil {
		if moods, ok := serv.cache.Moods(ctx); ok {
			return moods, nil
		}
	}
	moods, err := serv.catalogRepo.ListMoods(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing moods: %w", err)
	}
	if serv.cache != nil {
		serv.cache.SetMoods(ctx, moods)
	}
	return moods, nil
}

func (serv *CatalogService) ListCategories(ctx context.Context) ([]entity.Category, error) {
	if serv.cache != nil {
		if categories, ok := serv.cache.Categories(ctx); ok {
			return categories, nil
		}
	}
	categories, err := serv.catalogRepo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	if serv.cache != nil {
		serv.cache.SetCategories(ctx, categories)
	}
	return categories, nil
}

// ListTags is never cached, usage counts move with every entry write.
func (serv *CatalogService) ListTags(ctx context.Context) ([]entity.Tag, error) {
	tags, err := serv.catalogRepo.ListTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}
	return tags, nil
}

func (serv *CatalogService) CreateCustomTag(ctx context.Context, name string) (*entity.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errorvalues.ErrBlankTagName
	}
	if utf8.RuneCountInString(name) > maxTagNameLen {
		return nil, errorvalues.Validation(fmt.Sprintf("tag name is longer than %d characters", maxTagNameLen))
	}
	tag, err := serv.catalogRepo.CreateTag(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("creating tag: %w", err)
	}
	return tag, nil
}
