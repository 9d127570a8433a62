package service

import (
	"context"
	"fmt"
	"log"

	"github.com/limbo/journal/internal/repository"
	"github.com/limbo/journal/pkg/entity"
)

type QueryService struct {
	entriesRepo repository.EntriesRepositoryI
	txm         repository.TxManagerI
	opts        SearchOptions
}

func NewQueryService(entriesRepo repository.EntriesRepositoryI, txm repository.TxManagerI, opts SearchOptions) *QueryService {
	if entriesRepo == nil || txm == nil {
		log.Fatal("on query service provided nil dependencies")
	}
	return &QueryService{
		entriesRepo: entriesRepo,
		txm:         txm,
		opts:        opts,
	}
}

func (serv *QueryService) GetEntries(ctx context.Context, filter entity.EntryFilter) ([]entity.JournalEntry, error) {
	if err := validateRange(filter.From, filter.To); err != nil {
		return nil, err
	}
	filter.CaseSensitive = serv.opts.CaseSensitive
	entries, err := serv.entriesRepo.Find(ctx, filter, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("getting entries: %w", err)
	}
	return entries, nil
}

func (serv *QueryService) GetPaginatedEntries(ctx context.Context, page, pageSize int) ([]entity.JournalEntry, int, error) {
	if err := validatePage(page, pageSize); err != nil {
		return nil, 0, err
	}
	return serv.page(ctx, entity.EntryFilter{}, page, pageSize)
}

func (serv *QueryService) SearchAndFilterEntries(ctx context.Context, req *SearchRequest) ([]entity.JournalEntry, int, error) {
	if err := validatePage(req.Page, req.PageSize); err != nil {
		return nil, 0, err
	}
	if err := validateRange(req.From, req.To); err != nil {
		return nil, 0, err
	}
	if err := validateStruct(req); err != nil {
		return nil, 0, err
	}
	filter := entity.EntryFilter{
		From:          req.From,
		To:            req.To,
		PrimaryMoodID: req.MoodID,
		TagIDs:        normalizeTags(req.TagIDs),
		Search:        req.Text,
		CaseSensitive: serv.opts.CaseSensitive,
	}
	return serv.page(ctx, filter, req.Page, req.PageSize)
}

// page counts and reads within one snapshot so the total matches the page.
func (serv *QueryService) page(ctx context.Context, filter entity.EntryFilter, page, pageSize int) ([]entity.JournalEntry, int, error) {
	var (
		entries []entity.JournalEntry
		total   int
	)
	err := serv.txm.WithinReadTx(ctx, func(ctx context.Context) error {
		var err error
		if total, err = serv.entriesRepo.Count(ctx, filter); err != nil {
			return fmt.Errorf("counting entries: %w", err)
		}
		if entries, err = serv.entriesRepo.Find(ctx, filter, pageSize, (page-1)*pageSize); err != nil {
			return fmt.Errorf("getting entries page: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}
