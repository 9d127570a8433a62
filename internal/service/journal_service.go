package service

import (
	"context"
	"fmt"
	"log"
	"time"

	errorvalues "github.com/limbo/journal/internal/error_values"
	"github.com/limbo/journal/internal/repository"
	"github.com/limbo/journal/pkg/dateutil"
	"github.com/limbo/journal/pkg/entity"
)

type JournalService struct {
	entriesRepo repository.EntriesRepositoryI
	catalogRepo repository.CatalogRepositoryI
	streak      StreakServiceI
	txm         repository.TxManagerI
}

func NewJournalService(entriesRepo repository.EntriesRepositoryI, catalogRepo repository.CatalogRepositoryI, streak StreakServiceI, txm repository.TxManagerI) *JournalService {
	if entriesRepo == nil || catalogRepo == nil || streak == nil || txm == nil {
		log.Fatal("on journal service provided nil dependencies")
	}
	return &JournalService{
		entriesRepo: entriesRepo,
		catalogRepo: catalogRepo,
		streak:      streak,
		txm:         txm,
	}
}

func (serv *JournalService) CreateEntry(ctx context.Context, date time.Time, req *EntryRequest) (*entity.JournalEntry, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	day := dateutil.StartOfDay(date)
	entry := &entity.JournalEntry{
		EntryDate:     day,
		Title:         req.Title,
		Content:       req.Content,
		WordCount:     wordCount(req.Content),
		CategoryID:    req.CategoryID,
		PrimaryMoodID: req.PrimaryMoodID,
	}
	secondary := normalizeMoods(req.SecondaryMoodIDs)
	tags := normalizeTags(req.TagIDs)

	var created *entity.JournalEntry
	err := serv.txm.WithinTx(ctx, func(ctx context.Context) error {
		exists, err := serv.entriesRepo.ExistsForDate(ctx, day)
		if err != nil {
			return err
		}
		if exists {
			return errorvalues.ErrDuplicateDate
		}
		if err = serv.entriesRepo.Create(ctx, entry); err != nil {
			return err
		}
		if err = serv.entriesRepo.AddMoods(ctx, entry.ID, entry.PrimaryMoodID, secondary); err != nil {
			return err
		}
		if err = serv.entriesRepo.AddTags(ctx, entry.ID, tags); err != nil {
			return err
		}
		if err = serv.catalogRepo.IncrementTagUsage(ctx, tags); err != nil {
			return err
		}
		if err = serv.streak.RecordEntry(ctx, day); err != nil {
			return err
		}
		created, err = serv.entriesRepo.GetByID(ctx, entry.ID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("creating entry: %w", err)
	}
	return created, nil
}

// UpdateEntry decrements every previously used tag and increments every new
// one, so tags kept by the update pass through both.
func (serv *JournalService) UpdateEntry(ctx context.Context, id int64, req *EntryRequest) (*entity.JournalEntry, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	secondary := normalizeMoods(req.SecondaryMoodIDs)
	tags := normalizeTags(req.TagIDs)

	var updated *entity.JournalEntry
	err := serv.txm.WithinTx(ctx, func(ctx context.Context) error {
		entry, err := serv.entriesRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		entry.Title = req.Title
		entry.Content = req.Content
		entry.WordCount = wordCount(req.Content)
		entry.CategoryID = req.CategoryID
		entry.PrimaryMoodID = req.PrimaryMoodID
		if err = serv.entriesRepo.Update(ctx, entry); err != nil {
			return err
		}
		if err = serv.entriesRepo.DeleteMoods(ctx, id); err != nil {
			return err
		}
		if err = serv.entriesRepo.AddMoods(ctx, id, req.PrimaryMoodID, secondary); err != nil {
			return err
		}
		oldTags, err := serv.entriesRepo.GetTagIDs(ctx, id)
		if err != nil {
			return err
		}
		if err = serv.entriesRepo.DeleteTags(ctx, id); err != nil {
			return err
		}
		if err = serv.catalogRepo.DecrementTagUsage(ctx, oldTags); err != nil {
			return err
		}
		if err = serv.entriesRepo.AddTags(ctx, id, tags); err != nil {
			return err
		}
		if err = serv.catalogRepo.IncrementTagUsage(ctx, tags); err != nil {
			return err
		}
		updated, err = serv.entriesRepo.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("updating entry: %w", err)
	}
	return updated, nil
}

// DeleteEntry leaves the streak untouched.
func (serv *JournalService) DeleteEntry(ctx context.Context, id int64) error {
	err := serv.txm.WithinTx(ctx, func(ctx context.Context) error {
		tags, err := serv.entriesRepo.GetTagIDs(ctx, id)
		if err != nil {
			return err
		}
		if err = serv.catalogRepo.DecrementTagUsage(ctx, tags); err != nil {
			return err
		}
		if err = serv.entriesRepo.DeleteTags(ctx, id); err != nil {
			return err
		}
		if err = serv.entriesRepo.DeleteMoods(ctx, id); err != nil {
			return err
		}
		return serv.entriesRepo.Delete(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("deleting entry: %w", err)
	}
	return nil
}

func (serv *JournalService) HasEntryForDate(ctx context.Context, date time.Time) (bool, error) {
	exists, err := serv.entriesRepo.ExistsForDate(ctx, dateutil.StartOfDay(date))
	if err != nil {
		return false, fmt.Errorf("checking entry for date: %w", err)
	}
	return exists, nil
}

func (serv *JournalService) GetEntryForDate(ctx context.Context, date time.Time) (*entity.JournalEntry, error) {
	entry, err := serv.entriesRepo.GetByDate(ctx, dateutil.StartOfDay(date))
	if err != nil {
		return nil, fmt.Errorf("getting entry for date: %w", err)
	}
	return entry, nil
}

func (serv *JournalService) GetEntry(ctx context.Context, id int64) (*entity.JournalEntry, error) {
	entry, err := serv.entriesRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting entry: %w", err)
	}
	return entry, nil
}
