package service

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"time"

	"github.com/limbo/journal/internal/repository"
	"github.com/limbo/journal/pkg/dateutil"
	"github.com/limbo/journal/pkg/entity"
)

type StreakService struct {
	streakRepo  repository.StreakRepositoryI
	entriesRepo repository.EntriesRepositoryI
	txm         repository.TxManagerI
	now         func() time.Time
}

func NewStreakService(streakRepo repository.StreakRepositoryI, entriesRepo repository.EntriesRepositoryI, txm repository.TxManagerI) *StreakService {
	return NewStreakServiceWithClock(streakRepo, entriesRepo, txm, time.Now)
}

// NewStreakServiceWithClock uses now to decide what today is.
func NewStreakServiceWithClock(streakRepo repository.StreakRepositoryI, entriesRepo repository.EntriesRepositoryI, txm repository.TxManagerI, now func() time.Time) *StreakService {
	if streakRepo == nil || entriesRepo == nil || txm == nil || now == nil {
		log.Fatal("on streak service provided nil dependencies")
	}
	return &StreakService{
		streakRepo:  streakRepo,
		entriesRepo: entriesRepo,
		txm:         txm,
		now:         now,
	}
}

func (serv *StreakService) RecordEntry(ctx context.Context, date time.Time) error {
	err := serv.txm.WithinTx(ctx, func(ctx context.Context) error {
		streak, err := serv.streakRepo.Get(ctx)
		if err != nil {
			return err
		}
		if streak == nil {
			streak = entity.NewStreak(date)
		} else {
			streak.Record(date)
		}
		return serv.streakRepo.Save(ctx, streak)
	})
	if err != nil {
		return fmt.Errorf("recording streak: %w", err)
	}
	return nil
}

func (serv *StreakService) GetStreakInfo(ctx context.Context) (entity.StreakInfo, error) {
	var info entity.StreakInfo
	err := serv.txm.WithinTx(ctx, func(ctx context.Context) error {
		streak, err := serv.streakRepo.Get(ctx)
		if err != nil || streak == nil {
			return err
		}
		if streak.Expire(serv.now()) {
			slog.InfoContext(ctx, "current streak lapsed", slog.Time("last_entry_date", *streak.LastEntryDate))
			if err = serv.streakRepo.Save(ctx, streak); err != nil {
				return err
			}
		}
		info = streak.Info()
		return nil
	})
	if err != nil {
		return entity.StreakInfo{}, fmt.Errorf("getting streak info: %w", err)
	}
	return info, nil
}

func (serv *StreakService) GetMissedDays(ctx context.Context, start, end time.Time) ([]time.Time, error) {
	if err := validateSpan(start, end); err != nil {
		return nil, err
	}
	written, err := serv.entriesRepo.DatesInRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("getting missed days: %w", err)
	}
	seen := make(map[time.Time]struct{}, len(written))
	for _, d := range written {
		seen[dateutil.StartOfDay(d)] = struct{}{}
	}
	missed := make([]time.Time, 0)
	for _, d := range dateutil.Range(start, end) {
		if _, ok := seen[d]; !ok {
			missed = append(missed, d)
		}
	}
	return missed, nil
}
