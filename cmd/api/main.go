package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"
	"github.com/pressly/goose"

	"github.com/limbo/journal/internal/api"
	"github.com/limbo/journal/internal/cache"
	"github.com/limbo/journal/internal/repository"
	"github.com/limbo/journal/internal/service"
	"github.com/limbo/journal/pkg/cleanup"
	"github.com/limbo/journal/pkg/config"
)

func init() {
	service.InitValidator()
}

func main() {
	if err := run(); err != nil {
		slog.Error("journal api stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() (err error) {
	cfg, err := config.New()
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	defer func() {
		if cleanupErr := cleanup.CleanUp(); cleanupErr != nil && err == nil {
			err = cleanupErr
		}
	}()

	dbCfg := repository.PGCfg{
		Address:  cfg.PostgresAddress,
		Username: cfg.PostgresUser,
		Password: cfg.PostgresPassword,
		DB:       cfg.PostgresDB,
	}
	if err = migrate(dbCfg.ConnString()+"?sslmode=disable", cfg.MigrationsDir); err != nil {
		return err
	}
	pool, err := repository.NewPool(ctx, &dbCfg)
	if err != nil {
		return err
	}

	var catalogCache service.CatalogCache
	if cfg.RedisURL != "" {
		rdb, err := cache.NewRedis(cfg.RedisURL)
		if err != nil {
			// catalog reads still work straight from postgres
			slog.Warn("catalog cache disabled", slog.String("error", err.Error()))
		} else {
			cleanup.Register(&cleanup.Job{Name: "closing redis client", F: rdb.Close})
			cc := cache.NewCatalogCache(rdb, cfg.CatalogCacheTTL)
			// migrations may have changed the seeded catalog
			if err := cc.Invalidate(ctx); err != nil {
				slog.Warn("catalog cache invalidation failed", slog.String("error", err.Error()))
			}
			catalogCache = cc
		}
	}

	entriesRepo := repository.NewEntriesRepo(pool)
	catalogRepo := repository.NewCatalogRepo(pool)
	txm := repository.NewTxManager(pool)
	streakService := service.NewStreakService(repository.NewStreakRepo(pool), entriesRepo, txm)

	serv := api.New(&api.ServicesList{
		JournalService: service.NewJournalService(entriesRepo, catalogRepo, streakService, txm),
		CatalogService: service.NewCatalogService(catalogRepo, catalogCache),
		StreakService:  streakService,
		QueryService:   service.NewQueryService(entriesRepo, txm, service.SearchOptions{CaseSensitive: cfg.CaseSensitiveSearch}),
		RequestTimeout: cfg.RequestTimeout,
	})
	return serv.Run(ctx, cfg.APIAddress)
}

func migrate(connStr, dir string) error {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return fmt.Errorf("opening migration connection: %w", err)
	}
	defer db.Close()
	if err = goose.SetDialect("postgres"); err != nil {
		return err
	}
	if err = goose.Up(db, dir); err != nil {
		return fmt.Errorf("applying migrations: %w", err)
	}
	return nil
}
