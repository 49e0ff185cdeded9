package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/roamgames/globetrotter/internal/cache"
	"github.com/roamgames/globetrotter/internal/config"
	"github.com/roamgames/globetrotter/internal/database"
	"github.com/roamgames/globetrotter/internal/migrations"
	"github.com/roamgames/globetrotter/internal/quiz"
	"github.com/roamgames/globetrotter/internal/server"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	// --- SQLite ---
	db, err := database.Open(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("connecting to sqlite: %w", err)
	}
	defer db.Close()

	if err := migrations.Run(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	logger.Info("connected to sqlite", "path", cfg.DBPath)

	store := server.NewSQLiteStore(db)

	if cfg.Seed {
		if err := server.Seed(ctx, logger, store); err != nil {
			return fmt.Errorf("seeding catalog: %w", err)
		}
	}

	// --- Redis (optional catalog cache) ---
	var rdb *redis.Client
	quizStore := quiz.Store(store)
	if cfg.RedisURL != "" {
		rdb, err = openRedis(ctx, cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("connecting to redis: %w", err)
		}
		defer rdb.Close()

		catalog := cache.NewCatalog(rdb, store, cfg.CatalogTTL)
		if err := catalog.Invalidate(ctx); err != nil {
			logger.Warn("dropping stale catalog cache", "error", err)
		}
		quizStore = cachedStore{Store: store, catalog: catalog}
		logger.Info("connected to redis", "catalog_ttl", cfg.CatalogTTL)
	}

	svc := quiz.NewService(quizStore, cfg.ClueCount, cfg.OptionCount)

	// --- HTTP Server ---
	srv := server.New(cfg.HTTPAddr, logger, svc, db, rdb)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting http server", "addr", cfg.HTTPAddr)
		return srv.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")
		return srv.Shutdown(context.Background())
	})

	return g.Wait()
}

func openRedis(ctx context.Context, rawURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}
	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}
	return rdb, nil
}

// cachedStore routes catalog reads through Redis and everything else to
// SQLite directly.
type cachedStore struct {
	quiz.Store
	catalog *cache.Catalog
}

func (s cachedStore) ListDestinations(ctx context.Context) ([]quiz.Destination, error) {
	return s.catalog.ListDestinations(ctx)
}
