package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"bookshelf/internal/book"
	"bookshelf/internal/browse"
	"bookshelf/internal/config"
	"bookshelf/internal/platform/cache"
	"bookshelf/internal/platform/database"
	"bookshelf/internal/platform/logger"
	"bookshelf/static"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger.Init(cfg.Env, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	var repo book.Repository = store
	if cfg.CacheEnabled() {
		rdb := cache.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		defer func() { _ = rdb.Close() }()
		if err := rdb.Connect(ctx); err != nil {
			log.Warn().Err(err).Msg("redis unavailable; reads go straight to the store")
		}
		repo = book.NewCachedRepo(store, rdb.Client, cfg.CacheTTL)
	}

	bookService := book.NewService(repo)
	browseHandler := browse.NewHTTPHandler(browse.NewService(bookService, cfg.BrowseFanout))

	router := newRouter(browseHandler, store, static.FS)

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      withMiddleware(ctx, cfg, router),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr).Str("env", cfg.Env).Msg("starting server")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

// catalogStore is what the server needs from a backing database.
type catalogStore interface {
	book.Repository
	pinger
}

func openStore(ctx context.Context, cfg config.Config) (catalogStore, func(), error) {
	if path, ok := cfg.SQLitePath(); ok {
		db, err := database.OpenSQLite(ctx, path)
		if err != nil {
			return nil, nil, err
		}
		repo := book.NewSQLiteRepo(db, cfg.DBQueryTimeout)
		if err := repo.EnsureSchema(ctx); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return repo, func() { _ = db.Close() }, nil
	}

	pool, err := database.OpenPostgres(ctx, cfg.DBDSN)
	if err != nil {
		return nil, nil, err
	}
	return book.NewPostgresRepo(pool, cfg.DBQueryTimeout), pool.Close, nil
}
