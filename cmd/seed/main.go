package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"bookshelf/internal/book"
	"bookshelf/internal/config"
	"bookshelf/internal/platform/database"
	"bookshelf/internal/platform/logger"
)

func main() {
	var (
		file  = flag.String("file", "books.csv", "Path to the Best Books Ever CSV export")
		batch = flag.Int("batch", 1000, "Rows per insert batch")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	logger.Init(cfg.Env, cfg.LogLevel)

	if err := run(context.Background(), cfg, *file, *batch); err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}
}

func run(ctx context.Context, cfg config.Config, path string, batch int) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	reader, err := book.NewCSVReader(f)
	if err != nil {
		return err
	}

	loader, closeLoader, err := openLoader(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeLoader()

	start := time.Now()
	n, err := importBooks(ctx, reader, loader, batch)
	if err != nil {
		return err
	}
	log.Info().Int64("rows", n).Dur("took", time.Since(start)).Msg("seed complete")
	return nil
}

func openLoader(ctx context.Context, cfg config.Config) (book.Loader, func(), error) {
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

	// The books table comes from cmd/migrate.
	pool, err := database.OpenPostgres(ctx, cfg.DBDSN)
	if err != nil {
		return nil, nil, err
	}
	return book.NewPostgresRepo(pool, cfg.DBQueryTimeout), pool.Close, nil
}

// importBooks streams records from r into loader, batch rows at a time.
func importBooks(ctx context.Context, r *book.CSVReader, loader book.Loader, batch int) (int64, error) {
	if batch < 1 {
		batch = 1
	}
	var (
		total int64
		buf   = make([]book.Book, 0, batch)
	)
	flush := func() error {
		if len(buf) == 0 {
			return nil
		}
		n, err := loader.BulkInsert(ctx, buf)
		if err != nil {
			return err
		}
		total += n
		log.Debug().Int64("rows", total).Msg("batch inserted")
		buf = buf[:0]
		return nil
	}

	for line := 2; ; line++ {
		b, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return total, fmt.Errorf("csv line %d: %w", line, err)
		}
		buf = append(buf, b)
		if len(buf) == batch {
			if err := flush(); err != nil {
				return total, err
			}
		}
	}
	if err := flush(); err != nil {
		return total, err
	}
	return total, nil
}
