package book

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *PostgresRepo) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

func (r *PostgresRepo) ListTop(ctx context.Context, limit int) ([]Book, error) {
	const query = `
		SELECT ` + columnList + `
		FROM books
		WHERE cover_img IS NOT NULL AND cover_img <> ''
		ORDER BY num_ratings_sort DESC
		LIMIT $1`

	books, err := r.queryBooks(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: list top books: %w", ErrStore, err)
	}
	return books, nil
}

func (r *PostgresRepo) ListByAuthor(ctx context.Context, author string, limit int) ([]Book, error) {
	const query = `
		SELECT ` + columnList + `
		FROM books
		WHERE lower(author) = lower($1)
		  AND cover_img IS NOT NULL AND cover_img <> ''
		ORDER BY num_ratings_sort DESC
		LIMIT $2`

	books, err := r.queryBooks(ctx, query, author, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: list books by author %q: %w", ErrStore, author, err)
	}
	return books, nil
}

func (r *PostgresRepo) ListAuthors(ctx context.Context) ([]string, error) {
	const query = `
		SELECT DISTINCT author
		FROM books
		WHERE author IS NOT NULL
		  AND cover_img IS NOT NULL AND cover_img <> ''
		ORDER BY author`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: list authors: %w", ErrStore, err)
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("%w: list authors: %w", ErrStore, err)
	}
	return names, nil
}

// BulkInsert loads books with COPY.
func (r *PostgresRepo) BulkInsert(ctx context.Context, books []Book) (int64, error) {
	rows := make([][]any, 0, len(books))
	for _, b := range books {
		rows = append(rows, b.values())
	}
	n, err := r.db.CopyFrom(ctx, pgx.Identifier{"books"}, columns, pgx.CopyFromRows(rows))
	if err != nil {
		return n, fmt.Errorf("%w: copy books: %w", ErrStore, err)
	}
	return n, nil
}

func (r *PostgresRepo) queryBooks(ctx context.Context, query string, args ...any) ([]Book, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
