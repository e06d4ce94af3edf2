package book

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// sqliteSchema keeps author under NOCASE so equality and ordering on it are
// case-insensitive, like the Postgres lower(author) index.
const sqliteSchema = `
CREATE TABLE IF NOT EXISTS books (
	book_id            TEXT NOT NULL DEFAULT '',
	title              TEXT NOT NULL DEFAULT '',
	series             TEXT NOT NULL DEFAULT '',
	author             TEXT NOT NULL DEFAULT '' COLLATE NOCASE,
	rating             TEXT NOT NULL DEFAULT '',
	description        TEXT NOT NULL DEFAULT '',
	language           TEXT NOT NULL DEFAULT '',
	isbn               TEXT NOT NULL DEFAULT '',
	genres             TEXT NOT NULL DEFAULT '',
	characters         TEXT NOT NULL DEFAULT '',
	book_format        TEXT NOT NULL DEFAULT '',
	edition            TEXT NOT NULL DEFAULT '',
	pages              TEXT NOT NULL DEFAULT '',
	publisher          TEXT NOT NULL DEFAULT '',
	publish_date       TEXT NOT NULL DEFAULT '',
	first_publish_date TEXT NOT NULL DEFAULT '',
	awards             TEXT NOT NULL DEFAULT '',
	num_ratings        TEXT NOT NULL DEFAULT '',
	ratings_by_stars   TEXT NOT NULL DEFAULT '',
	liked_percent      TEXT NOT NULL DEFAULT '',
	setting            TEXT NOT NULL DEFAULT '',
	cover_img          TEXT,
	bbe_score          TEXT NOT NULL DEFAULT '',
	bbe_votes          TEXT NOT NULL DEFAULT '',
	price              TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS books_author_idx ON books (author);`

type SQLiteRepo struct {
	db      *sql.DB
	timeout time.Duration
}

func NewSQLiteRepo(db *sql.DB, timeout time.Duration) *SQLiteRepo {
	return &SQLiteRepo{db: db, timeout: timeout}
}

func (r *SQLiteRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

// EnsureSchema creates the books table if it does not exist yet.
func (r *SQLiteRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, sqliteSchema); err != nil {
		return fmt.Errorf("%w: create books table: %w", ErrStore, err)
	}
	return nil
}

func (r *SQLiteRepo) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *SQLiteRepo) ListTop(ctx context.Context, limit int) ([]Book, error) {
	const query = `
		SELECT ` + columnList + `
		FROM books
		WHERE cover_img IS NOT NULL AND cover_img != ''
		ORDER BY CAST(num_ratings AS INTEGER) DESC
		LIMIT ?`

	books, err := r.queryBooks(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: list top books: %w", ErrStore, err)
	}
	return books, nil
}

func (r *SQLiteRepo) ListByAuthor(ctx context.Context, author string, limit int) ([]Book, error) {
	const query = `
		SELECT ` + columnList + `
		FROM books
		WHERE author = ?
		  AND cover_img IS NOT NULL AND cover_img != ''
		ORDER BY CAST(num_ratings AS INTEGER) DESC
		LIMIT ?`

	books, err := r.queryBooks(ctx, query, author, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: list books by author %q: %w", ErrStore, author, err)
	}
	return books, nil
}

func (r *SQLiteRepo) ListAuthors(ctx context.Context) ([]string, error) {
	const query = `
		SELECT DISTINCT author
		FROM books
		WHERE cover_img IS NOT NULL AND cover_img != ''
		ORDER BY author`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.QueryContext(timeoutCtx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: list authors: %w", ErrStore, err)
	}
	defer func() { _ = rows.Close() }()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("%w: list authors: %w", ErrStore, err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list authors: %w", ErrStore, err)
	}
	return names, nil
}

// BulkInsert loads books inside a single transaction.
func (r *SQLiteRepo) BulkInsert(ctx context.Context, books []Book) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: begin: %w", ErrStore, err)
	}
	defer func() { _ = tx.Rollback() }()

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(
		"INSERT INTO books (%s) VALUES (%s)",
		strings.Join(columns, ", "),
		placeholders,
	))
	if err != nil {
		return 0, fmt.Errorf("%w: prepare insert: %w", ErrStore, err)
	}
	defer func() { _ = stmt.Close() }()

	var n int64
	for _, b := range books {
		if _, err := stmt.ExecContext(ctx, b.values()...); err != nil {
			return 0, fmt.Errorf("%w: insert book %q: %w", ErrStore, b.BookID, err)
		}
		n++
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%w: commit: %w", ErrStore, err)
	}
	return n, nil
}

func (r *SQLiteRepo) queryBooks(ctx context.Context, query string, args ...any) ([]Book, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.QueryContext(timeoutCtx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

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
