package book

import (
	"context"
)

//go:generate mockgen -destination=mock_repository.go -package=book bookshelf/internal/book Repository

// Repository defines the read contract of the catalog store.
//
// Every listing only returns books with a non-empty cover image, ordered by
// numRatings (numeric) descending.
type Repository interface {
	ListTop(ctx context.Context, limit int) ([]Book, error)
	// ListByAuthor matches author case-insensitively.
	ListByAuthor(ctx context.Context, author string, limit int) ([]Book, error)
	// ListAuthors returns the distinct author names of eligible books.
	ListAuthors(ctx context.Context) ([]string, error)
}

// Loader bulk-loads books, used by the importer.
type Loader interface {
	BulkInsert(ctx context.Context, books []Book) (int64, error)
}
