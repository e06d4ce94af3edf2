package browse

import (
	"context"

	"bookshelf/internal/book"
	"bookshelf/internal/facet"
)

//go:generate mockgen -destination=mock_catalog.go -package=browse bookshelf/internal/browse Catalog

// Catalog is the read side of the catalog store used to answer a browse request.
type Catalog interface {
	ListTopBooks(ctx context.Context) ([]book.Book, error)
	ListBooksByAuthor(ctx context.Context, author string) ([]book.Book, error)
	ListAuthorFacets(ctx context.Context) ([]facet.AuthorFacet, error)
}

var _ Catalog = (*book.Service)(nil)
