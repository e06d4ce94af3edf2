package browse

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"bookshelf/internal/book"
	"bookshelf/internal/facet"
)

// ErrNotFound is returned when request metadata cannot be read.
var ErrNotFound = errors.New("request metadata not found")

// Result is everything one catalog page needs.
type Result struct {
	Books     []book.Book
	Facets    []facet.AuthorFacet
	Selection Selection
}

// Service resolves a Selection against the Catalog.
type Service struct {
	catalog Catalog
	fanout  int
}

// NewService creates a browse service. fanout bounds how many per-author
// queries run at once; values below 1 mean one at a time.
func NewService(catalog Catalog, fanout int) *Service {
	if fanout < 1 {
		fanout = 1
	}
	return &Service{catalog: catalog, fanout: fanout}
}

// Browse loads the author index and the books matching sel.
func (s *Service) Browse(ctx context.Context, sel Selection) (Result, error) {
	facets, err := s.catalog.ListAuthorFacets(ctx)
	if err != nil {
		return Result{}, err
	}
	books, err := s.Resolve(ctx, sel)
	if err != nil {
		return Result{}, err
	}
	return Result{Books: books, Facets: facets, Selection: sel}, nil
}

// Resolve returns the top books when sel is empty. Otherwise it returns each
// selected author's books, concatenated in selection order. Each author's
// list is capped and sorted by the store; the whole is not re-sorted.
func (s *Service) Resolve(ctx context.Context, sel Selection) ([]book.Book, error) {
	if sel.Empty() {
		return s.catalog.ListTopBooks(ctx)
	}

	names := sel.Names()
	perAuthor := make([][]book.Book, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.fanout)
	for i, name := range names {
		g.Go(func() error {
			books, err := s.catalog.ListBooksByAuthor(gctx, name)
			if err != nil {
				return err
			}
			perAuthor[i] = books
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []book.Book
	for _, books := range perAuthor {
		out = append(out, books...)
	}
	return out, nil
}
