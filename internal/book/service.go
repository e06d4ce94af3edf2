package book

import (
	"context"
	"slices"

	"bookshelf/internal/facet"
)

// Service is the catalog store seen by the browse pipeline.
type Service struct {
	repo Repository
}

// NewService creates a new book service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListTopBooks returns the most rated eligible books, at most TopN.
func (s *Service) ListTopBooks(ctx context.Context) ([]Book, error) {
	books, err := s.repo.ListTop(ctx, TopN)
	if err != nil {
		return nil, err
	}
	return eligibleOnly(books), nil
}

// ListBooksByAuthor returns the most rated eligible books of one author, at most TopN.
func (s *Service) ListBooksByAuthor(ctx context.Context, author string) ([]Book, error) {
	books, err := s.repo.ListByAuthor(ctx, author, TopN)
	if err != nil {
		return nil, err
	}
	return eligibleOnly(books), nil
}

// ListAuthorFacets returns the alphabetical author index.
func (s *Service) ListAuthorFacets(ctx context.Context) ([]facet.AuthorFacet, error) {
	names, err := s.repo.ListAuthors(ctx)
	if err != nil {
		return nil, err
	}
	return facet.Build(names), nil
}

func eligibleOnly(books []Book) []Book {
	if !slices.ContainsFunc(books, func(b Book) bool { return !b.Eligible() }) {
		return books
	}
	out := make([]Book, 0, len(books))
	for _, b := range books {
		if b.Eligible() {
			out = append(out, b)
		}
	}
	return out
}
