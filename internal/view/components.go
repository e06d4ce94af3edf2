// Package view builds the component tree of the catalog page and renders it.
//
// Every constructor here is pure: data is resolved beforehand and passed in.
package view

import (
	"bookshelf/internal/book"
	"bookshelf/internal/facet"
)

const (
	// BookListID is the element id of the book grid, the region the
	// filter form refreshes.
	BookListID = "BookList"
	// FilterAction is where the filter form submits.
	FilterAction = "/"
	// FilterParam is the form field carrying a selected author.
	FilterParam = "author"
)

// Selection reports whether an author is currently selected.
type Selection interface {
	Has(author string) bool
}

// Page is the full document shell.
type Page struct {
	Title   string
	Scripts []string
	Search  SearchBox
	Content Content
}

// SearchBox is the search input. It is not wired to any handler.
type SearchBox struct {
	Name string
}

// Content is what a fragment response carries: the facet panel and the grid.
type Content struct {
	Facets FacetPanel
	Books  BookGrid
}

// FacetPanel is the author filter form.
type FacetPanel struct {
	Title  string
	Action string
	Target string
	Param  string
	Groups []FacetGroup
}

// FacetGroup is one collapsible letter bucket.
type FacetGroup struct {
	Letter  string
	Count   int
	Options []AuthorOption
}

type AuthorOption struct {
	Name    string
	Checked bool
}

// BookGrid is the cover grid.
type BookGrid struct {
	ID     string
	Covers []Cover
}

type Cover struct {
	Src   string
	Title string
}

// NewPage wraps content in the document shell.
func NewPage(content Content) Page {
	return Page{
		Title:   "Books",
		Scripts: []string{"/static/catalog.js"},
		Search:  SearchBox{Name: "search"},
		Content: content,
	}
}

// NewContent composes the facet panel and the book grid.
func NewContent(books []book.Book, facets []facet.AuthorFacet, selected Selection) Content {
	return Content{
		Facets: NewFacetPanel(facets, selected),
		Books:  NewBookGrid(books),
	}
}

// NewFacetPanel renders one group per facet, checking every selected author.
func NewFacetPanel(facets []facet.AuthorFacet, selected Selection) FacetPanel {
	groups := make([]FacetGroup, 0, len(facets))
	for _, f := range facets {
		options := make([]AuthorOption, 0, len(f.Authors))
		for _, name := range f.Authors {
			options = append(options, AuthorOption{
				Name:    name,
				Checked: selected != nil && selected.Has(name),
			})
		}
		groups = append(groups, FacetGroup{
			Letter:  f.Letter,
			Count:   f.AuthorCount,
			Options: options,
		})
	}
	return FacetPanel{
		Title:  "Authors",
		Action: FilterAction,
		Target: BookListID,
		Param:  FilterParam,
		Groups: groups,
	}
}

// NewBookGrid renders one cover per book, in order. Books without a cover
// are skipped.
func NewBookGrid(books []book.Book) BookGrid {
	covers := make([]Cover, 0, len(books))
	for _, b := range books {
		if !b.Eligible() {
			continue
		}
		covers = append(covers, Cover{Src: b.CoverImg, Title: b.Title})
	}
	return BookGrid{ID: BookListID, Covers: covers}
}
