// Package facet groups author names into alphabetical buckets for the
// author filter panel.
package facet

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// AuthorFacet is one first-letter bucket of the author index.
type AuthorFacet struct {
	Letter      string   `json:"letter"`
	Authors     []string `json:"authors"`
	AuthorCount int      `json:"author_count"`
}

type entry struct {
	name string
	key  string
}

// Build folds names into letter buckets.
//
// Names are compared case-insensitively: the first spelling seen for a folded
// name wins and later variants are dropped. Authors are sorted ascending by
// their folded form, with ties kept in input order, and buckets come out in
// the order of their first author.
func Build(names []string) []AuthorFacet {
	fold := cases.Fold()

	seen := make(map[string]struct{}, len(names))
	entries := make([]entry, 0, len(names))
	for _, name := range names {
		key := fold.String(name)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		entries = append(entries, entry{name: name, key: key})
	}

	slices.SortStableFunc(entries, func(a, b entry) int {
		return strings.Compare(a.key, b.key)
	})

	var out []AuthorFacet
	index := make(map[string]int)
	for _, e := range entries {
		bucket := firstRune(e.key)
		i, ok := index[bucket]
		if !ok {
			i = len(out)
			index[bucket] = i
			out = append(out, AuthorFacet{Letter: letterOf(e.name)})
		}
		out[i].Authors = append(out[i].Authors, e.name)
		out[i].AuthorCount++
	}
	return out
}

func firstRune(s string) string {
	if s == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(s)
	return s[:size]
}

// letterOf returns the display letter for a bucket, upper-cased.
func letterOf(name string) string {
	if name == "" {
		return ""
	}
	r, _ := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r))
}
