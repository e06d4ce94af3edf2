package main

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshelf/internal/book"
)

const header = "bookId,title,series,author,rating,description,language,isbn,genres,characters," +
	"bookFormat,edition,pages,publisher,publishDate,firstPublishDate,awards,numRatings," +
	"ratingsByStars,likedPercent,setting,coverImg,bbeScore,bbeVotes,price\n"

func row(id, author string) string {
	fields := make([]string, 25)
	fields[0] = id
	fields[1] = "T" + id
	fields[3] = author
	fields[17] = "100"
	fields[21] = "https://img/" + id + ".jpg"
	return strings.Join(fields, ",") + "\n"
}

type recordingLoader struct {
	batches [][]book.Book
	err     error
}

func (l *recordingLoader) BulkInsert(_ context.Context, books []book.Book) (int64, error) {
	if l.err != nil {
		return 0, l.err
	}
	l.batches = append(l.batches, append([]book.Book(nil), books...))
	return int64(len(books)), nil
}

func TestImportBooks_Batches(t *testing.T) {
	csv := header + row("1", "Adams") + row("2", "Baker") + row("3", "Clark")
	r, err := book.NewCSVReader(strings.NewReader(csv))
	require.NoError(t, err)

	loader := &recordingLoader{}
	n, err := importBooks(context.Background(), r, loader, 2)
	require.NoError(t, err)

	assert.Equal(t, int64(3), n)
	require.Len(t, loader.batches, 2)
	assert.Len(t, loader.batches[0], 2)
	assert.Equal(t, "Clark", loader.batches[1][0].Author)
	assert.Equal(t, "https://img/1.jpg", loader.batches[0][0].CoverImg)
}

func TestImportBooks_Empty(t *testing.T) {
	r, err := book.NewCSVReader(strings.NewReader(header))
	require.NoError(t, err)

	loader := &recordingLoader{}
	n, err := importBooks(context.Background(), r, loader, 10)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, loader.batches)
}

func TestImportBooks_LoaderError(t *testing.T) {
	r, err := book.NewCSVReader(strings.NewReader(header + row("1", "Adams")))
	require.NoError(t, err)

	_, err = importBooks(context.Background(), r, &recordingLoader{err: book.ErrStore}, 10)
	assert.True(t, errors.Is(err, book.ErrStore))
}
