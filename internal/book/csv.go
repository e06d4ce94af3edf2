package book

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// csvHeaders are the column names of the Best Books Ever dataset, in
// columnList order.
var csvHeaders = []string{
	"bookId", "title", "series", "author", "rating", "description", "language", "isbn",
	"genres", "characters", "bookFormat", "edition", "pages", "publisher", "publishDate",
	"firstPublishDate", "awards", "numRatings", "ratingsByStars", "likedPercent",
	"setting", "coverImg", "bbeScore", "bbeVotes", "price",
}

// ErrMissingColumn is returned when a CSV header lacks a dataset column.
var ErrMissingColumn = errors.New("csv header is missing a column")

// CSVReader decodes books from a dataset CSV. Columns are matched by header
// name, so their order in the file does not matter.
type CSVReader struct {
	r     *csv.Reader
	index []int
}

// NewCSVReader reads the header line and prepares the column mapping.
func NewCSVReader(src io.Reader) (*CSVReader, error) {
	r := csv.NewReader(src)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	pos := make(map[string]int, len(header))
	for i, h := range header {
		pos[h] = i
	}

	index := make([]int, len(csvHeaders))
	for i, name := range csvHeaders {
		p, ok := pos[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
		index[i] = p
	}
	return &CSVReader{r: r, index: index}, nil
}

// Next returns the next book, or io.EOF after the last record.
func (c *CSVReader) Next() (Book, error) {
	record, err := c.r.Read()
	if err != nil {
		return Book{}, err
	}

	var b Book
	dest := b.fields()
	for i, p := range c.index {
		if p < len(record) {
			*(dest[i].(*string)) = record[p]
		}
	}
	return b, nil
}
