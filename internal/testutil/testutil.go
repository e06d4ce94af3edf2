package testutil

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"

	"bookshelf/internal/book"
)

// TestBook is a displayable catalog row for testing
var TestBook = book.Book{
	BookID:     "2767052-the-hunger-games",
	Title:      "The Hunger Games",
	Series:     "The Hunger Games #1",
	Author:     "Suzanne Collins",
	Rating:     "4.33",
	Language:   "English",
	NumRatings: "6376780",
	CoverImg:   "https://i.gr-assets.com/images/S/compressed.photo.goodreads.com/books/1586722975l/2767052.jpg",
}

// Books returns n displayable books by author, most rated first.
func Books(author string, n int) []book.Book {
	out := make([]book.Book, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, book.Book{
			BookID:     fmt.Sprintf("%s-%d", author, i),
			Title:      fmt.Sprintf("%s volume %d", author, i+1),
			Author:     author,
			NumRatings: fmt.Sprint(1000 - i),
			CoverImg:   fmt.Sprintf("https://img/%s/%d.jpg", author, i),
		})
	}
	return out
}

// NewRequest creates a new HTTP request with the given query for testing
func NewRequest(method, path string, query url.Values) *http.Request {
	r := httptest.NewRequest(method, path, nil)
	if len(query) > 0 {
		r.URL.RawQuery = query.Encode()
	}
	return r
}

// NewPartialRequest creates a request the way the catalog script sends it
func NewPartialRequest(method, path string, query url.Values) *http.Request {
	r := NewRequest(method, path, query)
	r.Header.Set("X-Request", "true")
	return r
}

// RecordResponse is a decoded HTML response
type RecordResponse struct {
	Code   int
	Header http.Header
	Body   string
}

// RecordHTTPResponse records the HTTP response
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Body:   string(bodyBytes),
	}
}

// AssertResponseCode checks if the response code matches expected
func AssertResponseCode(t interface {
	Errorf(format string, args ...any)
}, got, want int) {
	if got != want {
		t.Errorf("got status code %d, want %d", got, want)
	}
}
