package testutil

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBooks(t *testing.T) {
	books := Books("Baker", 3)

	assert.Len(t, books, 3)
	for _, b := range books {
		assert.Equal(t, "Baker", b.Author)
		assert.True(t, b.Eligible())
	}
	assert.Equal(t, "1000", books[0].NumRatings)
	assert.True(t, TestBook.Eligible())
}

func TestNewPartialRequest(t *testing.T) {
	r := NewPartialRequest(http.MethodGet, "/", url.Values{"author": {"Baker", "apple"}})

	assert.Equal(t, "true", r.Header.Get("X-Request"))
	assert.Equal(t, []string{"Baker", "apple"}, r.URL.Query()["author"])
}

func TestRecordHTTPResponse(t *testing.T) {
	w := httptest.NewRecorder()
	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(http.StatusTeapot)
	_, _ = w.WriteString("<p>hi</p>")

	got := RecordHTTPResponse(w)

	AssertResponseCode(t, got.Code, http.StatusTeapot)
	assert.Equal(t, "<p>hi</p>", got.Body)
	assert.Equal(t, "text/html", got.Header.Get("Content-Type"))
}
