package browse

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"bookshelf/internal/book"
	"bookshelf/internal/facet"
	"bookshelf/internal/testutil"
)

func TestHTTPHandler_Index(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockCatalog := NewMockCatalog(ctrl)
	handler := NewHTTPHandler(NewService(mockCatalog, 4))

	facets := []facet.AuthorFacet{
		{Letter: "A", Authors: []string{"Adams", "apple"}, AuthorCount: 2},
		{Letter: "B", Authors: []string{"Baker"}, AuthorCount: 1},
	}

	t.Run("full page without filter", func(t *testing.T) {
		mockCatalog.EXPECT().ListAuthorFacets(gomock.Any()).Return(facets, nil)
		mockCatalog.EXPECT().ListTopBooks(gomock.Any()).Return(testutil.Books("Top", 3), nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		handler.Index(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Equal(t, PartialRequestHeader, w.Header().Get("Vary"))
		body := w.Body.String()
		assert.True(t, strings.HasPrefix(body, "<!DOCTYPE html>"))
		assert.Equal(t, 3, strings.Count(body, "<img "))
		assert.NotContains(t, body, "checked")
	})

	t.Run("fragment with filter", func(t *testing.T) {
		mockCatalog.EXPECT().ListAuthorFacets(gomock.Any()).Return(facets, nil)
		mockCatalog.EXPECT().ListBooksByAuthor(gomock.Any(), "Baker").Return(testutil.Books("Baker", 2), nil)
		mockCatalog.EXPECT().ListBooksByAuthor(gomock.Any(), "apple").Return(testutil.Books("apple", 1), nil)

		w := httptest.NewRecorder()
		r := testutil.NewPartialRequest(http.MethodGet, "/", url.Values{"author": {"Baker", "apple", "Baker"}})

		handler.Index(w, r)

		resp := testutil.RecordHTTPResponse(w)
		testutil.AssertResponseCode(t, resp.Code, http.StatusOK)
		body := resp.Body
		assert.NotContains(t, body, "<!DOCTYPE html>")
		assert.Contains(t, body, `value="Baker" checked="checked"`)
		assert.Contains(t, body, `value="apple" checked="checked"`)
		assert.Contains(t, body, `value="Adams">`)
		assert.Less(t, strings.Index(body, "/Baker/1.jpg"), strings.Index(body, "/apple/0.jpg"))
	})

	t.Run("store error", func(t *testing.T) {
		mockCatalog.EXPECT().ListAuthorFacets(gomock.Any()).Return(nil, book.ErrStore)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		handler.Index(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "catalog store failure")
	})

	t.Run("malformed query", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.URL.RawQuery = "author=%zz"

		handler.Index(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("head has no body", func(t *testing.T) {
		mockCatalog.EXPECT().ListAuthorFacets(gomock.Any()).Return(facets, nil)
		mockCatalog.EXPECT().ListTopBooks(gomock.Any()).Return(nil, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodHead, "/", nil)

		handler.Index(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Zero(t, w.Body.Len())
	})
}
