package browse

import (
	"context"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshelf/internal/book"
	"bookshelf/internal/facet"
	"bookshelf/internal/testutil"
)

func TestService_Resolve_EmptySelection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockCatalog := NewMockCatalog(ctrl)
	service := NewService(mockCatalog, 4)

	top := testutil.Books("Top", 30)
	mockCatalog.EXPECT().ListTopBooks(gomock.Any()).Return(top, nil)

	got, err := service.Resolve(context.Background(), ParseSelection(nil))
	require.NoError(t, err)
	assert.Equal(t, top, got)
}

func TestService_Resolve_ConcatenatesInSelectionOrder(t *testing.T) {
	for _, fanout := range []int{0, 1, 4} {
		t.Run(fmt.Sprintf("fanout=%d", fanout), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			mockCatalog := NewMockCatalog(ctrl)
			service := NewService(mockCatalog, fanout)

			baker := testutil.Books("Baker", 30)
			adams := testutil.Books("Adams", 2)
			mockCatalog.EXPECT().ListBooksByAuthor(gomock.Any(), "Baker").Return(baker, nil).Times(1)
			mockCatalog.EXPECT().ListBooksByAuthor(gomock.Any(), "Adams").Return(adams, nil).Times(1)

			got, err := service.Resolve(context.Background(), ParseSelection([]string{"Baker", "Adams", "Baker"}))
			require.NoError(t, err)
			assert.Equal(t, append(append([]book.Book{}, baker...), adams...), got)
		})
	}
}

func TestService_Resolve_NoMatches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockCatalog := NewMockCatalog(ctrl)
	service := NewService(mockCatalog, 2)

	mockCatalog.EXPECT().ListBooksByAuthor(gomock.Any(), "Nobody").Return(nil, nil)

	got, err := service.Resolve(context.Background(), ParseSelection([]string{"Nobody"}))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestService_Resolve_AnyFailureAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockCatalog := NewMockCatalog(ctrl)
	service := NewService(mockCatalog, 1)

	mockCatalog.EXPECT().ListBooksByAuthor(gomock.Any(), "Adams").Return(testutil.Books("Adams", 3), nil)
	mockCatalog.EXPECT().ListBooksByAuthor(gomock.Any(), "Baker").Return(nil, book.ErrStore)

	got, err := service.Resolve(context.Background(), ParseSelection([]string{"Adams", "Baker"}))
	assert.ErrorIs(t, err, book.ErrStore)
	assert.Nil(t, got)
}

func TestService_Browse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockCatalog := NewMockCatalog(ctrl)
	service := NewService(mockCatalog, 4)

	facets := []facet.AuthorFacet{{Letter: "B", Authors: []string{"Baker"}, AuthorCount: 1}}
	baker := testutil.Books("Baker", 1)

	t.Run("success", func(t *testing.T) {
		mockCatalog.EXPECT().ListAuthorFacets(gomock.Any()).Return(facets, nil)
		mockCatalog.EXPECT().ListBooksByAuthor(gomock.Any(), "Baker").Return(baker, nil)

		sel := ParseSelection([]string{"Baker"})
		got, err := service.Browse(context.Background(), sel)
		require.NoError(t, err)
		assert.Equal(t, facets, got.Facets)
		assert.Equal(t, baker, got.Books)
		assert.True(t, got.Selection.Has("Baker"))
	})

	t.Run("facet failure", func(t *testing.T) {
		mockCatalog.EXPECT().ListAuthorFacets(gomock.Any()).Return(nil, book.ErrStore)

		_, err := service.Browse(context.Background(), ParseSelection(nil))
		assert.ErrorIs(t, err, book.ErrStore)
	})
}
