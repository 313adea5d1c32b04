package impl

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bakehouse/internal/domain/entity"
	domainerrors "bakehouse/internal/domain/errors"
	"bakehouse/internal/infra/catalog"
	"bakehouse/internal/usecase"
)

func newTestCatalogService(t *testing.T, now time.Time) *catalogService {
	t.Helper()

	return &catalogService{
		catalog: catalog.NewStaticCatalog(),
		now:     func() time.Time { return now },
	}
}

func TestCatalogService_ListMenus(t *testing.T) {
	service := newTestCatalogService(t, inSeason)

	views, err := service.ListMenus(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 3)

	assert.Equal(t, "standard-trays", views[0].ID)
	assert.Equal(t, entity.StatusAvailable, views[0].Status)
	assert.Equal(t, entity.StatusAvailable, views[1].Status)
}

func TestCatalogService_ListMenusOutOfSeason(t *testing.T) {
	service := newTestCatalogService(t, time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC))

	views, err := service.ListMenus(context.Background())
	require.NoError(t, err)

	// The year-round menu stays available; the dated ones fall out of season.
	assert.Equal(t, entity.StatusAvailable, views[0].Status)
	assert.Equal(t, entity.StatusOutOfSeason, views[1].Status)
	assert.Equal(t, entity.StatusOutOfSeason, views[2].Status)
}

func TestCatalogService_GetMenu(t *testing.T) {
	service := newTestCatalogService(t, inSeason)

	view, err := service.GetMenu(context.Background(), "holiday-hamantaschen")
	require.NoError(t, err)
	assert.Equal(t, "Holiday Hamantaschen", view.Title)
	require.NotNil(t, view.Matrix)
	assert.Len(t, view.Matrix.Rows, 4)
	assert.Len(t, view.Matrix.Columns, 3)
}

func TestCatalogService_GetMenuUnknown(t *testing.T) {
	service := newTestCatalogService(t, inSeason)

	_, err := service.GetMenu(context.Background(), "no-such-menu")
	assert.ErrorIs(t, err, domainerrors.ErrMenuNotFound)
}

func TestCatalogService_QueryProductsAll(t *testing.T) {
	service := newTestCatalogService(t, inSeason)

	page, err := service.QueryProducts(context.Background(), usecase.ProductQuery{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, 6, page.TotalCount)
	assert.Equal(t, 1, page.TotalPages)
	assert.Len(t, page.Items, 6)
}

func TestCatalogService_QueryProductsByTag(t *testing.T) {
	service := newTestCatalogService(t, inSeason)

	page, err := service.QueryProducts(context.Background(), usecase.ProductQuery{Tag: "favorite", Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, 2, page.TotalCount)
	for _, product := range page.Items {
		assert.True(t, product.HasTag("favorite"))
	}
}

func TestCatalogService_QueryProductsSearchMatchesVariants(t *testing.T) {
	service := newTestCatalogService(t, inSeason)

	// "oatmeal" only appears in the cookie variants, not in any name.
	page, err := service.QueryProducts(context.Background(), usecase.ProductQuery{Search: "  OATMEAL ", Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "chocolate-chip-cookies", page.Items[0].ID)
}

func TestCatalogService_QueryProductsSearchAndTagCombine(t *testing.T) {
	service := newTestCatalogService(t, inSeason)

	page, err := service.QueryProducts(context.Background(), usecase.ProductQuery{
		Search: "chocolate", Tag: "favorite", Page: 1, PageSize: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, page.TotalCount)
}

func TestCatalogService_QueryProductsNoMatches(t *testing.T) {
	service := newTestCatalogService(t, inSeason)

	page, err := service.QueryProducts(context.Background(), usecase.ProductQuery{Search: "sourdough", Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Zero(t, page.TotalCount)
	assert.Equal(t, 1, page.TotalPages)
	assert.Empty(t, page.Items)
}

func TestCatalogService_QueryProductsPaging(t *testing.T) {
	service := newTestCatalogService(t, inSeason)
	ctx := context.Background()

	page, err := service.QueryProducts(ctx, usecase.ProductQuery{Page: 2, PageSize: 4})
	require.NoError(t, err)
	assert.Equal(t, 6, page.TotalCount)
	assert.Equal(t, 2, page.TotalPages)
	assert.Len(t, page.Items, 2)

	// Out-of-range pages clamp instead of erroring.
	clamped, err := service.QueryProducts(ctx, usecase.ProductQuery{Page: 99, PageSize: 4})
	require.NoError(t, err)
	assert.Equal(t, 2, clamped.Page)
	assert.Equal(t, page.Items, clamped.Items)

	low, err := service.QueryProducts(ctx, usecase.ProductQuery{Page: -3, PageSize: 4})
	require.NoError(t, err)
	assert.Equal(t, 1, low.Page)
}

func TestCatalogService_QueryProductsDefaultPageSize(t *testing.T) {
	service := newTestCatalogService(t, inSeason)

	page, err := service.QueryProducts(context.Background(), usecase.ProductQuery{Page: 1})
	require.NoError(t, err)
	assert.Equal(t, defaultProductPageSize, page.PageSize)
	assert.Len(t, page.Items, 6)
}

func TestCatalogService_ListNews(t *testing.T) {
	service := newTestCatalogService(t, inSeason)

	posts, err := service.ListNews(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "Citrus season pastries return", posts[0].Title)
}
