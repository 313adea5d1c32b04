package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "bakehouse/internal/domain/errors"
	"bakehouse/internal/infra/catalog"
	"bakehouse/internal/usecase/impl"
)

func newTestCatalogHandler(t *testing.T) *CatalogHandler {
	t.Helper()

	catalogUsecase, err := impl.NewCatalogService(impl.CatalogServiceParams{
		Catalog: catalog.NewStaticCatalog(),
	})
	require.NoError(t, err)

	return NewCatalogHandler(catalogUsecase)
}

func TestCatalogHandler_ListMenus(t *testing.T) {
	handler := newTestCatalogHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/catalog/menus", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.ListMenus(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sensational Sweet Trays")
	assert.Contains(t, rec.Body.String(), "holiday-hamantaschen")
}

func TestCatalogHandler_GetMenuNotFound(t *testing.T) {
	handler := newTestCatalogHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("no-such-menu")

	err := handler.GetMenu(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrMenuNotFound)
}

func TestCatalogHandler_QueryProducts(t *testing.T) {
	handler := newTestCatalogHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/catalog/products?tag=favorite&page_size=1&page=2", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.QueryProducts(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"page":2`)
	assert.Contains(t, rec.Body.String(), `"total":2`)
}

func TestCatalogHandler_QueryProductsBadNumbers(t *testing.T) {
	handler := newTestCatalogHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/catalog/products?page=abc&page_size=-2", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.QueryProducts(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"page":1`)
}

func TestCatalogHandler_ListNews(t *testing.T) {
	handler := newTestCatalogHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/content/news", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.ListNews(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Citrus season pastries return")
}
