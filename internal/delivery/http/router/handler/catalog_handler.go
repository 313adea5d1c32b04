package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"bakehouse/internal/delivery/http/response"
	"bakehouse/internal/usecase"
)

// CatalogHandler serves the static catalog and content pages.
type CatalogHandler struct {
	catalogUsecase usecase.CatalogUsecase
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogUsecase usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{catalogUsecase: catalogUsecase}
}

// ListMenus handles GET /catalog/menus
func (h *CatalogHandler) ListMenus(c echo.Context) error {
	menus, err := h.catalogUsecase.ListMenus(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, menus, "")
}

// GetMenu handles GET /catalog/menus/:id
func (h *CatalogHandler) GetMenu(c echo.Context) error {
	menu, err := h.catalogUsecase.GetMenu(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, menu, "")
}

// QueryProducts handles GET /catalog/products
func (h *CatalogHandler) QueryProducts(c echo.Context) error {
	// Malformed numbers fall back to zero; the usecase clamps from there.
	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("page_size"))

	result, err := h.catalogUsecase.QueryProducts(c.Request().Context(), usecase.ProductQuery{
		Search:   c.QueryParam("search"),
		Tag:      c.QueryParam("tag"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, result, "")
}

// ListNews handles GET /content/news
func (h *CatalogHandler) ListNews(c echo.Context) error {
	posts, err := h.catalogUsecase.ListNews(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, posts, "")
}
