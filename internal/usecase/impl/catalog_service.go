package impl

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"bakehouse/internal/domain/entity"
	domainerrors "bakehouse/internal/domain/errors"
	"bakehouse/internal/domain/order"
	"bakehouse/internal/domain/repository"
	"bakehouse/internal/usecase"
)

const defaultProductPageSize = 12

type catalogService struct {
	catalog repository.CatalogRepository
	now     func() time.Time
}

// CatalogServiceParams holds dependencies for the catalog service, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	Catalog repository.CatalogRepository
}

// NewCatalogService creates the catalog usecase.
func NewCatalogService(params CatalogServiceParams) (usecase.CatalogUsecase, error) {
	if len(params.Catalog.Menus()) == 0 {
		return nil, errors.New("no menus configured")
	}

	return &catalogService{
		catalog: params.Catalog,
		now:     time.Now,
	}, nil
}

func (srv *catalogService) ListMenus(ctx context.Context) ([]usecase.MenuView, error) {
	menus := srv.catalog.Menus()
	views := make([]usecase.MenuView, 0, len(menus))
	for _, menu := range menus {
		views = append(views, usecase.MenuView{
			Menu:   menu,
			Status: order.MenuAvailability(menu, srv.now()),
		})
	}

	return views, nil
}

func (srv *catalogService) GetMenu(ctx context.Context, id string) (*usecase.MenuView, error) {
	menu, err := srv.catalog.MenuByID(id)
	if err != nil {
		return nil, domainerrors.ErrMenuNotFound
	}

	return &usecase.MenuView{
		Menu:   menu,
		Status: order.MenuAvailability(menu, srv.now()),
	}, nil
}

func (srv *catalogService) QueryProducts(ctx context.Context, query usecase.ProductQuery) (*usecase.ProductPage, error) {
	term := strings.ToLower(strings.TrimSpace(query.Search))

	matched := make([]entity.Product, 0)
	for _, product := range srv.catalog.Products() {
		if query.Tag != "" && !product.HasTag(query.Tag) {
			continue
		}
		if term != "" && !productMatches(product, term) {
			continue
		}
		matched = append(matched, product)
	}

	pageSize := query.PageSize
	if pageSize < 1 {
		pageSize = defaultProductPageSize
	}

	totalPages := (len(matched) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	page := query.Page
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(matched) {
		start = len(matched)
	}
	if end > len(matched) {
		end = len(matched)
	}

	return &usecase.ProductPage{
		Items:      matched[start:end],
		TotalCount: len(matched),
		TotalPages: totalPages,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

func (srv *catalogService) ListNews(ctx context.Context) ([]entity.NewsPost, error) {
	return srv.catalog.News(), nil
}

// productMatches checks the lowercased search term against the combined
// searchable text of a product: its name, one-liner, and variant items.
func productMatches(product entity.Product, term string) bool {
	parts := make([]string, 0, 2+len(product.VariantGroups))
	if product.Name != "" {
		parts = append(parts, product.Name)
	}
	if product.OneLiner != "" {
		parts = append(parts, product.OneLiner)
	}
	for _, group := range product.VariantGroups {
		parts = append(parts, group.Items...)
	}

	return strings.Contains(strings.ToLower(strings.Join(parts, " ")), term)
}
