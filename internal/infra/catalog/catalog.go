// Package catalog provides the compiled-in storefront catalog. Menus,
// products, and news posts are fixed at build time; publishing a change
// means shipping a new binary, which keeps the storefront consistent with
// the printed flyers it mirrors.
package catalog

import (
	"bakehouse/internal/domain/entity"
	"bakehouse/internal/domain/repository"
)

type staticCatalog struct {
	menus    []entity.Menu
	menuByID map[string]entity.Menu
	products []entity.Product
	news     []entity.NewsPost
}

// NewStaticCatalog creates the catalog repository backed by the built-in
// data set.
func NewStaticCatalog() repository.CatalogRepository {
	byID := make(map[string]entity.Menu, len(menus))
	for _, menu := range menus {
		byID[menu.ID] = menu
	}

	return &staticCatalog{
		menus:    menus,
		menuByID: byID,
		products: products,
		news:     newsPosts,
	}
}

func (c *staticCatalog) Menus() []entity.Menu {
	return c.menus
}

func (c *staticCatalog) MenuByID(id string) (entity.Menu, error) {
	menu, ok := c.menuByID[id]
	if !ok {
		return entity.Menu{}, repository.ErrMenuNotFound
	}

	return menu, nil
}

func (c *staticCatalog) Products() []entity.Product {
	return c.products
}

func (c *staticCatalog) News() []entity.NewsPost {
	return c.news
}
