// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"bakehouse/internal/domain/entity"
)

// MenuView pairs a menu with its availability status evaluated at request
// time.
type MenuView struct {
	entity.Menu
	Status entity.MenuStatus `json:"status"`
}

// ProductQuery filters and pages the product gallery.
type ProductQuery struct {
	Search   string
	Tag      string
	Page     int
	PageSize int
}

// ProductPage is one page of query results.
type ProductPage struct {
	Items      []entity.Product `json:"items"`
	TotalCount int              `json:"total_count"`
	TotalPages int              `json:"total_pages"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
}

// CatalogUsecase exposes the static storefront catalog and content.
type CatalogUsecase interface {
	// ListMenus returns all menus with their current availability.
	ListMenus(ctx context.Context) ([]MenuView, error)

	// GetMenu returns one menu with its current availability.
	GetMenu(ctx context.Context, id string) (*MenuView, error)

	// QueryProducts filters the gallery by tag and case-insensitive search
	// term, then pages the result. Page and page size are clamped to sane
	// bounds rather than rejected.
	QueryProducts(ctx context.Context, query ProductQuery) (*ProductPage, error)

	// ListNews returns the news posts, newest first.
	ListNews(ctx context.Context) ([]entity.NewsPost, error)
}
