// Package repository defines the interfaces for the data access layer.
package repository

import (
	"bakehouse/internal/domain/entity"
	"bakehouse/internal/errors"
)

// ErrMenuNotFound is returned when a menu id does not resolve.
var ErrMenuNotFound = errors.New("menu not found")

// CatalogRepository exposes the static storefront catalog. The catalog is
// defined at build time and immutable for the life of the process, so the
// interface is read-only and context-free.
type CatalogRepository interface {
	// Menus returns all menus in display order.
	Menus() []entity.Menu

	// MenuByID retrieves a menu by its id.
	MenuByID(id string) (entity.Menu, error)

	// Products returns the browsable product gallery in display order.
	Products() []entity.Product

	// News returns the news posts, newest first.
	News() []entity.NewsPost
}
