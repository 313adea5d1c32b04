// Package entity contains the core business objects of the project.
package entity

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// OrderMode is a menu-level policy governing whether and how a menu can be
// ordered through the storefront.
type OrderMode string

const (
	// OrderModeOnline allows full online ordering.
	OrderModeOnline OrderMode = "online"
	// OrderModeRequestOnly shows the menu but routes orders through a request.
	OrderModeRequestOnly OrderMode = "requestOnly"
	// OrderModeViewOnly disables ordering entirely; the menu is informational.
	OrderModeViewOnly OrderMode = "viewOnly"
)

// String returns the string representation of the OrderMode.
func (m OrderMode) String() string {
	return string(m)
}

// IsValid checks if the OrderMode is a valid value.
func (m OrderMode) IsValid() bool {
	switch m {
	case OrderModeOnline, OrderModeRequestOnly, OrderModeViewOnly:
		return true
	default:
		return false
	}
}

// MenuTemplate discriminates how a menu presents its orderable content.
type MenuTemplate string

const (
	// TemplateCatalog is a list of discrete items with sizes and flavors.
	TemplateCatalog MenuTemplate = "catalog"
	// TemplateMatrix is a fixed grid of fillings by preparations.
	TemplateMatrix MenuTemplate = "matrix"
)

// String returns the string representation of the MenuTemplate.
func (t MenuTemplate) String() string {
	return string(t)
}

// MenuStatus is the evaluated availability of a menu relative to a date.
type MenuStatus string

const (
	// StatusAvailable means the menu is orderable online right now.
	StatusAvailable MenuStatus = "available"
	// StatusRequestOnly means the menu is in season but request-only.
	StatusRequestOnly MenuStatus = "requestOnly"
	// StatusViewOnly means online ordering is disabled regardless of dates.
	StatusViewOnly MenuStatus = "viewOnly"
	// StatusOutOfSeason means today falls outside the menu's active window.
	StatusOutOfSeason MenuStatus = "outOfSeason"
)

// String returns the string representation of the MenuStatus.
func (s MenuStatus) String() string {
	return string(s)
}

// ItemKind discriminates between preset items and flavor-selectable items.
type ItemKind string

const (
	// KindPreset items have no flavor choice.
	KindPreset ItemKind = "preset"
	// KindFlavor items require one flavor from a fixed option list.
	KindFlavor ItemKind = "flavor"
)

// MenuItemSize is one purchasable size of a menu item with its unit price.
type MenuItemSize struct {
	ID    string          `json:"id"`
	Label string          `json:"label"`
	Price decimal.Decimal `json:"price"`
}

// MenuItem is one orderable product within a catalog menu.
type MenuItem struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Description   string         `json:"description,omitempty"`
	ServingNote   string         `json:"serving_note,omitempty"`
	Sizes         []MenuItemSize `json:"sizes"`          // Must be non-empty.
	DefaultSizeID string         `json:"default_size_id"`
	AllowNotes    bool           `json:"allow_notes"`
	Kind          ItemKind       `json:"kind"`
	FlavorOptions []string       `json:"flavor_options,omitempty"` // Non-empty iff Kind is flavor.
}

// SizeByID returns the size with the given id, if present.
func (i MenuItem) SizeByID(sizeID string) (MenuItemSize, bool) {
	for _, size := range i.Sizes {
		if size.ID == sizeID {
			return size, true
		}
	}

	return MenuItemSize{}, false
}

// DefaultSize resolves the item's declared default size, falling back to the
// first size when the declared id does not match any size.
func (i MenuItem) DefaultSize() (MenuItemSize, bool) {
	if size, ok := i.SizeByID(i.DefaultSizeID); ok {
		return size, true
	}
	if len(i.Sizes) > 0 {
		return i.Sizes[0], true
	}

	return MenuItemSize{}, false
}

// MatrixRow is one row of a menu matrix, e.g. a filling.
type MatrixRow struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// MatrixColumn is one column of a menu matrix, e.g. a dough type. Each
// column is independently priced.
type MatrixColumn struct {
	ID    string          `json:"id"`
	Label string          `json:"label"`
	Price decimal.Decimal `json:"price"`
}

// MenuMatrix is a fixed row-by-column grid used for bulk mix-and-match
// ordering. The grid itself is immutable; only selection quantities change.
type MenuMatrix struct {
	Title   string         `json:"title"`
	Rows    []MatrixRow    `json:"rows"`
	Columns []MatrixColumn `json:"columns"`
}

// MatrixKey addresses a single matrix cell. It is a composite key rather
// than a delimited string so ids containing the delimiter cannot collide.
type MatrixKey struct {
	MenuID   string `json:"menu_id"`
	RowID    string `json:"row_id"`
	ColumnID string `json:"column_id"`
}

// MarshalText renders the key as menu|row|column so the key can serve as a
// JSON map key. Catalog ids are slugs and never contain the separator.
func (k MatrixKey) MarshalText() ([]byte, error) {
	return []byte(k.MenuID + "|" + k.RowID + "|" + k.ColumnID), nil
}

// UnmarshalText parses the menu|row|column form produced by MarshalText.
func (k *MatrixKey) UnmarshalText(text []byte) error {
	parts := strings.SplitN(string(text), "|", 3)
	if len(parts) != 3 {
		return errors.Errorf("malformed matrix key: %q", string(text))
	}

	k.MenuID, k.RowID, k.ColumnID = parts[0], parts[1], parts[2]

	return nil
}

// Menu is a themed, independently orderable catalog or grid of offerings.
// Menus are defined at build time and immutable for the life of the process.
type Menu struct {
	ID               string       `json:"id"`
	Title            string       `json:"title"`
	Description      string       `json:"description,omitempty"`
	Badge            string       `json:"badge,omitempty"`
	AccentColor      string       `json:"accent_color,omitempty"`
	AvailabilityNote string       `json:"availability_note,omitempty"`
	MinimumOrderNote string       `json:"minimum_order_note,omitempty"`
	OrderMode        OrderMode    `json:"order_mode"`
	ActiveFrom       string       `json:"active_from,omitempty"` // Inclusive calendar date, YYYY-MM-DD.
	ActiveTo         string       `json:"active_to,omitempty"`   // Inclusive calendar date, YYYY-MM-DD.
	Template         MenuTemplate `json:"template"`
	Items            []MenuItem   `json:"items,omitempty"`  // Catalog menus only; may be empty.
	Matrix           *MenuMatrix  `json:"matrix,omitempty"` // Required for matrix menus.
}

// ItemByID returns the catalog item with the given id, if present.
func (m Menu) ItemByID(itemID string) (MenuItem, bool) {
	for _, item := range m.Items {
		if item.ID == itemID {
			return item, true
		}
	}

	return MenuItem{}, false
}
