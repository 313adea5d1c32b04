// Package entity contains the core business objects of the project.
package entity

import (
	"github.com/shopspring/decimal"
)

// LineSource discriminates how a cart line was produced.
type LineSource string

const (
	// SourceCatalog lines come from the single-item draft flow and stay editable.
	SourceCatalog LineSource = "catalog"
	// SourceMatrix lines are flattened batch selections; they can only be removed.
	SourceMatrix LineSource = "matrix"
)

// LineItem is one committed, independently addressable entry in the cart.
// The unit price is snapshotted at add time so later catalog changes never
// retroactively alter existing lines.
type LineItem struct {
	LineID    string          `json:"line_id"` // Freshly generated per commit, never reused.
	MenuID    string          `json:"menu_id"`
	MenuTitle string          `json:"menu_title"`
	ItemID    string          `json:"item_id,omitempty"` // Catalog lines only.
	ItemName  string          `json:"item_name"`
	SizeID    string          `json:"size_id,omitempty"`
	SizeLabel string          `json:"size_label,omitempty"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"` // Always >= 1.
	Flavor    string          `json:"flavor,omitempty"`
	Notes     string          `json:"notes,omitempty"`
	Source    LineSource      `json:"source"`
}

// Total returns the extended price of the line.
func (l LineItem) Total() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Editable reports whether the line can be re-opened in the draft builder.
// Matrix lines represent an already-flattened batch and cannot be edited.
func (l LineItem) Editable() bool {
	return l.Source == SourceCatalog
}
