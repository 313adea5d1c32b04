// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"bakehouse/internal/domain/entity"
	"bakehouse/internal/domain/order"
)

// OrderView is the derived render model of one order session. Everything in
// it is recomputed from the state on every call, so subtotal, validation,
// and display flags can never disagree with each other.
type OrderView struct {
	SessionID string            `json:"session_id"`
	State     entity.OrderState `json:"state"`

	SelectedMenu entity.Menu       `json:"selected_menu"`
	MenuStatus   entity.MenuStatus `json:"menu_status"`

	Subtotal        decimal.Decimal `json:"subtotal"`
	SubtotalDisplay string          `json:"subtotal_display"`
	ItemCount       int             `json:"item_count"`

	Errors        order.FieldErrors `json:"errors"`
	VisibleErrors order.FieldErrors `json:"visible_errors"`

	CanAdd        bool `json:"can_add"`
	Submittable   bool `json:"submittable"`
	ShowEmptyHint bool `json:"show_empty_hint"`
}

// OrderUsecase drives one order session through the reducer. Every
// operation applies its actions atomically and returns the fresh view.
type OrderUsecase interface {
	// StartSession creates a new session. A valid menu id from the page's
	// query string pre-selects that menu and arms the one-shot scroll
	// target; anything else falls back to the first menu.
	StartSession(ctx context.Context, menuParam string) (*OrderView, error)

	// GetSession returns the current view and consumes the one-shot scroll
	// target.
	GetSession(ctx context.Context, id uuid.UUID) (*OrderView, error)

	// EndSession discards a session.
	EndSession(ctx context.Context, id uuid.UUID) error

	// SelectMenu switches the active menu. Switching away while the cart
	// holds items requires confirm; confirming clears the cart first, and
	// without confirmation the call fails with a confirmation-required
	// error leaving everything untouched.
	SelectMenu(ctx context.Context, id uuid.UUID, menuID string, confirm bool) (*OrderView, error)

	// SetOrderType chooses the ordering flow (preset menus or tray builder).
	SetOrderType(ctx context.Context, id uuid.UUID, orderType entity.OrderType) (*OrderView, error)

	// ResetOrderType returns to the order-type chooser with a fresh session.
	ResetOrderType(ctx context.Context, id uuid.UUID) (*OrderView, error)

	// ToggleItem opens an item in the draft builder with its defaults, or
	// collapses it when it is already open.
	ToggleItem(ctx context.Context, id uuid.UUID, itemID string) (*OrderView, error)

	// UpdateDraft patches the in-progress item configuration.
	UpdateDraft(ctx context.Context, id uuid.UUID, patch order.UpdateDraft) (*OrderView, error)

	// AddDraftItem commits the draft to the cart, or surfaces an inline
	// prompt when the draft is not eligible.
	AddDraftItem(ctx context.Context, id uuid.UUID) (*OrderView, error)

	// EditLine re-opens a catalog line in the draft builder. fromCheckout
	// additionally closes the checkout modal first.
	EditLine(ctx context.Context, id uuid.UUID, lineID string, fromCheckout bool) (*OrderView, error)

	// RemoveLine deletes a committed line.
	RemoveLine(ctx context.Context, id uuid.UUID, lineID string) (*OrderView, error)

	// SetMatrixQuantity stores the quantity for one matrix cell of the
	// selected menu.
	SetMatrixQuantity(ctx context.Context, id uuid.UUID, rowID, columnID string, quantity int) (*OrderView, error)

	// AddMatrixSelections commits every cell with a positive quantity (of
	// one row when rowID is set, else the whole grid) as individual lines,
	// then zeroes those cells.
	AddMatrixSelections(ctx context.Context, id uuid.UUID, rowID string) (*OrderView, error)

	// OpenCheckout opens the checkout modal, or records an attempted
	// checkout when the cart is empty so the interface can hint.
	OpenCheckout(ctx context.Context, id uuid.UUID) (*OrderView, error)

	// CloseCheckout hides the modal. After a successful submission this
	// also clears the terminal status, leaving a fresh session.
	CloseCheckout(ctx context.Context, id uuid.UUID) (*OrderView, error)

	// UpdateFulfillment patches fulfillment details.
	UpdateFulfillment(ctx context.Context, id uuid.UUID, patch order.SetFulfillment) (*OrderView, error)

	// UpdateCustomer patches customer details.
	UpdateCustomer(ctx context.Context, id uuid.UUID, patch order.SetCustomer) (*OrderView, error)

	// SetNotes replaces the additional order notes.
	SetNotes(ctx context.Context, id uuid.UUID, notes string) (*OrderView, error)

	// TouchField marks a form field as touched (blurred) for error gating.
	TouchField(ctx context.Context, id uuid.UUID, field entity.TouchedField) (*OrderView, error)

	// Submit validates and sends the order through the email relay, exactly
	// one attempt per call. An ineligible submit records the attempt and
	// stays idle; a relay failure lands on a recoverable error status with
	// all entered data preserved.
	Submit(ctx context.Context, id uuid.UUID) (*OrderView, error)
}
