// Package order implements the pure order-flow state machine: a tagged
// action union, a reducer that advances OrderState by whole-state
// replacement, and the derivation functions (availability, validation,
// submission formatting) that read from it. Nothing in this package performs
// I/O; orchestration lives in the usecase layer.
package order

import (
	"bakehouse/internal/domain/entity"
)

// Action is one discrete state transition request. The set of actions is
// closed; every consumption site switches exhaustively over it.
type Action interface {
	isAction()
}

// SelectMenu switches the active menu and resets the draft builder. The
// cart is deliberately untouched; clearing it on a confirmed switch is a
// separate ClearCart action.
type SelectMenu struct {
	MenuID string
}

// SetOrderType chooses between the preset-menus flow and the tray builder.
type SetOrderType struct {
	OrderType entity.OrderType
}

// ResetOrderType returns to the order-type chooser, discarding the session.
type ResetOrderType struct{}

// ClearCart wipes all committed lines, matrix quantities, any in-progress
// edit, and the checkout flags.
type ClearCart struct{}

// UpdateDraft patches the in-progress item configuration. Nil fields are
// left unchanged.
type UpdateDraft struct {
	ItemID   *string
	SizeID   *string
	Quantity *int
	Flavor   *string
	Notes    *string
}

// AddLineItem commits a fully-specified line. When ReplaceLineID (or the
// staged editing line) is set, that exact line is overwritten in place;
// otherwise the line is appended.
type AddLineItem struct {
	Line          entity.LineItem
	ReplaceLineID string
}

// RemoveLineItem deletes a committed line by id.
type RemoveLineItem struct {
	LineID string
}

// EditLineItem re-opens a catalog-sourced line in the draft builder and
// stages it as the replace target for the next commit.
type EditLineItem struct {
	LineID string
}

// RejectDraft records an inline selection error from an ineligible add
// attempt instead of committing.
type RejectDraft struct {
	Message string
}

// SetFulfillment patches fulfillment details, optionally marking a field
// as touched.
type SetFulfillment struct {
	Type       *entity.FulfillmentType
	DateNeeded *string
	Address    *string
	Touch      entity.TouchedField
}

// SetCustomer patches customer details, optionally marking a field as
// touched.
type SetCustomer struct {
	FirstName     *string
	LastName      *string
	ContactMethod *entity.ContactMethod
	Email         *string
	Phone         *string
	Touch         entity.TouchedField
}

// SetNotes replaces the free-text order notes.
type SetNotes struct {
	Notes string
}

// SetCheckoutOpen shows or hides the checkout modal. ResetStatus clears a
// terminal submission status on close, which after a success leaves the
// already-reset state as a fresh session.
type SetCheckoutOpen struct {
	Open        bool
	ResetStatus bool
}

// SetCheckoutAttempted flags a checkout attempt on an empty cart so the
// interface can hint instead of opening the modal.
type SetCheckoutAttempted struct {
	Attempted bool
}

// SetMatrixQuantity stores the selection quantity for one matrix cell.
type SetMatrixQuantity struct {
	Key      entity.MatrixKey
	Quantity int
}

// ClearScrollTarget consumes the one-shot deep-link scroll target.
type ClearScrollTarget struct{}

// SubmitStart marks the outbound submission as in flight.
type SubmitStart struct{}

// SubmitSuccess resets the session for the selected menu, keeping the
// modal open with a success status so a confirmation can render.
type SubmitSuccess struct{}

// SubmitError records a failed submission. An empty message is the
// ineligible-submit path and lands on idle rather than error.
type SubmitError struct {
	Message string
}

func (SelectMenu) isAction()           {}
func (SetOrderType) isAction()         {}
func (ResetOrderType) isAction()       {}
func (ClearCart) isAction()            {}
func (UpdateDraft) isAction()          {}
func (AddLineItem) isAction()          {}
func (RemoveLineItem) isAction()       {}
func (EditLineItem) isAction()         {}
func (RejectDraft) isAction()          {}
func (SetFulfillment) isAction()       {}
func (SetCustomer) isAction()          {}
func (SetNotes) isAction()             {}
func (SetCheckoutOpen) isAction()      {}
func (SetCheckoutAttempted) isAction() {}
func (SetMatrixQuantity) isAction()    {}
func (ClearScrollTarget) isAction()    {}
func (SubmitStart) isAction()          {}
func (SubmitSuccess) isAction()        {}
func (SubmitError) isAction()          {}
