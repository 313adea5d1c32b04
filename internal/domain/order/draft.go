package order

import (
	"github.com/google/uuid"

	"bakehouse/internal/domain/entity"
)

// FlavorRequiredMessage is the inline prompt for an add attempt on a
// flavor-selectable item without a chosen flavor.
const FlavorRequiredMessage = "Choose a flavor to add."

// NewLineID generates a fresh cart line id. Line ids are never reused;
// removing and re-adding the same logical item produces a new id.
func NewLineID() string {
	return uuid.NewString()
}

// CanAdd reports whether the current draft is eligible to commit: an open
// item, a resolvable size, quantity of at least one, and a chosen flavor
// when the item is flavor-selectable.
func CanAdd(menu entity.Menu, state entity.OrderState) bool {
	item, ok := menu.ItemByID(state.DraftItemID)
	if !ok || state.DraftSizeID == "" {
		return false
	}
	if state.DraftQuantity < 1 {
		return false
	}
	if item.Kind == entity.KindFlavor && state.DraftFlavor == "" {
		return false
	}

	return true
}

// BuildDraftLine materializes the current draft into a committed line,
// snapshotting the size's unit price. When a line edit is staged the staged
// line id is kept so the commit replaces that exact line. Returns false when
// the draft does not resolve to an item and size.
func BuildDraftLine(menu entity.Menu, state entity.OrderState) (entity.LineItem, bool) {
	item, ok := menu.ItemByID(state.DraftItemID)
	if !ok {
		return entity.LineItem{}, false
	}
	size, ok := item.SizeByID(state.DraftSizeID)
	if !ok {
		return entity.LineItem{}, false
	}

	lineID := state.EditingLineID
	if lineID == "" {
		lineID = NewLineID()
	}

	flavor := ""
	if item.Kind == entity.KindFlavor {
		flavor = state.DraftFlavor
	}

	return entity.LineItem{
		LineID:    lineID,
		MenuID:    menu.ID,
		MenuTitle: menu.Title,
		ItemID:    item.ID,
		ItemName:  item.Name,
		SizeID:    size.ID,
		SizeLabel: size.Label,
		UnitPrice: size.Price,
		Quantity:  state.DraftQuantity,
		Flavor:    flavor,
		Notes:     state.DraftNotes,
		Source:    entity.SourceCatalog,
	}, true
}

// OpenDraft returns the draft patch for opening an item: the declared
// default size (or first size), quantity one, cleared flavor and notes.
func OpenDraft(item entity.MenuItem) UpdateDraft {
	sizeID := ""
	if size, ok := item.DefaultSize(); ok {
		sizeID = size.ID
	}

	one := 1
	empty := ""

	return UpdateDraft{
		ItemID:   &item.ID,
		SizeID:   &sizeID,
		Quantity: &one,
		Flavor:   &empty,
		Notes:    &empty,
	}
}

// CloseDraft returns the draft patch that collapses the open item card
// without disturbing the rest of the draft fields.
func CloseDraft() UpdateDraft {
	empty := ""

	return UpdateDraft{ItemID: &empty}
}
