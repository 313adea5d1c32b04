package order

import (
	"bakehouse/internal/domain/entity"
)

// Initial builds a fresh session state. menuID may be empty; selection is
// resolved against the catalog (with a first-menu fallback) at consumption
// time, never stored invalid here.
func Initial(menuID string) entity.OrderState {
	return entity.OrderState{
		OrderType:        entity.OrderTypeUnset,
		SelectedMenuID:   menuID,
		DraftQuantity:    1,
		LineItems:        []entity.LineItem{},
		MatrixQuantities: map[entity.MatrixKey]int{},
		FulfillmentType:  entity.FulfillmentPickup,
		ContactMethod:    entity.ContactEmail,
		Touched:          map[entity.TouchedField]bool{},
		Status:           entity.SubmitIdle,
	}
}

// clearsStatus reports whether an action counts as an edit for the
// clear-status-on-edit rule. A terminal success or error status is wiped
// before the action-specific update so stale banners never survive an edit.
func clearsStatus(action Action) bool {
	switch action.(type) {
	case SelectMenu, UpdateDraft, AddLineItem, RemoveLineItem, EditLineItem,
		SetFulfillment, SetCustomer, SetNotes, SetMatrixQuantity:
		return true
	default:
		return false
	}
}

// Reduce applies one action to the state and returns the next state. It is
// pure: the given state is never mutated, and the same (state, action) pair
// always yields the same result. Unknown actions return the state unchanged.
func Reduce(state entity.OrderState, action Action) entity.OrderState {
	next := state.Clone()

	if clearsStatus(action) &&
		(next.Status == entity.SubmitSucceeded || next.Status == entity.SubmitFailed) {
		next.Status = entity.SubmitIdle
		next.ErrorMessage = ""
	}

	switch act := action.(type) {
	case SelectMenu:
		next.SelectedMenuID = act.MenuID
		resetDraft(&next)

	case SetOrderType:
		next.OrderType = act.OrderType
		resetDraft(&next)

	case ResetOrderType:
		return Initial("")

	case ClearCart:
		next.LineItems = []entity.LineItem{}
		next.MatrixQuantities = map[entity.MatrixKey]int{}
		next.EditingLineID = ""
		next.CheckoutAttempted = false
		next.CheckoutOpen = false

	case UpdateDraft:
		applyDraftPatch(&next, act)

	case AddLineItem:
		replaceID := act.ReplaceLineID
		if replaceID == "" {
			replaceID = next.EditingLineID
		}
		if replaceID != "" {
			for i, line := range next.LineItems {
				if line.LineID == replaceID {
					next.LineItems[i] = act.Line
				}
			}
		} else {
			next.LineItems = append(next.LineItems, act.Line)
		}
		next.EditingLineID = ""
		next.DraftQuantity = 1
		next.DraftFlavor = ""
		next.DraftNotes = ""
		next.DraftError = ""
		next.CheckoutAttempted = false

	case RemoveLineItem:
		kept := next.LineItems[:0]
		for _, line := range next.LineItems {
			if line.LineID != act.LineID {
				kept = append(kept, line)
			}
		}
		next.LineItems = kept
		if next.EditingLineID == act.LineID {
			next.EditingLineID = ""
		}

	case EditLineItem:
		line, ok := next.LineByID(act.LineID)
		if !ok || !line.Editable() {
			return state
		}
		next.SelectedMenuID = line.MenuID
		next.EditingLineID = line.LineID
		next.DraftItemID = line.ItemID
		next.DraftSizeID = line.SizeID
		next.DraftQuantity = line.Quantity
		next.DraftFlavor = line.Flavor
		next.DraftNotes = line.Notes
		next.DraftError = ""

	case RejectDraft:
		next.DraftError = act.Message

	case SetFulfillment:
		if act.Type != nil {
			next.FulfillmentType = *act.Type
		}
		if act.DateNeeded != nil {
			next.DateNeeded = *act.DateNeeded
		}
		if act.Address != nil {
			next.Address = *act.Address
		}
		if act.Touch != "" {
			next.Touched[act.Touch] = true
		}

	case SetCustomer:
		if act.FirstName != nil {
			next.FirstName = *act.FirstName
		}
		if act.LastName != nil {
			next.LastName = *act.LastName
		}
		if act.ContactMethod != nil {
			next.ContactMethod = *act.ContactMethod
		}
		if act.Email != nil {
			next.Email = *act.Email
		}
		if act.Phone != nil {
			next.Phone = *act.Phone
		}
		if act.Touch != "" {
			next.Touched[act.Touch] = true
		}

	case SetNotes:
		next.AdditionalNotes = act.Notes

	case SetCheckoutOpen:
		if act.ResetStatus {
			next.Status = entity.SubmitIdle
			next.ErrorMessage = ""
		}
		next.CheckoutOpen = act.Open
		if act.Open {
			next.CheckoutAttempted = false
		}

	case SetCheckoutAttempted:
		next.CheckoutAttempted = act.Attempted

	case SetMatrixQuantity:
		quantity := act.Quantity
		if quantity < 0 {
			quantity = 0
		}
		next.MatrixQuantities[act.Key] = quantity

	case ClearScrollTarget:
		next.ScrollTo = ""

	case SubmitStart:
		next.Status = entity.SubmitInFlight
		next.SubmitAttempted = true
		next.ErrorMessage = ""

	case SubmitSuccess:
		fresh := Initial(next.SelectedMenuID)
		fresh.OrderType = next.OrderType
		fresh.CheckoutOpen = true
		fresh.Status = entity.SubmitSucceeded

		return fresh

	case SubmitError:
		if act.Message != "" {
			next.Status = entity.SubmitFailed
		} else {
			next.Status = entity.SubmitIdle
		}
		next.SubmitAttempted = true
		next.ErrorMessage = act.Message
	}

	return next
}

// resetDraft clears the single-item draft so no stale size or flavor leaks
// across menus or flows.
func resetDraft(s *entity.OrderState) {
	s.DraftItemID = ""
	s.DraftSizeID = ""
	s.DraftQuantity = 1
	s.DraftFlavor = ""
	s.DraftNotes = ""
	s.DraftError = ""
	s.EditingLineID = ""
}

func applyDraftPatch(s *entity.OrderState, patch UpdateDraft) {
	if patch.ItemID != nil {
		s.DraftItemID = *patch.ItemID
	}
	if patch.SizeID != nil {
		s.DraftSizeID = *patch.SizeID
	}
	if patch.Quantity != nil {
		quantity := *patch.Quantity
		if quantity < 1 {
			quantity = 1
		}
		s.DraftQuantity = quantity
	}
	if patch.Flavor != nil {
		s.DraftFlavor = *patch.Flavor
	}
	if patch.Notes != nil {
		s.DraftNotes = *patch.Notes
	}
	s.DraftError = ""
}
