package order

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"bakehouse/internal/domain/entity"
)

// FieldErrors holds the derived validation message per checkout field. An
// empty string means the field is clear. DeliveryMinimum is structurally a
// field error but is surfaced as a banner, not inline.
type FieldErrors struct {
	DateNeeded      string `json:"date_needed,omitempty"`
	Name            string `json:"name,omitempty"`
	Email           string `json:"email,omitempty"`
	Phone           string `json:"phone,omitempty"`
	Address         string `json:"address,omitempty"`
	DeliveryMinimum string `json:"delivery_minimum,omitempty"`
}

// Clear reports whether every field validates.
func (e FieldErrors) Clear() bool {
	return e == FieldErrors{}
}

// Validate derives field-level errors from the current state and subtotal.
// Pure: the same state always yields the same errors. Email and phone are
// only required under their matching contact method, the address only for
// delivery, and the delivery minimum is inclusive at the threshold.
func Validate(state entity.OrderState, subtotal, deliveryMinimum decimal.Decimal) FieldErrors {
	var errs FieldErrors

	if state.DateNeeded == "" {
		errs.DateNeeded = "Select a date needed."
	}
	if strings.TrimSpace(state.FirstName) == "" || strings.TrimSpace(state.LastName) == "" {
		errs.Name = "Add your first and last name."
	}
	if state.ContactMethod == entity.ContactEmail && state.Email == "" {
		errs.Email = "Email is required."
	}
	if state.ContactMethod == entity.ContactPhone && state.Phone == "" {
		errs.Phone = "Phone number is required."
	}
	if state.FulfillmentType == entity.FulfillmentDelivery && state.Address == "" {
		errs.Address = "Delivery address is required."
	}
	if state.FulfillmentType == entity.FulfillmentDelivery && subtotal.LessThan(deliveryMinimum) {
		errs.DeliveryMinimum = fmt.Sprintf(
			"Delivery is available for orders %s+. You can switch to pickup or add items.",
			FormatMoney(deliveryMinimum),
		)
	}

	return errs
}

// Visible gates errors for display: a message only shows once its field has
// been touched or a submit has been attempted, so an empty form does not
// open covered in errors.
func Visible(state entity.OrderState, errs FieldErrors) FieldErrors {
	shown := func(fields ...entity.TouchedField) bool {
		if state.SubmitAttempted {
			return true
		}
		for _, field := range fields {
			if state.Touched[field] {
				return true
			}
		}

		return false
	}

	var visible FieldErrors
	if shown(entity.TouchedDateNeeded) {
		visible.DateNeeded = errs.DateNeeded
	}
	if shown(entity.TouchedFirstName, entity.TouchedLastName) {
		visible.Name = errs.Name
	}
	if shown(entity.TouchedEmail) {
		visible.Email = errs.Email
	}
	if shown(entity.TouchedPhone) {
		visible.Phone = errs.Phone
	}
	if shown(entity.TouchedAddress) {
		visible.Address = errs.Address
	}
	if shown(entity.TouchedFulfillmentType) {
		visible.DeliveryMinimum = errs.DeliveryMinimum
	}

	return visible
}

// Submittable reports overall submit eligibility: a non-empty cart and
// every validation clear.
func Submittable(state entity.OrderState, errs FieldErrors) bool {
	return state.HasItems() && errs.Clear()
}
