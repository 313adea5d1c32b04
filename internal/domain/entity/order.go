// Package entity contains the core business objects of the project.
package entity

// FulfillmentType is how the customer wants to receive the order.
type FulfillmentType string

const (
	// FulfillmentPickup orders are collected at the bakehouse.
	FulfillmentPickup FulfillmentType = "pickup"
	// FulfillmentDelivery orders require an address and a minimum subtotal.
	FulfillmentDelivery FulfillmentType = "delivery"
)

// IsValid checks if the FulfillmentType is a valid value.
func (f FulfillmentType) IsValid() bool {
	return f == FulfillmentPickup || f == FulfillmentDelivery
}

// ContactMethod is the customer's preferred way to be reached.
type ContactMethod string

const (
	// ContactEmail requires a non-empty email address.
	ContactEmail ContactMethod = "email"
	// ContactPhone requires a non-empty phone number.
	ContactPhone ContactMethod = "phone"
)

// IsValid checks if the ContactMethod is a valid value.
func (c ContactMethod) IsValid() bool {
	return c == ContactEmail || c == ContactPhone
}

// SubmitStatus tracks the submission lifecycle of an order session.
// Transitions are one-directional per attempt: idle -> submitting ->
// success, or idle -> submitting -> error -> idle.
type SubmitStatus string

const (
	// SubmitIdle means no submission is in flight.
	SubmitIdle SubmitStatus = "idle"
	// SubmitInFlight means the outbound call has started and not resolved.
	SubmitInFlight SubmitStatus = "submitting"
	// SubmitSucceeded is terminal until the next edit or modal dismissal.
	SubmitSucceeded SubmitStatus = "success"
	// SubmitFailed is recoverable; any further edit returns to idle.
	SubmitFailed SubmitStatus = "error"
)

// OrderType is the branching pre-step of the order flow.
type OrderType string

const (
	// OrderTypeUnset means the customer has not chosen a flow yet.
	OrderTypeUnset OrderType = "unset"
	// OrderTypePreset is the curated-menus flow.
	OrderTypePreset OrderType = "preset"
	// OrderTypeTrayBuilder is the build-your-own flow, currently a placeholder.
	OrderTypeTrayBuilder OrderType = "trayBuilder"
)

// IsValid checks if the OrderType is a valid value.
func (o OrderType) IsValid() bool {
	switch o {
	case OrderTypeUnset, OrderTypePreset, OrderTypeTrayBuilder:
		return true
	default:
		return false
	}
}

// TouchedField names a validated form field for touched tracking.
type TouchedField string

const (
	TouchedDateNeeded      TouchedField = "dateNeeded"
	TouchedAddress         TouchedField = "address"
	TouchedFirstName       TouchedField = "firstName"
	TouchedLastName        TouchedField = "lastName"
	TouchedEmail           TouchedField = "email"
	TouchedPhone           TouchedField = "phone"
	TouchedFulfillmentType TouchedField = "fulfillmentType"
	TouchedContactMethod   TouchedField = "contactMethod"
)

// IsValid checks if the TouchedField is a known field name.
func (f TouchedField) IsValid() bool {
	switch f {
	case TouchedDateNeeded, TouchedAddress, TouchedFirstName, TouchedLastName,
		TouchedEmail, TouchedPhone, TouchedFulfillmentType, TouchedContactMethod:
		return true
	default:
		return false
	}
}

// OrderState is the full mutable state of one ordering session. It is the
// single source of truth for the order flow; every mutation goes through the
// reducer as a whole-state replacement, so derived values (subtotal,
// validation, display) are never torn within a single view.
type OrderState struct {
	OrderType      OrderType `json:"order_type"`
	SelectedMenuID string    `json:"selected_menu_id"`

	// Draft builder: at most one in-progress item configuration.
	DraftItemID   string `json:"draft_item_id,omitempty"`
	DraftSizeID   string `json:"draft_size_id,omitempty"`
	DraftQuantity int    `json:"draft_quantity"`
	DraftFlavor   string `json:"draft_flavor,omitempty"`
	DraftNotes    string `json:"draft_notes,omitempty"`
	DraftError    string `json:"draft_error,omitempty"` // Inline prompt from a rejected add.
	EditingLineID string `json:"editing_line_id,omitempty"`

	LineItems        []LineItem        `json:"line_items"`
	MatrixQuantities map[MatrixKey]int `json:"matrix_quantities"`

	FulfillmentType FulfillmentType `json:"fulfillment_type"`
	DateNeeded      string          `json:"date_needed"`
	Address         string          `json:"address,omitempty"`

	FirstName       string        `json:"first_name"`
	LastName        string        `json:"last_name"`
	ContactMethod   ContactMethod `json:"contact_method"`
	Email           string        `json:"email,omitempty"`
	Phone           string        `json:"phone,omitempty"`
	AdditionalNotes string        `json:"additional_notes,omitempty"`

	CheckoutOpen      bool                  `json:"checkout_open"`
	CheckoutAttempted bool                  `json:"checkout_attempted"`
	Touched           map[TouchedField]bool `json:"touched"`
	SubmitAttempted   bool                  `json:"submit_attempted"`
	Status            SubmitStatus          `json:"status"`
	ErrorMessage      string                `json:"error_message,omitempty"`

	// ScrollTo mirrors a valid menu query parameter so a deep link can land
	// on its menu exactly once per session.
	ScrollTo string `json:"scroll_to,omitempty"`
}

// HasItems reports whether the cart holds at least one committed line.
func (s OrderState) HasItems() bool {
	return len(s.LineItems) > 0
}

// LineByID returns the committed line with the given id, if present.
func (s OrderState) LineByID(lineID string) (LineItem, bool) {
	for _, line := range s.LineItems {
		if line.LineID == lineID {
			return line, true
		}
	}

	return LineItem{}, false
}

// Clone returns a deep copy of the state. The reducer works on copies so a
// stored state is never mutated in place.
func (s OrderState) Clone() OrderState {
	next := s

	next.LineItems = make([]LineItem, len(s.LineItems))
	copy(next.LineItems, s.LineItems)

	next.MatrixQuantities = make(map[MatrixKey]int, len(s.MatrixQuantities))
	for key, quantity := range s.MatrixQuantities {
		next.MatrixQuantities[key] = quantity
	}

	next.Touched = make(map[TouchedField]bool, len(s.Touched))
	for field, touched := range s.Touched {
		next.Touched[field] = touched
	}

	return next
}
