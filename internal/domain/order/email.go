package order

import (
	"strconv"
	"strings"

	"bakehouse/internal/domain/entity"
)

// Flat payload keys shared with the external email-templating system. The
// template substitutes these by name, so values must stay flat strings.
const (
	PayloadCustomerName    = "customer_name"
	PayloadContactMethod   = "contact_method"
	PayloadCustomerEmail   = "customer_email"
	PayloadCustomerPhone   = "customer_phone"
	PayloadFulfillmentType = "fulfillment_type"
	PayloadDateNeeded      = "date_needed"
	PayloadDeliveryAddress = "delivery_address"
	PayloadOrderItems      = "order_items"
	PayloadOrderSubtotal   = "order_subtotal"
	PayloadOrderNotes      = "order_notes"
	PayloadMenuTitle       = "selected_menu_title"
	PayloadOrderType       = "order_type"
)

// FormatOrderEmail renders the cart as a human-readable text block, grouped
// by originating menu title in first-appearance order. Empty optional parts
// (flavor, notes) are omitted per line.
func FormatOrderEmail(state entity.OrderState) string {
	subtotal := Subtotal(state.LineItems)

	out := []string{"Order Items:"}

	if !state.HasItems() {
		out = append(out, "- No items")
	} else {
		titles := make([]string, 0, len(state.LineItems))
		grouped := make(map[string][]entity.LineItem)
		for _, line := range state.LineItems {
			title := line.MenuTitle
			if title == "" {
				title = "Selected Menu"
			}
			if _, seen := grouped[title]; !seen {
				titles = append(titles, title)
			}
			grouped[title] = append(grouped[title], line)
		}

		for _, title := range titles {
			out = append(out, "Menu: "+title)
			for _, line := range grouped[title] {
				out = append(out, formatEmailLine(line))
			}
		}
	}

	out = append(out, "Subtotal: "+FormatMoney(subtotal))
	if state.AdditionalNotes != "" {
		out = append(out, "Notes: "+state.AdditionalNotes)
	}

	return strings.Join(out, "\n")
}

func formatEmailLine(line entity.LineItem) string {
	var b strings.Builder
	b.WriteString("- ")
	b.WriteString(line.ItemName)
	if line.SizeLabel != "" {
		b.WriteString(" (" + line.SizeLabel + ")")
	}
	b.WriteString(" x")
	b.WriteString(strconv.Itoa(line.Quantity))
	b.WriteString(" - ")
	b.WriteString(FormatMoney(line.Total()))
	if line.Flavor != "" {
		b.WriteString(" | Flavor: " + line.Flavor)
	}
	if line.Notes != "" {
		b.WriteString(" | Notes: " + line.Notes)
	}

	return b.String()
}

// BuildPayload assembles the flat key/value submission payload for the
// external email relay.
func BuildPayload(state entity.OrderState, menuTitle string) map[string]string {
	notes := state.AdditionalNotes
	if notes == "" {
		notes = "No Additional Notes."
	}

	return map[string]string{
		PayloadCustomerName:    strings.TrimSpace(state.FirstName + " " + state.LastName),
		PayloadContactMethod:   string(state.ContactMethod),
		PayloadCustomerEmail:   state.Email,
		PayloadCustomerPhone:   state.Phone,
		PayloadFulfillmentType: string(state.FulfillmentType),
		PayloadDateNeeded:      state.DateNeeded,
		PayloadDeliveryAddress: state.Address,
		PayloadOrderItems:      FormatOrderEmail(state),
		PayloadOrderSubtotal:   FormatMoney(Subtotal(state.LineItems)),
		PayloadOrderNotes:      notes,
		PayloadMenuTitle:       menuTitle,
		PayloadOrderType:       string(state.OrderType),
	}
}
