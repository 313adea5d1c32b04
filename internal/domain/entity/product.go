// Package entity contains the core business objects of the project.
package entity

// ProductVariantGroup lists related variants of a product for display, with
// an optional follow-up link.
type ProductVariantGroup struct {
	Label string   `json:"label"`
	Items []string `json:"items"`
	Link  *Link    `json:"link,omitempty"`
}

// Link is a labelled navigation target.
type Link struct {
	Href string `json:"href"`
	Text string `json:"text,omitempty"`
}

// Product is one entry of the browsable product gallery. Products are
// display-only; ordering happens through menus.
type Product struct {
	ID            string                `json:"id"`
	Name          string                `json:"name"`
	Image         string                `json:"image,omitempty"`
	Gallery       []string              `json:"gallery,omitempty"`
	Tags          []string              `json:"tags"`
	Category      string                `json:"category,omitempty"`
	OneLiner      string                `json:"one_liner,omitempty"`
	VariantGroups []ProductVariantGroup `json:"variant_groups,omitempty"`
	CTA           *Link                 `json:"cta,omitempty"`
}

// HasTag reports whether the product carries the given tag.
func (p Product) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}

	return false
}
