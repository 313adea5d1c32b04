package catalog

import (
	"bakehouse/internal/domain/entity"
)

const assetBase = "https://delectable-dough-baking-co.s3.us-east-2.amazonaws.com/products/"

var flavorQuestionsLink = &entity.Link{
	Href: "/contact",
	Text: "Questions about other flavors? Contact Us!",
}

var products = []entity.Product{
	{
		ID:       "apple-strudel",
		Name:     "Old Fashioned Apple Strudel",
		Image:    assetBase + "StrudelOutOfPackage.png",
		Gallery:  []string{assetBase + "MoreStrudel.jpeg", assetBase + "MoreStrudel2.jpeg"},
		Tags:     []string{"best"},
		Category: "strudel",
		OneLiner: "Rolled by hand with tart apples and buttery layers.",
		VariantGroups: []entity.ProductVariantGroup{
			{
				Label: "Also available:",
				Items: []string{
					"Cherry-liscious",
					"Blueberry Lemon",
					"Chocolate Cranberry",
					"Triple Chocolate-Caramel",
				},
				Link: flavorQuestionsLink,
			},
		},
		CTA: &entity.Link{Href: "/contact", Text: "Learn more"},
	},
	{
		ID:       "chocolate-chip-cookies",
		Name:     "Chocolate Chip Cookies",
		Image:    assetBase + "ChocolateChip.JPG",
		Gallery:  []string{assetBase + "SugarCookie.JPG"},
		Tags:     []string{"best"},
		Category: "cookies",
		OneLiner: "Soft centers, golden edges, and extra chocolate.",
		VariantGroups: []entity.ProductVariantGroup{
			{
				Label: "Also available:",
				Items: []string{"Sugar", "Sprinkle", "Oatmeal"},
				Link:  flavorQuestionsLink,
			},
		},
	},
	{
		ID:       "kamish-bread",
		Name:     "Kamish Bread",
		Image:    assetBase + "Kamish2.WEBP",
		Gallery:  []string{assetBase + "Kamish1.JPG"},
		Tags:     []string{"favorite"},
		Category: "breads",
		OneLiner: "Soft slices with cinnamon and sweet spice.",
		VariantGroups: []entity.ProductVariantGroup{
			{
				Label: "Also available:",
				Items: []string{"Chocolate Chip"},
				Link:  flavorQuestionsLink,
			},
		},
	},
	{
		ID:       "choc-pretzels",
		Name:     "Chocolate Covered Pretzels",
		Image:    assetBase + "Pretzels.jpeg",
		Tags:     []string{"best"},
		Category: "pastries",
		OneLiner: "Crunchy, dipped pretzels with a sweet finish.",
	},
	{
		ID:       "choc-oreos",
		Name:     "Chocolate Covered Oreos",
		Image:    assetBase + "Oreos.jpeg",
		Tags:     []string{"favorite"},
		Category: "cakes",
		OneLiner: "Double Stuffed Oreos Dipped and Drizzled with Chocolate.",
	},
	{
		ID:       "brownies",
		Name:     "Brownies",
		Image:    assetBase + "Brownie.WEBP",
		Tags:     []string{"best"},
		Category: "cakes",
		OneLiner: "Delicate, chewy cookies in assorted flavors.",
	},
}

var newsPosts = []entity.NewsPost{
	{
		Title:   "Citrus season pastries return",
		Date:    "January 18, 2026",
		Excerpt: "Blood orange tarts, yuzu cream puffs, and lemon olive oil cake.",
	},
	{
		Title:   "Holiday pre-orders open",
		Date:    "December 6, 2025",
		Excerpt: "Reserve croissant boxes, stollen, and festive breakfast trays.",
	},
	{
		Title:   "Saturday bread club",
		Date:    "October 12, 2025",
		Excerpt: "Weekly loaves with rotating heritage grains and cultured butter.",
	},
}
