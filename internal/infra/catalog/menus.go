package catalog

import (
	"github.com/shopspring/decimal"

	"bakehouse/internal/domain/entity"
)

func price(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

var menus = []entity.Menu{
	{
		ID:               "standard-trays",
		Title:            "Sensational Sweet Trays",
		Description:      "Flyer favorites for gatherings, offices, and family celebrations.",
		Badge:            "Standard",
		AvailabilityNote: "Available year-round. Seasonal swaps upon request.",
		MinimumOrderNote: "Minimum order: 1 tray.",
		OrderMode:        entity.OrderModeOnline,
		Template:         entity.TemplateCatalog,
		Items: []entity.MenuItem{
			{
				ID:            "strudel-lovers",
				Name:          "Strudel Lover's",
				Description:   "All strudel, all the time. A signature mix anchored by Old Fashioned Apple.",
				ServingNote:   `12" serves 10-12 - 16" serves 20-25`,
				Sizes: []entity.MenuItemSize{
					{ID: "tray-12", Label: `12" Tray`, Price: price("48")},
					{ID: "tray-16", Label: `16" Tray`, Price: price("78")},
				},
				DefaultSizeID: "tray-12",
				Kind:          entity.KindPreset,
				AllowNotes:    true,
			},
			{
				ID:            "simple-favorites",
				Name:          "Simple Favorites",
				Description:   "Crowd-pleasing classics with a mix of bars, cookies, and sweet bites.",
				ServingNote:   `12" serves 12-14 - 16" serves 22-26`,
				Sizes: []entity.MenuItemSize{
					{ID: "tray-12", Label: `12" Tray`, Price: price("42")},
					{ID: "tray-16", Label: `16" Tray`, Price: price("72")},
				},
				DefaultSizeID: "tray-12",
				Kind:          entity.KindPreset,
				AllowNotes:    true,
			},
			{
				ID:            "good-morning",
				Name:          "Good Morning",
				Description:   "Breakfast-inspired treats with muffins, coffee cake, and morning pastries.",
				ServingNote:   `12" serves 10-12 - 16" serves 18-22`,
				Sizes: []entity.MenuItemSize{
					{ID: "tray-12", Label: `12" Tray`, Price: price("44")},
					{ID: "tray-16", Label: `16" Tray`, Price: price("74")},
				},
				DefaultSizeID: "tray-12",
				Kind:          entity.KindPreset,
				AllowNotes:    true,
			},
			{
				ID:            "gourmet",
				Name:          "Gourmet",
				Description:   "An elevated assortment with dipped cookies, petit bars, and decadent bites.",
				ServingNote:   `12" serves 10-12 - 16" serves 20-24`,
				Sizes: []entity.MenuItemSize{
					{ID: "tray-12", Label: `12" Tray`, Price: price("52")},
					{ID: "tray-16", Label: `16" Tray`, Price: price("86")},
				},
				DefaultSizeID: "tray-12",
				Kind:          entity.KindPreset,
				AllowNotes:    true,
			},
			{
				ID:            "traditional",
				Name:          "Traditional",
				Description:   "A classic spread of traditional pastries with a Delectable Dough twist.",
				ServingNote:   `12" serves 12-14 - 16" serves 22-26`,
				Sizes: []entity.MenuItemSize{
					{ID: "tray-12", Label: `12" Tray`, Price: price("46")},
					{ID: "tray-16", Label: `16" Tray`, Price: price("76")},
				},
				DefaultSizeID: "tray-12",
				Kind:          entity.KindPreset,
				AllowNotes:    true,
			},
			{
				ID:            "by-the-strudel",
				Name:          "By the Strudel",
				Description:   "One whole strudel in the flavor of your choice.",
				ServingNote:   "Each strudel serves 8-10",
				Sizes: []entity.MenuItemSize{
					{ID: "whole", Label: "Whole Strudel", Price: price("24")},
				},
				DefaultSizeID: "whole",
				Kind:          entity.KindFlavor,
				FlavorOptions: []string{
					"Old Fashioned Apple",
					"Cherry-liscious",
					"Blueberry Lemon",
					"Chocolate Cranberry",
					"Triple Chocolate-Caramel",
				},
				AllowNotes: true,
			},
		},
	},
	{
		ID:               "holiday-hamantaschen",
		Title:            "Holiday Hamantaschen",
		Description:      "Mix and match classic fillings across regular, gluten-free, or vegan dough.",
		Badge:            "Seasonal",
		AvailabilityNote: "Available February 16th to March 16th.",
		OrderMode:        entity.OrderModeOnline,
		Template:         entity.TemplateMatrix,
		ActiveFrom:       "2026-02-16",
		ActiveTo:         "2026-03-16",
		Matrix: &entity.MenuMatrix{
			Title: "Hamantaschen",
			Rows: []entity.MatrixRow{
				{ID: "apple", Label: "Apple"},
				{ID: "apricot", Label: "Apricot"},
				{ID: "poppy", Label: "Poppy Seed"},
				{ID: "chocolate", Label: "Chocolate"},
			},
			Columns: []entity.MatrixColumn{
				{ID: "regular", Label: "Regular", Price: price("3")},
				{ID: "gluten-free", Label: "Gluten-Free", Price: price("3.5")},
				{ID: "vegan", Label: "Vegan", Price: price("3.5")},
			},
		},
	},
	{
		ID:               "holiday-hamantaschen-test",
		Title:            "Holiday Hamantaschen 2",
		Description:      "Mix and match classic fillings across regular, gluten-free, or vegan dough.",
		Badge:            "Seasonal",
		AvailabilityNote: "Available February 16th to March 16th.",
		OrderMode:        entity.OrderModeOnline,
		Template:         entity.TemplateMatrix,
		ActiveFrom:       "2026-02-02",
		ActiveTo:         "2026-03-16",
		Matrix: &entity.MenuMatrix{
			Title: "Hamantaschen",
			Rows: []entity.MatrixRow{
				{ID: "apple", Label: "Apple"},
				{ID: "apricot", Label: "Apricot"},
				{ID: "poppy", Label: "Poppy Seed"},
				{ID: "chocolate", Label: "Chocolate"},
			},
			Columns: []entity.MatrixColumn{
				{ID: "regular", Label: "Regular", Price: price("3")},
				{ID: "gluten-free", Label: "Gluten-Free", Price: price("3.5")},
				{ID: "vegan", Label: "Vegan", Price: price("3.5")},
			},
		},
	},
}
