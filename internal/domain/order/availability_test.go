package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"bakehouse/internal/domain/entity"
)

func TestMenuAvailability(t *testing.T) {
	at := func(day string) time.Time {
		parsed, err := time.Parse("2006-01-02", day)
		if err != nil {
			t.Fatalf("bad day %q: %v", day, err)
		}

		return parsed.Add(13 * time.Hour)
	}

	window := entity.Menu{
		OrderMode:  entity.OrderModeOnline,
		ActiveFrom: "2026-02-16",
		ActiveTo:   "2026-03-16",
	}

	tests := []struct {
		name string
		menu entity.Menu
		now  time.Time
		want entity.MenuStatus
	}{
		{"year round", entity.Menu{OrderMode: entity.OrderModeOnline}, at("2026-06-01"), entity.StatusAvailable},
		{"before window", window, at("2026-02-15"), entity.StatusOutOfSeason},
		{"first day inclusive", window, at("2026-02-16"), entity.StatusAvailable},
		{"mid window", window, at("2026-03-01"), entity.StatusAvailable},
		{"last day inclusive", window, at("2026-03-16"), entity.StatusAvailable},
		{"after window", window, at("2026-03-17"), entity.StatusOutOfSeason},
		{
			"view only wins over window",
			entity.Menu{OrderMode: entity.OrderModeViewOnly, ActiveFrom: "2026-02-16", ActiveTo: "2026-03-16"},
			at("2026-06-01"),
			entity.StatusViewOnly,
		},
		{
			"request only in season",
			entity.Menu{OrderMode: entity.OrderModeRequestOnly, ActiveFrom: "2026-02-16", ActiveTo: "2026-03-16"},
			at("2026-03-01"),
			entity.StatusRequestOnly,
		},
		{
			"request only out of season",
			entity.Menu{OrderMode: entity.OrderModeRequestOnly, ActiveFrom: "2026-02-16", ActiveTo: "2026-03-16"},
			at("2026-06-01"),
			entity.StatusOutOfSeason,
		},
		{
			"open ended from",
			entity.Menu{OrderMode: entity.OrderModeOnline, ActiveFrom: "2026-02-16"},
			at("2030-01-01"),
			entity.StatusAvailable,
		},
		{
			"open ended to",
			entity.Menu{OrderMode: entity.OrderModeOnline, ActiveTo: "2026-03-16"},
			at("2026-01-01"),
			entity.StatusAvailable,
		},
		{
			"malformed bound is absent",
			entity.Menu{OrderMode: entity.OrderModeOnline, ActiveFrom: "February 16th"},
			at("2026-01-01"),
			entity.StatusAvailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MenuAvailability(tt.menu, tt.now))
		})
	}
}

func TestMenuAvailability_LateEveningOnLastDay(t *testing.T) {
	menu := entity.Menu{
		OrderMode:  entity.OrderModeOnline,
		ActiveFrom: "2026-02-16",
		ActiveTo:   "2026-03-16",
	}

	// 23:59 on the closing day still counts as in season.
	now := time.Date(2026, time.March, 16, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, entity.StatusAvailable, MenuAvailability(menu, now))
}
