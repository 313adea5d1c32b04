package order

import (
	"time"

	"bakehouse/internal/domain/entity"
)

const activeDateLayout = "2006-01-02"

// MenuAvailability evaluates a menu's ordering status relative to now.
// A viewOnly order mode wins over any date window; otherwise a date outside
// the inclusive active window is out of season, then requestOnly, then
// available. A menu with no bounds is treated as year-round.
func MenuAvailability(menu entity.Menu, now time.Time) entity.MenuStatus {
	if menu.OrderMode == entity.OrderModeViewOnly {
		return entity.StatusViewOnly
	}
	if outOfSeason(menu, now) {
		return entity.StatusOutOfSeason
	}
	if menu.OrderMode == entity.OrderModeRequestOnly {
		return entity.StatusRequestOnly
	}

	return entity.StatusAvailable
}

func outOfSeason(menu entity.Menu, now time.Time) bool {
	from, hasFrom := parseActiveDate(menu.ActiveFrom, now.Location())
	to, hasTo := parseActiveDate(menu.ActiveTo, now.Location())
	if !hasFrom && !hasTo {
		return false
	}

	today := civilDate(now)
	if hasFrom && today.Before(from) {
		return true
	}
	if hasTo && today.After(to) {
		return true
	}

	return false
}

// parseActiveDate reads an inclusive YYYY-MM-DD bound. An empty or
// malformed bound is treated as absent.
func parseActiveDate(value string, loc *time.Location) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	parsed, err := time.ParseInLocation(activeDateLayout, value, loc)
	if err != nil {
		return time.Time{}, false
	}

	return parsed, true
}

// civilDate truncates a timestamp to its calendar date so window checks
// compare whole days, not clock times.
func civilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
