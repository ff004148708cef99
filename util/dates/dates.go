package dates

import (
	"time"

	"github.com/goodsign/monday"
)

func EqualDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func EqualMonth(a, b time.Time) bool {
	ay, am, _ := a.Date()
	by, bm, _ := b.Date()
	return ay == by && am == bm
}

// FormatRange formats the days from first to last in the given locale,
// collapsing the parts both dates have in common.
func FormatRange(first, last time.Time, locale monday.Locale) string {
	if last.Before(first) {
		first, last = last, first
	}

	switch {
	case EqualDay(first, last):
		return monday.Format(first, "2 January 2006", locale)
	case EqualMonth(first, last):
		return monday.Format(first, "2", locale) + "-" + monday.Format(last, "2 January 2006", locale)
	case first.Year() == last.Year():
		return monday.Format(first, "2 January", locale) + " - " + monday.Format(last, "2 January 2006", locale)
	default:
		return monday.Format(first, "2 January 2006", locale) + " - " + monday.Format(last, "2 January 2006", locale)
	}
}

// ParseLocale returns the monday locale with the given name, falling back to
// US English for unknown names.
func ParseLocale(name string) monday.Locale {
	for _, l := range monday.ListLocales() {
		if string(l) == name {
			return l
		}
	}
	return monday.LocaleEnUS
}
