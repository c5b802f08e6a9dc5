// Panbord - Bakery Storefront Signage Demo
// Copyright 2026 Panbord Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/panbord/signage

// Package season provides the static season table, the second contextual
// axis next to the time slot. The four seasons partition the calendar year
// exactly; lookups fall back to the first entry on a miss instead of
// failing, mirroring the time-slot table.
package season

import "time"

// ID identifies one of the four seasons.
type ID int

const (
	// Spring covers March through May.
	Spring ID = iota
	// Summer covers June through August.
	Summer
	// Autumn covers September through November.
	Autumn
	// Winter covers December through February.
	Winter
)

// String returns the season identifier as a lowercase name.
func (id ID) String() string {
	switch id {
	case Spring:
		return "spring"
	case Summer:
		return "summer"
	case Autumn:
		return "autumn"
	case Winter:
		return "winter"
	default:
		return "unknown"
	}
}

// Parse maps a season name back to its identifier.
func Parse(name string) (ID, bool) {
	switch name {
	case "spring":
		return Spring, true
	case "summer":
		return Summer, true
	case "autumn":
		return Autumn, true
	case "winter":
		return Winter, true
	default:
		return Spring, false
	}
}

// Season describes one themed part of the year.
type Season struct {
	// ID is the season identifier.
	ID ID `json:"id"`

	// Name is the display label.
	Name string `json:"name"`

	// Months lists the calendar months (1-12) the season covers.
	Months []int `json:"months"`

	// SpecialMessage is seasonal display copy for the signage footer.
	SpecialMessage string `json:"special_message"`
}

// seasons is the static table. The first entry doubles as the fallback for
// out-of-range lookups.
var seasons = []Season{
	{ID: Spring, Name: "Spring", Months: []int{3, 4, 5}, SpecialMessage: "Fresh bread for your spring drive"},
	{ID: Summer, Name: "Summer", Months: []int{6, 7, 8}, SpecialMessage: "Welcome to the cool highlands"},
	{ID: Autumn, Name: "Autumn", Months: []int{9, 10, 11}, SpecialMessage: "Foliage season is here"},
	{ID: Winter, Name: "Winter", Months: []int{12, 1, 2}, SpecialMessage: "Warm bread for cold days"},
}

// recommendedTags maps each season to the tags boosted during scoring.
// Kept separate from the Season record itself, matching the table the
// scoring engine consumes.
var recommendedTags = map[ID][]string{
	Spring: {"light-meal", "fruit", "breakfast"},
	Summer: {"light-meal", "kids", "fruit"},
	Autumn: {"sweet", "fruit", "red-bean"},
	Winter: {"hearty", "savory", "breakfast", "loaf"},
}

// All returns the full season table.
// The returned slice is shared; callers must not mutate it.
func All() []Season {
	return seasons
}

// ForMonth returns the season covering the given month (1-12), falling back
// to the first table entry for out-of-range values.
func ForMonth(month int) Season {
	for _, s := range seasons {
		for _, m := range s.Months {
			if m == month {
				return s
			}
		}
	}
	return seasons[0]
}

// ByID returns the season for an identifier, falling back to the first
// entry for unknown values.
func ByID(id ID) Season {
	for _, s := range seasons {
		if s.ID == id {
			return s
		}
	}
	return seasons[0]
}

// RecommendedTags returns the tags boosted while the given season is
// active. Unknown identifiers return nil.
func RecommendedTags(id ID) []string {
	return recommendedTags[id]
}

// IsTouristSeason reports whether the given season draws tourist traffic
// (summer holidays and the autumn foliage window).
func IsTouristSeason(id ID) bool {
	return id == Summer || id == Autumn
}

// IsWeekend reports whether the given time falls on a weekend.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsTouristMode reports whether tourist-oriented presentation applies:
// either a tourist season or a weekend.
func IsTouristMode(id ID, t time.Time) bool {
	return IsTouristSeason(id) || IsWeekend(t)
}
