// Panbord - Bakery Storefront Signage Demo
// Copyright 2026 Panbord Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/panbord/signage

// Package daypart provides the static time-slot table that themes the
// signage across the operating day.
//
// The four slots cover the 9:00-20:00 business day with half-open hour
// intervals, no gaps and no overlaps. Lookups are pure functions; a miss
// falls back to the first table entry rather than failing, because every
// caller relies on always receiving a slot.
package daypart

// Slot identifies one of the four fixed parts of the operating day.
type Slot int

const (
	// Morning covers 9:00-12:00.
	Morning Slot = iota
	// Lunch covers 12:00-15:00.
	Lunch
	// Afternoon covers 15:00-18:00.
	Afternoon
	// Evening covers 18:00-20:00.
	Evening
)

// String returns the slot identifier as a lowercase name.
func (s Slot) String() string {
	switch s {
	case Morning:
		return "morning"
	case Lunch:
		return "lunch"
	case Afternoon:
		return "afternoon"
	case Evening:
		return "evening"
	default:
		return "unknown"
	}
}

// ParseSlot maps a slot name back to its identifier.
func ParseSlot(name string) (Slot, bool) {
	switch name {
	case "morning":
		return Morning, true
	case "lunch":
		return Lunch, true
	case "afternoon":
		return Afternoon, true
	case "evening":
		return Evening, true
	default:
		return Morning, false
	}
}

// TimeSlot describes one themed part of the day.
type TimeSlot struct {
	// ID is the slot identifier.
	ID Slot `json:"id"`

	// StartHour and EndHour bound the slot as a half-open interval
	// [StartHour, EndHour) in local hours.
	StartHour int `json:"start_hour"`
	EndHour   int `json:"end_hour"`

	// Theme is the short display label for the slot, also used as a
	// recommendation reason token.
	Theme string `json:"theme"`

	// Catchphrase is longer display copy for the signage header.
	Catchphrase string `json:"catchphrase"`

	// RecommendedTags are boosted during scoring while the slot is active.
	RecommendedTags []string `json:"recommended_tags"`
}

// OpenHour and CloseHour bound the business day.
const (
	OpenHour  = 9
	CloseHour = 20
)

// slots is the static table. Order matters: the first entry doubles as the
// fallback for out-of-range lookups.
var slots = []TimeSlot{
	{
		ID:              Morning,
		StartHour:       9,
		EndHour:         12,
		Theme:           "Perfect for breakfast",
		Catchphrase:     "Fresh-baked bread for a crisp highland morning",
		RecommendedTags: []string{"breakfast", "loaf", "croissant", "light-meal"},
	},
	{
		ID:              Lunch,
		StartHour:       12,
		EndHour:         15,
		Theme:           "Lunchtime favorites",
		Catchphrase:     "Hearty picks to power the afternoon",
		RecommendedTags: []string{"hearty", "savory", "donut"},
	},
	{
		ID:              Afternoon,
		StartHour:       15,
		EndHour:         18,
		Theme:           "Sweet afternoon break",
		Catchphrase:     "Something sweet for your afternoon pause",
		RecommendedTags: []string{"sweet", "light-meal", "fruit", "kids"},
	},
	{
		ID:              Evening,
		StartHour:       18,
		EndHour:         20,
		Theme:           "Evening time sale",
		Catchphrase:     "Stock up for tomorrow's breakfast at a discount",
		RecommendedTags: []string{"loaf", "breakfast"},
	},
}

// All returns the full slot table in day order.
// The returned slice is shared; callers must not mutate it.
func All() []TimeSlot {
	return slots
}

// ForHour returns the slot whose interval contains the given hour (0-23).
// Hours outside business hours fall back to the first slot; the table fully
// covers the business day so in-range lookups always match.
func ForHour(hour int) TimeSlot {
	for _, s := range slots {
		if hour >= s.StartHour && hour < s.EndHour {
			return s
		}
	}
	return slots[0]
}

// ByID returns the slot for an identifier, falling back to the first slot
// for unknown values.
func ByID(id Slot) TimeSlot {
	for _, s := range slots {
		if s.ID == id {
			return s
		}
	}
	return slots[0]
}

// Next returns the slot following the given one, wrapping evening back to
// morning.
func Next(id Slot) TimeSlot {
	for i, s := range slots {
		if s.ID == id {
			return slots[(i+1)%len(slots)]
		}
	}
	return slots[0]
}

// MinutesUntilNext returns how many minutes remain until the current slot
// ends, given the wall clock hour and minute. Past closing it counts up to
// the next day's opening.
func MinutesUntilNext(current TimeSlot, hour, minute int) int {
	nowMinutes := hour*60 + minute
	endMinutes := current.EndHour * 60
	if nowMinutes >= endMinutes {
		return (24*60 - nowMinutes) + slots[0].StartHour*60
	}
	return endMinutes - nowMinutes
}

// IsBusinessHours reports whether the shop is open at the given hour.
func IsBusinessHours(hour int) bool {
	return hour >= OpenHour && hour < CloseHour
}
