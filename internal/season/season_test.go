// Panbord - Bakery Storefront Signage Demo
// Copyright 2026 Panbord Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/panbord/signage

package season

import (
	"testing"
	"time"
)

func TestForMonth(t *testing.T) {
	tests := []struct {
		month int
		want  ID
	}{
		{3, Spring}, {4, Spring}, {5, Spring},
		{6, Summer}, {7, Summer}, {8, Summer},
		{9, Autumn}, {10, Autumn}, {11, Autumn},
		{12, Winter}, {1, Winter}, {2, Winter},
		// Out-of-range months fall back to the first entry.
		{0, Spring},
		{13, Spring},
	}
	for _, tt := range tests {
		if got := ForMonth(tt.month); got.ID != tt.want {
			t.Errorf("ForMonth(%d) = %v, want %v", tt.month, got.ID, tt.want)
		}
	}
}

func TestSeasonsPartitionYear(t *testing.T) {
	covered := make(map[int]ID)
	for _, s := range All() {
		for _, m := range s.Months {
			if prev, dup := covered[m]; dup {
				t.Errorf("month %d covered by both %v and %v", m, prev, s.ID)
			}
			covered[m] = s.ID
		}
	}
	for m := 1; m <= 12; m++ {
		if _, ok := covered[m]; !ok {
			t.Errorf("month %d not covered by any season", m)
		}
	}
}

func TestRecommendedTags(t *testing.T) {
	for _, s := range All() {
		tags := RecommendedTags(s.ID)
		if len(tags) == 0 {
			t.Errorf("season %v has no recommended tags", s.ID)
		}
	}
	if got := RecommendedTags(ID(99)); got != nil {
		t.Errorf("RecommendedTags(unknown) = %v, want nil", got)
	}
}

func TestIsTouristSeason(t *testing.T) {
	tests := []struct {
		id   ID
		want bool
	}{
		{Spring, false},
		{Summer, true},
		{Autumn, true},
		{Winter, false},
	}
	for _, tt := range tests {
		if got := IsTouristSeason(tt.id); got != tt.want {
			t.Errorf("IsTouristSeason(%v) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestIsWeekendAndTouristMode(t *testing.T) {
	saturday := time.Date(2026, 1, 3, 12, 0, 0, 0, time.UTC)
	monday := time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)

	if !IsWeekend(saturday) {
		t.Error("IsWeekend(saturday) = false")
	}
	if IsWeekend(monday) {
		t.Error("IsWeekend(monday) = true")
	}

	// Winter weekday is not tourist mode; winter weekend is.
	if IsTouristMode(Winter, monday) {
		t.Error("IsTouristMode(winter, monday) = true")
	}
	if !IsTouristMode(Winter, saturday) {
		t.Error("IsTouristMode(winter, saturday) = false")
	}
	// Tourist season applies regardless of weekday.
	if !IsTouristMode(Summer, monday) {
		t.Error("IsTouristMode(summer, monday) = false")
	}
}

func TestStringAndParse(t *testing.T) {
	for _, id := range []ID{Spring, Summer, Autumn, Winter} {
		parsed, ok := Parse(id.String())
		if !ok || parsed != id {
			t.Errorf("Parse(%q) = %v, %v", id.String(), parsed, ok)
		}
	}
	if _, ok := Parse("monsoon"); ok {
		t.Error("Parse accepted an unknown season name")
	}
}
