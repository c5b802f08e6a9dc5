// Panbord - Bakery Storefront Signage Demo
// Copyright 2026 Panbord Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/panbord/signage

package signage

import (
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/panbord/signage/internal/catalog"
	"github.com/panbord/signage/internal/crosssell"
	"github.com/panbord/signage/internal/daypart"
	"github.com/panbord/signage/internal/inventory"
	"github.com/panbord/signage/internal/recommend"
	"github.com/panbord/signage/internal/season"
)

var buildTime = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

func testBuilder(t *testing.T) (*Builder, inventory.Store) {
	t.Helper()
	cat := catalog.MustLoad()
	store := inventory.Seed(cat, nil, func() time.Time { return buildTime })
	engine := recommend.NewEngine(cat, zerolog.Nop())
	advisor := crosssell.MustNewAdvisor(cat, zerolog.Nop())
	return NewBuilder(cat, engine, advisor, zerolog.Nop()), store
}

func TestBuildFullDisplay(t *testing.T) {
	b, store := testBuilder(t)

	d := b.Build(10, season.Spring, store, recommend.DefaultWeights(), buildTime)

	if d.TimeSlot.ID != daypart.Morning {
		t.Errorf("slot = %v, want morning for hour 10", d.TimeSlot.ID)
	}
	if d.Season.ID != season.Spring {
		t.Errorf("season = %v, want spring", d.Season.ID)
	}
	if d.Main == nil {
		t.Fatal("no main recommendation with a stocked store")
	}
	if d.Main.Rank != 1 {
		t.Errorf("main rank = %d, want 1", d.Main.Rank)
	}
	if len(d.Subs) != recommend.DefaultSubCount {
		t.Errorf("len(subs) = %d, want %d", len(d.Subs), recommend.DefaultSubCount)
	}
	for _, s := range d.Subs {
		if s.Product.Code == d.Main.Product.Code {
			t.Errorf("sub repeats main product %d", d.Main.Product.Code)
		}
	}
	if d.Summary.Total != catalog.MustLoad().Len() {
		t.Errorf("summary total = %d, want catalog size", d.Summary.Total)
	}
	if !d.GeneratedAt.Equal(buildTime) {
		t.Errorf("generated at = %v, want %v", d.GeneratedAt, buildTime)
	}
}

func TestBuildAnnouncement(t *testing.T) {
	b, store := testBuilder(t)

	d := b.Build(13, season.Winter, store, recommend.DefaultWeights(), buildTime)
	slot := daypart.ByID(daypart.Lunch)
	sea := season.ByID(season.Winter)
	if !strings.Contains(d.Announcement, slot.Catchphrase) {
		t.Errorf("announcement %q missing slot catchphrase", d.Announcement)
	}
	if !strings.Contains(d.Announcement, sea.SpecialMessage) {
		t.Errorf("announcement %q missing season message", d.Announcement)
	}
}

func TestBuildCrossSellMatchesMain(t *testing.T) {
	b, store := testBuilder(t)
	advisor := crosssell.MustNewAdvisor(catalog.MustLoad(), zerolog.Nop())

	for _, hour := range []int{9, 12, 15, 19} {
		d := b.Build(hour, season.Summer, store, recommend.DefaultWeights(), buildTime)
		if d.Main == nil {
			t.Fatalf("hour %d: no main recommendation", hour)
		}
		hasPairs := len(advisor.SuggestionsFor(d.Main.Product.Code)) > 0
		if hasPairs && d.CrossSell == nil {
			t.Errorf("hour %d: main %d has pairs but no cross-sell shown", hour, d.Main.Product.Code)
		}
		if !hasPairs && d.CrossSell != nil {
			t.Errorf("hour %d: cross-sell shown for pairless main %d", hour, d.Main.Product.Code)
		}
		if d.CrossSell != nil {
			if !d.CrossSell.Involves(d.Main.Product.Code) {
				t.Errorf("hour %d: cross-sell pair does not involve the main product", hour)
			}
			want := d.CrossSell.CompanionOf(d.Main.Product.Code)
			if d.CrossSellCompanion == nil || d.CrossSellCompanion.Code != want {
				t.Errorf("hour %d: companion product mismatch", hour)
			}
		}
	}
}

func TestBuildEmptyStateWhenSoldOut(t *testing.T) {
	b, store := testBuilder(t)
	for _, p := range catalog.MustLoad().Products() {
		store = store.SetQuantity(p.Code, 0)
	}

	d := b.Build(16, season.Autumn, store, recommend.DefaultWeights(), buildTime)
	if d.Main != nil {
		t.Errorf("main = %+v, want nil with everything sold out", d.Main)
	}
	if len(d.Subs) != 0 {
		t.Errorf("len(subs) = %d, want 0", len(d.Subs))
	}
	if d.CrossSell != nil {
		t.Error("cross-sell shown with no main product")
	}
	if d.Summary.Out != d.Summary.Total {
		t.Errorf("summary out = %d, want %d", d.Summary.Out, d.Summary.Total)
	}
	if d.Announcement == "" {
		t.Error("announcement missing on empty display")
	}
}

func TestBuildAfterHoursFallsBackToFirstSlot(t *testing.T) {
	b, store := testBuilder(t)

	d := b.Build(23, season.Spring, store, recommend.DefaultWeights(), buildTime)
	if d.TimeSlot.ID != daypart.Morning {
		t.Errorf("slot = %v, want fallback to morning at hour 23", d.TimeSlot.ID)
	}
}
