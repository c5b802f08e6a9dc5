// Panbord - Bakery Storefront Signage Demo
// Copyright 2026 Panbord Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/panbord/signage

package demo

import (
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/panbord/signage/internal/catalog"
	"github.com/panbord/signage/internal/inventory"
	"github.com/panbord/signage/internal/recommend"
	"github.com/panbord/signage/internal/season"
)

func testController(t *testing.T) *Controller {
	t.Helper()
	return NewController(catalog.MustLoad(), nil, recommend.DefaultWeights(), zerolog.Nop())
}

func intPtr(v int) *int { return &v }

func seasonPtr(id season.ID) *season.ID { return &id }

func TestNewControllerSeedsFullStore(t *testing.T) {
	c := testController(t)
	if got, want := c.Store().Len(), catalog.MustLoad().Len(); got != want {
		t.Errorf("store size = %d, want %d", got, want)
	}
	if c.Settings().Weights != recommend.DefaultWeights() {
		t.Errorf("weights = %+v, want defaults", c.Settings().Weights)
	}
	if c.Settings().AutoPlay {
		t.Error("autoplay on at session start")
	}
}

func TestSetSimulatedHour(t *testing.T) {
	c := testController(t)

	if err := c.SetSimulatedHour(intPtr(14)); err != nil {
		t.Fatalf("SetSimulatedHour(14): %v", err)
	}
	s := c.Settings()
	if s.SimulatedHour == nil || *s.SimulatedHour != 14 {
		t.Errorf("simulated hour = %v, want 14", s.SimulatedHour)
	}

	if err := c.SetSimulatedHour(intPtr(24)); err == nil {
		t.Error("hour 24 accepted")
	}
	if err := c.SetSimulatedHour(intPtr(-1)); err == nil {
		t.Error("hour -1 accepted")
	}

	if err := c.SetSimulatedHour(nil); err != nil {
		t.Fatalf("clearing hour: %v", err)
	}
	if c.Settings().SimulatedHour != nil {
		t.Error("override not cleared")
	}
}

func TestEffectiveHourFallsBackToClock(t *testing.T) {
	c := testController(t)
	now := time.Date(2026, 9, 1, 16, 30, 0, 0, time.UTC)

	if got := c.Settings().EffectiveHour(now); got != 16 {
		t.Errorf("effective hour = %d, want 16 from clock", got)
	}
	if err := c.SetSimulatedHour(intPtr(9)); err != nil {
		t.Fatal(err)
	}
	if got := c.Settings().EffectiveHour(now); got != 9 {
		t.Errorf("effective hour = %d, want simulated 9", got)
	}
}

func TestSetSimulatedSeason(t *testing.T) {
	c := testController(t)

	if err := c.SetSimulatedSeason(seasonPtr(season.Winter)); err != nil {
		t.Fatalf("SetSimulatedSeason: %v", err)
	}
	now := time.Date(2026, 7, 15, 12, 0, 0, 0, time.UTC)
	if got := c.Settings().EffectiveSeason(now); got != season.Winter {
		t.Errorf("effective season = %v, want winter override", got)
	}

	if err := c.SetSimulatedSeason(seasonPtr(season.ID(99))); err == nil {
		t.Error("bogus season id accepted")
	}

	if err := c.SetSimulatedSeason(nil); err != nil {
		t.Fatal(err)
	}
	if got := c.Settings().EffectiveSeason(now); got != season.Summer {
		t.Errorf("effective season = %v, want summer from calendar", got)
	}
}

func TestSetWeights(t *testing.T) {
	c := testController(t)

	w := recommend.Weights{Profit: 1}
	if err := c.SetWeights(w); err != nil {
		t.Fatalf("SetWeights: %v", err)
	}
	if c.Settings().Weights != w {
		t.Errorf("weights = %+v, want %+v", c.Settings().Weights, w)
	}

	if err := c.SetWeights(recommend.Weights{Profit: -1}); err == nil {
		t.Error("negative weight accepted")
	}

	c.ResetWeights()
	if c.Settings().Weights != recommend.DefaultWeights() {
		t.Errorf("weights after reset = %+v", c.Settings().Weights)
	}
}

func TestInventoryMutationsSwapSnapshots(t *testing.T) {
	c := testController(t)

	before := c.Store()
	c.Sell(106020)
	after := c.Store()

	b, _ := before.Item(106020)
	a, _ := after.Item(106020)
	if a.Quantity != b.Quantity-1 {
		t.Errorf("quantity after sale = %d, want %d", a.Quantity, b.Quantity-1)
	}
	if got, _ := before.Item(106020); got.Quantity != b.Quantity {
		t.Error("prior snapshot mutated by sale")
	}

	c.SetQuantity(106020, 2)
	if it, _ := c.Store().Item(106020); it.Status != inventory.StatusLow {
		t.Errorf("status = %v, want low at quantity 2", it.Status)
	}

	c.Restock(106020, 100)
	if it, _ := c.Store().Item(106020); it.Quantity != it.MaxQuantity {
		t.Errorf("restock did not clamp to capacity: %d/%d", it.Quantity, it.MaxQuantity)
	}
}

func TestResetInventoryRestoresOpeningStock(t *testing.T) {
	c := testController(t)
	c.SetQuantity(106020, 0)
	c.Restock(102020, 5)

	c.ResetInventory()

	if it, _ := c.Store().Item(106020); it.Quantity != 15 {
		t.Errorf("106020 quantity = %d, want 15 after reset", it.Quantity)
	}
	if it, _ := c.Store().Item(102020); it.Status != inventory.StatusOut {
		t.Errorf("102020 status = %v, want out after reset", it.Status)
	}
}

func TestOnChangeFiresPerMutation(t *testing.T) {
	c := testController(t)
	var calls int
	c.OnChange(func() { calls++ })

	if err := c.SetSimulatedHour(intPtr(10)); err != nil {
		t.Fatal(err)
	}
	c.Sell(106020)
	c.ResetWeights()

	if calls != 3 {
		t.Errorf("change callbacks = %d, want 3", calls)
	}
}

func TestStateReturnsConsistentPair(t *testing.T) {
	c := testController(t)
	if err := c.SetSimulatedHour(intPtr(11)); err != nil {
		t.Fatal(err)
	}
	settings, store := c.State()
	if settings.SimulatedHour == nil || *settings.SimulatedHour != 11 {
		t.Errorf("settings out of date: %+v", settings.SimulatedHour)
	}
	if store.Len() == 0 {
		t.Error("store snapshot empty")
	}
}
