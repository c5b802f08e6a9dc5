// Panbord - Bakery Storefront Signage Demo
// Copyright 2026 Panbord Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/panbord/signage

package demo

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/panbord/signage/internal/catalog"
	"github.com/panbord/signage/internal/inventory"
	"github.com/panbord/signage/internal/metrics"
	"github.com/panbord/signage/internal/recommend"
	"github.com/panbord/signage/internal/season"
)

// Controller owns the demo session state. Every mutation swaps a whole
// Settings or Store snapshot under the lock, so readers always see a
// consistent pair and never a half-applied change.
type Controller struct {
	mu       sync.RWMutex
	settings Settings
	store    inventory.Store

	catalog        *catalog.Catalog
	defaultWeights recommend.Weights
	rng            *rand.Rand
	now            func() time.Time
	logger         zerolog.Logger

	subMu       sync.Mutex
	subscribers []func()
}

// NewController seeds the inventory from the catalog and starts the
// session with no overrides and the given default weights. A nil rng
// makes the seed fully deterministic (fallback quantities only).
func NewController(cat *catalog.Catalog, rng *rand.Rand, defaults recommend.Weights, logger zerolog.Logger) *Controller {
	c := &Controller{
		catalog:        cat,
		defaultWeights: defaults,
		rng:            rng,
		now:            time.Now,
		logger:         logger.With().Str("component", "demo").Logger(),
	}
	c.settings = Settings{Weights: defaults}
	c.store = inventory.Seed(cat, rng, c.now)
	return c
}

// OnChange registers a callback invoked after every state mutation,
// outside the state lock. Used to push fresh display snapshots to
// connected screens.
func (c *Controller) OnChange(fn func()) {
	c.subMu.Lock()
	defer c.subMu.Unlock()
	c.subscribers = append(c.subscribers, fn)
}

func (c *Controller) notify() {
	c.subMu.Lock()
	subs := make([]func(), len(c.subscribers))
	copy(subs, c.subscribers)
	c.subMu.Unlock()
	for _, fn := range subs {
		fn()
	}
}

// Settings returns the current settings snapshot.
func (c *Controller) Settings() Settings {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.settings
}

// Store returns the current inventory snapshot.
func (c *Controller) Store() inventory.Store {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.store
}

// State returns both snapshots read under a single lock, so the pair is
// consistent even while a scenario is stepping.
func (c *Controller) State() (Settings, inventory.Store) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.settings, c.store
}

// SetSimulatedHour overrides the display hour. Nil clears the override.
func (c *Controller) SetSimulatedHour(hour *int) error {
	if hour != nil && (*hour < 0 || *hour > 23) {
		return fmt.Errorf("simulated hour %d outside [0,23]", *hour)
	}
	c.mu.Lock()
	s := c.settings
	s.SimulatedHour = hour
	c.settings = s
	c.mu.Unlock()
	c.notify()
	return nil
}

// SetSimulatedSeason overrides the display season. Nil clears the override.
func (c *Controller) SetSimulatedSeason(id *season.ID) error {
	if id != nil && (*id < season.Spring || *id > season.Winter) {
		return fmt.Errorf("unknown season id %d", *id)
	}
	c.mu.Lock()
	s := c.settings
	s.SimulatedSeason = id
	c.settings = s
	c.mu.Unlock()
	c.notify()
	return nil
}

// SetWeights replaces the scoring coefficients.
func (c *Controller) SetWeights(w recommend.Weights) error {
	if err := w.Validate(); err != nil {
		return err
	}
	c.mu.Lock()
	s := c.settings
	s.Weights = w
	c.settings = s
	c.mu.Unlock()
	c.notify()
	return nil
}

// ResetWeights restores the configured default coefficients.
func (c *Controller) ResetWeights() {
	c.mu.Lock()
	s := c.settings
	s.Weights = c.defaultWeights
	c.settings = s
	c.mu.Unlock()
	c.notify()
}

// SetQuantity sets a product's stock level, clamped to its capacity.
func (c *Controller) SetQuantity(code, quantity int) {
	c.mu.Lock()
	c.store = c.store.SetQuantity(code, quantity)
	c.mu.Unlock()
	c.notify()
}

// Sell simulates a single register sale.
func (c *Controller) Sell(code int) {
	c.mu.Lock()
	c.store = c.store.Sell(code)
	out := c.store.Summarize().Out
	c.mu.Unlock()
	metrics.SimulatedSales.Inc()
	metrics.OutOfStockProducts.Set(float64(out))
	c.notify()
}

// Restock adds stock, clamped to capacity.
func (c *Controller) Restock(code, amount int) {
	c.mu.Lock()
	c.store = c.store.Restock(code, amount)
	c.mu.Unlock()
	c.notify()
}

// ResetInventory reseeds the whole store to opening stock.
func (c *Controller) ResetInventory() {
	c.mu.Lock()
	c.store = inventory.Seed(c.catalog, c.rng, c.now)
	out := c.store.Summarize().Out
	c.mu.Unlock()
	metrics.InventoryResets.Inc()
	metrics.OutOfStockProducts.Set(float64(out))
	c.logger.Info().Msg("inventory reset to opening stock")
	c.notify()
}

// setScenario records auto-play progress. Called only by the Player.
func (c *Controller) setScenario(sc Scenario, step, total int) {
	c.mu.Lock()
	s := c.settings
	s.ActiveScenario = sc
	s.AutoPlay = sc != ScenarioNone
	s.ScenarioStep = step
	s.ScenarioTotal = total
	c.settings = s
	c.mu.Unlock()
	c.notify()
}
