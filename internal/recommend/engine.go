// Panbord - Bakery Storefront Signage Demo
// Copyright 2026 Panbord Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/panbord/signage

// Package recommend turns the catalog plus contextual signals (time slot,
// season, inventory) into a ranked, explainable list of products to
// feature. Scoring is deterministic: the same inputs always produce the
// same ranking, including tie order.
package recommend

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/panbord/signage/internal/catalog"
	"github.com/panbord/signage/internal/daypart"
	"github.com/panbord/signage/internal/inventory"
	"github.com/panbord/signage/internal/season"
)

// DefaultSubCount is how many alternate recommendations accompany the
// hero product by default.
const DefaultSubCount = 3

// Engine ranks catalog products for the current context. It holds no
// mutable state; all context arrives per call.
type Engine struct {
	catalog *catalog.Catalog
	logger  zerolog.Logger
}

// NewEngine creates a scoring engine over the given catalog.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cat *catalog.Catalog, logger zerolog.Logger) *Engine {
	return &Engine{
		catalog: cat,
		logger:  logger.With().Str("component", "recommend").Logger(),
	}
}

// Rank scores every eligible product and returns the top limit results,
// sorted descending by total score with ranks assigned 1..N.
//
// Eligibility: a product is skipped when its code is in exclude, or when
// its inventory record exists with status out. Products without a record
// are never excluded by the stock rule.
//
// Ties break on the lower product code so the ordering is reproducible
// regardless of catalog iteration order.
func (e *Engine) Rank(slot daypart.TimeSlot, seasonID season.ID, store inventory.Store, w Weights, limit int, exclude ...int) []Recommendation {
	excluded := make(map[int]struct{}, len(exclude))
	for _, code := range exclude {
		excluded[code] = struct{}{}
	}

	recs := make([]Recommendation, 0, e.catalog.Len())
	for _, p := range e.catalog.Products() {
		if _, skip := excluded[p.Code]; skip {
			continue
		}
		item, hasItem := store.Item(p.Code)
		if hasItem && item.Status == inventory.StatusOut {
			continue
		}
		b := ScoreBreakdown(p, slot, seasonID, item, hasItem)
		recs = append(recs, Recommendation{
			Product:   p,
			Score:     TotalScore(b, w),
			Breakdown: b,
			Reason:    Reason(b, slot),
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Score != recs[j].Score {
			return recs[i].Score > recs[j].Score
		}
		return recs[i].Product.Code < recs[j].Product.Code
	})

	if limit > 0 && len(recs) > limit {
		recs = recs[:limit]
	}
	for i := range recs {
		recs[i].Rank = i + 1
	}

	e.logger.Debug().
		Str("slot", slot.ID.String()).
		Str("season", seasonID.String()).
		Int("candidates", e.catalog.Len()).
		Int("returned", len(recs)).
		Msg("ranked recommendations")

	return recs
}

// Main returns the single highest-ranked recommendation, or nil when every
// product is out of stock. Callers must render an explicit empty state in
// that case.
func (e *Engine) Main(slot daypart.TimeSlot, seasonID season.ID, store inventory.Store, w Weights) *Recommendation {
	recs := e.Rank(slot, seasonID, store, w, 1)
	if len(recs) == 0 {
		return nil
	}
	return &recs[0]
}

// Subs returns up to limit alternates excluding the hero product, so a
// display can show one hero plus alternates without duplicates. A
// non-positive limit uses DefaultSubCount.
func (e *Engine) Subs(slot daypart.TimeSlot, seasonID season.ID, store inventory.Store, mainCode int, w Weights, limit int) []Recommendation {
	if limit <= 0 {
		limit = DefaultSubCount
	}
	return e.Rank(slot, seasonID, store, w, limit, mainCode)
}
