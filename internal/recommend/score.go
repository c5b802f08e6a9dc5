// Panbord - Bakery Storefront Signage Demo
// Copyright 2026 Panbord Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/panbord/signage

package recommend

import (
	"math"
	"strings"

	"github.com/panbord/signage/internal/catalog"
	"github.com/panbord/signage/internal/daypart"
	"github.com/panbord/signage/internal/inventory"
	"github.com/panbord/signage/internal/season"
)

// Sub-score constants. The tag-match scores floor at tagMatchBoost above
// the raw overlap ratio and cap at 100; tagless products sit at a
// neutral-low default rather than zero so they can still surface.
const (
	taglessScore  = 30.0
	tagMatchBoost = 20.0

	// Inventory curve: mid-range fill is rewarded most, near-full less,
	// low stock much less, and a product without a record scores neutral.
	invScoreOut     = 0.0
	invScoreLow     = 40.0
	invScoreHigh    = 90.0  // fill ratio > 0.8
	invScoreMid     = 100.0 // fill ratio > 0.5
	invScoreDefault = 70.0
	invScoreMissing = 50.0
)

// Reason thresholds and tokens.
const (
	reasonProfitThreshold    = 75.0
	reasonTimeSlotThreshold  = 70.0
	reasonInventoryThreshold = 90.0

	reasonHighProfit  = "high profit"
	reasonWellStocked = "well-stocked"
	reasonFallback    = "staff pick"
)

// Breakdown holds the four independent sub-scores, each in [0,100],
// before weighting.
type Breakdown struct {
	Profit    float64 `json:"profit"`
	TimeSlot  float64 `json:"time_slot"`
	Season    float64 `json:"season"`
	Inventory float64 `json:"inventory"`
}

// Recommendation pairs a product with its score and explanation. Rank is
// 1-based and assigned only after a batch is sorted together; zero means
// unranked.
type Recommendation struct {
	Product   catalog.Product `json:"product"`
	Score     float64         `json:"score"`
	Breakdown Breakdown       `json:"breakdown"`
	Reason    string          `json:"reason"`
	Rank      int             `json:"rank,omitempty"`
}

// profitScore is the product's authored margin, taken as-is. Margins are
// authored in [0,100]; a future catalog entry outside that range would
// distort totals, so the catalog tests pin the authored range instead of
// clamping here.
func profitScore(p catalog.Product) float64 {
	return p.ProfitMargin
}

// tagMatchScore scores the overlap between product tags and a recommended
// tag set: min(100, matches/len(recommended)*100 + boost). Tagless
// products get the neutral-low default.
func tagMatchScore(p catalog.Product, recommended []string) float64 {
	if len(p.Tags) == 0 {
		return taglessScore
	}
	if len(recommended) == 0 {
		return math.Min(100, tagMatchBoost)
	}
	matches := 0
	for _, tag := range p.Tags {
		for _, rec := range recommended {
			if tag == rec {
				matches++
				break
			}
		}
	}
	score := float64(matches)/float64(len(recommended))*100 + tagMatchBoost
	return math.Min(100, score)
}

// timeSlotScore scores the product against the slot's recommended tags.
func timeSlotScore(p catalog.Product, slot daypart.TimeSlot) float64 {
	return tagMatchScore(p, slot.RecommendedTags)
}

// seasonScore scores the product against the season's recommended tags,
// symmetric with the time-slot axis.
func seasonScore(p catalog.Product, id season.ID) float64 {
	return tagMatchScore(p, season.RecommendedTags(id))
}

// inventoryScore maps stock health onto the non-monotonic reward curve.
// ok=false (no record) scores neutral.
func inventoryScore(item inventory.Item, ok bool) float64 {
	if !ok {
		return invScoreMissing
	}
	switch item.Status {
	case inventory.StatusOut:
		return invScoreOut
	case inventory.StatusLow:
		return invScoreLow
	}
	ratio := item.FillRatio()
	switch {
	case ratio > 0.8:
		return invScoreHigh
	case ratio > 0.5:
		return invScoreMid
	default:
		return invScoreDefault
	}
}

// ScoreBreakdown computes all four sub-scores for a product in the given
// context. This is a total function: well-formed inputs cannot fail.
func ScoreBreakdown(p catalog.Product, slot daypart.TimeSlot, seasonID season.ID, item inventory.Item, hasItem bool) Breakdown {
	return Breakdown{
		Profit:    profitScore(p),
		TimeSlot:  timeSlotScore(p, slot),
		Season:    seasonScore(p, seasonID),
		Inventory: inventoryScore(item, hasItem),
	}
}

// TotalScore folds a breakdown with the given weights and rounds to one
// decimal, half away from zero. Linear in the weights; no normalization.
func TotalScore(b Breakdown, w Weights) float64 {
	total := b.Profit*w.Profit + b.TimeSlot*w.TimeSlot + b.Season*w.Season + b.Inventory*w.Inventory
	return math.Round(total*10) / 10
}

// Reason builds the advisory explanation string: threshold-gated tokens
// joined by " / ", with a generic fallback when nothing applies. Not used
// in sorting.
func Reason(b Breakdown, slot daypart.TimeSlot) string {
	var tokens []string
	if b.Profit >= reasonProfitThreshold {
		tokens = append(tokens, reasonHighProfit)
	}
	if b.TimeSlot >= reasonTimeSlotThreshold {
		tokens = append(tokens, slot.Theme)
	}
	if b.Inventory >= reasonInventoryThreshold {
		tokens = append(tokens, reasonWellStocked)
	}
	if len(tokens) == 0 {
		return reasonFallback
	}
	return strings.Join(tokens, " / ")
}
