// Panbord - Bakery Storefront Signage Demo
// Copyright 2026 Panbord Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/panbord/signage

// Package crosssell suggests companion products from a static table of
// observed co-purchase pairs.
//
// The pair table is seeded from historical register data and embedded at
// build time. Like the catalog it is read-only reference data: lookups
// and re-scoring never mutate it.
package crosssell

import (
	_ "embed"
	"fmt"
	"sort"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/panbord/signage/internal/catalog"
)

//go:embed pairs.json
var pairsJSON []byte

// DefaultCompanionMargin stands in for the companion's profit margin when
// the catalog has no record for it.
const DefaultCompanionMargin = 50.0

// Margin cutoffs for improvement scanning. A pair member under the low
// cutoff is worth substituting; a candidate replacement must clear the
// high floor.
const (
	lowMarginCutoff        = 60.0
	replacementMarginFloor = 70.0
)

// Pair is an unordered co-purchase association between two products.
type Pair struct {
	// CodeA and CodeB identify the two products. The order carries no
	// meaning beyond how the register data was recorded.
	CodeA int `json:"code_a"`
	CodeB int `json:"code_b"`

	// CoPurchaseCount is the observed number of baskets containing both.
	CoPurchaseCount int `json:"co_purchase_count"`

	// Suggestion is the display copy shown when the pair is surfaced.
	Suggestion string `json:"suggestion"`
}

// Involves reports whether the pair contains the given product code.
func (p Pair) Involves(code int) bool {
	return p.CodeA == code || p.CodeB == code
}

// CompanionOf returns the other member of the pair relative to code.
// The result is undefined when the pair does not involve code.
func (p Pair) CompanionOf(code int) int {
	if p.CodeA == code {
		return p.CodeB
	}
	return p.CodeA
}

// Improvement records a substitution opportunity: a pair member with a
// weak margin plus a same-tag catalog product with a materially better one.
type Improvement struct {
	Pair              Pair    `json:"pair"`
	CurrentCode       int     `json:"current_code"`
	CurrentMargin     float64 `json:"current_margin"`
	SuggestedCode     int     `json:"suggested_code"`
	SuggestedMargin   float64 `json:"suggested_margin"`
	MarginImprovement float64 `json:"margin_improvement"`
}

// Node is a product vertex in the co-purchase network.
type Node struct {
	Code         int     `json:"code"`
	Name         string  `json:"name"`
	Revenue      int     `json:"revenue"`
	ProfitMargin float64 `json:"profit_margin"`
}

// Edge is a weighted co-purchase link between two products.
type Edge struct {
	Source int `json:"source"`
	Target int `json:"target"`
	Weight int `json:"weight"`
}

// NetworkData is the co-purchase graph in a shape the signage view can
// feed straight into a network visualization.
type NetworkData struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Advisor answers companion-product queries against the pair table.
type Advisor struct {
	pairs   []Pair
	catalog *catalog.Catalog
	logger  zerolog.Logger
}

// NewAdvisor loads the embedded pair table and binds it to the catalog
// used for margin and tag lookups.
func NewAdvisor(cat *catalog.Catalog, logger zerolog.Logger) (*Advisor, error) {
	pairs, err := loadPairs(pairsJSON)
	if err != nil {
		return nil, err
	}
	return &Advisor{
		pairs:   pairs,
		catalog: cat,
		logger:  logger.With().Str("component", "crosssell").Logger(),
	}, nil
}

// MustNewAdvisor is NewAdvisor but panics on failure. Intended for process
// start, where a broken embedded asset cannot be recovered from.
func MustNewAdvisor(cat *catalog.Catalog, logger zerolog.Logger) *Advisor {
	a, err := NewAdvisor(cat, logger)
	if err != nil {
		panic(fmt.Sprintf("crosssell: embedded pair data is invalid: %v", err))
	}
	return a
}

func loadPairs(data []byte) ([]Pair, error) {
	var pairs []Pair
	if err := json.Unmarshal(data, &pairs); err != nil {
		return nil, fmt.Errorf("decode pairs: %w", err)
	}
	if len(pairs) == 0 {
		return nil, fmt.Errorf("pair data is empty")
	}
	for i, p := range pairs {
		if p.CodeA == p.CodeB {
			return nil, fmt.Errorf("pair %d links product %d to itself", i, p.CodeA)
		}
		if p.CoPurchaseCount <= 0 {
			return nil, fmt.Errorf("pair %d (%d,%d) has non-positive count %d",
				i, p.CodeA, p.CodeB, p.CoPurchaseCount)
		}
	}
	return pairs, nil
}

// Pairs returns every pair in table order.
// The returned slice is a copy and safe to reorder.
func (a *Advisor) Pairs() []Pair {
	out := make([]Pair, len(a.pairs))
	copy(out, a.pairs)
	return out
}

// SuggestionsFor returns every pair involving the given product, sorted
// descending by co-purchase count. Products outside the table yield an
// empty slice, not an error: most of the catalog has no pair history.
func (a *Advisor) SuggestionsFor(code int) []Pair {
	var out []Pair
	for _, p := range a.pairs {
		if p.Involves(code) {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CoPurchaseCount > out[j].CoPurchaseCount
	})
	return out
}

// Best picks the single most valuable companion for the given product,
// weighing raw co-purchase frequency by the companion's profitability:
//
//	score = coPurchaseCount * (1 + companionMargin/100)
//
// Companions missing from the catalog count with DefaultCompanionMargin.
// The second return is false when the product has no recorded pairs.
func (a *Advisor) Best(code int) (Pair, bool) {
	suggestions := a.SuggestionsFor(code)
	if len(suggestions) == 0 {
		return Pair{}, false
	}

	best := suggestions[0]
	bestScore := a.pairScore(best, code)
	for _, p := range suggestions[1:] {
		if s := a.pairScore(p, code); s > bestScore {
			best, bestScore = p, s
		}
	}

	a.logger.Debug().
		Int("product", code).
		Int("companion", best.CompanionOf(code)).
		Float64("score", bestScore).
		Msg("selected cross-sell companion")

	return best, true
}

func (a *Advisor) pairScore(p Pair, code int) float64 {
	margin, ok := a.catalog.MarginOf(p.CompanionOf(code))
	if !ok {
		margin = DefaultCompanionMargin
	}
	return float64(p.CoPurchaseCount) * (1 + margin/100)
}

// Improvements scans the pair table for members with weak margins and
// proposes a same-tag substitute with a materially better one, sorted
// descending by the margin delta.
//
// The scan is O(pairs * catalog). Both sides are tens of entries, so a
// tag index would be overkill here.
func (a *Advisor) Improvements() []Improvement {
	var out []Improvement
	for _, pair := range a.pairs {
		for _, code := range []int{pair.CodeA, pair.CodeB} {
			p, ok := a.catalog.ByCode(code)
			if !ok || p.ProfitMargin >= lowMarginCutoff {
				continue
			}
			alt, ok := a.findReplacement(p)
			if !ok {
				continue
			}
			out = append(out, Improvement{
				Pair:              pair,
				CurrentCode:       p.Code,
				CurrentMargin:     p.ProfitMargin,
				SuggestedCode:     alt.Code,
				SuggestedMargin:   alt.ProfitMargin,
				MarginImprovement: alt.ProfitMargin - p.ProfitMargin,
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MarginImprovement > out[j].MarginImprovement
	})
	return out
}

// findReplacement returns the first catalog product clearing the margin
// floor that shares a tag with p.
func (a *Advisor) findReplacement(p catalog.Product) (catalog.Product, bool) {
	for _, cand := range a.catalog.Products() {
		if cand.Code == p.Code || cand.ProfitMargin < replacementMarginFloor {
			continue
		}
		if cand.HasAnyTag(p.Tags) {
			return cand, true
		}
	}
	return catalog.Product{}, false
}

// NetworkData flattens the pair table into a node/edge graph. Nodes carry
// a synthetic revenue figure (price x 1000) for sizing in the demo view.
func (a *Advisor) NetworkData() NetworkData {
	seen := make(map[int]struct{})
	var nodes []Node
	addNode := func(code int) {
		if _, dup := seen[code]; dup {
			return
		}
		seen[code] = struct{}{}
		p, ok := a.catalog.ByCode(code)
		if !ok {
			return
		}
		nodes = append(nodes, Node{
			Code:         p.Code,
			Name:         p.Name,
			Revenue:      p.Price * 1000,
			ProfitMargin: p.ProfitMargin,
		})
	}

	edges := make([]Edge, 0, len(a.pairs))
	for _, p := range a.pairs {
		addNode(p.CodeA)
		addNode(p.CodeB)
		edges = append(edges, Edge{Source: p.CodeA, Target: p.CodeB, Weight: p.CoPurchaseCount})
	}

	return NetworkData{Nodes: nodes, Edges: edges}
}
