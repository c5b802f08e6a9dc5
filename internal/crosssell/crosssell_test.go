// Panbord - Bakery Storefront Signage Demo
// Copyright 2026 Panbord Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/panbord/signage

package crosssell

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/panbord/signage/internal/catalog"
)

func testAdvisor(t *testing.T) *Advisor {
	t.Helper()
	a, err := NewAdvisor(catalog.MustLoad(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewAdvisor: %v", err)
	}
	return a
}

func TestEmbeddedPairTable(t *testing.T) {
	a := testAdvisor(t)
	if got := len(a.Pairs()); got != 16 {
		t.Errorf("pair count = %d, want 16", got)
	}
}

func TestLoadPairsRejectsBadData(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", "nope"},
		{"empty table", "[]"},
		{"self pair", `[{"code_a":1,"code_b":1,"co_purchase_count":5,"suggestion":"x"}]`},
		{"zero count", `[{"code_a":1,"code_b":2,"co_purchase_count":0,"suggestion":"x"}]`},
		{"negative count", `[{"code_a":1,"code_b":2,"co_purchase_count":-3,"suggestion":"x"}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := loadPairs([]byte(tt.data)); err == nil {
				t.Error("loadPairs accepted bad data")
			}
		})
	}
}

func TestSuggestionsForSortedByCount(t *testing.T) {
	a := testAdvisor(t)

	// Pizza Slice appears on both sides of the table.
	got := a.SuggestionsFor(103010)
	wantCounts := []int{8766, 8210, 8004, 6987, 6763, 6286}
	if len(got) != len(wantCounts) {
		t.Fatalf("len = %d, want %d", len(got), len(wantCounts))
	}
	for i, p := range got {
		if !p.Involves(103010) {
			t.Errorf("pair %d does not involve 103010: %+v", i, p)
		}
		if p.CoPurchaseCount != wantCounts[i] {
			t.Errorf("count[%d] = %d, want %d", i, p.CoPurchaseCount, wantCounts[i])
		}
	}
}

func TestSuggestionsForUnknownProduct(t *testing.T) {
	a := testAdvisor(t)
	if got := a.SuggestionsFor(999999); len(got) != 0 {
		t.Errorf("got %d suggestions for unknown product", len(got))
	}
}

func TestCompanionOf(t *testing.T) {
	p := Pair{CodeA: 103010, CodeB: 102020}
	if got := p.CompanionOf(103010); got != 102020 {
		t.Errorf("CompanionOf(103010) = %d, want 102020", got)
	}
	if got := p.CompanionOf(102020); got != 103010 {
		t.Errorf("CompanionOf(102020) = %d, want 103010", got)
	}
}

func TestBestWeighsCompanionMargin(t *testing.T) {
	// A lower co-purchase count wins when the companion's margin is
	// enough to tip the frequency score: 80 * 1.9 = 152 beats both
	// 100 * 1.507 and 101 * 1.5 (unknown companion, default margin).
	a := testAdvisor(t)
	a.pairs = []Pair{
		{CodeA: 9999, CodeB: 102010, CoPurchaseCount: 100, Suggestion: "frequent"},
		{CodeA: 9999, CodeB: 105040, CoPurchaseCount: 80, Suggestion: "profitable"},
		{CodeA: 9999, CodeB: 55555, CoPurchaseCount: 101, Suggestion: "uncatalogued"},
	}

	best, ok := a.Best(9999)
	if !ok {
		t.Fatal("Best returned no pair")
	}
	if best.CodeB != 105040 {
		t.Errorf("best companion = %d, want 105040", best.CodeB)
	}
}

func TestBestOnEmbeddedData(t *testing.T) {
	a := testAdvisor(t)
	best, ok := a.Best(103010)
	if !ok {
		t.Fatal("Best returned no pair for 103010")
	}
	// Jumbo Donut leads on both count and margin here.
	if best.CompanionOf(103010) != 102020 {
		t.Errorf("companion = %d, want 102020", best.CompanionOf(103010))
	}
}

func TestBestNoPairs(t *testing.T) {
	a := testAdvisor(t)
	if _, ok := a.Best(999999); ok {
		t.Error("Best found a pair for a product with no history")
	}
}

func TestImprovements(t *testing.T) {
	a := testAdvisor(t)
	cat := a.catalog

	imps := a.Improvements()
	if len(imps) == 0 {
		t.Fatal("no improvement opportunities found")
	}
	for i, imp := range imps {
		if imp.CurrentMargin >= lowMarginCutoff {
			t.Errorf("imp %d: current margin %v not under cutoff", i, imp.CurrentMargin)
		}
		if imp.SuggestedMargin < replacementMarginFloor {
			t.Errorf("imp %d: suggested margin %v under floor", i, imp.SuggestedMargin)
		}
		if imp.SuggestedCode == imp.CurrentCode {
			t.Errorf("imp %d: suggests replacing a product with itself", i)
		}
		cur, _ := cat.ByCode(imp.CurrentCode)
		alt, _ := cat.ByCode(imp.SuggestedCode)
		if !alt.HasAnyTag(cur.Tags) {
			t.Errorf("imp %d: %d shares no tag with %d", i, imp.SuggestedCode, imp.CurrentCode)
		}
		want := imp.SuggestedMargin - imp.CurrentMargin
		if imp.MarginImprovement != want {
			t.Errorf("imp %d: delta = %v, want %v", i, imp.MarginImprovement, want)
		}
		if i > 0 && imps[i-1].MarginImprovement < imp.MarginImprovement {
			t.Errorf("improvements not sorted by delta at %d", i)
		}
	}
}

func TestNetworkData(t *testing.T) {
	a := testAdvisor(t)
	nd := a.NetworkData()

	if len(nd.Edges) != len(a.pairs) {
		t.Errorf("edge count = %d, want %d", len(nd.Edges), len(a.pairs))
	}
	if len(nd.Nodes) != 15 {
		t.Errorf("node count = %d, want 15", len(nd.Nodes))
	}

	seen := make(map[int]bool)
	for _, n := range nd.Nodes {
		if seen[n.Code] {
			t.Errorf("duplicate node %d", n.Code)
		}
		seen[n.Code] = true
		p, ok := a.catalog.ByCode(n.Code)
		if !ok {
			t.Errorf("node %d not in catalog", n.Code)
			continue
		}
		if n.Revenue != p.Price*1000 {
			t.Errorf("node %d revenue = %d, want %d", n.Code, n.Revenue, p.Price*1000)
		}
	}
	for i, e := range nd.Edges {
		if e.Weight != a.pairs[i].CoPurchaseCount {
			t.Errorf("edge %d weight = %d, want %d", i, e.Weight, a.pairs[i].CoPurchaseCount)
		}
	}
}
