// Panbord - Bakery Storefront Signage Demo
// Copyright 2026 Panbord Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/panbord/signage

package catalog

import (
	"math"
	"testing"
)

func TestLoadEmbeddedCatalog(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if c.Len() != 34 {
		t.Errorf("Len() = %d, want 34", c.Len())
	}
	if len(c.Products()) != c.Len() {
		t.Errorf("Products() length %d != Len() %d", len(c.Products()), c.Len())
	}
}

func TestLoadRejectsBadData(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed json", `{`},
		{"empty list", `[]`},
		{"duplicate code", `[{"code":1,"name":"a"},{"code":1,"name":"b"}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := loadFrom([]byte(tt.data)); err == nil {
				t.Error("loadFrom() accepted invalid data")
			}
		})
	}
}

func TestByCode(t *testing.T) {
	c := MustLoad()

	p, ok := c.ByCode(103010)
	if !ok {
		t.Fatal("ByCode(103010) not found")
	}
	if p.Name != "Pizza Slice" {
		t.Errorf("ByCode(103010).Name = %q, want %q", p.Name, "Pizza Slice")
	}
	if p.Department != "Prepared" {
		t.Errorf("ByCode(103010).Department = %q, want %q", p.Department, "Prepared")
	}

	if _, ok := c.ByCode(999999); ok {
		t.Error("ByCode(999999) found a product that should not exist")
	}
}

func TestMarginsAreAuthoredConsistently(t *testing.T) {
	c := MustLoad()
	for _, p := range c.Products() {
		if p.ProfitMargin < 0 || p.ProfitMargin > 100 {
			t.Errorf("product %d margin %.1f outside [0,100]", p.Code, p.ProfitMargin)
		}
		derived := float64(p.Price-p.Cost) / float64(p.Price) * 100
		if math.Abs(derived-p.ProfitMargin) > 0.1 {
			t.Errorf("product %d authored margin %.1f != derived %.1f", p.Code, p.ProfitMargin, derived)
		}
	}
}

func TestByTags(t *testing.T) {
	c := MustLoad()

	donuts := c.ByTags([]string{"donut"})
	if len(donuts) == 0 {
		t.Fatal("ByTags(donut) returned nothing")
	}
	for _, p := range donuts {
		if !p.HasTag("donut") {
			t.Errorf("product %d returned without the requested tag", p.Code)
		}
	}

	if got := c.ByTags([]string{"no-such-tag"}); len(got) != 0 {
		t.Errorf("ByTags(no-such-tag) = %d products, want 0", len(got))
	}
}

func TestByMinMarginSorted(t *testing.T) {
	c := MustLoad()
	ranked := c.ByMinMargin(60)
	if len(ranked) == 0 {
		t.Fatal("ByMinMargin(60) returned nothing")
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].ProfitMargin > ranked[i-1].ProfitMargin {
			t.Errorf("ByMinMargin not sorted desc at %d: %.1f > %.1f",
				i, ranked[i].ProfitMargin, ranked[i-1].ProfitMargin)
		}
	}
	for _, p := range ranked {
		if p.ProfitMargin < 60 {
			t.Errorf("product %d margin %.1f below requested minimum", p.Code, p.ProfitMargin)
		}
	}
}

func TestHighProfit(t *testing.T) {
	c := MustLoad()
	for _, p := range c.HighProfit() {
		if p.ProfitMargin < HighProfitThreshold {
			t.Errorf("product %d margin %.1f below threshold %.1f", p.Code, p.ProfitMargin, HighProfitThreshold)
		}
	}
}

func TestDepartmentsAndTagsDistinct(t *testing.T) {
	c := MustLoad()

	depts := c.Departments()
	seen := make(map[string]bool)
	for _, d := range depts {
		if seen[d] {
			t.Errorf("duplicate department %q", d)
		}
		seen[d] = true
	}
	if len(depts) != 8 {
		t.Errorf("Departments() = %d entries, want 8", len(depts))
	}

	tags := c.AllTags()
	seenTag := make(map[string]bool)
	for _, tag := range tags {
		if seenTag[tag] {
			t.Errorf("duplicate tag %q", tag)
		}
		seenTag[tag] = true
	}
}
