// Panbord - Bakery Storefront Signage Demo
// Copyright 2026 Panbord Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/panbord/signage

// Package catalog holds the immutable product master data.
//
// The catalog is loaded once at process start from an embedded JSON asset
// and never mutated afterwards. Everything downstream (inventory seeding,
// scoring, cross-sell lookups) treats it as read-only reference data.
package catalog

import (
	_ "embed"
	"fmt"
	"sort"

	"github.com/goccy/go-json"
)

//go:embed products.json
var productsJSON []byte

// Product is a single catalog entry. Defined at load, never mutated.
type Product struct {
	// Code is the unique numeric product identifier (POS code).
	Code int `json:"code"`

	// Name is the display name.
	Name string `json:"name"`

	// Department is the in-store department label.
	Department string `json:"department"`

	// Price is the sale price in yen.
	Price int `json:"price"`

	// Cost is the unit cost in yen.
	Cost int `json:"cost"`

	// ProfitMargin is the authored margin percentage,
	// (price-cost)/price*100, expected in [0,100].
	ProfitMargin float64 `json:"profit_margin"`

	// Tags are short descriptive labels used for contextual matching.
	Tags []string `json:"tags"`

	// Description is optional display copy.
	Description string `json:"description,omitempty"`

	// Emoji is an optional display placeholder asset.
	Emoji string `json:"emoji,omitempty"`
}

// HasTag reports whether the product carries the given tag.
func (p Product) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// HasAnyTag reports whether the product carries at least one of the given tags.
func (p Product) HasAnyTag(tags []string) bool {
	for _, t := range tags {
		if p.HasTag(t) {
			return true
		}
	}
	return false
}

// Catalog is an immutable product list with lookup helpers.
type Catalog struct {
	products []Product
	byCode   map[int]Product
}

// Load decodes the embedded product master. A malformed asset is a build
// defect, so the error path exists only for tests feeding custom data.
func Load() (*Catalog, error) {
	return loadFrom(productsJSON)
}

// MustLoad is Load but panics on failure. Intended for process start,
// where a broken embedded asset cannot be recovered from.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded product data is invalid: %v", err))
	}
	return c
}

func loadFrom(data []byte) (*Catalog, error) {
	var products []Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	if len(products) == 0 {
		return nil, fmt.Errorf("product data is empty")
	}

	byCode := make(map[int]Product, len(products))
	for _, p := range products {
		if _, dup := byCode[p.Code]; dup {
			return nil, fmt.Errorf("duplicate product code %d", p.Code)
		}
		byCode[p.Code] = p
	}

	return &Catalog{products: products, byCode: byCode}, nil
}

// Products returns all products in catalog order.
// The returned slice is shared; callers must not mutate it.
func (c *Catalog) Products() []Product {
	return c.products
}

// Len returns the number of catalog products.
func (c *Catalog) Len() int {
	return len(c.products)
}

// ByCode looks up a product by its code.
func (c *Catalog) ByCode(code int) (Product, bool) {
	p, ok := c.byCode[code]
	return p, ok
}

// MarginOf returns the profit margin for a product code.
func (c *Catalog) MarginOf(code int) (float64, bool) {
	p, ok := c.byCode[code]
	if !ok {
		return 0, false
	}
	return p.ProfitMargin, true
}

// ByTags returns products carrying at least one of the given tags,
// in catalog order.
func (c *Catalog) ByTags(tags []string) []Product {
	var out []Product
	for _, p := range c.products {
		if p.HasAnyTag(tags) {
			out = append(out, p)
		}
	}
	return out
}

// ByDepartment returns products in the given department, in catalog order.
func (c *Catalog) ByDepartment(department string) []Product {
	var out []Product
	for _, p := range c.products {
		if p.Department == department {
			out = append(out, p)
		}
	}
	return out
}

// ByMinMargin returns products with at least the given profit margin,
// sorted descending by margin. Ties keep catalog order.
func (c *Catalog) ByMinMargin(minMargin float64) []Product {
	var out []Product
	for _, p := range c.products {
		if p.ProfitMargin >= minMargin {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ProfitMargin > out[j].ProfitMargin
	})
	return out
}

// HighProfitThreshold is the margin above which a product counts as
// high-profit for merchandising purposes.
const HighProfitThreshold = 70.0

// HighProfit returns products with margin >= HighProfitThreshold,
// in catalog order.
func (c *Catalog) HighProfit() []Product {
	var out []Product
	for _, p := range c.products {
		if p.ProfitMargin >= HighProfitThreshold {
			out = append(out, p)
		}
	}
	return out
}

// Departments returns the distinct department labels in first-seen order.
func (c *Catalog) Departments() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range c.products {
		if _, ok := seen[p.Department]; ok {
			continue
		}
		seen[p.Department] = struct{}{}
		out = append(out, p.Department)
	}
	return out
}

// AllTags returns the distinct tags across the catalog in first-seen order.
func (c *Catalog) AllTags() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range c.products {
		for _, t := range p.Tags {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	return out
}
