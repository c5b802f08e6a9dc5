// Panbord - Bakery Storefront Signage Demo
// Copyright 2026 Panbord Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/panbord/signage

package inventory

import (
	"math/rand"
	"time"

	"github.com/panbord/signage/internal/catalog"
)

// demoSeed fixes the opening stock picture: a few hero products with deep
// stock, some running low, and one sold out, so every status shows up on
// the signage from the first render.
var demoSeed = map[int]struct{ qty, max int }{
	// Hero products, well stocked.
	106020: {15, 20}, // Silk Milk Loaf
	103010: {18, 25}, // Pizza Slice
	106060: {12, 15}, // Hotel Bread
	105040: {10, 15}, // Jam Butter Sandwich

	// Running low.
	101070: {3, 15}, // Cornet
	107110: {2, 10}, // Batard
	108090: {4, 15}, // Mille-Feuille

	// Sold out.
	102020: {0, 20}, // Jumbo Donut

	// Mid-range fills.
	102010: {12, 20},
	101020: {8, 15},
	104010: {14, 20},
	102100: {7, 15},
	106010: {6, 10},
	105050: {9, 15},
	107021: {5, 12},
	101031: {11, 15},
	108017: {13, 18},
	101080: {16, 20},
}

// fallback quantity range for products outside the demo seed table.
const (
	fallbackMin = 5
	fallbackMax = 15
)

// Seed builds the opening store with exactly one record per catalog
// product. Products in the demo seed table get its quantity/max pair;
// the rest draw a pseudo-random quantity in [fallbackMin, fallbackMax)
// with capacity fallbackMax. A seeded rng keeps runs reproducible.
func Seed(cat *catalog.Catalog, rng *rand.Rand, now func() time.Time) Store {
	if now == nil {
		now = time.Now
	}
	items := make(map[int]Item, cat.Len())
	ts := now()
	for _, p := range cat.Products() {
		qty, maxQty := fallbackMin, fallbackMax
		if seed, ok := demoSeed[p.Code]; ok {
			qty, maxQty = seed.qty, seed.max
		} else if rng != nil {
			qty = fallbackMin + rng.Intn(fallbackMax-fallbackMin)
		}
		items[p.Code] = Item{
			ProductCode: p.Code,
			Quantity:    qty,
			MaxQuantity: maxQty,
			Status:      StatusForQuantity(qty),
			LastUpdated: ts,
		}
	}
	return Store{items: items, now: now}
}
