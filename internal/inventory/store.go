// Panbord - Bakery Storefront Signage Demo
// Copyright 2026 Panbord Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/panbord/signage

package inventory

import (
	"sort"
	"time"
)

// DefaultOverstockRatio is the fill ratio at or above which stock counts
// as overstocked.
const DefaultOverstockRatio = 0.8

// Store is an immutable snapshot of stock records keyed by product code.
// Mutating operations return a new Store, sharing unchanged records.
type Store struct {
	items map[int]Item
	now   func() time.Time
}

// NewStore builds a snapshot from the given records. The now function
// stamps LastUpdated on mutations; nil means time.Now.
func NewStore(items map[int]Item, now func() time.Time) Store {
	if now == nil {
		now = time.Now
	}
	copied := make(map[int]Item, len(items))
	for code, it := range items {
		copied[code] = it
	}
	return Store{items: copied, now: now}
}

// Len returns the number of stock records.
func (s Store) Len() int {
	return len(s.items)
}

// Item returns the stock record for a product code.
func (s Store) Item(code int) (Item, bool) {
	it, ok := s.items[code]
	return it, ok
}

// Items returns all records sorted by product code.
func (s Store) Items() []Item {
	out := make([]Item, 0, len(s.items))
	for _, it := range s.items {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ProductCode < out[j].ProductCode
	})
	return out
}

// withItem returns a new snapshot with one record replaced.
func (s Store) withItem(it Item) Store {
	items := make(map[int]Item, len(s.items))
	for code, existing := range s.items {
		items[code] = existing
	}
	items[it.ProductCode] = it
	return Store{items: items, now: s.now}
}

// SetQuantity returns a snapshot with the product's quantity set, clamped
// into [0, MaxQuantity]. Status is recomputed and the record timestamped.
// An unknown code returns the store unchanged: clamping, not rejection, is
// the policy for all inputs.
func (s Store) SetQuantity(code, quantity int) Store {
	it, ok := s.items[code]
	if !ok {
		return s
	}
	if quantity < 0 {
		quantity = 0
	}
	if quantity > it.MaxQuantity {
		quantity = it.MaxQuantity
	}
	it.Quantity = quantity
	it.Status = StatusForQuantity(quantity)
	it.LastUpdated = s.now()
	return s.withItem(it)
}

// Sell returns a snapshot with one unit sold. Selling from an empty or
// unknown record returns the store unchanged; stock never goes negative.
func (s Store) Sell(code int) Store {
	it, ok := s.items[code]
	if !ok || it.Quantity <= 0 {
		return s
	}
	return s.SetQuantity(code, it.Quantity-1)
}

// Restock returns a snapshot with the given amount added, clamped to the
// record's capacity. Negative amounts drain stock, clamped at zero.
func (s Store) Restock(code, amount int) Store {
	it, ok := s.items[code]
	if !ok {
		return s
	}
	return s.SetQuantity(code, it.Quantity+amount)
}

// Summarize counts records per status. Total always equals the number of
// seeded records, which matches the catalog cardinality.
func (s Store) Summarize() Summary {
	sum := Summary{Total: len(s.items)}
	for _, it := range s.items {
		switch it.Status {
		case StatusAvailable:
			sum.Available++
		case StatusLow:
			sum.Low++
		case StatusOut:
			sum.Out++
		}
	}
	return sum
}

// LowStock returns low-status records sorted ascending by quantity.
func (s Store) LowStock() []Item {
	var out []Item
	for _, it := range s.items {
		if it.Status == StatusLow {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Quantity != out[j].Quantity {
			return out[i].Quantity < out[j].Quantity
		}
		return out[i].ProductCode < out[j].ProductCode
	})
	return out
}

// OutOfStock returns out-status records sorted by product code.
func (s Store) OutOfStock() []Item {
	var out []Item
	for _, it := range s.items {
		if it.Status == StatusOut {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ProductCode < out[j].ProductCode
	})
	return out
}

// Overstocked returns records with fill ratio >= ratio, sorted descending
// by fill ratio. A non-positive ratio uses DefaultOverstockRatio.
func (s Store) Overstocked(ratio float64) []Item {
	if ratio <= 0 {
		ratio = DefaultOverstockRatio
	}
	var out []Item
	for _, it := range s.items {
		if it.FillRatio() >= ratio {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		ri, rj := out[i].FillRatio(), out[j].FillRatio()
		if ri != rj {
			return ri > rj
		}
		return out[i].ProductCode < out[j].ProductCode
	})
	return out
}
