// Panbord - Bakery Storefront Signage Demo
// Copyright 2026 Panbord Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/panbord/signage

// Package inventory tracks per-product stock for the signage demo.
//
// The store uses an immutable-update model: every mutation returns a new
// Store snapshot and callers replace their reference wholesale. There is a
// single logical writer, so the snapshots give sequential consistency
// without locks.
//
// Stock status is always derived from quantity on write, never stored
// independently, so it cannot drift:
//
//	quantity <= 0            -> StatusOut
//	0 < quantity <= 5        -> StatusLow
//	otherwise                -> StatusAvailable
//
// Mutations clamp rather than reject: out-of-range quantities are pulled
// into [0, max], and unknown product codes are no-ops.
package inventory

import "time"

// LowThreshold is the quantity at or below which stock counts as low.
const LowThreshold = 5

// Status classifies a stock level.
type Status int

const (
	// StatusAvailable means comfortable stock.
	StatusAvailable Status = iota
	// StatusLow means 1..LowThreshold units remain.
	StatusLow
	// StatusOut means no stock.
	StatusOut
)

// String returns a lowercase status name.
func (s Status) String() string {
	switch s {
	case StatusAvailable:
		return "available"
	case StatusLow:
		return "low"
	case StatusOut:
		return "out"
	default:
		return "unknown"
	}
}

// StatusForQuantity derives the status classification for a quantity.
func StatusForQuantity(quantity int) Status {
	switch {
	case quantity <= 0:
		return StatusOut
	case quantity <= LowThreshold:
		return StatusLow
	default:
		return StatusAvailable
	}
}

// Item is the stock record for one product.
type Item struct {
	// ProductCode references the catalog product.
	ProductCode int `json:"product_code"`

	// Quantity is the current stock, always in [0, MaxQuantity].
	Quantity int `json:"quantity"`

	// MaxQuantity is the shelf capacity, always > 0.
	MaxQuantity int `json:"max_quantity"`

	// Status is derived from Quantity on every write.
	Status Status `json:"status"`

	// LastUpdated is when the record last changed.
	LastUpdated time.Time `json:"last_updated"`
}

// FillRatio returns Quantity/MaxQuantity.
func (it Item) FillRatio() float64 {
	if it.MaxQuantity <= 0 {
		return 0
	}
	return float64(it.Quantity) / float64(it.MaxQuantity)
}

// Summary aggregates status counts across a store snapshot.
type Summary struct {
	Total     int `json:"total"`
	Available int `json:"available"`
	Low       int `json:"low"`
	Out       int `json:"out"`
}
