// Panbord - Bakery Storefront Signage Demo
// Copyright 2026 Panbord Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/panbord/signage

package recommend

import "fmt"

// Weights are the four scoring coefficients. All must be non-negative.
// There is no sum-to-1 requirement: the engine scales totals by whatever
// the caller supplies, and the presentation layer surfaces a warning when
// the sum drifts from 1.
type Weights struct {
	// Profit weighs the product's margin.
	Profit float64 `json:"profit" koanf:"profit"`

	// TimeSlot weighs the fit with the active time slot's theme.
	TimeSlot float64 `json:"time_slot" koanf:"time_slot"`

	// Season weighs the fit with the active season's theme.
	Season float64 `json:"season" koanf:"season"`

	// Inventory weighs stock health.
	Inventory float64 `json:"inventory" koanf:"inventory"`
}

// DefaultWeights returns the standard weighting: profit-led with
// decreasing contextual emphasis.
func DefaultWeights() Weights {
	return Weights{Profit: 0.4, TimeSlot: 0.3, Season: 0.2, Inventory: 0.1}
}

// Sum returns the total of all coefficients. Callers that expect a
// weighted average should check Sum() ≈ 1.
func (w Weights) Sum() float64 {
	return w.Profit + w.TimeSlot + w.Season + w.Inventory
}

// Validate rejects negative coefficients. Any non-negative combination is
// accepted, including all-zero.
func (w Weights) Validate() error {
	if w.Profit < 0 || w.TimeSlot < 0 || w.Season < 0 || w.Inventory < 0 {
		return fmt.Errorf("weights must be non-negative, got %+v", w)
	}
	return nil
}
