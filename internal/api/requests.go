// Panbord - Bakery Storefront Signage Demo
// Copyright 2026 Panbord Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/panbord/signage

package api

// LoginRequest is the body of POST /api/v1/auth/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required,min=1"`
	Password string `json:"password" validate:"required,min=1"`
}

// QuantityRequest is the body of PUT /api/v1/inventory/{code}/quantity.
type QuantityRequest struct {
	Quantity int `json:"quantity" validate:"min=0,max=999"`
}

// RestockRequest is the body of POST /api/v1/inventory/{code}/restock.
type RestockRequest struct {
	Amount int `json:"amount" validate:"min=1,max=999"`
}

// HourRequest is the body of PUT /api/v1/demo/hour. A null hour clears the
// override and returns the screen to wall-clock time.
type HourRequest struct {
	Hour *int `json:"hour" validate:"omitempty,min=0,max=23"`
}

// SeasonRequest is the body of PUT /api/v1/demo/season. An empty season
// clears the override.
type SeasonRequest struct {
	Season string `json:"season" validate:"omitempty,oneof=spring summer autumn winter"`
}

// WeightsRequest is the body of PUT /api/v1/demo/weights. Coefficients are
// capped at 1 here even though the engine accepts any non-negative value;
// the sliders on the control panel only go to 1.
type WeightsRequest struct {
	Profit    float64 `json:"profit" validate:"gte=0,lte=1"`
	TimeSlot  float64 `json:"time_slot" validate:"gte=0,lte=1"`
	Season    float64 `json:"season" validate:"gte=0,lte=1"`
	Inventory float64 `json:"inventory" validate:"gte=0,lte=1"`
}

// RecommendationsQuery is the validated query of GET /api/v1/recommendations.
type RecommendationsQuery struct {
	Limit int `validate:"min=0,max=50"`
}
