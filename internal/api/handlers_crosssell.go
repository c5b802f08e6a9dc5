// Panbord - Bakery Storefront Signage Demo
// Copyright 2026 Panbord Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/panbord/signage

package api

import (
	"net/http"

	"github.com/panbord/signage/internal/catalog"
	"github.com/panbord/signage/internal/crosssell"
)

// CrossSellResponse is the body of GET /api/v1/crosssell/{code}.
type CrossSellResponse struct {
	Product catalog.Product  `json:"product"`
	Pairs   []crosssell.Pair `json:"pairs"`
}

// BestCrossSellResponse is the body of GET /api/v1/crosssell/{code}/best.
type BestCrossSellResponse struct {
	Pair      crosssell.Pair   `json:"pair"`
	Companion *catalog.Product `json:"companion,omitempty"`
}

// CrossSell lists co-purchase pairs involving a product, strongest first.
func (h *Handler) CrossSell(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	code, err := productCode(r)
	if err != nil {
		rw.BadRequest("product code must be an integer")
		return
	}
	product, ok := h.catalog.ByCode(code)
	if !ok {
		rw.NotFound("unknown product code")
		return
	}
	rw.Success(CrossSellResponse{
		Product: product,
		Pairs:   h.advisor.SuggestionsFor(code),
	})
}

// BestCrossSell returns the margin-weighted best pair for a product.
func (h *Handler) BestCrossSell(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	code, err := productCode(r)
	if err != nil {
		rw.BadRequest("product code must be an integer")
		return
	}
	if _, ok := h.catalog.ByCode(code); !ok {
		rw.NotFound("unknown product code")
		return
	}
	pair, ok := h.advisor.Best(code)
	if !ok {
		rw.NotFound("no co-purchase data for product")
		return
	}

	resp := BestCrossSellResponse{Pair: pair}
	if companion, ok := h.catalog.ByCode(pair.CompanionOf(code)); ok {
		resp.Companion = &companion
	}
	rw.Success(resp)
}

// CrossSellImprovements lists low-margin pairs with suggested higher-margin
// replacements.
func (h *Handler) CrossSellImprovements(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	rw.Success(h.advisor.Improvements())
}

// CrossSellNetwork returns the co-purchase graph for visualization.
func (h *Handler) CrossSellNetwork(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	rw.Success(h.advisor.NetworkData())
}
