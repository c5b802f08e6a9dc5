// Panbord - Bakery Storefront Signage Demo
// Copyright 2026 Panbord Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/panbord/signage

package api

import (
	"net/http"

	"github.com/panbord/signage/internal/inventory"
)

// InventoryResponse is the body of GET /api/v1/inventory.
type InventoryResponse struct {
	Items   []inventory.Item  `json:"items"`
	Summary inventory.Summary `json:"summary"`
}

// Inventory returns the shelf state of every product.
func (h *Handler) Inventory(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	store := h.ctrl.Store()
	rw.Success(InventoryResponse{
		Items:   store.Items(),
		Summary: store.Summarize(),
	})
}

// InventorySummary returns just the aggregate counts.
func (h *Handler) InventorySummary(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	rw.Success(h.ctrl.Store().Summarize())
}

// InventoryLow lists products at or below the low-stock threshold.
func (h *Handler) InventoryLow(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	rw.Success(h.ctrl.Store().LowStock())
}

// InventoryOut lists sold-out products.
func (h *Handler) InventoryOut(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	rw.Success(h.ctrl.Store().OutOfStock())
}

// InventoryOverstocked lists products whose fill ratio exceeds the given
// threshold (default 0.8).
func (h *Handler) InventoryOverstocked(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	ratio := 0.8
	if raw := r.URL.Query().Get("ratio"); raw != "" {
		parsed, err := queryFloat(raw)
		if err != nil || parsed <= 0 || parsed > 1 {
			rw.BadRequest("ratio must be a number in (0, 1]")
			return
		}
		ratio = parsed
	}
	rw.Success(h.ctrl.Store().Overstocked(ratio))
}

// SetQuantity pins a product's shelf quantity.
func (h *Handler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	code, ok := h.knownProductCode(rw, r)
	if !ok {
		return
	}
	var req QuantityRequest
	if err := decodeJSON(w, r, &req); err != nil {
		rw.BadRequest("invalid JSON body")
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		rw.ErrorWithDetails(http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
		return
	}

	h.ctrl.SetQuantity(code, req.Quantity)
	item, _ := h.ctrl.Store().Item(code)
	rw.Success(item)
}

// Sell simulates one purchase, decrementing the shelf by one.
func (h *Handler) Sell(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	code, ok := h.knownProductCode(rw, r)
	if !ok {
		return
	}
	item, hasItem := h.ctrl.Store().Item(code)
	if hasItem && item.Quantity == 0 {
		rw.Conflict("product is already sold out")
		return
	}

	h.ctrl.Sell(code)
	item, _ = h.ctrl.Store().Item(code)
	rw.Success(item)
}

// Restock adds stock to a product's shelf, clamped at its maximum.
func (h *Handler) Restock(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	code, ok := h.knownProductCode(rw, r)
	if !ok {
		return
	}
	var req RestockRequest
	if err := decodeJSON(w, r, &req); err != nil {
		rw.BadRequest("invalid JSON body")
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		rw.ErrorWithDetails(http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
		return
	}

	h.ctrl.Restock(code, req.Amount)
	item, _ := h.ctrl.Store().Item(code)
	rw.Success(item)
}

// ResetInventory reseeds every shelf to its opening quantities.
func (h *Handler) ResetInventory(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	h.ctrl.ResetInventory()
	store := h.ctrl.Store()
	rw.Success(InventoryResponse{
		Items:   store.Items(),
		Summary: store.Summarize(),
	})
}

// knownProductCode parses {code} and confirms the product exists.
func (h *Handler) knownProductCode(rw *ResponseWriter, r *http.Request) (int, bool) {
	code, err := productCode(r)
	if err != nil {
		rw.BadRequest("product code must be an integer")
		return 0, false
	}
	if _, ok := h.catalog.ByCode(code); !ok {
		rw.NotFound("unknown product code")
		return 0, false
	}
	return code, true
}
