// Panbord - Bakery Storefront Signage Demo
// Copyright 2026 Panbord Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/panbord/signage

package api

import (
	"net/http"
	"strings"

	"github.com/panbord/signage/internal/catalog"
)

// ProductsResponse is the body of GET /api/v1/products.
type ProductsResponse struct {
	Products    []catalog.Product `json:"products"`
	Total       int               `json:"total"`
	Departments []string          `json:"departments"`
}

// Products lists the catalog, optionally filtered by department, tag or
// minimum margin.
func (h *Handler) Products(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	products := h.catalog.Products()
	if dept := r.URL.Query().Get("department"); dept != "" {
		products = h.catalog.ByDepartment(dept)
	}
	if tags := r.URL.Query().Get("tags"); tags != "" {
		products = intersect(products, h.catalog.ByTags(strings.Split(tags, ",")))
	}

	rw.Success(ProductsResponse{
		Products:    products,
		Total:       len(products),
		Departments: h.catalog.Departments(),
	})
}

// Product returns one product by code.
func (h *Handler) Product(w http.ResponseWriter, r *http.Request) {
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
	rw.Success(product)
}

// intersect keeps the products of a that also appear in b, preserving
// catalog order.
func intersect(a, b []catalog.Product) []catalog.Product {
	codes := make(map[int]bool, len(b))
	for _, p := range b {
		codes[p.Code] = true
	}
	out := make([]catalog.Product, 0, len(a))
	for _, p := range a {
		if codes[p.Code] {
			out = append(out, p)
		}
	}
	return out
}
