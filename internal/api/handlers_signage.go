// Panbord - Bakery Storefront Signage Demo
// Copyright 2026 Panbord Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/panbord/signage

package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/panbord/signage/internal/daypart"
	"github.com/panbord/signage/internal/metrics"
	"github.com/panbord/signage/internal/recommend"
	"github.com/panbord/signage/internal/season"
)

// Signage returns the full display snapshot the screen renders.
func (h *Handler) Signage(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	rw.Success(h.buildDisplay())
}

// RecommendationsResponse is the body of GET /api/v1/recommendations.
type RecommendationsResponse struct {
	Hour            int                        `json:"hour"`
	TimeSlot        daypart.TimeSlot           `json:"time_slot"`
	Season          season.Season              `json:"season"`
	Weights         recommend.Weights          `json:"weights"`
	Recommendations []recommend.Recommendation `json:"recommendations"`
}

// Recommendations returns the ranked list for the current demo state. An
// optional limit query caps the list length; exclude drops product codes
// from the ranking.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		rw.BadRequest("limit must be an integer")
		return
	}
	query := RecommendationsQuery{Limit: limit}
	if apiErr := validateRequest(&query); apiErr != nil {
		rw.ErrorWithDetails(http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
		return
	}
	exclude, err := queryCodes(r, "exclude")
	if err != nil {
		rw.BadRequest("exclude must be comma-separated product codes")
		return
	}

	now := h.now()
	settings, store := h.ctrl.State()
	hour := settings.EffectiveHour(now)
	seasonID := settings.EffectiveSeason(now)
	slot := daypart.ForHour(hour)

	ranked := h.engine.Rank(slot, seasonID, store, settings.Weights, query.Limit, exclude...)
	metrics.RecordRecommendations(slot.ID.String(), seasonID.String(), len(ranked))

	rw.Success(RecommendationsResponse{
		Hour:            hour,
		TimeSlot:        slot,
		Season:          season.ByID(seasonID),
		Weights:         settings.Weights,
		Recommendations: ranked,
	})
}

// queryCodes parses a comma-separated product-code query parameter.
func queryCodes(r *http.Request, key string) ([]int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	codes := make([]int, 0, len(parts))
	for _, part := range parts {
		code, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}
	return codes, nil
}
