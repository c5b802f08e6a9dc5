// Panbord - Bakery Storefront Signage Demo
// Copyright 2026 Panbord Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/panbord/signage

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/panbord/signage/internal/demo"
	"github.com/panbord/signage/internal/recommend"
	"github.com/panbord/signage/internal/season"
)

// DemoSettings returns the current override state of the control panel.
func (h *Handler) DemoSettings(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	rw.Success(h.ctrl.Settings())
}

// SetHour pins or clears the simulated hour.
func (h *Handler) SetHour(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req HourRequest
	if err := decodeJSON(w, r, &req); err != nil {
		rw.BadRequest("invalid JSON body")
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		rw.ErrorWithDetails(http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
		return
	}
	if err := h.ctrl.SetSimulatedHour(req.Hour); err != nil {
		rw.BadRequest(err.Error())
		return
	}
	rw.Success(h.ctrl.Settings())
}

// SetSeason pins or clears the simulated season.
func (h *Handler) SetSeason(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req SeasonRequest
	if err := decodeJSON(w, r, &req); err != nil {
		rw.BadRequest("invalid JSON body")
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		rw.ErrorWithDetails(http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
		return
	}

	var id *season.ID
	if req.Season != "" {
		parsed, ok := season.Parse(req.Season)
		if !ok {
			rw.BadRequest("unknown season")
			return
		}
		id = &parsed
	}
	if err := h.ctrl.SetSimulatedSeason(id); err != nil {
		rw.BadRequest(err.Error())
		return
	}
	rw.Success(h.ctrl.Settings())
}

// SetWeights replaces the scoring coefficients.
func (h *Handler) SetWeights(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req WeightsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		rw.BadRequest("invalid JSON body")
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		rw.ErrorWithDetails(http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
		return
	}

	weights := recommend.Weights{
		Profit:    req.Profit,
		TimeSlot:  req.TimeSlot,
		Season:    req.Season,
		Inventory: req.Inventory,
	}
	if err := h.ctrl.SetWeights(weights); err != nil {
		rw.BadRequest(err.Error())
		return
	}
	rw.Success(h.ctrl.Settings())
}

// ResetWeights restores the default scoring coefficients.
func (h *Handler) ResetWeights(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	h.ctrl.ResetWeights()
	rw.Success(h.ctrl.Settings())
}

// StartScenario begins auto-playing the named scenario, replacing any
// scenario already running.
func (h *Handler) StartScenario(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	sc, err := demo.ParseScenario(chi.URLParam(r, "id"))
	if err != nil || sc == demo.ScenarioNone {
		rw.NotFound("unknown scenario")
		return
	}
	if err := h.player.Start(r.Context(), sc); err != nil {
		h.logger.Error().Err(err).Str("scenario", string(sc)).Msg("failed to start scenario")
		rw.InternalError("failed to start scenario")
		return
	}
	rw.Success(h.ctrl.Settings())
}

// StopScenario halts auto-play. Overrides applied by the scenario remain
// in place.
func (h *Handler) StopScenario(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if err := h.player.Stop(r.Context()); err != nil {
		h.logger.Error().Err(err).Msg("failed to stop scenario")
		rw.InternalError("failed to stop scenario")
		return
	}
	rw.Success(h.ctrl.Settings())
}
