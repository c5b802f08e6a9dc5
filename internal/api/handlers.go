// Panbord - Bakery Storefront Signage Demo
// Copyright 2026 Panbord Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/panbord/signage

package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/panbord/signage/internal/auth"
	"github.com/panbord/signage/internal/catalog"
	"github.com/panbord/signage/internal/config"
	"github.com/panbord/signage/internal/crosssell"
	"github.com/panbord/signage/internal/demo"
	"github.com/panbord/signage/internal/metrics"
	"github.com/panbord/signage/internal/recommend"
	"github.com/panbord/signage/internal/signage"
	"github.com/panbord/signage/internal/validation"
	"github.com/panbord/signage/internal/websocket"
)

// maxRequestBody caps JSON request bodies. Demo payloads are tiny.
const maxRequestBody = 64 * 1024

// Handler holds the wired application services behind the HTTP endpoints.
type Handler struct {
	cfg     *config.Config
	catalog *catalog.Catalog
	engine  *recommend.Engine
	advisor *crosssell.Advisor
	builder *signage.Builder
	ctrl    *demo.Controller
	player  *demo.Player
	hub     *websocket.Hub
	creds   *auth.CredentialStore
	jwt     *auth.JWTManager
	logger  zerolog.Logger
	now     func() time.Time
}

// HandlerDeps collects the services a Handler needs.
type HandlerDeps struct {
	Config      *config.Config
	Catalog     *catalog.Catalog
	Engine      *recommend.Engine
	Advisor     *crosssell.Advisor
	Builder     *signage.Builder
	Controller  *demo.Controller
	Player      *demo.Player
	Hub         *websocket.Hub
	Credentials *auth.CredentialStore
	JWT         *auth.JWTManager
	Logger      zerolog.Logger
}

// NewHandler creates a Handler from its dependencies.
func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		cfg:     deps.Config,
		catalog: deps.Catalog,
		engine:  deps.Engine,
		advisor: deps.Advisor,
		builder: deps.Builder,
		ctrl:    deps.Controller,
		player:  deps.Player,
		hub:     deps.Hub,
		creds:   deps.Credentials,
		jwt:     deps.JWT,
		logger:  deps.Logger.With().Str("component", "api").Logger(),
		now:     time.Now,
	}
}

// buildDisplay assembles the current display snapshot from demo state.
func (h *Handler) buildDisplay() signage.Display {
	now := h.now()
	settings, store := h.ctrl.State()
	display := h.builder.Build(
		settings.EffectiveHour(now),
		settings.EffectiveSeason(now),
		store,
		settings.Weights,
		now,
	)
	metrics.DisplaysBuilt.Inc()
	return display
}

// BroadcastDisplay pushes a fresh display snapshot to all websocket
// clients. Wired to Controller.OnChange at startup.
func (h *Handler) BroadcastDisplay() {
	h.hub.BroadcastDisplay(h.buildDisplay())
}

// decodeJSON reads a JSON request body into v, enforcing the body cap and
// rejecting unknown fields.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// validateRequest validates a request struct, returning the API error shape
// on failure.
func validateRequest(v interface{}) *APIError {
	validationErr := validation.ValidateStruct(v)
	if validationErr == nil {
		return nil
	}
	apiErr := validationErr.ToAPIError()
	return &APIError{
		Code:    apiErr.Code,
		Message: apiErr.Message,
		Details: apiErr.Details,
	}
}

// productCode parses the {code} URL parameter.
func productCode(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "code"))
}

// queryInt reads an integer query parameter with a default.
func queryInt(r *http.Request, key string, fallback int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}

func queryFloat(raw string) (float64, error) {
	return strconv.ParseFloat(raw, 64)
}
