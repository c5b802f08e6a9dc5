// Panbord - Bakery Storefront Signage Demo
// Copyright 2026 Panbord Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/panbord/signage

package api

import (
	"net/http"

	"github.com/panbord/signage/internal/metrics"
)

// LoginResponse is the body of a successful POST /api/v1/auth/login.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
	TokenType string `json:"token_type"`
}

// Login verifies demo credentials and issues a JWT.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		rw.BadRequest("invalid JSON body")
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		rw.ErrorWithDetails(http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
		return
	}

	if !h.creds.Verify(req.Username, req.Password) {
		metrics.RecordLogin(false)
		h.logger.Warn().Str("username", req.Username).Msg("failed login attempt")
		rw.Unauthorized("invalid username or password")
		return
	}

	token, err := h.jwt.GenerateToken(req.Username)
	if err != nil {
		metrics.RecordLogin(false)
		h.logger.Error().Err(err).Msg("failed to generate token")
		rw.InternalError("failed to generate token")
		return
	}

	metrics.RecordLogin(true)
	rw.Success(LoginResponse{
		Token:     token,
		ExpiresIn: int64(h.jwt.TTL().Seconds()),
		TokenType: "Bearer",
	})
}
