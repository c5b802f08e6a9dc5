// Panbord - Bakery Storefront Signage Demo
// Copyright 2026 Panbord Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/panbord/signage

package auth

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

// ClaimsContextKey is the context key under which validated claims are
// stored for downstream handlers.
const ClaimsContextKey contextKey = "claims"

// ModeNone disables authentication entirely; ModeJWT requires a valid
// bearer token on protected routes.
const (
	ModeNone = "none"
	ModeJWT  = "jwt"
)

// ErrorWriter renders an authentication failure response. The API layer
// injects its envelope writer here so 401 bodies match every other error
// response.
type ErrorWriter func(w http.ResponseWriter, r *http.Request, message string)

// Middleware enforces bearer-token authentication on the routes it wraps.
type Middleware struct {
	jwt        *JWTManager
	mode       string
	writeError ErrorWriter
}

// NewMiddleware builds the authentication middleware. In ModeNone the
// manager may be nil. A nil writeError falls back to plain-text responses.
func NewMiddleware(jwt *JWTManager, mode string, writeError ErrorWriter) *Middleware {
	if writeError == nil {
		writeError = func(w http.ResponseWriter, _ *http.Request, message string) {
			http.Error(w, message, http.StatusUnauthorized)
		}
	}
	return &Middleware{jwt: jwt, mode: mode, writeError: writeError}
}

// Require rejects requests without a valid Authorization bearer token,
// unless auth mode is none. Valid claims are stored in the context.
func (m *Middleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.mode == ModeNone {
			next.ServeHTTP(w, r)
			return
		}

		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			w.Header().Set("WWW-Authenticate", `Bearer realm="panbord"`)
			m.writeError(w, r, "authorization required")
			return
		}

		claims, err := m.jwt.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			w.Header().Set("WWW-Authenticate", `Bearer realm="panbord", error="invalid_token"`)
			m.writeError(w, r, "invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), ClaimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClaimsFromContext returns the validated claims, or nil when the request
// was not authenticated (auth mode none).
func ClaimsFromContext(ctx context.Context) *Claims {
	if claims, ok := ctx.Value(ClaimsContextKey).(*Claims); ok {
		return claims
	}
	return nil
}
