// Panbord - Bakery Storefront Signage Demo
// Copyright 2026 Panbord Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/panbord/signage

package api

import (
	"net/http"

	"github.com/panbord/signage/internal/websocket"
)

// WebSocket upgrades the request and starts streaming display snapshots.
// The first snapshot is pushed right after the client registers so a
// freshly connected screen never shows a blank frame.
func (h *Handler) WebSocket(w http.ResponseWriter, r *http.Request) {
	websocket.ServeWS(h.hub, w, r)
	h.hub.BroadcastDisplay(h.buildDisplay())
}
