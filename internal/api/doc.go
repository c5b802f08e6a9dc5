// Panbord - Bakery Storefront Signage Demo
// Copyright 2026 Panbord Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/panbord/signage

// Package api exposes the signage demo over HTTP.
//
// Read endpoints under /api/v1 serve the display snapshot, rankings,
// catalog, inventory and cross-sell data. Control endpoints under
// /api/v1/demo and the inventory mutation endpoints require a JWT obtained
// from /api/v1/auth/login, unless auth mode "none" is configured. /ws
// upgrades to a websocket that pushes a fresh display after every state
// change.
//
// All responses share the APIResponse envelope in response.go. Request
// bodies are validated with go-playground/validator via the structs in
// requests.go.
package api
