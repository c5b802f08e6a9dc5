// Panbord - Bakery Storefront Signage Demo
// Copyright 2026 Panbord Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/panbord/signage

// Package websocket pushes fresh display snapshots to connected signage
// screens. Screens hold one long-lived connection each; every state
// mutation and scenario step triggers a broadcast so the screen never
// polls.
package websocket

import (
	"context"
	"sort"
	"sync"

	"github.com/panbord/signage/internal/logging"
	"github.com/panbord/signage/internal/metrics"
)

// Message types.
const (
	MessageTypeDisplay = "display"
	MessageTypePing    = "ping"
	MessageTypePong    = "pong"
)

// Message is one websocket frame's payload.
type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Hub tracks connected screens and fans broadcasts out to them.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan Message
	Register   chan *Client
	Unregister chan *Client
	mu         sync.RWMutex
}

// NewHub creates an empty hub. Run it under the supervisor with
// RunWithContext before registering clients.
func NewHub() *Hub {
	return &Hub{
		broadcast:  make(chan Message, 64),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
	}
}

// RunWithContext runs the hub loop until ctx is canceled, then closes all
// clients and returns ctx.Err(). Lifecycle events are drained before
// broadcasts so client state is consistent when a message fans out.
func (h *Hub) RunWithContext(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			h.shutdown()
			return ctx.Err()
		default:
		}

		select {
		case client := <-h.Register:
			h.addClient(client)
			continue
		case client := <-h.Unregister:
			h.removeClient(client)
			continue
		default:
		}

		select {
		case <-ctx.Done():
			h.shutdown()
			return ctx.Err()
		case client := <-h.Register:
			h.addClient(client)
		case client := <-h.Unregister:
			h.removeClient(client)
		case message := <-h.broadcast:
			h.broadcastToClients(message)
		}
	}
}

func (h *Hub) addClient(c *Client) {
	h.mu.Lock()
	h.clients[c] = true
	count := len(h.clients)
	h.mu.Unlock()
	metrics.WebSocketConnections.Set(float64(count))
	logging.Info().Str("component", "websocket").Int("total_clients", count).Msg("screen connected")
}

func (h *Hub) removeClient(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	count := len(h.clients)
	h.mu.Unlock()
	metrics.WebSocketConnections.Set(float64(count))
	logging.Info().Str("component", "websocket").Int("total_clients", count).Msg("screen disconnected")
}

// broadcastToClients fans one message out in client-ID order. A client
// whose send buffer is full is dropped rather than blocking the hub.
func (h *Hub) broadcastToClients(message Message) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	sort.Slice(clients, func(i, j int) bool { return clients[i].id < clients[j].id })

	for _, c := range clients {
		select {
		case c.send <- message:
		default:
			delete(h.clients, c)
			close(c.send)
			logging.Warn().Str("component", "websocket").Msg("dropped slow screen")
		}
	}
	metrics.WebSocketConnections.Set(float64(len(h.clients)))
	metrics.WebSocketBroadcasts.Inc()
}

func (h *Hub) shutdown() {
	h.mu.Lock()
	clients := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	sort.Slice(clients, func(i, j int) bool { return clients[i].id < clients[j].id })
	for _, c := range clients {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()

	metrics.WebSocketConnections.Set(0)
	logging.Info().
		Str("component", "websocket").
		Int("clients_closed", len(clients)).
		Msg("websocket hub stopped")
}

// BroadcastDisplay queues a display snapshot for every connected screen.
// Non-blocking: if the hub's queue is full the snapshot is skipped, the
// next mutation will broadcast a fresher one anyway.
func (h *Hub) BroadcastDisplay(display interface{}) {
	select {
	case h.broadcast <- Message{Type: MessageTypeDisplay, Data: display}:
	default:
		logging.Warn().Str("component", "websocket").Msg("broadcast queue full, snapshot skipped")
	}
}

// ClientCount returns the number of connected screens.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
