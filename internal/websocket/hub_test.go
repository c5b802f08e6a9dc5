// Panbord - Bakery Storefront Signage Demo
// Copyright 2026 Panbord Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/panbord/signage

package websocket

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/panbord/signage/internal/logging"
)

//nolint:gochecknoinits // init ensures consistent logging for tests
func init() {
	logging.Init(logging.Config{
		Level:  "info",
		Format: "console",
		Output: io.Discard,
	})
}

// setupHub starts a hub loop and tears it down with the test.
func setupHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = hub.RunWithContext(ctx)
		close(done)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	time.Sleep(10 * time.Millisecond)
	return hub
}

// createTestClient builds a client with no underlying connection. The hub
// only ever touches the send channel, so tests can read frames directly.
func createTestClient(hub *Hub) *Client {
	return &Client{id: clientIDCounter.Add(1), hub: hub, conn: nil, send: make(chan Message, 64)}
}

// registerClient registers a client and waits for the hub to pick it up.
func registerClient(t *testing.T, hub *Hub, client *Client) {
	t.Helper()
	hub.Register <- client
	waitFor(t, func() bool { return hub.ClientCount() > 0 })
}

// waitFor polls cond until it holds or the deadline passes.
func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestNewHub(t *testing.T) {
	hub := NewHub()

	if hub == nil {
		t.Fatal("NewHub returned nil")
	}

	checks := []struct {
		name   string
		check  bool
		errMsg string
	}{
		{"clients map", hub.clients != nil, "clients map not initialized"},
		{"broadcast channel", hub.broadcast != nil, "broadcast channel not initialized"},
		{"Register channel", hub.Register != nil, "Register channel not initialized"},
		{"Unregister channel", hub.Unregister != nil, "Unregister channel not initialized"},
		{"empty clients", len(hub.clients) == 0, "clients map should be empty"},
	}

	for _, c := range checks {
		if !c.check {
			t.Error(c.errMsg)
		}
	}
}

func TestHubClientCount(t *testing.T) {
	hub := NewHub()

	if hub.ClientCount() != 0 {
		t.Errorf("expected 0 clients initially, got %d", hub.ClientCount())
	}

	for i := 0; i < 5; i++ {
		hub.clients[createTestClient(hub)] = true
	}

	if hub.ClientCount() != 5 {
		t.Errorf("expected 5 clients, got %d", hub.ClientCount())
	}
}

func TestHubRegisterUnregister(t *testing.T) {
	hub := setupHub(t)
	client := createTestClient(hub)

	registerClient(t, hub, client)
	if got := hub.ClientCount(); got != 1 {
		t.Fatalf("expected 1 client after register, got %d", got)
	}

	hub.Unregister <- client
	waitFor(t, func() bool { return hub.ClientCount() == 0 })

	// Unregister closes the send channel.
	select {
	case _, ok := <-client.send:
		if ok {
			t.Error("expected send channel to be closed")
		}
	case <-time.After(time.Second):
		t.Error("send channel not closed after unregister")
	}
}

func TestHubBroadcastReachesAllClients(t *testing.T) {
	hub := setupHub(t)
	clients := make([]*Client, 3)
	for i := range clients {
		clients[i] = createTestClient(hub)
		registerClient(t, hub, clients[i])
	}
	waitFor(t, func() bool { return hub.ClientCount() == 3 })

	hub.BroadcastDisplay(map[string]any{"hour": 10})

	for i, c := range clients {
		select {
		case msg := <-c.send:
			if msg.Type != MessageTypeDisplay {
				t.Errorf("client %d: expected type %q, got %q", i, MessageTypeDisplay, msg.Type)
			}
		case <-time.After(time.Second):
			t.Errorf("client %d never received broadcast", i)
		}
	}
}

func TestHubBroadcastWithoutClients(t *testing.T) {
	hub := setupHub(t)
	// Must not block or panic with nobody listening.
	hub.BroadcastDisplay(map[string]any{"hour": 15})
	time.Sleep(10 * time.Millisecond)
}

func TestHubDropsSlowClient(t *testing.T) {
	hub := setupHub(t)
	slow := createTestClient(hub)
	slow.send = make(chan Message) // unbuffered, nobody reading
	registerClient(t, hub, slow)

	hub.BroadcastDisplay(map[string]any{"hour": 9})
	waitFor(t, func() bool { return hub.ClientCount() == 0 })
}

func TestHubShutdownOnContextCancel(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- hub.RunWithContext(ctx) }()
	time.Sleep(10 * time.Millisecond)

	client := createTestClient(hub)
	hub.Register <- client
	waitFor(t, func() bool { return hub.ClientCount() == 1 })

	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("hub loop did not exit after cancel")
	}

	if hub.ClientCount() != 0 {
		t.Errorf("expected all clients dropped on shutdown, got %d", hub.ClientCount())
	}
	select {
	case _, ok := <-client.send:
		if ok {
			t.Error("expected send channel closed on shutdown")
		}
	default:
		t.Error("send channel still open after shutdown")
	}
}
