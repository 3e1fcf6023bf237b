package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T) *Hub {
	t.Helper()
	h := NewHub(zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go h.Run(ctx)
	return h
}

func waitForClients(t *testing.T, h *Hub, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return h.ClientCount() == n }, time.Second, 5*time.Millisecond)
}

func TestHub_BroadcastReachesRegisteredClients(t *testing.T) {
	h := startHub(t)
	a := NewClient(h, nil)
	b := NewClient(h, nil)
	h.Register(a)
	h.Register(b)
	waitForClients(t, h, 2)

	h.Broadcast([]byte("hello"))

	for _, c := range []*Client{a, b} {
		select {
		case msg := <-c.send:
			assert.Equal(t, "hello", string(msg))
		case <-time.After(time.Second):
			t.Fatal("broadcast not delivered")
		}
	}
}

func TestHub_UnregisterClosesSend(t *testing.T) {
	h := startHub(t)
	c := NewClient(h, nil)
	h.Register(c)
	waitForClients(t, h, 1)

	h.Unregister(c)
	waitForClients(t, h, 0)

	_, ok := <-c.send
	assert.False(t, ok)
}

func TestHub_StoppedHubNeverBlocks(t *testing.T) {
	h := NewHub(zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	exited := make(chan struct{})
	go func() {
		h.Run(ctx)
		close(exited)
	}()

	live := NewClient(h, nil)
	h.Register(live)
	waitForClients(t, h, 1)

	cancel()
	select {
	case <-exited:
	case <-time.After(time.Second):
		t.Fatal("Run did not return")
	}
	_, ok := <-live.send
	assert.False(t, ok, "running clients are closed on shutdown")

	done := make(chan struct{})
	go func() {
		defer close(done)
		for range 200 {
			h.Unregister(NewClient(h, nil))
		}
		h.Unregister(live)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Unregister blocked after Run returned")
	}

	late := NewClient(h, nil)
	h.Register(late)
	_, ok = <-late.send
	assert.False(t, ok, "late registrations are closed")
	assert.Equal(t, 0, h.ClientCount())
}

func TestHub_ConcurrentUnregisterDuringBroadcast(t *testing.T) {
	h := startHub(t)
	clients := make([]*Client, 20)
	for i := range clients {
		clients[i] = NewClient(h, nil)
		h.Register(clients[i])
	}
	waitForClients(t, h, len(clients))

	done := make(chan struct{})
	go func() {
		defer close(done)
		for _, c := range clients {
			h.Unregister(c)
		}
	}()
	for range 50 {
		h.Broadcast([]byte("tick"))
	}
	<-done
	waitForClients(t, h, 0)
}

func TestNotifier_PublishesTypedEvent(t *testing.T) {
	h := startHub(t)
	c := NewClient(h, nil)
	h.Register(c)
	waitForClients(t, h, 1)

	n := NewNotifier(h)
	n.now = func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) }
	n.Publish(EventContactReceived, map[string]string{"id": "m1"})

	select {
	case msg := <-c.send:
		var evt struct {
			Type      string            `json:"type"`
			Payload   map[string]string `json:"payload"`
			Timestamp string            `json:"timestamp"`
		}
		require.NoError(t, json.Unmarshal(msg, &evt))
		assert.Equal(t, EventContactReceived, evt.Type)
		assert.Equal(t, "m1", evt.Payload["id"])
		assert.Equal(t, "2025-03-01T12:00:00Z", evt.Timestamp)
	case <-time.After(time.Second):
		t.Fatal("event not delivered")
	}
}

func TestNilHubAndNotifierAreSafe(t *testing.T) {
	var h *Hub
	h.Broadcast([]byte("x"))
	assert.Zero(t, h.ClientCount())

	var n *Notifier
	n.Publish(EventApplicationReceived, nil)
}

func TestOriginChecker(t *testing.T) {
	req := func(origin string) *http.Request {
		r := httptest.NewRequest(http.MethodGet, "/ws/admin", nil)
		if origin != "" {
			r.Header.Set("Origin", origin)
		}
		return r
	}

	anyOrigin := originChecker([]string{"*"})
	assert.True(t, anyOrigin(req("https://evil.example")))

	none := originChecker(nil)
	assert.True(t, none(req("https://evil.example")))

	strict := originChecker([]string{" https://site.example/ ", "http://localhost:3000"})
	assert.True(t, strict(req("https://SITE.example")))
	assert.True(t, strict(req("http://localhost:3000")))
	assert.True(t, strict(req("")))
	assert.False(t, strict(req("https://evil.example")))
}
