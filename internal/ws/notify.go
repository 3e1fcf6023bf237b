package ws

import (
	"encoding/json"
	"time"
)

const (
	EventApplicationReceived = "application_received"
	EventContactReceived     = "contact_received"
)

type Event struct {
	Type      string `json:"type"`
	Payload   any    `json:"payload"`
	Timestamp string `json:"timestamp"`
}

// Notifier publishes events to the admin feed.
type Notifier struct {
	hub *Hub
	now func() time.Time
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub, now: time.Now}
}

func (n *Notifier) Publish(eventType string, payload any) {
	if n == nil || n.hub == nil || eventType == "" {
		return
	}

	b, err := json.Marshal(Event{
		Type:      eventType,
		Payload:   payload,
		Timestamp: n.now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		n.hub.logger.Warn().Err(err).Str("type", eventType).Msg("ws event encode failed")
		return
	}
	n.hub.Broadcast(b)
}
