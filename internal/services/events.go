package services

import (
	"encoding/json"
	"log/slog"
	"time"
)

// EventsExchange is the topic exchange domain events are published to.
const EventsExchange = "tasktracker.events"

// Routing keys of published domain events.
const (
	EventUserRegistered = "user.registered"
	EventUserDeleted    = "user.deleted"
	EventTaskCreated    = "task.created"
	EventTaskUpdated    = "task.updated"
	EventTaskDeleted    = "task.deleted"
)

// EventPublisher delivers a message to an exchange.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// Event is the JSON body of a domain event.
type Event struct {
	Type       string    `json:"type"`
	UserID     string    `json:"user_id"`
	TaskID     string    `json:"task_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// publishEvent sends an event if a publisher is configured. Failures are
// logged and never returned.
func publishEvent(p EventPublisher, eventType, userID, taskID string) {
	if p == nil {
		return
	}

	body, err := json.Marshal(Event{
		Type:       eventType,
		UserID:     userID,
		TaskID:     taskID,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		slog.Warn("failed to marshal event", "type", eventType, "error", err)
		return
	}

	if err := p.Publish(EventsExchange, eventType, body); err != nil {
		slog.Warn("failed to publish event",
			"type", eventType,
			"user_id", userID,
			"task_id", taskID,
			"error", err)
	}
}
