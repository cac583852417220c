package events

import (
	"time"
)

// DomainEvent represents a domain event interface
type DomainEvent interface {
	// GetAggregateID returns the ID of the aggregate that generated the event
	GetAggregateID() string

	// GetEventType returns the type/name of the event
	GetEventType() string

	// GetOccurredAt returns when the event occurred
	GetOccurredAt() time.Time

	// GetVersion returns the event version for schema evolution
	GetVersion() int
}

// BaseEvent provides common fields for all domain events
type BaseEvent struct {
	AggregateID string    `json:"aggregate_id"`
	EventType   string    `json:"event_type"`
	OccurredAt  time.Time `json:"occurred_at"`
	Version     int       `json:"version"`
}

func (e BaseEvent) GetAggregateID() string {
	return e.AggregateID
}

func (e BaseEvent) GetEventType() string {
	return e.EventType
}

func (e BaseEvent) GetOccurredAt() time.Time {
	return e.OccurredAt
}

func (e BaseEvent) GetVersion() int {
	return e.Version
}

// EventHandler represents a handler for domain events
type EventHandler interface {
	Handle(event DomainEvent) error
	CanHandle(eventType string) bool
}

// EventPublisher publishes domain events
type EventPublisher interface {
	Publish(event DomainEvent) error
}
