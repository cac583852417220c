package subscription

import (
	"time"

	"centro/internal/domain/shared/events"
	vo "centro/internal/domain/subscription/valueobjects"
)

const (
	EventTypeStatusChanged = "subscription.status_changed"
	EventTypeCreated       = "subscription.created"
)

// StatusChangedEvent is emitted after a transition is persisted.
type StatusChangedEvent struct {
	events.BaseEvent
	ActivityID  uint                  `json:"activity_id"`
	ServiceCode string                `json:"service_code"`
	From        vo.SubscriptionStatus `json:"from"`
	To          vo.SubscriptionStatus `json:"to"`
}

func NewStatusChangedEvent(sub *Subscription, from vo.SubscriptionStatus, now time.Time) *StatusChangedEvent {
	return &StatusChangedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: sub.SID(),
			EventType:   EventTypeStatusChanged,
			OccurredAt:  now,
			Version:     1,
		},
		ActivityID:  sub.ActivityID(),
		ServiceCode: sub.ServiceCode(),
		From:        from,
		To:          sub.Status(),
	}
}

// CreatedEvent is emitted when a subscription record first appears.
type CreatedEvent struct {
	events.BaseEvent
	ActivityID  uint                  `json:"activity_id"`
	ServiceCode string                `json:"service_code"`
	Status      vo.SubscriptionStatus `json:"status"`
}

func NewCreatedEvent(sub *Subscription, now time.Time) *CreatedEvent {
	return &CreatedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: sub.SID(),
			EventType:   EventTypeCreated,
			OccurredAt:  now,
			Version:     1,
		},
		ActivityID:  sub.ActivityID(),
		ServiceCode: sub.ServiceCode(),
		Status:      sub.Status(),
	}
}
