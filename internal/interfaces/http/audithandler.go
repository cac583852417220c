package http

import (
	"centro/internal/domain/shared/events"
	"centro/internal/domain/subscription"
	"centro/internal/shared/logger"
)

// auditLogHandler writes an audit trail entry for every subscription status
// change that goes through the transition engine.
type auditLogHandler struct {
	log logger.Interface
}

func newAuditLogHandler(log logger.Interface) *auditLogHandler {
	return &auditLogHandler{log: log.Named("audit")}
}

func (h *auditLogHandler) CanHandle(eventType string) bool {
	return eventType == subscription.EventTypeStatusChanged
}

func (h *auditLogHandler) Handle(event events.DomainEvent) error {
	evt, ok := event.(*subscription.StatusChangedEvent)
	if !ok {
		return nil
	}
	h.log.Infow("subscription status changed",
		"subscription_sid", evt.GetAggregateID(),
		"activity_id", evt.ActivityID,
		"service_code", evt.ServiceCode,
		"from", evt.From,
		"to", evt.To,
		"occurred_at", evt.GetOccurredAt(),
	)
	return nil
}
