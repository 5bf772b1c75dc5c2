package messaging

import (
	"context"

	"github.com/0xsj/overwatch-finance/internal/domain/event"
)

// EventPublisher defines the interface for publishing domain events.
type EventPublisher interface {
	// Publish publishes a single event.
	Publish(ctx context.Context, evt event.Event) error

	// PublishAll publishes multiple events.
	PublishAll(ctx context.Context, events []event.Event) error
}

// Topic names for finance events.
const (
	TopicUserEvents     = "finance.user"
	TopicAuthEvents     = "finance.auth"
	TopicCategoryEvents = "finance.category"
	TopicExpenseEvents  = "finance.expense"
)

// TopicForEvent returns the appropriate topic for an event type.
func TopicForEvent(evt event.Event) string {
	switch evt.AggregateType() {
	case event.AggregateTypeUser:
		// Authentication and session events go to a separate topic
		switch evt.EventType() {
		case event.EventTypeAuthenticationSucceeded,
			event.EventTypeAuthenticationFailed,
			event.EventTypeSessionRevoked:
			return TopicAuthEvents
		}
		return TopicUserEvents
	case event.AggregateTypeCategory:
		return TopicCategoryEvents
	case event.AggregateTypeExpense:
		return TopicExpenseEvents
	default:
		return TopicUserEvents
	}
}
