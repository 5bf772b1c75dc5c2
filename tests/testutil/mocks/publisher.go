package mocks

import (
	"context"
	"sync"

	"github.com/0xsj/overwatch-finance/internal/domain/event"
)

// EventPublisher is a mock implementation of messaging.EventPublisher
// that records published events.
type EventPublisher struct {
	mu sync.RWMutex

	events []event.Event

	Errors struct {
		Publish    error
		PublishAll error
	}
}

// NewEventPublisher creates a new mock EventPublisher.
func NewEventPublisher() *EventPublisher {
	return &EventPublisher{}
}

func (m *EventPublisher) Publish(ctx context.Context, evt event.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Errors.Publish != nil {
		return m.Errors.Publish
	}

	m.events = append(m.events, evt)
	return nil
}

func (m *EventPublisher) PublishAll(ctx context.Context, events []event.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Errors.PublishAll != nil {
		return m.Errors.PublishAll
	}

	m.events = append(m.events, events...)
	return nil
}

// Events returns a copy of the published events.
func (m *EventPublisher) Events() []event.Event {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]event.Event, len(m.events))
	copy(out, m.events)
	return out
}

// EventsOfType returns the published events with the given type.
func (m *EventPublisher) EventsOfType(eventType string) []event.Event {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []event.Event
	for _, evt := range m.events {
		if evt.EventType() == eventType {
			out = append(out, evt)
		}
	}
	return out
}

// Reset clears the recorded events.
func (m *EventPublisher) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = nil
}
