package events

import (
	"context"
	"time"
)

// Event defines the contract for all domain events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "QUIZ_COMPLETED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// Publisher ships events to the bus. Publishing is best-effort for callers.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

const (
	TypeQuizCompleted      = "QUIZ_COMPLETED"
	TypePreferencesUpdated = "PREFERENCES_UPDATED"
	TypePomodoroCompleted  = "POMODORO_COMPLETED"
	TypeEnergyLogged       = "ENERGY_LOGGED"
)

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func New(eventType string, data map[string]interface{}) BaseEvent {
	return BaseEvent{Type: eventType, Data: data, OccurredAt: time.Now()}
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}
