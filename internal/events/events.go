package events

import (
	"context"
	"time"
)

// Type names a lifecycle transition.
type Type string

const (
	// TypeScheduled is emitted after an alarm is stored.
	TypeScheduled Type = "scheduled"
	// TypeCancelled is emitted after an owner cancels an alarm.
	TypeCancelled Type = "cancelled"
	// TypeFired is emitted after a due alarm was dispatched.
	TypeFired Type = "fired"
)

// Event describes one lifecycle transition of an alarm.
type Event struct {
	// Type is the transition kind.
	Type Type `json:"type"`
	// AlarmID identifies the alarm.
	AlarmID string `json:"alarm_id"`
	// OwnerID is the user the alarm belongs to.
	OwnerID string `json:"owner_id"`
	// DueAt is when the alarm is or was due.
	DueAt time.Time `json:"due_at,omitzero"`
	// OccurredAt is when the transition happened.
	OccurredAt time.Time `json:"occurred_at"`
	// Voice is the voice delivery status, set on fired events.
	Voice string `json:"voice,omitempty"`
	// DirectMessage is the direct-message delivery status, set on fired events.
	DirectMessage string `json:"direct_message,omitempty"`
}

// Publisher delivers lifecycle events to interested parties.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Nop discards every event.
type Nop struct{}

// Publish does nothing.
func (Nop) Publish(context.Context, Event) error {
	return nil
}
