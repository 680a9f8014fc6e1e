package alarm

import "time"

// DefaultMessage is shown at delivery when the caller supplied no message.
const DefaultMessage = "Time is up!"

// Recipient is the opaque context a delivery adapter needs to reach the owner.
// It is copied at schedule time and never mutated by the core.
type Recipient struct {
	// GuildID is the server the alarm was requested from; voice presence is looked up there.
	GuildID string
	// ChannelID is the text channel the alarm was requested from.
	ChannelID string
	// UserID is the chat platform user to notify. Empty means OwnerID is that user.
	UserID string
}

// Clone returns a copy of the recipient.
func (r *Recipient) Clone() *Recipient {
	if r == nil {
		return nil
	}

	cloned := *r

	return &cloned
}

// Alarm is a one-shot notification waiting in the registry.
// Alarms are immutable once stored: cancel and trigger both remove them.
type Alarm struct {
	// ID is the generated identifier, unique for the process lifetime.
	ID string
	// OwnerID identifies the requesting user and scopes cancel and list.
	OwnerID string
	// Message is the text shown at delivery.
	Message string
	// Recipient locates the owner's voice and direct-message destinations.
	Recipient Recipient
	// DueAt is the absolute instant the alarm fires at.
	DueAt time.Time
	// CreatedAt is when the alarm was scheduled; used for display only.
	CreatedAt time.Time
}

// Clone returns a copy of the alarm to avoid leaking registry references.
func (a *Alarm) Clone() *Alarm {
	if a == nil {
		return nil
	}

	cloned := *a

	return &cloned
}

// IsDue reports whether the alarm should fire at now.
func (a *Alarm) IsDue(now time.Time) bool {
	return !now.Before(a.DueAt)
}

// DeliveryUserID returns the chat platform user the alarm is delivered to:
// Recipient.UserID, or OwnerID when the recipient names no user.
func (a *Alarm) DeliveryUserID() string {
	if a.Recipient.UserID != "" {
		return a.Recipient.UserID
	}

	return a.OwnerID
}

// Summary returns the list projection of the alarm.
func (a *Alarm) Summary() Summary {
	return Summary{
		ID:      a.ID,
		DueAt:   a.DueAt,
		Message: a.Message,
	}
}

// Summary is what owners see when listing their pending alarms.
type Summary struct {
	ID      string
	DueAt   time.Time
	Message string
}

// VoiceDestination is a resolved voice channel the owner is currently in.
type VoiceDestination struct {
	GuildID   string
	ChannelID string
	// Joinable is false when the bot lacks permission to connect.
	Joinable bool
}
