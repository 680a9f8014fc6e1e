package dispatcher

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/oshokin/alarm-bot/internal/domain/alarm"
	"github.com/oshokin/alarm-bot/internal/logger"
	"github.com/oshokin/alarm-bot/internal/metrics"
)

// directMessagePrefix starts every direct-message notification.
const directMessagePrefix = "🔔 **Alarm!** "

var (
	// ErrChannelDisabled is returned by adapters that are not configured.
	// Deliver reports it as skipped rather than failed.
	ErrChannelDisabled = errors.New("delivery channel is disabled")

	// errNotInVoice marks a voice skip when the owner has no voice presence.
	errNotInVoice = errors.New("owner is not in a voice channel")
	// errVoiceNotJoinable marks a voice skip when the bot may not connect.
	errVoiceNotJoinable = errors.New("voice channel is not joinable")
	// errPanicked wraps a recovered collaborator panic.
	errPanicked = errors.New("delivery panicked")
)

// VoiceChannel resolves and plays to the owner's current voice channel.
type VoiceChannel interface {
	// Locate returns the owner's voice destination, or nil when the owner is not in voice.
	Locate(ctx context.Context, alarm *domain.Alarm) (*domain.VoiceDestination, error)
	// Play joins the destination, plays the alarm cue and leaves.
	Play(ctx context.Context, destination *domain.VoiceDestination) error
}

// DirectMessenger sends private messages to users.
type DirectMessenger interface {
	SendDirect(ctx context.Context, userID, content string) error
}

// Dispatcher delivers fired alarms. It is safe for concurrent use when its
// collaborators are.
type Dispatcher struct {
	// voice is the optional voice adapter.
	voice VoiceChannel
	// direct is the optional direct-message adapter.
	direct DirectMessenger
	// metrics records outcomes; nil records nothing.
	metrics *metrics.Metrics
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithMetrics records every outcome in m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(d *Dispatcher) {
		d.metrics = m
	}
}

// New creates a Dispatcher. A nil collaborator disables its channel.
func New(voice VoiceChannel, direct DirectMessenger, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		voice:  voice,
		direct: direct,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// DirectMessage returns the text sent privately to the owner.
func DirectMessage(message string) string {
	return directMessagePrefix + message
}

// Deliver attempts voice, then the direct message, and reports both.
// It never returns an error and recovers collaborator panics.
func (d *Dispatcher) Deliver(ctx context.Context, alarm *domain.Alarm) Report {
	ctx = logger.WithKV(ctx, "alarm_id", alarm.ID, "owner_id", alarm.OwnerID)

	report := Report{AlarmID: alarm.ID}

	report.Voice = guard(ChannelVoice, func() Outcome {
		return d.deliverVoice(ctx, alarm)
	})
	d.record(ctx, report.Voice)

	report.Direct = guard(ChannelDirectMessage, func() Outcome {
		return d.deliverDirect(ctx, alarm)
	})
	d.record(ctx, report.Direct)

	return report
}

func (d *Dispatcher) deliverVoice(ctx context.Context, alarm *domain.Alarm) Outcome {
	if d.voice == nil {
		return skipped(ChannelVoice, ErrChannelDisabled)
	}

	destination, err := d.voice.Locate(ctx, alarm)

	switch {
	case errors.Is(err, ErrChannelDisabled):
		return skipped(ChannelVoice, err)
	case err != nil:
		return failed(ChannelVoice, fmt.Errorf("locate voice channel: %w", err))
	case destination == nil:
		return skipped(ChannelVoice, errNotInVoice)
	case !destination.Joinable:
		return skipped(ChannelVoice, errVoiceNotJoinable)
	}

	if err = d.voice.Play(ctx, destination); err != nil {
		if errors.Is(err, ErrChannelDisabled) {
			return skipped(ChannelVoice, err)
		}

		return failed(ChannelVoice, fmt.Errorf("play voice cue: %w", err))
	}

	return delivered(ChannelVoice)
}

func (d *Dispatcher) deliverDirect(ctx context.Context, alarm *domain.Alarm) Outcome {
	if d.direct == nil {
		return skipped(ChannelDirectMessage, ErrChannelDisabled)
	}

	err := d.direct.SendDirect(ctx, alarm.DeliveryUserID(), DirectMessage(alarm.Message))

	switch {
	case errors.Is(err, ErrChannelDisabled):
		return skipped(ChannelDirectMessage, err)
	case err != nil:
		return failed(ChannelDirectMessage, fmt.Errorf("send direct message: %w", err))
	default:
		return delivered(ChannelDirectMessage)
	}
}

// record logs the outcome and counts it.
func (d *Dispatcher) record(ctx context.Context, outcome Outcome) {
	d.metrics.Delivery(string(outcome.Channel), string(outcome.Status))

	switch outcome.Status {
	case StatusDelivered:
		logger.InfoKV(ctx, "Alarm delivered", "channel", outcome.Channel)
	case StatusSkipped:
		logger.DebugKV(ctx, "Alarm channel skipped", "channel", outcome.Channel, "reason", outcome.Err)
	case StatusFailed:
		logger.WarnKV(ctx, "Alarm delivery failed", "channel", outcome.Channel, "error", outcome.Err)
	}
}

// guard runs attempt and turns a panic into a failed outcome.
func guard(channel Channel, attempt func() Outcome) (outcome Outcome) {
	defer func() {
		if recovered := recover(); recovered != nil {
			outcome = failed(channel, fmt.Errorf("%w: %v", errPanicked, recovered))
		}
	}()

	return attempt()
}
