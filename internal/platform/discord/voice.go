package discord

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	domain "github.com/oshokin/alarm-bot/internal/domain/alarm"
	"github.com/oshokin/alarm-bot/internal/service/dispatcher"
)

// voicePermissions are required to join and play.
const voicePermissions = discordgo.PermissionVoiceConnect | discordgo.PermissionVoiceSpeak

// presenceLookup is the part of *discordgo.State the voice adapter uses.
type presenceLookup interface {
	VoiceState(guildID, userID string) (*discordgo.VoiceState, error)
	UserChannelPermissions(userID, channelID string) (int64, error)
}

// voiceStream is a joined voice channel.
type voiceStream interface {
	Speaking(speaking bool) error
	Frames() chan<- []byte
	Disconnect() error
}

// joinFunc connects to a voice channel.
type joinFunc func(ctx context.Context, guildID, channelID string) (voiceStream, error)

// Voice locates the owner in voice and plays the cue there.
type Voice struct {
	// presence answers voice-state and permission queries.
	presence presenceLookup
	// botUserID returns the bot's own user id for permission checks.
	botUserID func() string
	// join connects to a voice channel.
	join joinFunc
	// cue holds the Opus frames played on delivery.
	cue [][]byte
	// timeout bounds one join and playback.
	timeout time.Duration
}

// NewVoice creates a Voice adapter. A non-positive timeout means no limit.
func NewVoice(presence presenceLookup, botUserID func() string, join joinFunc, cue [][]byte, timeout time.Duration) *Voice {
	return &Voice{
		presence:  presence,
		botUserID: botUserID,
		join:      join,
		cue:       cue,
		timeout:   timeout,
	}
}

// Locate returns the voice channel the owner is connected to in the
// alarm's guild, or nil when there is none.
func (v *Voice) Locate(_ context.Context, alarm *domain.Alarm) (*domain.VoiceDestination, error) {
	if v == nil || len(v.cue) == 0 {
		return nil, dispatcher.ErrChannelDisabled
	}

	if alarm.Recipient.GuildID == "" {
		return nil, nil //nolint:nilnil // No guild, no voice presence.
	}

	state, err := v.presence.VoiceState(alarm.Recipient.GuildID, alarm.DeliveryUserID())

	switch {
	case errors.Is(err, discordgo.ErrStateNotFound):
		return nil, nil //nolint:nilnil // Owner is not in voice.
	case err != nil:
		return nil, fmt.Errorf("look up voice state: %w", err)
	case state == nil || state.ChannelID == "":
		return nil, nil //nolint:nilnil // Owner is not in voice.
	}

	permissions, err := v.presence.UserChannelPermissions(v.botUserID(), state.ChannelID)
	if err != nil {
		return nil, fmt.Errorf("look up voice permissions: %w", err)
	}

	return &domain.VoiceDestination{
		GuildID:   alarm.Recipient.GuildID,
		ChannelID: state.ChannelID,
		Joinable:  permissions&voicePermissions == voicePermissions,
	}, nil
}

// Play joins destination, streams the cue and leaves.
func (v *Voice) Play(ctx context.Context, destination *domain.VoiceDestination) (err error) {
	if v == nil || len(v.cue) == 0 {
		return dispatcher.ErrChannelDisabled
	}

	if v.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, v.timeout)
		defer cancel()
	}

	stream, err := v.join(ctx, destination.GuildID, destination.ChannelID)
	if err != nil {
		return fmt.Errorf("join voice channel: %w", err)
	}

	defer func() {
		if disconnectErr := stream.Disconnect(); disconnectErr != nil && err == nil {
			err = fmt.Errorf("leave voice channel: %w", disconnectErr)
		}
	}()

	if err = stream.Speaking(true); err != nil {
		return fmt.Errorf("start speaking: %w", err)
	}

	frames := stream.Frames()

	for _, frame := range v.cue {
		select {
		case <-ctx.Done():
			return fmt.Errorf("stream voice cue: %w", ctx.Err())
		case frames <- frame:
		}
	}

	if err = stream.Speaking(false); err != nil {
		return fmt.Errorf("stop speaking: %w", err)
	}

	return nil
}

// connection adapts *discordgo.VoiceConnection to voiceStream.
type connection struct {
	vc *discordgo.VoiceConnection
}

func (c *connection) Speaking(speaking bool) error {
	return c.vc.Speaking(speaking)
}

func (c *connection) Frames() chan<- []byte {
	return c.vc.OpusSend
}

func (c *connection) Disconnect() error {
	return c.vc.Disconnect()
}

// sessionJoiner joins channels through session. The bot joins deafened.
func sessionJoiner(session *discordgo.Session) joinFunc {
	return func(_ context.Context, guildID, channelID string) (voiceStream, error) {
		vc, err := session.ChannelVoiceJoin(guildID, channelID, false, true)
		if err != nil {
			return nil, err //nolint:wrapcheck // Wrapped by Play.
		}

		return &connection{vc: vc}, nil
	}
}
