package discord

import (
	"context"
	"fmt"
	"math"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/time/rate"

	"github.com/oshokin/alarm-bot/internal/service/dispatcher"
)

// messageAPI is the part of *discordgo.Session the messenger uses.
type messageAPI interface {
	UserChannelCreate(recipientID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	ChannelMessageSend(channelID, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Messenger sends direct messages, at most perSecond per second.
type Messenger struct {
	// api performs the REST calls.
	api messageAPI
	// limiter throttles outgoing messages.
	limiter *rate.Limiter
}

// NewMessenger creates a Messenger. A non-positive rate disables throttling.
func NewMessenger(api messageAPI, perSecond float64) *Messenger {
	limit := rate.Limit(perSecond)
	if perSecond <= 0 {
		limit = rate.Inf
	}

	return &Messenger{
		api:     api,
		limiter: rate.NewLimiter(limit, int(math.Max(1, math.Ceil(perSecond)))),
	}
}

// SendDirect opens (or reuses) the DM channel with userID and posts content.
func (m *Messenger) SendDirect(ctx context.Context, userID, content string) error {
	if m == nil || m.api == nil {
		return dispatcher.ErrChannelDisabled
	}

	if err := m.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("wait for rate limiter: %w", err)
	}

	channel, err := m.api.UserChannelCreate(userID, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("open DM channel: %w", err)
	}

	if _, err = m.api.ChannelMessageSend(channel.ID, content, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("send DM: %w", err)
	}

	return nil
}
