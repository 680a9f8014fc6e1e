package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/oshokin/alarm-bot/internal/config"
	"github.com/oshokin/alarm-bot/internal/logger"
	"github.com/oshokin/alarm-bot/internal/version"
)

// intents are the gateway events the adapters depend on.
const intents = discordgo.IntentsGuilds | discordgo.IntentsGuildVoiceStates | discordgo.IntentsDirectMessages

// errTokenRequired is returned when Open is called without a bot token.
var errTokenRequired = errors.New("discord token must be provided")

// Bot owns the gateway session and the adapters built on it.
type Bot struct {
	// session is the open gateway session.
	session *discordgo.Session
	// Messenger sends direct messages.
	Messenger *Messenger
	// Voice plays the cue in voice channels; nil when no cue file is configured.
	Voice *Voice
}

// Open connects to the gateway and builds the adapters from settings.
func Open(ctx context.Context, settings config.Discord) (*Bot, error) {
	if settings.Token == "" {
		return nil, errTokenRequired
	}

	ctx = logger.WithName(ctx, "discord")

	session, err := discordgo.New("Bot " + settings.Token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}

	session.UserAgent = version.UserAgent()
	session.Identify.Intents = intents
	session.StateEnabled = true

	session.AddHandler(func(_ *discordgo.Session, ready *discordgo.Ready) {
		logger.InfoKV(ctx, "Discord session ready", "user", ready.User.Username, "guilds", len(ready.Guilds))
	})

	if err = session.Open(); err != nil {
		return nil, fmt.Errorf("open discord session: %w", err)
	}

	bot := &Bot{
		session:   session,
		Messenger: NewMessenger(session, settings.DirectMessagesPerSecond),
	}

	if settings.CueFile == "" {
		logger.Info(ctx, "No cue file configured, voice delivery disabled")

		return bot, nil
	}

	cue, err := LoadCue(settings.CueFile)
	if err != nil {
		_ = session.Close()

		return nil, fmt.Errorf("load voice cue: %w", err)
	}

	bot.Voice = NewVoice(session.State, func() string { return session.State.User.ID }, sessionJoiner(session), cue, settings.VoiceTimeout)

	logger.InfoKV(ctx, "Voice delivery enabled", "cue_file", settings.CueFile, "frames", len(cue))

	return bot, nil
}

// Close disconnects from the gateway.
func (b *Bot) Close() error {
	if err := b.session.Close(); err != nil {
		return fmt.Errorf("close discord session: %w", err)
	}

	return nil
}
