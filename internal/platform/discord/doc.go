// Package discord implements the delivery adapters on top of discordgo.
//
// Messenger sends direct messages through a rate limiter. Voice resolves the
// owner's voice presence from the gateway state cache and streams a
// pre-encoded Opus cue (DCA format) into the channel.
package discord
