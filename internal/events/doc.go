// Package events publishes alarm lifecycle events.
//
// Events are JSON documents published to NATS under "<subject>.<kind>",
// e.g. "alarms.fired". When no NATS URL is configured the Nop publisher
// discards them.
package events
