// Package alarm contains core domain types for scheduled notifications.
//
// It defines Alarm (a one-shot notification with owner and due instant),
// Recipient (the opaque delivery context supplied by the caller), Summary
// (the list projection) and VoiceDestination (a resolved voice channel).
package alarm
