// Package checker implements the watch command of alarm-client.
//
// It polls the owner's pending alarms at a fixed interval and logs alarms
// as they appear and as they leave the queue (fired or cancelled).
package checker
