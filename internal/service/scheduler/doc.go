// Package scheduler owns the alarm registry and runs the periodic scan that
// fires due alarms.
//
// Caller-facing operations (Schedule, Cancel, List) go straight to the
// registry. Run ticks at a fixed interval; every tick atomically removes the
// due alarms and hands each one to a bounded pool of delivery workers, so a
// slow delivery never holds up the scan.
package scheduler
