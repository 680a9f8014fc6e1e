// Package alarm holds pending alarms in memory.
//
// The Registry is the only shared mutable state of the scheduler: schedule,
// cancel and trigger-removal are mutually exclusive, so an alarm is removed
// at most once and a racing cancel and trigger never both succeed.
package alarm
