// Package humanize renders time-until-trigger durations for confirmations.
package humanize
