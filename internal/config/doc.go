// Package config defines the settings shared by alarm-server and alarm-client
// and provides helpers to load, validate and save them in YAML format.
//
// Validate fills in defaults (check interval, timeouts, delivery pool size,
// platform rate limits), so callers can rely on every duration being positive.
package config
