// Package version exposes build metadata for the project.
//
// Variables Version, Commit, and BuildTime are injected at build time via
// Go ldflags. Short and Full render the version for CLI output, UserAgent
// names the bot towards Discord and NATS.
package version
