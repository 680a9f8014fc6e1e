package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/alarm-bot/internal/logger"
)

// Config holds settings shared by the alarm-server and alarm-client binaries.
type Config struct {
	// ServerAddress is the gRPC address clients dial and the server derives its port from.
	ServerAddress string `yaml:"server_addr"`
	// MetricsAddress is the optional HTTP listen address for /metrics and /healthz.
	MetricsAddress string `yaml:"metrics_addr,omitempty"`
	// LogLevel is the minimum zap level name (debug, info, warn, error).
	LogLevel string `yaml:"log_level,omitempty"`
	// Timeout is the duration for network operations and RPC calls.
	Timeout time.Duration `yaml:"timeout,omitempty"`
	// CheckInterval is how often the scheduler scans for due alarms.
	CheckInterval time.Duration `yaml:"check_interval,omitempty"`
	// DefaultMessage is shown at delivery when an alarm has no message.
	DefaultMessage string `yaml:"default_message,omitempty"`
	// MaxConcurrentDeliveries bounds how many alarms are dispatched in parallel.
	MaxConcurrentDeliveries int `yaml:"max_concurrent_deliveries,omitempty"`
	// Discord configures the delivery adapters. Delivery is disabled without a token.
	Discord Discord `yaml:"discord,omitempty"`
	// NATS configures lifecycle event publishing. Publishing is disabled without a URL.
	NATS NATS `yaml:"nats,omitempty"`
}

// Discord holds chat platform credentials and voice playback settings.
type Discord struct {
	// Token is the bot token, without the "Bot " prefix.
	Token string `yaml:"token,omitempty"`
	// CueFile is the DCA-encoded Opus file played in voice channels.
	CueFile string `yaml:"cue_file,omitempty"`
	// DirectMessagesPerSecond throttles direct messages sent to the platform.
	DirectMessagesPerSecond float64 `yaml:"dm_rate_per_second,omitempty"`
	// VoiceTimeout bounds joining a voice channel and streaming the cue.
	VoiceTimeout time.Duration `yaml:"voice_timeout,omitempty"`
}

// NATS holds the event bus connection settings.
type NATS struct {
	// URL is the NATS server URL, e.g. nats://127.0.0.1:4222.
	URL string `yaml:"url,omitempty"`
	// Subject is the subject prefix lifecycle events are published under.
	Subject string `yaml:"subject,omitempty"`
}

const (
	// DefaultConfigFilename is the default filename for connection settings.
	DefaultConfigFilename = "alarm-bot-settings.yaml"

	// DefaultTimeout is the default duration for network operations.
	DefaultTimeout = 5 * time.Second

	// DefaultCheckInterval is the default scheduler tick.
	DefaultCheckInterval = time.Second

	// DefaultMaxConcurrentDeliveries is the default size of the delivery pool.
	DefaultMaxConcurrentDeliveries = 8

	// DefaultLogLevel is used when log_level is empty.
	DefaultLogLevel = "info"

	// DefaultDirectMessagesPerSecond keeps well under the platform's global rate limit.
	DefaultDirectMessagesPerSecond = 5

	// DefaultVoiceTimeout bounds a single voice cue attempt.
	DefaultVoiceTimeout = 30 * time.Second

	// DefaultNATSSubject is the subject prefix for lifecycle events.
	DefaultNATSSubject = "alarms"

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errServerSocketRequired is returned when server address is missing.
	errServerSocketRequired = errors.New("server address must be provided")
	// errUnknownLogLevel is returned when log_level cannot be parsed.
	errUnknownLogLevel = errors.New("unknown log level")
	// errNegativeValue is returned for negative intervals, limits and rates.
	errNegativeValue = errors.New("value must not be negative")
)

// Load reads configuration from the provided path and validates essential fields.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes Config to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions, the file may carry the bot token.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the provided settings for required fields and fills in defaults.
//
//nolint:cyclop // Flat list of independent checks.
func Validate(settings *Config) error {
	if settings == nil {
		return errConfigIsNotSet
	}

	if settings.ServerAddress == "" {
		return errServerSocketRequired
	}

	if _, err := net.ResolveTCPAddr("tcp", settings.ServerAddress); err != nil {
		return fmt.Errorf("invalid server socket: %w", err)
	}

	if settings.MetricsAddress != "" {
		if _, _, err := net.SplitHostPort(settings.MetricsAddress); err != nil {
			return fmt.Errorf("invalid metrics address: %w", err)
		}
	}

	if settings.LogLevel == "" {
		settings.LogLevel = DefaultLogLevel
	}

	if _, ok := logger.ParseLogLevel(settings.LogLevel); !ok {
		return fmt.Errorf("%w: %q", errUnknownLogLevel, settings.LogLevel)
	}

	if settings.Timeout < 0 || settings.CheckInterval < 0 || settings.MaxConcurrentDeliveries < 0 ||
		settings.Discord.DirectMessagesPerSecond < 0 || settings.Discord.VoiceTimeout < 0 {
		return errNegativeValue
	}

	if settings.Timeout == 0 {
		settings.Timeout = DefaultTimeout
	}

	if settings.CheckInterval == 0 {
		settings.CheckInterval = DefaultCheckInterval
	}

	if settings.MaxConcurrentDeliveries == 0 {
		settings.MaxConcurrentDeliveries = DefaultMaxConcurrentDeliveries
	}

	if settings.Discord.DirectMessagesPerSecond == 0 {
		settings.Discord.DirectMessagesPerSecond = DefaultDirectMessagesPerSecond
	}

	if settings.Discord.VoiceTimeout == 0 {
		settings.Discord.VoiceTimeout = DefaultVoiceTimeout
	}

	if settings.NATS.URL == "" {
		return nil
	}

	if _, err := url.ParseRequestURI(settings.NATS.URL); err != nil {
		return fmt.Errorf("invalid NATS URL: %w", err)
	}

	if settings.NATS.Subject == "" {
		settings.NATS.Subject = DefaultNATSSubject
	}

	return nil
}
