package checker

import (
	"context"
	"fmt"
	"time"

	"github.com/oshokin/alarm-bot/internal/config"
	"github.com/oshokin/alarm-bot/internal/logger"
	pb "github.com/oshokin/alarm-bot/internal/pb/v1"
	"github.com/oshokin/alarm-bot/internal/service/common"
)

// Options controls the watch polling behavior and configuration.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// ServerAddress provides an optional gRPC server address override.
	ServerAddress string
	// OwnerID is the owner whose alarms are watched; defaults to username@hostname.
	OwnerID string
	// PollInterval defines the interval between checks.
	PollInterval time.Duration
}

// DefaultPollInterval defines the polling interval when none is given.
const DefaultPollInterval = 5 * time.Second

// lister is the part of common.Client the watcher uses.
type lister interface {
	ListAlarms(ctx context.Context, ownerID string) ([]*pb.AlarmSummary, error)
}

// Run polls the owner's alarms until the context is cancelled.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "alarm-watch")

	// Load settings from configuration file.
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultPollInterval
	}

	// Determine server address: command line argument overrides config.
	serverAddress := cfg.ServerAddress
	if opts.ServerAddress != "" {
		serverAddress = opts.ServerAddress
	}

	ownerID := opts.OwnerID
	if ownerID == "" {
		if ownerID, err = common.DefaultOwnerID(); err != nil {
			return fmt.Errorf("detect owner: %w", err)
		}
	}

	// Establish gRPC connection with timeout from configuration.
	client, err := common.Dial(ctx, serverAddress, common.WithCallTimeout(cfg.Timeout))
	if err != nil {
		return fmt.Errorf("dial server: %w", err)
	}

	// Ensure connection cleanup on function exit.
	defer func() {
		_ = client.Close()
	}()

	logger.InfoKV(ctx, "Watching alarms",
		"server_address", serverAddress,
		"owner_id", ownerID,
		"interval", opts.PollInterval.String(),
	)

	return watch(ctx, client, ownerID, opts.PollInterval)
}

// watch runs the polling loop over client.
func watch(ctx context.Context, client lister, ownerID string, interval time.Duration) error {
	known := make(map[string]*pb.AlarmSummary)

	// Check once before waiting for the first tick.
	known = checkAlarms(ctx, client, ownerID, known)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "Context canceled, exiting")
			return nil
		case <-ticker.C:
			known = checkAlarms(ctx, client, ownerID, known)
		}
	}
}

// checkAlarms fetches the pending alarms, logs the difference to known and
// returns the new snapshot. On error the previous snapshot is kept.
func checkAlarms(
	ctx context.Context,
	client lister,
	ownerID string,
	known map[string]*pb.AlarmSummary,
) map[string]*pb.AlarmSummary {
	alarms, err := client.ListAlarms(ctx, ownerID)
	if err != nil {
		logger.ErrorKV(ctx, "List alarms failed", "error", err)

		return known
	}

	current := make(map[string]*pb.AlarmSummary, len(alarms))

	for _, alarm := range alarms {
		current[alarm.GetId()] = alarm

		if _, seen := known[alarm.GetId()]; !seen {
			logger.InfoKV(ctx, "Alarm pending",
				"alarm_id", alarm.GetId(),
				"due_at", alarm.GetDueAt().AsTime().Local().Format(time.DateTime),
				"message", alarm.GetMessage(),
			)
		}
	}

	for id, alarm := range known {
		if _, still := current[id]; still {
			continue
		}

		logger.InfoKV(ctx, "Alarm left the queue",
			"alarm_id", id,
			"due_at", alarm.GetDueAt().AsTime().Local().Format(time.DateTime),
		)
	}

	return current
}
