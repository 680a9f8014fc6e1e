package integration

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/alarm-bot/internal/config"
	pb "github.com/oshokin/alarm-bot/internal/pb/v1"
	"github.com/oshokin/alarm-bot/internal/service/checker"
)

// TestChecker_PollsAndReturnsOnCancel runs the watcher against a live server and cancels it.
func TestChecker_PollsAndReturnsOnCancel(t *testing.T) {
	t.Parallel()

	addr := reservePort(t)

	stop := startGRPC(t, addr, "")
	defer stop()

	c := dial(t, addr)

	// Give the watcher something to report.
	_, err := c.ScheduleAlarm(context.Background(), &pb.ScheduleAlarmRequest{
		TimeExpression: "in 1 hour",
		OwnerId:        "watcher",
	})
	require.NoError(t, err)

	// Create temporary config file for the watcher.
	cfgPath := filepath.Join(t.TempDir(), "watch-settings.yaml")
	require.NoError(t, config.Save(cfgPath, &config.Config{
		ServerAddress: addr,
		Timeout:       1 * time.Second,
	}))

	runCtx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() {
		done <- checker.Run(runCtx, &checker.Options{
			ConfigPath:   cfgPath,
			OwnerID:      "watcher",
			PollInterval: 50 * time.Millisecond,
		})
	}()

	// Wait for the watcher to poll a few times, then cancel.
	time.Sleep(200 * time.Millisecond)
	cancel()

	// Verify the watcher exits cleanly on cancellation.
	require.NoError(t, <-done)
}
