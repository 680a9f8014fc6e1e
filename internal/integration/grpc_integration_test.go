package integration

import (
	"context"
	"io"
	"net"
	"net/http"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/oshokin/alarm-bot/internal/config"
	pb "github.com/oshokin/alarm-bot/internal/pb/v1"
	"github.com/oshokin/alarm-bot/internal/service/common"
	"github.com/oshokin/alarm-bot/internal/service/server"
)

// startGRPC starts alarm-server with a temporary config and no delivery
// adapters. Returns a stop function to gracefully shutdown the server.
func startGRPC(t *testing.T, addr, metricsAddr string) (stop func()) {
	t.Helper()

	// Create cancellable context for server lifecycle.
	ctx, cancel := context.WithCancel(context.Background())
	cfgPath := filepath.Join(t.TempDir(), "settings.yaml")

	// Create temporary configuration file.
	require.NoError(
		t,
		config.Save(cfgPath, &config.Config{
			ServerAddress:  addr,
			MetricsAddress: metricsAddr,
			Timeout:        5 * time.Second,
			CheckInterval:  100 * time.Millisecond,
		}),
	)

	done := make(chan error, 1)

	// Start server in background goroutine.
	go func() {
		done <- server.Run(ctx, &server.Options{ConfigPath: cfgPath, AllowMultiple: true})
	}()

	// Wait briefly for server to start listening.
	time.Sleep(150 * time.Millisecond)

	return func() {
		cancel()

		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Error("server did not stop")
		}
	}
}

// reservePort returns a free loopback address.
func reservePort(t *testing.T) string {
	t.Helper()

	//nolint:noctx // Test code needs simple net.Listen for port allocation.
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	addr := l.Addr().String()
	require.NoError(t, l.Close())

	return addr
}

// dial connects a client to addr and closes it with the test.
func dial(t *testing.T, addr string) *common.Client {
	t.Helper()

	c, err := common.Dial(context.Background(), addr, common.WithCallTimeout(3*time.Second))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = c.Close()
	})

	return c
}

// TestGRPC_ScheduleListCancel exercises the full alarm lifecycle over the real server.
func TestGRPC_ScheduleListCancel(t *testing.T) {
	t.Parallel()

	addr := reservePort(t)

	stop := startGRPC(t, addr, "")
	defer stop()

	ctx := context.Background()
	c := dial(t, addr)

	// Schedule one alarm per language.
	english, err := c.ScheduleAlarm(ctx, &pb.ScheduleAlarmRequest{
		TimeExpression: "in 2 hours",
		OwnerId:        "alice",
		Recipient:      &pb.Recipient{GuildId: "g1", ChannelId: "c1"},
		Message:        "stand up",
	})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(english.GetId(), "alarm_"))
	require.Equal(t, "✅ Alarm set! I'll notify you in 2 hours", english.GetConfirmation())
	require.Equal(t, "en", english.GetLanguage())

	portuguese, err := c.ScheduleAlarm(ctx, &pb.ScheduleAlarmRequest{
		TimeExpression: "daqui a 30 minutos",
		OwnerId:        "alice",
	})
	require.NoError(t, err)
	require.Equal(t, "✅ Alarme definido! Vou te avisar em 30 minutes", portuguese.GetConfirmation())
	require.Equal(t, "pt", portuguese.GetLanguage())

	// Listing is owner scoped and ordered by due time.
	alarms, err := c.ListAlarms(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, alarms, 2)
	require.Equal(t, portuguese.GetId(), alarms[0].GetId())
	require.Equal(t, "Time is up!", alarms[0].GetMessage())
	require.Equal(t, english.GetId(), alarms[1].GetId())
	require.Equal(t, "stand up", alarms[1].GetMessage())

	others, err := c.ListAlarms(ctx, "bob")
	require.NoError(t, err)
	require.Empty(t, others)

	// Cancellation by someone else looks exactly like an unknown id.
	cancelled, err := c.CancelAlarm(ctx, english.GetId(), "bob")
	require.NoError(t, err)
	require.False(t, cancelled)

	cancelled, err = c.CancelAlarm(ctx, english.GetId(), "alice")
	require.NoError(t, err)
	require.True(t, cancelled)

	cancelled, err = c.CancelAlarm(ctx, english.GetId(), "alice")
	require.NoError(t, err)
	require.False(t, cancelled)

	alarms, err = c.ListAlarms(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, alarms, 1)
}

// TestGRPC_InvalidExpression verifies localized parse failures map to InvalidArgument.
func TestGRPC_InvalidExpression(t *testing.T) {
	t.Parallel()

	addr := reservePort(t)

	stop := startGRPC(t, addr, "")
	defer stop()

	c := dial(t, addr)

	_, err := c.ScheduleAlarm(context.Background(), &pb.ScheduleAlarmRequest{
		TimeExpression: "em breve minutos",
		OwnerId:        "alice",
	})
	require.Error(t, err)
	require.Equal(t, codes.InvalidArgument, status.Code(err))
	require.ErrorContains(t, err, "Formato de tempo inválido")

	_, err = c.ScheduleAlarm(context.Background(), &pb.ScheduleAlarmRequest{
		TimeExpression: "25:00",
		OwnerId:        "alice",
	})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
	require.ErrorContains(t, err, "Invalid time format")
}

// TestGRPC_AlarmFires schedules a short alarm and waits for the scheduler to
// take it out of the registry and report the delivery attempt.
func TestGRPC_AlarmFires(t *testing.T) {
	t.Parallel()

	addr := reservePort(t)
	metricsAddr := reservePort(t)

	stop := startGRPC(t, addr, metricsAddr)
	defer stop()

	ctx := context.Background()
	c := dial(t, addr)

	_, err := c.ScheduleAlarm(ctx, &pb.ScheduleAlarmRequest{
		TimeExpression: "1s",
		OwnerId:        "alice",
	})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		alarms, listErr := c.ListAlarms(ctx, "alice")

		return listErr == nil && len(alarms) == 0
	}, 5*time.Second, 50*time.Millisecond)

	// Without a token both channels are disabled, so the attempt is recorded as skipped.
	require.Eventually(t, func() bool {
		body := scrape(t, "http://"+metricsAddr+"/metrics")

		return strings.Contains(body, "alarm_bot_alarms_fired_total 1") &&
			strings.Contains(body, `alarm_bot_deliveries_total{channel="direct_message",status="skipped"} 1`)
	}, 5*time.Second, 50*time.Millisecond)
}

// scrape fetches url and returns the body, or an empty string on failure.
func scrape(t *testing.T, url string) string {
	t.Helper()

	request, err := http.NewRequestWithContext(context.Background(), http.MethodGet, url, nil)
	require.NoError(t, err)

	response, err := http.DefaultClient.Do(request)
	if err != nil {
		return ""
	}

	defer func() {
		_ = response.Body.Close()
	}()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return ""
	}

	return string(body)
}
