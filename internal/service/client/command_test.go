package client

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/oshokin/alarm-bot/internal/pb/v1"
)

// TestWriteAlarms verifies the table layout and the empty case.
func TestWriteAlarms(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 10, 13, 0, 0, 0, time.UTC)

	var buf bytes.Buffer

	err := writeAlarms(&buf, []*pb.AlarmSummary{
		{Id: "alarm_a", DueAt: timestamppb.New(now.Add(5 * time.Minute)), Message: "tea"},
		{Id: "alarm_b", DueAt: timestamppb.New(now.Add(90 * time.Minute)), Message: "Time is up!"},
	}, now)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	require.True(t, strings.HasPrefix(lines[0], "ID"))
	require.Contains(t, lines[1], "alarm_a")
	require.Contains(t, lines[1], "5m0s")
	require.Contains(t, lines[1], "tea")
	require.Contains(t, lines[2], "1h30m0s")

	buf.Reset()

	require.NoError(t, writeAlarms(&buf, nil, now))
	require.Equal(t, "No pending alarms.\n", buf.String())
}

// TestConnect_MissingConfig verifies a missing settings file is reported.
func TestConnect_MissingConfig(t *testing.T) {
	t.Parallel()

	_, err := connect(t.Context(), &Options{ConfigPath: t.TempDir() + "/missing.yaml"})
	require.Error(t, err)
}
