//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	pb "github.com/oshokin/alarm-bot/internal/pb/v1"
)

// TestDial_ValidatesAddress verifies that Dial rejects empty addresses.
func TestDial_ValidatesAddress(t *testing.T) {
	t.Parallel()

	c, err := Dial(context.Background(), "")
	require.Error(t, err)
	require.Nil(t, c)
}

// TestClient_callContext checks timeout vs cancel-only behavior of callContext.
func TestClient_callContext(t *testing.T) {
	t.Parallel()

	c := &Client{
		callTimeout: 0,
	}

	ctx, cancel := c.callContext(context.Background())
	cancel()

	require.NotNil(t, ctx)

	c.callTimeout = 10 * time.Millisecond

	ctx, cancel = c.callContext(context.Background())
	defer cancel()

	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	require.WithinDuration(t, time.Now().Add(10*time.Millisecond), deadline, 30*time.Millisecond)
}

// TestClient_ValidatesArguments asserts that incomplete requests never reach the wire.
func TestClient_ValidatesArguments(t *testing.T) {
	t.Parallel()

	var (
		c   = new(Client)
		ctx = context.Background()
	)

	_, err := c.ScheduleAlarm(ctx, &pb.ScheduleAlarmRequest{OwnerId: "u1"})
	require.ErrorIs(t, err, errTimeExpressionRequired)

	_, err = c.ScheduleAlarm(ctx, &pb.ScheduleAlarmRequest{TimeExpression: "14:00"})
	require.ErrorIs(t, err, errOwnerRequired)

	_, err = c.CancelAlarm(ctx, "", "u1")
	require.ErrorIs(t, err, errAlarmIDRequired)

	_, err = c.CancelAlarm(ctx, "alarm_1", "")
	require.ErrorIs(t, err, errOwnerRequired)

	_, err = c.ListAlarms(ctx, "")
	require.ErrorIs(t, err, errOwnerRequired)
}
