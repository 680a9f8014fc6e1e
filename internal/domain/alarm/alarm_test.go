package alarm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestRecipientClone verifies that Clone returns a copy and handles nil safely.
func TestRecipientClone(t *testing.T) {
	t.Parallel()
	require.Nil(t, (*Recipient)(nil).Clone())

	r := &Recipient{
		GuildID:   "guild-1",
		ChannelID: "channel-1",
		UserID:    "user-1",
	}

	c := r.Clone()

	require.Equal(t, r, c)
	require.NotSame(t, r, c)
}

// TestAlarmClone verifies that Alarm.Clone copies every field into a new value.
func TestAlarmClone(t *testing.T) {
	t.Parallel()
	require.Nil(t, (*Alarm)(nil).Clone())

	now := time.Now().Truncate(time.Second)
	a := &Alarm{
		ID:        "alarm_1",
		OwnerID:   "user-1",
		Message:   DefaultMessage,
		Recipient: Recipient{GuildID: "guild-1", ChannelID: "channel-1"},
		DueAt:     now.Add(time.Minute),
		CreatedAt: now,
	}

	c := a.Clone()
	require.Equal(t, a, c)
	require.NotSame(t, a, c)

	c.Recipient.GuildID = "other"
	require.Equal(t, "guild-1", a.Recipient.GuildID)
}

// TestAlarmDeliveryUserID prefers the recipient user and falls back to the owner.
func TestAlarmDeliveryUserID(t *testing.T) {
	t.Parallel()

	a := &Alarm{OwnerID: "123"}
	require.Equal(t, "123", a.DeliveryUserID())

	a = &Alarm{OwnerID: "root@host", Recipient: Recipient{UserID: "456"}}
	require.Equal(t, "456", a.DeliveryUserID())
}

// TestAlarmIsDue checks the boundary: an alarm is due exactly at DueAt.
func TestAlarmIsDue(t *testing.T) {
	t.Parallel()

	due := time.Date(2026, 10, 18, 14, 0, 0, 0, time.Local)
	a := &Alarm{DueAt: due}

	require.False(t, a.IsDue(due.Add(-time.Nanosecond)))
	require.True(t, a.IsDue(due))
	require.True(t, a.IsDue(due.Add(time.Second)))

	s := a.Summary()
	require.Equal(t, due, s.DueAt)
}
