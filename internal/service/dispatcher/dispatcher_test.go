package dispatcher

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	domain "github.com/oshokin/alarm-bot/internal/domain/alarm"
	"github.com/oshokin/alarm-bot/internal/metrics"
)

var (
	errTestLocate = errors.New("test locate error")
	errTestPlay   = errors.New("test play error")
	errTestSend   = errors.New("test send error")
)

// fakeVoice is a scripted VoiceChannel.
type fakeVoice struct {
	// destination is returned from Locate.
	destination *domain.VoiceDestination
	// locateErr is returned from Locate.
	locateErr error
	// playErr is returned from Play.
	playErr error
	// panicOnPlay makes Play panic.
	panicOnPlay bool
	// played records destinations passed to Play.
	played []*domain.VoiceDestination
}

func (f *fakeVoice) Locate(context.Context, *domain.Alarm) (*domain.VoiceDestination, error) {
	return f.destination, f.locateErr
}

func (f *fakeVoice) Play(_ context.Context, destination *domain.VoiceDestination) error {
	if f.panicOnPlay {
		panic("voice exploded")
	}

	f.played = append(f.played, destination)

	return f.playErr
}

// fakeMessenger records direct messages.
type fakeMessenger struct {
	// mu guards sent.
	mu sync.Mutex
	// sent maps user id to the messages it received.
	sent map[string][]string
	// err is returned from SendDirect.
	err error
}

func (f *fakeMessenger) SendDirect(_ context.Context, userID, content string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return f.err
	}

	if f.sent == nil {
		f.sent = make(map[string][]string)
	}

	f.sent[userID] = append(f.sent[userID], content)

	return nil
}

// testAlarm returns an alarm owned by u1.
func testAlarm() *domain.Alarm {
	return &domain.Alarm{
		ID:        "alarm_1",
		OwnerID:   "u1",
		Message:   "Time is up!",
		Recipient: domain.Recipient{GuildID: "g1", ChannelID: "c1"},
	}
}

// joinable is a voice destination the bot may connect to.
var joinable = &domain.VoiceDestination{GuildID: "g1", ChannelID: "v1", Joinable: true}

// TestDeliver_BothChannels verifies voice success does not skip the direct message.
func TestDeliver_BothChannels(t *testing.T) {
	t.Parallel()

	var (
		voice     = &fakeVoice{destination: joinable}
		messenger = new(fakeMessenger)
	)

	report := New(voice, messenger).Deliver(context.Background(), testAlarm())

	require.Equal(t, "alarm_1", report.AlarmID)
	require.Equal(t, StatusDelivered, report.Voice.Status)
	require.Equal(t, StatusDelivered, report.Direct.Status)
	require.True(t, report.Delivered())
	require.Equal(t, []*domain.VoiceDestination{joinable}, voice.played)
	require.Equal(t, []string{"🔔 **Alarm!** Time is up!"}, messenger.sent["u1"])
}

// TestDeliver_RecipientUser verifies the direct message goes to the
// recipient's platform user, not to the owner id.
func TestDeliver_RecipientUser(t *testing.T) {
	t.Parallel()

	messenger := new(fakeMessenger)

	alarm := testAlarm()
	alarm.OwnerID = "root@host"
	alarm.Recipient.UserID = "123456789012345678"

	report := New(nil, messenger).Deliver(context.Background(), alarm)

	require.Equal(t, StatusDelivered, report.Direct.Status)
	require.Equal(t, []string{"🔔 **Alarm!** Time is up!"}, messenger.sent["123456789012345678"])
	require.Empty(t, messenger.sent["root@host"])
}

// TestDeliver_VoiceOutcomes covers every voice branch; the direct message is always sent.
func TestDeliver_VoiceOutcomes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		voice  *fakeVoice
		status Status
		err    error
	}{
		{name: "not in voice", voice: &fakeVoice{}, status: StatusSkipped, err: errNotInVoice},
		{
			name:   "not joinable",
			voice:  &fakeVoice{destination: &domain.VoiceDestination{GuildID: "g1", ChannelID: "v1"}},
			status: StatusSkipped,
			err:    errVoiceNotJoinable,
		},
		{name: "disabled", voice: &fakeVoice{locateErr: ErrChannelDisabled}, status: StatusSkipped, err: ErrChannelDisabled},
		{name: "locate fails", voice: &fakeVoice{locateErr: errTestLocate}, status: StatusFailed, err: errTestLocate},
		{name: "play fails", voice: &fakeVoice{destination: joinable, playErr: errTestPlay}, status: StatusFailed, err: errTestPlay},
		{name: "play panics", voice: &fakeVoice{destination: joinable, panicOnPlay: true}, status: StatusFailed, err: errPanicked},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			messenger := new(fakeMessenger)

			report := New(tc.voice, messenger).Deliver(context.Background(), testAlarm())

			require.Equal(t, ChannelVoice, report.Voice.Channel)
			require.Equal(t, tc.status, report.Voice.Status)
			require.ErrorIs(t, report.Voice.Err, tc.err)
			require.Equal(t, StatusDelivered, report.Direct.Status)
			require.True(t, report.Delivered())
			require.Len(t, messenger.sent["u1"], 1)
		})
	}
}

// TestDeliver_DirectFailure verifies a failed direct message is reported, not raised.
func TestDeliver_DirectFailure(t *testing.T) {
	t.Parallel()

	report := New(&fakeVoice{}, &fakeMessenger{err: errTestSend}).Deliver(context.Background(), testAlarm())

	require.Equal(t, StatusSkipped, report.Voice.Status)
	require.Equal(t, StatusFailed, report.Direct.Status)
	require.ErrorIs(t, report.Direct.Err, errTestSend)
	require.False(t, report.Delivered())
}

// TestDeliver_NoAdapters verifies nil collaborators are treated as disabled.
func TestDeliver_NoAdapters(t *testing.T) {
	t.Parallel()

	report := New(nil, nil).Deliver(context.Background(), testAlarm())

	require.Equal(t, StatusSkipped, report.Voice.Status)
	require.Equal(t, StatusSkipped, report.Direct.Status)
	require.ErrorIs(t, report.Direct.Err, ErrChannelDisabled)
	require.False(t, report.Delivered())
}

// TestDeliver_RecordsMetrics verifies outcomes reach the metrics registry.
func TestDeliver_RecordsMetrics(t *testing.T) {
	t.Parallel()

	m := metrics.New()

	New(&fakeVoice{}, new(fakeMessenger), WithMetrics(m)).Deliver(context.Background(), testAlarm())

	families, err := m.Registry().Gather()
	require.NoError(t, err)

	counts := make(map[string]float64)

	for _, family := range families {
		if family.GetName() != "alarm_bot_deliveries_total" {
			continue
		}

		for _, metric := range family.GetMetric() {
			var channel, status string

			for _, label := range metric.GetLabel() {
				switch label.GetName() {
				case "channel":
					channel = label.GetValue()
				case "status":
					status = label.GetValue()
				}
			}

			counts[channel+"/"+status] = metric.GetCounter().GetValue()
		}
	}

	require.Equal(t, map[string]float64{
		"voice/skipped":            1,
		"direct_message/delivered": 1,
	}, counts)
}

// TestDirectMessage verifies the notification text.
func TestDirectMessage(t *testing.T) {
	t.Parallel()

	require.Equal(t, "🔔 **Alarm!** stand up", DirectMessage("stand up"))
}
