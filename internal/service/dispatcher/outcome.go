package dispatcher

// Channel names a notification channel.
type Channel string

const (
	// ChannelVoice plays an audio cue in the owner's voice channel.
	ChannelVoice Channel = "voice"
	// ChannelDirectMessage sends a private message to the owner.
	ChannelDirectMessage Channel = "direct_message"
)

// Status is the result of one delivery attempt.
type Status string

const (
	// StatusDelivered means the channel accepted the notification.
	StatusDelivered Status = "delivered"
	// StatusSkipped means the channel was not applicable, e.g. the owner is not in voice.
	StatusSkipped Status = "skipped"
	// StatusFailed means the attempt errored.
	StatusFailed Status = "failed"
)

// Outcome is the result of one channel.
type Outcome struct {
	// Channel is the channel attempted.
	Channel Channel
	// Status is how the attempt ended.
	Status Status
	// Err explains a skipped or failed attempt.
	Err error
}

// Report collects the outcome of every channel for one alarm.
type Report struct {
	// AlarmID is the delivered alarm.
	AlarmID string
	// Voice is the voice channel outcome.
	Voice Outcome
	// Direct is the direct-message outcome.
	Direct Outcome
}

// Delivered reports whether at least one channel delivered the alarm.
func (r Report) Delivered() bool {
	return r.Voice.Status == StatusDelivered || r.Direct.Status == StatusDelivered
}

func delivered(channel Channel) Outcome {
	return Outcome{Channel: channel, Status: StatusDelivered}
}

func skipped(channel Channel, reason error) Outcome {
	return Outcome{Channel: channel, Status: StatusSkipped, Err: reason}
}

func failed(channel Channel, err error) Outcome {
	return Outcome{Channel: channel, Status: StatusFailed, Err: err}
}
