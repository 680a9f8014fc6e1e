package client

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/oshokin/alarm-bot/internal/config"
	"github.com/oshokin/alarm-bot/internal/logger"
	pb "github.com/oshokin/alarm-bot/internal/pb/v1"
	"github.com/oshokin/alarm-bot/internal/service/common"
)

// Options configures the connection shared by every client command.
type Options struct {
	// ConfigPath to YAML settings file, defaults to standard filename if empty.
	ConfigPath string

	// ServerAddress overrides server address from config when specified.
	ServerAddress string

	// OwnerID identifies the alarm owner; defaults to username@hostname.
	OwnerID string

	// Output receives command results, defaults to stdout.
	Output io.Writer
}

// ScheduleOptions describes the alarm to create.
type ScheduleOptions struct {
	// TimeExpression is the free-form time, e.g. "14:30" or "in 5 minutes".
	TimeExpression string
	// Message is shown at delivery; the server default applies when empty.
	Message string
	// GuildID is the Discord server used to find the owner's voice channel.
	GuildID string
	// ChannelID is the Discord text channel the request relates to.
	ChannelID string
	// UserID is the Discord user to notify; the owner id is used when empty.
	UserID string
}

// session is a connected client bound to an owner.
type session struct {
	// client is the dialed gRPC client.
	client *common.Client
	// ownerID is the resolved owner.
	ownerID string
	// output receives results.
	output io.Writer
}

// Schedule creates an alarm and prints the confirmation and id.
func Schedule(ctx context.Context, opts *Options, schedule *ScheduleOptions) error {
	ctx = logger.WithName(ctx, "alarm-client")

	s, err := connect(ctx, opts)
	if err != nil {
		return err
	}

	defer s.close()

	response, err := s.client.ScheduleAlarm(ctx, &pb.ScheduleAlarmRequest{
		TimeExpression: schedule.TimeExpression,
		OwnerId:        s.ownerID,
		Recipient: &pb.Recipient{
			GuildId:   schedule.GuildID,
			ChannelId: schedule.ChannelID,
			UserId:    schedule.UserID,
		},
		Message: schedule.Message,
	})
	if err != nil {
		return err
	}

	logger.DebugKV(ctx, "Alarm scheduled", "alarm_id", response.GetId(), "language", response.GetLanguage())

	_, err = fmt.Fprintf(s.output, "%s\nid: %s\ndue: %s\n",
		response.GetConfirmation(),
		response.GetId(),
		response.GetDueAt().AsTime().Local().Format(time.DateTime),
	)

	return err
}

// Cancel cancels an alarm the owner holds and reports whether it was removed.
func Cancel(ctx context.Context, opts *Options, id string) error {
	ctx = logger.WithName(ctx, "alarm-client")

	s, err := connect(ctx, opts)
	if err != nil {
		return err
	}

	defer s.close()

	cancelled, err := s.client.CancelAlarm(ctx, id, s.ownerID)
	if err != nil {
		return err
	}

	message := "Alarm cancelled."
	if !cancelled {
		message = "No pending alarm with that id belongs to you."
	}

	_, err = fmt.Fprintln(s.output, message)

	return err
}

// List prints the owner's pending alarms ordered by due time.
func List(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "alarm-client")

	s, err := connect(ctx, opts)
	if err != nil {
		return err
	}

	defer s.close()

	alarms, err := s.client.ListAlarms(ctx, s.ownerID)
	if err != nil {
		return err
	}

	return writeAlarms(s.output, alarms, time.Now())
}

// writeAlarms renders alarms as an aligned table.
func writeAlarms(w io.Writer, alarms []*pb.AlarmSummary, now time.Time) error {
	if len(alarms) == 0 {
		_, err := fmt.Fprintln(w, "No pending alarms.")

		return err
	}

	table := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	_, _ = fmt.Fprintln(table, "ID\tDUE\tIN\tMESSAGE")

	for _, alarm := range alarms {
		dueAt := alarm.GetDueAt().AsTime()

		_, _ = fmt.Fprintf(table, "%s\t%s\t%s\t%s\n",
			alarm.GetId(),
			dueAt.Local().Format(time.DateTime),
			dueAt.Sub(now).Round(time.Second),
			alarm.GetMessage(),
		)
	}

	return table.Flush()
}

// connect loads settings, resolves the owner and dials the server.
func connect(ctx context.Context, opts *Options) (*session, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	serverAddress := cfg.ServerAddress
	if opts.ServerAddress != "" {
		serverAddress = opts.ServerAddress
	}

	ownerID := opts.OwnerID
	if ownerID == "" {
		if ownerID, err = common.DefaultOwnerID(); err != nil {
			return nil, err
		}
	}

	output := opts.Output
	if output == nil {
		output = os.Stdout
	}

	client, err := common.Dial(ctx, serverAddress, common.WithCallTimeout(cfg.Timeout))
	if err != nil {
		return nil, err
	}

	logger.DebugKV(ctx, "Connected to alarm server", "server_address", serverAddress, "owner_id", ownerID)

	return &session{
		client:  client,
		ownerID: ownerID,
		output:  output,
	}, nil
}

func (s *session) close() {
	_ = s.client.Close()
}
