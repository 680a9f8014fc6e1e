package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/alarm-bot/internal/config"
	"github.com/oshokin/alarm-bot/internal/service/checker"
	"github.com/oshokin/alarm-bot/internal/service/client"
	"github.com/oshokin/alarm-bot/internal/version"
)

var (
	// options are shared by every subcommand.
	options client.Options
	// schedule holds the schedule subcommand flags.
	schedule client.ScheduleOptions
	// pollInterval is the watch polling interval.
	pollInterval = checker.DefaultPollInterval

	// rootCmd represents the base command talking to alarm-server.
	rootCmd = &cobra.Command{
		Use:   "alarm-client",
		Short: "Schedule, list and cancel alarms on an alarm server.",
		Long: `Command line client for alarm-server.

Alarms belong to an owner id, username@hostname unless --owner is given.
Server address and timeout are read from the configuration file,
--server overrides the address.`,
		SilenceUsage: true,
	}

	// scheduleCmd creates an alarm.
	scheduleCmd = &cobra.Command{
		Use:   "schedule <time-expression>",
		Short: "Schedule an alarm.",
		Long: `Schedule an alarm from a free-form time expression.

Accepted forms: 14:30, 2:30 PM, 1h30m, 45s, "in 5 minutes", "in half an hour",
"daqui a 10 minutos", "em uma hora e meia".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schedule.TimeExpression = args[0]

			return client.Schedule(cmd.Context(), &options, &schedule)
		},
	}

	// cancelCmd cancels an alarm by id.
	cancelCmd = &cobra.Command{
		Use:   "cancel <alarm-id>",
		Short: "Cancel one of your pending alarms.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return client.Cancel(cmd.Context(), &options, args[0])
		},
	}

	// listCmd prints pending alarms.
	listCmd = &cobra.Command{
		Use:   "list",
		Short: "List your pending alarms.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return client.List(cmd.Context(), &options)
		},
	}

	// watchCmd polls pending alarms until interrupted.
	watchCmd = &cobra.Command{
		Use:   "watch",
		Short: "Log your alarms as they are added and leave the queue.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return checker.Run(cmd.Context(), &checker.Options{
				ConfigPath:    options.ConfigPath,
				ServerAddress: options.ServerAddress,
				OwnerID:       options.OwnerID,
				PollInterval:  pollInterval,
			})
		},
	}
)

// Execute runs the alarm-client CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	// Setup graceful shutdown handling.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&options.ConfigPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	flags.StringVarP(&options.ServerAddress, "server", "s", "", "server address override, e.g. 127.0.0.1:8080")
	flags.StringVarP(&options.OwnerID, "owner", "o", "", "owner id, defaults to username@hostname")

	scheduleCmd.Flags().StringVarP(&schedule.Message, "message", "m", "", "message shown when the alarm fires")
	scheduleCmd.Flags().StringVar(&schedule.GuildID, "guild", "", "Discord server id used to find your voice channel")
	scheduleCmd.Flags().StringVar(&schedule.ChannelID, "channel", "", "Discord text channel id the alarm relates to")
	scheduleCmd.Flags().StringVarP(&schedule.UserID, "user", "u", "", "Discord user id to notify, defaults to the owner id")

	watchCmd.Flags().DurationVarP(&pollInterval, "interval", "i", checker.DefaultPollInterval, "polling interval")

	rootCmd.AddCommand(scheduleCmd, cancelCmd, listCmd, watchCmd)
}
