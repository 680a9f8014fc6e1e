package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/alarm-bot/internal/config"
	"github.com/oshokin/alarm-bot/internal/service/server"
	"github.com/oshokin/alarm-bot/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// logLevel overrides log_level from the configuration file.
	logLevel string
	// allowMultiple disables the single instance check.
	allowMultiple bool

	// rootCmd represents the base command for running the alarm server.
	rootCmd = &cobra.Command{
		Use:   "alarm-server [listen-address]",
		Short: "Run the alarm scheduler, its gRPC API and Discord delivery.",
		Long: `Starts the alarm server: parses time expressions, keeps pending alarms in memory
and delivers them through Discord when they are due (voice cue, then direct message).

The server listens on the specified address or uses settings from configuration file.
Only the port from server_addr config is used for listening (e.g., :8080).
Listen address can be provided as argument to override config (e.g., :9090, 0.0.0.0:8080).
Pending alarms are not persisted and are lost when the server stops.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			// Use listen address argument if provided, otherwise rely on config.
			var listenAddress string
			if len(args) > 0 {
				listenAddress = args[0]
			}

			options := &server.Options{
				ConfigPath:    configPath,
				ListenAddress: listenAddress,
				LogLevel:      logLevel,
				AllowMultiple: allowMultiple,
			}

			return server.Run(ctx, options)
		},
	}
)

// Execute runs the alarm-server CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().StringVarP(&logLevel, "log-level", "l", "", "log level override (debug, info, warn, error)")
	rootCmd.Flags().BoolVar(&allowMultiple, "allow-multiple", false, "start even if another alarm-server is running")
}
