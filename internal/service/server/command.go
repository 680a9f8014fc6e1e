package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	ps "github.com/mitchellh/go-ps"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	api "github.com/oshokin/alarm-bot/internal/api/grpc/alarm"
	"github.com/oshokin/alarm-bot/internal/config"
	"github.com/oshokin/alarm-bot/internal/events"
	"github.com/oshokin/alarm-bot/internal/logger"
	"github.com/oshokin/alarm-bot/internal/metrics"
	pb "github.com/oshokin/alarm-bot/internal/pb/v1"
	"github.com/oshokin/alarm-bot/internal/platform/discord"
	repository "github.com/oshokin/alarm-bot/internal/repository/alarm"
	"github.com/oshokin/alarm-bot/internal/service/dispatcher"
	"github.com/oshokin/alarm-bot/internal/service/scheduler"
	"github.com/oshokin/alarm-bot/internal/timeexpr"
)

// Options controls the alarm-server process and configuration.
type Options struct {
	// ConfigPath specifies the path to settings YAML file.
	ConfigPath string
	// ListenAddress provides an optional listen address override for the gRPC server.
	ListenAddress string
	// LogLevel overrides log_level from the settings file when set.
	LogLevel string
	// AllowMultiple skips the check for other running server processes.
	AllowMultiple bool
}

// readHeaderTimeout bounds reading request headers on the metrics endpoint.
const readHeaderTimeout = 10 * time.Second

var (
	// ErrNoServerAddress indicates missing server configuration.
	ErrNoServerAddress = errors.New("no server address configured")
	// errUnknownLogLevel is returned for an unparsable --log-level.
	errUnknownLogLevel = errors.New("unknown log level")
)

// Run starts every component and blocks until the context is cancelled or
// one of them fails. Pending alarms are lost on exit.
//
//nolint:funlen // Linear wiring of independent components.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "alarm-server")

	if !opts.AllowMultiple {
		if err := ensureSingleInstance(ps.Processes, ProcessName); err != nil {
			return err
		}
	}

	// Load configuration first to get server settings.
	settings, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	if err = applyLogLevel(settings.LogLevel, opts.LogLevel); err != nil {
		return err
	}

	// Determine listen address: CLI argument overrides config port extraction.
	listenAddress, err := resolveListenAddress(settings.ServerAddress, opts.ListenAddress)
	if err != nil {
		return fmt.Errorf("resolve listen address: %w", err)
	}

	collectors := metrics.New()

	voice, direct, closeDiscord, err := openDelivery(ctx, settings.Discord)
	if err != nil {
		return err
	}

	defer closeDiscord()

	publisher, closePublisher, err := openPublisher(ctx, settings)
	if err != nil {
		return err
	}

	defer closePublisher()

	sched := scheduler.New(
		repository.NewRegistry(repository.WithDefaultMessage(settings.DefaultMessage)),
		timeexpr.NewParser(),
		dispatcher.New(voice, direct, dispatcher.WithMetrics(collectors)),
		scheduler.WithInterval(settings.CheckInterval),
		scheduler.WithMaxConcurrentDeliveries(settings.MaxConcurrentDeliveries),
		scheduler.WithPublisher(publisher),
		scheduler.WithMetrics(collectors),
	)

	// Setup TCP listener for gRPC server.
	lc := net.ListenConfig{}

	lis, err := lc.Listen(ctx, "tcp", listenAddress)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", listenAddress, err)
	}

	grpcServer := grpc.NewServer()
	pb.RegisterAlarmServiceServer(grpcServer, api.NewServer(sched))

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		return sched.Run(groupCtx)
	})

	group.Go(func() error {
		logger.InfoKV(ctx, "Alarm server listening", "listen_address", listenAddress)

		if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("serve gRPC: %w", err)
		}

		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		logger.Info(ctx, "Shutting down gRPC server")
		grpcServer.GracefulStop()

		return nil
	})

	if settings.MetricsAddress != "" {
		serveMetrics(ctx, groupCtx, group, settings.MetricsAddress, collectors)
	}

	err = group.Wait()

	logger.Info(ctx, "Alarm server stopped")

	return err
}

// serveMetrics runs the metrics endpoint in group until groupCtx is done.
func serveMetrics(ctx, groupCtx context.Context, group *errgroup.Group, address string, collectors *metrics.Metrics) {
	httpServer := &http.Server{
		Addr:              address,
		Handler:           metrics.Handler(collectors),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	group.Go(func() error {
		logger.InfoKV(ctx, "Metrics endpoint listening", "metrics_address", address)

		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve metrics: %w", err)
		}

		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), readHeaderTimeout)
		defer cancel()

		return httpServer.Shutdown(shutdownCtx)
	})
}

// openDelivery connects the Discord adapters. Without a token both channels
// stay nil and the dispatcher reports them as disabled.
func openDelivery(
	ctx context.Context,
	settings config.Discord,
) (dispatcher.VoiceChannel, dispatcher.DirectMessenger, func(), error) {
	if settings.Token == "" {
		logger.Warn(ctx, "No discord token configured, alarms will fire without delivery")

		return nil, nil, func() {}, nil
	}

	bot, err := discord.Open(ctx, settings)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open discord: %w", err)
	}

	closeBot := func() {
		if err := bot.Close(); err != nil {
			logger.WarnKV(ctx, "Close discord failed", "error", err)
		}
	}

	// Keep the interface nil, not a typed nil pointer, when voice is off.
	var voice dispatcher.VoiceChannel
	if bot.Voice != nil {
		voice = bot.Voice
	}

	return voice, bot.Messenger, closeBot, nil
}

// openPublisher connects to NATS when configured, otherwise discards events.
func openPublisher(ctx context.Context, settings *config.Config) (events.Publisher, func(), error) {
	if settings.NATS.URL == "" {
		return events.Nop{}, func() {}, nil
	}

	publisher, err := events.Connect(ctx, settings.NATS.URL, settings.NATS.Subject, settings.Timeout)
	if err != nil {
		return nil, nil, err
	}

	closePublisher := func() {
		if err := publisher.Close(); err != nil {
			logger.WarnKV(ctx, "Close NATS failed", "error", err)
		}
	}

	return publisher, closePublisher, nil
}

// applyLogLevel sets the global level; override wins over the settings value.
func applyLogLevel(configured, override string) error {
	name := configured
	if override != "" {
		name = override
	}

	level, ok := logger.ParseLogLevel(name)
	if !ok {
		return fmt.Errorf("%w: %q", errUnknownLogLevel, name)
	}

	logger.SetLevel(level)

	return nil
}

// resolveListenAddress determines the listen address for the gRPC server.
// If override is provided, uses it directly. Otherwise extracts port from configAddr.
// Returns appropriate listen address (e.g., ":8080" for port-only binding).
func resolveListenAddress(configAddr, override string) (string, error) {
	// Use override address if provided (e.g., ":9090", "0.0.0.0:8080").
	if override != "" {
		return override, nil
	}

	// Extract port from config address (e.g., "server.example.com:8080" -> ":8080").
	if configAddr == "" {
		return "", ErrNoServerAddress
	}

	// Parse the address to extract port.
	_, port, err := net.SplitHostPort(configAddr)
	if err != nil {
		return "", fmt.Errorf("invalid server address format %q: %w", configAddr, err)
	}

	// Return port-only listen address to bind on all interfaces.
	return ":" + port, nil
}
