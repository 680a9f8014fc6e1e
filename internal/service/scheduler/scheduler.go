package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	domain "github.com/oshokin/alarm-bot/internal/domain/alarm"
	"github.com/oshokin/alarm-bot/internal/events"
	"github.com/oshokin/alarm-bot/internal/logger"
	"github.com/oshokin/alarm-bot/internal/metrics"
	repository "github.com/oshokin/alarm-bot/internal/repository/alarm"
	"github.com/oshokin/alarm-bot/internal/service/dispatcher"
	"github.com/oshokin/alarm-bot/internal/timeexpr"
)

const (
	// DefaultInterval is the period between scans.
	DefaultInterval = time.Second
	// DefaultMaxConcurrentDeliveries bounds the delivery pool.
	DefaultMaxConcurrentDeliveries = 8
)

// Deliverer delivers a fired alarm. Implementations must not panic and
// report failures through the returned Report.
type Deliverer interface {
	Deliver(ctx context.Context, alarm *domain.Alarm) dispatcher.Report
}

// ScheduleRequest is a caller's request to create an alarm.
type ScheduleRequest struct {
	// Text is the free-form time expression, e.g. "in 5 minutes".
	Text string
	// OwnerID identifies the requesting user.
	OwnerID string
	// Recipient is where delivery adapters reach the owner.
	Recipient domain.Recipient
	// Message is optional; the registry default applies when empty.
	Message string
}

// Confirmation describes a stored alarm.
type Confirmation struct {
	// ID identifies the alarm for cancel.
	ID string
	// Text is the localized confirmation, e.g. "✅ Alarm set! I'll notify you in 5 minutes".
	Text string
	// DueAt is when the alarm fires.
	DueAt time.Time
	// Language is the language detected in the request text.
	Language timeexpr.Language
}

// Scheduler routes caller operations to the registry and fires due alarms.
type Scheduler struct {
	// registry holds pending alarms.
	registry *repository.Registry
	// parser resolves request text.
	parser *timeexpr.Parser
	// deliverer sends fired alarms.
	deliverer Deliverer
	// publisher receives lifecycle events.
	publisher events.Publisher
	// metrics records scheduler activity; nil records nothing.
	metrics *metrics.Metrics
	// now returns the instant a tick compares due times against.
	now func() time.Time
	// interval is the tick period used by Run.
	interval time.Duration
	// submitters hand due alarms to the pool so Tick never blocks on it.
	submitters sync.WaitGroup
	// deliveries runs delivery workers; its limit bounds concurrency.
	deliveries errgroup.Group
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithClock overrides the clock used by Tick.
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) {
		if now != nil {
			s.now = now
		}
	}
}

// WithInterval sets the tick period. Non-positive values are ignored.
func WithInterval(interval time.Duration) Option {
	return func(s *Scheduler) {
		if interval > 0 {
			s.interval = interval
		}
	}
}

// WithMaxConcurrentDeliveries bounds the number of alarms delivered in parallel.
// Non-positive values are ignored.
func WithMaxConcurrentDeliveries(limit int) Option {
	return func(s *Scheduler) {
		if limit > 0 {
			s.deliveries.SetLimit(limit)
		}
	}
}

// WithPublisher sends lifecycle events to publisher.
func WithPublisher(publisher events.Publisher) Option {
	return func(s *Scheduler) {
		if publisher != nil {
			s.publisher = publisher
		}
	}
}

// WithMetrics records scheduler activity in m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Scheduler) {
		s.metrics = m
	}
}

// New creates a Scheduler over registry.
func New(registry *repository.Registry, parser *timeexpr.Parser, deliverer Deliverer, opts ...Option) *Scheduler {
	s := &Scheduler{
		registry:  registry,
		parser:    parser,
		deliverer: deliverer,
		publisher: events.Nop{},
		now:       time.Now,
		interval:  DefaultInterval,
	}

	s.deliveries.SetLimit(DefaultMaxConcurrentDeliveries)

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Schedule parses the request text and stores the alarm.
// A parse failure is returned unchanged as *timeexpr.InvalidFormatError.
func (s *Scheduler) Schedule(ctx context.Context, req ScheduleRequest) (*Confirmation, error) {
	parsed, err := s.parser.Parse(req.Text)
	if err != nil {
		logger.DebugKV(ctx, "Rejected time expression", "text", req.Text, "owner_id", req.OwnerID)

		return nil, err
	}

	id, remaining := s.registry.Schedule(parsed.DueAt, req.OwnerID, req.Recipient, req.Message)

	s.metrics.AlarmScheduled()
	s.metrics.SetPending(s.registry.Len())

	logger.InfoKV(ctx, "Alarm scheduled",
		"alarm_id", id,
		"owner_id", req.OwnerID,
		"due_at", parsed.DueAt.Format(time.RFC3339),
		"strategy", parsed.Strategy,
		"language", parsed.Language,
	)

	s.publish(ctx, events.Event{
		Type:       events.TypeScheduled,
		AlarmID:    id,
		OwnerID:    req.OwnerID,
		DueAt:      parsed.DueAt,
		OccurredAt: s.now(),
	})

	return &Confirmation{
		ID:       id,
		Text:     confirmationText(parsed.Language, remaining),
		DueAt:    parsed.DueAt,
		Language: parsed.Language,
	}, nil
}

// Cancel removes the alarm if requesterID owns it.
// It returns false both for unknown ids and for alarms owned by someone else.
func (s *Scheduler) Cancel(ctx context.Context, id, requesterID string) bool {
	if !s.registry.Cancel(id, requesterID) {
		logger.DebugKV(ctx, "Cancel had no effect", "alarm_id", id, "requester_id", requesterID)

		return false
	}

	s.metrics.AlarmCancelled()
	s.metrics.SetPending(s.registry.Len())

	logger.InfoKV(ctx, "Alarm cancelled", "alarm_id", id, "owner_id", requesterID)

	s.publish(ctx, events.Event{
		Type:       events.TypeCancelled,
		AlarmID:    id,
		OwnerID:    requesterID,
		OccurredAt: s.now(),
	})

	return true
}

// List returns the owner's pending alarms ordered by due time.
func (s *Scheduler) List(_ context.Context, ownerID string) []domain.Summary {
	return s.registry.ListFor(ownerID)
}

// Tick removes every due alarm and hands the batch to the delivery pool.
// It returns the number of alarms removed without waiting for a free slot.
func (s *Scheduler) Tick(ctx context.Context) int {
	started := time.Now()

	due := s.registry.TakeDue(s.now())
	if len(due) == 0 {
		return 0
	}

	s.metrics.AlarmsFired(len(due))
	s.metrics.SetPending(s.registry.Len())

	logger.DebugKV(ctx, "Dispatching due alarms", "count", len(due))

	// Deliveries outlive a cancelled Run so in-flight alarms still go out.
	deliveryCtx := context.WithoutCancel(ctx)

	s.submitters.Go(func() {
		for _, alarm := range due {
			s.deliveries.Go(func() error {
				s.deliver(deliveryCtx, alarm)

				return nil
			})
		}
	})

	s.metrics.ObserveTick(time.Since(started))

	return len(due)
}

// Run ticks every interval until ctx is cancelled, then waits for in-flight
// deliveries before returning.
func (s *Scheduler) Run(ctx context.Context) error {
	ctx = logger.WithName(ctx, "scheduler")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	logger.InfoKV(ctx, "Scheduler started", "interval", s.interval.String())

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "Scheduler stopping, waiting for in-flight deliveries")

			s.Wait()

			logger.Info(ctx, "Scheduler stopped")

			return nil
		case <-ticker.C:
			s.Tick(ctx)
		}
	}
}

// Wait blocks until every taken alarm was delivered.
// It must not run concurrently with Tick.
func (s *Scheduler) Wait() {
	s.submitters.Wait()
	_ = s.deliveries.Wait()
}

// deliver dispatches one alarm and publishes the fired event.
func (s *Scheduler) deliver(ctx context.Context, alarm *domain.Alarm) {
	defer func() {
		if recovered := recover(); recovered != nil {
			logger.ErrorKV(ctx, "Alarm delivery panicked", "alarm_id", alarm.ID, "panic", fmt.Sprint(recovered))
		}
	}()

	report := s.deliverer.Deliver(ctx, alarm)

	logger.InfoKV(ctx, "Alarm fired",
		"alarm_id", alarm.ID,
		"owner_id", alarm.OwnerID,
		"voice", report.Voice.Status,
		"direct_message", report.Direct.Status,
	)

	s.publish(ctx, events.Event{
		Type:          events.TypeFired,
		AlarmID:       alarm.ID,
		OwnerID:       alarm.OwnerID,
		DueAt:         alarm.DueAt,
		OccurredAt:    s.now(),
		Voice:         string(report.Voice.Status),
		DirectMessage: string(report.Direct.Status),
	})
}

// publish sends event; failures are logged and otherwise ignored.
func (s *Scheduler) publish(ctx context.Context, event events.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		logger.WarnKV(ctx, "Failed to publish alarm event", "type", event.Type, "alarm_id", event.AlarmID, "error", err)
	}
}
