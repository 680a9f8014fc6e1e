package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// namespace prefixes every metric name.
const namespace = "alarm_bot"

// Metrics groups the collectors updated by the scheduler and the dispatcher.
// All methods are safe to call on a nil receiver, which records nothing.
type Metrics struct {
	// registry owns every collector below.
	registry *prometheus.Registry
	// scheduled counts alarms accepted by Schedule.
	scheduled prometheus.Counter
	// cancelled counts successful cancellations.
	cancelled prometheus.Counter
	// fired counts alarms removed by a scheduler tick.
	fired prometheus.Counter
	// pending tracks the registry size.
	pending prometheus.Gauge
	// deliveries counts delivery outcomes per channel and status.
	deliveries *prometheus.CounterVec
	// tickDuration observes how long one scan plus dispatch took.
	tickDuration prometheus.Histogram
}

// New creates Metrics on a fresh registry that also carries the Go and
// process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		scheduled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alarms_scheduled_total",
			Help:      "Alarms accepted for scheduling.",
		}),
		cancelled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alarms_cancelled_total",
			Help:      "Alarms cancelled by their owner.",
		}),
		fired: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alarms_fired_total",
			Help:      "Alarms removed from the registry for delivery.",
		}),
		pending: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "alarms_pending",
			Help:      "Alarms waiting to fire.",
		}),
		deliveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deliveries_total",
			Help:      "Delivery attempts by channel and outcome.",
		}, []string{"channel", "status"}),
		tickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "tick_duration_seconds",
			Help:      "Time spent taking and dispatching due alarms in one tick.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.scheduled,
		m.cancelled,
		m.fired,
		m.pending,
		m.deliveries,
		m.tickDuration,
	)

	return m
}

// Registry returns the registry the collectors live in.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}

	return m.registry
}

// AlarmScheduled records an accepted alarm.
func (m *Metrics) AlarmScheduled() {
	if m == nil {
		return
	}

	m.scheduled.Inc()
}

// AlarmCancelled records a successful cancellation.
func (m *Metrics) AlarmCancelled() {
	if m == nil {
		return
	}

	m.cancelled.Inc()
}

// AlarmsFired records alarms taken for delivery.
func (m *Metrics) AlarmsFired(n int) {
	if m == nil || n <= 0 {
		return
	}

	m.fired.Add(float64(n))
}

// SetPending records the registry size.
func (m *Metrics) SetPending(n int) {
	if m == nil {
		return
	}

	m.pending.Set(float64(n))
}

// Delivery records one channel outcome.
func (m *Metrics) Delivery(channel, status string) {
	if m == nil {
		return
	}

	m.deliveries.WithLabelValues(channel, status).Inc()
}

// ObserveTick records the duration of one scheduler tick.
func (m *Metrics) ObserveTick(elapsed time.Duration) {
	if m == nil {
		return
	}

	m.tickDuration.Observe(elapsed.Seconds())
}
