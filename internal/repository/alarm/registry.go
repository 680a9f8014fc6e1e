package alarm

import (
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/lithammer/shortuuid/v4"

	domain "github.com/oshokin/alarm-bot/internal/domain/alarm"
	"github.com/oshokin/alarm-bot/internal/humanize"
)

// IDPrefix starts every generated alarm id.
const IDPrefix = "alarm_"

// Registry is an in-memory, mutex-guarded store of pending alarms.
type Registry struct {
	// mu serializes every access to alarms.
	mu sync.Mutex
	// alarms maps id to the stored alarm.
	alarms map[string]*domain.Alarm
	// fallbacks counts ids suffixed after the generator kept colliding.
	fallbacks uint64
	// now returns the current instant.
	now func() time.Time
	// newID generates candidate ids.
	newID func() string
	// defaultMessage replaces an empty message.
	defaultMessage string
}

// Option configures a Registry.
type Option func(*Registry)

// WithClock overrides the clock used for CreatedAt and confirmations.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		if now != nil {
			r.now = now
		}
	}
}

// WithIDGenerator overrides the id generator.
func WithIDGenerator(newID func() string) Option {
	return func(r *Registry) {
		if newID != nil {
			r.newID = newID
		}
	}
}

// WithDefaultMessage overrides the message used when none is supplied.
func WithDefaultMessage(message string) Option {
	return func(r *Registry) {
		if message != "" {
			r.defaultMessage = message
		}
	}
}

// NewRegistry creates an empty Registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		alarms:         make(map[string]*domain.Alarm),
		now:            time.Now,
		newID:          newShortID,
		defaultMessage: domain.DefaultMessage,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Schedule stores a new alarm and returns its id together with the
// human-readable time until it fires, e.g. "1 hour and 30 minutes".
func (r *Registry) Schedule(dueAt time.Time, ownerID string, recipient domain.Recipient, message string) (string, string) {
	if message == "" {
		message = r.defaultMessage
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var (
		now = r.now()
		id  = r.nextID()
	)

	r.alarms[id] = &domain.Alarm{
		ID:        id,
		OwnerID:   ownerID,
		Message:   message,
		Recipient: recipient,
		DueAt:     dueAt,
		CreatedAt: now,
	}

	// Round so "in 5 minutes" does not read "4 minutes" after parse latency.
	return id, humanize.Duration(dueAt.Sub(now).Round(time.Second))
}

// Cancel removes the alarm iff it exists and belongs to requesterID.
// A missing alarm and a foreign alarm both report false.
func (r *Registry) Cancel(id, requesterID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.alarms[id]
	if !ok || stored.OwnerID != requesterID {
		return false
	}

	delete(r.alarms, id)

	return true
}

// ListFor returns a snapshot of the owner's pending alarms ordered by due time.
func (r *Registry) ListFor(ownerID string) []domain.Summary {
	r.mu.Lock()
	defer r.mu.Unlock()

	summaries := make([]domain.Summary, 0)

	for _, stored := range r.alarms {
		if stored.OwnerID == ownerID {
			summaries = append(summaries, stored.Summary())
		}
	}

	slices.SortFunc(summaries, func(a, b domain.Summary) int {
		if c := a.DueAt.Compare(b.DueAt); c != 0 {
			return c
		}

		return strings.Compare(a.ID, b.ID)
	})

	return summaries
}

// TakeDue removes and returns every alarm due at now, earliest first.
// Each alarm is returned by exactly one call.
func (r *Registry) TakeDue(now time.Time) []*domain.Alarm {
	r.mu.Lock()
	defer r.mu.Unlock()

	var due []*domain.Alarm

	for id, stored := range r.alarms {
		if !stored.IsDue(now) {
			continue
		}

		delete(r.alarms, id)

		due = append(due, stored)
	}

	slices.SortFunc(due, func(a, b *domain.Alarm) int {
		return a.DueAt.Compare(b.DueAt)
	})

	return due
}

// Len returns the number of pending alarms.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.alarms)
}

// maxIDAttempts bounds how many generator draws nextID tries before
// suffixing a counter.
const maxIDAttempts = 8

// nextID returns an id no pending alarm holds. Generated ids are 128-bit
// random, so only live alarms are checked. A generator that keeps
// colliding gets a counter suffix instead of spinning. Callers must hold mu.
func (r *Registry) nextID() string {
	var id string

	for range maxIDAttempts {
		id = r.newID()
		if _, taken := r.alarms[id]; !taken {
			return id
		}
	}

	for {
		r.fallbacks++

		candidate := id + "_" + strconv.FormatUint(r.fallbacks, 10)
		if _, taken := r.alarms[candidate]; !taken {
			return candidate
		}
	}
}

func newShortID() string {
	return IDPrefix + shortuuid.New()
}
