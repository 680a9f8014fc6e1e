package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/oshokin/alarm-bot/internal/logger"
	"github.com/oshokin/alarm-bot/internal/version"
)

const (
	// reconnectWait is the pause between reconnect attempts.
	reconnectWait = 2 * time.Second
	// drainTimeout bounds flushing buffered events on Close.
	drainTimeout = 5 * time.Second
)

// errSubjectRequired is returned when the subject prefix is empty.
var errSubjectRequired = errors.New("NATS subject must be provided")

// conn is the part of *nats.Conn the publisher uses.
type conn interface {
	Publish(subject string, data []byte) error
	Drain() error
	IsClosed() bool
}

// NATSPublisher publishes events as JSON to a NATS server.
type NATSPublisher struct {
	// conn is the underlying connection.
	conn conn
	// subject is the prefix events are published under.
	subject string
}

// Connect dials the NATS server at url. The connection reconnects forever,
// buffering publishes while disconnected.
func Connect(ctx context.Context, url, subject string, timeout time.Duration) (*NATSPublisher, error) {
	if subject == "" {
		return nil, errSubjectRequired
	}

	ctx = logger.WithName(ctx, "nats")

	nc, err := nats.Connect(url,
		nats.Name(version.UserAgent()),
		nats.Timeout(timeout),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(reconnectWait),
		nats.DrainTimeout(drainTimeout),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.WarnKV(ctx, "Disconnected from NATS", "error", err)
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.InfoKV(ctx, "Reconnected to NATS", "url", c.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}

	logger.InfoKV(ctx, "Connected to NATS", "url", nc.ConnectedUrl(), "subject", subject)

	return newNATSPublisher(nc, subject), nil
}

func newNATSPublisher(c conn, subject string) *NATSPublisher {
	return &NATSPublisher{
		conn:    c,
		subject: subject,
	}
}

// Publish sends event to "<subject>.<type>".
func (p *NATSPublisher) Publish(_ context.Context, event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}

	if err = p.conn.Publish(p.Subject(event.Type), data); err != nil {
		return fmt.Errorf("publish event: %w", err)
	}

	return nil
}

// Subject returns the full subject events of type t are published to.
func (p *NATSPublisher) Subject(t Type) string {
	return p.subject + "." + string(t)
}

// Close flushes pending events and closes the connection.
// Draining continues in the background for at most drainTimeout.
func (p *NATSPublisher) Close() error {
	if p.conn.IsClosed() {
		return nil
	}

	if err := p.conn.Drain(); err != nil {
		return fmt.Errorf("drain NATS connection: %w", err)
	}

	return nil
}
