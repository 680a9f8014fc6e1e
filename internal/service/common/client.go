//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/oshokin/alarm-bot/internal/config"
	pb "github.com/oshokin/alarm-bot/internal/pb/v1"
)

// Client wraps the gRPC AlarmService client with convenience helpers.
type Client struct {
	// conn is the underlying gRPC connection to the alarm server.
	conn *grpc.ClientConn
	// api is the generated AlarmService client interface.
	api pb.AlarmServiceClient

	// callTimeout is the default timeout for individual RPC calls.
	callTimeout time.Duration
}

// Option configures client behaviour.
type Option func(*Client)

// WithCallTimeout sets a default timeout for service calls.
func WithCallTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.callTimeout = timeout
		}
	}
}

var (
	// errAddressRequired is returned when a required address value is missing.
	errAddressRequired = errors.New("address must be provided")
	// errOwnerRequired is returned when an owner or requester id is missing.
	errOwnerRequired = errors.New("owner must be provided")
	// errTimeExpressionRequired is returned when scheduling without a time expression.
	errTimeExpressionRequired = errors.New("time expression must be provided")
	// errAlarmIDRequired is returned when cancelling without an id.
	errAlarmIDRequired = errors.New("alarm id must be provided")
)

// Dial establishes a gRPC connection to the alarm server.
// Note: this uses insecure transport credentials; deploy on a trusted network
// or terminate TLS in a proxy until native TLS is added.
func Dial(_ context.Context, address string, opts ...Option) (*Client, error) {
	if address == "" {
		return nil, errAddressRequired
	}

	conn, err := grpc.NewClient(address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial alarm server: %w", err)
	}

	client := &Client{
		conn:        conn,
		api:         pb.NewAlarmServiceClient(conn),
		callTimeout: config.DefaultTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// Close releases the underlying gRPC connection.
func (c *Client) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}

	return c.conn.Close()
}

// ScheduleAlarm asks the server to parse the expression and store an alarm.
func (c *Client) ScheduleAlarm(ctx context.Context, request *pb.ScheduleAlarmRequest) (*pb.ScheduleAlarmResponse, error) {
	switch {
	case request.GetTimeExpression() == "":
		return nil, errTimeExpressionRequired
	case request.GetOwnerId() == "":
		return nil, errOwnerRequired
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	response, err := c.api.ScheduleAlarm(callCtx, request)
	if err != nil {
		return nil, fmt.Errorf("schedule alarm: %w", err)
	}

	return response, nil
}

// CancelAlarm cancels the alarm if requesterID owns it.
func (c *Client) CancelAlarm(ctx context.Context, id, requesterID string) (bool, error) {
	switch {
	case id == "":
		return false, errAlarmIDRequired
	case requesterID == "":
		return false, errOwnerRequired
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	response, err := c.api.CancelAlarm(callCtx, &pb.CancelAlarmRequest{
		Id:          id,
		RequesterId: requesterID,
	})
	if err != nil {
		return false, fmt.Errorf("cancel alarm: %w", err)
	}

	return response.GetCancelled(), nil
}

// ListAlarms returns the owner's pending alarms.
func (c *Client) ListAlarms(ctx context.Context, ownerID string) ([]*pb.AlarmSummary, error) {
	if ownerID == "" {
		return nil, errOwnerRequired
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	response, err := c.api.ListAlarms(callCtx, &pb.ListAlarmsRequest{OwnerId: ownerID})
	if err != nil {
		return nil, fmt.Errorf("list alarms: %w", err)
	}

	return response.GetAlarms(), nil
}

// callContext returns a context with the client's call timeout if configured,
// otherwise a cancellable child context without a deadline.
func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.callTimeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, c.callTimeout)
}
