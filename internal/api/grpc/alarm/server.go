package alarm

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	domain "github.com/oshokin/alarm-bot/internal/domain/alarm"
	"github.com/oshokin/alarm-bot/internal/logger"
	pb "github.com/oshokin/alarm-bot/internal/pb/v1"
	"github.com/oshokin/alarm-bot/internal/service/scheduler"
	"github.com/oshokin/alarm-bot/internal/timeexpr"
)

// Service abstracts the scheduler operations the transport layer depends on.
type Service interface {
	Schedule(ctx context.Context, req scheduler.ScheduleRequest) (*scheduler.Confirmation, error)
	Cancel(ctx context.Context, id, requesterID string) bool
	List(ctx context.Context, ownerID string) []domain.Summary
}

// Server implements the AlarmService gRPC API.
type Server struct {
	pb.UnimplementedAlarmServiceServer

	// service provides the scheduler operations.
	service Service
}

// NewServer wires the provided service implementation into a gRPC handler.
func NewServer(service Service) *Server {
	return &Server{
		service: service,
	}
}

// ScheduleAlarm parses the time expression and stores a new alarm.
func (s *Server) ScheduleAlarm(ctx context.Context, req *pb.ScheduleAlarmRequest) (*pb.ScheduleAlarmResponse, error) {
	switch {
	case req == nil:
		return nil, status.Error(codes.InvalidArgument, "request is required")
	case req.GetTimeExpression() == "":
		return nil, status.Error(codes.InvalidArgument, "time expression is required")
	case req.GetOwnerId() == "":
		return nil, status.Error(codes.InvalidArgument, "owner id is required")
	}

	confirmation, err := s.service.Schedule(ctx, scheduler.ScheduleRequest{
		Text:      req.GetTimeExpression(),
		OwnerID:   req.GetOwnerId(),
		Recipient: toDomainRecipient(req.GetRecipient()),
		Message:   req.GetMessage(),
	})
	if err != nil {
		if errors.Is(err, timeexpr.ErrInvalidFormat) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}

		logger.ErrorKV(ctx, "Schedule alarm failed", "error", err)

		return nil, status.Error(codes.Internal, "unable to schedule alarm")
	}

	return &pb.ScheduleAlarmResponse{
		Id:           confirmation.ID,
		Confirmation: confirmation.Text,
		DueAt:        timestamppb.New(confirmation.DueAt),
		Language:     string(confirmation.Language),
	}, nil
}

// CancelAlarm removes an alarm owned by the requester.
// Unknown and foreign alarms both yield cancelled=false.
func (s *Server) CancelAlarm(ctx context.Context, req *pb.CancelAlarmRequest) (*pb.CancelAlarmResponse, error) {
	switch {
	case req == nil:
		return nil, status.Error(codes.InvalidArgument, "request is required")
	case req.GetId() == "":
		return nil, status.Error(codes.InvalidArgument, "alarm id is required")
	case req.GetRequesterId() == "":
		return nil, status.Error(codes.InvalidArgument, "requester id is required")
	}

	return &pb.CancelAlarmResponse{
		Cancelled: s.service.Cancel(ctx, req.GetId(), req.GetRequesterId()),
	}, nil
}

// ListAlarms returns the owner's pending alarms ordered by due time.
func (s *Server) ListAlarms(ctx context.Context, req *pb.ListAlarmsRequest) (*pb.ListAlarmsResponse, error) {
	if req.GetOwnerId() == "" {
		return nil, status.Error(codes.InvalidArgument, "owner id is required")
	}

	summaries := s.service.List(ctx, req.GetOwnerId())

	response := &pb.ListAlarmsResponse{
		Alarms: make([]*pb.AlarmSummary, 0, len(summaries)),
	}

	for _, summary := range summaries {
		response.Alarms = append(response.Alarms, toProtoSummary(summary))
	}

	return response, nil
}

// toDomainRecipient converts a protobuf Recipient; nil yields the zero value.
func toDomainRecipient(recipient *pb.Recipient) domain.Recipient {
	return domain.Recipient{
		GuildID:   recipient.GetGuildId(),
		ChannelID: recipient.GetChannelId(),
		UserID:    recipient.GetUserId(),
	}
}

// toProtoSummary converts a domain Summary to its protobuf form.
func toProtoSummary(summary domain.Summary) *pb.AlarmSummary {
	return &pb.AlarmSummary{
		Id:      summary.ID,
		DueAt:   timestamppb.New(summary.DueAt),
		Message: summary.Message,
	}
}
