package alarm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	domain "github.com/oshokin/alarm-bot/internal/domain/alarm"
	pb "github.com/oshokin/alarm-bot/internal/pb/v1"
	"github.com/oshokin/alarm-bot/internal/service/scheduler"
	"github.com/oshokin/alarm-bot/internal/timeexpr"
)

var errTestInternal = errors.New("test internal error")

// fakeService implements the Service interface for unit testing the transport.
type fakeService struct {
	// scheduled records the last schedule request.
	scheduled scheduler.ScheduleRequest
	// scheduleErr is returned from Schedule when set.
	scheduleErr error
	// owners maps alarm id to owner for Cancel.
	owners map[string]string
	// summaries is returned from List.
	summaries []domain.Summary
}

func (f *fakeService) Schedule(_ context.Context, req scheduler.ScheduleRequest) (*scheduler.Confirmation, error) {
	if f.scheduleErr != nil {
		return nil, f.scheduleErr
	}

	f.scheduled = req

	return &scheduler.Confirmation{
		ID:       "alarm_1",
		Text:     "✅ Alarm set! I'll notify you in 5 minutes",
		DueAt:    time.Date(2026, time.March, 10, 13, 5, 0, 0, time.UTC),
		Language: timeexpr.LanguageEnglish,
	}, nil
}

func (f *fakeService) Cancel(_ context.Context, id, requesterID string) bool {
	owner, ok := f.owners[id]
	if !ok || owner != requesterID {
		return false
	}

	delete(f.owners, id)

	return true
}

func (f *fakeService) List(context.Context, string) []domain.Summary {
	return f.summaries
}

// TestServer_Validation ensures invalid requests return InvalidArgument errors.
func TestServer_Validation(t *testing.T) {
	t.Parallel()

	s := NewServer(new(fakeService))
	ctx := context.Background()

	_, err := s.ScheduleAlarm(ctx, nil)
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = s.ScheduleAlarm(ctx, &pb.ScheduleAlarmRequest{OwnerId: "u1"})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = s.ScheduleAlarm(ctx, &pb.ScheduleAlarmRequest{TimeExpression: "14:00"})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = s.CancelAlarm(ctx, &pb.CancelAlarmRequest{RequesterId: "u1"})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = s.CancelAlarm(ctx, &pb.CancelAlarmRequest{Id: "alarm_1"})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = s.ListAlarms(ctx, new(pb.ListAlarmsRequest))
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

// TestServer_ScheduleAlarm verifies request conversion and the response.
func TestServer_ScheduleAlarm(t *testing.T) {
	t.Parallel()

	service := new(fakeService)
	s := NewServer(service)

	response, err := s.ScheduleAlarm(context.Background(), &pb.ScheduleAlarmRequest{
		TimeExpression: "in 5 minutes",
		OwnerId:        "u1",
		Recipient:      &pb.Recipient{GuildId: "g1", ChannelId: "c1", UserId: "123456789012345678"},
		Message:        "tea",
	})
	require.NoError(t, err)
	require.Equal(t, "alarm_1", response.GetId())
	require.Equal(t, "✅ Alarm set! I'll notify you in 5 minutes", response.GetConfirmation())
	require.Equal(t, "en", response.GetLanguage())
	require.Equal(t, time.Date(2026, time.March, 10, 13, 5, 0, 0, time.UTC), response.GetDueAt().AsTime())

	require.Equal(t, scheduler.ScheduleRequest{
		Text:      "in 5 minutes",
		OwnerID:   "u1",
		Recipient: domain.Recipient{GuildID: "g1", ChannelID: "c1", UserID: "123456789012345678"},
		Message:   "tea",
	}, service.scheduled)
}

// TestServer_ScheduleAlarm_Errors verifies error mapping.
func TestServer_ScheduleAlarm_Errors(t *testing.T) {
	t.Parallel()

	request := &pb.ScheduleAlarmRequest{TimeExpression: "meia noite", OwnerId: "u1"}

	s := NewServer(&fakeService{scheduleErr: &timeexpr.InvalidFormatError{Input: "meia noite", Language: timeexpr.LanguagePortuguese}})

	_, err := s.ScheduleAlarm(context.Background(), request)
	require.Equal(t, codes.InvalidArgument, status.Code(err))
	require.Equal(t, "Formato de tempo inválido", status.Convert(err).Message())

	s = NewServer(&fakeService{scheduleErr: errTestInternal})

	_, err = s.ScheduleAlarm(context.Background(), request)
	require.Equal(t, codes.Internal, status.Code(err))
}

// TestServer_CancelAlarm verifies missing and foreign alarms are indistinguishable.
func TestServer_CancelAlarm(t *testing.T) {
	t.Parallel()

	s := NewServer(&fakeService{owners: map[string]string{"alarm_1": "u1"}})
	ctx := context.Background()

	response, err := s.CancelAlarm(ctx, &pb.CancelAlarmRequest{Id: "alarm_1", RequesterId: "u2"})
	require.NoError(t, err)
	require.False(t, response.GetCancelled())

	response, err = s.CancelAlarm(ctx, &pb.CancelAlarmRequest{Id: "alarm_missing", RequesterId: "u1"})
	require.NoError(t, err)
	require.False(t, response.GetCancelled())

	response, err = s.CancelAlarm(ctx, &pb.CancelAlarmRequest{Id: "alarm_1", RequesterId: "u1"})
	require.NoError(t, err)
	require.True(t, response.GetCancelled())

	response, err = s.CancelAlarm(ctx, &pb.CancelAlarmRequest{Id: "alarm_1", RequesterId: "u1"})
	require.NoError(t, err)
	require.False(t, response.GetCancelled())
}

// TestServer_ListAlarms verifies summaries are converted in order.
func TestServer_ListAlarms(t *testing.T) {
	t.Parallel()

	dueAt := time.Date(2026, time.March, 10, 14, 0, 0, 0, time.UTC)
	s := NewServer(&fakeService{summaries: []domain.Summary{
		{ID: "alarm_1", DueAt: dueAt, Message: "first"},
		{ID: "alarm_2", DueAt: dueAt.Add(time.Hour), Message: "second"},
	}})

	response, err := s.ListAlarms(context.Background(), &pb.ListAlarmsRequest{OwnerId: "u1"})
	require.NoError(t, err)
	require.Len(t, response.GetAlarms(), 2)
	require.Equal(t, "alarm_1", response.GetAlarms()[0].GetId())
	require.Equal(t, dueAt, response.GetAlarms()[0].GetDueAt().AsTime())
	require.Equal(t, "second", response.GetAlarms()[1].GetMessage())

	empty, err := NewServer(new(fakeService)).ListAlarms(context.Background(), &pb.ListAlarmsRequest{OwnerId: "u1"})
	require.NoError(t, err)
	require.Empty(t, empty.GetAlarms())
}
