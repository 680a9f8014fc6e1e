package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// scrape returns the body served at path.
func scrape(t *testing.T, handler http.Handler, path string) (int, string) {
	t.Helper()

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))

	body, err := io.ReadAll(recorder.Result().Body)
	require.NoError(t, err)

	return recorder.Code, string(body)
}

// TestHandler_ExposesCollectors verifies recorded values appear in the exposition.
func TestHandler_ExposesCollectors(t *testing.T) {
	t.Parallel()

	m := New()
	m.AlarmScheduled()
	m.AlarmScheduled()
	m.AlarmCancelled()
	m.AlarmsFired(3)
	m.SetPending(4)
	m.Delivery("voice", "skipped")
	m.Delivery("direct_message", "delivered")
	m.ObserveTick(5 * time.Millisecond)

	code, body := scrape(t, Handler(m), "/metrics")
	require.Equal(t, http.StatusOK, code)
	require.Contains(t, body, "alarm_bot_alarms_scheduled_total 2")
	require.Contains(t, body, "alarm_bot_alarms_cancelled_total 1")
	require.Contains(t, body, "alarm_bot_alarms_fired_total 3")
	require.Contains(t, body, "alarm_bot_alarms_pending 4")
	require.Contains(t, body, `alarm_bot_deliveries_total{channel="voice",status="skipped"} 1`)
	require.Contains(t, body, `alarm_bot_deliveries_total{channel="direct_message",status="delivered"} 1`)
	require.Contains(t, body, "alarm_bot_tick_duration_seconds_count 1")
	require.Contains(t, body, "go_goroutines")
}

// TestHandler_Healthz verifies the liveness probe.
func TestHandler_Healthz(t *testing.T) {
	t.Parallel()

	code, body := scrape(t, Handler(New()), "/healthz")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "ok\n", body)
}

// TestNilMetrics verifies a nil receiver is a no-op.
func TestNilMetrics(t *testing.T) {
	t.Parallel()

	var m *Metrics

	require.NotPanics(t, func() {
		m.AlarmScheduled()
		m.AlarmCancelled()
		m.AlarmsFired(1)
		m.SetPending(1)
		m.Delivery("voice", "failed")
		m.ObserveTick(time.Second)
	})

	code, _ := scrape(t, Handler(m), "/metrics")
	require.Equal(t, http.StatusNotFound, code)
}
