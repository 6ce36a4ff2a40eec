package schedule

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/dermvoice/backend/pkg/logging"
)

func newCreator(t *testing.T, svc *calendar.Service, calendarID string) *EventCreator {
	t.Helper()
	c, err := NewEventCreator(svc, calendarID, "America/Chicago", logging.New("error"))
	require.NoError(t, err)
	return c
}

func TestBuildEvent(t *testing.T) {
	c := newCreator(t, nil, "cal-1")

	event, err := c.buildEvent("2024-06-01", "09:00", "Jo", "jo@x.com", "555")
	require.NoError(t, err)

	assert.Equal(t, "Dermatology Appointment - Jo", event.Summary)
	assert.Equal(t, "Patient: Jo\nEmail: jo@x.com\nPhone: 555", event.Description)
	// June is CDT (UTC-5); end is start plus 30 minutes.
	assert.Equal(t, "2024-06-01T09:00:00-05:00", event.Start.DateTime)
	assert.Equal(t, "2024-06-01T09:30:00-05:00", event.End.DateTime)
	assert.Equal(t, "America/Chicago", event.Start.TimeZone)
	assert.Equal(t, "America/Chicago", event.End.TimeZone)
}

func TestBuildEventMalformedInput(t *testing.T) {
	c := newCreator(t, nil, "cal-1")

	_, err := c.buildEvent("06/01/2024", "09:00", "Jo", "jo@x.com", "555")
	assert.Error(t, err)

	_, err = c.buildEvent("2024-06-01", "nine", "Jo", "jo@x.com", "555")
	assert.Error(t, err)
}

func TestNewEventCreatorBadTimezone(t *testing.T) {
	_, err := NewEventCreator(nil, "cal-1", "Mars/Olympus_Mons", logging.New("error"))
	assert.Error(t, err)
}

func TestCreateAppointmentEventNotConfigured(t *testing.T) {
	c := newCreator(t, nil, "")
	err := c.CreateAppointmentEvent(context.Background(), "2024-06-01", "09:00", "Jo", "jo@x.com", "555")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestCreateAppointmentEventInserts(t *testing.T) {
	var captured calendar.Event
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"evt-1"}`)
	}))
	defer srv.Close()

	svc, err := calendar.NewService(context.Background(),
		option.WithoutAuthentication(),
		option.WithEndpoint(srv.URL),
	)
	require.NoError(t, err)

	c := newCreator(t, svc, "cal-1")
	err = c.CreateAppointmentEvent(context.Background(), "2024-06-01", "09:00", "Jo", "jo@x.com", "555")
	require.NoError(t, err)

	assert.Contains(t, path, "cal-1/events")
	assert.Equal(t, "Dermatology Appointment - Jo", captured.Summary)
	assert.Equal(t, "2024-06-01T09:30:00-05:00", captured.End.DateTime)
}
