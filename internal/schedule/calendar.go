// Package schedule creates Google Calendar events for booked appointments.
// The calendar is write-only from this system's perspective: events are
// inserted and never read back or tracked.
package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	calendar "google.golang.org/api/calendar/v3"

	"github.com/dermvoice/backend/pkg/logging"
)

const (
	slotLayout          = "2006-01-02 15:04"
	appointmentDuration = 30 * time.Minute
)

// ErrNotConfigured is returned when no calendar id is configured.
var ErrNotConfigured = errors.New("schedule: calendar id not configured")

// EventCreator inserts appointment events into the configured calendar.
type EventCreator struct {
	svc        *calendar.Service
	calendarID string
	timezone   string
	loc        *time.Location
	logger     *logging.Logger
}

// NewEventCreator constructs an event creator for the given calendar and
// IANA time zone name.
func NewEventCreator(svc *calendar.Service, calendarID, timezone string, logger *logging.Logger) (*EventCreator, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("schedule: load time zone %q: %w", timezone, err)
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &EventCreator{
		svc:        svc,
		calendarID: calendarID,
		timezone:   timezone,
		loc:        loc,
		logger:     logger,
	}, nil
}

// CreateAppointmentEvent inserts a 30-minute event starting at the given
// date ("YYYY-MM-DD") and time ("HH:MM") in the configured zone.
func (c *EventCreator) CreateAppointmentEvent(ctx context.Context, date, timeOfDay, name, email, phone string) error {
	if c.calendarID == "" {
		return ErrNotConfigured
	}

	event, err := c.buildEvent(date, timeOfDay, name, email, phone)
	if err != nil {
		return err
	}

	if _, err := c.svc.Events.Insert(c.calendarID, event).Context(ctx).Do(); err != nil {
		return fmt.Errorf("schedule: insert event: %w", err)
	}

	c.logger.Info("calendar event created", "date", date, "time", timeOfDay)
	return nil
}

func (c *EventCreator) buildEvent(date, timeOfDay, name, email, phone string) (*calendar.Event, error) {
	start, err := time.ParseInLocation(slotLayout, date+" "+timeOfDay, c.loc)
	if err != nil {
		return nil, fmt.Errorf("schedule: parse slot %s %s: %w", date, timeOfDay, err)
	}
	end := start.Add(appointmentDuration)

	return &calendar.Event{
		Summary:     fmt.Sprintf("Dermatology Appointment - %s", name),
		Description: fmt.Sprintf("Patient: %s\nEmail: %s\nPhone: %s", name, email, phone),
		Start: &calendar.EventDateTime{
			DateTime: start.Format(time.RFC3339),
			TimeZone: c.timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: end.Format(time.RFC3339),
			TimeZone: c.timezone,
		},
	}, nil
}
