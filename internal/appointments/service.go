// Package appointments implements the slot availability, booking, and
// listing operations against the appointments sheet.
package appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/dermvoice/backend/internal/observability/metrics"
	"github.com/dermvoice/backend/pkg/logging"
)

var tracer = otel.Tracer("dermvoice.internal.appointments")

// ErrNotConfigured is returned when no appointments sheet id is configured.
var ErrNotConfigured = errors.New("appointments: sheet id not configured")

// RowStore reads and updates spreadsheet rows by A1-notation range.
type RowStore interface {
	Get(ctx context.Context, spreadsheetID, readRange string) ([][]string, error)
	Update(ctx context.Context, spreadsheetID, writeRange string, row []string) error
}

// EventCreator creates the calendar event for a booked slot.
type EventCreator interface {
	CreateAppointmentEvent(ctx context.Context, date, timeOfDay, name, email, phone string) error
}

// Service implements the appointment operations over the sheet row store.
type Service struct {
	store   RowStore
	events  EventCreator
	sheetID string
	logger  *logging.Logger
	metrics *metrics.BookingMetrics
}

// NewService constructs an appointments service.
func NewService(store RowStore, events EventCreator, sheetID string, m *metrics.BookingMetrics, logger *logging.Logger) *Service {
	if store == nil {
		panic("appointments: row store required")
	}
	if events == nil {
		panic("appointments: event creator required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{
		store:   store,
		events:  events,
		sheetID: sheetID,
		logger:  logger,
		metrics: m,
	}
}

// CheckSlotAvailable reports whether the sheet has a row matching date and
// time exactly with status "available". Rows with fewer than four cells are
// skipped.
func (s *Service) CheckSlotAvailable(ctx context.Context, date, timeOfDay string) (bool, error) {
	if s.sheetID == "" {
		return false, ErrNotConfigured
	}

	rows, err := s.store.Get(ctx, s.sheetID, readRangeSlots)
	if err != nil {
		s.metrics.ObserveSlotCheck("error")
		return false, fmt.Errorf("appointments: read slots: %w", err)
	}

	for _, row := range rows {
		if len(row) < 4 {
			continue
		}
		if row[colDate] == date && row[colTime] == timeOfDay && strings.EqualFold(row[colStatus], statusAvailable) {
			s.metrics.ObserveSlotCheck("available")
			return true, nil
		}
	}
	s.metrics.ObserveSlotCheck("unavailable")
	return false, nil
}

// BookSlot transitions the first row matching date and time from available
// to booked, writes the patient contact fields, and creates the calendar
// event. It returns false with no write when the slot is taken or absent.
//
// The read-check-write sequence is not atomic: the Sheets values API has no
// conditional update, so two concurrent bookings of the same slot can both
// succeed.
func (s *Service) BookSlot(ctx context.Context, date, timeOfDay, name, email, phone string) (bool, error) {
	if s.sheetID == "" {
		return false, ErrNotConfigured
	}

	ctx, span := tracer.Start(ctx, "appointments.book")
	defer span.End()
	span.SetAttributes(
		attribute.String("appointment.date", date),
		attribute.String("appointment.time", timeOfDay),
	)

	rows, err := s.store.Get(ctx, s.sheetID, readRangeFull)
	if err != nil {
		span.RecordError(err)
		s.metrics.ObserveBooking("error")
		return false, fmt.Errorf("appointments: read rows: %w", err)
	}

	targetRow := 0
	provider := ""
	for i, row := range rows {
		if len(row) < 4 {
			continue
		}
		if row[colDate] != date || row[colTime] != timeOfDay {
			continue
		}
		if !strings.EqualFold(row[colStatus], statusAvailable) {
			s.metrics.ObserveBooking("taken")
			return false, nil
		}
		targetRow = firstDataRow + i
		provider = row[colProvider]
		break
	}
	if targetRow == 0 {
		s.metrics.ObserveBooking("no_slot")
		return false, nil
	}

	writeRange := fmt.Sprintf("A%d:G%d", targetRow, targetRow)
	booked := []string{date, timeOfDay, provider, statusBooked, name, email, phone}
	if err := s.store.Update(ctx, s.sheetID, writeRange, booked); err != nil {
		span.RecordError(err)
		s.metrics.ObserveBooking("error")
		return false, fmt.Errorf("appointments: update row %d: %w", targetRow, err)
	}

	// The row is already marked booked; an event failure here leaves the
	// sheet and the calendar inconsistent with no rollback.
	if err := s.events.CreateAppointmentEvent(ctx, date, timeOfDay, name, email, phone); err != nil {
		span.RecordError(err)
		s.metrics.ObserveBooking("event_failed")
		return false, fmt.Errorf("appointments: create calendar event: %w", err)
	}

	s.metrics.ObserveBooking("booked")
	s.logger.Info("slot booked", "date", date, "time", timeOfDay, "provider", provider)
	return true, nil
}

// ForDate returns every appointment row whose date matches exactly. Rows with
// fewer than four cells are skipped.
func (s *Service) ForDate(ctx context.Context, date string) ([]Appointment, error) {
	if s.sheetID == "" {
		return nil, ErrNotConfigured
	}

	rows, err := s.store.Get(ctx, s.sheetID, readRangeFull)
	if err != nil {
		return nil, fmt.Errorf("appointments: read rows: %w", err)
	}

	appts := make([]Appointment, 0)
	for _, row := range rows {
		if len(row) < 4 {
			continue
		}
		if row[colDate] == date {
			appts = append(appts, fromRow(row))
		}
	}
	return appts, nil
}
