// Package calllog appends call audit records to the calls spreadsheet.
// Entries are append-only; nothing in the system reads them back.
package calllog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dermvoice/backend/internal/observability/metrics"
	"github.com/dermvoice/backend/pkg/logging"
)

// The calls sheet holds timestamp, name, phone, email, outcome, intent.
const appendRange = "A:F"

// ErrNotConfigured is returned when no calls sheet id is configured.
var ErrNotConfigured = errors.New("calllog: calls sheet id not configured")

// RowAppender appends one row to a spreadsheet range.
type RowAppender interface {
	Append(ctx context.Context, spreadsheetID, writeRange string, row []string) error
}

// Entry is one call record. Outcome and Intent default to "unknown".
type Entry struct {
	Name    string
	Phone   string
	Email   string
	Outcome string
	Intent  string
}

// Service logs calls to the configured calls sheet.
type Service struct {
	store   RowAppender
	sheetID string
	logger  *logging.Logger
	metrics *metrics.BookingMetrics
	now     func() time.Time
}

// NewService constructs a call log service.
func NewService(store RowAppender, sheetID string, m *metrics.BookingMetrics, logger *logging.Logger) *Service {
	if store == nil {
		panic("calllog: row appender required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{
		store:   store,
		sheetID: sheetID,
		logger:  logger,
		metrics: m,
		now:     time.Now,
	}
}

// LogCall appends one row to the calls sheet. No field validation is
// performed; the sheet is a raw audit trail.
func (s *Service) LogCall(ctx context.Context, e Entry) error {
	if s.sheetID == "" {
		return ErrNotConfigured
	}
	if e.Outcome == "" {
		e.Outcome = "unknown"
	}
	if e.Intent == "" {
		e.Intent = "unknown"
	}

	row := []string{s.now().Format(time.RFC3339), e.Name, e.Phone, e.Email, e.Outcome, e.Intent}
	if err := s.store.Append(ctx, s.sheetID, appendRange, row); err != nil {
		s.metrics.ObserveCallLog("error")
		return fmt.Errorf("calllog: append row: %w", err)
	}

	s.metrics.ObserveCallLog("ok")
	s.logger.Info("call logged", "outcome", e.Outcome, "intent", e.Intent)
	return nil
}
