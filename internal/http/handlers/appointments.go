package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/dermvoice/backend/internal/appointments"
	"github.com/dermvoice/backend/internal/calllog"
	"github.com/dermvoice/backend/pkg/logging"
)

// SlotService is the appointments surface the handler depends on.
type SlotService interface {
	CheckSlotAvailable(ctx context.Context, date, timeOfDay string) (bool, error)
	BookSlot(ctx context.Context, date, timeOfDay, name, email, phone string) (bool, error)
	ForDate(ctx context.Context, date string) ([]appointments.Appointment, error)
}

// CallLogger appends one call record.
type CallLogger interface {
	LogCall(ctx context.Context, e calllog.Entry) error
}

// AppointmentsHandler handles the slot check, booking, and listing endpoints.
type AppointmentsHandler struct {
	slots  SlotService
	calls  CallLogger
	logger *logging.Logger
	now    func() time.Time
}

// NewAppointmentsHandler creates an appointments handler.
func NewAppointmentsHandler(slots SlotService, calls CallLogger, logger *logging.Logger) *AppointmentsHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &AppointmentsHandler{
		slots:  slots,
		calls:  calls,
		logger: logger,
		now:    time.Now,
	}
}

type checkSlotRequest struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

type bookSlotRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	Date  string `json:"date"`
	Time  string `json:"time"`
}

// CheckSlot handles POST /api/appointments/check requests
func (h *AppointmentsHandler) CheckSlot(w http.ResponseWriter, r *http.Request) {
	var req checkSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Date == "" || req.Time == "" {
		writeError(w, http.StatusBadRequest, "date and time are required")
		return
	}

	available, err := h.slots.CheckSlotAvailable(r.Context(), req.Date, req.Time)
	if err != nil {
		h.logger.Error("failed to check slot", "error", err, "date", req.Date, "time", req.Time)
		writeError(w, http.StatusInternalServerError, "Failed to check slot: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"available": available})
}

// BookSlot handles POST /api/appointments/book requests
func (h *AppointmentsHandler) BookSlot(w http.ResponseWriter, r *http.Request) {
	var req bookSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Date == "" || req.Time == "" || req.Name == "" {
		writeError(w, http.StatusBadRequest, "name, date and time are required")
		return
	}

	booked, err := h.slots.BookSlot(r.Context(), req.Date, req.Time, req.Name, req.Email, req.Phone)
	if err != nil {
		h.logger.Error("failed to book slot", "error", err, "date", req.Date, "time", req.Time)
		writeError(w, http.StatusInternalServerError, "Failed to book slot: "+err.Error())
		return
	}
	if !booked {
		writeError(w, http.StatusConflict, "Slot not available")
		return
	}

	if err := h.calls.LogCall(r.Context(), calllog.Entry{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Outcome: "booked",
		Intent:  "book",
	}); err != nil {
		// The slot is booked at this point; the caller still sees a failure.
		h.logger.Error("failed to log booked call", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to book slot: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "booked"})
}

// Today handles GET /api/appointments/today requests
func (h *AppointmentsHandler) Today(w http.ResponseWriter, r *http.Request) {
	today := h.now().Format("2006-01-02")

	appts, err := h.slots.ForDate(r.Context(), today)
	if err != nil {
		h.logger.Error("failed to get appointments", "error", err, "date", today)
		writeError(w, http.StatusInternalServerError, "Failed to get appointments: "+err.Error())
		return
	}
	if appts == nil {
		appts = []appointments.Appointment{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"date":         today,
		"appointments": appts,
	})
}
