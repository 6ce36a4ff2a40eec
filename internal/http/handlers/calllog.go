package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/dermvoice/backend/internal/calllog"
	"github.com/dermvoice/backend/pkg/logging"
)

// CallLogHandler handles the call log endpoint.
type CallLogHandler struct {
	calls  CallLogger
	logger *logging.Logger
}

// NewCallLogHandler creates a call log handler.
func NewCallLogHandler(calls CallLogger, logger *logging.Logger) *CallLogHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &CallLogHandler{calls: calls, logger: logger}
}

type callLogRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Outcome string `json:"outcome"`
	Intent  string `json:"intent"`
}

// LogCall handles POST /api/call-log requests
func (h *CallLogHandler) LogCall(w http.ResponseWriter, r *http.Request) {
	var req callLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.calls.LogCall(r.Context(), calllog.Entry{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Outcome: req.Outcome,
		Intent:  req.Intent,
	})
	if err != nil {
		h.logger.Error("failed to log call", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to log call: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
