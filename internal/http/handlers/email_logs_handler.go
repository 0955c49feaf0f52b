package handlers

import (
	"net/http"

	"github.com/sparklenest/cleaning-bookings/internal/http/response"
	"github.com/sparklenest/cleaning-bookings/pkg/logger"
)

// ListEmailLogs handles GET /email-logs, the admin view of the
// notification audit trail.
func (h *Handlers) ListEmailLogs(w http.ResponseWriter, r *http.Request) {
	logs, err := h.emails.List(r.Context())
	if err != nil {
		logger.ErrorContext(r.Context(), "Failed to list email logs", "error", err)
		response.InternalError(w, "Failed to fetch email logs")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"emailLogs": logs})
}

// ClearEmailLogs handles DELETE /email-logs
func (h *Handlers) ClearEmailLogs(w http.ResponseWriter, r *http.Request) {
	if err := h.emails.Clear(r.Context()); err != nil {
		logger.ErrorContext(r.Context(), "Failed to clear email logs", "error", err)
		response.InternalError(w, "Failed to clear email logs")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}
