package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sparklenest/cleaning-bookings/internal/domain"
	"github.com/sparklenest/cleaning-bookings/internal/http/response"
	"github.com/sparklenest/cleaning-bookings/pkg/logger"
)

// ListBookings handles GET /bookings
func (h *Handlers) ListBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookings.List(r.Context())
	if err != nil {
		logger.ErrorContext(r.Context(), "Failed to list bookings", "error", err)
		response.InternalError(w, "Failed to fetch bookings")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"bookings": bookings})
}

// CreateBooking handles POST /bookings. The admin notification is enqueued
// fire-and-forget once the booking is durable; its outcome never affects
// the response.
func (h *Handlers) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var input domain.BookingInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "Invalid JSON format")
		return
	}

	if input.Name == "" || input.Email == "" || input.Date == "" || input.Time == "" {
		response.BadRequest(w, "Missing required fields: name, email, date, time")
		return
	}

	created, err := h.bookings.Create(r.Context(), &input)
	if err != nil {
		logger.ErrorContext(r.Context(), "Failed to create booking", "error", err)
		response.InternalError(w, "Failed to create booking")
		return
	}

	h.notifier.BookingCreated(created)

	writeJSON(w, http.StatusCreated, map[string]interface{}{"booking": created})
}

// GetBooking handles GET /bookings/{id}
func (h *Handlers) GetBooking(w http.ResponseWriter, r *http.Request) {
	booking, err := h.bookings.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		logger.ErrorContext(r.Context(), "Failed to get booking", "error", err)
		response.InternalError(w, "Failed to fetch booking")
		return
	}
	if booking == nil {
		response.NotFound(w, "Booking not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"booking": booking})
}

// UpdateBookingStatus handles PATCH /bookings/{id}
func (h *Handlers) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.BadRequest(w, "Invalid JSON format")
		return
	}

	status, ok := domain.ParseBookingStatus(body.Status)
	if !ok {
		response.BadRequest(w, "Invalid status")
		return
	}

	updated, err := h.bookings.UpdateStatus(r.Context(), chi.URLParam(r, "id"), status)
	if err != nil {
		logger.ErrorContext(r.Context(), "Failed to update booking status", "error", err)
		response.InternalError(w, "Failed to update booking")
		return
	}
	if updated == nil {
		response.NotFound(w, "Booking not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"booking": updated})
}

// DeleteBooking handles DELETE /bookings/{id}
func (h *Handlers) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.bookings.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		logger.ErrorContext(r.Context(), "Failed to delete booking", "error", err)
		response.InternalError(w, "Failed to delete booking")
		return
	}
	if !deleted {
		response.NotFound(w, "Booking not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "message": "Booking deleted"})
}

// DeleteAllBookings handles DELETE /bookings. Irreversible bulk clear.
func (h *Handlers) DeleteAllBookings(w http.ResponseWriter, r *http.Request) {
	if err := h.bookings.DeleteAll(r.Context()); err != nil {
		logger.ErrorContext(r.Context(), "Failed to delete bookings", "error", err)
		response.InternalError(w, "Failed to delete bookings")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}
