package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sparklenest/cleaning-bookings/internal/domain"
	"github.com/sparklenest/cleaning-bookings/internal/repo/mongodb"
)

// Notifier dispatches the admin notification for a new booking without
// blocking. The outcome is deliberately ignored by the handlers.
type Notifier interface {
	BookingCreated(b *domain.Booking)
}

type Handlers struct {
	bookings mongodb.BookingsRepository
	quotes   mongodb.QuotesRepository
	emails   mongodb.EmailLogsRepository
	notifier Notifier
}

func New(bookings mongodb.BookingsRepository, quotes mongodb.QuotesRepository, emails mongodb.EmailLogsRepository, notifier Notifier) *Handlers {
	return &Handlers{
		bookings: bookings,
		quotes:   quotes,
		emails:   emails,
		notifier: notifier,
	}
}

func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}
