package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sparklenest/cleaning-bookings/internal/domain"
	"github.com/sparklenest/cleaning-bookings/internal/http/response"
	"github.com/sparklenest/cleaning-bookings/pkg/logger"
)

// ListQuotes handles GET /quotes
func (h *Handlers) ListQuotes(w http.ResponseWriter, r *http.Request) {
	quotes, err := h.quotes.List(r.Context())
	if err != nil {
		logger.ErrorContext(r.Context(), "Failed to list quotes", "error", err)
		response.InternalError(w, "Failed to fetch quotes")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"quotes": quotes})
}

// CreateQuote handles POST /quotes
func (h *Handlers) CreateQuote(w http.ResponseWriter, r *http.Request) {
	var input domain.QuoteInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "Invalid JSON format")
		return
	}

	if input.Email == "" || input.ServiceArea == "" || input.Adults == "" ||
		input.ServiceLevel == "" || input.SquareFootage == "" {
		response.BadRequest(w, "Missing required fields: email, serviceArea, adults, serviceLevel, squareFootage")
		return
	}

	created, err := h.quotes.Create(r.Context(), &input)
	if err != nil {
		logger.ErrorContext(r.Context(), "Failed to create quote", "error", err)
		response.InternalError(w, "Failed to create quote")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"quote": created})
}

// GetQuote handles GET /quotes/{id}
func (h *Handlers) GetQuote(w http.ResponseWriter, r *http.Request) {
	quote, err := h.quotes.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		logger.ErrorContext(r.Context(), "Failed to get quote", "error", err)
		response.InternalError(w, "Failed to fetch quote")
		return
	}
	if quote == nil {
		response.NotFound(w, "Quote not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"quote": quote})
}

// UpdateQuoteStatus handles PATCH /quotes/{id}
func (h *Handlers) UpdateQuoteStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.BadRequest(w, "Invalid JSON format")
		return
	}

	status, ok := domain.ParseQuoteStatus(body.Status)
	if !ok {
		response.BadRequest(w, "Invalid status")
		return
	}

	updated, err := h.quotes.UpdateStatus(r.Context(), chi.URLParam(r, "id"), status)
	if err != nil {
		logger.ErrorContext(r.Context(), "Failed to update quote status", "error", err)
		response.InternalError(w, "Failed to update quote")
		return
	}
	if updated == nil {
		response.NotFound(w, "Quote not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"quote": updated})
}

// DeleteQuote handles DELETE /quotes/{id}
func (h *Handlers) DeleteQuote(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.quotes.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		logger.ErrorContext(r.Context(), "Failed to delete quote", "error", err)
		response.InternalError(w, "Failed to delete quote")
		return
	}
	if !deleted {
		response.NotFound(w, "Quote not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "message": "Quote deleted"})
}
