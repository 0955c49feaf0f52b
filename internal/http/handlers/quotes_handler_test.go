package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/sparklenest/cleaning-bookings/internal/domain"
)

func TestCreateQuote(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodPost, "/quotes", map[string]any{
		"email":         "a@b.com",
		"serviceArea":   "ottawa",
		"adults":        "2",
		"serviceLevel":  "standard",
		"squareFootage": "1200",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Quote domain.Quote `json:"quote"`
	}
	decodeBody(t, rec, &resp)

	if resp.Quote.Status != domain.QuotePending {
		t.Errorf("expected status pending, got %q", resp.Quote.Status)
	}
	if resp.Quote.Comments != "" {
		t.Errorf("expected comments to default to empty, got %q", resp.Quote.Comments)
	}
	if resp.Quote.ID == "" {
		t.Error("expected non-empty quote id")
	}
	if resp.Quote.ServiceArea != "ottawa" || resp.Quote.Adults != "2" {
		t.Error("submitted fields must pass through unchanged")
	}
}

func TestCreateQuoteMissingFields(t *testing.T) {
	required := map[string]any{
		"email":         "a@b.com",
		"serviceArea":   "kanata",
		"adults":        "3",
		"serviceLevel":  "premium",
		"squareFootage": "2400",
	}

	for field := range required {
		t.Run(field, func(t *testing.T) {
			env := newTestEnv()

			body := make(map[string]any, len(required))
			for k, v := range required {
				if k != field {
					body[k] = v
				}
			}

			rec := env.do(t, http.MethodPost, "/quotes", body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			if len(env.quotes.quotes) != 0 {
				t.Error("repository should not be touched on validation failure")
			}
		})
	}
}

func TestCreateQuoteStoreError(t *testing.T) {
	env := newTestEnv()
	env.quotes.createErr = fmt.Errorf("write concern error")

	rec := env.do(t, http.MethodPost, "/quotes", map[string]any{
		"email":         "a@b.com",
		"serviceArea":   "ottawa",
		"adults":        "2",
		"serviceLevel":  "basic",
		"squareFootage": "900",
	})
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 on store failure, got %d", rec.Code)
	}
}

func TestListQuotes(t *testing.T) {
	env := newTestEnv()

	for i := 0; i < 2; i++ {
		env.do(t, http.MethodPost, "/quotes", map[string]any{
			"email":         fmt.Sprintf("c%d@example.com", i),
			"serviceArea":   "nepean",
			"adults":        "2",
			"serviceLevel":  "deep-clean",
			"squareFootage": "1500",
		})
	}

	rec := env.do(t, http.MethodGet, "/quotes", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Quotes []domain.Quote `json:"quotes"`
	}
	decodeBody(t, rec, &resp)

	if len(resp.Quotes) != 2 {
		t.Fatalf("expected 2 quotes, got %d", len(resp.Quotes))
	}
	if resp.Quotes[0].Email != "c1@example.com" {
		t.Error("expected most recent quote first")
	}
}

func TestUpdateQuoteStatus(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodPost, "/quotes", map[string]any{
		"email":         "a@b.com",
		"serviceArea":   "barrhaven",
		"adults":        "4",
		"serviceLevel":  "standard",
		"squareFootage": "2000",
	})
	var created struct {
		Quote domain.Quote `json:"quote"`
	}
	decodeBody(t, rec, &created)

	for _, status := range []domain.QuoteStatus{domain.QuoteReviewed, domain.QuoteContacted, domain.QuotePending} {
		rec = env.do(t, http.MethodPatch, "/quotes/"+created.Quote.ID, map[string]string{"status": string(status)})
		if rec.Code != http.StatusOK {
			t.Fatalf("transition to %q: expected 200, got %d", status, rec.Code)
		}

		var updated struct {
			Quote domain.Quote `json:"quote"`
		}
		decodeBody(t, rec, &updated)
		if updated.Quote.Status != status {
			t.Errorf("expected %q, got %q", status, updated.Quote.Status)
		}
	}
}

func TestUpdateQuoteStatusOutsideClosedSet(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodPost, "/quotes", map[string]any{
		"email":         "a@b.com",
		"serviceArea":   "gatineau",
		"adults":        "1",
		"serviceLevel":  "basic",
		"squareFootage": "800",
	})
	var created struct {
		Quote domain.Quote `json:"quote"`
	}
	decodeBody(t, rec, &created)

	rec = env.do(t, http.MethodPatch, "/quotes/"+created.Quote.ID, map[string]string{"status": "archived"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	if env.quotes.quotes[created.Quote.ID].Status != domain.QuotePending {
		t.Error("quote must be unchanged after a rejected status")
	}
}

func TestUpdateQuoteStatusNotFound(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodPatch, "/quotes/ffffffffffffffffffffffff", map[string]string{"status": "reviewed"})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestDeleteQuote(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodPost, "/quotes", map[string]any{
		"email":         "a@b.com",
		"serviceArea":   "ottawa",
		"adults":        "2",
		"serviceLevel":  "premium",
		"squareFootage": "1800",
	})
	var created struct {
		Quote domain.Quote `json:"quote"`
	}
	decodeBody(t, rec, &created)

	rec = env.do(t, http.MethodDelete, "/quotes/"+created.Quote.ID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	decodeBody(t, rec, &resp)
	if resp["success"] != true || resp["message"] != "Quote deleted" {
		t.Errorf("unexpected delete response: %v", resp)
	}

	rec = env.do(t, http.MethodDelete, "/quotes/"+created.Quote.ID, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on repeat delete, got %d", rec.Code)
	}
}

func TestEmailLogsEndpoints(t *testing.T) {
	env := newTestEnv()
	env.emails.entries = []domain.EmailLogEntry{
		{ID: "log-1", To: "admin@example.com", Subject: "New booking", Sent: true},
	}

	rec := env.do(t, http.MethodGet, "/email-logs", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		EmailLogs []domain.EmailLogEntry `json:"emailLogs"`
	}
	decodeBody(t, rec, &resp)
	if len(resp.EmailLogs) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(resp.EmailLogs))
	}

	rec = env.do(t, http.MethodDelete, "/email-logs", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(env.emails.entries) != 0 {
		t.Error("expected logs cleared")
	}
}
