package notify_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/sparklenest/cleaning-bookings/internal/domain"
	"github.com/sparklenest/cleaning-bookings/internal/notify"
)

type mockMailer struct {
	mu      sync.Mutex
	sent    []string // recipient per attempt
	sendErr error
	gate    chan struct{} // when set, Send blocks until the gate closes
}

func (m *mockMailer) Send(toEmail, toName, subject, text, html string) (string, error) {
	if m.gate != nil {
		<-m.gate
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, toEmail)
	return "mock-id", m.sendErr
}

type mockEmailLogs struct {
	mu      sync.Mutex
	entries []domain.EmailLogInput
}

func (m *mockEmailLogs) Create(_ context.Context, input *domain.EmailLogInput) (*domain.EmailLogEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, *input)
	return &domain.EmailLogEntry{ID: fmt.Sprintf("log-%d", len(m.entries))}, nil
}

func (m *mockEmailLogs) List(context.Context) ([]domain.EmailLogEntry, error) { return nil, nil }
func (m *mockEmailLogs) Clear(context.Context) error                          { return nil }

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:       "64b0c0c0c0c0c0c0c0c0c001",
		Name:     "Maya Tremblay",
		Email:    "maya@example.com",
		Phone:    "613-555-0142",
		Date:     "2026-09-12",
		Time:     "10:30",
		Service:  "Deep Cleaning",
		Location: "145 Bronson Ave, Ottawa",
		Status:   domain.BookingPending,
	}
}

func TestBookingCreatedSendsAndLogs(t *testing.T) {
	mailer := &mockMailer{}
	logs := &mockEmailLogs{}

	n := notify.New(mailer, logs, "admin@example.com", 8)
	n.BookingCreated(testBooking())
	n.Close()

	if len(mailer.sent) != 1 || mailer.sent[0] != "admin@example.com" {
		t.Fatalf("expected one send to admin, got %v", mailer.sent)
	}
	if len(logs.entries) != 1 {
		t.Fatalf("expected one log entry, got %d", len(logs.entries))
	}
	entry := logs.entries[0]
	if !entry.Sent {
		t.Error("expected sent=true")
	}
	if entry.Error != "" {
		t.Errorf("expected empty error, got %q", entry.Error)
	}
	if entry.To != "admin@example.com" {
		t.Errorf("unexpected recipient %q", entry.To)
	}
}

func TestSendFailureIsSwallowedAndLogged(t *testing.T) {
	mailer := &mockMailer{sendErr: fmt.Errorf("smtp: 550 rejected")}
	logs := &mockEmailLogs{}

	n := notify.New(mailer, logs, "admin@example.com", 8)
	n.BookingCreated(testBooking())
	n.Close()

	if len(logs.entries) != 1 {
		t.Fatalf("expected one log entry, got %d", len(logs.entries))
	}
	entry := logs.entries[0]
	if entry.Sent {
		t.Error("expected sent=false on mailer failure")
	}
	if entry.Error == "" {
		t.Error("expected error text recorded")
	}
}

func TestFullQueueDropsWithoutBlocking(t *testing.T) {
	gate := make(chan struct{})
	mailer := &mockMailer{gate: gate}
	logs := &mockEmailLogs{}

	n := notify.New(mailer, logs, "admin@example.com", 1)

	done := make(chan struct{})
	go func() {
		// One job may be in flight and one queued; the rest must drop
		for i := 0; i < 5; i++ {
			n.BookingCreated(testBooking())
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("enqueue blocked on a full queue")
	}

	close(gate)
	n.Close()

	if len(mailer.sent) > 2 {
		t.Errorf("expected at most 2 sends (1 in flight + 1 queued), got %d", len(mailer.sent))
	}
	if len(mailer.sent) == 0 {
		t.Error("expected at least one send")
	}
}
