package notify

import (
	"context"
	"fmt"
	"html"
	"sync"
	"time"

	"github.com/sparklenest/cleaning-bookings/internal/domain"
	"github.com/sparklenest/cleaning-bookings/internal/platform/mailer"
	"github.com/sparklenest/cleaning-bookings/internal/repo/mongodb"
	"github.com/sparklenest/cleaning-bookings/pkg/logger"
)

// Notifier dispatches admin notification emails off the request path.
// Jobs go through a bounded queue worked by a single goroutine; a full
// queue drops the job. Every attempt, failed or not, is recorded in the
// email log. Nothing here is retried and no outcome reaches the caller.
type Notifier struct {
	mailer     mailer.Service
	logs       mongodb.EmailLogsRepository
	adminEmail string

	jobs chan job
	wg   sync.WaitGroup
}

type job struct {
	to      string
	subject string
	text    string
	html    string
}

func New(m mailer.Service, logs mongodb.EmailLogsRepository, adminEmail string, queueSize int) *Notifier {
	if queueSize <= 0 {
		queueSize = 64
	}
	n := &Notifier{
		mailer:     m,
		logs:       logs,
		adminEmail: adminEmail,
		jobs:       make(chan job, queueSize),
	}
	n.wg.Add(1)
	go n.work()
	return n
}

// BookingCreated enqueues the admin notification for a new booking.
// Never blocks; the booking is already durable when this is called.
func (n *Notifier) BookingCreated(b *domain.Booking) {
	j := job{
		to:      n.adminEmail,
		subject: fmt.Sprintf("New booking from %s", b.Name),
		text:    bookingText(b),
		html:    bookingHTML(b),
	}
	select {
	case n.jobs <- j:
	default:
		logger.Warn("Notification queue full, dropping job", "to", j.to, "subject", j.subject)
	}
}

// Close stops accepting jobs and waits for the worker to drain the queue.
func (n *Notifier) Close() {
	close(n.jobs)
	n.wg.Wait()
}

func (n *Notifier) work() {
	defer n.wg.Done()
	for j := range n.jobs {
		n.send(j)
	}
}

func (n *Notifier) send(j job) {
	entry := domain.EmailLogInput{
		To:      j.to,
		Subject: j.subject,
		HTML:    j.html,
		Sent:    true,
	}

	if _, err := n.mailer.Send(j.to, "", j.subject, j.text, j.html); err != nil {
		logger.Error("Notification send failed", "to", j.to, "subject", j.subject, "error", err)
		entry.Sent = false
		entry.Error = err.Error()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := n.logs.Create(ctx, &entry); err != nil {
		logger.Error("Failed to record email log entry", "to", j.to, "error", err)
	}
}

func bookingText(b *domain.Booking) string {
	return fmt.Sprintf(
		"New booking %s\nName: %s\nEmail: %s\nPhone: %s\nDate: %s at %s\nService: %s\nLocation: %s",
		b.ID, b.Name, b.Email, b.Phone, b.Date, b.Time, b.Service, b.Location,
	)
}

func bookingHTML(b *domain.Booking) string {
	esc := html.EscapeString
	return fmt.Sprintf(
		`<h2>New booking</h2>
<table>
<tr><td>Name</td><td>%s</td></tr>
<tr><td>Email</td><td>%s</td></tr>
<tr><td>Phone</td><td>%s</td></tr>
<tr><td>Date</td><td>%s at %s</td></tr>
<tr><td>Service</td><td>%s</td></tr>
<tr><td>Location</td><td>%s</td></tr>
</table>
<p>Booking id: %s</p>`,
		esc(b.Name), esc(b.Email), esc(b.Phone), esc(b.Date), esc(b.Time),
		esc(b.Service), esc(b.Location), esc(b.ID),
	)
}
