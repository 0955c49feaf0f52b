package mailer

// Service sends a single transactional email. Implementations return the
// provider's message id when one exists.
type Service interface {
	Send(toEmail, toName, subject, text, html string) (string, error)
}
