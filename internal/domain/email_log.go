package domain

// EmailLogEntry records one notification attempt. Write-only audit trail;
// the application never reads it back outside the admin viewer endpoints.
type EmailLogEntry struct {
	ID        string `json:"id"`
	To        string `json:"to"`
	Subject   string `json:"subject"`
	HTML      string `json:"html"`
	CreatedAt string `json:"createdAt"`
	Sent      bool   `json:"sent"`
	Error     string `json:"error,omitempty"`
}

// EmailLogInput is the payload for recording an attempt.
type EmailLogInput struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
	Sent    bool   `json:"sent"`
	Error   string `json:"error,omitempty"`
}
