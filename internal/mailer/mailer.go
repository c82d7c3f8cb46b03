package mailer

import "context"

// Service delivers email. The demo build only ever uses the Mock:
// verification and reset codes are "sent" but never leave the process.
type Service interface {
	Send(ctx context.Context, e Email) error
}

type Email struct {
	FromName string
	From     string

	To      []string
	Subject string
	Text    string
}
