package ports

import "context"

// Email is a plain-text message.
type Email struct {
	To      []string
	Subject string
	Body    string
}

// Mailer sends one email synchronously.
type Mailer interface {
	Send(ctx context.Context, email Email) error
}
