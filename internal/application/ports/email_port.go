package ports

import "context"

// EmailSender delivers a single HTML email.
type EmailSender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}
