package ports

import "context"

// SMSSender delivers a single text message to an E.164 phone number.
type SMSSender interface {
	Send(ctx context.Context, to, body string) error
}
