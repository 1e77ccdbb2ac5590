package email

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/cooltechhq/hvac-ops-api/internal/application/ports"
	"github.com/cooltechhq/hvac-ops-api/pkg/config"
)

var _ ports.EmailSender = (*SMTPSender)(nil)

// SMTPSender delivers HTML email over plain SMTP. An empty host turns the
// sender into an error so misconfiguration surfaces on first use, not at
// startup.
type SMTPSender struct {
	cfg  config.SMTPConfig
	from string
}

// NewSMTPSender builds the sender. from is the envelope and header sender
// address.
func NewSMTPSender(cfg config.SMTPConfig, from string) *SMTPSender {
	return &SMTPSender{cfg: cfg, from: from}
}

// Send delivers one HTML email.
func (s *SMTPSender) Send(ctx context.Context, to, subject, htmlBody string) error {
	if s.cfg.Host == "" {
		return fmt.Errorf("email: SMTP_HOST not configured")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		s.from, to, subject, htmlBody,
	))
	if err := smtp.SendMail(addr, auth, s.from, []string{to}, msg); err != nil {
		return fmt.Errorf("email: send to %s: %w", to, err)
	}
	return nil
}
