package usecase

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/cooltechhq/hvac-ops-api/internal/application/dto"
	"github.com/cooltechhq/hvac-ops-api/internal/application/ports"
	"github.com/cooltechhq/hvac-ops-api/internal/domain"
	"github.com/cooltechhq/hvac-ops-api/internal/domain/repository"
)

// MessageUseCase the message center: free-form email and SMS to clients.
// Email bodies get the company-branded wrapper; SMS goes out as typed.
type MessageUseCase struct {
	clientRepo  repository.ClientRepository
	email       ports.EmailSender
	sms         ports.SMSSender
	companyName string
}

// NewMessageUseCase builds the use case.
func NewMessageUseCase(clientRepo repository.ClientRepository, email ports.EmailSender, sms ports.SMSSender, companyName string) *MessageUseCase {
	return &MessageUseCase{clientRepo: clientRepo, email: email, sms: sms, companyName: companyName}
}

// Send delivers the message. Recipient falls back to the client's stored
// email or phone for the chosen method.
func (uc *MessageUseCase) Send(ctx context.Context, in dto.MessageRequest) error {
	if in.Body == "" {
		return domain.ErrInvalidInput
	}
	var email, phone string
	if in.ClientID != "" {
		client, err := uc.clientRepo.GetByID(in.ClientID)
		if err != nil {
			return err
		}
		if client == nil {
			return domain.ErrNotFound
		}
		email, phone = client.Email, client.Phone
	}

	switch in.Method {
	case "", "email":
		to := in.Recipient
		if to == "" {
			to = email
		}
		if to == "" {
			return domain.ErrInvalidInput
		}
		subject := in.Subject
		if subject == "" {
			subject = fmt.Sprintf("Message from %s", uc.companyName)
		}
		return uc.email.Send(ctx, to, subject, uc.wrap(in.Body))
	case "sms":
		to := in.Recipient
		if to == "" {
			to = phone
		}
		if to == "" {
			return domain.ErrInvalidInput
		}
		return uc.sms.Send(ctx, to, in.Body)
	default:
		return domain.ErrInvalidInput
	}
}

// wrap puts the plain-text body into the branded email frame, preserving
// line breaks.
func (uc *MessageUseCase) wrap(body string) string {
	escaped := strings.ReplaceAll(html.EscapeString(body), "\n", "<br>")
	var b strings.Builder
	b.WriteString(`<!DOCTYPE html><html><body style="margin:0;padding:0;background:#f4f5f7;font-family:Arial,Helvetica,sans-serif;color:#222;">`)
	b.WriteString(`<div style="max-width:600px;margin:0 auto;padding:24px;">`)
	fmt.Fprintf(&b, `<div style="background:#1a3c6e;color:#fff;padding:16px 24px;border-radius:6px 6px 0 0;font-size:20px;font-weight:bold;">%s</div>`, html.EscapeString(uc.companyName))
	fmt.Fprintf(&b, `<div style="background:#fff;padding:24px;border-radius:0 0 6px 6px;"><p>%s</p></div>`, escaped)
	b.WriteString(`</div></body></html>`)
	return b.String()
}
