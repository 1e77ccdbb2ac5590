package sms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cooltechhq/hvac-ops-api/internal/application/ports"
	"github.com/cooltechhq/hvac-ops-api/pkg/config"
)

var _ ports.SMSSender = (*TwilioSender)(nil)

const twilioAPIBase = "https://api.twilio.com/2010-04-01"

// TwilioSender delivers SMS through the Twilio Messages REST API with
// plain net/http; no SDK needed. An empty account SID turns every call
// into a descriptive error.
type TwilioSender struct {
	cfg        config.SMSConfig
	httpClient *http.Client
}

// NewTwilioSender builds the sender.
func NewTwilioSender(cfg config.SMSConfig) *TwilioSender {
	return &TwilioSender{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type twilioError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Send delivers one text message to an E.164 phone number.
func (s *TwilioSender) Send(ctx context.Context, to, body string) error {
	if s.cfg.AccountSID == "" {
		return fmt.Errorf("sms: SMS_ACCOUNT_SID not configured")
	}

	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", twilioAPIBase, s.cfg.AccountSID)
	form := url.Values{}
	form.Set("To", to)
	form.Set("From", s.cfg.FromNumber)
	form.Set("Body", body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("sms: build HTTP request: %w", err)
	}
	req.SetBasicAuth(s.cfg.AccountSID, s.cfg.AuthToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("sms: timeout or cancellation: %w", ctx.Err())
		}
		return fmt.Errorf("sms: HTTP call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		rawBody, _ := io.ReadAll(io.LimitReader(resp.Body, 16*1024))
		var twErr twilioError
		if jsonErr := json.Unmarshal(rawBody, &twErr); jsonErr == nil && twErr.Message != "" {
			return fmt.Errorf("sms: twilio error %d: %s", twErr.Code, twErr.Message)
		}
		return fmt.Errorf("sms: twilio HTTP %d: %s", resp.StatusCode, string(rawBody))
	}
	return nil
}
