package dto

// MessageRequest body for the message center: a free-form email or SMS to
// a client, branded with the company wrapper when sent by email.
type MessageRequest struct {
	ClientID  string `json:"client_id"`
	Method    string `json:"method"`
	Recipient string `json:"recipient"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
}
