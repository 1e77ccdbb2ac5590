package dto

import "time"

// ClientRequest create/update payload for a client.
type ClientRequest struct {
	ClientName     string `json:"client_name"`
	ContactName    string `json:"contact_name"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	BillingAddress string `json:"billing_address"`
	Notes          string `json:"notes"`
}

// ClientResponse client representation.
type ClientResponse struct {
	ID             string    `json:"id"`
	ClientName     string    `json:"client_name"`
	ContactName    string    `json:"contact_name"`
	Phone          string    `json:"phone"`
	Email          string    `json:"email"`
	BillingAddress string    `json:"billing_address"`
	Notes          string    `json:"notes"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
