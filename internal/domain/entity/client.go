package entity

import "time"

// Client is a customer of the contracting business.
type Client struct {
	ID             string
	ClientName     string
	ContactName    string
	Phone          string
	Email          string
	BillingAddress string
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
