package entity

import "time"

// Application roles.
const (
	RoleAdmin      = "admin"
	RoleOffice     = "office"
	RoleTechnician = "technician"
)

// User is an application account. PasswordHash is a bcrypt hash.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string
	Status       string // "active" | "disabled"
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
