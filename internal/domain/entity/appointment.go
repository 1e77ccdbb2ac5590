package entity

import "time"

// AppointmentType kind of calendar entry.
type AppointmentType string

const (
	AppointmentTypeSiteVisit    AppointmentType = "site_visit"
	AppointmentTypeConsultation AppointmentType = "consultation"
	AppointmentTypeInstallation AppointmentType = "installation"
	AppointmentTypeMaintenance  AppointmentType = "maintenance"
	AppointmentTypeFollowUp     AppointmentType = "follow_up"
	AppointmentTypeOther        AppointmentType = "other"
)

// AppointmentStatus scheduling state.
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Appointment is a calendar entry, optionally linked to a client and
// project, with assigned technicians.
type Appointment struct {
	ID         string
	Title      string
	StartTime  time.Time
	EndTime    time.Time
	ProjectID  string
	ClientID   string
	AssignedTo []string
	Type       AppointmentType
	Status     AppointmentStatus
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
