package repository

import (
	"time"

	"github.com/cooltechhq/hvac-ops-api/internal/domain/entity"
)

// AppointmentRepository persistence port for calendar appointments.
type AppointmentRepository interface {
	Create(appointment *entity.Appointment) error
	GetByID(id string) (*entity.Appointment, error)
	ListBetween(from, to time.Time) ([]*entity.Appointment, error)
	ListByProject(projectID string) ([]*entity.Appointment, error)
	Update(appointment *entity.Appointment) error
	Delete(id string) error
}
