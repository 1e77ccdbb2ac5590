package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/cooltechhq/hvac-ops-api/internal/domain"
	"github.com/cooltechhq/hvac-ops-api/internal/domain/entity"
	"github.com/cooltechhq/hvac-ops-api/internal/domain/repository"
)

var _ repository.AppointmentRepository = (*AppointmentRepo)(nil)

// AppointmentRepo AppointmentRepository over PostgreSQL (usable with pool
// or tx). Assigned technicians live in a JSONB column.
type AppointmentRepo struct {
	q Querier
}

// NewAppointmentRepository builds the adapter. Pass a pool or tx (Querier).
func NewAppointmentRepository(q Querier) *AppointmentRepo {
	return &AppointmentRepo{q: q}
}

const appointmentColumns = `id, title, start_time, end_time, COALESCE(project_id, ''),
	COALESCE(client_id, ''), assigned_to, type, status, notes, created_at, updated_at`

func scanAppointment(row pgx.Row) (*entity.Appointment, error) {
	var a entity.Appointment
	var assigned []byte
	err := row.Scan(
		&a.ID, &a.Title, &a.StartTime, &a.EndTime, &a.ProjectID, &a.ClientID,
		&assigned, &a.Type, &a.Status, &a.Notes, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(assigned, &a.AssignedTo); err != nil {
		return nil, fmt.Errorf("decode assigned_to: %w", err)
	}
	return &a, nil
}

// Create persists a new appointment.
func (r *AppointmentRepo) Create(appointment *entity.Appointment) error {
	assigned, err := marshalJSONB(appointment.AssignedTo)
	if err != nil {
		return fmt.Errorf("encode assigned_to: %w", err)
	}
	query := `
		INSERT INTO appointments (id, title, start_time, end_time, project_id, client_id,
			assigned_to, type, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err = r.q.Exec(context.Background(), query,
		appointment.ID, appointment.Title, appointment.StartTime, appointment.EndTime,
		nullIfEmpty(appointment.ProjectID), nullIfEmpty(appointment.ClientID), assigned,
		appointment.Type, appointment.Status, appointment.Notes,
		appointment.CreatedAt, appointment.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert appointment: %w", err)
	}
	return nil
}

// GetByID fetches an appointment by ID.
func (r *AppointmentRepo) GetByID(id string) (*entity.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE id = $1`
	a, err := scanAppointment(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	return a, nil
}

// ListBetween returns appointments starting inside [from, to), earliest
// first.
func (r *AppointmentRepo) ListBetween(from, to time.Time) ([]*entity.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments
		WHERE start_time >= $1 AND start_time < $2 ORDER BY start_time`
	return r.queryAppointments(query, from, to)
}

// ListByProject returns all appointments of one project.
func (r *AppointmentRepo) ListByProject(projectID string) ([]*entity.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE project_id = $1 ORDER BY start_time`
	return r.queryAppointments(query, projectID)
}

func (r *AppointmentRepo) queryAppointments(query string, args ...any) ([]*entity.Appointment, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// Update rewrites an appointment.
func (r *AppointmentRepo) Update(appointment *entity.Appointment) error {
	assigned, err := marshalJSONB(appointment.AssignedTo)
	if err != nil {
		return fmt.Errorf("encode assigned_to: %w", err)
	}
	query := `
		UPDATE appointments SET title = $2, start_time = $3, end_time = $4, project_id = $5,
			client_id = $6, assigned_to = $7, type = $8, status = $9, notes = $10, updated_at = $11
		WHERE id = $1`
	_, err = r.q.Exec(context.Background(), query,
		appointment.ID, appointment.Title, appointment.StartTime, appointment.EndTime,
		nullIfEmpty(appointment.ProjectID), nullIfEmpty(appointment.ClientID), assigned,
		appointment.Type, appointment.Status, appointment.Notes, appointment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update appointment: %w", err)
	}
	return nil
}

// Delete removes an appointment by ID.
func (r *AppointmentRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete appointment: %w", err)
	}
	return nil
}
