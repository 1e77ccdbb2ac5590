package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/cooltechhq/hvac-ops-api/internal/application/dto"
	"github.com/cooltechhq/hvac-ops-api/internal/domain"
	"github.com/cooltechhq/hvac-ops-api/internal/domain/entity"
	"github.com/cooltechhq/hvac-ops-api/internal/domain/repository"
)

// AppointmentUseCase calendar CRUD.
type AppointmentUseCase struct {
	repo repository.AppointmentRepository
}

// NewAppointmentUseCase builds the use case.
func NewAppointmentUseCase(repo repository.AppointmentRepository) *AppointmentUseCase {
	return &AppointmentUseCase{repo: repo}
}

func validAppointmentType(t entity.AppointmentType) bool {
	switch t {
	case entity.AppointmentTypeSiteVisit, entity.AppointmentTypeConsultation, entity.AppointmentTypeInstallation,
		entity.AppointmentTypeMaintenance, entity.AppointmentTypeFollowUp, entity.AppointmentTypeOther:
		return true
	}
	return false
}

func validAppointmentStatus(s entity.AppointmentStatus) bool {
	switch s {
	case entity.AppointmentStatusScheduled, entity.AppointmentStatusCompleted, entity.AppointmentStatusCancelled:
		return true
	}
	return false
}

// Create schedules an appointment. End must not precede start.
func (uc *AppointmentUseCase) Create(in dto.AppointmentRequest) (*dto.AppointmentResponse, error) {
	if in.Title == "" || in.StartTime.IsZero() || in.EndTime.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	if in.EndTime.Before(in.StartTime) {
		return nil, domain.ErrInvalidInput
	}
	apptType := entity.AppointmentTypeOther
	if in.Type != "" {
		apptType = entity.AppointmentType(in.Type)
		if !validAppointmentType(apptType) {
			return nil, domain.ErrInvalidInput
		}
	}
	status := entity.AppointmentStatusScheduled
	if in.Status != "" {
		status = entity.AppointmentStatus(in.Status)
		if !validAppointmentStatus(status) {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	appt := &entity.Appointment{
		ID:         uuid.New().String(),
		Title:      in.Title,
		StartTime:  in.StartTime,
		EndTime:    in.EndTime,
		ProjectID:  in.ProjectID,
		ClientID:   in.ClientID,
		AssignedTo: in.AssignedTo,
		Type:       apptType,
		Status:     status,
		Notes:      in.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(appt); err != nil {
		return nil, err
	}
	return toAppointmentResponse(appt), nil
}

// GetByID fetches one appointment.
func (uc *AppointmentUseCase) GetByID(id string) (*dto.AppointmentResponse, error) {
	appt, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, domain.ErrNotFound
	}
	return toAppointmentResponse(appt), nil
}

// ListBetween returns appointments that start inside [from, to). A zero
// "to" defaults to thirty days past "from".
func (uc *AppointmentUseCase) ListBetween(from, to time.Time) ([]*dto.AppointmentResponse, error) {
	if from.IsZero() {
		from = time.Now()
	}
	if to.IsZero() {
		to = from.AddDate(0, 0, 30)
	}
	appts, err := uc.repo.ListBetween(from, to)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AppointmentResponse, 0, len(appts))
	for _, a := range appts {
		out = append(out, toAppointmentResponse(a))
	}
	return out, nil
}

// ListByProject returns all appointments of one project.
func (uc *AppointmentUseCase) ListByProject(projectID string) ([]*dto.AppointmentResponse, error) {
	appts, err := uc.repo.ListByProject(projectID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AppointmentResponse, 0, len(appts))
	for _, a := range appts {
		out = append(out, toAppointmentResponse(a))
	}
	return out, nil
}

// Update rewrites an appointment's fields.
func (uc *AppointmentUseCase) Update(id string, in dto.AppointmentRequest) (*dto.AppointmentResponse, error) {
	appt, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, domain.ErrNotFound
	}
	if in.Title != "" {
		appt.Title = in.Title
	}
	if !in.StartTime.IsZero() {
		appt.StartTime = in.StartTime
	}
	if !in.EndTime.IsZero() {
		appt.EndTime = in.EndTime
	}
	if appt.EndTime.Before(appt.StartTime) {
		return nil, domain.ErrInvalidInput
	}
	appt.ProjectID = in.ProjectID
	appt.ClientID = in.ClientID
	if in.AssignedTo != nil {
		appt.AssignedTo = in.AssignedTo
	}
	if in.Type != "" {
		apptType := entity.AppointmentType(in.Type)
		if !validAppointmentType(apptType) {
			return nil, domain.ErrInvalidInput
		}
		appt.Type = apptType
	}
	if in.Status != "" {
		status := entity.AppointmentStatus(in.Status)
		if !validAppointmentStatus(status) {
			return nil, domain.ErrInvalidInput
		}
		appt.Status = status
	}
	appt.Notes = in.Notes
	appt.UpdatedAt = time.Now()
	if err := uc.repo.Update(appt); err != nil {
		return nil, err
	}
	return toAppointmentResponse(appt), nil
}

// Delete removes an appointment.
func (uc *AppointmentUseCase) Delete(id string) error {
	appt, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if appt == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toAppointmentResponse(a *entity.Appointment) *dto.AppointmentResponse {
	return &dto.AppointmentResponse{
		ID:         a.ID,
		Title:      a.Title,
		StartTime:  a.StartTime,
		EndTime:    a.EndTime,
		ProjectID:  a.ProjectID,
		ClientID:   a.ClientID,
		AssignedTo: a.AssignedTo,
		Type:       string(a.Type),
		Status:     string(a.Status),
		Notes:      a.Notes,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}
