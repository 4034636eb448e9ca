package appointment

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"carelink-go/internal/domain/ids"
)

const clockLayout = "15:04"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListAppointments(ctx context.Context, userID string, filter ListFilter) ([]Appointment, error) {
	if filter.Status != nil && !filter.Status.Valid() {
		return nil, ErrInvalidStatus
	}
	return s.repo.ListAppointments(ctx, userID, filter)
}

func (s *Service) GetAppointment(ctx context.Context, userID, appointmentID string) (*Appointment, error) {
	if !ids.Valid(appointmentID) {
		return nil, ErrAppointmentNotFound
	}
	return s.repo.GetAppointmentByID(ctx, userID, appointmentID)
}

func (s *Service) CreateAppointment(ctx context.Context, input CreateAppointmentInput) (*Appointment, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	if !input.Type.Valid() {
		return nil, ErrInvalidType
	}
	if input.Date.IsZero() {
		return nil, ErrDateRequired
	}
	clock, err := normalizeClock(input.Time)
	if err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = StatusScheduled
	}
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	createdBy := input.CreatedBy
	if createdBy == "" {
		createdBy = input.UserID
	}

	appointment := Appointment{
		ID:        uuid.NewString(),
		UserID:    input.UserID,
		Title:     title,
		Type:      input.Type,
		Date:      input.Date,
		Time:      clock,
		Location:  strings.TrimSpace(input.Location),
		Notes:     input.Notes,
		Status:    status,
		Reminder:  input.Reminder,
		CreatedBy: createdBy,
	}
	if err := s.repo.CreateAppointment(ctx, &appointment); err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (s *Service) UpdateAppointment(ctx context.Context, input UpdateAppointmentInput) (*Appointment, error) {
	appointment, err := s.GetAppointment(ctx, input.UserID, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, ErrTitleRequired
		}
		appointment.Title = title
	}
	if input.Type != nil {
		if !input.Type.Valid() {
			return nil, ErrInvalidType
		}
		appointment.Type = *input.Type
	}
	if input.Date != nil {
		appointment.Date = *input.Date
	}
	if input.Time != nil {
		clock, err := normalizeClock(*input.Time)
		if err != nil {
			return nil, err
		}
		appointment.Time = clock
	}
	if input.Location != nil {
		appointment.Location = strings.TrimSpace(*input.Location)
	}
	if input.Notes != nil {
		appointment.Notes = input.Notes
	}
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, ErrInvalidStatus
		}
		appointment.Status = *input.Status
	}
	if input.Reminder != nil {
		appointment.Reminder = *input.Reminder
	}
	appointment.UpdatedAt = time.Now().UTC()

	if err := s.repo.UpdateAppointment(ctx, appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

func (s *Service) DeleteAppointment(ctx context.Context, userID, appointmentID string) error {
	if !ids.Valid(appointmentID) {
		return ErrAppointmentNotFound
	}
	deleted, err := s.repo.DeleteAppointment(ctx, userID, appointmentID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrAppointmentNotFound
	}
	return nil
}

func normalizeClock(value string) (string, error) {
	parsed, err := time.Parse(clockLayout, strings.TrimSpace(value))
	if err != nil {
		return "", ErrInvalidTime
	}
	return parsed.Format(clockLayout), nil
}
