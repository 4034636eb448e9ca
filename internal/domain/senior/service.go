// Package senior exposes a senior's data to connected family members. Every
// call is authorized against the requester's connection before any read.
package senior

import (
	"context"

	"carelink-go/internal/domain/access"
	"carelink-go/internal/domain/activity"
	"carelink-go/internal/domain/appointment"
	"carelink-go/internal/domain/health"
	"carelink-go/internal/domain/location"
	"carelink-go/internal/domain/medication"
	"carelink-go/internal/domain/user"
)

type Authorizer interface {
	Evaluate(ctx context.Context, requesterID, seniorID string) (access.Decision, error)
	Authorize(ctx context.Context, requesterID, seniorID string, category access.Category) (access.Decision, error)
	AuthorizeManage(ctx context.Context, requesterID, seniorID string, category access.Category) (access.Decision, error)
}

type HealthReader interface {
	ListMetrics(ctx context.Context, userID string, filter health.ListFilter) ([]health.Metric, int64, error)
}

type MedicationStore interface {
	ListMedications(ctx context.Context, userID string, activeOnly bool) ([]medication.Medication, error)
	CreateMedication(ctx context.Context, input medication.CreateMedicationInput) (*medication.Medication, error)
}

type AppointmentStore interface {
	ListAppointments(ctx context.Context, userID string, filter appointment.ListFilter) ([]appointment.Appointment, error)
	CreateAppointment(ctx context.Context, input appointment.CreateAppointmentInput) (*appointment.Appointment, error)
}

type LocationReader interface {
	Latest(ctx context.Context, userID string) (*location.Location, error)
	History(ctx context.Context, userID string, limit int) ([]location.Location, error)
}

type ActivityReader interface {
	List(ctx context.Context, userID string, filter activity.ListFilter) ([]activity.Activity, error)
}

type ProfileReader interface {
	GetProfile(ctx context.Context, userID string) (*user.Profile, error)
}

type Deps struct {
	Access       Authorizer
	Health       HealthReader
	Medications  MedicationStore
	Appointments AppointmentStore
	Locations    LocationReader
	Activities   ActivityReader
	Profiles     ProfileReader
}

type Service struct {
	access       Authorizer
	health       HealthReader
	medications  MedicationStore
	appointments AppointmentStore
	locations    LocationReader
	activities   ActivityReader
	profiles     ProfileReader
}

func NewService(deps Deps) *Service {
	return &Service{
		access:       deps.Access,
		health:       deps.Health,
		medications:  deps.Medications,
		appointments: deps.Appointments,
		locations:    deps.Locations,
		activities:   deps.Activities,
		profiles:     deps.Profiles,
	}
}

// Permissions returns the requester's effective decision for seniorID. Unlike
// the data readers it never denies; a missing connection yields HasAccess=false.
func (s *Service) Permissions(ctx context.Context, requesterID, seniorID string) (access.Decision, error) {
	return s.access.Evaluate(ctx, requesterID, seniorID)
}

func (s *Service) Profile(ctx context.Context, requesterID, seniorID string) (*user.Profile, error) {
	if _, err := s.access.Authorize(ctx, requesterID, seniorID, access.CategoryProfile); err != nil {
		return nil, err
	}
	return s.profiles.GetProfile(ctx, seniorID)
}

func (s *Service) HealthMetrics(ctx context.Context, requesterID, seniorID string, filter health.ListFilter) ([]health.Metric, int64, error) {
	if _, err := s.access.Authorize(ctx, requesterID, seniorID, access.CategoryHealth); err != nil {
		return nil, 0, err
	}
	return s.health.ListMetrics(ctx, seniorID, filter)
}

func (s *Service) Medications(ctx context.Context, requesterID, seniorID string, activeOnly bool) ([]medication.Medication, error) {
	if _, err := s.access.Authorize(ctx, requesterID, seniorID, access.CategoryMedications); err != nil {
		return nil, err
	}
	return s.medications.ListMedications(ctx, seniorID, activeOnly)
}

func (s *Service) Appointments(ctx context.Context, requesterID, seniorID string, filter appointment.ListFilter) ([]appointment.Appointment, error) {
	if _, err := s.access.Authorize(ctx, requesterID, seniorID, access.CategoryAppointments); err != nil {
		return nil, err
	}
	return s.appointments.ListAppointments(ctx, seniorID, filter)
}

func (s *Service) LatestLocation(ctx context.Context, requesterID, seniorID string) (*location.Location, error) {
	if _, err := s.access.Authorize(ctx, requesterID, seniorID, access.CategoryLocation); err != nil {
		return nil, err
	}
	return s.locations.Latest(ctx, seniorID)
}

func (s *Service) LocationHistory(ctx context.Context, requesterID, seniorID string, limit int) ([]location.Location, error) {
	if _, err := s.access.Authorize(ctx, requesterID, seniorID, access.CategoryLocation); err != nil {
		return nil, err
	}
	return s.locations.History(ctx, seniorID, limit)
}

func (s *Service) Activities(ctx context.Context, requesterID, seniorID string, filter activity.ListFilter) ([]activity.Activity, error) {
	if _, err := s.access.Authorize(ctx, requesterID, seniorID, access.CategoryActivity); err != nil {
		return nil, err
	}
	return s.activities.List(ctx, seniorID, filter)
}

// CreateAppointment books an appointment for seniorID. The owner and
// created_by fields are taken from the arguments, not from input.
func (s *Service) CreateAppointment(ctx context.Context, requesterID, seniorID string, input appointment.CreateAppointmentInput) (*appointment.Appointment, error) {
	if _, err := s.access.AuthorizeManage(ctx, requesterID, seniorID, access.CategoryAppointments); err != nil {
		return nil, err
	}
	input.UserID = seniorID
	input.CreatedBy = requesterID
	return s.appointments.CreateAppointment(ctx, input)
}

func (s *Service) CreateMedication(ctx context.Context, requesterID, seniorID string, input medication.CreateMedicationInput) (*medication.Medication, error) {
	if _, err := s.access.AuthorizeManage(ctx, requesterID, seniorID, access.CategoryMedications); err != nil {
		return nil, err
	}
	input.UserID = seniorID
	input.CreatedBy = requesterID
	return s.medications.CreateMedication(ctx, input)
}
