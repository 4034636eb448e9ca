package medication

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"carelink-go/internal/domain/ids"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListMedications(ctx context.Context, userID string, activeOnly bool) ([]Medication, error) {
	return s.repo.ListMedications(ctx, userID, activeOnly)
}

func (s *Service) CreateMedication(ctx context.Context, input CreateMedicationInput) (*Medication, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	active := true
	if input.Active != nil {
		active = *input.Active
	}
	createdBy := input.CreatedBy
	if createdBy == "" {
		createdBy = input.UserID
	}

	medication := Medication{
		ID:           uuid.NewString(),
		UserID:       input.UserID,
		Name:         name,
		Dosage:       strings.TrimSpace(input.Dosage),
		Frequency:    strings.TrimSpace(input.Frequency),
		Instructions: input.Instructions,
		Active:       active,
		CreatedBy:    createdBy,
	}
	if err := s.repo.CreateMedication(ctx, &medication); err != nil {
		return nil, err
	}
	return &medication, nil
}

func (s *Service) UpdateMedication(ctx context.Context, input UpdateMedicationInput) (*Medication, error) {
	if !ids.Valid(input.ID) {
		return nil, ErrMedicationNotFound
	}
	medication, err := s.repo.GetMedicationByID(ctx, input.UserID, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, ErrNameRequired
		}
		medication.Name = name
	}
	if input.Dosage != nil {
		medication.Dosage = strings.TrimSpace(*input.Dosage)
	}
	if input.Frequency != nil {
		medication.Frequency = strings.TrimSpace(*input.Frequency)
	}
	if input.Instructions != nil {
		medication.Instructions = input.Instructions
	}
	if input.Active != nil {
		medication.Active = *input.Active
	}
	medication.UpdatedAt = time.Now().UTC()

	if err := s.repo.UpdateMedication(ctx, medication); err != nil {
		return nil, err
	}
	return medication, nil
}

func (s *Service) DeleteMedication(ctx context.Context, userID, medicationID string) error {
	if !ids.Valid(medicationID) {
		return ErrMedicationNotFound
	}
	deleted, err := s.repo.DeleteMedication(ctx, userID, medicationID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrMedicationNotFound
	}
	return nil
}
