package medication

import "context"

type Repository interface {
	ListMedications(ctx context.Context, userID string, activeOnly bool) ([]Medication, error)
	GetMedicationByID(ctx context.Context, userID, medicationID string) (*Medication, error)
	CreateMedication(ctx context.Context, medication *Medication) error
	UpdateMedication(ctx context.Context, medication *Medication) error
	DeleteMedication(ctx context.Context, userID, medicationID string) (bool, error)
}
