package medication

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMedicationsRepo struct {
	items map[string]*Medication
}

func newFakeMedicationsRepo() *fakeMedicationsRepo {
	return &fakeMedicationsRepo{items: make(map[string]*Medication)}
}

func (r *fakeMedicationsRepo) ListMedications(ctx context.Context, userID string, activeOnly bool) ([]Medication, error) {
	result := make([]Medication, 0)
	for _, item := range r.items {
		if item.UserID != userID || (activeOnly && !item.Active) {
			continue
		}
		result = append(result, *item)
	}
	return result, nil
}

func (r *fakeMedicationsRepo) GetMedicationByID(ctx context.Context, userID, medicationID string) (*Medication, error) {
	item, ok := r.items[medicationID]
	if !ok || item.UserID != userID {
		return nil, ErrMedicationNotFound
	}
	found := *item
	return &found, nil
}

func (r *fakeMedicationsRepo) CreateMedication(ctx context.Context, medication *Medication) error {
	stored := *medication
	r.items[medication.ID] = &stored
	return nil
}

func (r *fakeMedicationsRepo) UpdateMedication(ctx context.Context, medication *Medication) error {
	stored := *medication
	r.items[medication.ID] = &stored
	return nil
}

func (r *fakeMedicationsRepo) DeleteMedication(ctx context.Context, userID, medicationID string) (bool, error) {
	item, ok := r.items[medicationID]
	if !ok || item.UserID != userID {
		return false, nil
	}
	delete(r.items, medicationID)
	return true, nil
}

func TestCreateMedication(t *testing.T) {
	repo := newFakeMedicationsRepo()
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.CreateMedication(ctx, CreateMedicationInput{UserID: "senior-1", Name: "  "})
	assert.ErrorIs(t, err, ErrNameRequired)

	created, err := svc.CreateMedication(ctx, CreateMedicationInput{
		UserID:    "senior-1",
		CreatedBy: "family-1",
		Name:      " Metformin ",
		Dosage:    "500mg",
		Frequency: "twice daily",
	})
	require.NoError(t, err)
	assert.Equal(t, "Metformin", created.Name)
	assert.True(t, created.Active)
	assert.Equal(t, "family-1", created.CreatedBy)
}

func TestListMedicationsActiveOnly(t *testing.T) {
	repo := newFakeMedicationsRepo()
	svc := NewService(repo)
	ctx := context.Background()

	inactive := false
	_, err := svc.CreateMedication(ctx, CreateMedicationInput{UserID: "senior-1", Name: "Aspirin"})
	require.NoError(t, err)
	_, err = svc.CreateMedication(ctx, CreateMedicationInput{UserID: "senior-1", Name: "Old pill", Active: &inactive})
	require.NoError(t, err)

	all, err := svc.ListMedications(ctx, "senior-1", false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	active, err := svc.ListMedications(ctx, "senior-1", true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Aspirin", active[0].Name)
}

func TestUpdateAndDeleteMedication(t *testing.T) {
	repo := newFakeMedicationsRepo()
	svc := NewService(repo)
	ctx := context.Background()

	created, err := svc.CreateMedication(ctx, CreateMedicationInput{UserID: "senior-1", Name: "Aspirin"})
	require.NoError(t, err)

	inactive := false
	updated, err := svc.UpdateMedication(ctx, UpdateMedicationInput{ID: created.ID, UserID: "senior-1", Active: &inactive})
	require.NoError(t, err)
	assert.False(t, updated.Active)

	empty := ""
	_, err = svc.UpdateMedication(ctx, UpdateMedicationInput{ID: created.ID, UserID: "senior-1", Name: &empty})
	assert.ErrorIs(t, err, ErrNameRequired)

	assert.ErrorIs(t, svc.DeleteMedication(ctx, "senior-1", "missing"), ErrMedicationNotFound)
	require.NoError(t, svc.DeleteMedication(ctx, "senior-1", created.ID))
	assert.Empty(t, repo.items)
}
