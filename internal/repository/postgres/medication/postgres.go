package medication

import (
	"context"
	"errors"

	"gorm.io/gorm"

	medicationdomain "carelink-go/internal/domain/medication"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListMedications(ctx context.Context, userID string, activeOnly bool) ([]medicationdomain.Medication, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	var medications []medicationdomain.Medication
	if err := query.Order("name asc").Find(&medications).Error; err != nil {
		return nil, err
	}
	return medications, nil
}

func (r *PostgresRepository) GetMedicationByID(ctx context.Context, userID, medicationID string) (*medicationdomain.Medication, error) {
	var medication medicationdomain.Medication
	if err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", medicationID, userID).First(&medication).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, medicationdomain.ErrMedicationNotFound
		}
		return nil, err
	}
	return &medication, nil
}

func (r *PostgresRepository) CreateMedication(ctx context.Context, medication *medicationdomain.Medication) error {
	return r.db.WithContext(ctx).Create(medication).Error
}

func (r *PostgresRepository) UpdateMedication(ctx context.Context, medication *medicationdomain.Medication) error {
	return r.db.WithContext(ctx).
		Model(&medicationdomain.Medication{}).
		Where("id = ? AND user_id = ?", medication.ID, medication.UserID).
		Updates(map[string]interface{}{
			"name":         medication.Name,
			"dosage":       medication.Dosage,
			"frequency":    medication.Frequency,
			"instructions": medication.Instructions,
			"active":       medication.Active,
			"updated_at":   medication.UpdatedAt,
		}).Error
}

func (r *PostgresRepository) DeleteMedication(ctx context.Context, userID, medicationID string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&medicationdomain.Medication{}, "id = ? AND user_id = ?", medicationID, userID)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
