package appointment

import (
	"context"
	"errors"

	"gorm.io/gorm"

	appointmentdomain "carelink-go/internal/domain/appointment"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListAppointments(ctx context.Context, userID string, filter appointmentdomain.ListFilter) ([]appointmentdomain.Appointment, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.From != nil {
		query = query.Where("date >= ?", filter.From.Format("2006-01-02"))
	}
	if filter.To != nil {
		query = query.Where("date <= ?", filter.To.Format("2006-01-02"))
	}

	var appointments []appointmentdomain.Appointment
	if err := query.Order("date asc, time asc").Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *PostgresRepository) GetAppointmentByID(ctx context.Context, userID, appointmentID string) (*appointmentdomain.Appointment, error) {
	var appointment appointmentdomain.Appointment
	if err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", appointmentID, userID).First(&appointment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appointmentdomain.ErrAppointmentNotFound
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *PostgresRepository) CreateAppointment(ctx context.Context, appointment *appointmentdomain.Appointment) error {
	return r.db.WithContext(ctx).Create(appointment).Error
}

func (r *PostgresRepository) UpdateAppointment(ctx context.Context, appointment *appointmentdomain.Appointment) error {
	return r.db.WithContext(ctx).
		Model(&appointmentdomain.Appointment{}).
		Where("id = ? AND user_id = ?", appointment.ID, appointment.UserID).
		Updates(map[string]interface{}{
			"title":      appointment.Title,
			"type":       appointment.Type,
			"date":       appointment.Date,
			"time":       appointment.Time,
			"location":   appointment.Location,
			"notes":      appointment.Notes,
			"status":     appointment.Status,
			"reminder":   appointment.Reminder,
			"updated_at": appointment.UpdatedAt,
		}).Error
}

func (r *PostgresRepository) DeleteAppointment(ctx context.Context, userID, appointmentID string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&appointmentdomain.Appointment{}, "id = ? AND user_id = ?", appointmentID, userID)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
