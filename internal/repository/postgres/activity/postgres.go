package activity

import (
	"context"

	"gorm.io/gorm"

	activitydomain "carelink-go/internal/domain/activity"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateActivity(ctx context.Context, activity *activitydomain.Activity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

func (r *PostgresRepository) ListActivities(ctx context.Context, userID string, filter activitydomain.ListFilter) ([]activitydomain.Activity, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if filter.ActivityType != nil {
		query = query.Where("activity_type = ?", *filter.ActivityType)
	}
	if filter.From != nil {
		query = query.Where("recorded_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("recorded_at <= ?", *filter.To)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var activities []activitydomain.Activity
	if err := query.Order("recorded_at desc").Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}
