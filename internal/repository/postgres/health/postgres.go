package health

import (
	"context"
	"errors"

	"gorm.io/gorm"

	healthdomain "carelink-go/internal/domain/health"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListMetrics(ctx context.Context, userID string, filter healthdomain.ListFilter) ([]healthdomain.Metric, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&healthdomain.Metric{}).
		Where("user_id = ?", userID)
	if filter.MetricType != nil {
		query = query.Where("metric_type = ?", *filter.MetricType)
	}
	if filter.From != nil {
		query = query.Where("recorded_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("recorded_at <= ?", *filter.To)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var metrics []healthdomain.Metric
	if err := query.Order("recorded_at desc").Find(&metrics).Error; err != nil {
		return nil, 0, err
	}
	return metrics, total, nil
}

func (r *PostgresRepository) GetMetricByID(ctx context.Context, userID, metricID string) (*healthdomain.Metric, error) {
	var metric healthdomain.Metric
	if err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", metricID, userID).First(&metric).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, healthdomain.ErrMetricNotFound
		}
		return nil, err
	}
	return &metric, nil
}

func (r *PostgresRepository) CreateMetric(ctx context.Context, metric *healthdomain.Metric) error {
	return r.db.WithContext(ctx).Create(metric).Error
}

func (r *PostgresRepository) UpdateMetric(ctx context.Context, metric *healthdomain.Metric) error {
	return r.db.WithContext(ctx).
		Model(&healthdomain.Metric{}).
		Where("id = ? AND user_id = ?", metric.ID, metric.UserID).
		Updates(map[string]interface{}{
			"value":       metric.Value,
			"unit":        metric.Unit,
			"recorded_at": metric.RecordedAt,
			"notes":       metric.Notes,
			"updated_at":  metric.UpdatedAt,
		}).Error
}

func (r *PostgresRepository) DeleteMetric(ctx context.Context, userID, metricID string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&healthdomain.Metric{}, "id = ? AND user_id = ?", metricID, userID)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
