package health

import "context"

type Repository interface {
	ListMetrics(ctx context.Context, userID string, filter ListFilter) ([]Metric, int64, error)
	GetMetricByID(ctx context.Context, userID, metricID string) (*Metric, error)
	CreateMetric(ctx context.Context, metric *Metric) error
	UpdateMetric(ctx context.Context, metric *Metric) error
	DeleteMetric(ctx context.Context, userID, metricID string) (bool, error)
}
