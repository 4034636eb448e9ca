package health

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

func (s *Service) ListMetrics(ctx context.Context, userID string, filter ListFilter) ([]Metric, int64, error) {
	if filter.MetricType != nil && !filter.MetricType.Valid() {
		return nil, 0, ErrInvalidMetricType
	}
	return s.repo.ListMetrics(ctx, userID, filter)
}

func (s *Service) CreateMetric(ctx context.Context, input CreateMetricInput) (*Metric, error) {
	if !input.MetricType.Valid() {
		return nil, ErrInvalidMetricType
	}
	if err := ValidateValue(input.MetricType, input.Value); err != nil {
		return nil, err
	}
	if input.RecordedAt.IsZero() {
		return nil, ErrRecordedAtRequired
	}

	unit := strings.TrimSpace(input.Unit)
	if unit == "" {
		unit = input.MetricType.DefaultUnit()
	}

	metric := Metric{
		ID:         uuid.NewString(),
		UserID:     input.UserID,
		MetricType: input.MetricType,
		Value:      strings.TrimSpace(input.Value),
		Unit:       unit,
		RecordedAt: input.RecordedAt.UTC(),
		Notes:      input.Notes,
	}
	if err := s.repo.CreateMetric(ctx, &metric); err != nil {
		return nil, err
	}
	return &metric, nil
}

func (s *Service) UpdateMetric(ctx context.Context, input UpdateMetricInput) (*Metric, error) {
	if !ids.Valid(input.ID) {
		return nil, ErrMetricNotFound
	}
	metric, err := s.repo.GetMetricByID(ctx, input.UserID, input.ID)
	if err != nil {
		return nil, err
	}

	if input.MetricType != nil && *input.MetricType != metric.MetricType {
		return nil, ErrImmutableField
	}
	if input.OwnerID != nil && *input.OwnerID != metric.UserID {
		return nil, ErrImmutableField
	}

	if input.Value != nil {
		if err := ValidateValue(metric.MetricType, *input.Value); err != nil {
			return nil, err
		}
		metric.Value = strings.TrimSpace(*input.Value)
	}
	if input.Unit != nil {
		if unit := strings.TrimSpace(*input.Unit); unit != "" {
			metric.Unit = unit
		}
	}
	if input.RecordedAt != nil {
		metric.RecordedAt = input.RecordedAt.UTC()
	}
	if input.Notes != nil {
		metric.Notes = input.Notes
	}
	metric.UpdatedAt = time.Now().UTC()

	if err := s.repo.UpdateMetric(ctx, metric); err != nil {
		return nil, err
	}
	return metric, nil
}

func (s *Service) DeleteMetric(ctx context.Context, userID, metricID string) error {
	if !ids.Valid(metricID) {
		return ErrMetricNotFound
	}
	deleted, err := s.repo.DeleteMetric(ctx, userID, metricID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrMetricNotFound
	}
	return nil
}
