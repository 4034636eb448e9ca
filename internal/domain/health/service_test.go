package health

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const metricA = "3e000000-0000-4000-8000-000000000001"

type fakeMetricsRepo struct {
	metrics map[string]*Metric
}

func newFakeMetricsRepo() *fakeMetricsRepo {
	return &fakeMetricsRepo{metrics: make(map[string]*Metric)}
}

func (r *fakeMetricsRepo) ListMetrics(ctx context.Context, userID string, filter ListFilter) ([]Metric, int64, error) {
	items := make([]Metric, 0)
	for _, metric := range r.metrics {
		if metric.UserID != userID {
			continue
		}
		if filter.MetricType != nil && metric.MetricType != *filter.MetricType {
			continue
		}
		if filter.From != nil && metric.RecordedAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && metric.RecordedAt.After(*filter.To) {
			continue
		}
		items = append(items, *metric)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].RecordedAt.After(items[j].RecordedAt) })
	total := int64(len(items))
	if filter.Limit > 0 && filter.Limit < len(items) {
		items = items[:filter.Limit]
	}
	return items, total, nil
}

func (r *fakeMetricsRepo) GetMetricByID(ctx context.Context, userID, metricID string) (*Metric, error) {
	metric, ok := r.metrics[metricID]
	if !ok || metric.UserID != userID {
		return nil, ErrMetricNotFound
	}
	found := *metric
	return &found, nil
}

func (r *fakeMetricsRepo) CreateMetric(ctx context.Context, metric *Metric) error {
	stored := *metric
	r.metrics[metric.ID] = &stored
	return nil
}

func (r *fakeMetricsRepo) UpdateMetric(ctx context.Context, metric *Metric) error {
	stored := *metric
	r.metrics[metric.ID] = &stored
	return nil
}

func (r *fakeMetricsRepo) DeleteMetric(ctx context.Context, userID, metricID string) (bool, error) {
	metric, ok := r.metrics[metricID]
	if !ok || metric.UserID != userID {
		return false, nil
	}
	delete(r.metrics, metricID)
	return true, nil
}

func TestValidateValue(t *testing.T) {
	cases := []struct {
		metricType MetricType
		value      string
		ok         bool
	}{
		{MetricSteps, "8500", true},
		{MetricSteps, "-1", false},
		{MetricSteps, "many", false},
		{MetricHeartRate, "72", true},
		{MetricBloodPressure, "120/80", true},
		{MetricBloodPressure, "120", false},
		{MetricBloodPressure, "120/0", false},
		{MetricBloodPressure, "abc/80", false},
		{MetricGlucose, "5.6", true},
		{MetricGlucose, "", false},
		{MetricSteps, "NaN", false},
		{MetricSteps, "+Inf", false},
		{MetricHeartRate, "Inf", false},
		{MetricHeartRate, "nan", false},
		{MetricGlucose, "NaN", false},
		{MetricGlucose, "-Inf", false},
		{MetricGlucose, "Infinity", false},
	}
	for _, tc := range cases {
		err := ValidateValue(tc.metricType, tc.value)
		if tc.ok {
			assert.NoError(t, err, "%s %q", tc.metricType, tc.value)
		} else {
			assert.ErrorIs(t, err, ErrInvalidValue, "%s %q", tc.metricType, tc.value)
		}
	}
}

func TestCreateMetricDefaultsUnit(t *testing.T) {
	repo := newFakeMetricsRepo()
	svc := NewService(repo)

	created, err := svc.CreateMetric(context.Background(), CreateMetricInput{
		UserID:     "user-1",
		MetricType: MetricBloodPressure,
		Value:      " 130/85 ",
		RecordedAt: time.Date(2026, 1, 2, 8, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, "mmHg", created.Unit)
	assert.Equal(t, "130/85", created.Value)
	assert.Contains(t, repo.metrics, created.ID)
}

func TestCreateMetricRejectsUnknownType(t *testing.T) {
	svc := NewService(newFakeMetricsRepo())

	_, err := svc.CreateMetric(context.Background(), CreateMetricInput{
		UserID:     "user-1",
		MetricType: MetricType("weight"),
		Value:      "70",
		RecordedAt: time.Now(),
	})
	assert.ErrorIs(t, err, ErrInvalidMetricType)
}

func TestUpdateMetricRejectsImmutableFields(t *testing.T) {
	repo := newFakeMetricsRepo()
	repo.metrics[metricA] = &Metric{ID: metricA, UserID: "user-1", MetricType: MetricSteps, Value: "10", Unit: "steps"}
	svc := NewService(repo)
	ctx := context.Background()

	other := MetricHeartRate
	_, err := svc.UpdateMetric(ctx, UpdateMetricInput{ID: metricA, UserID: "user-1", MetricType: &other})
	assert.ErrorIs(t, err, ErrImmutableField)

	owner := "user-2"
	_, err = svc.UpdateMetric(ctx, UpdateMetricInput{ID: metricA, UserID: "user-1", OwnerID: &owner})
	assert.ErrorIs(t, err, ErrImmutableField)

	same := MetricSteps
	value := "12000"
	updated, err := svc.UpdateMetric(ctx, UpdateMetricInput{ID: metricA, UserID: "user-1", MetricType: &same, Value: &value})
	require.NoError(t, err)
	assert.Equal(t, "12000", updated.Value)
	assert.Equal(t, "12000", repo.metrics[metricA].Value)
}

func TestUpdateMetricValidatesValueAgainstStoredType(t *testing.T) {
	repo := newFakeMetricsRepo()
	repo.metrics[metricA] = &Metric{ID: metricA, UserID: "user-1", MetricType: MetricBloodPressure, Value: "120/80"}
	svc := NewService(repo)

	value := "120"
	_, err := svc.UpdateMetric(context.Background(), UpdateMetricInput{ID: metricA, UserID: "user-1", Value: &value})
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestUpdateMetricOtherUsersRowNotFound(t *testing.T) {
	repo := newFakeMetricsRepo()
	repo.metrics[metricA] = &Metric{ID: metricA, UserID: "user-1", MetricType: MetricSteps}
	svc := NewService(repo)

	_, err := svc.UpdateMetric(context.Background(), UpdateMetricInput{ID: metricA, UserID: "user-2"})
	assert.ErrorIs(t, err, ErrMetricNotFound)
}

func TestDeleteMetric(t *testing.T) {
	repo := newFakeMetricsRepo()
	repo.metrics[metricA] = &Metric{ID: metricA, UserID: "user-1", MetricType: MetricSteps}
	svc := NewService(repo)
	ctx := context.Background()

	assert.ErrorIs(t, svc.DeleteMetric(ctx, "user-2", metricA), ErrMetricNotFound)
	require.NoError(t, svc.DeleteMetric(ctx, "user-1", metricA))
	assert.Empty(t, repo.metrics)
}

func TestListMetricsFilters(t *testing.T) {
	repo := newFakeMetricsRepo()
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	repo.metrics["a"] = &Metric{ID: "a", UserID: "user-1", MetricType: MetricSteps, RecordedAt: base}
	repo.metrics["b"] = &Metric{ID: "b", UserID: "user-1", MetricType: MetricGlucose, RecordedAt: base.Add(time.Hour)}
	repo.metrics["c"] = &Metric{ID: "c", UserID: "user-2", MetricType: MetricSteps, RecordedAt: base}
	svc := NewService(repo)

	steps := MetricSteps
	items, total, err := svc.ListMetrics(context.Background(), "user-1", ListFilter{MetricType: &steps})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "a", items[0].ID)

	bad := MetricType("bmi")
	_, _, err = svc.ListMetrics(context.Background(), "user-1", ListFilter{MetricType: &bad})
	assert.ErrorIs(t, err, ErrInvalidMetricType)
}
