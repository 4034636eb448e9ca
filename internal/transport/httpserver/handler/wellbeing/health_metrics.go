package wellbeing

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	healthdomain "carelink-go/internal/domain/health"
	commonhandler "carelink-go/internal/transport/httpserver/handler/common"
	"carelink-go/internal/transport/httpserver/middleware"
)

const defaultMetricsLimit = 100

type createMetricRequest struct {
	MetricType string    `json:"metric_type"`
	Value      string    `json:"value"`
	Unit       string    `json:"unit"`
	RecordedAt time.Time `json:"recorded_at"`
	Notes      *string   `json:"notes"`
}

type updateMetricRequest struct {
	MetricType *string    `json:"metric_type"`
	UserID     *string    `json:"user_id"`
	Value      *string    `json:"value"`
	Unit       *string    `json:"unit"`
	RecordedAt *time.Time `json:"recorded_at"`
	Notes      *string    `json:"notes"`
}

type MetricResponse struct {
	ID         string  `json:"id"`
	UserID     string  `json:"user_id"`
	MetricType string  `json:"metric_type"`
	Value      string  `json:"value"`
	Unit       string  `json:"unit"`
	RecordedAt string  `json:"recorded_at"`
	Notes      *string `json:"notes"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}

type MetricsListResponse struct {
	Items []MetricResponse `json:"items"`
	Total int64            `json:"total"`
}

// ParseMetricFilter reads metric_type, from, to, limit and offset.
func ParseMetricFilter(r *http.Request) (healthdomain.ListFilter, error) {
	query := r.URL.Query()
	var filter healthdomain.ListFilter
	if value := strings.TrimSpace(query.Get("metric_type")); value != "" {
		metricType := healthdomain.MetricType(strings.ToLower(value))
		filter.MetricType = &metricType
	}

	var err error
	if filter.From, err = parseTimeParam(query.Get("from")); err != nil {
		return filter, fmt.Errorf("from must be RFC3339 or YYYY-MM-DD")
	}
	if filter.To, err = parseTimeParam(query.Get("to")); err != nil {
		return filter, fmt.Errorf("to must be RFC3339 or YYYY-MM-DD")
	}
	if filter.Limit, err = parseIntParam(query.Get("limit"), defaultMetricsLimit); err != nil {
		return filter, fmt.Errorf("limit must be a non-negative integer")
	}
	if filter.Offset, err = parseIntParam(query.Get("offset"), 0); err != nil {
		return filter, fmt.Errorf("offset must be a non-negative integer")
	}
	return filter, nil
}

func (h *Handlers) ListMetrics(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		commonhandler.WriteUnauthorized(w)
		return
	}

	filter, err := ParseMetricFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	metrics, total, err := h.Health.ListMetrics(r.Context(), user.ID, filter)
	if err != nil {
		h.writeDomainError(w, "health_metrics.list", err, user.ID)
		return
	}

	writeJSON(w, http.StatusOK, MetricsListResponse{Items: ToMetricResponses(metrics), Total: total})
}

func (h *Handlers) CreateMetric(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		commonhandler.WriteUnauthorized(w)
		return
	}

	var req createMetricRequest
	if err := decodeJSON(r, &req); err != nil {
		commonhandler.WriteInvalidJSON(w)
		return
	}

	metric, err := h.Health.CreateMetric(r.Context(), healthdomain.CreateMetricInput{
		UserID:     user.ID,
		MetricType: healthdomain.MetricType(strings.ToLower(strings.TrimSpace(req.MetricType))),
		Value:      req.Value,
		Unit:       req.Unit,
		RecordedAt: req.RecordedAt,
		Notes:      req.Notes,
	})
	if err != nil {
		h.writeDomainError(w, "health_metrics.create", err, user.ID)
		return
	}

	writeJSON(w, http.StatusCreated, ToMetricResponse(metric))
}

func (h *Handlers) UpdateMetric(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		commonhandler.WriteUnauthorized(w)
		return
	}

	var req updateMetricRequest
	if err := decodeJSON(r, &req); err != nil {
		commonhandler.WriteInvalidJSON(w)
		return
	}

	input := healthdomain.UpdateMetricInput{
		ID:         chi.URLParam(r, "id"),
		UserID:     user.ID,
		OwnerID:    req.UserID,
		Value:      req.Value,
		Unit:       req.Unit,
		RecordedAt: req.RecordedAt,
		Notes:      req.Notes,
	}
	if req.MetricType != nil {
		metricType := healthdomain.MetricType(strings.ToLower(strings.TrimSpace(*req.MetricType)))
		input.MetricType = &metricType
	}

	metric, err := h.Health.UpdateMetric(r.Context(), input)
	if err != nil {
		h.writeDomainError(w, "health_metrics.update", err, user.ID)
		return
	}

	writeJSON(w, http.StatusOK, ToMetricResponse(metric))
}

func (h *Handlers) DeleteMetric(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		commonhandler.WriteUnauthorized(w)
		return
	}

	if err := h.Health.DeleteMetric(r.Context(), user.ID, chi.URLParam(r, "id")); err != nil {
		h.writeDomainError(w, "health_metrics.delete", err, user.ID)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func ToMetricResponse(metric *healthdomain.Metric) MetricResponse {
	return MetricResponse{
		ID:         metric.ID,
		UserID:     metric.UserID,
		MetricType: string(metric.MetricType),
		Value:      metric.Value,
		Unit:       metric.Unit,
		RecordedAt: commonhandler.FormatTime(metric.RecordedAt),
		Notes:      metric.Notes,
		CreatedAt:  commonhandler.FormatTime(metric.CreatedAt),
		UpdatedAt:  commonhandler.FormatTime(metric.UpdatedAt),
	}
}

func ToMetricResponses(metrics []healthdomain.Metric) []MetricResponse {
	items := make([]MetricResponse, 0, len(metrics))
	for i := range metrics {
		items = append(items, ToMetricResponse(&metrics[i]))
	}
	return items
}
