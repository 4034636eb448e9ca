package health

import "errors"

var (
	ErrMetricNotFound     = errors.New("health metric not found")
	ErrInvalidMetricType  = errors.New("invalid metric type")
	ErrInvalidValue       = errors.New("invalid metric value")
	ErrImmutableField     = errors.New("metric type and user id cannot be changed")
	ErrRecordedAtRequired = errors.New("recorded at is required")
)
