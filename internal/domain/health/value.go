package health

import (
	"math"
	"strconv"
	"strings"
)

// ValidateValue checks the string encoding for the metric type: a plain
// non-negative number for steps and heart rate, "systolic/diastolic" for
// blood pressure, and a numeric string for glucose.
func ValidateValue(metricType MetricType, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return ErrInvalidValue
	}

	switch metricType {
	case MetricSteps, MetricHeartRate:
		n, ok := finite(value)
		if !ok || n < 0 {
			return ErrInvalidValue
		}
	case MetricBloodPressure:
		systolic, diastolic, ok := strings.Cut(value, "/")
		if !ok || !positiveInt(systolic) || !positiveInt(diastolic) {
			return ErrInvalidValue
		}
	case MetricGlucose:
		if _, ok := finite(value); !ok {
			return ErrInvalidValue
		}
	default:
		return ErrInvalidMetricType
	}
	return nil
}

// finite rejects the NaN and Inf spellings ParseFloat accepts.
func finite(value string) (float64, bool) {
	n, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

func positiveInt(value string) bool {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	return err == nil && n > 0
}
