package health

import "time"

type MetricType string

const (
	MetricSteps         MetricType = "steps"
	MetricHeartRate     MetricType = "heart_rate"
	MetricBloodPressure MetricType = "blood_pressure"
	MetricGlucose       MetricType = "glucose"
)

func (t MetricType) Valid() bool {
	switch t {
	case MetricSteps, MetricHeartRate, MetricBloodPressure, MetricGlucose:
		return true
	}
	return false
}

// DefaultUnit is used when a reading is recorded without one.
func (t MetricType) DefaultUnit() string {
	switch t {
	case MetricSteps:
		return "steps"
	case MetricHeartRate:
		return "bpm"
	case MetricBloodPressure:
		return "mmHg"
	case MetricGlucose:
		return "mg/dL"
	}
	return ""
}

type Metric struct {
	ID         string     `gorm:"type:uuid;primaryKey"`
	UserID     string     `gorm:"type:uuid;index;not null"`
	MetricType MetricType `gorm:"type:varchar(32);not null"`
	Value      string     `gorm:"not null"`
	Unit       string     `gorm:"not null"`
	RecordedAt time.Time  `gorm:"not null"`
	Notes      *string
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (Metric) TableName() string {
	return "health_metrics"
}

type ListFilter struct {
	MetricType *MetricType
	From       *time.Time
	To         *time.Time
	Limit      int
	Offset     int
}

type CreateMetricInput struct {
	UserID     string
	MetricType MetricType
	Value      string
	Unit       string
	RecordedAt time.Time
	Notes      *string
}

// UpdateMetricInput may name MetricType and UserID only to repeat the stored
// values; a different value is rejected.
type UpdateMetricInput struct {
	ID         string
	UserID     string
	MetricType *MetricType
	OwnerID    *string
	Value      *string
	Unit       *string
	RecordedAt *time.Time
	Notes      *string
}
