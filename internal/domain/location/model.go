package location

import "time"

type Location struct {
	ID         string  `gorm:"type:uuid;primaryKey"`
	UserID     string  `gorm:"type:uuid;index;not null"`
	Latitude   float64 `gorm:"not null"`
	Longitude  float64 `gorm:"not null"`
	AccuracyM  *float64
	Address    *string
	RecordedAt time.Time `gorm:"not null"`
}

type RecordInput struct {
	UserID     string
	Latitude   float64
	Longitude  float64
	AccuracyM  *float64
	Address    *string
	RecordedAt time.Time
}
