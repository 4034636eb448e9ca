package activity

import "time"

type Activity struct {
	ID              string    `gorm:"type:uuid;primaryKey"`
	UserID          string    `gorm:"type:uuid;index;not null"`
	ActivityType    string    `gorm:"type:varchar(32);not null"`
	Description     string    `gorm:"not null;default:''"`
	DurationMinutes int       `gorm:"not null;default:0"`
	RecordedAt      time.Time `gorm:"not null"`
}

type ListFilter struct {
	ActivityType *string
	From         *time.Time
	To           *time.Time
	Limit        int
}

type RecordInput struct {
	UserID          string
	ActivityType    string
	Description     string
	DurationMinutes int
	RecordedAt      time.Time
}
