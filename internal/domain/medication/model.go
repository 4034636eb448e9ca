package medication

import "time"

type Medication struct {
	ID           string `gorm:"type:uuid;primaryKey"`
	UserID       string `gorm:"type:uuid;index;not null"`
	Name         string `gorm:"not null"`
	Dosage       string `gorm:"not null;default:''"`
	Frequency    string `gorm:"not null;default:''"`
	Instructions *string
	Active       bool      `gorm:"not null;default:true"`
	CreatedBy    string    `gorm:"type:uuid;not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

type CreateMedicationInput struct {
	UserID       string
	CreatedBy    string
	Name         string
	Dosage       string
	Frequency    string
	Instructions *string
	// Active defaults to true when nil.
	Active *bool
}

type UpdateMedicationInput struct {
	ID           string
	UserID       string
	Name         *string
	Dosage       *string
	Frequency    *string
	Instructions *string
	Active       *bool
}
