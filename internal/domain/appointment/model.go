package appointment

import "time"

type Type string

const (
	TypeDoctor      Type = "doctor"
	TypeTherapy     Type = "therapy"
	TypeVaccination Type = "vaccination"
	TypeFamily      Type = "family"
)

func (t Type) Valid() bool {
	switch t {
	case TypeDoctor, TypeTherapy, TypeVaccination, TypeFamily:
		return true
	}
	return false
}

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type Appointment struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	UserID    string    `gorm:"type:uuid;index;not null"`
	Title     string    `gorm:"not null"`
	Type      Type      `gorm:"type:varchar(16);not null"`
	Date      time.Time `gorm:"type:date;not null"`
	Time      string    `gorm:"type:varchar(5);not null"`
	Location  string    `gorm:"not null;default:''"`
	Notes     *string
	Status    Status    `gorm:"type:varchar(16);not null"`
	Reminder  bool      `gorm:"not null;default:false"`
	CreatedBy string    `gorm:"type:uuid;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

type ListFilter struct {
	Status *Status
	From   *time.Time
	To     *time.Time
}

type CreateAppointmentInput struct {
	UserID string
	// CreatedBy differs from UserID when a family member books on a senior's behalf.
	CreatedBy string
	Title     string
	Type      Type
	Date      time.Time
	Time      string
	Location  string
	Notes     *string
	Status    Status
	Reminder  bool
}

type UpdateAppointmentInput struct {
	ID       string
	UserID   string
	Title    *string
	Type     *Type
	Date     *time.Time
	Time     *string
	Location *string
	Notes    *string
	Status   *Status
	Reminder *bool
}
