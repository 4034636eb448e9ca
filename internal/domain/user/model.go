package user

import "time"

const (
	RoleSenior = "senior"
	RoleFamily = "family"
)

type Profile struct {
	UserID    string    `gorm:"type:uuid;primaryKey"`
	Email     *string   `gorm:"type:text"`
	FullName  *string   `gorm:"type:text"`
	AvatarURL *string   `gorm:"type:text"`
	Role      string    `gorm:"type:varchar(16);not null;default:family"`
	Phone     *string   `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// UpdateProfileInput carries the fields a user may edit; nil leaves a field unchanged.
type UpdateProfileInput struct {
	UserID    string
	FullName  *string
	AvatarURL *string
	Role      *string
	Phone     *string
}
