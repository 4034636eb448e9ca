package connection

import (
	"time"

	"gorm.io/datatypes"
)

type Relationship string

const (
	RelationshipChild     Relationship = "child"
	RelationshipSpouse    Relationship = "spouse"
	RelationshipSibling   Relationship = "sibling"
	RelationshipCaregiver Relationship = "caregiver"
	RelationshipOther     Relationship = "other"
)

func (r Relationship) Valid() bool {
	switch r {
	case RelationshipChild, RelationshipSpouse, RelationshipSibling, RelationshipCaregiver, RelationshipOther:
		return true
	}
	return false
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
	StatusBlocked  Status = "blocked"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected, StatusBlocked:
		return true
	}
	return false
}

type Direction string

const (
	DirectionOutgoing Direction = "outgoing"
	DirectionIncoming Direction = "incoming"
)

// Permissions is the capability record stored on a connection. A nil flag is
// "not set", which can happen after a partial permissions update; it reads as
// false for every access decision.
type Permissions struct {
	ViewHealth           *bool `json:"viewHealth,omitempty"`
	ViewMedications      *bool `json:"viewMedications,omitempty"`
	ViewAppointments     *bool `json:"viewAppointments,omitempty"`
	ViewLocation         *bool `json:"viewLocation,omitempty"`
	ReceiveNotifications *bool `json:"receiveNotifications,omitempty"`
	ManageMedications    *bool `json:"manageMedications,omitempty"`
	ManageAppointments   *bool `json:"manageAppointments,omitempty"`
}

// DefaultPermissions is assigned to every new connection: view-only
// capabilities granted, manage capabilities withheld.
func DefaultPermissions() Permissions {
	return Permissions{
		ViewHealth:           flag(true),
		ViewMedications:      flag(true),
		ViewAppointments:     flag(true),
		ViewLocation:         flag(true),
		ReceiveNotifications: flag(true),
		ManageMedications:    flag(false),
		ManageAppointments:   flag(false),
	}
}

// FullPermissions is the effective record of a principal viewing their own data.
func FullPermissions() Permissions {
	return Permissions{
		ViewHealth:           flag(true),
		ViewMedications:      flag(true),
		ViewAppointments:     flag(true),
		ViewLocation:         flag(true),
		ReceiveNotifications: flag(true),
		ManageMedications:    flag(true),
		ManageAppointments:   flag(true),
	}
}

func Enabled(value *bool) bool {
	return value != nil && *value
}

func flag(value bool) *bool {
	return &value
}

type Connection struct {
	ID             string                          `gorm:"type:uuid;primaryKey"`
	SeniorID       string                          `gorm:"type:uuid;not null;index:idx_family_connections_pair"`
	FamilyMemberID string                          `gorm:"type:uuid;not null;index:idx_family_connections_pair;index:idx_family_connections_family"`
	Relationship   Relationship                    `gorm:"type:varchar(16);not null"`
	Status         Status                          `gorm:"type:varchar(16);not null"`
	Permissions    datatypes.JSONType[Permissions] `gorm:"type:jsonb;not null"`
	CreatedAt      time.Time                       `gorm:"autoCreateTime"`
	UpdatedAt      time.Time                       `gorm:"autoUpdateTime"`
}

func (Connection) TableName() string {
	return "family_connections"
}

func (c *Connection) IsParty(userID string) bool {
	return userID != "" && (c.SeniorID == userID || c.FamilyMemberID == userID)
}

// PublicProfile is the subset of a profile shown to the other side of a connection.
type PublicProfile struct {
	UserID    string
	FullName  *string
	AvatarURL *string
	Role      string
}

// ProfiledConnection is a connection joined with the counterpart's public profile.
type ProfiledConnection struct {
	Connection
	Counterpart PublicProfile
}

// Request is a connection as seen by one of its parties.
type Request struct {
	Connection
	Direction Direction
}
