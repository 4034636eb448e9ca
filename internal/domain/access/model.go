package access

import "carelink-go/internal/domain/connection"

type Category string

const (
	CategoryHealth        Category = "health"
	CategoryMedications   Category = "medications"
	CategoryAppointments  Category = "appointments"
	CategoryLocation      Category = "location"
	CategoryActivity      Category = "activity"
	CategoryProfile       Category = "profile"
	CategoryNotifications Category = "notifications"
)

// Decision is the coarse result of Evaluate: whether any usable relationship
// exists, and the permission record it carries.
type Decision struct {
	HasAccess   bool
	Self        bool
	Permissions connection.Permissions
}

// Allows reports whether the decision grants read access to category.
// Profile data only needs the relationship itself.
func (d Decision) Allows(category Category) bool {
	if !d.HasAccess {
		return false
	}
	switch category {
	case CategoryProfile:
		return true
	case CategoryHealth, CategoryActivity:
		return connection.Enabled(d.Permissions.ViewHealth)
	case CategoryMedications:
		return connection.Enabled(d.Permissions.ViewMedications)
	case CategoryAppointments:
		return connection.Enabled(d.Permissions.ViewAppointments)
	case CategoryLocation:
		return connection.Enabled(d.Permissions.ViewLocation)
	case CategoryNotifications:
		return connection.Enabled(d.Permissions.ReceiveNotifications)
	}
	return false
}

// AllowsManage reports whether the decision grants write access on the
// senior's behalf. Only medications and appointments can be managed.
func (d Decision) AllowsManage(category Category) bool {
	if !d.HasAccess {
		return false
	}
	switch category {
	case CategoryMedications:
		return connection.Enabled(d.Permissions.ManageMedications)
	case CategoryAppointments:
		return connection.Enabled(d.Permissions.ManageAppointments)
	}
	return false
}

func (c Category) Valid() bool {
	switch c {
	case CategoryHealth, CategoryMedications, CategoryAppointments, CategoryLocation,
		CategoryActivity, CategoryProfile, CategoryNotifications:
		return true
	}
	return false
}
