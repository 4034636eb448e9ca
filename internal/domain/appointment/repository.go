package appointment

import "context"

type Repository interface {
	ListAppointments(ctx context.Context, userID string, filter ListFilter) ([]Appointment, error)
	GetAppointmentByID(ctx context.Context, userID, appointmentID string) (*Appointment, error)
	CreateAppointment(ctx context.Context, appointment *Appointment) error
	UpdateAppointment(ctx context.Context, appointment *Appointment) error
	DeleteAppointment(ctx context.Context, userID, appointmentID string) (bool, error)
}
