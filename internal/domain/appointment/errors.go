package appointment

import "errors"

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrTitleRequired       = errors.New("title is required")
	ErrInvalidType         = errors.New("invalid appointment type")
	ErrInvalidStatus       = errors.New("invalid appointment status")
	ErrInvalidTime         = errors.New("time must be HH:MM")
	ErrDateRequired        = errors.New("date is required")
)
