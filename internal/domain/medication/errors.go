package medication

import "errors"

var (
	ErrMedicationNotFound = errors.New("medication not found")
	ErrNameRequired       = errors.New("medication name is required")
)
