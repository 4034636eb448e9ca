package location

import "errors"

var (
	ErrLocationNotFound  = errors.New("location not found")
	ErrInvalidCoordinate = errors.New("coordinates out of range")
	ErrInvalidAccuracy   = errors.New("accuracy must not be negative")
)
