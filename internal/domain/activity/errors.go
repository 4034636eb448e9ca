package activity

import "errors"

var (
	ErrActivityTypeRequired = errors.New("activity type is required")
	ErrInvalidDuration      = errors.New("duration must not be negative")
	ErrInvalidRange         = errors.New("from must be before to")
)
