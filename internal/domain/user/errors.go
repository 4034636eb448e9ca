package user

import "errors"

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrInvalidRole     = errors.New("invalid role")
	ErrUserIDRequired  = errors.New("user id is required")
)
