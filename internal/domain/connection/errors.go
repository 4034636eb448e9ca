package connection

import (
	"errors"
	"fmt"
)

// Error kinds. Every concrete error below wraps exactly one of these.
var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrConflict       = errors.New("conflict")
	ErrForbidden      = errors.New("access denied")
)

var (
	ErrConnectionNotFound  = errors.New("connection not found")
	ErrMissingPrincipal    = fmt.Errorf("%w: senior id and family member id are required", ErrInvalidRequest)
	ErrInvalidID           = fmt.Errorf("%w: ids must be UUIDs", ErrInvalidRequest)
	ErrSelfConnection      = fmt.Errorf("%w: cannot connect to yourself", ErrInvalidRequest)
	ErrInvalidRelationship = fmt.Errorf("%w: unknown relationship", ErrInvalidRequest)
	ErrInvalidStatus       = fmt.Errorf("%w: unknown status", ErrInvalidRequest)
	ErrConnectionPending   = fmt.Errorf("%w: connection request already pending", ErrConflict)
	ErrConnectionExists    = fmt.Errorf("%w: connection already exists", ErrConflict)
	ErrNotParty            = fmt.Errorf("%w: not a party to this connection", ErrForbidden)
	ErrNotSenior           = fmt.Errorf("%w: only the senior can change permissions", ErrForbidden)
)
