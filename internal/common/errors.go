package common

import "errors"

// Every error a service returns either wraps one of these or is a ValidationError.
var (
	ErrRecordNotFound = errors.New("record not found")
	ErrUnauthorized   = errors.New("unauthorized access")
	ErrConflict       = errors.New("conflict")
)
