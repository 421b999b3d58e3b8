package errdefs

import "errors"

var (
	ErrInvalidRangeFormat = errors.New("invalid range format")
	ErrValidation         = errors.New("validation error")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrNotFound           = errors.New("not found")
	ErrPersistence        = errors.New("persistence failure")
)
