package usecase

import "errors"

// Cross-cutting sentinels. Flow-specific ones live next to their usecase.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidInput = errors.New("invalid input")
)
