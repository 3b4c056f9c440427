package entities

import "errors"

// Error taxonomy shared by use cases and persistence adapters.
//
// Use cases wrap these with entity-specific sentinels (e.g. "destination not found"),
// so callers can match either the specific or the general error with errors.Is.
var (
	ErrNotFound             = errors.New("not found")
	ErrValidation           = errors.New("validation failed")
	ErrConstraintViolation  = errors.New("constraint violation")
	ErrReferentialIntegrity = errors.New("referential integrity violation")
	ErrInvalidTransition    = errors.New("invalid status transition")
)
