package domain

import "errors"

// Sentinel errors for the domain layer. Every layer wraps these with
// fmt.Errorf("pkg.Fn: %w", err) so the API layer can map them to HTTP
// statuses with errors.Is.
var (
	ErrValidation      = errors.New("domain: validation failed")
	ErrUnauthenticated = errors.New("domain: unauthenticated")
	ErrForbidden       = errors.New("domain: forbidden")
	ErrNotFound        = errors.New("domain: not found")
	ErrConflict        = errors.New("domain: conflict")
)
