package services

import "errors"

// Sentinel errors the HTTP layer maps to status codes. Ownership mismatches
// wrap ErrNotFound on purpose: a caller probing someone else's campaign
// learns nothing beyond "not found".
var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")
	ErrConflict  = errors.New("conflict")
	ErrInvalid   = errors.New("invalid")
)
