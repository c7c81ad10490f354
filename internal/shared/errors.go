// Package shared defines sentinel errors and identifier helpers used across
// CampusHire components. Callers should use errors.Is to match these values.
package shared

import "errors"

var (

	// store-level errors
	ErrMalformedStore = errors.New("malformed store content")
	ErrNotFound       = errors.New("not found")

	// session-specific errors
	ErrEmailTaken   = errors.New("email already registered")
	ErrUnknownEmail = errors.New("unknown email")
	ErrNoSession    = errors.New("no active session")

	// profile-specific errors
	ErrProfileFieldMismatch = errors.New("field does not belong to profile variant")

	// workflow-specific errors
	ErrNotJobSeeker      = errors.New("only job seekers can apply")
	ErrNotEmployer       = errors.New("only employers can post jobs")
	ErrAlreadyApplied    = errors.New("already applied to this job")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrValidation        = errors.New("validation error")
)
