package usecase

import "errors"

// Sentinel errors shared by all repositories. Handlers switch on these with
// errors.Is to pick the response status.
var (
	ErrNotFound        = errors.New("not found")
	ErrForbidden       = errors.New("forbidden")
	ErrAlreadyReviewed = errors.New("already reviewed")
	ErrAlreadyExists   = errors.New("already exists")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
)
