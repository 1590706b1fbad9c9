// Package usecase implements the business logic for the complaints feature.
package usecase

import "errors"

var (
	// ErrComplaintNotFound is returned when a complaint cannot be found by ID.
	ErrComplaintNotFound = errors.New("complaint not found")
)
