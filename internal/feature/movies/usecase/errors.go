package usecase

import "errors"

var (
	// ErrTitleRequired is returned when a search is attempted without a title.
	ErrTitleRequired = errors.New("title is required")
)
