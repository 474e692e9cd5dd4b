package work

import "errors"

var (
	ErrWorkEntryNotFound = errors.New("work entry not found")
	ErrInvalidStatus     = errors.New("status must be approved or rejected")
)
