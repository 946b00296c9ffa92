package errors

import "errors"

var (
	ErrNotFound = errors.New("creator not found")

	ErrInvalidID = errors.New("invalid creator ID format")
)
