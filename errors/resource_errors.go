package errors

import "errors"

var (
	ErrResourceNotFound    = errors.New("resource not found")
	ErrResourceConflict    = errors.New("resource already exists")
	ErrInvalidResourceData = errors.New("invalid resource data")
)
