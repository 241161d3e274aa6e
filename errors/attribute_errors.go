package errors

import "errors"

var (
	ErrAttributeNotFound    = errors.New("attribute not found")
	ErrAttributeConflict    = errors.New("attribute already exists")
	ErrInvalidAttributeType = errors.New("invalid attribute type")
)
