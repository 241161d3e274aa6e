package errors

import "errors"

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrUserConflict          = errors.New("user already exists")
	ErrInvalidUserData       = errors.New("invalid user data")
	ErrInvalidAttributeValue = errors.New("attribute value does not match declared type")
	ErrAttributeNotSet       = errors.New("user has no value for attribute")
)
