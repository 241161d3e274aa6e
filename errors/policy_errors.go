package errors

import "errors"

var (
	ErrPolicyNotFound    = errors.New("policy not found")
	ErrPolicyConflict    = errors.New("policy already exists")
	ErrInvalidConditions = errors.New("invalid policy conditions")
	ErrInvalidPolicyData = errors.New("invalid policy data")
)
