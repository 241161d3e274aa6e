// util/validation_util.go

package util

import (
	"fmt"
	"strings"
)

type ValidationUtil struct{}

func NewValidationUtil() *ValidationUtil {
	return &ValidationUtil{}
}

// ValidateEntityID rejects ids that cannot serve as storage key segments.
func (v *ValidationUtil) ValidateEntityID(kind, id string) error {
	if id == "" {
		return fmt.Errorf("%s id cannot be empty", kind)
	}
	if strings.ContainsAny(id, " \t\n") {
		return fmt.Errorf("%s id cannot contain whitespace", kind)
	}
	return nil
}

// ValidateAttributeName rejects empty or whitespace attribute names.
func (v *ValidationUtil) ValidateAttributeName(name string) error {
	if name == "" {
		return fmt.Errorf("attribute name cannot be empty")
	}
	if strings.ContainsAny(name, " \t\n") {
		return fmt.Errorf("attribute name cannot contain whitespace")
	}
	return nil
}
