package model

// AttributeType is the declared primitive type of a registered attribute.
// Definitions are append-only: once a name is bound to a type it is never
// mutated or deleted.
type AttributeType string

const (
	AttributeTypeString  AttributeType = "string"
	AttributeTypeInteger AttributeType = "integer"
	AttributeTypeBoolean AttributeType = "boolean"
)

// ParseAttributeType maps a raw type name onto an AttributeType. The second
// return value is false for anything outside the allowed set.
func ParseAttributeType(s string) (AttributeType, bool) {
	switch AttributeType(s) {
	case AttributeTypeString, AttributeTypeInteger, AttributeTypeBoolean:
		return AttributeType(s), true
	default:
		return "", false
	}
}

// Attribute is a registered attribute definition.
type Attribute struct {
	Name string        `json:"name"`
	Type AttributeType `json:"type"`
}

// NewAttribute is the request body for registering an attribute definition.
type NewAttribute struct {
	AttributeName string `json:"attribute_name" binding:"required"`
	AttributeType string `json:"attribute_type" binding:"required"`
}

// NewAttributeValue is the request body for overwriting a single user
// attribute value.
type NewAttributeValue struct {
	Value interface{} `json:"value"`
}
