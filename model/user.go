package model

// User is a subject whose attributes are evaluated for access decisions.
// Every key in Attributes must reference a registered attribute definition
// and the value's runtime type must match the declared type.
type User struct {
	ID         string                 `json:"user_id" binding:"required"`
	Attributes map[string]interface{} `json:"attributes"`
}

// AttributeCollection is the request body for a wholesale replacement of a
// user's attributes.
type AttributeCollection struct {
	Attributes map[string]interface{} `json:"attributes"`
}

// UserAttribute is the result of overwriting a single attribute value.
type UserAttribute struct {
	UserID string      `json:"user_id"`
	Name   string      `json:"attribute_name"`
	Value  interface{} `json:"attribute_value"`
}

// DeletedUserAttribute is the result of removing a single attribute value.
type DeletedUserAttribute struct {
	UserID  string `json:"user_id"`
	Name    string `json:"attribute_name"`
	Deleted bool   `json:"deleted"`
}
