package model

// Condition operators. The valid set depends on the attribute's declared
// type: integers allow =, < and >; booleans only =; strings = and
// starts_with.
const (
	OpEqual      = "="
	OpLess       = "<"
	OpGreater    = ">"
	OpStartsWith = "starts_with"
)

// Condition is a single typed comparison within a policy. Value holds a
// string, an int64 or a bool after validation; conditions read back from
// storage may carry float64 for numbers (JSON round trip).
type Condition struct {
	AttributeName string      `json:"attribute_name" binding:"required"`
	Operator      string      `json:"operator" binding:"required"`
	Value         interface{} `json:"value"`
}

// Policy is a named conjunction of conditions: a subject satisfies the
// policy iff every condition evaluates true. Condition order is preserved
// verbatim for determinism but is irrelevant to evaluation.
type Policy struct {
	ID         string      `json:"policy_id" binding:"required"`
	Conditions []Condition `json:"conditions"`
}
