package model

import "strconv"

// Attribute values cross a textual store, so every write serializes to a
// canonical string and every read reconstructs the declared type. The
// boolean rule is fixed once here: true encodes as "1", false as "0", and
// on read the literal "1" is true while any other stored form is false.
// The same codec feeds validation, the user read path and condition
// evaluation so the interpretations cannot diverge.

// NormalizeValue reduces a decoded JSON value to one of bool, int64 or
// string. Numbers are only accepted when integral; booleans are never
// coerced from numbers and vice versa.
func NormalizeValue(v interface{}) (interface{}, bool) {
	switch val := v.(type) {
	case bool:
		return val, true
	case string:
		return val, true
	case int:
		return int64(val), true
	case int64:
		return val, true
	case float64:
		if val == float64(int64(val)) {
			return int64(val), true
		}
		return nil, false
	default:
		return nil, false
	}
}

// AsInt64 extracts an integer from a normalized or JSON-round-tripped
// value.
func AsInt64(v interface{}) (int64, bool) {
	switch val := v.(type) {
	case int:
		return int64(val), true
	case int64:
		return val, true
	case float64:
		if val == float64(int64(val)) {
			return int64(val), true
		}
	}
	return 0, false
}

// ValueMatchesType reports whether a normalized value has the runtime type
// declared for the attribute.
func ValueMatchesType(t AttributeType, v interface{}) bool {
	switch t {
	case AttributeTypeString:
		_, ok := v.(string)
		return ok
	case AttributeTypeInteger:
		_, ok := v.(int64)
		return ok
	case AttributeTypeBoolean:
		_, ok := v.(bool)
		return ok
	default:
		return false
	}
}

// EncodeValue serializes a normalized value to its canonical stored form.
func EncodeValue(v interface{}) string {
	switch val := v.(type) {
	case bool:
		if val {
			return "1"
		}
		return "0"
	case int64:
		return strconv.FormatInt(val, 10)
	case string:
		return val
	default:
		return ""
	}
}

// DecodeValue reconstructs a stored textual value to the declared type.
func DecodeValue(t AttributeType, stored string) (interface{}, error) {
	switch t {
	case AttributeTypeBoolean:
		return DecodeBool(stored), nil
	case AttributeTypeInteger:
		n, err := strconv.ParseInt(stored, 10, 64)
		if err != nil {
			return nil, err
		}
		return n, nil
	default:
		return stored, nil
	}
}

// DecodeBool applies the canonical boolean read rule.
func DecodeBool(stored string) bool {
	return stored == "1"
}
