package schema

import (
	"errors"
	"fmt"
)

// DataType is the JSON Schema type of a PropertyDefinition.
// The zero value is TypeObject.
type DataType int

const (
	TypeObject DataType = iota
	TypeString
	TypeInteger
	TypeNumber
	TypeArray
	TypeBoolean
	TypeNull
)

// ErrUnsupportedType is returned when a type has no JSON Schema representation.
var ErrUnsupportedType = errors.New("schema: unsupported type")

// ConvertTypeToString returns the canonical wire name for t.
func ConvertTypeToString(t DataType) (string, error) {
	switch t {
	case TypeObject:
		return "object", nil
	case TypeString:
		return "string", nil
	case TypeInteger:
		return "integer", nil
	case TypeNumber:
		return "number", nil
	case TypeArray:
		return "array", nil
	case TypeBoolean:
		return "boolean", nil
	case TypeNull:
		return "null", nil
	default:
		return "", fmt.Errorf("%w: %d", ErrUnsupportedType, int(t))
	}
}

// ParseType is the inverse of ConvertTypeToString.
func ParseType(s string) (DataType, error) {
	switch s {
	case "object":
		return TypeObject, nil
	case "string":
		return TypeString, nil
	case "integer":
		return TypeInteger, nil
	case "number":
		return TypeNumber, nil
	case "array":
		return TypeArray, nil
	case "boolean":
		return TypeBoolean, nil
	case "null":
		return TypeNull, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedType, s)
	}
}

// String returns the wire name, or a placeholder for values outside the enumeration.
func (t DataType) String() string {
	s, err := ConvertTypeToString(t)
	if err != nil {
		return fmt.Sprintf("DataType(%d)", int(t))
	}
	return s
}

// MarshalText implements encoding.TextMarshaler.
func (t DataType) MarshalText() ([]byte, error) {
	s, err := ConvertTypeToString(t)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *DataType) UnmarshalText(text []byte) error {
	parsed, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
