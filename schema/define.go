package schema

import "slices"

// DefineArray creates an array schema whose elements are described by items.
// items may be nil.
func DefineArray(items *PropertyDefinition) *PropertyDefinition {
	return &PropertyDefinition{
		Type:  TypeArray,
		Items: items,
	}
}

// DefineEnum creates a string schema restricted to values.
// The values slice is copied.
func DefineEnum(values []string, description string) *PropertyDefinition {
	return &PropertyDefinition{
		Type:        TypeString,
		Enum:        slices.Clone(values),
		Description: description,
	}
}

// DefineInteger creates an integer schema.
func DefineInteger(description string) *PropertyDefinition {
	return &PropertyDefinition{Type: TypeInteger, Description: description}
}

// DefineNumber creates a number schema.
func DefineNumber(description string) *PropertyDefinition {
	return &PropertyDefinition{Type: TypeNumber, Description: description}
}

// DefineString creates a string schema.
func DefineString(description string) *PropertyDefinition {
	return &PropertyDefinition{Type: TypeString, Description: description}
}

// DefineBoolean creates a boolean schema.
func DefineBoolean(description string) *PropertyDefinition {
	return &PropertyDefinition{Type: TypeBoolean, Description: description}
}

// DefineNull creates a null schema.
func DefineNull(description string) *PropertyDefinition {
	return &PropertyDefinition{Type: TypeNull, Description: description}
}

// DefineObject creates an object schema. All arguments are stored as given;
// pass nil or "" to leave a field unset.
func DefineObject(properties *Properties, required []string, additionalProperties *bool, description string, enum []string) *PropertyDefinition {
	return &PropertyDefinition{
		Type:                 TypeObject,
		Properties:           properties,
		Required:             required,
		AdditionalProperties: additionalProperties,
		Description:          description,
		Enum:                 enum,
	}
}
