package schema

import (
	"fmt"
	"slices"

	"github.com/invopop/jsonschema"
)

// Reflect builds a PropertyDefinition from the exported fields of T.
// Field names come from json tags; fields without omitempty are required.
// Nested structs are expanded inline and objects disallow additional
// properties.
func Reflect[T any]() (*PropertyDefinition, error) {
	r := &jsonschema.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
	}
	var zero T
	return FromJSONSchema(r.Reflect(&zero))
}

// FromJSONSchema converts an invopop/jsonschema schema into a
// PropertyDefinition. Keywords outside the supported subset are dropped.
// A schema without a type yields an error wrapping ErrUnsupportedType.
func FromJSONSchema(s *jsonschema.Schema) (*PropertyDefinition, error) {
	if s == nil {
		return nil, nil
	}

	t, err := ParseType(s.Type)
	if err != nil {
		return nil, err
	}

	def := &PropertyDefinition{
		Type:        t,
		Description: s.Description,
		Required:    slices.Clone(s.Required),
	}

	for _, v := range s.Enum {
		def.Enum = append(def.Enum, fmt.Sprint(v))
	}

	switch s.AdditionalProperties {
	case jsonschema.FalseSchema:
		def.AdditionalProperties = Ptr(false)
	case jsonschema.TrueSchema:
		def.AdditionalProperties = Ptr(true)
	}

	if s.Properties != nil {
		def.Properties = NewProperties()
		for pair := s.Properties.Oldest(); pair != nil; pair = pair.Next() {
			child, err := FromJSONSchema(pair.Value)
			if err != nil {
				return nil, fmt.Errorf("property %q: %w", pair.Key, err)
			}
			def.Properties.Set(pair.Key, child)
		}
	}

	if s.Items != nil {
		items, err := FromJSONSchema(s.Items)
		if err != nil {
			return nil, fmt.Errorf("items: %w", err)
		}
		def.Items = items
	}

	return def, nil
}
