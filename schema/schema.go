package schema

import orderedmap "github.com/wk8/go-ordered-map/v2"

// PropertyDefinition is a single JSON Schema node describing a parameter
// or a nested value.
//
// Unset optional fields are omitted from the encoded form rather than
// written as null. Properties and Items only ever hold children owned by
// this node, so a definition is always a tree.
type PropertyDefinition struct {
	// Type defaults to TypeObject.
	Type DataType `json:"type"`

	// Properties maps property names to their schemas in insertion order.
	// Only meaningful for objects.
	Properties *Properties `json:"properties,omitempty"`

	// Required lists the property names that must be present.
	Required []string `json:"required,omitempty"`

	// AdditionalProperties is nil when unspecified, which is not the same
	// as an explicit true.
	AdditionalProperties *bool `json:"additionalProperties,omitempty"`

	Description string   `json:"description,omitempty"`
	Enum        []string `json:"enum,omitempty"`

	MinProperties *int `json:"minProperties,omitempty"`
	MaxProperties *int `json:"maxProperties,omitempty"`

	// Items describes array elements. Only meaningful for arrays.
	Items *PropertyDefinition `json:"items,omitempty"`
}

// Properties is an insertion-ordered map of property name to schema.
// Setting an existing key replaces its value in place.
type Properties = orderedmap.OrderedMap[string, *PropertyDefinition]

// NewProperties returns an empty Properties map.
func NewProperties() *Properties {
	return orderedmap.New[string, *PropertyDefinition]()
}

// PropertyNames returns the property names of p in insertion order.
func (p *PropertyDefinition) PropertyNames() []string {
	if p == nil || p.Properties == nil {
		return nil
	}
	names := make([]string, 0, p.Properties.Len())
	for pair := p.Properties.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// Property returns the child schema registered under name.
func (p *PropertyDefinition) Property(name string) (*PropertyDefinition, bool) {
	if p == nil || p.Properties == nil {
		return nil, false
	}
	return p.Properties.Get(name)
}

// Ptr returns a pointer to v, for the optional scalar fields.
func Ptr[T any](v T) *T {
	return &v
}
