package schema

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML implements yaml.Unmarshaler. It walks the node directly so
// that properties keep their document order and an unquoted "type: null"
// decodes as TypeNull. Unknown keys are ignored.
func (p *PropertyDefinition) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.AliasNode {
		value = value.Alias
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("schema: line %d: expected a mapping", value.Line)
	}

	var def PropertyDefinition
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, val := value.Content[i], value.Content[i+1]

		var err error
		if val.ShortTag() == "!!null" && key.Value != "type" && key.Value != "properties" {
			// An explicit null leaves the keyword unset.
			continue
		}
		switch key.Value {
		case "type":
			if val.Tag == "!!null" {
				def.Type = TypeNull
			} else {
				def.Type, err = ParseType(val.Value)
			}
		case "properties":
			def.Properties, err = decodeProperties(val)
		case "required":
			err = val.Decode(&def.Required)
		case "additionalProperties":
			def.AdditionalProperties = new(bool)
			err = val.Decode(def.AdditionalProperties)
		case "description":
			err = val.Decode(&def.Description)
		case "enum":
			err = val.Decode(&def.Enum)
		case "minProperties":
			def.MinProperties = new(int)
			err = val.Decode(def.MinProperties)
		case "maxProperties":
			def.MaxProperties = new(int)
			err = val.Decode(def.MaxProperties)
		case "items":
			def.Items = &PropertyDefinition{}
			err = val.Decode(def.Items)
		}
		if err != nil {
			return fmt.Errorf("schema: line %d: %s: %w", key.Line, key.Value, err)
		}
	}

	*p = def
	return nil
}

func decodeProperties(node *yaml.Node) (*Properties, error) {
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	props := NewProperties()
	if node.Tag == "!!null" {
		return props, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, errors.New("expected a mapping of property schemas")
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value
		if _, dup := props.Get(name); dup {
			return nil, fmt.Errorf("line %d: property %q already defined", node.Content[i].Line, name)
		}
		child := &PropertyDefinition{}
		if err := node.Content[i+1].Decode(child); err != nil {
			return nil, err
		}
		props.Set(name, child)
	}
	return props, nil
}
