package google

import (
	"fmt"
	"slices"

	"github.com/spetersoncode/toolspec/schema"
	"google.golang.org/genai"
)

// Schema converts a property definition to a genai Schema. A nil
// definition converts to nil and nil child properties are skipped.
func Schema(p *schema.PropertyDefinition) (*genai.Schema, error) {
	if p == nil {
		return nil, nil
	}

	result := &genai.Schema{
		Description: p.Description,
		Enum:        slices.Clone(p.Enum),
		Required:    slices.Clone(p.Required),
	}

	switch p.Type {
	case schema.TypeObject:
		result.Type = genai.TypeObject
	case schema.TypeString:
		result.Type = genai.TypeString
	case schema.TypeInteger:
		result.Type = genai.TypeInteger
	case schema.TypeNumber:
		result.Type = genai.TypeNumber
	case schema.TypeArray:
		result.Type = genai.TypeArray
	case schema.TypeBoolean:
		result.Type = genai.TypeBoolean
	case schema.TypeNull:
		result.Nullable = schema.Ptr(true)
	default:
		return nil, fmt.Errorf("%w: %d", schema.ErrUnsupportedType, int(p.Type))
	}

	if p.MinProperties != nil {
		result.MinProperties = schema.Ptr(int64(*p.MinProperties))
	}
	if p.MaxProperties != nil {
		result.MaxProperties = schema.Ptr(int64(*p.MaxProperties))
	}

	if p.Properties != nil {
		result.Properties = make(map[string]*genai.Schema, p.Properties.Len())
		for pair := p.Properties.Oldest(); pair != nil; pair = pair.Next() {
			if pair.Value == nil {
				continue
			}
			child, err := Schema(pair.Value)
			if err != nil {
				return nil, fmt.Errorf("property %q: %w", pair.Key, err)
			}
			result.Properties[pair.Key] = child
			result.PropertyOrdering = append(result.PropertyOrdering, pair.Key)
		}
	}

	if p.Items != nil {
		items, err := Schema(p.Items)
		if err != nil {
			return nil, fmt.Errorf("items: %w", err)
		}
		result.Items = items
	}

	return result, nil
}
