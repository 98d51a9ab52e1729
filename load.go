package toolspec

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadDefinitions decodes a YAML or JSON list of function definitions:
//
//	- name: get_weather
//	  description: Get the current weather
//	  parameters:
//	    type: object
//	    properties:
//	      location: {type: string}
//	    required: [location]
//
// Property order follows the document. Every name is checked with
// ValidateName and must be unique. A definition without parameters gets
// an empty object schema. An empty document yields no definitions.
func LoadDefinitions(r io.Reader) ([]*FunctionDefinition, error) {
	var defs []*FunctionDefinition
	if err := yaml.NewDecoder(r).Decode(&defs); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("toolspec: decode definitions: %w", err)
	}

	seen := make(map[string]bool, len(defs))
	for i, def := range defs {
		if def == nil {
			return nil, fmt.Errorf("definition %d: %w", i, ErrNilDefinition)
		}
		if err := ValidateName(def.Name); err != nil {
			return nil, fmt.Errorf("definition %d: %w", i, err)
		}
		if seen[def.Name] {
			return nil, fmt.Errorf("definition %d: %w: %q", i, ErrDuplicateName, def.Name)
		}
		seen[def.Name] = true
		if def.Parameters == nil {
			def.Parameters = emptyParameters()
		}
	}
	return defs, nil
}

// LoadDefinitionsFile reads definitions from the file at path.
func LoadDefinitionsFile(path string) ([]*FunctionDefinition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadDefinitions(f)
}
