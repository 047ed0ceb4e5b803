package scrub

import (
	"fmt"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// FromJSON decodes a serialized rule tree into a RuleSet. Each top-level key
// maps to a grammar string or a structured rule object; hooks are code-only
// and cannot appear in serialized form.
func FromJSON(data []byte) (RuleSet, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("scrub: decode json rule set: %w", err)
	}
	return RuleSet(raw), nil
}

// FromYAML decodes a serialized rule tree into a RuleSet, with the same shape
// contract as FromJSON.
func FromYAML(data []byte) (RuleSet, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("scrub: decode yaml rule set: %w", err)
	}
	return RuleSet(raw), nil
}
