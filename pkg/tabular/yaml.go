package tabular

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// FromYAML builds a dataset from a YAML sequence of mappings. yaml.Node
// preserves mapping key order, so columns keep their document order.
func FromYAML(name string, data []byte) (*Dataset, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse dataset YAML: %w", err)
	}

	d := New(name)
	if len(doc.Content) == 0 {
		// Empty document is an empty dataset.
		return d, nil
	}

	seq := doc.Content[0]
	if seq.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("dataset YAML must be a sequence of mappings, got %v", seq.Tag)
	}

	for _, item := range seq.Content {
		if item.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("dataset rows must be YAML mappings, got %v at line %d", item.Tag, item.Line)
		}

		var cols []string
		rec := Record{}
		for i := 0; i+1 < len(item.Content); i += 2 {
			key := item.Content[i].Value
			var val any
			if err := item.Content[i+1].Decode(&val); err != nil {
				return nil, fmt.Errorf("failed to decode value for column %q: %w", key, err)
			}
			cols = append(cols, key)
			rec[key] = val
		}
		d.Append(cols, rec)
	}

	return d, nil
}
