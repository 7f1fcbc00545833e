package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads scenario definitions from a YAML or JSON file. The document
// must hold a list; entries without a name are called scenario_<n> in file
// order.
func Load(path string) ([]Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes a YAML or JSON scenario list.
func Parse(data []byte) ([]Definition, error) {
	var defs []Definition
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("scenario file must contain a list of definitions: %w", err)
	}
	for i := range defs {
		if defs[i].Name == "" {
			defs[i].Name = fmt.Sprintf("scenario_%d", i+1)
		}
	}
	return defs, nil
}
