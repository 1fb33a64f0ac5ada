package place

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadClassMappings reads a JSON object mapping source class names to
// replacement class names.
func LoadClassMappings(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read mappings file: %w", err)
	}

	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse mappings file: %w", err)
	}

	return m, nil
}
