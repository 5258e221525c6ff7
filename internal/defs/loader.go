// internal/defs/loader.go
package defs

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadVariants reads additional variants from a YAML list and merges them into Variants.
// A variant with an existing name replaces the built-in one.
func LoadVariants(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read variants file: %w", err)
	}

	var variants []Variant
	if err := yaml.Unmarshal(file, &variants); err != nil {
		return fmt.Errorf("failed to unmarshal variants: %w", err)
	}

	for i, v := range variants {
		if v.Name == "" {
			return fmt.Errorf("variant #%d has no name", i)
		}
	}
	for _, v := range variants {
		Variants[v.Name] = v
	}

	log.Printf("Loaded %d variant definitions", len(variants))
	return nil
}
