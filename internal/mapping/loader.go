package mapping

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML mapping file from the given path.
func LoadFile(path string) (*MappingFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a MappingFile.
func Parse(data []byte) (*MappingFile, error) {
	var mf MappingFile

	err := yaml.Unmarshal(data, &mf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse mapping YAML: %w", err)
	}

	// Apply defaults and normalize
	applyDefaults(&mf)

	return &mf, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(mf *MappingFile) {
	if mf.Version == "" {
		mf.Version = "1"
	}
}

// LoadTree reads, parses and compiles a mapping file in one step.
func LoadTree(path string, registry *Registry) (*MappingFile, Tree, error) {
	mf, err := LoadFile(path)
	if err != nil {
		return nil, nil, err
	}

	tree, diags := Compile(mf, registry)
	if err := diags.Error(); err != nil {
		return mf, nil, fmt.Errorf("invalid mapping file %s: %w", path, err)
	}

	return mf, tree, nil
}
