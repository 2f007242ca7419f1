package generator

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest pins the set of classes to generate accessors for, and the Go
// package they are emitted into.
type Manifest struct {
	Package string   `yaml:"package"`
	Classes []string `yaml:"classes"`
}

func (m *Manifest) Validate() error {
	if m.Package == "" {
		return fmt.Errorf("manifest: package name is required")
	}
	if len(m.Classes) == 0 {
		return fmt.Errorf("manifest: no classes listed")
	}
	seen := make(map[string]struct{}, len(m.Classes))
	for _, name := range m.Classes {
		if name == "" {
			return fmt.Errorf("manifest: empty class name")
		}
		if _, ok := seen[name]; ok {
			return fmt.Errorf("manifest: duplicate class %q", name)
		}
		seen[name] = struct{}{}
	}
	return nil
}

// LoadManifest reads and validates a YAML manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}
