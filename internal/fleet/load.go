package fleet

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads, parses, and validates a fleet file.
func Load(path string) (*Fleet, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fleet file: %w", err)
	}

	return Parse(content)
}

// Parse parses and validates fleet file content.
func Parse(content []byte) (*Fleet, error) {
	var f Fleet
	if err := yaml.Unmarshal(content, &f); err != nil {
		return nil, fmt.Errorf("parse fleet file: %w", err)
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}

	return &f, nil
}

// ApplyToggles overrides group enable flags from CLI toggles.
// Every toggle must name a known group.
func (f *Fleet) ApplyToggles(toggles map[string]bool) error {
	for name, enabled := range toggles {
		g := f.Group(name)
		if g == nil {
			return fmt.Errorf("%w: %s", ErrUnknownGroup, name)
		}
		g.Enabled = enabled
	}
	return nil
}
