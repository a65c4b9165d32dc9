package vars

import (
	"fmt"
	"os"

	"github.com/getsops/sops/v3/decrypt"
	"gopkg.in/yaml.v3"
)

// SopsSource serves values from SOPS-encrypted YAML files.
// Later files override earlier ones for duplicate keys.
type SopsSource struct {
	files []string
}

// NewSopsSource creates a secret-store source from encrypted files.
func NewSopsSource(files []string) *SopsSource {
	return &SopsSource{files: files}
}

// Name implements Source.
func (s *SopsSource) Name() string { return "sops" }

// Load implements Source.
func (s *SopsSource) Load() (map[string]any, error) {
	merged := make(map[string]any)

	for _, file := range s.files {
		if _, err := os.Stat(file); err != nil {
			return nil, fmt.Errorf("secrets file not found: %s", file)
		}

		cleartext, err := decrypt.File(file, "yaml")
		if err != nil {
			return nil, fmt.Errorf("decrypt %s: %w", file, err)
		}

		var values map[string]any
		if err := yaml.Unmarshal(cleartext, &values); err != nil {
			return nil, fmt.Errorf("parse decrypted %s: %w", file, err)
		}

		for k, v := range values {
			merged[k] = v
		}
	}

	return merged, nil
}
