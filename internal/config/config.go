// Package config handles project discovery and configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Config holds the stevedore project configuration.
type Config struct {
	// Root is the project root directory (contains fleet.yml).
	Root string

	// FleetFile is the path to the fleet definition.
	FleetFile string

	// TemplatesDir is the path to the unit template directory.
	TemplatesDir string

	// VarsFile is the path to the default variables file.
	VarsFile string

	// SecretsFile is the path to the sops-encrypted secrets file.
	SecretsFile string
}

// FindRoot searches upward from the current directory to find the project
// root. The project root is identified by the presence of a fleet.yml file.
func FindRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return FindRootFrom(dir)
}

// FindRootFrom searches upward from dir for the project root.
func FindRootFrom(dir string) (string, error) {
	for {
		fleetFile := filepath.Join(dir, "fleet.yml")
		if info, err := os.Stat(fleetFile); err == nil && !info.IsDir() {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("project root not found (no fleet.yml in this or any parent directory)")
}

// Load finds the project root and returns a Config.
func Load() (*Config, error) {
	root, err := FindRoot()
	if err != nil {
		return nil, err
	}
	return FromRoot(root), nil
}

// FromRoot builds a Config for a known project root.
func FromRoot(root string) *Config {
	return &Config{
		Root:         root,
		FleetFile:    filepath.Join(root, "fleet.yml"),
		TemplatesDir: filepath.Join(root, "templates"),
		VarsFile:     filepath.Join(root, "vars", "defaults.yml"),
		SecretsFile:  filepath.Join(root, "vars", "secrets.sops.yml"),
	}
}

// StateDir returns the path to stevedore's working directory.
func (c *Config) StateDir() string {
	return filepath.Join(c.Root, "stevedore")
}

// OutputDir returns the path to the rendered compose output directory.
func (c *Config) OutputDir() string {
	return filepath.Join(c.StateDir(), "compose")
}

// DebugDir returns the path to the debug artifact directory.
func (c *Config) DebugDir() string {
	return filepath.Join(c.StateDir(), "debug")
}

// LocksDir returns the path to the run lock directory.
func (c *Config) LocksDir() string {
	return filepath.Join(c.StateDir(), "locks")
}
