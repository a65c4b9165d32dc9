// Package fleet defines the declarative model for service groups and the
// managed units they deploy.
package fleet

// API version and kind constants for fleet file versioning.
const (
	// APIVersionV1 is the current API version for stevedore fleet files.
	APIVersionV1 = "stevedore.io/v1"

	// KindFleet identifies a Fleet file.
	KindFleet = "Fleet"
)

// SupportedAPIVersions lists all API versions that can be loaded.
var SupportedAPIVersions = []string{APIVersionV1}

// Fleet is the full set of service groups managed on one host.
type Fleet struct {
	// APIVersion identifies the schema version (e.g., "stevedore.io/v1").
	APIVersion string `yaml:"apiVersion,omitempty"`

	// Kind identifies the file type (e.g., "Fleet").
	Kind string `yaml:"kind,omitempty"`

	// Groups lists the togglable service groups.
	Groups []ServiceGroup `yaml:"groups"`
}

// ServiceGroup is a togglable collection of managed units sharing
// preconditions.
type ServiceGroup struct {
	// Name identifies the group (used in toggles, reports, debug paths).
	Name string `yaml:"name"`

	// Enabled controls whether the group is evaluated at all.
	// Disabled groups are not even precondition-checked.
	Enabled bool `yaml:"enabled"`

	// Networks lists Docker networks that must pre-exist before any unit
	// in the group is deployed. Stevedore checks these, never creates them.
	Networks []string `yaml:"networks,omitempty"`

	// Units lists the deployable service instances in this group.
	Units []ManagedUnit `yaml:"units"`
}

// ManagedUnit is one deployable service instance.
type ManagedUnit struct {
	// Name is both the existence-probe key and the apply identity
	// (the container name).
	Name string `yaml:"name"`

	// Template identifies the template its compose config is rendered from.
	Template string `yaml:"template"`

	// Vars declares the variable subset the template may reference.
	Vars []string `yaml:"vars,omitempty"`

	// DebugFile optionally overrides where the debug artifact is written.
	DebugFile string `yaml:"debugFile,omitempty"`
}

// EnabledGroups returns the groups whose enable flag is set.
func (f *Fleet) EnabledGroups() []ServiceGroup {
	var enabled []ServiceGroup
	for _, g := range f.Groups {
		if g.Enabled {
			enabled = append(enabled, g)
		}
	}
	return enabled
}

// Group returns the named group, or nil if it does not exist.
func (f *Fleet) Group(name string) *ServiceGroup {
	for i := range f.Groups {
		if f.Groups[i].Name == name {
			return &f.Groups[i]
		}
	}
	return nil
}

// DeclaredKeys returns the union of variable names declared by units in
// enabled groups, deduplicated, in first-seen order.
func (f *Fleet) DeclaredKeys() []string {
	seen := make(map[string]bool)
	var keys []string
	for _, g := range f.EnabledGroups() {
		for _, u := range g.Units {
			for _, k := range u.Vars {
				if !seen[k] {
					seen[k] = true
					keys = append(keys, k)
				}
			}
		}
	}
	return keys
}
