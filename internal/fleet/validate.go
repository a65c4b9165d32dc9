package fleet

import (
	"errors"
	"fmt"
)

// Validation errors for fleet files.
var (
	// ErrUnsupportedAPIVersion indicates an unknown or unsupported API version.
	ErrUnsupportedAPIVersion = errors.New("unsupported API version")

	// ErrInvalidKind indicates the file is not a Fleet.
	ErrInvalidKind = errors.New("invalid kind")

	// ErrNoGroups indicates a fleet without any groups.
	ErrNoGroups = errors.New("fleet defines no groups")

	// ErrDuplicateName indicates a group or unit name used more than once.
	ErrDuplicateName = errors.New("duplicate name")

	// ErrMissingField indicates a required field is empty.
	ErrMissingField = errors.New("missing required field")

	// ErrUnknownGroup indicates a toggle referenced a group that does not exist.
	ErrUnknownGroup = errors.New("unknown group")
)

// Validate checks the fleet for structural problems before a run.
func (f *Fleet) Validate() error {
	if f.APIVersion != "" {
		supported := false
		for _, v := range SupportedAPIVersions {
			if f.APIVersion == v {
				supported = true
				break
			}
		}
		if !supported {
			return fmt.Errorf("%w: %s (supported: %v)", ErrUnsupportedAPIVersion, f.APIVersion, SupportedAPIVersions)
		}
	}

	if f.Kind != "" && f.Kind != KindFleet {
		return fmt.Errorf("%w: got %s, expected %s", ErrInvalidKind, f.Kind, KindFleet)
	}

	if len(f.Groups) == 0 {
		return ErrNoGroups
	}

	groupNames := make(map[string]bool)
	unitNames := make(map[string]bool)

	for _, g := range f.Groups {
		if g.Name == "" {
			return fmt.Errorf("%w: group name", ErrMissingField)
		}
		if groupNames[g.Name] {
			return fmt.Errorf("%w: group %q", ErrDuplicateName, g.Name)
		}
		groupNames[g.Name] = true

		for _, u := range g.Units {
			if u.Name == "" {
				return fmt.Errorf("%w: unit name in group %q", ErrMissingField, g.Name)
			}
			// Unit names are container names; they must be unique
			// across the whole fleet, not just within a group.
			if unitNames[u.Name] {
				return fmt.Errorf("%w: unit %q", ErrDuplicateName, u.Name)
			}
			unitNames[u.Name] = true

			if u.Template == "" {
				return fmt.Errorf("%w: template for unit %q", ErrMissingField, u.Name)
			}
		}

		for _, n := range g.Networks {
			if n == "" {
				return fmt.Errorf("%w: network name in group %q", ErrMissingField, g.Name)
			}
		}
	}

	return nil
}
