package deploy

import (
	"fmt"
	"strings"
)

// MissingResourceError reports that a group's declared networks were not
// found on the runtime before deployment. The group is skipped whole; a
// partially wired group is worse than an absent one.
type MissingResourceError struct {
	Group     string
	Resources []string
	Err       error
}

func (e *MissingResourceError) Error() string {
	msg := fmt.Sprintf("group %q: missing required networks: %s", e.Group, strings.Join(e.Resources, ", "))
	if e.Err != nil {
		msg += fmt.Sprintf(" (probe error: %v)", e.Err)
	}
	return msg
}

func (e *MissingResourceError) Unwrap() error {
	return e.Err
}

// ProbeError reports that an existence probe itself failed, so the true
// state of a unit is unknown. The unit is neither skipped nor applied.
type ProbeError struct {
	Unit string
	Err  error
}

func (e *ProbeError) Error() string {
	return fmt.Sprintf("unit %q: existence probe failed: %v", e.Unit, e.Err)
}

func (e *ProbeError) Unwrap() error {
	return e.Err
}
