package deploy

import (
	"time"

	"github.com/google/uuid"
)

// UnitState is the terminal state a managed unit reached in a run.
type UnitState string

const (
	// UnitApplied means the unit was rendered and created.
	UnitApplied UnitState = "applied"
	// UnitSkipped means the unit already existed and was left untouched.
	UnitSkipped UnitState = "skipped"
	// UnitRenderFailed means templating failed; nothing was applied.
	UnitRenderFailed UnitState = "render_failed"
	// UnitApplyFailed means the rendered artifact could not be applied.
	UnitApplyFailed UnitState = "apply_failed"
	// UnitProbeFailed means the existence probe errored, so the unit's
	// true state is unknown and no mutation was attempted.
	UnitProbeFailed UnitState = "probe_failed"
)

// Failed reports whether the state counts against the run.
func (s UnitState) Failed() bool {
	switch s {
	case UnitRenderFailed, UnitApplyFailed, UnitProbeFailed:
		return true
	}
	return false
}

// GroupStatus is the outcome a service group reached in a run.
type GroupStatus string

const (
	// GroupDeployed means the group's preconditions held and every unit
	// was processed (individual units may still have failed).
	GroupDeployed GroupStatus = "deployed"
	// GroupSkippedPrecondition means a required network was missing and
	// the whole group was skipped before any mutation.
	GroupSkippedPrecondition GroupStatus = "skipped_precondition"
	// GroupDisabled means the group was switched off and never evaluated.
	GroupDisabled GroupStatus = "disabled"
)

// UnitResult records one unit's terminal state.
type UnitResult struct {
	Name  string
	State UnitState
	Err   error
}

// GroupResult records one group's outcome and its per-unit results.
type GroupResult struct {
	Name   string
	Status GroupStatus
	Err    error
	Units  []UnitResult
}

// Report is the full outcome of a deployment run.
type Report struct {
	RunID     string
	StartedAt time.Time
	Duration  time.Duration
	Groups    []GroupResult
}

func newReport() *Report {
	return &Report{
		RunID:     uuid.NewString(),
		StartedAt: time.Now(),
	}
}

// Failed reports whether anything in the run went wrong: a group skipped
// on a missing precondition, or any unit in a failed state. Skipped and
// disabled outcomes on their own are a clean run.
func (r *Report) Failed() bool {
	for _, g := range r.Groups {
		if g.Status == GroupSkippedPrecondition {
			return true
		}
		for _, u := range g.Units {
			if u.State.Failed() {
				return true
			}
		}
	}
	return false
}

// Counts tallies unit outcomes across all groups.
func (r *Report) Counts() (applied, skipped, failed int) {
	for _, g := range r.Groups {
		for _, u := range g.Units {
			switch {
			case u.State == UnitApplied:
				applied++
			case u.State == UnitSkipped:
				skipped++
			case u.State.Failed():
				failed++
			}
		}
	}
	return applied, skipped, failed
}
