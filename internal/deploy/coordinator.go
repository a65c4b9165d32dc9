package deploy

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/cameronsjo/stevedore/internal/fileutil"
	"github.com/cameronsjo/stevedore/internal/fleet"
	"github.com/cameronsjo/stevedore/internal/ui"
	"github.com/cameronsjo/stevedore/internal/vars"
)

// Coordinator deploys a fleet group by group. Groups are isolated: a
// failure inside one never prevents the others from being processed.
type Coordinator struct {
	executor Executor
	renderer Renderer
	debug    bool
	debugDir string
	quiet    bool
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithDebug enables persisting every rendered artifact to disk, even when
// the subsequent apply fails. dir is the base directory for artifacts that
// do not declare their own debug path.
func WithDebug(dir string) Option {
	return func(c *Coordinator) {
		c.debug = true
		c.debugDir = dir
	}
}

// WithQuiet suppresses progress output. Used by tests and machine callers.
func WithQuiet() Option {
	return func(c *Coordinator) {
		c.quiet = true
	}
}

// NewCoordinator creates a Coordinator around an executor and a renderer.
func NewCoordinator(executor Executor, renderer Renderer, opts ...Option) *Coordinator {
	c := &Coordinator{
		executor: executor,
		renderer: renderer,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run deploys every enabled group in the fleet and returns the full run
// report. Run never aborts early: disabled groups are recorded untouched,
// failed groups are recorded and the walk continues.
func (c *Coordinator) Run(ctx context.Context, f *fleet.Fleet, varsCtx *vars.Context) *Report {
	report := newReport()

	for _, group := range f.Groups {
		if !group.Enabled {
			report.Groups = append(report.Groups, GroupResult{
				Name:   group.Name,
				Status: GroupDisabled,
			})
			continue
		}
		report.Groups = append(report.Groups, c.deployGroup(ctx, group, varsCtx))
	}

	report.Duration = time.Since(report.StartedAt)
	return report
}

// deployGroup validates the group's preconditions, then deploys its units
// in declaration order. All precondition checks run before any mutation.
func (c *Coordinator) deployGroup(ctx context.Context, group fleet.ServiceGroup, varsCtx *vars.Context) GroupResult {
	result := GroupResult{Name: group.Name}

	if !c.quiet {
		ui.Header("Group: %s", group.Name)
	}

	if err := c.checkPreconditions(ctx, group); err != nil {
		result.Status = GroupSkippedPrecondition
		result.Err = err
		if !c.quiet {
			ui.Warning("Skipping group %s: %v", group.Name, err)
		}
		return result
	}

	result.Status = GroupDeployed
	for _, unit := range group.Units {
		result.Units = append(result.Units, c.deployUnit(ctx, group.Name, unit, varsCtx))
	}
	return result
}

// checkPreconditions probes every declared network for the group. All
// probes run even after the first miss so the report names everything
// that is absent.
func (c *Coordinator) checkPreconditions(ctx context.Context, group fleet.ServiceGroup) error {
	var missing []string
	var probeErr error

	for _, name := range group.Networks {
		exists, err := c.executor.ResourceExists(ctx, name)
		if err != nil {
			missing = append(missing, name)
			if probeErr == nil {
				probeErr = err
			}
			continue
		}
		if !exists {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		return &MissingResourceError{Group: group.Name, Resources: missing, Err: probeErr}
	}
	return nil
}

// deployUnit runs the per-unit state machine: probe, skip if present,
// otherwise render, persist the debug artifact, and apply once.
func (c *Coordinator) deployUnit(ctx context.Context, groupName string, unit fleet.ManagedUnit, varsCtx *vars.Context) UnitResult {
	result := UnitResult{Name: unit.Name}

	exists, err := c.executor.UnitExists(ctx, unit.Name)
	if err != nil {
		result.State = UnitProbeFailed
		result.Err = &ProbeError{Unit: unit.Name, Err: err}
		if !c.quiet {
			ui.Error("%s: %v", unit.Name, result.Err)
		}
		return result
	}
	if exists {
		result.State = UnitSkipped
		if !c.quiet {
			ui.Info("%s already exists, skipping", unit.Name)
		}
		return result
	}

	unitCtx := varsCtx
	if len(unit.Vars) > 0 {
		unitCtx, err = varsCtx.Sub(unit.Vars)
		if err != nil {
			result.State = UnitRenderFailed
			result.Err = fmt.Errorf("unit %q: %w", unit.Name, err)
			if !c.quiet {
				ui.Error("%s: %v", unit.Name, result.Err)
			}
			return result
		}
	}

	artifact, err := c.renderer.Render(unit.Template, unitCtx)
	if err != nil {
		result.State = UnitRenderFailed
		result.Err = fmt.Errorf("unit %q: %w", unit.Name, err)
		if !c.quiet {
			ui.Error("%s: %v", unit.Name, result.Err)
		}
		return result
	}

	// Persist the artifact before applying so a failed apply still leaves
	// the exact rendered text on disk for inspection.
	if c.debug {
		if err := c.writeDebugArtifact(groupName, unit, artifact.Text); err != nil && !c.quiet {
			ui.Warning("%s: could not write debug artifact: %v", unit.Name, err)
		}
	}

	if err := c.executor.Apply(ctx, unit.Name, artifact.Text); err != nil {
		result.State = UnitApplyFailed
		result.Err = err
		if !c.quiet {
			ui.Error("%s: %v", unit.Name, err)
		}
		return result
	}

	result.State = UnitApplied
	if !c.quiet {
		ui.Success("%s deployed", unit.Name)
	}
	return result
}

func (c *Coordinator) writeDebugArtifact(groupName string, unit fleet.ManagedUnit, text []byte) error {
	path := unit.DebugFile
	if path == "" {
		path = filepath.Join(c.debugDir, groupName, unit.Name+".yml")
	}
	return fileutil.WriteFileAtomic(path, text, 0o644)
}
