package deploy

import (
	"context"

	"github.com/cameronsjo/stevedore/internal/docker"
	"github.com/cameronsjo/stevedore/internal/render"
	"github.com/cameronsjo/stevedore/internal/vars"
)

// Executor is the deployment side's contract with the container runtime.
// It answers existence probes and applies rendered artifacts. The real
// implementation lives in the docker package; tests supply mocks.
type Executor interface {
	// ResourceExists reports whether a shared resource (an external
	// network) is present on the runtime.
	ResourceExists(ctx context.Context, name string) (bool, error)

	// UnitExists reports whether a container with the given name exists,
	// in any state.
	UnitExists(ctx context.Context, name string) (bool, error)

	// Apply materializes a rendered artifact as a running unit.
	Apply(ctx context.Context, unit string, artifact []byte) error
}

// Renderer produces deployment artifacts from templates and a variable
// context. The real implementation lives in the render package.
type Renderer interface {
	Render(templateID string, ctx *vars.Context) (*render.Artifact, error)
}

// Compile-time verification that the production implementations satisfy
// the deployment contracts.
var (
	_ Executor = (*docker.Executor)(nil)
	_ Renderer = (*render.Renderer)(nil)
)
