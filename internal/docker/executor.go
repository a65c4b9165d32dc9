package docker

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"

	"github.com/cameronsjo/stevedore/internal/fileutil"
)

// ApplyError indicates the runtime rejected an artifact.
type ApplyError struct {
	Unit   string
	Detail string
	Err    error
}

func (e *ApplyError) Error() string {
	return fmt.Sprintf("apply %s: %s", e.Unit, e.Detail)
}

func (e *ApplyError) Unwrap() error {
	return e.Err
}

// ComposeRunner starts a compose project from a compose file.
type ComposeRunner interface {
	Up(ctx context.Context, file, project string) error
}

// Executor applies rendered artifacts to the Docker host. It implements
// the executor contract the deploy package consumes: existence probes
// delegate to the Client, apply writes the artifact as the unit's compose
// file and brings the project up.
type Executor struct {
	client  *Client
	compose ComposeRunner
	outDir  string
}

// NewExecutor creates an Executor writing compose files under outDir.
func NewExecutor(client *Client, outDir string) *Executor {
	return &Executor{client: client, compose: &composeCLI{}, outDir: outDir}
}

// NewExecutorWithCompose creates an Executor with a custom compose runner.
// This is primarily used for testing.
func NewExecutorWithCompose(client *Client, compose ComposeRunner, outDir string) *Executor {
	return &Executor{client: client, compose: compose, outDir: outDir}
}

// ResourceExists reports whether a required external network exists.
func (e *Executor) ResourceExists(ctx context.Context, name string) (bool, error) {
	return e.client.NetworkExists(ctx, name)
}

// UnitExists reports whether a container for the unit exists.
func (e *Executor) UnitExists(ctx context.Context, name string) (bool, error) {
	return e.client.ContainerExists(ctx, name)
}

// ComposeFile returns the path the unit's compose file is written to.
func (e *Executor) ComposeFile(unitName string) string {
	return filepath.Join(e.outDir, unitName+".yml")
}

// Apply writes the artifact as the unit's compose file and starts the
// unit's compose project. Attempted once; callers decide what a failure
// means for the rest of the run.
func (e *Executor) Apply(ctx context.Context, unitName string, artifact []byte) error {
	file := e.ComposeFile(unitName)

	if err := fileutil.WriteFileAtomic(file, artifact, 0644); err != nil {
		return &ApplyError{Unit: unitName, Detail: "write compose file", Err: err}
	}

	if err := e.compose.Up(ctx, file, unitName); err != nil {
		return &ApplyError{Unit: unitName, Detail: err.Error(), Err: err}
	}

	return nil
}

// composeCLI runs docker compose through the docker CLI plugin.
type composeCLI struct{}

// Up starts the project defined in the compose file.
func (c *composeCLI) Up(ctx context.Context, file, project string) error {
	cmd := exec.CommandContext(ctx, "docker", "compose", "-f", file, "-p", project, "up", "-d")
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("docker compose up: %w\n%s", err, output)
	}

	return nil
}
