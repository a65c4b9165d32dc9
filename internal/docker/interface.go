package docker

import (
	"context"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/network"
)

// DockerAPI defines the interface for Docker client operations.
// This interface enables mocking for unit tests without requiring a running Docker daemon.
type DockerAPI interface {
	// Ping tests the connection to the Docker daemon.
	Ping(ctx context.Context) (types.Ping, error)

	// ContainerList returns a list of containers.
	ContainerList(ctx context.Context, options container.ListOptions) ([]container.Summary, error)

	// NetworkList returns a list of networks matching the options.
	NetworkList(ctx context.Context, options network.ListOptions) ([]network.Summary, error)

	// Close closes the client connection.
	Close() error
}

// Verify that the Docker SDK client implements our interface.
// This ensures compile-time verification that our interface stays in sync.
var _ DockerAPI = (dockerAPIAdapter)(nil)

// dockerAPIAdapter adapts the Docker SDK client to our interface.
// The SDK client methods have the same signatures, so this is a type alias.
type dockerAPIAdapter interface {
	Ping(ctx context.Context) (types.Ping, error)
	ContainerList(ctx context.Context, options container.ListOptions) ([]container.Summary, error)
	NetworkList(ctx context.Context, options network.ListOptions) ([]network.Summary, error)
	Close() error
}
