package docker

import (
	"context"
	"errors"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/network"
	"github.com/docker/go-connections/nat"
)

// Common test errors.
var (
	errMockPing = errors.New("mock: ping failed")
	errMockList = errors.New("mock: container list failed")
	errMockNet  = errors.New("mock: network list failed")
)

// MockDockerAPI is a mock implementation of DockerAPI for testing.
type MockDockerAPI struct {
	// Function overrides for each method
	PingFunc          func(ctx context.Context) (types.Ping, error)
	ContainerListFunc func(ctx context.Context, options container.ListOptions) ([]container.Summary, error)
	NetworkListFunc   func(ctx context.Context, options network.ListOptions) ([]network.Summary, error)
	CloseFunc         func() error

	// Call tracking
	PingCalls          int
	ContainerListCalls int
	NetworkListCalls   int
	CloseCalls         int
}

// NewMockDockerAPI creates a new mock with default no-op implementations.
func NewMockDockerAPI() *MockDockerAPI {
	return &MockDockerAPI{}
}

// Ping implements DockerAPI.
func (m *MockDockerAPI) Ping(ctx context.Context) (types.Ping, error) {
	m.PingCalls++
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return types.Ping{APIVersion: "1.45"}, nil
}

// ContainerList implements DockerAPI.
func (m *MockDockerAPI) ContainerList(ctx context.Context, options container.ListOptions) ([]container.Summary, error) {
	m.ContainerListCalls++
	if m.ContainerListFunc != nil {
		return m.ContainerListFunc(ctx, options)
	}
	return []container.Summary{}, nil
}

// NetworkList implements DockerAPI.
func (m *MockDockerAPI) NetworkList(ctx context.Context, options network.ListOptions) ([]network.Summary, error) {
	m.NetworkListCalls++
	if m.NetworkListFunc != nil {
		return m.NetworkListFunc(ctx, options)
	}
	return []network.Summary{}, nil
}

// Close implements DockerAPI.
func (m *MockDockerAPI) Close() error {
	m.CloseCalls++
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

// Verify the mock satisfies the interface.
var _ DockerAPI = (*MockDockerAPI)(nil)

// summaryContainer builds a container summary fixture.
func summaryContainer(id, name, image, state string, publicPort uint16) container.Summary {
	ctr := container.Summary{
		ID:    id,
		Names: []string{"/" + name},
		Image: image,
		State: state,
	}
	if publicPort > 0 {
		p, _ := nat.NewPort("tcp", "80")
		ctr.Ports = []container.Port{{
			PrivatePort: uint16(p.Int()),
			PublicPort:  publicPort,
			Type:        "tcp",
		}}
	}
	return ctr
}

// summaryNetwork builds a network summary fixture.
func summaryNetwork(id, name string) network.Summary {
	return network.Summary{ID: id, Name: name, Driver: "bridge"}
}
