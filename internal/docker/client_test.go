package docker

import (
	"context"
	"testing"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPing(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mock := NewMockDockerAPI()
		client := NewClientWithAPI(mock)

		err := client.Ping(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, mock.PingCalls)
	})

	t.Run("failure", func(t *testing.T) {
		mock := NewMockDockerAPI()
		mock.PingFunc = func(ctx context.Context) (types.Ping, error) {
			return types.Ping{}, errMockPing
		}
		client := NewClientWithAPI(mock)

		err := client.Ping(context.Background())
		assert.Error(t, err)
	})
}

func TestNetworkExists(t *testing.T) {
	tests := []struct {
		name     string
		networks []network.Summary
		query    string
		want     bool
	}{
		{
			name:     "exact match",
			networks: []network.Summary{summaryNetwork("n1", "proxy")},
			query:    "proxy",
			want:     true,
		},
		{
			name:     "substring match is not enough",
			networks: []network.Summary{summaryNetwork("n1", "proxy-internal")},
			query:    "proxy",
			want:     false,
		},
		{
			name:     "no networks",
			networks: nil,
			query:    "proxy",
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockDockerAPI()
			mock.NetworkListFunc = func(ctx context.Context, options network.ListOptions) ([]network.Summary, error) {
				return tt.networks, nil
			}
			client := NewClientWithAPI(mock)

			got, err := client.NetworkExists(context.Background(), tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNetworkExists_Error(t *testing.T) {
	mock := NewMockDockerAPI()
	mock.NetworkListFunc = func(ctx context.Context, options network.ListOptions) ([]network.Summary, error) {
		return nil, errMockNet
	}
	client := NewClientWithAPI(mock)

	_, err := client.NetworkExists(context.Background(), "proxy")
	assert.Error(t, err)
}

func TestContainerExists(t *testing.T) {
	mock := NewMockDockerAPI()
	mock.ContainerListFunc = func(ctx context.Context, options container.ListOptions) ([]container.Summary, error) {
		// Probes must see stopped containers too.
		assert.True(t, options.All)
		return []container.Summary{
			summaryContainer("c1", "ollama", "ollama/ollama", "running", 0),
			summaryContainer("c2", "n8n", "n8nio/n8n", "exited", 0),
		}, nil
	}
	client := NewClientWithAPI(mock)

	ok, err := client.ContainerExists(context.Background(), "ollama")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = client.ContainerExists(context.Background(), "n8n")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = client.ContainerExists(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestContainerExists_Error(t *testing.T) {
	mock := NewMockDockerAPI()
	mock.ContainerListFunc = func(ctx context.Context, options container.ListOptions) ([]container.Summary, error) {
		return nil, errMockList
	}
	client := NewClientWithAPI(mock)

	_, err := client.ContainerExists(context.Background(), "ollama")
	assert.Error(t, err)
}

func TestListContainers(t *testing.T) {
	mock := NewMockDockerAPI()
	mock.ContainerListFunc = func(ctx context.Context, options container.ListOptions) ([]container.Summary, error) {
		return []container.Summary{
			summaryContainer("0123456789abcdef", "ollama", "ollama/ollama", "running", 11434),
		}, nil
	}
	client := NewClientWithAPI(mock)

	containers, err := client.ListContainers(context.Background())
	require.NoError(t, err)
	require.Len(t, containers, 1)

	assert.Equal(t, "0123456789ab", containers[0].ID)
	assert.Equal(t, "ollama", containers[0].Name)
	assert.Equal(t, "running", containers[0].State)
	require.Len(t, containers[0].Ports, 1)
	assert.Equal(t, "11434:80/tcp", containers[0].Ports[0])
}

func TestClose(t *testing.T) {
	mock := NewMockDockerAPI()
	client := NewClientWithAPI(mock)

	require.NoError(t, client.Close())
	assert.Equal(t, 1, mock.CloseCalls)
}
