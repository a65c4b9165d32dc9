// Package docker is the sole point of contact with the container runtime.
//
// The Client type answers existence questions: whether a named network is
// present (preconditions) and whether a named container is present
// (idempotency probes). The Executor type applies rendered compose
// artifacts by writing them to the output directory and running
// docker compose up for the unit's project.
//
// # Interface Abstraction
//
// The DockerAPI interface abstracts the Docker SDK, enabling mock injection
// for testing. Use NewClientWithAPI for test scenarios.
//
// # Example
//
//	client, err := docker.NewClient()
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	ok, err := client.NetworkExists(ctx, "proxy")
package docker
