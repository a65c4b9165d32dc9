package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/cameronsjo/stevedore/internal/config"
	"github.com/cameronsjo/stevedore/internal/docker"
	"github.com/cameronsjo/stevedore/internal/fleet"
	"github.com/cameronsjo/stevedore/internal/vars"
)

// withDockerClient executes a function with a Docker client, handling connection and cleanup.
func withDockerClient(fn func(ctx context.Context, client *docker.Client) error) error {
	client, err := docker.NewClient()
	if err != nil {
		return fmt.Errorf("connect to docker: %w", err)
	}
	defer client.Close()

	return fn(context.Background(), client)
}

// envPrefix is the prefix for variable overrides taken from the process
// environment, e.g. STEVEDORE_DOMAIN overrides the "domain" key.
const envPrefix = "STEVEDORE"

// varSources assembles the layered variable sources for a run, lowest
// precedence first: file defaults, sops secrets, environment overrides,
// then --set flags.
func varSources(cfg *config.Config, declaredKeys []string, setPairs []string) ([]vars.Source, error) {
	sources := []vars.Source{
		vars.NewFileSource(cfg.VarsFile),
	}

	if _, err := os.Stat(cfg.SecretsFile); err == nil {
		sources = append(sources, vars.NewSopsSource([]string{cfg.SecretsFile}))
	}

	sources = append(sources, vars.NewEnvSource(envPrefix, declaredKeys))

	if len(setPairs) > 0 {
		overrides, err := vars.ParseSet(setPairs)
		if err != nil {
			return nil, err
		}
		sources = append(sources, vars.NewStaticSource("--set", overrides))
	}

	return sources, nil
}

// groupToggles merges --enable and --disable flags into a toggle map.
// A group named in both is an error.
func groupToggles(enable, disable []string) (map[string]bool, error) {
	if len(enable) == 0 && len(disable) == 0 {
		return nil, nil
	}

	toggles := make(map[string]bool, len(enable)+len(disable))
	for _, name := range enable {
		toggles[name] = true
	}
	for _, name := range disable {
		if on, ok := toggles[name]; ok && on {
			return nil, fmt.Errorf("group %q is both enabled and disabled", name)
		}
		toggles[name] = false
	}
	return toggles, nil
}

// loadFleet reads and validates the fleet file, applying any CLI toggles.
func loadFleet(cfg *config.Config, enable, disable []string) (*fleet.Fleet, error) {
	f, err := fleet.Load(cfg.FleetFile)
	if err != nil {
		return nil, err
	}

	toggles, err := groupToggles(enable, disable)
	if err != nil {
		return nil, err
	}
	if toggles != nil {
		if err := f.ApplyToggles(toggles); err != nil {
			return nil, err
		}
	}
	return f, nil
}
