package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cameronsjo/stevedore/internal/config"
	"github.com/cameronsjo/stevedore/internal/docker"
	"github.com/cameronsjo/stevedore/internal/fleet"
	"github.com/cameronsjo/stevedore/internal/ui"
)

// statusCmd represents the status command.
var statusCmd = &cobra.Command{
	Use:     "status",
	Aliases: []string{"manifest"},
	Short:   "Show which units and networks are on the dock",
	Long: `Status probes every unit and network in the fleet and shows what a
deploy run would find: units already on the dock are marked present,
missing units are what deploy would load, missing networks mark their
group as blocked.`,
	Run: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) {
	cfg, err := config.Load()
	if err != nil {
		ui.Fatal("%v", err)
	}

	f, err := fleet.Load(cfg.FleetFile)
	if err != nil {
		ui.Fatal("Load fleet: %v", err)
	}

	err = withDockerClient(func(ctx context.Context, client *docker.Client) error {
		for _, group := range f.Groups {
			if !group.Enabled {
				ui.Yellow.Printf("%s (disabled)\n", group.Name)
				continue
			}

			ui.Bold.Printf("%s\n", group.Name)

			for _, network := range group.Networks {
				exists, err := client.NetworkExists(ctx, network)
				if err != nil {
					return fmt.Errorf("probe network %s: %w", network, err)
				}
				if exists {
					ui.Green.Printf("  * network %s\n", network)
				} else {
					ui.Red.Printf("  x network %s missing (group blocked)\n", network)
				}
			}

			for _, unit := range group.Units {
				exists, err := client.ContainerExists(ctx, unit.Name)
				if err != nil {
					return fmt.Errorf("probe unit %s: %w", unit.Name, err)
				}
				if exists {
					ui.Green.Printf("  * %s present\n", unit.Name)
				} else {
					ui.Blue.Printf("  - %s absent (deploy would load it)\n", unit.Name)
				}
			}
		}
		return nil
	})
	if err != nil {
		ui.Fatal("%v", err)
	}
}
