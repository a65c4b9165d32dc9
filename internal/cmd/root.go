// Package cmd provides the CLI commands for stevedore.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cameronsjo/stevedore/internal/ui"
)

const version = "0.1.0"

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "stevedore",
	Short: "Load your fleet onto the dock - declarative Docker deployments",
	Long: `stevedore - declarative fleet loading

A dock-worker-themed toolkit that loads a declarative fleet of
containerized service groups onto a Docker host. Anything already on
the dock stays untouched; anything missing gets rendered and loaded.

SETUP
  init                  Lay out a new fleet project (fleet.yml, templates/)

CARGO COMMANDS
  deploy                Load the fleet - create every missing unit
    --debug             Persist rendered artifacts for inspection
    --set key=value     Override a variable for this run
    --enable <group>    Force a group on for this run
    --disable <group>   Force a group off for this run
  render [unit...]      Preview rendered artifacts without touching Docker
    --output, -o <dir>  Write previews to a directory instead of stdout

DOCKSIDE
  status                Show which units and networks are on the dock
  doctor                Pre-flight checks - is the dock ready?
  update                Update stevedore to the latest release`,
	Version: version,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// heaveCmd is the hidden easter egg command.
var heaveCmd = &cobra.Command{
	Use:    "heave",
	Hidden: true,
	Short:  "Dock slang",
	Run: func(cmd *cobra.Command, args []string) {
		ui.Yellow.Println("🏗 Heave ho! Ye found the dock slang!")
		fmt.Println("")
		fmt.Println("Command aliases for true dockhands:")
		fmt.Println("  deploy   → load")
		fmt.Println("  render   → tally")
		fmt.Println("  status   → manifest")
		fmt.Println("  doctor   → checkup")
		fmt.Println("")
		ui.Blue.Println("Run 'stevedore --help' for all commands.")
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(heaveCmd)

	rootCmd.SetVersionTemplate("stevedore version {{.Version}}\n")
}
