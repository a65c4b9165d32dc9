package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/cameronsjo/stevedore/internal/config"
	"github.com/cameronsjo/stevedore/internal/deploy"
	"github.com/cameronsjo/stevedore/internal/docker"
	"github.com/cameronsjo/stevedore/internal/lock"
	"github.com/cameronsjo/stevedore/internal/render"
	"github.com/cameronsjo/stevedore/internal/ui"
	"github.com/cameronsjo/stevedore/internal/vars"
)

var (
	deployDebug   bool
	deploySet     []string
	deployEnable  []string
	deployDisable []string
)

// deployCmd represents the deploy command.
var deployCmd = &cobra.Command{
	Use:     "deploy",
	Aliases: []string{"load"},
	Short:   "Load the fleet - create every missing unit",
	Long: `Deploy walks every enabled group in fleet.yml:

1. Acquire the run lock (prevent concurrent runs)
2. Resolve variables (defaults < secrets < environment < --set)
3. Check each group's required networks exist (skip the group if not)
4. Probe each unit; anything already on the dock is left untouched
5. Render and load every missing unit
6. Print the run report

Existing units are never re-rendered, restarted, or overwritten. A
failure in one group never stops the others.

Examples:
  stevedore deploy                       # Load everything enabled
  stevedore deploy --debug               # Keep rendered artifacts on disk
  stevedore deploy --set domain=lab.io   # Override a variable
  stevedore deploy --enable automation   # Force a group on for this run`,
	Run: runDeploy,
}

func init() {
	deployCmd.Flags().BoolVar(&deployDebug, "debug", false, "Persist rendered artifacts for inspection")
	deployCmd.Flags().StringArrayVar(&deploySet, "set", nil, "Override a variable (key=value, repeatable)")
	deployCmd.Flags().StringArrayVar(&deployEnable, "enable", nil, "Force a group on for this run (repeatable)")
	deployCmd.Flags().StringArrayVar(&deployDisable, "disable", nil, "Force a group off for this run (repeatable)")

	rootCmd.AddCommand(deployCmd)
}

func runDeploy(cmd *cobra.Command, args []string) {
	cfg, err := config.Load()
	if err != nil {
		ui.Fatal("%v", err)
	}

	f, err := loadFleet(cfg, deployEnable, deployDisable)
	if err != nil {
		ui.Fatal("Load fleet: %v", err)
	}

	sources, err := varSources(cfg, f.DeclaredKeys(), deploySet)
	if err != nil {
		ui.Fatal("%v", err)
	}

	varsCtx, err := vars.Resolve(sources, f.DeclaredKeys())
	if err != nil {
		ui.Fatal("Resolve variables: %v", err)
	}

	client, err := docker.NewClient()
	if err != nil {
		ui.Fatal("Connect to docker: %v", err)
	}
	defer client.Close()

	// Cancel the run on SIGINT/SIGTERM.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		ui.Warning("Received shutdown signal, cancelling...")
		cancel()
	}()

	executor := docker.NewExecutor(client, cfg.OutputDir())
	renderer := render.New(cfg.TemplatesDir)

	opts := []deploy.Option{}
	if deployDebug {
		opts = append(opts, deploy.WithDebug(cfg.DebugDir()))
	}
	coordinator := deploy.NewCoordinator(executor, renderer, opts...)

	var report *deploy.Report
	err = lock.WithLock(cfg.LocksDir(), "deploy", func() error {
		ui.Crane("Loading fleet %s", cfg.FleetFile)
		report = coordinator.Run(ctx, f, varsCtx)
		return nil
	})
	if err != nil {
		ui.Fatal("%v", err)
	}

	printReport(report)
	if report.Failed() {
		os.Exit(1)
	}
}

// printReport prints the run summary, one line per group and unit.
func printReport(report *deploy.Report) {
	fmt.Println()
	ui.Ledger("Run %s (%s)", report.RunID, report.Duration.Round(time.Millisecond))

	for _, group := range report.Groups {
		switch group.Status {
		case deploy.GroupDisabled:
			ui.Yellow.Printf("  - %s (disabled)\n", group.Name)
			continue
		case deploy.GroupSkippedPrecondition:
			ui.Red.Printf("  x %s: %v\n", group.Name, group.Err)
			continue
		}

		ui.Bold.Printf("  %s\n", group.Name)
		for _, unit := range group.Units {
			switch unit.State {
			case deploy.UnitApplied:
				ui.Green.Printf("    * %s loaded\n", unit.Name)
			case deploy.UnitSkipped:
				ui.Blue.Printf("    - %s already on the dock\n", unit.Name)
			default:
				ui.Red.Printf("    x %s: %v\n", unit.Name, unit.Err)
			}
		}
	}

	applied, skipped, failed := report.Counts()
	fmt.Println()
	if failed > 0 {
		ui.Error("%d loaded, %d skipped, %d failed", applied, skipped, failed)
	} else {
		ui.Success("%d loaded, %d skipped", applied, skipped)
	}
}
