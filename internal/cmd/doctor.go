package cmd

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/cameronsjo/stevedore/internal/config"
	"github.com/cameronsjo/stevedore/internal/docker"
	"github.com/cameronsjo/stevedore/internal/fleet"
	"github.com/cameronsjo/stevedore/internal/preflight"
	"github.com/cameronsjo/stevedore/internal/ui"
)

const dockerPingTimeout = 5 * time.Second

// doctorCmd runs pre-flight checks.
var doctorCmd = &cobra.Command{
	Use:     "doctor",
	Aliases: []string{"checkup"},
	Short:   "Pre-flight checks - is the dock ready?",
	Long:    "Run diagnostic checks for Docker, SOPS, the fleet file, and other dependencies.",
	Run:     runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) {
	ui.Blue.Println("Running pre-flight checks...")
	fmt.Println()

	passed := 0
	failed := 0
	warned := 0

	// Check: required and optional binaries
	warnings, errors := preflight.CheckAll()
	for _, msg := range errors {
		ui.Red.Printf("  x %s\n", msg)
		failed++
	}
	for _, msg := range warnings {
		ui.Yellow.Printf("  ! %s\n", msg)
		warned++
	}
	if len(errors) == 0 {
		ui.Green.Println("  * Required binaries found")
		passed++
	}

	// Check: Docker daemon reachable (with timeout)
	ctx, cancel := context.WithTimeout(context.Background(), dockerPingTimeout)
	client, err := docker.NewClient()
	if err == nil {
		if err := client.Ping(ctx); err == nil {
			ui.Green.Println("  * Docker daemon is running")
			passed++
		} else {
			ui.Red.Println("  x Docker daemon is not responding")
			failed++
		}
		client.Close()
	} else {
		ui.Red.Println("  x Docker daemon is not reachable")
		failed++
	}
	cancel()

	// Check: Docker Compose v2
	composeCmd := exec.Command("docker", "compose", "version", "--short")
	if output, err := composeCmd.Output(); err == nil {
		composeVersion := strings.TrimSpace(string(output))
		ui.Green.Printf("  * Docker Compose v2 (%s)\n", composeVersion)
		passed++
	} else {
		ui.Red.Println("  x Docker Compose v2 not found")
		failed++
	}

	// Check: project root and fleet file validity
	cfg, err := config.Load()
	if err == nil {
		ui.Green.Printf("  * Project root found: %s\n", cfg.Root)
		passed++

		if _, err := fleet.Load(cfg.FleetFile); err == nil {
			ui.Green.Println("  * fleet.yml is valid")
			passed++
		} else {
			ui.Red.Printf("  x fleet.yml: %v\n", err)
			failed++
		}

		if _, err := os.Stat(cfg.TemplatesDir); err == nil {
			ui.Green.Println("  * templates/ directory found")
			passed++
		} else {
			ui.Yellow.Println("  ! templates/ directory not found")
			warned++
		}
	} else {
		ui.Yellow.Println("  ! Project root not found (run from a fleet directory)")
		warned++
	}

	// Check: age key for sops secrets
	ageKeyFile := os.Getenv("SOPS_AGE_KEY_FILE")
	if ageKeyFile == "" {
		home, _ := os.UserHomeDir()
		ageKeyFile = filepath.Join(home, ".config", "sops", "age", "keys.txt")
	}
	if _, err := os.Stat(ageKeyFile); err == nil {
		ui.Green.Printf("  * Age key found: %s\n", ageKeyFile)
		passed++
	} else {
		ui.Yellow.Printf("  ! Age key not found at %s (only needed for secrets)\n", ageKeyFile)
		warned++
	}

	// Summary
	fmt.Println()
	if failed > 0 {
		ui.Error("%d passed, %d warnings, %d failed", passed, warned, failed)
		os.Exit(1)
	}
	ui.Success("%d passed, %d warnings", passed, warned)
}
