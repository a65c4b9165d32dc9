package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/cameronsjo/stevedore/internal/ui"
)

// initCmd represents the init command.
var initCmd = &cobra.Command{
	Use:   "init [directory]",
	Short: "Lay out a new fleet project",
	Long: `Initialize a new stevedore project with the required directory
structure and starter files.

This creates:
  - fleet.yml          Fleet definition (groups and units)
  - templates/         Unit compose templates
  - vars/defaults.yml  Default variables
  - .gitignore         Git ignore file
  - README.md          Project documentation

If no directory is specified, the current directory is used.

Use --yes to skip all interactive prompts (useful for non-TTY environments).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

var initYes bool

func runInit(cmd *cobra.Command, args []string) error {
	targetDir := "."
	if len(args) > 0 {
		targetDir = args[0]
	}

	absDir, err := filepath.Abs(targetDir)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}
	targetDir = absDir

	ui.Anchor("Laying out the dock...")
	fmt.Println()

	// Check if already initialized
	fleetFile := filepath.Join(targetDir, "fleet.yml")
	if _, err := os.Stat(fleetFile); err == nil {
		ui.Warning("This directory already has a fleet.yml.")
		if !initYes {
			response, err := promptYesNo("Reinitialize? This won't overwrite existing files.")
			if err != nil {
				return err
			}
			if !response {
				fmt.Println("Aborted.")
				return nil
			}
		}
	}

	ui.Info("Creating project structure...")
	dirs := []string{
		filepath.Join(targetDir, "templates"),
		filepath.Join(targetDir, "vars"),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	ui.Success("Created directories")

	ui.Info("Creating starter files...")

	if err := createFileIfNotExists(fleetFile, starterFleetYML); err != nil {
		return fmt.Errorf("create fleet.yml: %w", err)
	}

	exampleTemplate := filepath.Join(targetDir, "templates", "whoami.tmpl")
	if err := createFileIfNotExists(exampleTemplate, starterTemplate); err != nil {
		return fmt.Errorf("create example template: %w", err)
	}

	varsFile := filepath.Join(targetDir, "vars", "defaults.yml")
	if err := createFileIfNotExists(varsFile, starterVarsYML); err != nil {
		return fmt.Errorf("create vars/defaults.yml: %w", err)
	}

	gitignoreFile := filepath.Join(targetDir, ".gitignore")
	if err := createFileIfNotExists(gitignoreFile, starterGitignore); err != nil {
		return fmt.Errorf("create .gitignore: %w", err)
	}

	readmeFile := filepath.Join(targetDir, "README.md")
	if err := createFileIfNotExists(readmeFile, starterReadme); err != nil {
		return fmt.Errorf("create README.md: %w", err)
	}

	// Summary
	fmt.Println()
	ui.Anchor("Dock laid out! Here's your checklist:")
	fmt.Println()
	fmt.Println("  1. Edit fleet.yml with your groups and units")
	fmt.Println("  2. Add a .tmpl compose template per unit under templates/")
	fmt.Println("  3. Put shared variables in vars/defaults.yml")
	fmt.Println("  4. Run 'stevedore doctor' to verify your setup")
	fmt.Println("  5. Run 'stevedore deploy' to load the fleet")
	fmt.Println()
	ui.Info("Run 'stevedore --help' for all commands.")

	return nil
}

// isTerminal checks if stdin is a TTY.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// promptYesNo asks the user a yes/no question.
// Returns error if stdin is not a TTY and cannot read input.
func promptYesNo(question string) (bool, error) {
	if !isTerminal() {
		return false, fmt.Errorf("cannot prompt for input: stdin is not a TTY. Use --yes flag to skip interactive prompts")
	}

	fmt.Printf("%s [y/N] ", question)

	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("read user input: %w", err)
	}

	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}

// createFileIfNotExists creates a file with the given content if it doesn't exist.
func createFileIfNotExists(filename, content string) error {
	if _, err := os.Stat(filename); err == nil {
		ui.Warning("%s already exists, skipping", filepath.Base(filename))
		return nil
	}

	if err := os.WriteFile(filename, []byte(content), 0644); err != nil {
		return err
	}

	ui.Success("Created %s", filepath.Base(filename))
	return nil
}

// Starter file templates

const starterFleetYML = `apiVersion: stevedore.io/v1
kind: Fleet

groups:
  - name: web
    enabled: true
    networks:
      - proxy
    units:
      - name: whoami
        template: whoami
        vars:
          - domain
          - tz
`

const starterTemplate = `services:
  whoami:
    image: traefik/whoami:latest
    container_name: whoami
    restart: unless-stopped
    environment:
      TZ: {{ .tz }}
    labels:
      traefik.enable: "true"
      traefik.http.routers.whoami.rule: Host(` + "`whoami.{{ .domain }}`" + `)
    networks:
      - proxy

networks:
  proxy:
    external: true
`

const starterVarsYML = `# Default variables, the lowest-precedence layer.
# Override per run with STEVEDORE_* environment variables or --set.
domain: example.com
tz: America/Chicago
`

const starterGitignore = `# Secrets (encrypted files are OK)
vars/*.yml
!vars/defaults.yml
!vars/*.sops.yml

# Rendered output and run state
stevedore/

# OS
.DS_Store
Thumbs.db

# IDE
.idea/
.vscode/
`

const starterReadme = `# My Fleet

Managed by [stevedore](https://github.com/cameronsjo/stevedore) -
declarative fleet loading for a Docker host.

## Quick Start

` + "```bash" + `
# Check the dock
stevedore doctor

# Preview what would be loaded
stevedore render

# Load everything missing
stevedore deploy
` + "```" + `

## Structure

` + "```" + `
├── fleet.yml        # Groups and units
├── templates/       # One .tmpl compose template per unit
├── vars/            # defaults.yml and optional secrets.sops.yml
└── stevedore/       # Rendered output, debug artifacts, locks
` + "```" + `
`

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVarP(&initYes, "yes", "y", false, "Skip all interactive prompts (assume yes for all questions)")
}
