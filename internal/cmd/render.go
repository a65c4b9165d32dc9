package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cameronsjo/stevedore/internal/config"
	"github.com/cameronsjo/stevedore/internal/fileutil"
	"github.com/cameronsjo/stevedore/internal/fleet"
	"github.com/cameronsjo/stevedore/internal/render"
	"github.com/cameronsjo/stevedore/internal/ui"
	"github.com/cameronsjo/stevedore/internal/vars"
)

var (
	renderOutput string
	renderSet    []string
)

// renderCmd represents the render command.
var renderCmd = &cobra.Command{
	Use:     "render [unit...]",
	Aliases: []string{"tally"},
	Short:   "Preview rendered artifacts without touching Docker",
	Long: `Render resolves variables and renders unit templates exactly as a
deploy run would, but never connects to Docker and never loads anything.
Use it to inspect what a deploy would apply.

If no units are named, every unit in every enabled group is rendered.

Examples:
  stevedore render                   # Preview everything to stdout
  stevedore render ollama            # Preview a single unit
  stevedore render -o /tmp/preview   # Write previews to a directory`,
	Run: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "Output directory (prints to stdout if not set)")
	renderCmd.Flags().StringArrayVar(&renderSet, "set", nil, "Override a variable (key=value, repeatable)")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) {
	cfg, err := config.Load()
	if err != nil {
		ui.Fatal("%v", err)
	}

	f, err := fleet.Load(cfg.FleetFile)
	if err != nil {
		ui.Fatal("Load fleet: %v", err)
	}

	sources, err := varSources(cfg, f.DeclaredKeys(), renderSet)
	if err != nil {
		ui.Fatal("%v", err)
	}

	varsCtx, err := vars.Resolve(sources, f.DeclaredKeys())
	if err != nil {
		ui.Fatal("Resolve variables: %v", err)
	}

	units := selectUnits(f, args)
	if len(units) == 0 {
		ui.Yellow.Println("No units to render")
		return
	}

	renderer := render.New(cfg.TemplatesDir)

	failures := 0
	for _, unit := range units {
		unitCtx := varsCtx
		if len(unit.Vars) > 0 {
			unitCtx, err = varsCtx.Sub(unit.Vars)
			if err != nil {
				ui.Error("%s: %v", unit.Name, err)
				failures++
				continue
			}
		}

		artifact, err := renderer.Render(unit.Template, unitCtx)
		if err != nil {
			ui.Error("%s: %v", unit.Name, err)
			failures++
			continue
		}

		if renderOutput == "" {
			ui.Blue.Printf("--- %s ---\n", unit.Name)
			os.Stdout.Write(artifact.Text)
			fmt.Println()
			continue
		}

		outPath := filepath.Join(renderOutput, unit.Name+".yml")
		if err := fileutil.WriteFileAtomic(outPath, artifact.Text, 0o644); err != nil {
			ui.Error("%s: %v", unit.Name, err)
			failures++
			continue
		}
		ui.Success("%s → %s", unit.Name, outPath)
	}

	if failures > 0 {
		ui.Red.Printf("\n✗ %d unit(s) failed to render\n", failures)
		os.Exit(1)
	}
}

// selectUnits returns the units to render: the named ones, or every unit
// in every enabled group when no names are given.
func selectUnits(f *fleet.Fleet, names []string) []fleet.ManagedUnit {
	if len(names) == 0 {
		var units []fleet.ManagedUnit
		for _, group := range f.EnabledGroups() {
			units = append(units, group.Units...)
		}
		return units
	}

	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		wanted[name] = true
	}

	var units []fleet.ManagedUnit
	for _, group := range f.Groups {
		for _, unit := range group.Units {
			if wanted[unit.Name] {
				units = append(units, unit)
			}
		}
	}
	return units
}
