package commands

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/meridianbio/labdoc/docgen"
)

var (
	generateTemplates string
	generateOutput    string
	generateManifest  string
	generateWatch     bool
)

// GenerateCmd renders the API reference.
var GenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render the resource API reference",
	Long: `Render the Markdown API reference for all registered resource types.

Walks the ServiceResource and LabwareResource hierarchies, feeds both
sequences into the api_reference.md.tmpl template, and writes the result
to <output>/api_reference.md, fully replacing prior output.

Examples:
  labdoc generate                          # Configured defaults
  labdoc generate --output ./site/docs     # Override output directory
  labdoc generate --manifest extra.yaml    # Include site-specific types
  labdoc generate --watch                  # Re-render on template changes`,
	RunE: runGenerate,
}

func init() {
	GenerateCmd.Flags().StringVarP(&generateTemplates, "templates", "t", "", "Template directory (default: ./templates)")
	GenerateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Output directory (default: ./docs/labdoc)")
	GenerateCmd.Flags().StringVarP(&generateManifest, "manifest", "m", "", "YAML manifest of extra resource types")
	GenerateCmd.Flags().BoolVarP(&generateWatch, "watch", "w", false, "Keep running and regenerate on template/manifest changes")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	setup, err := newGenerationSetup(generateTemplates, generateOutput, generateManifest)
	if err != nil {
		return err
	}

	g, err := setup.newGenerator()
	if err != nil {
		return err
	}

	data, err := g.Generate()
	if err != nil {
		return err
	}

	pterm.Printf("✓ Generated %s (%s service, %s labware)\n",
		pterm.Green(g.OutputPath()),
		pterm.LightCyan(fmt.Sprintf("%d", len(data.ServiceResources))),
		pterm.LightCyan(fmt.Sprintf("%d", len(data.LabwareResources))))

	if !generateWatch {
		return nil
	}

	// The callback rebuilds the registry so manifest edits are re-read,
	// not just re-rendered from the state at startup.
	watcher, err := docgen.NewWatcher(setup.regenerate, setup.templateDir, setup.manifestPath)
	if err != nil {
		return err
	}
	defer watcher.Stop()
	watcher.Start()

	pterm.Info.Println("Watching for changes, Ctrl-C to stop")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	return nil
}
