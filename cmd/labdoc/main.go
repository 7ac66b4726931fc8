package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/meridianbio/labdoc/cmd/labdoc/commands"
	"github.com/meridianbio/labdoc/config"
	"github.com/meridianbio/labdoc/logger"

	// Registers the built-in resource hierarchy.
	_ "github.com/meridianbio/labdoc/resource/catalog"
)

var rootCmd = &cobra.Command{
	Use:   "labdoc",
	Short: "labdoc - Lab resource API reference generator",
	Long: `labdoc - Generate the Markdown API reference for lab resource types.

labdoc walks the registered ServiceResource and LabwareResource hierarchies
and renders them through a template into docs/labdoc/api_reference.md.

Available commands:
  generate - Render the API reference (optionally watching for changes)
  check    - Verify the generated reference is up to date (CI)
  tree     - Print the discovered resource hierarchies
  version  - Show version information

Examples:
  labdoc generate              # Full generation with configured defaults
  labdoc generate --watch      # Regenerate on template/manifest changes
  labdoc check                 # Nonzero exit when docs drifted
  labdoc tree                  # Inspect what would be documented`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")

		jsonOutput := false
		if cfg, err := config.Load(); err == nil {
			jsonOutput = cfg.Log.JSON
		}

		if err := logger.Initialize(jsonOutput, verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")

	rootCmd.AddCommand(commands.GenerateCmd)
	rootCmd.AddCommand(commands.CheckCmd)
	rootCmd.AddCommand(commands.TreeCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
