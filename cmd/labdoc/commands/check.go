package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/meridianbio/labdoc/errors"
)

var (
	checkTemplates string
	checkOutput    string
	checkManifest  string
)

// CheckCmd verifies the generated reference is current.
var CheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check if the generated reference is up to date",
	Long: `Check if the generated API reference matches the registered hierarchy.

Re-renders the reference in memory and compares it byte-for-byte with the
file on disk, so CI can catch catalog changes that were committed without
regenerating the docs.

Exit codes:
  0 - Reference is up to date
  1 - Reference is missing or out of date`,
	RunE: runCheck,
}

func init() {
	CheckCmd.Flags().StringVarP(&checkTemplates, "templates", "t", "", "Template directory (default: ./templates)")
	CheckCmd.Flags().StringVarP(&checkOutput, "output", "o", "", "Output directory (default: ./docs/labdoc)")
	CheckCmd.Flags().StringVarP(&checkManifest, "manifest", "m", "", "YAML manifest of extra resource types")
}

func runCheck(cmd *cobra.Command, args []string) error {
	setup, err := newGenerationSetup(checkTemplates, checkOutput, checkManifest)
	if err != nil {
		return err
	}

	g, err := setup.newGenerator()
	if err != nil {
		return err
	}

	result, err := g.Check()
	if err != nil {
		return err
	}

	if result.UpToDate {
		pterm.Success.Println("Reference is up to date")
		return nil
	}

	pterm.Error.Printf("Reference is out of date: %s (%s)\n", result.Path, result.Reason)
	return errors.WithHint(errors.ErrOutOfDate, "run 'labdoc generate' to regenerate")
}
