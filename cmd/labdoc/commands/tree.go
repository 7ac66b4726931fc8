package commands

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/meridianbio/labdoc/resource"
)

var treeManifest string

// TreeCmd prints the discovered hierarchies.
var TreeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Print the discovered resource hierarchies",
	Long: `Print the ServiceResource and LabwareResource forests as indented trees.

Shows exactly what 'labdoc generate' would document, in documentation order.`,
	RunE: runTree,
}

func init() {
	TreeCmd.Flags().StringVarP(&treeManifest, "manifest", "m", "", "YAML manifest of extra resource types")
}

func runTree(cmd *cobra.Command, args []string) error {
	registry := resource.Default().Clone()
	if treeManifest != "" {
		if err := resource.ApplyManifest(registry, treeManifest); err != nil {
			return err
		}
	}

	for _, root := range []string{resource.RootService, resource.RootLabware} {
		pterm.Printf("%s\n", pterm.Bold.Sprint(root))
		printSubtree(registry, root, 1)
		pterm.Println()
	}
	return nil
}

// printSubtree prints the children of name, pre-order, one indent level
// per generation.
func printSubtree(r *resource.Registry, name string, depth int) {
	for _, child := range r.DirectChildren(name) {
		pterm.Printf("%s%s  %s\n",
			strings.Repeat("  ", depth),
			pterm.LightCyan(child.Name),
			pterm.Gray(child.Summary))
		printSubtree(r, child.Name, depth+1)
	}
}
