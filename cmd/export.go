package cmd

import (
	"fmt"

	"github.com/rcastro/estimator/internal/storage"
	"github.com/spf13/cobra"
)

// exportCmd represents the export parent command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a project to machine-readable formats",
	Long: `Export a stored project for programmatic use, backup, or migration.

Available formats:
  json    Export the project record as JSON

Examples:
  estimator export json Portal                 Print the record
  estimator export json Portal > portal.json   Export to file`,
}

// exportJSONCmd represents the export json command
var exportJSONCmd = &cobra.Command{
	Use:   "json <name>",
	Short: "Export a project record as JSON",
	Long: `Export a stored project record as indented JSON.

The exported record carries the total recomputed from the steps, matching
exactly what the upload and PDF operations consume.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		exportJSON(args[0])
	},
}

func init() {
	exportCmd.AddCommand(exportJSONCmd)
	rootCmd.AddCommand(exportCmd)
}

// exportJSON prints the named project record as JSON
func exportJSON(name string) {
	services := getServices()
	if services == nil {
		return
	}

	data, err := services.Project.ExportJSON(name)
	if err != nil {
		if err == storage.ErrNotFound {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: No project named %q\n", name)
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: List projects with 'estimator'")
		} else {
			_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to export project")
			_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		}
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, string(data))
}
