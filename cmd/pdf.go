package cmd

import (
	"fmt"
	"strings"

	"github.com/rcastro/estimator/internal/storage"
	"github.com/spf13/cobra"
)

var pdfOutputFlag string

// pdfCmd represents the pdf command
var pdfCmd = &cobra.Command{
	Use:   "pdf <name>",
	Short: "Render a project estimate as a PDF document",
	Long: `Render a stored project estimate as a PDF document.

The document contains the project metadata, the full step breakdown table,
and the total estimated hours recomputed from the steps.

Examples:
  estimator pdf Portal                     Write Portal_estimate.pdf
  estimator pdf Portal -o /tmp/portal.pdf  Write to a specific path`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		renderPDF(args[0])
	},
}

func init() {
	pdfCmd.Flags().StringVarP(&pdfOutputFlag, "output", "o", "", "output file path (default <name>_estimate.pdf)")
	rootCmd.AddCommand(pdfCmd)
}

// renderPDF renders the named project to a PDF file
func renderPDF(name string) {
	services := getServices()
	if services == nil {
		return
	}

	dest := pdfOutputFlag
	if dest == "" {
		dest = strings.ReplaceAll(name, " ", "_") + "_estimate.pdf"
	}

	path, err := services.Render.Render(name, dest)
	if err != nil {
		if err == storage.ErrNotFound {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: No project named %q\n", name)
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: List projects with 'estimator'")
		} else {
			_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to generate PDF")
			_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check that the destination directory exists and is writable")
		}
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "PDF generated: %s\n", path)
}
