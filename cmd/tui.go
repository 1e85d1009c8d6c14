package cmd

import (
	"fmt"

	"github.com/rcastro/estimator/internal/tui"
	"github.com/spf13/cobra"
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive estimate editor",
	Long: `Launch the interactive terminal editor for project estimates.

Views available:
  - Projects: Browse stored projects, open one for editing
  - Editor: Edit project fields and steps, with a live running total
  - Templates: Browse reusable step templates, insert one into the editor

Keyboard shortcuts:
  - Tab/Shift+Tab: Navigate between views
  - j/k or arrows: Navigate within lists
  - enter: Open/confirm
  - ctrl+s: Save the open project
  - ctrl+p: Generate the estimate PDF
  - ctrl+u: Upload to Azure DevOps
  - q: Quit`,
	Run: func(cmd *cobra.Command, args []string) {
		runTUI()
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

// runTUI initializes services and runs the interactive editor
func runTUI() {
	services := getServices()
	if services == nil {
		return
	}

	if err := tui.Run(services); err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error running TUI: %v\n", err)
		deps.Exit(1)
	}
}
