package cmd

import (
	"fmt"
	"strings"

	"github.com/rcastro/estimator/internal/estimate"
	"github.com/rcastro/estimator/internal/storage"
	"github.com/spf13/cobra"
)

var (
	templateDescFlag  string
	templateHoursFlag string
)

// templateCmd represents the template parent command
var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Manage reusable step templates",
	Long: `Manage reusable step templates.

A template is a named step pattern (name, description, hours) that can be
inserted into a project's step list from the interactive editor. Template
names are case-insensitive: adding a template whose name matches an
existing one updates it in place.

Examples:
  estimator template list
  estimator template add "Code Review" --hours 2 --description "Peer review"
  estimator template remove "Code Review"`,
}

// templateListCmd represents the template list command
var templateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored step templates",
	Run: func(cmd *cobra.Command, args []string) {
		listTemplates()
	},
}

// templateAddCmd represents the template add command
var templateAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add or update a step template",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		addTemplate(args[0])
	},
}

// templateRemoveCmd represents the template remove command
var templateRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a step template",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		removeTemplate(args[0])
	},
}

func init() {
	templateAddCmd.Flags().StringVar(&templateDescFlag, "description", "", "template description")
	templateAddCmd.Flags().StringVar(&templateHoursFlag, "hours", "0", "default hours for the step")

	templateCmd.AddCommand(templateListCmd)
	templateCmd.AddCommand(templateAddCmd)
	templateCmd.AddCommand(templateRemoveCmd)
	rootCmd.AddCommand(templateCmd)
}

// listTemplates prints the stored templates
func listTemplates() {
	services := getServices()
	if services == nil {
		return
	}

	templates := services.Template.List()
	if len(templates) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No templates found")
		_, _ = fmt.Fprintln(deps.Stdout, "Hint: Add one with 'estimator template add <name> --hours <n>'")
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, "Stored templates:")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 60))
	for _, tpl := range templates {
		desc := tpl.Description
		if desc == "" {
			desc = "-"
		}
		_, _ = fmt.Fprintf(deps.Stdout, "%-25s %6sh  %s\n", tpl.Name, tpl.Hours, desc)
	}
}

// addTemplate upserts a template from the command flags
func addTemplate(name string) {
	services := getServices()
	if services == nil {
		return
	}

	tpl := estimate.Template{
		Name:        name,
		Description: templateDescFlag,
		Hours:       templateHoursFlag,
	}
	if err := services.Template.Save(tpl); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to save template")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Template %q saved\n", name)
}

// removeTemplate deletes a template by name
func removeTemplate(name string) {
	services := getServices()
	if services == nil {
		return
	}

	if err := services.Template.Delete(name); err != nil {
		if err == storage.ErrNotFound {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: No template named %q\n", name)
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: List templates with 'estimator template list'")
		} else {
			_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to remove template")
			_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		}
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Template %q removed\n", name)
}
