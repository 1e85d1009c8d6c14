package cmd

import (
	"fmt"
	"strings"

	"github.com/rcastro/estimator/internal/config"
	"github.com/rcastro/estimator/internal/estimate"
	"github.com/rcastro/estimator/internal/storage"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "estimator",
	Short: "Build and share hierarchical project estimates",
	Long: `estimator builds hierarchical project estimates (Feature / User Story /
Task steps with hour estimates), stores them locally, renders them as PDF
documents, and pushes them into Azure DevOps as linked work item hierarchies.

Usage:
  estimator                 List stored projects
  estimator show <name>     Show a project's step breakdown
  estimator tui             Open the interactive editor
  estimator pdf <name>      Render a project estimate as PDF
  estimator upload <name>   Create the Epic/Feature/User Story/Task tree in Azure DevOps
  estimator delete <name>   Remove a stored project
  estimator template        Manage reusable step templates

Remote uploads need an organization and project in the config file
(estimator config) and a personal access token in ` + config.TokenEnvVar + `.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		listProjects()
	},
}

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a project's step breakdown",
	Long:  `Show the full step breakdown and total estimated hours for a stored project.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		showProject(args[0])
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"estimator version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	config.LoadDotenv()
	return rootCmd.Execute()
}

// listProjects prints the stored projects with step counts and totals
func listProjects() {
	services := getServices()
	if services == nil {
		return
	}

	projects := services.Project.List()
	if len(projects) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No projects found")
		_, _ = fmt.Fprintln(deps.Stdout, "Hint: Create one with 'estimator tui'")
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, "Stored projects:")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 60))
	for _, p := range projects {
		date := p.Date
		if date == "" {
			date = "unsaved"
		}
		_, _ = fmt.Fprintf(deps.Stdout, "%-30s %3d steps  %8s  %s\n",
			p.Name, len(p.Steps), estimate.FormatHours(p.ComputeTotal()), date)
	}
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 60))
	_, _ = fmt.Fprintf(deps.Stdout, "%d project(s)\n", len(projects))
}

// showProject prints one project's metadata and step table
func showProject(name string) {
	services := getServices()
	if services == nil {
		return
	}

	p, err := services.Project.Get(name)
	if err != nil {
		if err == storage.ErrNotFound {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: No project named %q\n", name)
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: List projects with 'estimator'")
		} else {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to load project: %v\n", err)
		}
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Project:   %s\n", p.Name)
	if p.Demand != "" {
		_, _ = fmt.Fprintf(deps.Stdout, "Demand:    %s\n", p.Demand)
	}
	if p.Architect != "" {
		_, _ = fmt.Fprintf(deps.Stdout, "Architect: %s\n", p.Architect)
	}
	if p.Developer != "" {
		_, _ = fmt.Fprintf(deps.Stdout, "Developer: %s\n", p.Developer)
	}
	if p.Date != "" {
		_, _ = fmt.Fprintf(deps.Stdout, "Date:      %s\n", p.Date)
	}
	if p.Purpose != "" {
		_, _ = fmt.Fprintf(deps.Stdout, "Purpose:   %s\n", p.Purpose)
	}
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 60))

	if len(p.Steps) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No steps recorded")
	}
	for _, s := range p.Steps {
		parent := ""
		if s.Parent != "" {
			parent = " (parent: " + s.Parent + ")"
		}
		_, _ = fmt.Fprintf(deps.Stdout, "%-12s %-30s %8s%s\n",
			s.Type, s.Name, estimate.FormatHours(s.Hours), parent)
	}
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 60))
	_, _ = fmt.Fprintf(deps.Stdout, "Total: %s\n", estimate.FormatHours(p.ComputeTotal()))
}
