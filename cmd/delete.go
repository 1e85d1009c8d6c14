package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/rcastro/estimator/internal/storage"
	"github.com/spf13/cobra"
)

var yesFlag bool

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a stored project",
	Long: `Delete a stored project by name.
A confirmation prompt will be shown unless --yes is specified.

Example:
  estimator delete Portal
  estimator delete Portal --yes`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		deleteProject(args[0])
	},
}

func init() {
	deleteCmd.Flags().BoolVarP(&yesFlag, "yes", "y", false, "skip confirmation prompt")
	rootCmd.AddCommand(deleteCmd)
}

// deleteProject removes the named project after confirmation
func deleteProject(name string) {
	services := getServices()
	if services == nil {
		return
	}

	if _, err := services.Project.Get(name); err != nil {
		if err == storage.ErrNotFound {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: No project named %q\n", name)
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: List projects with 'estimator'")
		} else {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to load project: %v\n", err)
		}
		deps.Exit(1)
		return
	}

	if !yesFlag {
		_, _ = fmt.Fprintf(deps.Stdout, "Delete project %q? [y/N]: ", name)
		scanner := bufio.NewScanner(deps.Stdin)
		if !scanner.Scan() || !strings.EqualFold(strings.TrimSpace(scanner.Text()), "y") {
			_, _ = fmt.Fprintln(deps.Stdout, "Cancelled")
			return
		}
	}

	if err := services.Project.Delete(name); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to delete project")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Deleted project %q\n", name)
}
