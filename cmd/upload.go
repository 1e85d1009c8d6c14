package cmd

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/rcastro/estimator/internal/config"
	"github.com/rcastro/estimator/internal/devops"
	"github.com/rcastro/estimator/internal/service"
	"github.com/rcastro/estimator/internal/storage"
	"github.com/spf13/cobra"
)

// uploadCmd represents the upload command
var uploadCmd = &cobra.Command{
	Use:   "upload <name>",
	Short: "Create the project's work item hierarchy in Azure DevOps",
	Long: `Upload a stored project to Azure DevOps as a linked work item hierarchy.

An Epic is created for the project, then every Feature step under it, then
every User Story step under its parent Feature, then every Task step under
its parent, carrying the step hours as the original estimate.

Items are created strictly in that order because each child links to its
parent's id. If a step's parent cannot be resolved the upload stops; items
already created remain in Azure DevOps.

Requires organization and project in the config file (estimator config) and
a personal access token in ` + config.TokenEnvVar + `.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		uploadProject(cmd.Context(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(uploadCmd)
}

// uploadProject pushes the named project to Azure DevOps and reports the
// created work item ids
func uploadProject(ctx context.Context, name string) {
	services := getServices()
	if services == nil {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}

	result, err := services.Upload.Upload(ctx, name)
	if err != nil {
		reportUploadError(name, err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Epic created: #%d\n", result.EpicID)

	// Stable id order for readable output
	names := make([]string, 0, len(result.Items))
	for itemName := range result.Items {
		names = append(names, itemName)
	}
	sort.Slice(names, func(i, j int) bool { return result.Items[names[i]] < result.Items[names[j]] })
	for _, itemName := range names {
		_, _ = fmt.Fprintf(deps.Stdout, "  #%d  %s\n", result.Items[itemName], itemName)
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Created %d work item(s) under the Epic\n", len(result.Items))
}

// reportUploadError prints an actionable message for each failure class
func reportUploadError(name string, err error) {
	var verr *devops.ValidationError
	var rerr *devops.RemoteError

	switch {
	case err == storage.ErrNotFound:
		_, _ = fmt.Fprintf(deps.Stderr, "Error: No project named %q\n", name)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: List projects with 'estimator'")
	case errors.Is(err, service.ErrMissingToken):
		_, _ = fmt.Fprintln(deps.Stderr, "Error: No personal access token configured")
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: export %s=<token> or add it to a .env file\n", config.TokenEnvVar)
	case errors.As(err, &verr):
		_, _ = fmt.Fprintf(deps.Stderr, "Error: %v\n", verr)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Every User Story needs a parent Feature and every Task a parent step")
		_, _ = fmt.Fprintln(deps.Stderr, "Note: Work items created before the failure remain in Azure DevOps")
	case errors.As(err, &rerr):
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Azure DevOps rejected the request (status %d)\n", rerr.StatusCode)
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %s\n", rerr.Body)
		_, _ = fmt.Fprintln(deps.Stderr, "Note: Work items created before the failure remain in Azure DevOps")
	default:
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Upload failed")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
	}
}
