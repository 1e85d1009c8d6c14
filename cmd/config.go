package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/rcastro/estimator/internal/config"
	"github.com/spf13/cobra"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display or manage configuration settings",
	Long: `Display the current effective configuration settings for estimator.

Shows the configuration file location, whether it exists, and all current
settings. The estimator works without any configuration file for local
save and PDF export; only Azure DevOps uploads require the organization
and project to be set.

The personal access token is never stored in the config file: it is read
from the ` + config.TokenEnvVar + ` environment variable (a local .env file
is honored).

Examples:
  estimator config         Show all current settings
  estimator config init    Create a commented sample config file
  estimator config path    Print the config file location`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showConfig()
	},
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a sample config file",
	Run: func(cmd *cobra.Command, args []string) {
		initConfig()
	},
}

// configPathCmd represents the config path command
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Run: func(cmd *cobra.Command, args []string) {
		printConfigPath()
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

// showConfig displays the current effective configuration
func showConfig() {
	configPath, err := config.GetConfigPath()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to determine config file location")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	fileExists := false
	if _, err := os.Stat(configPath); err == nil {
		fileExists = true
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to load configuration")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check that your config file is valid TOML format: %s\n", configPath)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, "Configuration for estimator")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 60))
	_, _ = fmt.Fprintf(deps.Stdout, "Config file:   %s\n", configPath)
	if fileExists {
		_, _ = fmt.Fprintln(deps.Stdout, "Status:        File exists (using custom configuration)")
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "Status:        No config file (using defaults)")
	}
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 60))

	display := func(label, value string) {
		if value == "" {
			value = "(not set)"
		}
		_, _ = fmt.Fprintf(deps.Stdout, "%-14s %s\n", label+":", value)
	}
	display("Organization", cfg.Organization)
	display("Project", cfg.Project)
	display("Data dir", cfg.DataDir)
	display("Area team", cfg.AreaTeam)

	if config.AccessToken() != "" {
		_, _ = fmt.Fprintf(deps.Stdout, "%-14s set via %s\n", "Token:", config.TokenEnvVar)
	} else {
		_, _ = fmt.Fprintf(deps.Stdout, "%-14s (not set, uploads will fail)\n", "Token:")
	}
}

// initConfig writes a sample config file if none exists
func initConfig() {
	configPath, err := config.GetConfigPath()
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to determine config file location: %v\n", err)
		deps.Exit(1)
		return
	}

	if _, err := os.Stat(configPath); err == nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Config file already exists at %s\n", configPath)
		deps.Exit(1)
		return
	}

	if err := os.WriteFile(configPath, []byte(config.GenerateSampleConfig()), 0644); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to write config file")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Sample config written to %s\n", configPath)
}

// printConfigPath prints the resolved config file path
func printConfigPath() {
	configPath, err := config.GetConfigPath()
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to determine config file location: %v\n", err)
		deps.Exit(1)
		return
	}
	_, _ = fmt.Fprintln(deps.Stdout, configPath)
}
