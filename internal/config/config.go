// Package config loads the estimator configuration: a TOML file for the
// Azure DevOps organization/project and data directory, and the personal
// access token from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	// AppName is the application name used for the config directory
	AppName = "estimator"
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"
	// TokenEnvVar is the environment variable holding the personal access token
	TokenEnvVar = "AZURE_DEVOPS_PAT"
)

// Config represents the application configuration
type Config struct {
	// Organization is the Azure DevOps organization name
	Organization string `toml:"organization"`
	// Project is the Azure DevOps project name
	Project string `toml:"project"`
	// DataDir is the preferred data directory (e.g. a network share);
	// empty means the local per-user app directory
	DataDir string `toml:"data_dir"`
	// AreaTeam is the team segment appended to the area path on upload
	AreaTeam string `toml:"area_team"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Organization: "",
		Project:      "",
		DataDir:      "",
		AreaTeam:     "Digital Delivery Team",
	}
}

// GetConfigPath returns the path to the config file.
// Uses os.UserConfigDir() for cross-platform XDG-compliant config directory.
// Creates the config directory if it doesn't exist.
func GetConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, ConfigFile), nil
}

// LoadOrDefault loads the config file at path, returning defaults when the
// file does not exist. A file that exists but cannot be parsed is an error;
// missing keys keep their default values.
func LoadOrDefault(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.Normalize()
	return cfg, nil
}

// Normalize trims whitespace and restores empty defaults.
func (c *Config) Normalize() {
	c.Organization = strings.TrimSpace(c.Organization)
	c.Project = strings.TrimSpace(c.Project)
	c.DataDir = strings.TrimSpace(c.DataDir)
	c.AreaTeam = strings.TrimSpace(c.AreaTeam)
	if c.AreaTeam == "" {
		c.AreaTeam = DefaultConfig().AreaTeam
	}
}

// ValidateForUpload checks that the remote settings needed by the upload
// operation are present. Local save and PDF export never require them.
func (c Config) ValidateForUpload() error {
	if c.Organization == "" {
		return fmt.Errorf("organization is not configured (set it in %s)", ConfigFile)
	}
	if c.Project == "" {
		return fmt.Errorf("project is not configured (set it in %s)", ConfigFile)
	}
	return nil
}

// AccessToken returns the personal access token from the environment.
// LoadDotenv should have run first so a local .env file is honored.
func AccessToken() string {
	return os.Getenv(TokenEnvVar)
}

// LoadDotenv loads a .env file from the working directory if present.
// Absence is not an error; real environment variables always win.
func LoadDotenv() {
	_ = godotenv.Load()
}

// GenerateSampleConfig returns a commented sample config file.
func GenerateSampleConfig() string {
	return `# estimator configuration file

# Azure DevOps organization name (as in https://dev.azure.com/<organization>)
organization = ""

# Azure DevOps project name
project = ""

# Preferred data directory for the projects/templates collections.
# Leave empty to use the local per-user app directory. If this directory
# cannot be created (e.g. the network share is unreachable), the app falls
# back to the local directory.
data_dir = ""

# Team segment appended to the area path when uploading work items
area_team = "Digital Delivery Team"
`
}
