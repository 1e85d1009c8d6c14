package storage

import (
	"os"
	"path/filepath"
)

// DataDir resolves the directory holding the collection files. A configured
// preferred directory (typically a network share) is attempted first; if it
// cannot be created the local user config directory is used instead, so the
// app keeps working offline.
func DataDir(preferred string) (string, error) {
	if preferred != "" {
		if err := os.MkdirAll(preferred, 0755); err == nil {
			return preferred, nil
		}
	}
	return localDataDir()
}

// localDataDir returns the per-user app directory, creating it if needed.
// Uses os.UserConfigDir() for cross-platform XDG-compliant placement.
func localDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return appDir, nil
}

// ProjectsPath returns the projects collection path under dir.
func ProjectsPath(dir string) string {
	return filepath.Join(dir, ProjectsFile)
}

// TemplatesPath returns the templates collection path under dir.
func TemplatesPath(dir string) string {
	return filepath.Join(dir, TemplatesFile)
}
