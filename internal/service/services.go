// Package service provides the business logic layer for the estimator.
// It wraps the storage, pdf, and devops packages behind a clean API used
// by both the CLI commands and the TUI.
package service

import (
	"github.com/rcastro/estimator/internal/config"
	"github.com/rcastro/estimator/internal/storage"
)

// Services holds all service instances used by the application
type Services struct {
	Project  *ProjectService
	Template *TemplateService
	Render   *RenderService
	Upload   *UploadService
}

// NewServices creates a new Services instance with default paths and config
func NewServices() (*Services, error) {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return nil, err
	}
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, err
	}

	dataDir, err := storage.DataDir(cfg.DataDir)
	if err != nil {
		return nil, err
	}

	return NewServicesWithPaths(
		storage.ProjectsPath(dataDir),
		storage.TemplatesPath(dataDir),
		cfg,
	)
}

// NewServicesWithPaths creates a Services instance with custom collection
// paths (useful for testing)
func NewServicesWithPaths(projectsPath, templatesPath string, cfg config.Config) (*Services, error) {
	projects, err := storage.NewProjectRepository(projectsPath)
	if err != nil {
		return nil, err
	}
	templates, err := storage.NewTemplateRepository(templatesPath)
	if err != nil {
		return nil, err
	}

	projectService := NewProjectService(projects)

	return &Services{
		Project:  projectService,
		Template: NewTemplateService(templates),
		Render:   NewRenderService(projectService),
		Upload:   NewUploadService(projectService, cfg, config.AccessToken),
	}, nil
}
