package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rcastro/estimator/internal/config"
	"github.com/rcastro/estimator/internal/devops"
	"github.com/rcastro/estimator/internal/estimate"
)

// ErrMissingToken is returned when no personal access token is configured.
// The check happens before any remote call is attempted.
var ErrMissingToken = errors.New("no personal access token set (export " + config.TokenEnvVar + " or add it to .env)")

// UploadService pushes project estimates into Azure DevOps
type UploadService struct {
	projects *ProjectService
	cfg      config.Config
	token    func() string
	baseURL  string
}

// NewUploadService creates a new UploadService. token is called at upload
// time so a PAT exported after startup is still picked up.
func NewUploadService(projects *ProjectService, cfg config.Config, token func() string) *UploadService {
	return &UploadService{projects: projects, cfg: cfg, token: token}
}

// SetBaseURL overrides the remote endpoint root. Used by tests.
func (s *UploadService) SetBaseURL(baseURL string) {
	s.baseURL = baseURL
}

// Upload pushes the named stored project to Azure DevOps as an
// Epic/Feature/User Story/Task hierarchy.
func (s *UploadService) Upload(ctx context.Context, name string) (*devops.UploadResult, error) {
	project, err := s.projects.Get(name)
	if err != nil {
		return nil, err
	}
	return s.UploadProject(ctx, project)
}

// UploadProject pushes an in-memory project to Azure DevOps. Configuration
// and credential problems fail before the first remote call.
func (s *UploadService) UploadProject(ctx context.Context, project estimate.Project) (*devops.UploadResult, error) {
	if err := project.Validate(); err != nil {
		return nil, err
	}
	if err := s.cfg.ValidateForUpload(); err != nil {
		return nil, err
	}
	pat := s.token()
	if pat == "" {
		return nil, ErrMissingToken
	}

	project.Normalize()

	client := devops.NewClient(s.cfg.Organization, s.cfg.Project, pat)
	client.SetAreaTeam(s.cfg.AreaTeam)
	if s.baseURL != "" {
		client.SetBaseURL(s.baseURL)
	}

	result, err := client.Upload(ctx, project)
	if err != nil {
		return nil, fmt.Errorf("upload project %q: %w", project.Name, err)
	}
	return result, nil
}
