package service

import (
	"github.com/rcastro/estimator/internal/estimate"
	"github.com/rcastro/estimator/internal/pdf"
)

// RenderService turns project estimates into PDF documents
type RenderService struct {
	projects *ProjectService
}

// NewRenderService creates a new RenderService
func NewRenderService(projects *ProjectService) *RenderService {
	return &RenderService{projects: projects}
}

// Render writes the estimate PDF for the named stored project and returns
// the absolute output path.
func (s *RenderService) Render(name, destPath string) (string, error) {
	project, err := s.projects.Get(name)
	if err != nil {
		return "", err
	}
	return s.RenderProject(project, destPath)
}

// RenderProject writes the estimate PDF for an in-memory project, e.g. the
// one currently open in the editor.
func (s *RenderService) RenderProject(project estimate.Project, destPath string) (string, error) {
	if err := project.Validate(); err != nil {
		return "", err
	}
	project.Normalize()
	return pdf.Render(project, destPath)
}
