package service

import (
	"errors"
	"strings"

	"github.com/rcastro/estimator/internal/estimate"
	"github.com/rcastro/estimator/internal/storage"
)

// ErrMissingTemplateName is returned when a template has no name.
var ErrMissingTemplateName = errors.New("template name is required")

// TemplateService provides operations for managing reusable step templates
type TemplateService struct {
	repo *storage.TemplateRepository
}

// NewTemplateService creates a new TemplateService
func NewTemplateService(repo *storage.TemplateRepository) *TemplateService {
	return &TemplateService{repo: repo}
}

// List returns all stored templates.
func (s *TemplateService) List() []estimate.Template {
	return s.repo.List()
}

// Get returns the template matching name, ignoring case.
func (s *TemplateService) Get(name string) (estimate.Template, error) {
	return s.repo.Get(name)
}

// Save upserts the template. Name matching is case-insensitive: a match
// updates in place, no match appends.
func (s *TemplateService) Save(template estimate.Template) error {
	if strings.TrimSpace(template.Name) == "" {
		return ErrMissingTemplateName
	}
	return s.repo.Upsert(template)
}

// Delete removes the template matching name.
func (s *TemplateService) Delete(name string) error {
	return s.repo.Delete(name)
}

// Instantiate resolves the named template into a project step.
func (s *TemplateService) Instantiate(name string) (estimate.Step, error) {
	template, err := s.repo.Get(name)
	if err != nil {
		return estimate.Step{}, err
	}
	return template.Step(), nil
}
