package service

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/rcastro/estimator/internal/estimate"
	"github.com/rcastro/estimator/internal/storage"
)

// ProjectService provides operations for managing project estimates
type ProjectService struct {
	repo *storage.ProjectRepository
	now  func() time.Time
}

// NewProjectService creates a new ProjectService
func NewProjectService(repo *storage.ProjectRepository) *ProjectService {
	return &ProjectService{repo: repo, now: time.Now}
}

// List returns all stored projects.
func (s *ProjectService) List() []estimate.Project {
	return s.repo.List()
}

// Get returns the project with the given name.
func (s *ProjectService) Get(name string) (estimate.Project, error) {
	return s.repo.Get(name)
}

// Save validates, normalizes, and upserts the project. The save date is set
// to today and the total is recomputed from the steps; a stored total is
// never trusted.
func (s *ProjectService) Save(project estimate.Project) (estimate.Project, error) {
	if err := project.Validate(); err != nil {
		return estimate.Project{}, err
	}

	project.Normalize()
	project.Date = s.now().Format("2006-01-02")

	if err := s.repo.Upsert(project); err != nil {
		return estimate.Project{}, fmt.Errorf("save project %q: %w", project.Name, err)
	}
	return project, nil
}

// Delete removes the named project from the collection.
func (s *ProjectService) Delete(name string) error {
	return s.repo.Delete(name)
}

// ExportJSON returns the named project as indented JSON with its total
// recomputed, suitable for external tooling.
func (s *ProjectService) ExportJSON(name string) ([]byte, error) {
	project, err := s.repo.Get(name)
	if err != nil {
		return nil, err
	}
	project.Normalize()

	data, err := json.MarshalIndent(project, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("encode project %q: %w", name, err)
	}
	return data, nil
}
