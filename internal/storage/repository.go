package storage

import (
	"errors"

	"github.com/rcastro/estimator/internal/estimate"
)

// ErrNotFound is returned when a record lookup by name finds nothing.
var ErrNotFound = errors.New("record not found")

// ProjectRepository is the projects specialization of the store. Project
// names are the upsert key: an exact match replaces in place, otherwise
// the record is appended.
type ProjectRepository struct {
	store *Store[estimate.Project]
}

// NewProjectRepository creates a project repository backed by the given file.
func NewProjectRepository(path string) (*ProjectRepository, error) {
	store, err := New[estimate.Project](path)
	if err != nil {
		return nil, err
	}
	return &ProjectRepository{store: store}, nil
}

// List returns all stored projects.
func (r *ProjectRepository) List() []estimate.Project {
	return r.store.Load()
}

// Get returns the project with the given name.
func (r *ProjectRepository) Get(name string) (estimate.Project, error) {
	for _, p := range r.store.Load() {
		if p.Name == name {
			return p, nil
		}
	}
	return estimate.Project{}, ErrNotFound
}

// SaveAll overwrites the whole collection.
func (r *ProjectRepository) SaveAll(projects []estimate.Project) error {
	return r.store.Save(projects)
}

// Upsert inserts or replaces a project keyed by exact name match.
func (r *ProjectRepository) Upsert(project estimate.Project) error {
	projects := r.store.Load()
	replaced := false
	for i, p := range projects {
		if p.Name == project.Name {
			projects[i] = project
			replaced = true
			break
		}
	}
	if !replaced {
		projects = append(projects, project)
	}
	return r.store.Save(projects)
}

// Delete removes the named project and rewrites the collection.
func (r *ProjectRepository) Delete(name string) error {
	projects := r.store.Load()
	for i, p := range projects {
		if p.Name == name {
			return r.store.Save(append(projects[:i], projects[i+1:]...))
		}
	}
	return ErrNotFound
}

// Path returns the file path backing this repository.
func (r *ProjectRepository) Path() string {
	return r.store.Path()
}

// TemplateRepository is the templates specialization of the store.
// Template names match case-insensitively for upsert and lookup.
type TemplateRepository struct {
	store *Store[estimate.Template]
}

// NewTemplateRepository creates a template repository backed by the given file.
func NewTemplateRepository(path string) (*TemplateRepository, error) {
	store, err := New[estimate.Template](path)
	if err != nil {
		return nil, err
	}
	return &TemplateRepository{store: store}, nil
}

// List returns all stored templates.
func (r *TemplateRepository) List() []estimate.Template {
	return r.store.Load()
}

// Get returns the template matching name, ignoring case.
func (r *TemplateRepository) Get(name string) (estimate.Template, error) {
	for _, t := range r.store.Load() {
		if t.NameMatches(name) {
			return t, nil
		}
	}
	return estimate.Template{}, ErrNotFound
}

// SaveAll overwrites the whole collection.
func (r *TemplateRepository) SaveAll(templates []estimate.Template) error {
	return r.store.Save(templates)
}

// Upsert inserts or replaces a template keyed by case-insensitive name match.
func (r *TemplateRepository) Upsert(template estimate.Template) error {
	if template.Hours == "" {
		template.Hours = "0"
	}
	templates := r.store.Load()
	replaced := false
	for i, t := range templates {
		if t.NameMatches(template.Name) {
			templates[i] = template
			replaced = true
			break
		}
	}
	if !replaced {
		templates = append(templates, template)
	}
	return r.store.Save(templates)
}

// Delete removes the template matching name (case-insensitive) and rewrites
// the collection.
func (r *TemplateRepository) Delete(name string) error {
	templates := r.store.Load()
	for i, t := range templates {
		if t.NameMatches(name) {
			return r.store.Save(append(templates[:i], templates[i+1:]...))
		}
	}
	return ErrNotFound
}

// Path returns the file path backing this repository.
func (r *TemplateRepository) Path() string {
	return r.store.Path()
}
