package storage

import (
	"path/filepath"
	"testing"

	"github.com/rcastro/estimator/internal/estimate"
)

func newTestProjectRepo(t *testing.T) *ProjectRepository {
	t.Helper()
	repo, err := NewProjectRepository(filepath.Join(t.TempDir(), ProjectsFile))
	if err != nil {
		t.Fatalf("NewProjectRepository() error = %v", err)
	}
	return repo
}

func newTestTemplateRepo(t *testing.T) *TemplateRepository {
	t.Helper()
	repo, err := NewTemplateRepository(filepath.Join(t.TempDir(), TemplatesFile))
	if err != nil {
		t.Fatalf("NewTemplateRepository() error = %v", err)
	}
	return repo
}

func TestProjectUpsertAppends(t *testing.T) {
	repo := newTestProjectRepo(t)

	if err := repo.Upsert(estimate.Project{Name: "Portal"}); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
	if err := repo.Upsert(estimate.Project{Name: "Billing"}); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	projects := repo.List()
	if len(projects) != 2 {
		t.Fatalf("expected 2 projects after appending upserts, got %d", len(projects))
	}
}

func TestProjectUpsertReplacesInPlace(t *testing.T) {
	repo := newTestProjectRepo(t)

	_ = repo.Upsert(estimate.Project{Name: "Portal", Developer: "Ana"})
	_ = repo.Upsert(estimate.Project{Name: "Billing"})

	// Saving a matching name replaces without changing collection length
	if err := repo.Upsert(estimate.Project{Name: "Portal", Developer: "Bruno"}); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	projects := repo.List()
	if len(projects) != 2 {
		t.Fatalf("expected length unchanged (2), got %d", len(projects))
	}
	if projects[0].Name != "Portal" || projects[0].Developer != "Bruno" {
		t.Errorf("expected Portal replaced in place, got %+v", projects[0])
	}
}

func TestProjectGet(t *testing.T) {
	repo := newTestProjectRepo(t)
	_ = repo.Upsert(estimate.Project{Name: "Portal", Demand: "D-100"})

	p, err := repo.Get("Portal")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if p.Demand != "D-100" {
		t.Errorf("expected demand D-100, got %q", p.Demand)
	}

	if _, err := repo.Get("Missing"); err != ErrNotFound {
		t.Errorf("Get(missing) error = %v, want ErrNotFound", err)
	}
}

func TestProjectDelete(t *testing.T) {
	repo := newTestProjectRepo(t)
	_ = repo.Upsert(estimate.Project{Name: "Portal"})
	_ = repo.Upsert(estimate.Project{Name: "Billing"})

	if err := repo.Delete("Portal"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	projects := repo.List()
	if len(projects) != 1 || projects[0].Name != "Billing" {
		t.Errorf("expected only Billing left, got %+v", projects)
	}

	if err := repo.Delete("Portal"); err != ErrNotFound {
		t.Errorf("Delete(missing) error = %v, want ErrNotFound", err)
	}
}

func TestTemplateUpsertCaseInsensitive(t *testing.T) {
	repo := newTestTemplateRepo(t)

	_ = repo.Upsert(estimate.Template{Name: "Code Review", Hours: "2"})

	// Different casing must update in place, not append
	if err := repo.Upsert(estimate.Template{Name: "CODE REVIEW", Hours: "3"}); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	templates := repo.List()
	if len(templates) != 1 {
		t.Fatalf("expected 1 template after case-insensitive upsert, got %d", len(templates))
	}
	if templates[0].Hours != "3" {
		t.Errorf("expected hours updated to 3, got %q", templates[0].Hours)
	}
}

func TestTemplateUpsertDefaultsHours(t *testing.T) {
	repo := newTestTemplateRepo(t)
	_ = repo.Upsert(estimate.Template{Name: "Kickoff"})

	tpl, err := repo.Get("kickoff")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if tpl.Hours != "0" {
		t.Errorf("expected default hours \"0\", got %q", tpl.Hours)
	}
}

func TestTemplateDelete(t *testing.T) {
	repo := newTestTemplateRepo(t)
	_ = repo.Upsert(estimate.Template{Name: "Code Review", Hours: "2"})

	if err := repo.Delete("code review"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if len(repo.List()) != 0 {
		t.Error("expected empty collection after delete")
	}
}
