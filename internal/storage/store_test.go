package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/rcastro/estimator/internal/estimate"
)

func newTestStore(t *testing.T) *Store[estimate.Project] {
	t.Helper()
	path := filepath.Join(t.TempDir(), "projects.json")
	store, err := New[estimate.Project](path)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return store
}

func TestNewCreatesEmptyCollectionFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "projects.json")

	store, err := New[estimate.Project](path)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	data, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatalf("expected collection file to exist: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("expected empty collection '[]', got %q", string(data))
	}
}

func TestNewDoesNotOverwriteExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.json")
	existing := `[{"name":"Portal","steps":[],"total":0}]`
	if err := os.WriteFile(path, []byte(existing), 0644); err != nil {
		t.Fatal(err)
	}

	store, err := New[estimate.Project](path)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	projects := store.Load()
	if len(projects) != 1 || projects[0].Name != "Portal" {
		t.Errorf("expected existing collection preserved, got %+v", projects)
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		projects []estimate.Project
	}{
		{"empty collection", []estimate.Project{}},
		{
			"single project",
			[]estimate.Project{
				{
					Name:      "Portal",
					Developer: "Ana",
					Demand:    "D-100",
					Date:      "2026-01-15",
					Steps: []estimate.Step{
						{Name: "UI", Hours: 8, Type: estimate.TypeFeature},
						{Name: "Login", Hours: 4, Type: estimate.TypeUserStory, Parent: "UI"},
					},
					Total: 12,
				},
			},
		},
		{
			"multiple projects",
			[]estimate.Project{
				{Name: "A", Steps: []estimate.Step{}},
				{Name: "B", Steps: []estimate.Step{{Name: "x", Hours: 1, Type: estimate.TypeTask, Parent: "y"}}},
				{Name: "C", Steps: []estimate.Step{}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore(t)
			if err := store.Save(tt.projects); err != nil {
				t.Fatalf("Save() error = %v", err)
			}

			got := store.Load()
			if len(got) != len(tt.projects) {
				t.Fatalf("Load() returned %d projects, want %d", len(got), len(tt.projects))
			}
			for i := range got {
				a, _ := json.Marshal(got[i])
				b, _ := json.Marshal(tt.projects[i])
				if string(a) != string(b) {
					t.Errorf("project %d: got %s, want %s", i, a, b)
				}
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	store := newTestStore(t)
	if err := os.Remove(store.Path()); err != nil {
		t.Fatal(err)
	}

	got := store.Load()
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice for missing file, got %v", got)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "this is not json"},
		{"truncated", `[{"name": "Por`},
		{"wrong scalar type", `42`},
		{"object without projects key", `{"templates": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore(t)
			if err := os.WriteFile(store.Path(), []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}

			got := store.Load()
			if len(got) != 0 {
				t.Errorf("expected empty collection for malformed content, got %v", got)
			}
		})
	}
}

func TestLoadLegacyObjectWrapper(t *testing.T) {
	store := newTestStore(t)
	legacy := `{"projects": [{"name": "Portal", "steps": [], "total": 0}]}`
	if err := os.WriteFile(store.Path(), []byte(legacy), 0644); err != nil {
		t.Fatal(err)
	}

	got := store.Load()
	if len(got) != 1 || got[0].Name != "Portal" {
		t.Errorf("expected legacy wrapper unwrapped to 1 project, got %v", got)
	}
}

func TestSaveNilRecords(t *testing.T) {
	store := newTestStore(t)
	if err := store.Save(nil); err != nil {
		t.Fatalf("Save(nil) error = %v", err)
	}

	data, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "[]" {
		t.Errorf("expected '[]' for nil records, got %q", string(data))
	}
}

func TestSaveLeavesNoTempFile(t *testing.T) {
	store := newTestStore(t)
	if err := store.Save([]estimate.Project{{Name: "A"}}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := os.Stat(store.Path() + ".tmp"); !os.IsNotExist(err) {
		t.Error("expected temp file to be renamed away after Save")
	}
}

func TestConcurrentSaves(t *testing.T) {
	store := newTestStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			projects := make([]estimate.Project, n+1)
			for j := range projects {
				projects[j] = estimate.Project{Name: "p", Steps: []estimate.Step{}}
			}
			if err := store.Save(projects); err != nil {
				t.Errorf("Save() error = %v", err)
			}
		}(i)
	}
	wg.Wait()

	// Whatever save won, the file must be a valid complete collection
	data, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatal(err)
	}
	var projects []estimate.Project
	if err := json.Unmarshal(data, &projects); err != nil {
		t.Errorf("collection file is not valid JSON after concurrent saves: %v", err)
	}
}
