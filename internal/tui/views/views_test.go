package views

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rcastro/estimator/internal/config"
	"github.com/rcastro/estimator/internal/estimate"
	"github.com/rcastro/estimator/internal/service"
	"github.com/rcastro/estimator/internal/tui/ui"
)

func newTestServices(t *testing.T) *service.Services {
	t.Helper()
	dir := t.TempDir()
	services, err := service.NewServicesWithPaths(
		filepath.Join(dir, "projects.json"),
		filepath.Join(dir, "templates.json"),
		config.DefaultConfig(),
	)
	if err != nil {
		t.Fatalf("NewServicesWithPaths: %v", err)
	}
	return services
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestProjectsViewEmptyState(t *testing.T) {
	m := NewProjectsModel(newTestServices(t), ui.DefaultStyles(), ui.DefaultKeyMap())
	if !strings.Contains(m.View(), "No projects yet") {
		t.Error("empty list should render the hint to create a project")
	}
}

func TestProjectsListAndOpen(t *testing.T) {
	services := newTestServices(t)
	if _, err := services.Project.Save(estimate.Project{Name: "Portal", Developer: "Ana"}); err != nil {
		t.Fatalf("seed project: %v", err)
	}

	m := NewProjectsModel(services, ui.DefaultStyles(), ui.DefaultKeyMap())
	m, _ = m.Update(m.loadProjects()())
	if !strings.Contains(m.View(), "Portal") {
		t.Fatal("list should render the stored project")
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter on a project should emit a command")
	}
	open, ok := cmd().(ui.OpenProjectMsg)
	if !ok {
		t.Fatalf("cmd() = %T, want ui.OpenProjectMsg", cmd())
	}
	if open.Project.Name != "Portal" {
		t.Errorf("opened project = %q, want Portal", open.Project.Name)
	}
}

func TestProjectsDeleteNeedsConfirmation(t *testing.T) {
	services := newTestServices(t)
	if _, err := services.Project.Save(estimate.Project{Name: "Portal"}); err != nil {
		t.Fatalf("seed project: %v", err)
	}

	m := NewProjectsModel(services, ui.DefaultStyles(), ui.DefaultKeyMap())
	m, _ = m.Update(m.loadProjects()())

	m, _ = m.Update(keyRunes("d"))
	if !m.confirming {
		t.Fatal("d should ask for confirmation")
	}

	// Anything but y cancels.
	m, cmd := m.Update(keyRunes("n"))
	if m.confirming || cmd != nil {
		t.Fatal("non-y answer should cancel the delete")
	}
	if len(services.Project.List()) != 1 {
		t.Error("cancelled delete must not remove the project")
	}

	m, _ = m.Update(keyRunes("d"))
	_, cmd = m.Update(keyRunes("y"))
	if cmd == nil {
		t.Fatal("confirmed delete should emit a command")
	}
	if msg, ok := cmd().(projectDeletedMsg); !ok || msg.err != nil {
		t.Fatalf("cmd() = %#v, want successful projectDeletedMsg", cmd())
	}
	if len(services.Project.List()) != 0 {
		t.Error("confirmed delete should remove the project")
	}
}

func TestEditorCollectsFormState(t *testing.T) {
	m := NewEditorModel(newTestServices(t), ui.DefaultStyles(), ui.DefaultKeyMap())
	m.SetProject(estimate.Project{
		Name:      "Portal",
		Demand:    "D-100",
		Developer: "Ana",
		Steps: []estimate.Step{
			{Name: "Backend", Hours: 16, Type: estimate.TypeFeature},
		},
	})

	got := m.collect()
	if got.Name != "Portal" || got.Demand != "D-100" || got.Developer != "Ana" {
		t.Errorf("collect() = %+v, want the loaded fields back", got)
	}
	if len(got.Steps) != 1 || got.Steps[0].Name != "Backend" {
		t.Errorf("collect() steps = %+v, want the loaded step", got.Steps)
	}
	if total := got.ComputeTotal(); total != 16 {
		t.Errorf("ComputeTotal() = %v, want 16", total)
	}
}

func TestEditorStepFormAddsStep(t *testing.T) {
	m := NewEditorModel(newTestServices(t), ui.DefaultStyles(), ui.DefaultKeyMap())
	m.Reset()

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	if m.mode != editorModeStep {
		t.Fatal("ctrl+n should open the step form")
	}

	m.stepInputs[0].SetValue("Login page")
	m.stepInputs[1].SetValue("12,5")
	m.stepInputs[2].SetValue("feature")
	m.stepInputs[3].SetValue("")

	m.stepFocus = len(m.stepInputs) - 1
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if m.mode != editorModeForm {
		t.Fatal("confirming the step form should return to the editor")
	}
	if len(m.steps) != 1 {
		t.Fatalf("steps = %d, want 1", len(m.steps))
	}
	step := m.steps[0]
	if step.Name != "Login page" || step.Hours != 12.5 || step.Type != estimate.TypeFeature {
		t.Errorf("step = %+v, want parsed name, hours and type", step)
	}
}

func TestEditorStepFormRejectsUnknownType(t *testing.T) {
	m := NewEditorModel(newTestServices(t), ui.DefaultStyles(), ui.DefaultKeyMap())
	m.Reset()

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	m.stepInputs[0].SetValue("Mystery")
	m.stepInputs[2].SetValue("epic")
	m.stepFocus = len(m.stepInputs) - 1
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if m.mode != editorModeStep {
		t.Error("invalid step type should keep the form open")
	}
	if len(m.steps) != 0 {
		t.Error("invalid step must not be added")
	}
	if !m.statusErr {
		t.Error("expected an error status")
	}
}

func TestEditorRemoveStep(t *testing.T) {
	m := NewEditorModel(newTestServices(t), ui.DefaultStyles(), ui.DefaultKeyMap())
	m.SetProject(estimate.Project{
		Name: "Portal",
		Steps: []estimate.Step{
			{Name: "Backend", Hours: 16, Type: estimate.TypeFeature},
			{Name: "Frontend", Hours: 24, Type: estimate.TypeFeature},
		},
	})

	// Move focus onto the first step row.
	m.setFocus(numFields)
	m, _ = m.Update(keyRunes("d"))

	if len(m.steps) != 1 {
		t.Fatalf("steps = %d, want 1 after removal", len(m.steps))
	}
	if m.steps[0].Name != "Frontend" {
		t.Errorf("remaining step = %q, want Frontend", m.steps[0].Name)
	}
}

func TestTemplatesInsertEmitsStep(t *testing.T) {
	services := newTestServices(t)
	if err := services.Template.Save(estimate.Template{Name: "Code review", Hours: "4"}); err != nil {
		t.Fatalf("seed template: %v", err)
	}

	m := NewTemplatesModel(services, ui.DefaultStyles(), ui.DefaultKeyMap())
	m, _ = m.Update(m.loadTemplates()())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter on a template should emit a command")
	}
	insert, ok := cmd().(ui.InsertStepMsg)
	if !ok {
		t.Fatalf("cmd() = %T, want ui.InsertStepMsg", cmd())
	}
	if insert.Step.Name != "Code review" || insert.Step.Hours != 4 {
		t.Errorf("inserted step = %+v, want Code review with 4h", insert.Step)
	}
	if insert.Step.Type != estimate.TypeFeature {
		t.Errorf("inserted step type = %q, want Feature", insert.Step.Type)
	}
}

func TestTemplatesAddForm(t *testing.T) {
	services := newTestServices(t)
	m := NewTemplatesModel(services, ui.DefaultStyles(), ui.DefaultKeyMap())
	m, _ = m.Update(m.loadTemplates()())

	m, _ = m.Update(keyRunes("n"))
	if m.mode != templateModeAdd {
		t.Fatal("n should open the add form")
	}

	m.inputs[0].SetValue("Deploy")
	m.inputs[1].SetValue("6")
	m.inputs[2].SetValue("Release to production")
	m.inputFocus = len(m.inputs) - 1

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.mode != templateModeList {
		t.Fatal("confirming the form should return to the list")
	}
	if cmd == nil {
		t.Fatal("confirming the form should emit a save command")
	}
	if msg, ok := cmd().(templateSavedMsg); !ok || msg.err != nil {
		t.Fatalf("cmd() = %#v, want successful templateSavedMsg", cmd())
	}

	templates := services.Template.List()
	if len(templates) != 1 || templates[0].Name != "Deploy" {
		t.Fatalf("templates = %+v, want the saved Deploy template", templates)
	}
}

func TestHelpersPadAndTruncate(t *testing.T) {
	if got := truncate("abcdef", 4); got != "abc…" {
		t.Errorf("truncate = %q, want abc…", got)
	}
	if got := pad("ab", 4); got != "ab  " {
		t.Errorf("pad = %q, want %q", got, "ab  ")
	}
	if got := pluralize(1, "item", "items"); got != "item" {
		t.Errorf("pluralize(1) = %q", got)
	}
	if got := pluralize(3, "item", "items"); got != "items" {
		t.Errorf("pluralize(3) = %q", got)
	}
}
