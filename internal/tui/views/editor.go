package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rcastro/estimator/internal/devops"
	"github.com/rcastro/estimator/internal/estimate"
	"github.com/rcastro/estimator/internal/service"
	"github.com/rcastro/estimator/internal/tui/ui"
)

type editorMode int

const (
	editorModeForm editorMode = iota
	editorModeStep
)

// numFields is the count of project-level text inputs in the editor.
const numFields = 5

const (
	fieldName = iota
	fieldDemand
	fieldArchitect
	fieldDeveloper
	fieldPurpose
)

type projectPersistedMsg struct {
	saved estimate.Project
	err   error
}

type pdfRenderedMsg struct {
	path string
	err  error
}

type uploadDoneMsg struct {
	result *devops.UploadResult
	err    error
}

// EditorModel is the estimate editing form: project fields, the step
// list, and the save, render and upload actions.
type EditorModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	width  int
	height int

	mode   editorMode
	fields [numFields]textinput.Model
	steps  []estimate.Step
	// focus walks the project fields first, then the step rows.
	focus int

	stepInputs  [4]textinput.Model
	stepFocus   int
	editingStep int

	status    string
	statusErr bool
	busy      bool
}

// NewEditorModel creates the editor tab with a blank project.
func NewEditorModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) EditorModel {
	m := EditorModel{
		services:    services,
		styles:      styles,
		keys:        keys,
		editingStep: -1,
	}

	labels := [numFields]string{"Project name", "Demand", "Architect", "Developer", "Purpose"}
	for i := range m.fields {
		ti := textinput.New()
		ti.Placeholder = labels[i]
		ti.CharLimit = 120
		ti.Width = 40
		ti.PromptStyle = styles.InputPrompt
		m.fields[i] = ti
	}
	m.fields[fieldName].Focus()

	stepLabels := [4]string{"Step name", "Hours", "Type (Feature/User Story/Task)", "Parent"}
	for i := range m.stepInputs {
		ti := textinput.New()
		ti.Placeholder = stepLabels[i]
		ti.CharLimit = 120
		ti.Width = 40
		ti.PromptStyle = styles.InputPrompt
		m.stepInputs[i] = ti
	}

	return m
}

// TabCaptured reports whether the tab key is needed for field
// navigation, which is only the case inside the step sub-form.
func (m EditorModel) TabCaptured() bool {
	return m.mode == editorModeStep
}

func (m EditorModel) Init() tea.Cmd {
	return textinput.Blink
}

// SetProject loads an existing project into the form.
func (m *EditorModel) SetProject(p estimate.Project) {
	m.fields[fieldName].SetValue(p.Name)
	m.fields[fieldDemand].SetValue(p.Demand)
	m.fields[fieldArchitect].SetValue(p.Architect)
	m.fields[fieldDeveloper].SetValue(p.Developer)
	m.fields[fieldPurpose].SetValue(p.Purpose)
	m.steps = append([]estimate.Step(nil), p.Steps...)
	m.mode = editorModeForm
	m.status = ""
	m.setFocus(fieldName)
}

// Reset clears the form for a new estimate.
func (m *EditorModel) Reset() {
	m.SetProject(estimate.Project{})
}

// InsertStep appends a step, typically instantiated from a template.
func (m *EditorModel) InsertStep(step estimate.Step) {
	m.steps = append(m.steps, step)
	m.status = fmt.Sprintf("Added step %q", step.Name)
	m.statusErr = false
}

// collect assembles the current form state into a project value.
func (m EditorModel) collect() estimate.Project {
	return estimate.Project{
		Name:      strings.TrimSpace(m.fields[fieldName].Value()),
		Demand:    strings.TrimSpace(m.fields[fieldDemand].Value()),
		Architect: strings.TrimSpace(m.fields[fieldArchitect].Value()),
		Developer: strings.TrimSpace(m.fields[fieldDeveloper].Value()),
		Purpose:   strings.TrimSpace(m.fields[fieldPurpose].Value()),
		Steps:     append([]estimate.Step(nil), m.steps...),
	}
}

func (m *EditorModel) setFocus(focus int) {
	m.focus = focus
	for i := range m.fields {
		if i == focus {
			m.fields[i].Focus()
		} else {
			m.fields[i].Blur()
		}
	}
}

func (m EditorModel) saveProject() tea.Cmd {
	project := m.collect()
	return func() tea.Msg {
		saved, err := m.services.Project.Save(project)
		return projectPersistedMsg{saved: saved, err: err}
	}
}

func (m EditorModel) renderPDF() tea.Cmd {
	project := m.collect()
	dest := strings.ReplaceAll(project.Name, " ", "_") + "_estimate.pdf"
	return func() tea.Msg {
		path, err := m.services.Render.RenderProject(project, dest)
		return pdfRenderedMsg{path: path, err: err}
	}
}

func (m EditorModel) uploadProject() tea.Cmd {
	project := m.collect()
	return func() tea.Msg {
		result, err := m.services.Upload.UploadProject(context.Background(), project)
		return uploadDoneMsg{result: result, err: err}
	}
}

func (m EditorModel) Update(msg tea.Msg) (EditorModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case projectPersistedMsg:
		m.busy = false
		if msg.err != nil {
			m.status = fmt.Sprintf("save failed: %v", msg.err)
			m.statusErr = true
			return m, nil
		}
		m.status = fmt.Sprintf("Saved %q (%s)", msg.saved.Name, estimate.FormatHours(msg.saved.Total))
		m.statusErr = false
		name := msg.saved.Name
		return m, func() tea.Msg { return ui.ProjectSavedMsg{Name: name} }

	case pdfRenderedMsg:
		m.busy = false
		if msg.err != nil {
			m.status = fmt.Sprintf("pdf failed: %v", msg.err)
			m.statusErr = true
			return m, nil
		}
		m.status = "PDF written to " + msg.path
		m.statusErr = false
		return m, nil

	case uploadDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.status = fmt.Sprintf("upload failed: %v", msg.err)
			m.statusErr = true
			return m, nil
		}
		m.status = fmt.Sprintf("Uploaded: epic #%d plus %d work %s",
			msg.result.EpicID, len(msg.result.Items), pluralize(len(msg.result.Items), "item", "items"))
		m.statusErr = false
		return m, nil

	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		if m.mode == editorModeStep {
			return m.handleStepKey(msg)
		}
		return m.handleFormKey(msg)
	}

	return m.updateInputs(msg)
}

func (m EditorModel) handleFormKey(msg tea.KeyMsg) (EditorModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Save):
		m.busy = true
		m.status = "Saving..."
		m.statusErr = false
		return m, m.saveProject()

	case key.Matches(msg, m.keys.RenderPDF):
		m.busy = true
		m.status = "Rendering PDF..."
		m.statusErr = false
		return m, m.renderPDF()

	case key.Matches(msg, m.keys.Upload):
		m.busy = true
		m.status = "Uploading to Azure DevOps..."
		m.statusErr = false
		return m, m.uploadProject()

	case key.Matches(msg, m.keys.AddStep):
		return m.openStepForm(-1), nil

	case msg.Type == tea.KeyUp:
		if m.focus > 0 {
			m.setFocus(m.focus - 1)
		}
		return m, nil

	case msg.Type == tea.KeyDown:
		if m.focus < numFields+len(m.steps)-1 {
			m.setFocus(m.focus + 1)
		}
		return m, nil

	case msg.Type == tea.KeyEnter:
		if m.focus >= numFields {
			return m.openStepForm(m.focus - numFields), nil
		}
		if m.focus < numFields+len(m.steps)-1 {
			m.setFocus(m.focus + 1)
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete) && m.focus >= numFields:
		idx := m.focus - numFields
		removed := m.steps[idx]
		m.steps = append(m.steps[:idx], m.steps[idx+1:]...)
		if m.focus >= numFields+len(m.steps) && m.focus > 0 {
			m.setFocus(m.focus - 1)
		}
		m.status = fmt.Sprintf("Removed step %q", removed.Name)
		m.statusErr = false
		return m, nil
	}

	return m.updateInputs(msg)
}

// openStepForm switches to the step sub-form. idx is the step being
// edited, or -1 for a new step.
func (m EditorModel) openStepForm(idx int) EditorModel {
	m.mode = editorModeStep
	m.editingStep = idx
	m.stepFocus = 0
	m.status = ""

	var step estimate.Step
	if idx >= 0 && idx < len(m.steps) {
		step = m.steps[idx]
	} else {
		step.Type = estimate.TypeFeature
	}
	m.stepInputs[0].SetValue(step.Name)
	if step.Hours > 0 {
		m.stepInputs[1].SetValue(estimate.FormatHours(step.Hours))
	} else {
		m.stepInputs[1].SetValue("")
	}
	m.stepInputs[2].SetValue(string(step.Type))
	m.stepInputs[3].SetValue(step.Parent)

	for i := range m.stepInputs {
		m.stepInputs[i].Blur()
	}
	m.stepInputs[0].Focus()
	return m
}

func (m EditorModel) handleStepKey(msg tea.KeyMsg) (EditorModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.mode = editorModeForm
		m.editingStep = -1
		return m, nil

	case msg.Type == tea.KeyUp, msg.Type == tea.KeyShiftTab:
		if m.stepFocus > 0 {
			m.setStepFocus(m.stepFocus - 1)
		}
		return m, nil

	case msg.Type == tea.KeyDown, msg.Type == tea.KeyTab:
		if m.stepFocus < len(m.stepInputs)-1 {
			m.setStepFocus(m.stepFocus + 1)
		}
		return m, nil

	case msg.Type == tea.KeyEnter:
		if m.stepFocus < len(m.stepInputs)-1 {
			m.setStepFocus(m.stepFocus + 1)
			return m, nil
		}
		return m.commitStep()
	}

	var cmd tea.Cmd
	m.stepInputs[m.stepFocus], cmd = m.stepInputs[m.stepFocus].Update(msg)
	return m, cmd
}

func (m *EditorModel) setStepFocus(focus int) {
	m.stepFocus = focus
	for i := range m.stepInputs {
		if i == focus {
			m.stepInputs[i].Focus()
		} else {
			m.stepInputs[i].Blur()
		}
	}
}

func (m EditorModel) commitStep() (EditorModel, tea.Cmd) {
	name := strings.TrimSpace(m.stepInputs[0].Value())
	if name == "" {
		m.status = "step name is required"
		m.statusErr = true
		return m, nil
	}
	stepType, err := estimate.ParseStepType(m.stepInputs[2].Value())
	if err != nil {
		m.status = err.Error()
		m.statusErr = true
		return m, nil
	}

	step := estimate.Step{
		Name:   name,
		Hours:  estimate.ParseHours(m.stepInputs[1].Value()),
		Type:   stepType,
		Parent: strings.TrimSpace(m.stepInputs[3].Value()),
	}

	if m.editingStep >= 0 && m.editingStep < len(m.steps) {
		m.steps[m.editingStep] = step
		m.status = fmt.Sprintf("Updated step %q", step.Name)
	} else {
		m.steps = append(m.steps, step)
		m.status = fmt.Sprintf("Added step %q", step.Name)
	}
	m.statusErr = false
	m.mode = editorModeForm
	m.editingStep = -1
	return m, nil
}

func (m EditorModel) updateInputs(msg tea.Msg) (EditorModel, tea.Cmd) {
	var cmd tea.Cmd
	if m.mode == editorModeStep {
		m.stepInputs[m.stepFocus], cmd = m.stepInputs[m.stepFocus].Update(msg)
		return m, cmd
	}
	if m.focus >= numFields {
		return m, nil
	}
	m.fields[m.focus], cmd = m.fields[m.focus].Update(msg)
	return m, cmd
}

func (m EditorModel) View() string {
	if m.mode == editorModeStep {
		return m.stepFormView()
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Editor"))
	b.WriteString("\n\n")

	labels := [numFields]string{"Name", "Demand", "Architect", "Developer", "Purpose"}
	for i := range m.fields {
		b.WriteString(m.styles.Label.Render(labels[i]))
		b.WriteString(m.fields[i].View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Subtitle.Render(fmt.Sprintf("Steps (%d)", len(m.steps))))
	b.WriteString("\n")
	if len(m.steps) == 0 {
		b.WriteString(m.styles.Dimmed.Render("  No steps. Press ctrl+n to add one."))
		b.WriteString("\n")
	}
	for i, step := range m.steps {
		indent := ""
		switch step.Type {
		case estimate.TypeUserStory:
			indent = "  "
		case estimate.TypeTask:
			indent = "    "
		}
		row := fmt.Sprintf("%s%s %s %s",
			pad(indent+step.Name, 34),
			pad(string(step.Type), 12),
			pad(estimate.FormatHours(step.Hours), 8),
			m.styles.Dimmed.Render(step.Parent))
		if m.focus == numFields+i {
			b.WriteString(m.styles.Cursor.Render("> "))
			b.WriteString(m.styles.Selected.Render(row))
		} else {
			b.WriteString("  ")
			b.WriteString(row)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Total.Render("Total: " + estimate.FormatHours(m.collect().ComputeTotal())))
	b.WriteString("\n\n")

	if m.status != "" {
		if m.statusErr {
			b.WriteString(m.styles.Error.Render(m.status))
		} else {
			b.WriteString(m.styles.Success.Render(m.status))
		}
	} else {
		b.WriteString(helpLine(m.styles,
			"ctrl+s", "save",
			"ctrl+p", "pdf",
			"ctrl+u", "upload",
			"ctrl+n", "add step",
			"enter", "edit step",
			"d", "remove step"))
	}

	return b.String()
}

func (m EditorModel) stepFormView() string {
	var b strings.Builder
	if m.editingStep >= 0 {
		b.WriteString(m.styles.Title.Render("Edit step"))
	} else {
		b.WriteString(m.styles.Title.Render("New step"))
	}
	b.WriteString("\n\n")

	labels := [4]string{"Name", "Hours", "Type", "Parent"}
	for i := range m.stepInputs {
		b.WriteString(m.styles.Label.Render(labels[i]))
		b.WriteString(m.stepInputs[i].View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.status != "" && m.statusErr {
		b.WriteString(m.styles.Error.Render(m.status))
	} else {
		b.WriteString(helpLine(m.styles,
			"enter", "next/confirm",
			"esc", "cancel"))
	}
	return b.String()
}
