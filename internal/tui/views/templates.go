package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rcastro/estimator/internal/estimate"
	"github.com/rcastro/estimator/internal/service"
	"github.com/rcastro/estimator/internal/tui/ui"
)

type templateMode int

const (
	templateModeList templateMode = iota
	templateModeAdd
)

type templatesLoadedMsg struct {
	templates []estimate.Template
	err       error
}

type templateSavedMsg struct {
	name string
	err  error
}

type templateDeletedMsg struct {
	name string
	err  error
}

// TemplatesModel renders the reusable step catalog. Selecting a
// template inserts it into the estimate open in the editor.
type TemplatesModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	width  int
	height int

	mode       templateMode
	templates  []estimate.Template
	cursor     int
	confirming bool

	inputs     [3]textinput.Model
	inputFocus int

	status    string
	statusErr bool
}

// NewTemplatesModel creates the templates tab.
func NewTemplatesModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) TemplatesModel {
	m := TemplatesModel{
		services: services,
		styles:   styles,
		keys:     keys,
	}

	labels := [3]string{"Template name", "Hours", "Description"}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = labels[i]
		ti.CharLimit = 120
		ti.Width = 40
		ti.PromptStyle = styles.InputPrompt
		m.inputs[i] = ti
	}

	return m
}

// TextEntryActive reports whether keystrokes are being consumed by the
// add form or a confirmation prompt.
func (m TemplatesModel) TextEntryActive() bool {
	return m.mode == templateModeAdd || m.confirming
}

// TabCaptured reports whether the tab key is needed for field
// navigation on this screen.
func (m TemplatesModel) TabCaptured() bool {
	return m.mode == templateModeAdd
}

func (m TemplatesModel) Init() tea.Cmd {
	return m.loadTemplates()
}

func (m TemplatesModel) loadTemplates() tea.Cmd {
	return func() tea.Msg {
		templates := m.services.Template.List()
		return templatesLoadedMsg{templates: templates}
	}
}

func (m TemplatesModel) saveTemplate(tpl estimate.Template) tea.Cmd {
	return func() tea.Msg {
		err := m.services.Template.Save(tpl)
		return templateSavedMsg{name: tpl.Name, err: err}
	}
}

func (m TemplatesModel) deleteTemplate(name string) tea.Cmd {
	return func() tea.Msg {
		err := m.services.Template.Delete(name)
		return templateDeletedMsg{name: name, err: err}
	}
}

func (m TemplatesModel) Update(msg tea.Msg) (TemplatesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case templatesLoadedMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
			m.statusErr = true
			return m, nil
		}
		m.templates = msg.templates
		if m.cursor >= len(m.templates) {
			m.cursor = max(0, len(m.templates)-1)
		}
		return m, nil

	case templateSavedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("save failed: %v", msg.err)
			m.statusErr = true
			return m, nil
		}
		m.status = fmt.Sprintf("Saved template %q", msg.name)
		m.statusErr = false
		return m, m.loadTemplates()

	case templateDeletedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("delete failed: %v", msg.err)
			m.statusErr = true
			return m, nil
		}
		m.status = fmt.Sprintf("Deleted template %q", msg.name)
		m.statusErr = false
		return m, m.loadTemplates()

	case tea.KeyMsg:
		if m.mode == templateModeAdd {
			return m.handleAddKey(msg)
		}
		return m.handleListKey(msg)
	}
	return m, nil
}

func (m TemplatesModel) handleListKey(msg tea.KeyMsg) (TemplatesModel, tea.Cmd) {
	if m.confirming {
		m.confirming = false
		if msg.String() == "y" && m.cursor < len(m.templates) {
			return m, m.deleteTemplate(m.templates[m.cursor].Name)
		}
		m.status = "Delete cancelled"
		m.statusErr = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.templates)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		if m.cursor < len(m.templates) {
			step := m.templates[m.cursor].Step()
			m.status = fmt.Sprintf("Inserted %q into the editor", step.Name)
			m.statusErr = false
			return m, func() tea.Msg { return ui.InsertStepMsg{Step: step} }
		}
	case key.Matches(msg, m.keys.New):
		m.mode = templateModeAdd
		m.inputFocus = 0
		m.status = ""
		for i := range m.inputs {
			m.inputs[i].SetValue("")
			m.inputs[i].Blur()
		}
		m.inputs[0].Focus()
	case key.Matches(msg, m.keys.Delete):
		if m.cursor < len(m.templates) {
			m.confirming = true
			m.status = ""
		}
	case key.Matches(msg, m.keys.Refresh):
		m.status = ""
		return m, m.loadTemplates()
	}
	return m, nil
}

func (m TemplatesModel) handleAddKey(msg tea.KeyMsg) (TemplatesModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.mode = templateModeList
		return m, nil

	case msg.Type == tea.KeyUp, msg.Type == tea.KeyShiftTab:
		if m.inputFocus > 0 {
			m.setInputFocus(m.inputFocus - 1)
		}
		return m, nil

	case msg.Type == tea.KeyDown, msg.Type == tea.KeyTab:
		if m.inputFocus < len(m.inputs)-1 {
			m.setInputFocus(m.inputFocus + 1)
		}
		return m, nil

	case msg.Type == tea.KeyEnter:
		if m.inputFocus < len(m.inputs)-1 {
			m.setInputFocus(m.inputFocus + 1)
			return m, nil
		}
		name := strings.TrimSpace(m.inputs[0].Value())
		if name == "" {
			m.status = "template name is required"
			m.statusErr = true
			return m, nil
		}
		tpl := estimate.Template{
			Name:        name,
			Hours:       strings.TrimSpace(m.inputs[1].Value()),
			Description: strings.TrimSpace(m.inputs[2].Value()),
		}
		m.mode = templateModeList
		return m, m.saveTemplate(tpl)
	}

	var cmd tea.Cmd
	m.inputs[m.inputFocus], cmd = m.inputs[m.inputFocus].Update(msg)
	return m, cmd
}

func (m *TemplatesModel) setInputFocus(focus int) {
	m.inputFocus = focus
	for i := range m.inputs {
		if i == focus {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

func (m TemplatesModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Templates"))
	b.WriteString("\n")

	if m.mode == templateModeAdd {
		b.WriteString("\n")
		labels := [3]string{"Name", "Hours", "Description"}
		for i := range m.inputs {
			b.WriteString(m.styles.Label.Render(labels[i]))
			b.WriteString(m.inputs[i].View())
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

	b.WriteString(m.styles.Subtitle.Render(fmt.Sprintf("%d %s", len(m.templates), pluralize(len(m.templates), "template", "templates"))))
	b.WriteString("\n\n")

	if len(m.templates) == 0 {
		b.WriteString(m.styles.Dimmed.Render("No templates yet. Press n to create one."))
		b.WriteString("\n")
	} else {
		header := fmt.Sprintf("  %s %s %s", pad("NAME", 24), pad("HOURS", 8), "DESCRIPTION")
		b.WriteString(m.styles.TableHeader.Render(header))
		b.WriteString("\n")
		for i, tpl := range m.templates {
			row := fmt.Sprintf("%s %s %s",
				pad(tpl.Name, 24),
				pad(tpl.Hours, 8),
				truncate(tpl.Description, 40))
			if i == m.cursor {
				b.WriteString(m.styles.Cursor.Render("> "))
				b.WriteString(m.styles.Selected.Render(row))
			} else {
				b.WriteString("  ")
				b.WriteString(row)
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if m.confirming && m.cursor < len(m.templates) {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Delete template %q? (y/N)", m.templates[m.cursor].Name)))
	} else if m.status != "" {
		if m.statusErr {
			b.WriteString(m.styles.Error.Render(m.status))
		} else {
			b.WriteString(m.styles.Success.Render(m.status))
		}
	} else {
		b.WriteString(helpLine(m.styles,
			"enter", "insert into editor",
			"n", "new",
			"d", "delete",
			"r", "refresh"))
	}

	return b.String()
}
