package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rcastro/estimator/internal/estimate"
	"github.com/rcastro/estimator/internal/service"
	"github.com/rcastro/estimator/internal/tui/ui"
)

type projectsLoadedMsg struct {
	projects []estimate.Project
	err      error
}

type projectDeletedMsg struct {
	name string
	err  error
}

// ProjectsModel renders the stored project list and lets the user open,
// create or delete estimates.
type ProjectsModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	width  int
	height int

	projects   []estimate.Project
	cursor     int
	confirming bool
	status     string
	statusErr  bool
}

// NewProjectsModel creates the projects tab.
func NewProjectsModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) ProjectsModel {
	return ProjectsModel{
		services: services,
		styles:   styles,
		keys:     keys,
	}
}

// TextEntryActive reports whether keystrokes are being consumed by a
// prompt on this tab.
func (m ProjectsModel) TextEntryActive() bool {
	return m.confirming
}

func (m ProjectsModel) Init() tea.Cmd {
	return m.loadProjects()
}

func (m ProjectsModel) loadProjects() tea.Cmd {
	return func() tea.Msg {
		projects := m.services.Project.List()
		return projectsLoadedMsg{projects: projects}
	}
}

func (m ProjectsModel) deleteProject(name string) tea.Cmd {
	return func() tea.Msg {
		err := m.services.Project.Delete(name)
		return projectDeletedMsg{name: name, err: err}
	}
}

func (m ProjectsModel) Update(msg tea.Msg) (ProjectsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case projectsLoadedMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
			m.statusErr = true
			return m, nil
		}
		m.projects = msg.projects
		if m.cursor >= len(m.projects) {
			m.cursor = max(0, len(m.projects)-1)
		}
		return m, nil

	case projectDeletedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("delete failed: %v", msg.err)
			m.statusErr = true
			return m, nil
		}
		m.status = fmt.Sprintf("Deleted %q", msg.name)
		m.statusErr = false
		return m, m.loadProjects()

	case ui.ProjectSavedMsg:
		return m, m.loadProjects()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m ProjectsModel) handleKey(msg tea.KeyMsg) (ProjectsModel, tea.Cmd) {
	if m.confirming {
		m.confirming = false
		if msg.String() == "y" && m.cursor < len(m.projects) {
			return m, m.deleteProject(m.projects[m.cursor].Name)
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
		if m.cursor < len(m.projects)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		if m.cursor < len(m.projects) {
			project := m.projects[m.cursor]
			return m, func() tea.Msg { return ui.OpenProjectMsg{Project: project} }
		}
	case key.Matches(msg, m.keys.New):
		return m, func() tea.Msg { return ui.NewProjectMsg{} }
	case key.Matches(msg, m.keys.Delete):
		if m.cursor < len(m.projects) {
			m.confirming = true
			m.status = ""
		}
	case key.Matches(msg, m.keys.Refresh):
		m.status = ""
		return m, m.loadProjects()
	}
	return m, nil
}

func (m ProjectsModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Projects"))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtitle.Render(fmt.Sprintf("%d %s stored", len(m.projects), pluralize(len(m.projects), "estimate", "estimates"))))
	b.WriteString("\n\n")

	if len(m.projects) == 0 {
		b.WriteString(m.styles.Dimmed.Render("No projects yet. Press n to create one."))
		b.WriteString("\n")
	} else {
		header := fmt.Sprintf("  %s %s %s %s", pad("NAME", 28), pad("DEVELOPER", 18), pad("DATE", 12), pad("TOTAL", 8))
		b.WriteString(m.styles.TableHeader.Render(header))
		b.WriteString("\n")
		for i, p := range m.projects {
			row := fmt.Sprintf("%s %s %s %s",
				pad(p.Name, 28),
				pad(p.Developer, 18),
				pad(p.Date, 12),
				pad(estimate.FormatHours(p.ComputeTotal()), 8))
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
	if m.confirming && m.cursor < len(m.projects) {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Delete %q? (y/N)", m.projects[m.cursor].Name)))
	} else if m.status != "" {
		if m.statusErr {
			b.WriteString(m.styles.Error.Render(m.status))
		} else {
			b.WriteString(m.styles.Success.Render(m.status))
		}
	} else {
		b.WriteString(helpLine(m.styles,
			"enter", "open",
			"n", "new",
			"d", "delete",
			"r", "refresh"))
	}

	return b.String()
}
