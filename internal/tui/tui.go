// Package tui implements the interactive estimator shell built on Bubble Tea.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rcastro/estimator/internal/service"
	"github.com/rcastro/estimator/internal/tui/ui"
	"github.com/rcastro/estimator/internal/tui/views"
)

// Tab identifies one of the top-level screens.
type Tab int

const (
	TabProjects Tab = iota
	TabEditor
	TabTemplates
)

var tabNames = []string{"Projects", "Editor", "Templates"}

// Model is the root TUI model. It owns the tab bar and routes messages
// to the per-tab view models.
type Model struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	activeTab Tab
	width     int
	height    int

	projects  views.ProjectsModel
	editor    views.EditorModel
	templates views.TemplatesModel
}

// New creates the root model.
func New(services *service.Services) Model {
	styles := ui.DefaultStyles()
	keys := ui.DefaultKeyMap()
	return Model{
		services:  services,
		styles:    styles,
		keys:      keys,
		activeTab: TabProjects,
		projects:  views.NewProjectsModel(services, styles, keys),
		editor:    views.NewEditorModel(services, styles, keys),
		templates: views.NewTemplatesModel(services, styles, keys),
	}
}

// Run starts the interactive shell and blocks until the user quits.
func Run(services *service.Services) error {
	p := tea.NewProgram(New(services), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running tui: %w", err)
	}
	return nil
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.projects.Init(),
		m.editor.Init(),
		m.templates.Init(),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m.broadcast(msg)

	case ui.OpenProjectMsg:
		m.editor.SetProject(msg.Project)
		m.activeTab = TabEditor
		return m, nil

	case ui.NewProjectMsg:
		m.editor.Reset()
		m.activeTab = TabEditor
		return m, nil

	case ui.InsertStepMsg:
		m.editor.InsertStep(msg.Step)
		m.activeTab = TabEditor
		return m, nil

	case ui.ProjectSavedMsg:
		var cmd tea.Cmd
		m.projects, cmd = m.projects.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.broadcast(msg)
}

// handleKey applies the global bindings and otherwise forwards the key
// to the active tab.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if !m.textEntryActive() && key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if !m.tabCaptured() {
		switch {
		case key.Matches(msg, m.keys.NextTab):
			m.activeTab = (m.activeTab + 1) % Tab(len(tabNames))
			return m, nil
		case key.Matches(msg, m.keys.PrevTab):
			m.activeTab = (m.activeTab + Tab(len(tabNames)) - 1) % Tab(len(tabNames))
			return m, nil
		}
	}

	return m.forwardToActive(msg)
}

// textEntryActive reports whether the active tab is currently feeding
// keystrokes into a text input, in which case plain letter bindings
// like q must not fire globally.
func (m Model) textEntryActive() bool {
	switch m.activeTab {
	case TabEditor:
		return true
	case TabTemplates:
		return m.templates.TextEntryActive()
	default:
		return m.projects.TextEntryActive()
	}
}

// tabCaptured reports whether the active tab needs the tab key for its
// own field navigation.
func (m Model) tabCaptured() bool {
	switch m.activeTab {
	case TabEditor:
		return m.editor.TabCaptured()
	case TabTemplates:
		return m.templates.TabCaptured()
	default:
		return false
	}
}

func (m Model) forwardToActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.activeTab {
	case TabProjects:
		m.projects, cmd = m.projects.Update(msg)
	case TabEditor:
		m.editor, cmd = m.editor.Update(msg)
	case TabTemplates:
		m.templates, cmd = m.templates.Update(msg)
	}
	return m, cmd
}

// broadcast forwards a message to every tab. Result messages from
// background commands arrive here so a tab can react even when it is
// not active.
func (m Model) broadcast(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	m.projects, cmd = m.projects.Update(msg)
	cmds = append(cmds, cmd)
	m.editor, cmd = m.editor.Update(msg)
	cmds = append(cmds, cmd)
	m.templates, cmd = m.templates.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	var b strings.Builder

	var tabs []string
	for i, name := range tabNames {
		if Tab(i) == m.activeTab {
			tabs = append(tabs, m.styles.ActiveTab.Render(name))
		} else {
			tabs = append(tabs, m.styles.Tab.Render(name))
		}
	}
	b.WriteString(m.styles.TabBar.Render(strings.Join(tabs, " ")))
	b.WriteString("\n\n")

	switch m.activeTab {
	case TabProjects:
		b.WriteString(m.projects.View())
	case TabEditor:
		b.WriteString(m.editor.View())
	case TabTemplates:
		b.WriteString(m.templates.View())
	}

	b.WriteString("\n")
	b.WriteString(m.styles.StatusBar.Render("tab: switch screen  ctrl+c: quit"))

	return m.styles.App.Render(b.String())
}
