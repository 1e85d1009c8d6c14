package ui

import "github.com/charmbracelet/lipgloss"

// Styles holds every lipgloss style used by the TUI so views never
// construct colors ad hoc.
type Styles struct {
	App         lipgloss.Style
	TabBar      lipgloss.Style
	Tab         lipgloss.Style
	ActiveTab   lipgloss.Style
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Label       lipgloss.Style
	Value       lipgloss.Style
	Cursor      lipgloss.Style
	Selected    lipgloss.Style
	Dimmed      lipgloss.Style
	Error       lipgloss.Style
	Success     lipgloss.Style
	Total       lipgloss.Style
	StatusBar   lipgloss.Style
	HelpKey     lipgloss.Style
	HelpDesc    lipgloss.Style
	InputPrompt lipgloss.Style
	TableHeader lipgloss.Style
}

// DefaultStyles returns the standard palette. The blue matches the
// accent color used in the PDF output.
func DefaultStyles() Styles {
	var (
		blue   = lipgloss.Color("#1140FE")
		white  = lipgloss.Color("#FFFFFF")
		gray   = lipgloss.Color("#808080")
		green  = lipgloss.Color("#2E8B57")
		red    = lipgloss.Color("#CC3333")
		subtle = lipgloss.Color("#3C3C3C")
	)

	return Styles{
		App:         lipgloss.NewStyle().Padding(1, 2),
		TabBar:      lipgloss.NewStyle().MarginBottom(1),
		Tab:         lipgloss.NewStyle().Padding(0, 2).Foreground(gray),
		ActiveTab:   lipgloss.NewStyle().Padding(0, 2).Foreground(white).Background(blue).Bold(true),
		Title:       lipgloss.NewStyle().Foreground(blue).Bold(true),
		Subtitle:    lipgloss.NewStyle().Foreground(gray),
		Label:       lipgloss.NewStyle().Foreground(gray).Width(12),
		Value:       lipgloss.NewStyle().Foreground(white),
		Cursor:      lipgloss.NewStyle().Foreground(blue).Bold(true),
		Selected:    lipgloss.NewStyle().Foreground(white).Background(subtle),
		Dimmed:      lipgloss.NewStyle().Foreground(gray),
		Error:       lipgloss.NewStyle().Foreground(red),
		Success:     lipgloss.NewStyle().Foreground(green),
		Total:       lipgloss.NewStyle().Foreground(blue).Bold(true),
		StatusBar:   lipgloss.NewStyle().Foreground(gray).MarginTop(1),
		HelpKey:     lipgloss.NewStyle().Foreground(white),
		HelpDesc:    lipgloss.NewStyle().Foreground(gray),
		InputPrompt: lipgloss.NewStyle().Foreground(blue),
		TableHeader: lipgloss.NewStyle().Foreground(gray).Bold(true),
	}
}
