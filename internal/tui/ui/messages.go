package ui

import "github.com/rcastro/estimator/internal/estimate"

// OpenProjectMsg asks the root model to load a project into the editor
// tab and switch to it.
type OpenProjectMsg struct {
	Project estimate.Project
}

// NewProjectMsg asks the root model to reset the editor to a blank
// project and switch to it.
type NewProjectMsg struct{}

// InsertStepMsg asks the root model to append a step to the project
// currently open in the editor.
type InsertStepMsg struct {
	Step estimate.Step
}

// ProjectSavedMsg tells the projects tab that the stored list changed
// and should be reloaded.
type ProjectSavedMsg struct {
	Name string
}
