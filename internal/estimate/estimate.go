// Package estimate defines the record types for project estimates:
// projects, their work breakdown steps, and reusable step templates.
package estimate

import "strings"

// StepType is the work item tier a step maps to when uploaded.
type StepType string

const (
	TypeFeature   StepType = "Feature"
	TypeUserStory StepType = "User Story"
	TypeTask      StepType = "Task"
)

// Step represents one planned unit of work within a project estimate.
// Name doubles as the join key for parent references and template matching.
type Step struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Hours       float64  `json:"hours"`
	Type        StepType `json:"type"`
	Parent      string   `json:"parent,omitempty"`
}

// Project represents a single project estimate. Name is the upsert key
// within the persisted collection.
type Project struct {
	Name      string  `json:"name"`
	Architect string  `json:"architect,omitempty"`
	Developer string  `json:"developer,omitempty"`
	Area      string  `json:"area,omitempty"`
	Demand    string  `json:"demand,omitempty"`
	Purpose   string  `json:"purpose,omitempty"`
	Date      string  `json:"date,omitempty"`
	Steps     []Step  `json:"steps"`
	Total     float64 `json:"total"`
}

// Template is a reusable named step pattern. Name matches are
// case-insensitive. Hours is kept as entered (numeric-as-string).
type Template struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Hours       string `json:"hours"`
}

// ComputeTotal sums the hours across all steps. The stored Total field is
// never trusted; callers recompute at save and export time.
func (p Project) ComputeTotal() float64 {
	var total float64
	for _, s := range p.Steps {
		total += s.Hours
	}
	return total
}

// Normalize fills defaults for optional fields and step types so that
// downstream consumers never see empty values.
func (p *Project) Normalize() {
	if p.Developer == "" {
		p.Developer = "N/A"
	}
	if p.Steps == nil {
		p.Steps = []Step{}
	}
	for i := range p.Steps {
		if p.Steps[i].Type == "" {
			p.Steps[i].Type = TypeFeature
		}
	}
	p.Total = p.ComputeTotal()
}

// Validate checks the invariants required before save, export, or upload.
func (p Project) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrMissingName
	}
	return nil
}

// Step instantiates the template into a project step of the default tier.
func (t Template) Step() Step {
	return Step{
		Name:        t.Name,
		Description: t.Description,
		Hours:       ParseHours(t.Hours),
		Type:        TypeFeature,
	}
}

// NameMatches reports whether the template matches the given name,
// ignoring case. Template names are case-insensitive unique keys.
func (t Template) NameMatches(name string) bool {
	return strings.EqualFold(strings.TrimSpace(t.Name), strings.TrimSpace(name))
}
