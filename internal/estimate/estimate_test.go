package estimate

import "testing"

func TestComputeTotal(t *testing.T) {
	tests := []struct {
		name  string
		steps []Step
		want  float64
	}{
		{
			name:  "no steps",
			steps: nil,
			want:  0,
		},
		{
			name:  "single step",
			steps: []Step{{Name: "Design", Hours: 4}},
			want:  4,
		},
		{
			name: "multiple steps",
			steps: []Step{
				{Name: "Design", Hours: 4},
				{Name: "Build", Hours: 16.5},
				{Name: "Test", Hours: 8},
			},
			want: 28.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Project{Name: "Test", Steps: tt.steps}
			if got := p.ComputeTotal(); got != tt.want {
				t.Errorf("ComputeTotal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestComputeTotalIgnoresStoredTotal(t *testing.T) {
	// A stale persisted total must never leak into the recomputed value
	p := Project{
		Name:  "Stale",
		Total: 999,
		Steps: []Step{{Name: "A", Hours: 2}, {Name: "B", Hours: 3}},
	}
	if got := p.ComputeTotal(); got != 5 {
		t.Errorf("ComputeTotal() = %v, want 5", got)
	}
}

func TestNormalize(t *testing.T) {
	p := Project{
		Name:  "Portal",
		Total: 123,
		Steps: []Step{
			{Name: "UI", Hours: 4},
			{Name: "Login", Hours: 2, Type: TypeUserStory},
		},
	}
	p.Normalize()

	if p.Developer != "N/A" {
		t.Errorf("expected default developer 'N/A', got %q", p.Developer)
	}
	if p.Steps[0].Type != TypeFeature {
		t.Errorf("expected empty step type to default to Feature, got %q", p.Steps[0].Type)
	}
	if p.Steps[1].Type != TypeUserStory {
		t.Errorf("expected explicit step type preserved, got %q", p.Steps[1].Type)
	}
	if p.Total != 6 {
		t.Errorf("expected total recomputed to 6, got %v", p.Total)
	}
}

func TestNormalizeNilSteps(t *testing.T) {
	p := Project{Name: "Empty"}
	p.Normalize()
	if p.Steps == nil {
		t.Error("expected Steps to be non-nil after Normalize")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		project Project
		wantErr error
	}{
		{"valid", Project{Name: "Portal"}, nil},
		{"empty name", Project{}, ErrMissingName},
		{"whitespace name", Project{Name: "   "}, ErrMissingName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.project.Validate(); err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestTemplateStep(t *testing.T) {
	tpl := Template{Name: "Code Review", Description: "Peer review", Hours: "2.5"}
	s := tpl.Step()

	if s.Name != "Code Review" {
		t.Errorf("expected name 'Code Review', got %q", s.Name)
	}
	if s.Hours != 2.5 {
		t.Errorf("expected hours 2.5, got %v", s.Hours)
	}
	if s.Type != TypeFeature {
		t.Errorf("expected default type Feature, got %q", s.Type)
	}
}

func TestTemplateNameMatches(t *testing.T) {
	tpl := Template{Name: "Code Review"}

	tests := []struct {
		input string
		want  bool
	}{
		{"Code Review", true},
		{"code review", true},
		{"CODE REVIEW", true},
		{"  Code Review  ", true},
		{"Code Reviews", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := tpl.NameMatches(tt.input); got != tt.want {
			t.Errorf("NameMatches(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
