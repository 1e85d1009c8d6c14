package cmd

import (
	"strings"
	"testing"
)

func TestTemplateAddAndList(t *testing.T) {
	env := setupCmdTest(t)

	templateDescFlag = "Peer review"
	templateHoursFlag = "2"
	defer func() {
		templateDescFlag = ""
		templateHoursFlag = "0"
	}()

	addTemplate("Code Review")
	if !strings.Contains(env.stdout.String(), `Template "Code Review" saved`) {
		t.Fatalf("stdout = %q", env.stdout.String())
	}

	env.stdout.Reset()
	listTemplates()
	out := env.stdout.String()
	if !strings.Contains(out, "Code Review") || !strings.Contains(out, "Peer review") {
		t.Errorf("list output = %q", out)
	}
}

func TestTemplateListEmpty(t *testing.T) {
	env := setupCmdTest(t)

	listTemplates()

	if !strings.Contains(env.stdout.String(), "No templates found") {
		t.Errorf("stdout = %q", env.stdout.String())
	}
}

func TestTemplateRemove(t *testing.T) {
	env := setupCmdTest(t)

	addTemplate("Deploy")
	env.stdout.Reset()

	removeTemplate("Deploy")
	if !strings.Contains(env.stdout.String(), `Template "Deploy" removed`) {
		t.Errorf("stdout = %q", env.stdout.String())
	}
	if len(env.services.Template.List()) != 0 {
		t.Error("template should be gone from storage")
	}
}

func TestTemplateRemoveNotFound(t *testing.T) {
	env := setupCmdTest(t)

	removeTemplate("Missing")

	if env.exitCode != 1 {
		t.Errorf("exit code = %d, want 1", env.exitCode)
	}
	if !strings.Contains(env.stderr.String(), `No template named "Missing"`) {
		t.Errorf("stderr = %q", env.stderr.String())
	}
}
