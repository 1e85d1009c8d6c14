package cmd

import (
	"strings"
	"testing"

	"github.com/rcastro/estimator/internal/estimate"
)

func TestDeleteProjectWithYesFlag(t *testing.T) {
	env := setupCmdTest(t)
	env.seedProject(t, estimate.Project{Name: "Portal"})

	yesFlag = true
	defer func() { yesFlag = false }()

	deleteProject("Portal")

	if !strings.Contains(env.stdout.String(), `Deleted project "Portal"`) {
		t.Errorf("stdout = %q", env.stdout.String())
	}
	if len(env.services.Project.List()) != 0 {
		t.Error("project should be gone from storage")
	}
}

func TestDeleteProjectConfirmed(t *testing.T) {
	env := setupCmdTest(t)
	env.seedProject(t, estimate.Project{Name: "Portal"})
	deps.Stdin = strings.NewReader("y\n")

	deleteProject("Portal")

	if !strings.Contains(env.stdout.String(), `Deleted project "Portal"`) {
		t.Errorf("stdout = %q", env.stdout.String())
	}
	if len(env.services.Project.List()) != 0 {
		t.Error("project should be gone from storage")
	}
}

func TestDeleteProjectDeclined(t *testing.T) {
	env := setupCmdTest(t)
	env.seedProject(t, estimate.Project{Name: "Portal"})
	deps.Stdin = strings.NewReader("n\n")

	deleteProject("Portal")

	if !strings.Contains(env.stdout.String(), "Cancelled") {
		t.Errorf("stdout = %q", env.stdout.String())
	}
	if len(env.services.Project.List()) != 1 {
		t.Error("declined delete must keep the project")
	}
}

func TestDeleteProjectNotFound(t *testing.T) {
	env := setupCmdTest(t)

	deleteProject("Missing")

	if env.exitCode != 1 {
		t.Errorf("exit code = %d, want 1", env.exitCode)
	}
	if !strings.Contains(env.stderr.String(), `No project named "Missing"`) {
		t.Errorf("stderr = %q", env.stderr.String())
	}
}
