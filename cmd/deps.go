package cmd

import (
	"io"
	"os"

	"github.com/rcastro/estimator/internal/service"
)

// Deps holds external dependencies for CLI commands, enabling testability.
type Deps struct {
	Stdout   io.Writer
	Stderr   io.Writer
	Stdin    io.Reader
	Exit     func(code int)
	Services func() (*service.Services, error)
}

// DefaultDeps returns the default production dependencies.
func DefaultDeps() *Deps {
	return &Deps{
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Stdin:    os.Stdin,
		Exit:     os.Exit,
		Services: service.NewServices,
	}
}

// deps is the global dependencies instance used by commands.
// In production, this is DefaultDeps(). Tests can replace it.
var deps = DefaultDeps()

// SetDeps sets the global dependencies (for testing).
func SetDeps(d *Deps) {
	deps = d
}

// ResetDeps resets dependencies to defaults (for testing cleanup).
func ResetDeps() {
	deps = DefaultDeps()
}

// getServices resolves the service layer, reporting failure on Stderr.
// Returns nil after calling Exit when initialization fails.
func getServices() *service.Services {
	services, err := deps.Services()
	if err != nil {
		_, _ = io.WriteString(deps.Stderr, "Error: Failed to initialize storage\n")
		_, _ = io.WriteString(deps.Stderr, "Details: "+err.Error()+"\n")
		_, _ = io.WriteString(deps.Stderr, "Hint: Check that your home directory is accessible\n")
		deps.Exit(1)
		return nil
	}
	return services
}
