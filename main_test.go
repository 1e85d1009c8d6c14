package main

import (
	"os"
	"testing"
)

func TestRun_Help(t *testing.T) {
	originalArgs := os.Args
	defer func() { os.Args = originalArgs }()

	os.Args = []string{"estimator", "--help"}

	code := run()
	if code != 0 {
		t.Errorf("Expected exit code 0, got %d", code)
	}
}

func TestRun_ExecuteError(t *testing.T) {
	originalArgs := os.Args
	defer func() { os.Args = originalArgs }()

	os.Args = []string{"estimator", "--unknownflag"}

	code := run()
	if code != 1 {
		t.Errorf("Expected exit code 1 for Execute error, got %d", code)
	}
}

func TestMain_CallsExitWithRunResult(t *testing.T) {
	originalExit := exitFunc
	originalArgs := os.Args
	defer func() {
		exitFunc = originalExit
		os.Args = originalArgs
	}()

	var capturedCode int
	exitFunc = func(code int) {
		capturedCode = code
	}
	os.Args = []string{"estimator", "--help"}

	main()

	if capturedCode != 0 {
		t.Errorf("Expected exit code 0, got %d", capturedCode)
	}
}
