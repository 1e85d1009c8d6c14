package estimate

import (
	"errors"
	"strconv"
	"strings"
)

// Common validation errors for estimate records
var (
	ErrMissingName     = errors.New("project name is required")
	ErrUnknownStepType = errors.New("unknown step type")
)

// ParseHours coerces free-form hour input to a float. Invalid or missing
// input yields 0 rather than an error: hour fields come from text inputs
// and a half-typed value must never block editing.
func ParseHours(input string) float64 {
	s := strings.TrimSpace(input)
	if s == "" {
		return 0
	}
	// Tolerate comma decimal separators from locale-specific input
	s = strings.ReplaceAll(s, ",", ".")
	s = strings.TrimSuffix(s, "h")
	hours, err := strconv.ParseFloat(s, 64)
	if err != nil || hours < 0 {
		return 0
	}
	return hours
}

// ParseStepType parses a step type string, tolerating case and surrounding
// whitespace. Empty input defaults to Feature.
func ParseStepType(input string) (StepType, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "", "feature":
		return TypeFeature, nil
	case "user story", "userstory", "story":
		return TypeUserStory, nil
	case "task":
		return TypeTask, nil
	}
	return "", ErrUnknownStepType
}

// FormatHours renders an hour value the way the UI and PDF display it.
func FormatHours(hours float64) string {
	return strconv.FormatFloat(hours, 'f', 1, 64) + "h"
}
