package model

import (
	"errors"
	"fmt"
)

// Error kinds surfaced to the user at the end of a single form action.
var (
	ErrInvalidGoal          = errors.New("invalid goal: choose 'lose weight' or 'gain weight'")
	ErrInvalidActivityLevel = errors.New("invalid activity level: choose sedentary, light, moderate, active or very active")
	ErrInvalidPlan          = errors.New("invalid plan: choose 'cardio', 'strength', or 'balanced'")
	ErrInvalidGender        = errors.New("invalid gender: choose 'male' or 'female'")
	ErrInputParse           = errors.New("invalid input")
	ErrExternalLookup       = errors.New("nutrition lookup failed")
)

// ParseError reports a form field that could not be turned into a value.
type ParseError struct {
	Field  string // Human-readable field label, e.g. "Height (cm)"
	Value  string // Raw text as entered
	Reason string
}

func (e *ParseError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("%s: %s (got %q)", e.Field, e.Reason, e.Value)
}

// Is lets callers match any ParseError against ErrInputParse.
func (e *ParseError) Is(target error) bool {
	return target == ErrInputParse
}
