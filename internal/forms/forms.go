// Package forms validates user input for new project records.
//
// Validation happens entirely before the store is touched: the store
// performs no re-validation, and on failure the store is never called.
package forms

import (
	"strings"
	"unicode/utf8"

	"pboard/internal/cli"
)

// Validation bounds for new project input.
const (
	MinDescriptionLen = 5
	MinEffort         = 1
	MaxEffort         = 1000
)

// Input is the raw triple collected from the new-project form.
type Input struct {
	Title       string
	Description string
	Effort      int
}

// Validate checks the input against the form rules: non-empty title,
// minimum-length description, and effort within the accepted range.
// The first failing field is reported; later fields are not checked.
func Validate(in Input) error {
	if strings.TrimSpace(in.Title) == "" {
		return &cli.ValidationError{Field: "title", Message: "must not be empty"}
	}
	if utf8.RuneCountInString(strings.TrimSpace(in.Description)) < MinDescriptionLen {
		return &cli.ValidationError{
			Field:   "description",
			Message: "must be at least 5 characters",
		}
	}
	if in.Effort < MinEffort || in.Effort > MaxEffort {
		return &cli.ValidationError{
			Field:   "effort",
			Message: "must be between 1 and 1000 mandays",
		}
	}
	return nil
}
