package cli

import "fmt"

// NotFoundError indicates a record was not found on the board.
//
// The store itself treats unknown IDs as silent no-ops; this error
// exists for command surfaces that want to tell the user their ID
// matched nothing instead of pretending the move happened.
type NotFoundError struct {
	ID string // the record ID that was not found
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("record %s not found", e.ID)
}

// ValidationError indicates a form input failed validation.
type ValidationError struct {
	Field   string // the field that failed validation
	Message string // what went wrong
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return e.Message
}

// FormatError returns a user-friendly error message.
// It prefixes the error with "error: " for consistent CLI output.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	return "error: " + err.Error()
}
