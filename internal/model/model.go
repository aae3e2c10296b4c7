// Package model defines the core data structures for pboard.
package model

import "fmt"

// Status represents which board column a record belongs to.
type Status string

const (
	StatusActive   Status = "active"
	StatusFinished Status = "finished"
)

// ParseStatus parses a status string from CLI or script input.
// Matching is case-insensitive on the canonical names only.
func ParseStatus(s string) (Status, error) {
	switch s {
	case "active", "Active", "ACTIVE":
		return StatusActive, nil
	case "finished", "Finished", "FINISHED":
		return StatusFinished, nil
	}
	return "", fmt.Errorf("invalid status %q (expected active or finished)", s)
}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	return s == StatusActive || s == StatusFinished
}

// Record represents a single unit of work on the board.
// ID is assigned at creation and never changes; Status is the only
// field that is mutated after creation. Records are never deleted.
type Record struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
	Effort      int    `yaml:"effort"`
	Status      Status `yaml:"status"`
}
