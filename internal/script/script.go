// Package script parses and applies YAML op scripts against a store.
//
// Scripts are inputs for seeding or replaying a board, not persisted
// state: applying one always starts from whatever the target store
// already holds and saves nothing.
package script

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"pboard/internal/forms"
	"pboard/internal/model"
	"pboard/internal/store"
)

// Op names accepted in a script.
const (
	OpAdd  = "add"
	OpMove = "move"
)

// Op is one scripted operation.
type Op struct {
	Op string `yaml:"op"`

	// add fields
	Title       string `yaml:"title,omitempty"`
	Description string `yaml:"description,omitempty"`
	Effort      int    `yaml:"effort,omitempty"`

	// move fields
	ID string `yaml:"id,omitempty"`
	To string `yaml:"to,omitempty"`
}

// Script is an ordered list of operations.
type Script struct {
	Ops []Op `yaml:"ops"`
}

// Parse decodes and validates a script. Add inputs go through the same
// form validation as interactive input; move targets must name a valid
// status. Unknown ops are rejected.
func Parse(data []byte) (*Script, error) {
	var sc Script
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}

	for i, op := range sc.Ops {
		switch op.Op {
		case OpAdd:
			in := forms.Input{Title: op.Title, Description: op.Description, Effort: op.Effort}
			if err := forms.Validate(in); err != nil {
				return nil, fmt.Errorf("op %d: %w", i+1, err)
			}
		case OpMove:
			if op.ID == "" {
				return nil, fmt.Errorf("op %d: move requires an id", i+1)
			}
			if _, err := model.ParseStatus(op.To); err != nil {
				return nil, fmt.Errorf("op %d: %w", i+1, err)
			}
		default:
			return nil, fmt.Errorf("op %d: unknown op %q (expected add or move)", i+1, op.Op)
		}
	}

	return &sc, nil
}

// Load reads and parses a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return Parse(data)
}

// Apply runs the script's operations against s, in order. Moves on
// unknown IDs follow store semantics (silent no-op), matching what a
// redundant or stale gesture would do on the live board.
func (sc *Script) Apply(s *store.Store) {
	for _, op := range sc.Ops {
		switch op.Op {
		case OpAdd:
			s.AddProject(op.Title, op.Description, op.Effort)
		case OpMove:
			status, err := model.ParseStatus(op.To)
			if err != nil {
				// Parse already rejected this; an unchecked script is
				// applied best-effort.
				continue
			}
			s.MoveProject(model.NormalizeID(op.ID), status)
		}
	}
}
