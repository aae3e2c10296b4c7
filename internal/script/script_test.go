package script

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pboard/internal/model"
	"pboard/internal/store"
)

const sampleScript = `ops:
  - op: add
    title: Dig test hole
    description: in the backyard
    effort: 5
  - op: add
    title: Pour foundation
    description: after the hole is dug
    effort: 30
  - op: move
    id: pb-1
    to: finished
`

func TestParse(t *testing.T) {
	sc, err := Parse([]byte(sampleScript))
	require.NoError(t, err)
	require.Len(t, sc.Ops, 3)

	assert.Equal(t, OpAdd, sc.Ops[0].Op)
	assert.Equal(t, "Dig test hole", sc.Ops[0].Title)
	assert.Equal(t, 5, sc.Ops[0].Effort)
	assert.Equal(t, OpMove, sc.Ops[2].Op)
	assert.Equal(t, "finished", sc.Ops[2].To)
}

func TestParseRejectsBadScripts(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "unknown op",
			content: `ops:
  - op: delete
    id: PB-01
`,
		},
		{
			name: "add failing validation",
			content: `ops:
  - op: add
    title: ""
    description: valid description
    effort: 5
`,
		},
		{
			name: "add with out-of-range effort",
			content: `ops:
  - op: add
    title: X
    description: valid description
    effort: 9999
`,
		},
		{
			name: "move without id",
			content: `ops:
  - op: move
    to: finished
`,
		},
		{
			name: "move with bad status",
			content: `ops:
  - op: move
    id: PB-01
    to: done
`,
		},
		{
			name:    "not yaml",
			content: "ops: [unclosed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.content))
			assert.Error(t, err)
		})
	}
}

func TestApply(t *testing.T) {
	sc, err := Parse([]byte(sampleScript))
	require.NoError(t, err)

	s := store.New("PB")
	sc.Apply(s)

	recs := s.Snapshot()
	require.Len(t, recs, 2)
	assert.Equal(t, "PB-01", recs[0].ID)
	assert.Equal(t, model.StatusFinished, recs[0].Status, "pb-1 normalizes to PB-01")
	assert.Equal(t, "PB-02", recs[1].ID)
	assert.Equal(t, model.StatusActive, recs[1].Status)
}

func TestApplyMoveOnUnknownIDIsNoOp(t *testing.T) {
	content := `ops:
  - op: add
    title: Only record
    description: nothing moves it
    effort: 2
  - op: move
    id: PB-99
    to: finished
`
	sc, err := Parse([]byte(content))
	require.NoError(t, err)

	s := store.New("PB")
	sc.Apply(s)

	recs := s.Snapshot()
	require.Len(t, recs, 1)
	assert.Equal(t, model.StatusActive, recs[0].Status)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "board.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleScript), 0644))

	sc, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, sc.Ops, 3)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
