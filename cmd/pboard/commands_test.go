package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCommand executes the root command with args and captures its output.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

// inTempDir runs the test from an empty temp directory so no stray
// .pboard.yaml is picked up.
func inTempDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(orig) })
	return dir
}

const testScript = `ops:
  - op: add
    title: Dig test hole
    description: in the backyard
    effort: 5
  - op: add
    title: Pour foundation
    description: after the hole is dug
    effort: 30
  - op: move
    id: PB-01
    to: finished
  - op: move
    id: PB-01
    to: finished
`

func TestReplayCommand(t *testing.T) {
	dir := inTempDir(t)
	path := filepath.Join(dir, "board.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testScript), 0644))

	out, err := runCommand(t, "replay", path)
	require.NoError(t, err)

	assert.Contains(t, out, "PB-01")
	assert.Contains(t, out, "PB-02")
	assert.Contains(t, out, "finished")
	assert.Contains(t, out, "Dig test hole")
	// 4 ops, but the redundant second move changes nothing.
	assert.Contains(t, out, "4 ops applied, 3 changed the board")
}

func TestReplayCommandQuiet(t *testing.T) {
	dir := inTempDir(t)
	path := filepath.Join(dir, "board.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testScript), 0644))

	out, err := runCommand(t, "replay", path, "--quiet")
	require.NoError(t, err)

	assert.Contains(t, out, "PB-01")
	assert.NotContains(t, out, "ops applied")

	// reset for other tests sharing the global flag
	replayQuiet = false
}

func TestReplayCommandUsesConfiguredPrefix(t *testing.T) {
	dir := inTempDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".pboard.yaml"),
		[]byte("prefix: PRJ\n"), 0644))

	content := `ops:
  - op: add
    title: Only one
    description: prefix comes from config
    effort: 2
`
	path := filepath.Join(dir, "board.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	out, err := runCommand(t, "replay", path)
	require.NoError(t, err)
	assert.Contains(t, out, "PRJ-01")
}

func TestReplayCommandRejectsBadScript(t *testing.T) {
	dir := inTempDir(t)
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ops:\n  - op: nuke\n"), 0644))

	_, err := runCommand(t, "replay", path)
	assert.Error(t, err)
}

func TestReplayCommandMissingFile(t *testing.T) {
	inTempDir(t)

	_, err := runCommand(t, "replay", "no-such-file.yaml")
	assert.Error(t, err)
}

func TestDocsCommandListsTopics(t *testing.T) {
	inTempDir(t)

	out, err := runCommand(t, "docs")
	require.NoError(t, err)

	assert.Contains(t, out, "Available topics:")
	assert.Contains(t, out, "board")
	assert.Contains(t, out, "gestures")
	assert.Contains(t, out, "scripts")
	assert.Contains(t, out, "config")
}

func TestDocsCommandShowsTopic(t *testing.T) {
	inTempDir(t)

	// stdout is not a terminal under test, so the raw markdown is printed
	out, err := runCommand(t, "docs", "gestures")
	require.NoError(t, err)
	assert.Contains(t, out, "grab-and-drop")
}

func TestDocsCommandUnknownTopic(t *testing.T) {
	inTempDir(t)

	_, err := runCommand(t, "docs", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown topic")
}
