package docs

import (
	"strings"
	"testing"
)

func TestTopics(t *testing.T) {
	topics := Topics()
	if len(topics) == 0 {
		t.Fatal("expected at least one topic")
	}

	found := false
	for _, topic := range topics {
		if topic == "board" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected board topic, got %v", topics)
	}
}

func TestGet(t *testing.T) {
	content, ok := Get("board")
	if !ok {
		t.Fatal("board topic should exist")
	}
	if !strings.Contains(content, "project board") {
		t.Error("board topic should describe the board")
	}

	// Lookup is case-insensitive and trims whitespace
	if _, ok := Get("  BOARD "); !ok {
		t.Error("topic lookup should be case-insensitive")
	}

	if _, ok := Get("nonexistent"); ok {
		t.Error("unknown topic should not be found")
	}
	if _, ok := Get(""); ok {
		t.Error("empty topic should not be found")
	}
}
