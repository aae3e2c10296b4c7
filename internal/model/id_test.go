package model

import (
	"errors"
	"testing"
)

func TestParseRecordID(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantPrefix string
		wantNum    int
		wantErr    bool
	}{
		{name: "canonical form", input: "PB-07", wantPrefix: "PB", wantNum: 7},
		{name: "lowercase", input: "pb-7", wantPrefix: "PB", wantNum: 7},
		{name: "extra padding", input: "PB-007", wantPrefix: "PB", wantNum: 7},
		{name: "three letter prefix", input: "PRJ-12", wantPrefix: "PRJ", wantNum: 12},
		{name: "large number", input: "PB-123", wantPrefix: "PB", wantNum: 123},
		{name: "missing dash", input: "PB07", wantErr: true},
		{name: "one letter prefix", input: "P-07", wantErr: true},
		{name: "four letter prefix", input: "PROJ-07", wantErr: true},
		{name: "zero number", input: "PB-00", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "number only", input: "07", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefix, num, err := ParseRecordID(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q, got prefix=%q num=%d", tt.input, prefix, num)
				}
				if !errors.Is(err, ErrInvalidID) {
					t.Errorf("expected ErrInvalidID, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if prefix != tt.wantPrefix {
				t.Errorf("expected prefix %q, got %q", tt.wantPrefix, prefix)
			}
			if num != tt.wantNum {
				t.Errorf("expected num %d, got %d", tt.wantNum, num)
			}
		})
	}
}

func TestFormatRecordID(t *testing.T) {
	tests := []struct {
		prefix string
		num    int
		want   string
	}{
		{"PB", 1, "PB-01"},
		{"pb", 7, "PB-07"},
		{"PB", 99, "PB-99"},
		{"PB", 100, "PB-100"},
		{"PRJ", 5, "PRJ-05"},
	}

	for _, tt := range tests {
		got := FormatRecordID(tt.prefix, tt.num)
		if got != tt.want {
			t.Errorf("FormatRecordID(%q, %d) = %q, want %q", tt.prefix, tt.num, got, tt.want)
		}
	}
}

func TestNormalizeID(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"pb-7", "PB-07"},
		{"PB-007", "PB-07"},
		{"prj-12", "PRJ-12"},
		{"garbage", "GARBAGE"},
	}

	for _, tt := range tests {
		got := NormalizeID(tt.input)
		if got != tt.want {
			t.Errorf("NormalizeID(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestValidatePrefix(t *testing.T) {
	valid := []string{"PB", "pb", "PRJ", "ab"}
	for _, p := range valid {
		if err := ValidatePrefix(p); err != nil {
			t.Errorf("ValidatePrefix(%q) = %v, want nil", p, err)
		}
	}

	invalid := []string{"", "P", "PROJ", "P1", "1B", "P-B"}
	for _, p := range invalid {
		err := ValidatePrefix(p)
		if err == nil {
			t.Errorf("ValidatePrefix(%q) = nil, want error", p)
		} else if !errors.Is(err, ErrInvalidPrefix) {
			t.Errorf("ValidatePrefix(%q): expected ErrInvalidPrefix, got %v", p, err)
		}
	}
}
