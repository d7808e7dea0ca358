package main

import (
	"testing"

	"coderead/internal/errors"
	"coderead/internal/resolve"
)

func TestParseLineRange(t *testing.T) {
	tests := []struct {
		spec  string
		start int
		end   int
	}{
		{"20", 20, 0},
		{"20:30", 20, 30},
		{" 5 : 8 ", 5, 8},
	}
	for _, tt := range tests {
		start, end, err := parseLineRange(tt.spec)
		if err != nil {
			t.Fatalf("parseLineRange(%q): %v", tt.spec, err)
		}
		if start != tt.start || end != tt.end {
			t.Errorf("parseLineRange(%q) = (%d, %d), want (%d, %d)",
				tt.spec, start, end, tt.start, tt.end)
		}
	}
}

func TestParseLineRangeInvalid(t *testing.T) {
	for _, spec := range []string{"abc", "1:xyz", ""} {
		_, _, err := parseLineRange(spec)
		if err == nil {
			t.Errorf("parseLineRange(%q): expected error", spec)
		}
		if !errors.IsCode(err, errors.RangeInvalid) {
			t.Errorf("parseLineRange(%q): expected RANGE_INVALID, got %v", spec, err)
		}
	}
}

func TestSpanSource(t *testing.T) {
	span := &resolve.ResolvedSpan{
		Lines: []resolve.Line{
			{Number: 3, Text: "def f():"},
			{Number: 4, Text: "    return 1"},
		},
	}
	if got := spanSource(span); got != "def f():\n    return 1" {
		t.Errorf("spanSource = %q", got)
	}
}
