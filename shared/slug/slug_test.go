package slug_test

import (
	"strings"
	"testing"

	"atlas/shared/slug"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple title",
			input:    "Sunset Cruise",
			expected: "sunset-cruise",
		},
		{
			name:     "punctuation collapses to single hyphen",
			input:    "Hiking & Camping!!",
			expected: "hiking-camping",
		},
		{
			name:     "already a slug",
			input:    "city-walking-tour",
			expected: "city-walking-tour",
		},
		{
			name:     "leading and trailing separators trimmed",
			input:    "  --Wine Tasting--  ",
			expected: "wine-tasting",
		},
		{
			name:     "digits preserved",
			input:    "Top 10 Beaches 2026",
			expected: "top-10-beaches-2026",
		},
		{
			name:     "consecutive separators collapse",
			input:    "a   b---c",
			expected: "a-b-c",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "only separators",
			input:    "!!! &&&",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slug.Make(tt.input)
			if got != tt.expected {
				t.Errorf("Make(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestMakeAlphabet(t *testing.T) {
	got := slug.Make("Fjord Safari (Premium) — 3 hrs @ noon")

	for _, r := range got {
		valid := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-'
		if !valid {
			t.Fatalf("Make produced invalid rune %q in %q", r, got)
		}
	}

	if strings.HasPrefix(got, "-") || strings.HasSuffix(got, "-") {
		t.Fatalf("Make produced leading/trailing hyphen: %q", got)
	}
}

func TestIsValid(t *testing.T) {
	if !slug.IsValid("hiking-camping") {
		t.Error("expected hiking-camping to be a valid slug")
	}

	if slug.IsValid("Hiking Camping") {
		t.Error("expected Hiking Camping to be invalid")
	}

	if slug.IsValid("") {
		t.Error("expected empty string to be invalid")
	}
}
