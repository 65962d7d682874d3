package models

import "testing"

func TestParseStatus(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"TODO", "IN_PROGRESS", "DONE"} {
		got, err := ParseStatus(s)
		if err != nil {
			t.Fatalf("ParseStatus(%q) error: %v", s, err)
		}
		if string(got) != s {
			t.Fatalf("ParseStatus(%q) = %q", s, got)
		}
	}

	for _, s := range []string{"", "todo", "CANCELLED", "DONE "} {
		if _, err := ParseStatus(s); err == nil {
			t.Fatalf("ParseStatus(%q) expected error", s)
		}
	}
}

func TestParsePriority(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"LOW", "MEDIUM", "HIGH"} {
		got, err := ParsePriority(s)
		if err != nil {
			t.Fatalf("ParsePriority(%q) error: %v", s, err)
		}
		if string(got) != s {
			t.Fatalf("ParsePriority(%q) = %q", s, got)
		}
	}

	for _, s := range []string{"", "medium", "URGENT"} {
		if _, err := ParsePriority(s); err == nil {
			t.Fatalf("ParsePriority(%q) expected error", s)
		}
	}
}
