package diffutil

import (
	"strings"
	"testing"
)

func TestUnifiedProducesHeadersAndHunks(t *testing.T) {
	a := "line1\nline2\n"
	b := "line1\nline3\n"
	body := Unified("want", "got", a, b, Options{})
	if !strings.Contains(body, "--- want") || !strings.Contains(body, "+++ got") {
		t.Fatalf("missing headers: %q", body)
	}
	if !strings.Contains(body, "-line2") || !strings.Contains(body, "+line3") {
		t.Fatalf("missing change lines: %q", body)
	}
}

func TestUnifiedIdenticalInputsEmpty(t *testing.T) {
	if body := Unified("a", "b", "same\n", "same\n", Options{}); body != "" {
		t.Fatalf("expected empty diff, got %q", body)
	}
}

func TestUnifiedNoTrailingNewline(t *testing.T) {
	body := Unified("a", "b", "x", "y", Options{Context: 1})
	if body == "" {
		t.Fatalf("expected a non-empty diff")
	}
}
