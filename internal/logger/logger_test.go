package logger

import "testing"

func TestTruncateForLog(t *testing.T) {
	if got := TruncateForLog("  hello  ", 10); got != "hello" {
		t.Fatalf("expected trimmed string, got %q", got)
	}

	if got := TruncateForLog("hello world", 5); got != "hello..." {
		t.Fatalf("expected truncated string with ellipsis, got %q", got)
	}

	if got := TruncateForLog("hello", 0); got != "" {
		t.Fatalf("expected empty string for zero limit, got %q", got)
	}
}

func TestNew(t *testing.T) {
	for _, json := range []bool{true, false} {
		if _, err := New(json, true); err != nil {
			t.Fatalf("creating logger (json=%v): %v", json, err)
		}
	}
}
