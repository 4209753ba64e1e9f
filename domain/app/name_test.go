package app

import "testing"

func TestName(t *testing.T) {
	if Name == "" {
		t.Fatal("expected non-empty app name")
	}
	if Name != "labbot" {
		t.Fatalf("expected app name %q, got %q", "labbot", Name)
	}
}
