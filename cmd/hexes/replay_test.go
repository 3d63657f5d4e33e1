package main

import "testing"

func TestReplaySolution(t *testing.T) {
	if err := replay("flip", "01-hatch", "0:6"); err != nil {
		t.Fatalf("replay failed: %v", err)
	}
}

func TestReplayRejectsIllegalMove(t *testing.T) {
	if err := replay("flip", "01-hatch", "0:4"); err == nil {
		t.Fatal("expected an error for an unaligned flip")
	}
}

func TestReplayErrors(t *testing.T) {
	tests := []struct {
		name  string
		pack  string
		level string
		moves string
	}{
		{"unknown pack", "twist", "01-hatch", ""},
		{"unknown level", "shift", "99-nope", ""},
		{"bad notation", "shift", "01-hatch", "0-3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := replay(tt.pack, tt.level, tt.moves); err == nil {
				t.Errorf("replay(%q, %q, %q) succeeded, want error", tt.pack, tt.level, tt.moves)
			}
		})
	}
}
