package core

import "testing"

func TestParseAction(t *testing.T) {
	tests := []struct {
		name     string
		expected Action
		ok       bool
	}{
		{"play", ActionPlay, true},
		{"Quit", ActionQuit, true},
		{" select ", ActionSelect, true},
		{"none", ActionNone, false},
		{"jump", ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseAction(tc.name)
			if got != tc.expected || ok != tc.ok {
				t.Errorf("ParseAction(%q) = (%v, %v), expected (%v, %v)", tc.name, got, ok, tc.expected, tc.ok)
			}
		})
	}
}

func TestActionStringRoundTrip(t *testing.T) {
	for _, a := range []Action{ActionUp, ActionDown, ActionLeft, ActionRight, ActionSelect, ActionPlay, ActionBack, ActionQuit} {
		parsed, ok := ParseAction(a.String())
		if !ok || parsed != a {
			t.Errorf("ParseAction(%q) = %v, expected %v", a.String(), parsed, a)
		}
	}
	if Action(99).String() != "unknown" {
		t.Error("out of range action should be unknown")
	}
}

func TestRuntimeConfigCellScale(t *testing.T) {
	cfg := DefaultConfig()
	sx, sy := cfg.CellScale()
	if sx != 80.0/1280.0 || sy != 24.0/720.0 {
		t.Errorf("CellScale() = (%v, %v)", sx, sy)
	}

	cfg.ViewportW = 0
	if sx, sy := cfg.CellScale(); sx != 0 || sy != 0 {
		t.Error("zero viewport should give zero scale")
	}
}
