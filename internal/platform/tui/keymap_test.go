package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/glyphjam/internal/config"
	"github.com/vovakirdan/glyphjam/internal/core"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapDefaultBindings(t *testing.T) {
	km := NewKeyMap(config.DefaultBindingsConfig())

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"p plays", runes("p"), core.ActionPlay},
		{"q quits", runes("q"), core.ActionQuit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"enter selects", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionSelect},
		{"b goes back", runes("b"), core.ActionBack},
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"vim up", runes("k"), core.ActionUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"vim down", runes("j"), core.ActionDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"unbound", runes("z"), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.Action(tt.msg); got != tt.expected {
				t.Errorf("Action(%q) = %v, expected %v", tt.msg.String(), got, tt.expected)
			}
		})
	}
}

func TestKeyMapCustomBindings(t *testing.T) {
	km := NewKeyMap(config.BindingsConfig{
		Actions: map[string][]string{
			"play": {"Return"},
			"quit": {"x", "p"},
		},
	})

	if got := km.Action(tea.KeyMsg{Type: tea.KeyEnter}); got != core.ActionPlay {
		t.Errorf("Return should map to play, got %v", got)
	}
	// A key bound twice resolves to the earlier action in priority order
	if got := km.Action(runes("p")); got != core.ActionQuit {
		t.Errorf("p is bound to quit and play, expected quit, got %v", got)
	}
	if got := km.Action(tea.KeyMsg{Type: tea.KeyUp}); got != core.ActionNone {
		t.Errorf("no axes configured, up should be unbound, got %v", got)
	}
	if _, ok := km.Binding(core.ActionBack); ok {
		t.Error("back has no keys and should have no binding")
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := NewKeyMap(config.DefaultBindingsConfig())

	short := km.ShortHelp()
	if len(short) != 6 {
		t.Fatalf("ShortHelp has %d bindings, expected 6", len(short))
	}
	if got := short[0].Help(); got.Key != "↑/k" || got.Desc != "up" {
		t.Errorf("first help entry = %+v", got)
	}

	b, ok := km.Binding(core.ActionSelect)
	if !ok {
		t.Fatal("select should be bound")
	}
	if key := b.Help().Key; !strings.Contains(key, "space") {
		t.Errorf("select help = %q, expected it to mention space", key)
	}

	full := km.FullHelp()
	if len(full) != 2 || len(full[0]) != 4 || len(full[1]) != 4 {
		t.Errorf("FullHelp shape = %v", full)
	}
}
