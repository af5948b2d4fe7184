package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/glyphjam/internal/config"
	"github.com/vovakirdan/glyphjam/internal/core"
)

// actionOrder decides which action wins when a key is bound twice.
var actionOrder = []core.Action{
	core.ActionQuit,
	core.ActionBack,
	core.ActionPlay,
	core.ActionSelect,
	core.ActionUp,
	core.ActionDown,
	core.ActionLeft,
	core.ActionRight,
}

var actionHelp = map[core.Action]string{
	core.ActionQuit:   "quit",
	core.ActionBack:   "back",
	core.ActionPlay:   "play",
	core.ActionSelect: "select",
	core.ActionUp:     "up",
	core.ActionDown:   "down",
	core.ActionLeft:   "left",
	core.ActionRight:  "right",
}

// KeyMap translates Bubble Tea key messages to scene actions.
// It is built from the bindings configuration and doubles as the
// help.KeyMap of the footer.
type KeyMap struct {
	bindings map[core.Action]key.Binding
}

// NewKeyMap creates a key map from the configured bindings.
func NewKeyMap(b config.BindingsConfig) KeyMap {
	km := KeyMap{bindings: make(map[core.Action]key.Binding)}

	for action, names := range b.ActionKeys() {
		var keys, labels []string
		for _, name := range names {
			keys = append(keys, teaKeys(name)...)
			labels = append(labels, keyLabel(name))
		}
		if len(keys) == 0 {
			continue
		}
		km.bindings[action] = key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(strings.Join(labels, "/"), actionHelp[action]),
		)
	}

	return km
}

// teaKeys returns the key strings Bubble Tea reports for a configured key.
func teaKeys(name string) []string {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "":
		return nil
	case "space", " ":
		return []string{" ", "space"}
	case "escape":
		return []string{"esc"}
	case "return":
		return []string{"enter"}
	}
	return []string{name}
}

func keyLabel(name string) string {
	switch name = strings.TrimSpace(name); name {
	case " ":
		return "space"
	case "up":
		return "↑"
	case "down":
		return "↓"
	case "left":
		return "←"
	case "right":
		return "→"
	}
	return name
}

// Action returns the action bound to a key, or core.ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	for _, a := range actionOrder {
		if b, ok := k.bindings[a]; ok && key.Matches(msg, b) {
			return a
		}
	}
	return core.ActionNone
}

// Binding returns the binding of an action.
func (k KeyMap) Binding(a core.Action) (key.Binding, bool) {
	b, ok := k.bindings[a]
	return b, ok
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return k.collect(core.ActionUp, core.ActionDown, core.ActionSelect, core.ActionPlay, core.ActionBack, core.ActionQuit)
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.collect(core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight),
		k.collect(core.ActionSelect, core.ActionPlay, core.ActionBack, core.ActionQuit),
	}
}

func (k KeyMap) collect(actions ...core.Action) []key.Binding {
	var out []key.Binding
	for _, a := range actions {
		if b, ok := k.bindings[a]; ok {
			out = append(out, b)
		}
	}
	return out
}
