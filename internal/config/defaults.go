package config

import (
	"io/fs"

	"github.com/vovakirdan/glyphjam"
	"github.com/vovakirdan/glyphjam/internal/core"
)

// defaultResources holds the copy of resources/ compiled into the binary.
var defaultResources fs.FS = glyphjam.Resources()

// DefaultDisplayConfig returns the hardcoded display configuration.
func DefaultDisplayConfig() DisplayConfig {
	return DisplayConfig{
		Title:      "Glyph Jam",
		Dimensions: [2]float64{core.DefaultViewportW, core.DefaultViewportH},
	}
}

// DefaultBindingsConfig returns the hardcoded bindings.
func DefaultBindingsConfig() BindingsConfig {
	return BindingsConfig{
		Axes: map[string]Axis{
			AxisVertical:   {Pos: []string{"up", "k"}, Neg: []string{"down", "j"}},
			AxisHorizontal: {Pos: []string{"right", "l"}, Neg: []string{"left", "h"}},
		},
		Actions: map[string][]string{
			"play":   {"p"},
			"quit":   {"q", "ctrl+c"},
			"select": {"enter", "space"},
			"back":   {"b", "esc"},
		},
		Menus: map[string][]MenuItem{
			"main_menu": {
				{Node: "menu_selection_play_game", Action: "play"},
				{Node: "menu_selection_quit", Action: "quit"},
			},
			"nothing_yet": {
				{Node: "nothing_back", Action: "back"},
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a config file.
func GetDefaultYAML(filename string) []byte {
	data, err := fs.ReadFile(defaultResources, filename)
	if err != nil {
		return nil
	}
	return data
}
