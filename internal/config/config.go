// Package config provides YAML-based display and input binding
// configuration for the game.
package config

import (
	"fmt"

	"github.com/vovakirdan/glyphjam/internal/core"
)

// File names looked up in every configuration directory.
const (
	DisplayFile  = "display_config.yaml"
	BindingsFile = "bindings_config.yaml"
)

// Axis names understood by the bindings.
const (
	AxisVertical   = "move_vertical"
	AxisHorizontal = "move_horizontal"
)

// DisplayConfig describes the window the scenes are laid out for.
type DisplayConfig struct {
	Title      string     `yaml:"title"`
	Dimensions [2]float64 `yaml:"dimensions"` // logical width and height in pixels
}

// Width returns the logical viewport width.
func (d DisplayConfig) Width() float64 { return d.Dimensions[0] }

// Height returns the logical viewport height.
func (d DisplayConfig) Height() float64 { return d.Dimensions[1] }

// Validate checks that the viewport is usable.
func (d DisplayConfig) Validate() error {
	if d.Width() <= 0 || d.Height() <= 0 {
		return fmt.Errorf("display dimensions must be positive, got %vx%v", d.Width(), d.Height())
	}
	return nil
}

// Axis binds keys to both directions of an axis.
type Axis struct {
	Pos []string `yaml:"pos"`
	Neg []string `yaml:"neg"`
}

// MenuItem makes a node selectable and names the action it triggers.
type MenuItem struct {
	Node   string `yaml:"node"`
	Action string `yaml:"action"`
}

// BindingsConfig maps keys to actions and lists the menu of each scene.
type BindingsConfig struct {
	Axes    map[string]Axis       `yaml:"axes"`
	Actions map[string][]string   `yaml:"actions"`
	Menus   map[string][]MenuItem `yaml:"menus"`
}

// Validate checks that every action and axis name is known.
func (b BindingsConfig) Validate() error {
	for name := range b.Axes {
		if name != AxisVertical && name != AxisHorizontal {
			return fmt.Errorf("unknown axis %q", name)
		}
	}
	for name := range b.Actions {
		if _, ok := core.ParseAction(name); !ok {
			return fmt.Errorf("unknown action %q", name)
		}
	}
	for scene, items := range b.Menus {
		for _, item := range items {
			if item.Node == "" {
				return fmt.Errorf("menu %s: item without node", scene)
			}
			if _, ok := core.ParseAction(item.Action); !ok {
				return fmt.Errorf("menu %s: unknown action %q for %s", scene, item.Action, item.Node)
			}
		}
	}
	return nil
}

// ActionKeys flattens axes and actions into keys per action.
// Axes contribute up/down and right/left.
func (b BindingsConfig) ActionKeys() map[core.Action][]string {
	keys := make(map[core.Action][]string)

	if v, ok := b.Axes[AxisVertical]; ok {
		keys[core.ActionUp] = append(keys[core.ActionUp], v.Pos...)
		keys[core.ActionDown] = append(keys[core.ActionDown], v.Neg...)
	}
	if h, ok := b.Axes[AxisHorizontal]; ok {
		keys[core.ActionRight] = append(keys[core.ActionRight], h.Pos...)
		keys[core.ActionLeft] = append(keys[core.ActionLeft], h.Neg...)
	}
	for name, list := range b.Actions {
		if a, ok := core.ParseAction(name); ok {
			keys[a] = append(keys[a], list...)
		}
	}

	return keys
}

// Menu returns the menu items configured for a scene.
func (b BindingsConfig) Menu(scene string) []MenuItem {
	return b.Menus[scene]
}

// Config bundles everything loaded at startup.
type Config struct {
	Display  DisplayConfig
	Bindings BindingsConfig
}
