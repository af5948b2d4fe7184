package core

import "strings"

// Action represents a semantic menu action, abstracted from physical key presses.
// Scenes work with these intents; the platform maps keys onto them.
type Action int

const (
	ActionNone   Action = iota
	ActionUp            // move_vertical positive
	ActionDown          // move_vertical negative
	ActionLeft          // move_horizontal negative
	ActionRight         // move_horizontal positive
	ActionSelect        // activate the item under the cursor
	ActionPlay          // start the game
	ActionBack          // leave the current scene
	ActionQuit          // exit the application
)

var actionNames = map[Action]string{
	ActionNone:   "none",
	ActionUp:     "up",
	ActionDown:   "down",
	ActionLeft:   "left",
	ActionRight:  "right",
	ActionSelect: "select",
	ActionPlay:   "play",
	ActionBack:   "back",
	ActionQuit:   "quit",
}

// String returns the configuration name of the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// ParseAction looks up an action by its configuration name.
func ParseAction(name string) (Action, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for a, n := range actionNames {
		if n == name && a != ActionNone {
			return a, true
		}
	}
	return ActionNone, false
}
