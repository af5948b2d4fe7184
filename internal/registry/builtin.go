package registry

import "github.com/vovakirdan/glyphjam/internal/core"

// Built-in scene names.
const (
	MainMenu   = "main_menu"
	NothingYet = "nothing_yet"
)

// Start is the scene the game opens with.
const Start = MainMenu

func init() {
	Register(Entry{
		Name:  MainMenu,
		Title: "Main menu",
		Path:  "ui/mainmenu.yaml",
		Transitions: map[core.Action]string{
			core.ActionPlay: NothingYet,
		},
	})
	Register(Entry{
		Name:  NothingYet,
		Title: "Nothing yet",
		Path:  "ui/nothing_yet.yaml",
		Transitions: map[core.Action]string{
			core.ActionBack: MainMenu,
		},
	})
}
