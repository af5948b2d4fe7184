package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/glyphjam/internal/platform/tui"
	"github.com/vovakirdan/glyphjam/internal/registry"
)

var (
	flagSceneFile string
	flagWatch     bool
)

var playCmd = &cobra.Command{
	Use:   "play [scene]",
	Short: "Open the game at a scene",
	Long: `Open the game at the given registered scene (default: main_menu).

Scene documents are read from <root>/assets/ui and fall back to the copies
embedded in the binary when the file is missing. A font that cannot be
resolved stops the scene from starting.

Controls:
  Up/Down, k/j  - Move the cursor
  Enter/Space   - Activate the highlighted item
  P             - Play
  B/Esc         - Back (quits from the main menu)
  Q/Ctrl+C      - Quit

Examples:
  glyphjam play
  glyphjam play nothing_yet
  glyphjam play --builtin
  glyphjam play --scene ./my_menu.yaml --watch`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagSceneFile, "scene", "", "Open a scene document file instead of a registered scene")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload file-backed scenes when they change")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := loggerFromContext(cmd.Context())

	name := registry.Start
	if len(args) == 1 {
		name = args[0]
	}
	if flagSceneFile == "" && !registry.Exists(name) {
		fatal("unknown scene %q\nRun 'glyphjam list' to see available scenes.", name)
	}

	r := newResolver()
	cfg := loadConfig(r)

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	opts := tui.Options{
		Resolver: r,
		Config:   cfg,
		Scene:    name,
		File:     flagSceneFile,
		Builtin:  flagBuiltin,
		Logger:   logger,
		ScreenW:  width,
		ScreenH:  height,
	}

	if flagWatch {
		dirs := watchDirs(r.Path("ui"), flagSceneFile)
		if len(dirs) == 0 {
			logger.Warn("nothing to watch", "dir", r.Path("ui"))
		} else {
			w, err := tui.NewWatcher(tui.DefaultDebounce, dirs...)
			if err != nil {
				fatal("%v", err)
			}
			opts.Watcher = w
			logger.Debug("watching scene documents", "dirs", dirs)
		}
	}

	if err := runScene(opts, tui.Run); err != nil {
		fatal("%v", err)
	}
}

// runScene runs the model and closes the watcher, if any, before returning.
// Deferred calls in runPlay do not run once fatal exits.
func runScene(opts tui.Options, run func(tui.Options) error) error {
	if opts.Watcher != nil {
		defer opts.Watcher.Close()
	}
	return run(opts)
}

// watchDirs lists the existing directories holding file-backed scenes.
func watchDirs(uiDir, sceneFile string) []string {
	var dirs []string
	seen := make(map[string]bool)
	add := func(dir string) {
		abs, err := filepath.Abs(dir)
		if err != nil || seen[abs] {
			return
		}
		if info, err := os.Stat(abs); err != nil || !info.IsDir() {
			return
		}
		seen[abs] = true
		dirs = append(dirs, abs)
	}

	if !flagBuiltin {
		add(uiDir)
	}
	if sceneFile != "" {
		add(filepath.Dir(sceneFile))
	}
	return dirs
}
