// glyphjam presents declarative menu scenes in the terminal.
//
// Usage:
//
//	glyphjam play [scene]        - Play starting from a scene (default: main_menu)
//	glyphjam list                - List registered and on-disk scenes
//	glyphjam layout <scene>      - Print the resolved rectangles of a scene
//	glyphjam snapshots [scene]   - List recorded layout snapshots
//	glyphjam diff <scene> [id]   - Compare a snapshot with the current layout
//	glyphjam graph <scene>       - Export the scene tree as Graphviz
//	glyphjam serve               - Start SSH server for remote sessions
//	glyphjam api                 - Serve layouts over HTTP
//
// Global flags:
//
//	--root <dir>     - Application root holding assets/ and resources/
//	--builtin        - Use the scene documents compiled into the binary
//	--db <path>      - Set database path (default: ~/.glyphjam/snapshots.db)
//	-v, --verbose    - Enable debug logging
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagRoot     string
	flagBuiltin  bool
	flagDBPath   string
	flagVerbose  bool
	flagDisplay  string
	flagBindings string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "glyphjam",
	Short: "Glyph Jam - declarative menu scenes in your terminal",
	Long: `Glyph Jam loads scene documents (containers and labels placed by
anchor, pivot and stretch), resolves them against a logical viewport and
draws them in the terminal.

Available commands:
  play       - Open the game at its main menu
  list       - Show all known scenes
  layout     - Print resolved rectangles, optionally recording a snapshot
  snapshots  - List or delete recorded snapshots
  diff       - Compare layouts between snapshots and the current documents
  graph      - Export a scene tree as DOT or SVG
  serve      - Start SSH server for remote sessions
  api        - Serve scenes and layouts over HTTP

Examples:
  glyphjam play
  glyphjam play --scene ./assets/ui/mainmenu.yaml --watch
  glyphjam layout main_menu --width 1920 --height 1080
  glyphjam graph main_menu --svg menu.svg`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		level := log.InfoLevel
		if flagVerbose {
			level = log.DebugLevel
		}
		cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagRoot, "root", "", "Application root (default: directory of the executable)")
	rootCmd.PersistentFlags().BoolVar(&flagBuiltin, "builtin", false, "Use the embedded scene documents")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.glyphjam/snapshots.db", "Path to snapshot database")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagDisplay, "display-config", "", "Path to custom display config YAML")
	rootCmd.PersistentFlags().StringVar(&flagBindings, "bindings-config", "", "Path to custom bindings config YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(layoutCmd)
	rootCmd.AddCommand(snapshotsCmd)
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(graphCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(apiCmd)
}
