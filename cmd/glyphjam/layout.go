package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/glyphjam/internal/scene"
)

var (
	flagWidth  float64
	flagHeight float64
	flagRecord bool
)

var layoutCmd = &cobra.Command{
	Use:   "layout <scene>",
	Short: "Print the resolved rectangles of a scene",
	Long: `Resolve a scene against a viewport and print one rectangle per node
in screen space (origin top-left, y grows downward).

The viewport defaults to the display config dimensions. With --record the
layout is stored as a snapshot for later comparison with 'glyphjam diff'.

Examples:
  glyphjam layout main_menu
  glyphjam layout main_menu --width 1920 --height 1080
  glyphjam layout ./my_menu.yaml --record`,
	Args: cobra.ExactArgs(1),
	Run:  runLayout,
}

func init() {
	layoutCmd.Flags().Float64Var(&flagWidth, "width", 0, "Viewport width in pixels (default: display config)")
	layoutCmd.Flags().Float64Var(&flagHeight, "height", 0, "Viewport height in pixels (default: display config)")
	layoutCmd.Flags().BoolVar(&flagRecord, "record", false, "Store the layout as a snapshot")
}

func runLayout(cmd *cobra.Command, args []string) {
	logger := loggerFromContext(cmd.Context())
	r := newResolver()
	cfg := loadConfig(r)

	w, h := viewport(flagWidth, flagHeight, cfg.Display.Width(), cfg.Display.Height())

	doc, err := loadDocument(cmd.Context(), r, args[0])
	if err != nil {
		fatal("%v", err)
	}
	layout, err := scene.Resolve(doc, w, h)
	if err != nil {
		fatal("%v", err)
	}

	fmt.Printf("Layout - %s at %gx%g\n", doc.Name, w, h)
	fmt.Println()

	idW := len("Node")
	for i, id := range doc.IDs() {
		idW = max(idW, len(indent(doc.Nodes[i].Depth)+id))
	}
	fmt.Printf("  %-*s  %s\n", idW, "Node", "Rect (x,y wxh)")
	fmt.Printf("  %-*s  %s\n", idW, "----", "--------------")
	for i, id := range doc.IDs() {
		rect := layout[id]
		fmt.Printf("  %-*s  %s\n", idW, indent(doc.Nodes[i].Depth)+id, formatRect(rect.X, rect.Y, rect.W, rect.H))
	}

	if !flagRecord {
		return
	}

	store := openStore()
	defer store.Close()

	id, err := store.SaveSnapshot(doc.Name, doc.Checksum, w, h, layout)
	if err != nil {
		fatal("%v", err)
	}
	logger.Info("recorded snapshot", "id", id, "scene", doc.Name)
}

// viewport picks the flag values over the configured dimensions.
func viewport(flagW, flagH, cfgW, cfgH float64) (float64, float64) {
	w, h := cfgW, cfgH
	if flagW != 0 {
		w = flagW
	}
	if flagH != 0 {
		h = flagH
	}
	return w, h
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}
