package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/glyphjam/internal/dot"
	"github.com/vovakirdan/glyphjam/internal/scene"
)

var (
	flagSVG        string
	flagWithLayout bool
)

var graphCmd = &cobra.Command{
	Use:   "graph <scene>",
	Short: "Export a scene tree as Graphviz",
	Long: `Print the node tree of a scene in DOT format, or render it to SVG.

Examples:
  glyphjam graph main_menu | dot -Tpng > menu.png
  glyphjam graph main_menu --layout --svg menu.svg`,
	Args: cobra.ExactArgs(1),
	Run:  runGraph,
}

func init() {
	graphCmd.Flags().StringVar(&flagSVG, "svg", "", "Render to an SVG file instead of printing DOT")
	graphCmd.Flags().BoolVar(&flagWithLayout, "layout", false, "Include resolved rectangles in node labels")
}

func runGraph(cmd *cobra.Command, args []string) {
	logger := loggerFromContext(cmd.Context())
	r := newResolver()

	doc, err := loadDocument(cmd.Context(), r, args[0])
	if err != nil {
		fatal("%v", err)
	}

	var opts dot.Options
	if flagWithLayout {
		cfg := loadConfig(r)
		layout, err := scene.Resolve(doc, cfg.Display.Width(), cfg.Display.Height())
		if err != nil {
			fatal("%v", err)
		}
		opts.Layout = layout
	}

	src := dot.ToDOT(doc, opts)
	if flagSVG == "" {
		fmt.Print(src)
		return
	}

	svg, err := dot.RenderSVG(cmd.Context(), src)
	if err != nil {
		fatal("%v", err)
	}
	if err := os.WriteFile(flagSVG, svg, 0o644); err != nil {
		fatal("writing %s: %v", flagSVG, err)
	}
	logger.Info("wrote graph", "scene", doc.Name, "file", flagSVG, "nodes", doc.Len())
}
