// Package dot exports scene trees as Graphviz graphs.
package dot

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/vovakirdan/glyphjam/internal/scene"
)

// Options configures the exported graph.
type Options struct {
	// Layout adds the resolved rectangle of each node to its label.
	// Nodes missing from the layout keep the short label.
	Layout scene.Layout
}

// ToDOT converts a scene document to Graphviz DOT format. Every node becomes
// a box labelled with its id and kind, edges run from parent to child in
// document order. The result can be rendered with [RenderSVG].
func ToDOT(doc *scene.Document, opts Options) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph %q {\n", doc.Name)
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontname=monospace];\n")
	buf.WriteString("\n")

	for i := range doc.Nodes {
		n := &doc.Nodes[i]
		attrs := []string{fmt.Sprintf("label=%q", label(n, opts))}
		if n.Kind == scene.KindLabel {
			attrs = append(attrs, "fillcolor=lightyellow")
		}
		if bg := n.Background; !bg.IsTransparent() {
			attrs = append(attrs, fmt.Sprintf("color=%q", bg.Hex()))
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID(), strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for i := range doc.Nodes {
		n := &doc.Nodes[i]
		for _, c := range n.Children {
			fmt.Fprintf(&buf, "  %q -> %q;\n", n.ID(), doc.Nodes[c].ID())
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func label(n *scene.Node, opts Options) string {
	text := fmt.Sprintf("%s\n%s", n.ID(), n.Kind)
	if n.Kind == scene.KindLabel {
		text += fmt.Sprintf("\n%q", n.Text.Text)
	}
	if r, ok := opts.Layout[n.ID()]; ok {
		text += fmt.Sprintf("\n%g,%g %gx%g", r.X, r.Y, r.W, r.H)
	}
	return text
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
