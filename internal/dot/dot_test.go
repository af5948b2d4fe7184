package dot

import (
	"context"
	"strings"
	"testing"

	"github.com/vovakirdan/glyphjam/internal/core"
	"github.com/vovakirdan/glyphjam/internal/scene"
)

const doc = `
scene: tree
root:
  container:
    transform: {id: root, anchor: middle, width: 100, height: 100}
    background: [1, 0, 0, 1]
    children:
      - label:
          transform: {id: greeting, anchor: top_left, width: 50, height: 10}
          text: {text: hi, font: {kind: embedded, path: mono}, color: [1, 1, 1, 1]}
      - container:
          transform: {id: box, anchor: bottom_right, width: 20, height: 20}
`

func parse(t *testing.T) *scene.Document {
	t.Helper()
	d, err := scene.ParseYAML([]byte(doc))
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}
	return d
}

func TestToDOT(t *testing.T) {
	out := ToDOT(parse(t), Options{})

	for _, want := range []string{
		`digraph "tree" {`,
		`"root" -> "greeting";`,
		`"root" -> "box";`,
		`color="#ff0000"`,
		`fillcolor=lightyellow`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("ToDOT() missing %q in:\n%s", want, out)
		}
	}
	if strings.Index(out, `-> "greeting"`) > strings.Index(out, `-> "box"`) {
		t.Error("edges should follow document order")
	}
}

func TestToDOTWithLayout(t *testing.T) {
	layout := scene.Layout{"box": core.NewRectF(80, 80, 20, 20)}
	out := ToDOT(parse(t), Options{Layout: layout})

	if !strings.Contains(out, `80,80 20x20`) {
		t.Errorf("layout not included:\n%s", out)
	}
}

func TestRenderSVG(t *testing.T) {
	svg, err := RenderSVG(context.Background(), ToDOT(parse(t), Options{}))
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}

	if !strings.Contains(string(svg), "<svg") {
		t.Error("RenderSVG() output missing <svg> tag")
	}
}

func TestRenderSVG_InvalidDOT(t *testing.T) {
	if _, err := RenderSVG(context.Background(), `not valid DOT {{{`); err == nil {
		t.Error("RenderSVG() should return error for invalid DOT")
	}
}
