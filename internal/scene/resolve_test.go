package scene

import (
	"errors"
	"reflect"
	"testing"

	"github.com/vovakirdan/glyphjam/internal/core"
)

const tolerance = 1e-9

func mustParse(t *testing.T, doc string) *Document {
	t.Helper()
	d, err := ParseYAML([]byte(doc))
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}
	return d
}

func TestResolveSample(t *testing.T) {
	doc, err := ParseYAML(readTestdata(t, "sample.yaml"))
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}

	layout, err := Resolve(doc, 1000, 600)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	expected := Layout{
		"root":  core.NewRectF(10, 10, 980, 580),
		"title": core.NewRectF(400, 30, 200, 40),
		"panel": core.NewRectF(680, 480, 300, 100),
		"hint":  core.NewRectF(680, 520, 100, 20),
	}
	if len(layout) != len(expected) {
		t.Fatalf("layout has %d rects, expected %d", len(layout), len(expected))
	}
	for id, want := range expected {
		if got := layout[id]; !got.ApproxEqual(want, tolerance) {
			t.Errorf("%s = %+v, expected %+v", id, got, want)
		}
	}
}

func TestStretchIgnoresLiteralSize(t *testing.T) {
	parent := core.NewRectF(0, 0, 500, 300)

	tests := []struct {
		name    string
		mode    StretchMode
		margin  float64
		literal float64
	}{
		{"x zero literal", StretchX, 20, 0},
		{"x small literal", StretchX, 20, 10},
		{"x huge literal", StretchX, 20, 9000},
		{"xy no margin", StretchXY, 0, 123},
		{"x margin eats everything", StretchX, 250, 40},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr := Transform{
				ID:      "n",
				Anchor:  Middle,
				Pivot:   Middle,
				Width:   tc.literal,
				Height:  30,
				Stretch: Stretch{Mode: tc.mode, XMargin: tc.margin},
			}
			r, err := Place(tr, parent)
			if err != nil {
				t.Fatalf("Place failed: %v", err)
			}
			if want := parent.W - 2*tc.margin; r.W != want {
				t.Errorf("width = %v, expected %v", r.W, want)
			}
			if tc.mode == StretchX && r.H != 30 {
				t.Errorf("unstretched height = %v, expected literal 30", r.H)
			}
			if tc.mode == StretchXY && r.H != parent.H {
				t.Errorf("stretched height = %v, expected %v", r.H, parent.H)
			}
		})
	}
}

func TestStretchY(t *testing.T) {
	tr := Transform{ID: "n", Anchor: TopLeft, Pivot: TopLeft, Width: 40, Height: 1, Stretch: Stretch{Mode: StretchY, YMargin: 15}}
	r, err := Place(tr, core.NewRectF(0, 0, 200, 100))
	if err != nil {
		t.Fatalf("Place failed: %v", err)
	}
	if !r.ApproxEqual(core.NewRectF(0, 0, 40, 70), tolerance) {
		t.Errorf("rect = %+v", r)
	}
}

func TestMiddleAnchorCentersPivot(t *testing.T) {
	parents := []core.RectF{
		core.NewRectF(0, 0, 1280, 720),
		core.NewRectF(33, 17, 101, 57),
		core.NewRectF(-50, 20, 10, 10),
	}

	for _, parent := range parents {
		tr := Transform{ID: "n", Anchor: Middle, Pivot: Middle, Width: 64, Height: 24}
		r, err := Place(tr, parent)
		if err != nil {
			t.Fatalf("Place failed: %v", err)
		}

		cx, cy := r.Center()
		px, py := parent.Center()
		if cx != px || cy != py {
			t.Errorf("center = (%v, %v), expected parent center (%v, %v)", cx, cy, px, py)
		}
	}
}

func TestOffsetsGrowRightAndUp(t *testing.T) {
	parent := core.NewRectF(0, 0, 100, 100)

	for _, a := range []Anchor{TopLeft, Middle, BottomRight} {
		base, _ := Place(Transform{ID: "n", Anchor: a, Pivot: a, Width: 10, Height: 10}, parent)
		moved, _ := Place(Transform{ID: "n", Anchor: a, Pivot: a, X: 5, Y: 7, Width: 10, Height: 10}, parent)

		if moved.X-base.X != 5 {
			t.Errorf("%s: positive x should move right by 5, moved %v", a, moved.X-base.X)
		}
		if base.Y-moved.Y != 7 {
			t.Errorf("%s: positive y should move up by 7, moved %v", a, base.Y-moved.Y)
		}
	}
}

func TestPivotOverridesAnchor(t *testing.T) {
	parent := core.NewRectF(0, 0, 100, 100)
	tr := Transform{ID: "n", Anchor: Middle, Pivot: TopLeft, Width: 20, Height: 10}

	r, err := Place(tr, parent)
	if err != nil {
		t.Fatalf("Place failed: %v", err)
	}
	if r.X != 50 || r.Y != 50 {
		t.Errorf("top-left pivot should sit on the parent center, got (%v, %v)", r.X, r.Y)
	}
}

func TestKeepAspectRatioCentersShortfall(t *testing.T) {
	tests := []struct {
		name     string
		parent   core.RectF
		stretch  Stretch
		expected core.RectF
	}{
		{
			name:     "wide box shrinks width",
			parent:   core.NewRectF(0, 0, 1280, 720),
			stretch:  Stretch{Mode: StretchXY, YMargin: 60, KeepAspectRatio: true},
			expected: core.NewRectF(240, 60, 800, 600),
		},
		{
			name:     "tall box shrinks height",
			parent:   core.NewRectF(0, 0, 400, 1000),
			stretch:  Stretch{Mode: StretchXY, XMargin: 0, KeepAspectRatio: true},
			expected: core.NewRectF(0, 350, 400, 300),
		},
		{
			name:     "exact fit",
			parent:   core.NewRectF(10, 10, 820, 620),
			stretch:  Stretch{Mode: StretchXY, XMargin: 10, YMargin: 10, KeepAspectRatio: true},
			expected: core.NewRectF(20, 20, 800, 600),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr := Transform{ID: "n", Anchor: Middle, Pivot: Middle, Width: 800, Height: 600, Stretch: tc.stretch}
			r, err := Place(tr, tc.parent)
			if err != nil {
				t.Fatalf("Place failed: %v", err)
			}
			if !r.ApproxEqual(tc.expected, tolerance) {
				t.Errorf("rect = %+v, expected %+v", r, tc.expected)
			}
			if r.W*600 != r.H*800 {
				t.Errorf("aspect ratio not preserved: %vx%v", r.W, r.H)
			}
		})
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	doc, err := ParseYAML(readTestdata(t, "sample.yaml"))
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}

	first, err := Resolve(doc, 1024, 768)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	second, err := Resolve(doc, 1024, 768)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("resolving twice gave different layouts")
	}
}

func TestResolveDegenerateNode(t *testing.T) {
	doc := mustParse(t, `
scene: x
root:
  container:
    transform: {id: root, anchor: middle, width: 100, height: 100}
    children:
      - container:
          transform:
            id: squeezed
            anchor: middle
            width: 10
            height: 10
            stretch: {mode: x, x_margin: 60}
`)

	_, err := Resolve(doc, 800, 600)
	if !errors.Is(err, ErrLayout) {
		t.Fatalf("expected ErrLayout, got %v", err)
	}
	var le *LayoutError
	if !errors.As(err, &le) || le.NodeID != "squeezed" {
		t.Errorf("LayoutError should name the node, got %v", err)
	}
}

func TestResolveRejectsBadViewport(t *testing.T) {
	doc := mustParse(t, "scene: x\nroot:\n  container:\n    transform: {id: a, anchor: middle, width: 1, height: 1}\n")

	for _, vp := range [][2]float64{{0, 720}, {1280, 0}, {-1, -1}} {
		if _, err := Resolve(doc, vp[0], vp[1]); !errors.Is(err, ErrLayout) {
			t.Errorf("viewport %v: expected ErrLayout, got %v", vp, err)
		}
	}
}

func TestResolveContainsChildren(t *testing.T) {
	doc, err := ParseYAML(readTestdata(t, "sample.yaml"))
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}

	for _, vp := range [][2]float64{{1280, 720}, {800, 600}, {1920, 1080}} {
		rects, err := ResolveRects(doc, vp[0], vp[1])
		if err != nil {
			t.Fatalf("ResolveRects failed: %v", err)
		}
		if len(rects) != doc.Len() {
			t.Fatalf("got %d rects for %d nodes", len(rects), doc.Len())
		}
		for i, n := range doc.Nodes {
			if n.Parent < 0 {
				continue
			}
			if !rects[n.Parent].ContainsRect(rects[i], tolerance) {
				t.Errorf("viewport %v: %s %+v escapes its parent %+v", vp, n.ID(), rects[i], rects[n.Parent])
			}
		}
	}
}

func TestLayoutIDsSorted(t *testing.T) {
	l := Layout{"b": {}, "a": {}, "c": {}}
	if got := l.IDs(); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("IDs() = %v", got)
	}
}
