package tui

import (
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/glyphjam/internal/core"
	"github.com/vovakirdan/glyphjam/internal/scene"
)

// selectionTint is blended under the selected label.
var selectionTint = core.RGBA(core.ColorHighlight.R, core.ColorHighlight.G, core.ColorHighlight.B, 0.25)

// Paint rasterizes a resolved scene onto the screen. rects holds one
// rectangle per node in document order, sx and sy convert pixels to cells.
// selected is the arena index of the highlighted node, or -1.
func Paint(s *core.Screen, doc *scene.Document, rects []core.RectF, sx, sy float64, selected int) {
	if doc == nil || len(rects) != doc.Len() {
		return
	}
	for _, i := range drawOrder(doc) {
		n := &doc.Nodes[i]
		r := rects[i].Scale(sx, sy)

		switch n.Kind {
		case scene.KindContainer:
			s.PaintRect(r, n.Background)
		case scene.KindLabel:
			if r.H == 0 && rects[i].H > 0 {
				r.H = 1
			}
			fg := n.Text.Color
			if i == selected {
				s.PaintRect(r, selectionTint)
				fg = core.ColorHighlight
			}
			drawLabel(s, r, n.Text.Text, n.Text.Align, fg)
		}
	}
}

// drawOrder lists nodes parents first, siblings by ascending z.
func drawOrder(doc *scene.Document) []int {
	order := make([]int, 0, doc.Len())
	var walk func(i int)
	walk = func(i int) {
		order = append(order, i)
		children := append([]int(nil), doc.Nodes[i].Children...)
		sort.SliceStable(children, func(a, b int) bool {
			return doc.Nodes[children[a]].Transform.Z < doc.Nodes[children[b]].Transform.Z
		})
		for _, c := range children {
			walk(c)
		}
	}
	walk(0)
	return order
}

// drawLabel places the lines of text inside r according to align.
func drawLabel(s *core.Screen, r core.Rect, text string, align scene.Anchor, fg core.Color) {
	ax, ay := align.Norm()
	lines := strings.Split(text, "\n")

	top := r.Y + int(math.Round(ay*float64(r.H-len(lines))))
	for row, line := range lines {
		w := utf8.RuneCountInString(line)
		left := r.X + int(math.Round(ax*float64(r.W-w)))
		s.DrawText(left, top+row, line, fg, r)
	}
}
