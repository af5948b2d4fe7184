package scene

import (
	"fmt"
	"math"
	"sort"

	"github.com/vovakirdan/glyphjam/internal/core"
)

// Layout maps node ids to rectangles in viewport pixels, origin top-left.
type Layout map[string]core.RectF

// IDs returns the ids of the layout in sorted order.
func (l Layout) IDs() []string {
	ids := make([]string, 0, len(l))
	for id := range l {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Resolve computes the rectangle of every node for a viewport of the
// given size. It is a pure function of the document and the viewport.
func Resolve(doc *Document, width, height float64) (Layout, error) {
	rects, err := ResolveRects(doc, width, height)
	if err != nil {
		return nil, err
	}

	layout := make(Layout, len(rects))
	for i, r := range rects {
		layout[doc.Nodes[i].ID()] = r
	}
	return layout, nil
}

// ResolveRects is Resolve returning rectangles indexed like doc.Nodes.
func ResolveRects(doc *Document, width, height float64) ([]core.RectF, error) {
	if !finite(width) || !finite(height) || width <= 0 || height <= 0 {
		return nil, &LayoutError{Message: fmt.Sprintf("viewport must be positive, got %vx%v", width, height)}
	}

	viewport := core.NewRectF(0, 0, width, height)
	rects := make([]core.RectF, len(doc.Nodes))

	// Pre-order guarantees the parent is resolved before its children.
	for i := range doc.Nodes {
		n := &doc.Nodes[i]
		parent := viewport
		if n.Parent >= 0 {
			parent = rects[n.Parent]
		}

		r, err := Place(n.Transform, parent)
		if err != nil {
			return nil, err
		}
		rects[i] = r
	}

	return rects, nil
}

// Place computes the rectangle of a single node inside parent.
//
// Stretched axes take the parent size minus both margins, the other axes
// keep the literal size. The anchor point of the parent, moved by the
// offsets, receives the pivot point of the node. With keep_aspect_ratio
// the filled box shrinks to the literal aspect ratio, centered.
func Place(t Transform, parent core.RectF) (core.RectF, error) {
	w, h := t.Width, t.Height
	if t.Stretch.Mode.FillsX() {
		w = parent.W - 2*t.Stretch.XMargin
	}
	if t.Stretch.Mode.FillsY() {
		h = parent.H - 2*t.Stretch.YMargin
	}
	if w < 0 || h < 0 {
		return core.RectF{}, &LayoutError{
			NodeID:  t.ID,
			Message: fmt.Sprintf("resolved size %vx%v is negative", w, h),
		}
	}

	ax, ay := t.Anchor.Norm()
	px := parent.X + ax*parent.W + t.X
	py := parent.Y + ay*parent.H - t.Y

	vx, vy := t.Pivot.Norm()
	r := core.NewRectF(px-vx*w, py-vy*h, w, h)

	if t.Stretch.KeepAspectRatio && t.Width > 0 && t.Height > 0 {
		scale := math.Min(w/t.Width, h/t.Height)
		aw, ah := t.Width*scale, t.Height*scale
		r = core.NewRectF(r.X+(w-aw)/2, r.Y+(h-ah)/2, aw, ah)
	}

	return r, nil
}
