package storage

import (
	"github.com/vovakirdan/glyphjam/internal/core"
	"github.com/vovakirdan/glyphjam/internal/scene"
)

// Move records a node whose rectangle changed.
type Move struct {
	NodeID string
	Old    core.RectF
	New    core.RectF
}

// LayoutDiff lists the differences between two layouts. Ids are sorted.
type LayoutDiff struct {
	Added   []string
	Removed []string
	Moved   []Move
}

// Empty reports whether the layouts matched.
func (d LayoutDiff) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0 && len(d.Moved) == 0
}

// Diff compares two layouts. Rectangles whose edges all lie within tol
// of each other count as unchanged.
func Diff(before, after scene.Layout, tol float64) LayoutDiff {
	var d LayoutDiff

	for _, id := range before.IDs() {
		n, ok := after[id]
		if !ok {
			d.Removed = append(d.Removed, id)
			continue
		}
		if o := before[id]; !o.ApproxEqual(n, tol) {
			d.Moved = append(d.Moved, Move{NodeID: id, Old: o, New: n})
		}
	}
	for _, id := range after.IDs() {
		if _, ok := before[id]; !ok {
			d.Added = append(d.Added, id)
		}
	}

	return d
}
