// Package scene loads declarative scene documents and resolves their
// layout. A document is a tree of containers and labels positioned by
// anchor, pivot and stretch rules relative to their parent.
package scene

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/vovakirdan/glyphjam/internal/assets"
	"github.com/vovakirdan/glyphjam/internal/core"
)

// Kind distinguishes the node variants.
type Kind int

const (
	KindContainer Kind = iota
	KindLabel
)

func (k Kind) String() string {
	if k == KindLabel {
		return "label"
	}
	return "container"
}

// Anchor is one of nine reference points of a rectangle.
type Anchor int

const (
	TopLeft Anchor = iota
	TopMiddle
	TopRight
	MiddleLeft
	Middle
	MiddleRight
	BottomLeft
	BottomMiddle
	BottomRight
)

var anchorNames = [...]string{
	"top_left", "top_middle", "top_right",
	"middle_left", "middle", "middle_right",
	"bottom_left", "bottom_middle", "bottom_right",
}

func (a Anchor) String() string {
	if a < 0 || int(a) >= len(anchorNames) {
		return fmt.Sprintf("anchor(%d)", int(a))
	}
	return anchorNames[a]
}

// Norm returns the anchor as fractions of width and height measured from
// the top-left corner.
func (a Anchor) Norm() (float64, float64) {
	col, row := int(a)%3, int(a)/3
	return float64(col) / 2, float64(row) / 2
}

// ParseAnchor accepts snake_case and CamelCase spellings.
func ParseAnchor(s string) (Anchor, bool) {
	name := snakeCase(s)
	for i, n := range anchorNames {
		if n == name {
			return Anchor(i), true
		}
	}
	return 0, false
}

// StretchMode selects the axes a node fills.
type StretchMode int

const (
	StretchNone StretchMode = iota
	StretchX
	StretchY
	StretchXY
)

var stretchNames = [...]string{"none", "x", "y", "xy"}

func (m StretchMode) String() string {
	if m < 0 || int(m) >= len(stretchNames) {
		return fmt.Sprintf("stretch(%d)", int(m))
	}
	return stretchNames[m]
}

// ParseStretchMode accepts "none", "x", "y" and "xy" in any case.
func ParseStretchMode(s string) (StretchMode, bool) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range stretchNames {
		if n == name {
			return StretchMode(i), true
		}
	}
	return 0, false
}

// FillsX reports whether the width comes from the parent.
func (m StretchMode) FillsX() bool { return m == StretchX || m == StretchXY }

// FillsY reports whether the height comes from the parent.
func (m StretchMode) FillsY() bool { return m == StretchY || m == StretchXY }

// Stretch describes how a node fills its parent.
type Stretch struct {
	Mode            StretchMode
	XMargin         float64
	YMargin         float64
	KeepAspectRatio bool
}

// Transform positions a node inside its parent. Offsets are in pixels,
// X grows rightward and Y grows upward.
type Transform struct {
	ID      string
	Anchor  Anchor
	Pivot   Anchor
	Stretch Stretch
	X, Y    float64
	Z       float64
	Width   float64
	Height  float64
}

// Text is the content of a label.
type Text struct {
	Text     string
	Font     assets.Source
	FontSize float64
	Color    core.Color
	Align    Anchor
}

// DefaultFontSize applies when a label does not set font_size.
const DefaultFontSize = 16

// Node is a single element of the arena.
type Node struct {
	Kind       Kind
	Transform  Transform
	Background core.Color // containers only, transparent when unset
	Text       Text       // labels only
	Parent     int        // index of the parent, -1 for the root
	Children   []int
	Depth      int
	Path       string
}

// ID returns the node identifier.
func (n *Node) ID() string {
	return n.Transform.ID
}

// Document is a parsed scene. Nodes are stored in depth-first pre-order,
// so every parent precedes its children and Nodes[0] is the root.
// A Document is immutable once parsed.
type Document struct {
	Name     string
	Title    string
	Checksum string // sha256 of the source bytes
	FilePath string // set when loaded from disk
	Nodes    []Node

	byID map[string]int
}

// Root returns the root node.
func (d *Document) Root() *Node {
	return &d.Nodes[0]
}

// Len returns the number of nodes.
func (d *Document) Len() int {
	return len(d.Nodes)
}

// Lookup finds a node by id.
func (d *Document) Lookup(id string) (*Node, bool) {
	i, ok := d.Index(id)
	if !ok {
		return nil, false
	}
	return &d.Nodes[i], true
}

// Index returns the arena position of the node with the given id.
func (d *Document) Index(id string) (int, bool) {
	i, ok := d.byID[id]
	return i, ok
}

// IDs returns node ids in document order.
func (d *Document) IDs() []string {
	ids := make([]string, len(d.Nodes))
	for i := range d.Nodes {
		ids[i] = d.Nodes[i].ID()
	}
	return ids
}

// Fonts returns the distinct fonts referenced by labels, in document order.
func (d *Document) Fonts() []assets.Source {
	seen := make(map[assets.Source]bool)
	var fonts []assets.Source
	for i := range d.Nodes {
		n := &d.Nodes[i]
		if n.Kind != KindLabel || seen[n.Text.Font] {
			continue
		}
		seen[n.Text.Font] = true
		fonts = append(fonts, n.Text.Font)
	}
	return fonts
}

// snakeCase turns "TopLeft" into "top_left" and lowercases the rest.
func snakeCase(s string) string {
	s = strings.TrimSpace(s)
	var sb strings.Builder
	prevLower := false
	for _, r := range s {
		if unicode.IsUpper(r) && prevLower {
			sb.WriteRune('_')
		}
		prevLower = unicode.IsLower(r) || unicode.IsDigit(r)
		sb.WriteRune(unicode.ToLower(r))
	}
	return sb.String()
}
