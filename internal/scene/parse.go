package scene

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/vovakirdan/glyphjam/internal/assets"
	"github.com/vovakirdan/glyphjam/internal/core"
	"github.com/vovakirdan/glyphjam/internal/scene/formats"
)

// Format names a document encoding.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

func (f Format) String() string {
	if f == FormatTOML {
		return "toml"
	}
	return "yaml"
}

// FormatForPath picks the encoding from a file extension.
func FormatForPath(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, true
	case ".toml":
		return FormatTOML, true
	}
	return 0, false
}

// Parse validates a document and builds its node tree. Any problem
// rejects the whole document with a *FormatError.
func Parse(data []byte, format Format) (*Document, error) {
	parse := formats.ParseYAML
	if format == FormatTOML {
		parse = formats.ParseTOML
	}

	raw, err := parse(data)
	if err != nil {
		return nil, decodeError(err)
	}

	b := &builder{doc: &Document{byID: make(map[string]int)}}
	if err := b.document(raw); err != nil {
		return nil, err
	}

	sum := sha256.Sum256(data)
	b.doc.Checksum = hex.EncodeToString(sum[:])
	return b.doc, nil
}

// ParseYAML is Parse with FormatYAML.
func ParseYAML(data []byte) (*Document, error) {
	return Parse(data, FormatYAML)
}

// ParseTOML is Parse with FormatTOML.
func ParseTOML(data []byte) (*Document, error) {
	return Parse(data, FormatTOML)
}

func decodeError(err error) *FormatError {
	code := CodeSyntax
	switch {
	case errors.Is(err, formats.ErrUnknownField):
		code = CodeUnknownField
	case errors.Is(err, formats.ErrType):
		code = CodeInvalidValue
	}
	return &FormatError{Code: code, Message: err.Error()}
}

type builder struct {
	doc *Document
}

func (b *builder) document(raw *formats.Document) error {
	if raw.Scene == nil {
		return formatErr(CodeMissingField, "scene", "scene name is required")
	}
	if *raw.Scene == "" {
		return formatErr(CodeInvalidValue, "scene", "scene name must not be empty")
	}
	if raw.Root == nil {
		return formatErr(CodeMissingField, "root", "root node is required")
	}

	b.doc.Name = *raw.Scene
	b.doc.Title = raw.Title
	_, err := b.node(raw.Root, -1, 0, "root")
	return err
}

// node appends raw and its subtree in pre-order and returns its index.
func (b *builder) node(raw *formats.Node, parent, depth int, path string) (int, error) {
	if raw.Container != nil && raw.Label != nil {
		return 0, formatErr(CodeInvalidValue, path, "node must be a container or a label, not both")
	}
	if raw.Container == nil && raw.Label == nil {
		return 0, formatErr(CodeMissingField, path, "node must be a container or a label")
	}

	n := Node{Parent: parent, Depth: depth, Path: path}

	var rawTransform *formats.Transform
	if raw.Container != nil {
		n.Kind = KindContainer
		rawTransform = raw.Container.Transform
	} else {
		n.Kind = KindLabel
		rawTransform = raw.Label.Transform
	}
	t, err := parseTransform(rawTransform, path+".transform")
	if err != nil {
		return 0, err
	}
	n.Transform = t

	// The transform is checked before the kind-specific fields.
	if n.Kind == KindContainer {
		if raw.Container.Background != nil {
			bg, err := parseColor(raw.Container.Background, path+".background")
			if err != nil {
				return 0, err
			}
			n.Background = bg
		}
	} else {
		text, err := parseText(raw.Label.Text, path+".text")
		if err != nil {
			return 0, err
		}
		n.Text = text
	}

	if prev, dup := b.doc.byID[t.ID]; dup {
		return 0, formatErr(CodeDuplicateID, path+".transform.id",
			"id %q already used by %s", t.ID, b.doc.Nodes[prev].Path)
	}

	idx := len(b.doc.Nodes)
	b.doc.Nodes = append(b.doc.Nodes, n)
	b.doc.byID[t.ID] = idx

	if raw.Container != nil {
		for i := range raw.Container.Children {
			childPath := fmt.Sprintf("%s.children[%d]", path, i)
			child, err := b.node(&raw.Container.Children[i], idx, depth+1, childPath)
			if err != nil {
				return 0, err
			}
			b.doc.Nodes[idx].Children = append(b.doc.Nodes[idx].Children, child)
		}
	}

	return idx, nil
}

func parseTransform(raw *formats.Transform, path string) (Transform, error) {
	var t Transform
	if raw == nil {
		return t, formatErr(CodeMissingField, path, "transform is required")
	}

	if raw.ID == nil {
		return t, formatErr(CodeMissingField, path+".id", "id is required")
	}
	if *raw.ID == "" {
		return t, formatErr(CodeInvalidValue, path+".id", "id must not be empty")
	}
	t.ID = *raw.ID

	if raw.Anchor == nil {
		return t, formatErr(CodeMissingField, path+".anchor", "anchor is required")
	}
	anchor, ok := ParseAnchor(*raw.Anchor)
	if !ok {
		return t, formatErr(CodeUnknownVariant, path+".anchor", "unknown anchor %q", *raw.Anchor)
	}
	t.Anchor, t.Pivot = anchor, anchor

	if raw.Pivot != nil {
		pivot, ok := ParseAnchor(*raw.Pivot)
		if !ok {
			return t, formatErr(CodeUnknownVariant, path+".pivot", "unknown pivot %q", *raw.Pivot)
		}
		t.Pivot = pivot
	}

	for _, dim := range []struct {
		name string
		val  *float64
		dst  *float64
	}{
		{"width", raw.Width, &t.Width},
		{"height", raw.Height, &t.Height},
	} {
		if dim.val == nil {
			return t, formatErr(CodeMissingField, path+"."+dim.name, "%s is required", dim.name)
		}
		if !finite(*dim.val) || *dim.val < 0 {
			return t, formatErr(CodeInvalidValue, path+"."+dim.name, "%s must be a non-negative number, got %v", dim.name, *dim.val)
		}
		*dim.dst = *dim.val
	}

	if !finite(raw.X) || !finite(raw.Y) || !finite(raw.Z) {
		return t, formatErr(CodeInvalidValue, path, "offsets must be finite numbers")
	}
	t.X, t.Y, t.Z = raw.X, raw.Y, raw.Z

	if raw.Stretch != nil {
		s, err := parseStretch(raw.Stretch, t, path+".stretch")
		if err != nil {
			return t, err
		}
		t.Stretch = s
	}

	return t, nil
}

func parseStretch(raw *formats.Stretch, t Transform, path string) (Stretch, error) {
	var s Stretch
	if raw.Mode == nil {
		return s, formatErr(CodeMissingField, path+".mode", "stretch mode is required")
	}
	mode, ok := ParseStretchMode(*raw.Mode)
	if !ok {
		return s, formatErr(CodeUnknownVariant, path+".mode", "unknown stretch mode %q", *raw.Mode)
	}
	if !finite(raw.XMargin) || raw.XMargin < 0 {
		return s, formatErr(CodeInvalidValue, path+".x_margin", "margin must be non-negative, got %v", raw.XMargin)
	}
	if !finite(raw.YMargin) || raw.YMargin < 0 {
		return s, formatErr(CodeInvalidValue, path+".y_margin", "margin must be non-negative, got %v", raw.YMargin)
	}
	if raw.KeepAspectRatio {
		if mode != StretchXY {
			return s, formatErr(CodeInvalidValue, path+".keep_aspect_ratio", "keep_aspect_ratio needs stretch mode xy, got %s", mode)
		}
		if t.Width == 0 || t.Height == 0 {
			return s, formatErr(CodeInvalidValue, path+".keep_aspect_ratio", "keep_aspect_ratio needs a non-zero width and height")
		}
	}

	s.Mode = mode
	s.XMargin, s.YMargin = raw.XMargin, raw.YMargin
	s.KeepAspectRatio = raw.KeepAspectRatio
	return s, nil
}

func parseText(raw *formats.Text, path string) (Text, error) {
	var t Text
	if raw == nil {
		return t, formatErr(CodeMissingField, path, "text is required on labels")
	}
	if raw.Text == nil {
		return t, formatErr(CodeMissingField, path+".text", "text is required")
	}
	t.Text = *raw.Text

	font, err := parseAsset(raw.Font, path+".font")
	if err != nil {
		return t, err
	}
	t.Font = font

	t.FontSize = DefaultFontSize
	if raw.FontSize != nil {
		if !finite(*raw.FontSize) || *raw.FontSize <= 0 {
			return t, formatErr(CodeInvalidValue, path+".font_size", "font size must be positive, got %v", *raw.FontSize)
		}
		t.FontSize = *raw.FontSize
	}

	if raw.Color == nil {
		return t, formatErr(CodeMissingField, path+".color", "color is required")
	}
	color, err := parseColor(raw.Color, path+".color")
	if err != nil {
		return t, err
	}
	t.Color = color

	t.Align = Middle
	if raw.Align != nil {
		align, ok := ParseAnchor(*raw.Align)
		if !ok {
			return t, formatErr(CodeUnknownVariant, path+".align", "unknown alignment %q", *raw.Align)
		}
		t.Align = align
	}

	return t, nil
}

func parseAsset(raw *formats.Asset, path string) (assets.Source, error) {
	var src assets.Source
	if raw == nil {
		return src, formatErr(CodeMissingField, path, "font is required")
	}
	if raw.Kind == nil {
		return src, formatErr(CodeMissingField, path+".kind", "asset kind is required")
	}
	kind, ok := assets.ParseKind(*raw.Kind)
	if !ok {
		return src, formatErr(CodeUnknownVariant, path+".kind", "unknown asset kind %q", *raw.Kind)
	}
	if raw.Path == nil || *raw.Path == "" {
		return src, formatErr(CodeMissingField, path+".path", "asset path is required")
	}

	src.Kind, src.Path = kind, *raw.Path

	switch {
	case raw.Format != "":
		format, ok := assets.ParseFontFormat(raw.Format)
		if !ok {
			return src, formatErr(CodeUnknownVariant, path+".format", "unknown font format %q", raw.Format)
		}
		src.Format = format
	case kind == assets.KindFile:
		return src, formatErr(CodeMissingField, path+".format", "file fonts need a format (ttf or otf)")
	}

	return src, nil
}

func parseColor(vals []float64, path string) (core.Color, error) {
	if len(vals) != 4 {
		return core.Color{}, formatErr(CodeInvalidValue, path, "color needs 4 components (r, g, b, a), got %d", len(vals))
	}
	c := core.RGBA(vals[0], vals[1], vals[2], vals[3])
	if !c.Valid() {
		return core.Color{}, formatErr(CodeInvalidValue, path, "color components must lie in [0, 1], got %v", vals)
	}
	return c, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
