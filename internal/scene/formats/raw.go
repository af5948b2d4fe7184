// Package formats provides pluggable scene document parsers.
// Every format decodes into the same raw schema; validation and conversion
// into a scene tree happen in the scene package.
package formats

import (
	"errors"
	"strings"
)

// Decoding failures are classified with these sentinels.
var (
	ErrSyntax       = errors.New("syntax error")
	ErrUnknownField = errors.New("unknown field")
	ErrType         = errors.New("type mismatch")
)

// Document is the raw envelope of a scene document. Pointer fields
// distinguish "absent" from "zero" so mandatory fields can be enforced.
type Document struct {
	Scene *string `yaml:"scene" toml:"scene"`
	Title string  `yaml:"title,omitempty" toml:"title,omitempty"`
	Root  *Node   `yaml:"root" toml:"root"`
}

// Node holds exactly one of its kinds.
type Node struct {
	Container *Container `yaml:"container,omitempty" toml:"container,omitempty"`
	Label     *Label     `yaml:"label,omitempty" toml:"label,omitempty"`
}

// Container groups children and may paint a background.
type Container struct {
	Transform  *Transform `yaml:"transform" toml:"transform"`
	Background []float64  `yaml:"background,omitempty" toml:"background,omitempty"`
	Children   []Node     `yaml:"children,omitempty" toml:"children,omitempty"`
}

// Label draws a line of text.
type Label struct {
	Transform *Transform `yaml:"transform" toml:"transform"`
	Text      *Text      `yaml:"text" toml:"text"`
}

// Transform positions a node inside its parent.
type Transform struct {
	ID      *string  `yaml:"id" toml:"id"`
	Anchor  *string  `yaml:"anchor" toml:"anchor"`
	Pivot   *string  `yaml:"pivot,omitempty" toml:"pivot,omitempty"`
	Stretch *Stretch `yaml:"stretch,omitempty" toml:"stretch,omitempty"`
	X       float64  `yaml:"x,omitempty" toml:"x,omitempty"`
	Y       float64  `yaml:"y,omitempty" toml:"y,omitempty"`
	Z       float64  `yaml:"z,omitempty" toml:"z,omitempty"`
	Width   *float64 `yaml:"width" toml:"width"`
	Height  *float64 `yaml:"height" toml:"height"`
}

// Stretch makes a node fill its parent on one or both axes.
type Stretch struct {
	Mode            *string `yaml:"mode" toml:"mode"`
	XMargin         float64 `yaml:"x_margin,omitempty" toml:"x_margin,omitempty"`
	YMargin         float64 `yaml:"y_margin,omitempty" toml:"y_margin,omitempty"`
	KeepAspectRatio bool    `yaml:"keep_aspect_ratio,omitempty" toml:"keep_aspect_ratio,omitempty"`
}

// Text describes the content of a label.
type Text struct {
	Text     *string   `yaml:"text" toml:"text"`
	Font     *Asset    `yaml:"font" toml:"font"`
	FontSize *float64  `yaml:"font_size,omitempty" toml:"font_size,omitempty"`
	Color    []float64 `yaml:"color" toml:"color"`
	Align    *string   `yaml:"align,omitempty" toml:"align,omitempty"`
}

// Asset is a tagged asset reference.
type Asset struct {
	Kind   *string `yaml:"kind" toml:"kind"`
	Path   *string `yaml:"path" toml:"path"`
	Format string  `yaml:"format,omitempty" toml:"format,omitempty"`
}

// Parser decodes one encoding of the raw schema.
type Parser func(data []byte) (*Document, error)

// ForExtension returns the parser for a file extension (with dot, any case).
func ForExtension(ext string) (Parser, bool) {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return ParseYAML, true
	case ".toml":
		return ParseTOML, true
	}
	return nil, false
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".toml"}
}
