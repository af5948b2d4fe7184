// Package assets resolves the fonts and documents a scene refers to.
// Sources are a tagged variant: embedded assets ship inside the binary,
// file assets live below <root>/assets next to the executable.
package assets

import (
	"fmt"
	"strings"
)

// Kind tags where an asset comes from.
type Kind int

const (
	KindEmbedded Kind = iota
	KindFile
)

func (k Kind) String() string {
	switch k {
	case KindEmbedded:
		return "embedded"
	case KindFile:
		return "file"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind accepts "embedded" and "file" in any case.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "embedded":
		return KindEmbedded, true
	case "file":
		return KindFile, true
	}
	return 0, false
}

// FontFormat is the container format of a font file.
type FontFormat int

const (
	FormatNone FontFormat = iota
	FormatTTF
	FormatOTF
)

func (f FontFormat) String() string {
	switch f {
	case FormatTTF:
		return "ttf"
	case FormatOTF:
		return "otf"
	default:
		return "none"
	}
}

// ParseFontFormat accepts "ttf" and "otf" (also "TrueType" and "OpenType").
func ParseFontFormat(s string) (FontFormat, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ttf", "truetype":
		return FormatTTF, true
	case "otf", "opentype":
		return FormatOTF, true
	}
	return FormatNone, false
}

// Source references a single asset.
type Source struct {
	Kind   Kind
	Path   string     // slash separated, relative to the asset root
	Format FontFormat // fonts only
}

// Embedded returns a source for an asset compiled into the binary.
func Embedded(path string) Source {
	return Source{Kind: KindEmbedded, Path: path}
}

// File returns a source for an asset below <root>/assets.
func File(path string) Source {
	return Source{Kind: KindFile, Path: path}
}

func (s Source) String() string {
	if s.Format != FormatNone {
		return fmt.Sprintf("%s:%s (%s)", s.Kind, s.Path, s.Format)
	}
	return fmt.Sprintf("%s:%s", s.Kind, s.Path)
}
