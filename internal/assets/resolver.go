package assets

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sync"

	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/sfnt"
)

// Dir is the asset directory below the application root.
const Dir = "assets"

// BuiltinFontMono names the monospace font compiled into the binary.
const BuiltinFontMono = "mono"

var builtinFonts = map[string][]byte{
	BuiltinFontMono: gomono.TTF,
}

var errInvalidPath = errors.New("path must be relative and stay below the asset root")

// Font is a resolved font asset.
type Font struct {
	Source Source
	Family string
	Format FontFormat
	Glyphs int
}

// Resolver turns sources into bytes and fonts.
// It is safe for concurrent use.
type Resolver struct {
	Root     string // application root, file assets live in Root/assets
	Embedded fs.FS  // embedded copy of the asset directory, may be nil

	mu    sync.Mutex
	fonts map[Source]*Font
}

// NewResolver creates a resolver for the given application root.
func NewResolver(root string, embedded fs.FS) *Resolver {
	return &Resolver{
		Root:     root,
		Embedded: embedded,
		fonts:    make(map[Source]*Font),
	}
}

// Path returns the filesystem path of a file asset.
func (r *Resolver) Path(rel string) string {
	return filepath.Join(r.Root, Dir, filepath.FromSlash(rel))
}

// Read returns the raw bytes of an asset.
func (r *Resolver) Read(src Source) ([]byte, error) {
	if !fs.ValidPath(src.Path) || src.Path == "." {
		return nil, &NotFoundError{Source: src, Err: errInvalidPath}
	}

	var (
		data []byte
		err  error
	)
	switch src.Kind {
	case KindFile:
		data, err = os.ReadFile(r.Path(src.Path))
	case KindEmbedded:
		if r.Embedded == nil {
			return nil, &NotFoundError{Source: src}
		}
		data, err = fs.ReadFile(r.Embedded, src.Path)
	default:
		return nil, fmt.Errorf("assets: unknown source kind %s", src.Kind)
	}

	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Source: src, Err: err}
		}
		return nil, fmt.Errorf("assets: reading %s: %w", src, err)
	}
	return data, nil
}

// ResolveFont loads and parses a font. Embedded sources name a built-in
// font first and fall back to the embedded asset directory.
func (r *Resolver) ResolveFont(src Source) (*Font, error) {
	r.mu.Lock()
	if f, ok := r.fonts[src]; ok {
		r.mu.Unlock()
		return f, nil
	}
	r.mu.Unlock()

	data, ok := builtinFonts[src.Path]
	if !ok || src.Kind != KindEmbedded {
		var err error
		data, err = r.Read(src)
		if err != nil {
			return nil, err
		}
	}

	format := sniffFormat(data)
	if format == FormatNone {
		return nil, fmt.Errorf("assets: %s is not a TrueType or OpenType font", src)
	}
	if src.Format != FormatNone && src.Format != format {
		return nil, fmt.Errorf("assets: %s is declared %s but contains %s", src, src.Format, format)
	}

	parsed, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("assets: parsing font %s: %w", src, err)
	}

	family, err := parsed.Name(nil, sfnt.NameIDFamily)
	if err != nil || family == "" {
		family = path.Base(src.Path)
	}

	font := &Font{
		Source: src,
		Family: family,
		Format: format,
		Glyphs: parsed.NumGlyphs(),
	}

	r.mu.Lock()
	if r.fonts == nil {
		r.fonts = make(map[Source]*Font)
	}
	r.fonts[src] = font
	r.mu.Unlock()

	return font, nil
}

// sniffFormat reads the sfnt version tag.
func sniffFormat(data []byte) FontFormat {
	if len(data) < 4 {
		return FormatNone
	}
	switch tag := data[:4]; {
	case bytes.Equal(tag, []byte{0x00, 0x01, 0x00, 0x00}), bytes.Equal(tag, []byte("true")):
		return FormatTTF
	case bytes.Equal(tag, []byte("OTTO")):
		return FormatOTF
	}
	return FormatNone
}
