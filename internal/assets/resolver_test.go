package assets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"golang.org/x/image/font/gofont/gomono"
)

// writeAsset creates root/assets/rel with the given content.
func writeAsset(t *testing.T, root, rel string, data []byte) {
	t.Helper()
	p := filepath.Join(root, Dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(p, data, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestResolverRead(t *testing.T) {
	root := t.TempDir()
	writeAsset(t, root, "ui/menu.yaml", []byte("scene: menu\n"))

	embedded := fstest.MapFS{
		"ui/menu.yaml": &fstest.MapFile{Data: []byte("scene: builtin\n")},
	}
	r := NewResolver(root, embedded)

	tests := []struct {
		name     string
		src      Source
		expected string
		notFound bool
	}{
		{"file", File("ui/menu.yaml"), "scene: menu\n", false},
		{"embedded", Embedded("ui/menu.yaml"), "scene: builtin\n", false},
		{"missing file", File("ui/other.yaml"), "", true},
		{"missing embedded", Embedded("ui/other.yaml"), "", true},
		{"escaping path", File("../secret.yaml"), "", true},
		{"absolute path", File("/etc/passwd"), "", true},
		{"empty path", File(""), "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			data, err := r.Read(tc.src)
			if tc.notFound {
				if !errors.Is(err, ErrNotFound) {
					t.Fatalf("expected ErrNotFound, got %v", err)
				}
				var nf *NotFoundError
				if !errors.As(err, &nf) || nf.Source != tc.src {
					t.Errorf("NotFoundError should carry the source, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Read failed: %v", err)
			}
			if string(data) != tc.expected {
				t.Errorf("Read() = %q, expected %q", data, tc.expected)
			}
		})
	}
}

func TestResolverReadWithoutEmbeddedFS(t *testing.T) {
	r := NewResolver(t.TempDir(), nil)
	if _, err := r.Read(Embedded("ui/menu.yaml")); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestResolveBuiltinFont(t *testing.T) {
	r := NewResolver(t.TempDir(), nil)

	f, err := r.ResolveFont(Embedded(BuiltinFontMono))
	if err != nil {
		t.Fatalf("ResolveFont failed: %v", err)
	}
	if f.Format != FormatTTF {
		t.Errorf("format = %s, expected ttf", f.Format)
	}
	if f.Family == "" || f.Glyphs == 0 {
		t.Errorf("font metadata missing: %+v", f)
	}

	again, err := r.ResolveFont(Embedded(BuiltinFontMono))
	if err != nil || again != f {
		t.Error("second resolve should hit the cache")
	}
}

func TestResolveFileFont(t *testing.T) {
	root := t.TempDir()
	writeAsset(t, root, "fonts/mono.ttf", gomono.TTF)
	writeAsset(t, root, "fonts/broken.ttf", []byte("definitely not a font"))
	r := NewResolver(root, nil)

	src := Source{Kind: KindFile, Path: "fonts/mono.ttf", Format: FormatTTF}
	if _, err := r.ResolveFont(src); err != nil {
		t.Fatalf("ResolveFont failed: %v", err)
	}

	// Declared format must match the file
	src.Format = FormatOTF
	if _, err := r.ResolveFont(src); err == nil || errors.Is(err, ErrNotFound) {
		t.Errorf("format mismatch should fail with a non-NotFound error, got %v", err)
	}

	if _, err := r.ResolveFont(File("fonts/broken.ttf")); err == nil {
		t.Error("garbage font should fail")
	}

	_, err := r.ResolveFont(Source{Kind: KindFile, Path: "fonts/missing.ttf", Format: FormatTTF})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("missing font: expected ErrNotFound, got %v", err)
	}
}

func TestParseKindAndFormat(t *testing.T) {
	if k, ok := ParseKind("File"); !ok || k != KindFile {
		t.Error("ParseKind(File) failed")
	}
	if _, ok := ParseKind("http"); ok {
		t.Error("ParseKind(http) should fail")
	}
	if f, ok := ParseFontFormat("TrueType"); !ok || f != FormatTTF {
		t.Error("ParseFontFormat(TrueType) failed")
	}
	if _, ok := ParseFontFormat("woff"); ok {
		t.Error("ParseFontFormat(woff) should fail")
	}
}
