package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/glyphjam/internal/assets"
)

// Loader loads scene documents from a directory tree.
type Loader struct {
	Root   string
	Logger *log.Logger // receives skipped files, may be nil
}

// NewLoader creates a new scene loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all scene documents.
// Invalid files are skipped. Returns documents sorted by scene name.
func (l *Loader) LoadAll() ([]*Document, error) {
	var docs []*Document
	seen := make(map[string]string)

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if _, ok := FormatForPath(path); !ok {
			return nil
		}

		doc, err := l.LoadFile(path)
		if err != nil {
			l.warn("skipping scene document", "path", path, "err", err)
			return nil
		}
		if prev, dup := seen[doc.Name]; dup {
			l.warn("skipping duplicate scene", "scene", doc.Name, "path", path, "first", prev)
			return nil
		}
		seen[doc.Name] = path

		docs = append(docs, doc)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(docs, func(i, j int) bool {
		return docs[i].Name < docs[j].Name
	})

	return docs, nil
}

// LoadFile loads a single scene document.
func (l *Loader) LoadFile(path string) (*Document, error) {
	format, ok := FormatForPath(path)
	if !ok {
		return nil, fmt.Errorf("unsupported scene file %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}

	doc, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("parsing file %s: %w", path, err)
	}
	doc.FilePath = path
	return doc, nil
}

// LoadByName loads the scene with the given name.
func (l *Loader) LoadByName(name string) (*Document, error) {
	docs, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	for _, doc := range docs {
		if doc.Name == name {
			return doc, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
}

// Names returns all loadable scene names in sorted order.
func (l *Loader) Names() ([]string, error) {
	docs, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	names := make([]string, len(docs))
	for i, doc := range docs {
		names[i] = doc.Name
	}
	return names, nil
}

func (l *Loader) warn(msg string, keyvals ...any) {
	if l.Logger != nil {
		l.Logger.Warn(msg, keyvals...)
	}
}

// Load reads a document through the asset resolver. A missing document
// is reported as assets.ErrNotFound.
func Load(r *assets.Resolver, src assets.Source) (*Document, error) {
	format, ok := FormatForPath(src.Path)
	if !ok {
		return nil, fmt.Errorf("unsupported scene document %s", src)
	}

	data, err := r.Read(src)
	if err != nil {
		return nil, err
	}

	doc, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", src, err)
	}
	if src.Kind == assets.KindFile {
		doc.FilePath = r.Path(src.Path)
	}
	return doc, nil
}

// CheckFonts resolves every font the document uses.
func CheckFonts(doc *Document, r *assets.Resolver) error {
	for _, src := range doc.Fonts() {
		if _, err := r.ResolveFont(src); err != nil {
			return fmt.Errorf("scene %s: %w", doc.Name, err)
		}
	}
	return nil
}
