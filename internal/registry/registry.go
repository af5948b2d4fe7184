// Package registry provides a global registry of named scenes.
// Built-in scenes register themselves in init(), allowing the platform
// to discover them and follow transitions without hardcoded paths.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/glyphjam/internal/assets"
	"github.com/vovakirdan/glyphjam/internal/core"
	"github.com/vovakirdan/glyphjam/internal/scene"
)

// Entry describes a registered scene.
type Entry struct {
	// Name is the scene name used by documents, CLI commands and snapshots.
	Name string

	// Title is a human-readable name for listings.
	Title string

	// Path locates the document, slash separated and relative to the
	// asset root. The same path works for embedded and file sources.
	Path string

	// Transitions maps actions to the scene they lead to. Quit always
	// exits and needs no entry.
	Transitions map[core.Action]string
}

// Next returns the scene an action leads to.
func (e Entry) Next(a core.Action) (string, bool) {
	name, ok := e.Transitions[a]
	return name, ok
}

var (
	entries = make(map[string]Entry)
	mu      sync.RWMutex
)

// Register adds a scene to the registry.
// Panics if a scene with the same name is already registered.
func Register(e Entry) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[e.Name]; exists {
		panic(fmt.Sprintf("registry: scene %q already registered", e.Name))
	}
	entries[e.Name] = e
}

// List returns all registered scenes, sorted by name.
func List() []Entry {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Entry, 0, len(entries))
	for _, e := range entries {
		result = append(result, e)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Get looks up a scene by name.
// Returns an error matching scene.ErrNotFound if the scene is not registered.
func Get(name string) (Entry, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[name]
	if !ok {
		return Entry{}, fmt.Errorf("registry: unknown scene %q: %w", name, scene.ErrNotFound)
	}
	return e, nil
}

// Load loads the document of a registered scene. The file below the asset
// root wins over the embedded copy unless builtin is set; a missing file
// falls back to the embedded copy.
func Load(r *assets.Resolver, name string, builtin bool) (*scene.Document, error) {
	e, err := Get(name)
	if err != nil {
		return nil, err
	}

	if !builtin {
		doc, err := scene.Load(r, assets.File(e.Path))
		if err == nil || !errors.Is(err, assets.ErrNotFound) {
			return doc, err
		}
	}
	return scene.Load(r, assets.Embedded(e.Path))
}

// Exists checks if a scene with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[name]
	return ok
}
