package registry

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/glyphjam"
	"github.com/vovakirdan/glyphjam/internal/assets"
	"github.com/vovakirdan/glyphjam/internal/core"
	"github.com/vovakirdan/glyphjam/internal/scene"
)

func TestBuiltinScenes(t *testing.T) {
	list := List()
	if len(list) < 2 {
		t.Fatalf("expected at least 2 scenes, got %d", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].Name >= list[i].Name {
			t.Errorf("scenes not sorted: %s >= %s", list[i-1].Name, list[i].Name)
		}
	}

	menu, err := Get(Start)
	if err != nil {
		t.Fatalf("Get(%q) failed: %v", Start, err)
	}
	if next, ok := menu.Next(core.ActionPlay); !ok || next != NothingYet {
		t.Errorf("play from the menu leads to %q, expected %q", next, NothingYet)
	}
	if _, ok := menu.Next(core.ActionBack); ok {
		t.Error("the menu has nowhere to go back to")
	}

	placeholder, err := Get(NothingYet)
	if err != nil {
		t.Fatalf("Get(%q) failed: %v", NothingYet, err)
	}
	if next, _ := placeholder.Next(core.ActionBack); next != MainMenu {
		t.Errorf("back from the placeholder leads to %q", next)
	}

	// Every transition target is registered
	for _, e := range list {
		for a, target := range e.Transitions {
			if !Exists(target) {
				t.Errorf("%s: %s leads to unregistered scene %q", e.Name, a, target)
			}
		}
	}
}

func TestGetUnknown(t *testing.T) {
	if _, err := Get("credits"); err == nil {
		t.Error("expected error for unknown scene")
	}
	if Exists("credits") {
		t.Error("credits should not exist")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("registering a duplicate should panic")
		}
	}()
	Register(Entry{Name: MainMenu})
}

func TestLoadPrefersFiles(t *testing.T) {
	root := t.TempDir()
	r := assets.NewResolver(root, glyphjam.Assets())

	// Nothing on disk: the embedded copy is used
	doc, err := Load(r, MainMenu, false)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if doc.FilePath != "" || doc.Name != MainMenu {
		t.Errorf("expected the embedded menu, got %q from %q", doc.Name, doc.FilePath)
	}

	// A file on disk overrides it
	override := "scene: main_menu\ntitle: Override\nroot:\n  container:\n    transform: {id: only, anchor: middle, width: 10, height: 10}\n"
	dir := filepath.Join(root, assets.Dir, "ui")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "mainmenu.yaml"), []byte(override), 0644); err != nil {
		t.Fatal(err)
	}

	doc, err = Load(r, MainMenu, false)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if doc.Title != "Override" {
		t.Errorf("expected the file override, got title %q", doc.Title)
	}

	// Unless the builtin copy is requested
	doc, err = Load(r, MainMenu, true)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if doc.Title == "Override" {
		t.Error("builtin load should ignore files")
	}

	// A broken file is an error, not a silent fallback
	if err := os.WriteFile(filepath.Join(dir, "mainmenu.yaml"), []byte("scene: [broken"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(r, MainMenu, false); !errors.Is(err, scene.ErrFormat) {
		t.Errorf("expected ErrFormat, got %v", err)
	}

	if _, err := Load(r, "credits", false); !errors.Is(err, scene.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
