package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"

	"github.com/vovakirdan/glyphjam"
	"github.com/vovakirdan/glyphjam/internal/assets"
	"github.com/vovakirdan/glyphjam/internal/config"
	"github.com/vovakirdan/glyphjam/internal/registry"
	"github.com/vovakirdan/glyphjam/internal/scene"
	"github.com/vovakirdan/glyphjam/internal/storage"
)

// fatal prints an error and exits.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// appRoot returns the application root: --root, else the directory of the
// executable with symlinks resolved.
func appRoot() (string, error) {
	if flagRoot != "" {
		return filepath.Abs(flagRoot)
	}
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locating executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

// newResolver builds the asset resolver for the application root.
func newResolver() *assets.Resolver {
	root, err := appRoot()
	if err != nil {
		fatal("%v", err)
	}
	return assets.NewResolver(root, glyphjam.Assets())
}

// loadConfig loads the display and bindings configuration.
func loadConfig(r *assets.Resolver) config.Config {
	cfg, err := config.NewLoader(r.Root).Load(flagDisplay, flagBindings)
	if err != nil {
		fatal("loading config: %v", err)
	}
	return cfg
}

// loadDocument loads a scene by name or by document path. Registered
// scenes follow --builtin; other names are looked up below assets/ui.
func loadDocument(ctx context.Context, r *assets.Resolver, arg string) (*scene.Document, error) {
	if _, ok := scene.FormatForPath(arg); ok {
		return scene.NewLoader(filepath.Dir(arg)).LoadFile(arg)
	}
	if registry.Exists(arg) {
		return registry.Load(r, arg, flagBuiltin)
	}
	l := scene.NewLoader(r.Path("ui"))
	l.Logger = loggerFromContext(ctx)
	return l.LoadByName(arg)
}

// openStore opens the snapshot database or exits.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatal("opening snapshot database: %v", err)
	}
	return store
}

func formatRect(x, y, w, h float64) string {
	return fmt.Sprintf("%g,%g %gx%g", x, y, w, h)
}

// portOf returns the port of a host:port address.
func portOf(addr string) string {
	if _, port, err := net.SplitHostPort(addr); err == nil {
		return port
	}
	return addr
}
