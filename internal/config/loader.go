package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Loader finds configuration files.
// Search order: customPath -> <Root>/resources/<file> -> ~/.glyphjam/configs/<file>
// -> embedded default -> hardcoded default
type Loader struct {
	Root string // application root, may be empty
}

// NewLoader creates a config loader for the given application root.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadDisplay loads the display configuration.
func (l *Loader) LoadDisplay(customPath string) (DisplayConfig, error) {
	cfg, err := load(l, customPath, DisplayFile, DefaultDisplayConfig)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", DisplayFile, err)
	}
	return cfg, nil
}

// LoadBindings loads the input bindings.
func (l *Loader) LoadBindings(customPath string) (BindingsConfig, error) {
	cfg, err := load(l, customPath, BindingsFile, DefaultBindingsConfig)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", BindingsFile, err)
	}
	return cfg, nil
}

// Load loads both configuration files. Custom paths may be empty.
func (l *Loader) Load(displayPath, bindingsPath string) (Config, error) {
	display, err := l.LoadDisplay(displayPath)
	if err != nil {
		return Config{}, err
	}
	bindings, err := l.LoadBindings(bindingsPath)
	if err != nil {
		return Config{}, err
	}
	return Config{Display: display, Bindings: bindings}, nil
}

func load[T any](l *Loader, customPath, filename string, fallback func() T) (T, error) {
	var cfg T

	// Try custom path first, failures here are fatal
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try the resources directory next to the executable, then the user directory
	for _, path := range []string{l.resourcePath(filename), userConfigPath(filename)} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			var fromFile T
			if err := yaml.Unmarshal(data, &fromFile); err == nil {
				return fromFile, nil
			}
		}
	}

	// Use embedded default YAML
	if data := GetDefaultYAML(filename); data != nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}
	return fallback(), nil
}

func (l *Loader) resourcePath(filename string) string {
	if l.Root == "" {
		return ""
	}
	return filepath.Join(l.Root, "resources", filename)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".glyphjam", "configs", filename)
}
