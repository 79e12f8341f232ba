package pattern

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Loader handles loading patterns from YAML files.
type Loader struct {
	fs fs.FS // embedded filesystem for built-in patterns
}

// NewLoader creates a loader with built-in patterns from the embedded
// filesystem.
func NewLoader() *Loader {
	return &Loader{fs: builtinPatternsFS}
}

// NewLoaderWithFS creates a loader with a custom filesystem.
func NewLoaderWithFS(fsys fs.FS) *Loader {
	return &Loader{fs: fsys}
}

// Load parses patterns from YAML bytes.
func (l *Loader) Load(data []byte) ([]*Pattern, error) {
	var yamlFile yamlPatternsFile
	if err := yaml.Unmarshal(data, &yamlFile); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if len(yamlFile.Patterns) == 0 {
		return nil, fmt.Errorf("no patterns found in YAML")
	}

	patterns := make([]*Pattern, 0, len(yamlFile.Patterns))
	for _, yp := range yamlFile.Patterns {
		patterns = append(patterns, convertYAMLPattern(yp))
	}
	return patterns, nil
}

// LoadFile loads patterns from a YAML file path.
func (l *Loader) LoadFile(path string) ([]*Pattern, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return l.Load(data)
}

// LoadBuiltin loads all built-in patterns from the embedded filesystem.
func (l *Loader) LoadBuiltin() ([]*Pattern, error) {
	var patterns []*Pattern

	err := fs.WalkDir(l.fs, "patterns", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".yml" {
			return nil
		}

		data, err := fs.ReadFile(l.fs, path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		loaded, err := l.Load(data)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
		patterns = append(patterns, loaded...)

		return nil
	})

	if err != nil {
		return nil, err
	}

	return patterns, nil
}

// Lookup returns the builtin pattern with the given ID.
func (l *Loader) Lookup(id string) (*Pattern, error) {
	patterns, err := l.LoadBuiltin()
	if err != nil {
		return nil, err
	}
	for _, p := range patterns {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, fmt.Errorf("unknown pattern ID: %s", id)
}
