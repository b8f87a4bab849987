package loon

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Loader retrieves parsed sources used to build a Dictionary. Implementors
// own file access and byte parsing; the builder only ever sees value trees.
type Loader interface {
	Load() ([]Source, error)
}

// LoaderFunc adapters allow bare functions to implement Loader.
type LoaderFunc func() ([]Source, error)

// Load implements Loader for LoaderFunc.
func (fn LoaderFunc) Load() ([]Source, error) {
	return fn()
}

// FileLoader reads translation files from disk, decoding JSON, YAML and
// TOML by extension. Files named after their locale (en.yml, de.json) carry
// that stem as their locale hint unless a locale was bound explicitly.
type FileLoader struct {
	paths    []localizedPath
	patterns []string
}

// NewFileLoader builds a loader for the given paths. Their locale hints are
// derived from the file stems.
func NewFileLoader(paths ...string) *FileLoader {
	l := &FileLoader{}
	for _, path := range paths {
		l.AddPath(path)
	}
	return l
}

// AddPath appends a file whose locale hint comes from its file stem.
func (l *FileLoader) AddPath(path string) *FileLoader {
	if path != "" {
		l.paths = append(l.paths, localizedPath{path: path})
	}
	return l
}

// AddLocalizedPath appends a file bound to an explicit locale.
func (l *FileLoader) AddLocalizedPath(locale, path string) *FileLoader {
	if path != "" {
		l.paths = append(l.paths, localizedPath{locale: locale, path: path})
	}
	return l
}

// AddPattern appends a glob pattern expanded at Load time. Matches with
// unsupported extensions are skipped rather than failing the load.
func (l *FileLoader) AddPattern(pattern string) *FileLoader {
	if pattern != "" {
		l.patterns = append(l.patterns, pattern)
	}
	return l
}

// Load reads and parses every configured file into sources, explicit paths
// first, then pattern matches in glob order.
func (l *FileLoader) Load() ([]Source, error) {
	if l == nil || (len(l.paths) == 0 && len(l.patterns) == 0) {
		return nil, fmt.Errorf("loon: no loader paths configured")
	}

	var sources []Source

	for _, entry := range l.paths {
		src, err := loadTranslationFile(entry.locale, entry.path)
		if err != nil {
			return nil, err
		}
		sources = append(sources, src)
	}

	for _, pattern := range l.patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("loon: bad path pattern %q: %w", pattern, err)
		}
		for _, path := range matches {
			if !supportedExtension(path) {
				continue
			}
			src, err := loadTranslationFile("", path)
			if err != nil {
				return nil, err
			}
			sources = append(sources, src)
		}
	}

	return sources, nil
}

func loadTranslationFile(locale, path string) (Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Source{}, fmt.Errorf("loon: read %s: %w", path, err)
	}

	tree, err := decodeTranslationFile(path, data)
	if err != nil {
		return Source{}, fmt.Errorf("loon: decode %s: %w", path, err)
	}

	if locale == "" {
		locale = fileStem(path)
	}

	return Source{ID: path, Locale: locale, Tree: tree}, nil
}

func decodeTranslationFile(path string, data []byte) (*Value, error) {
	var raw any

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	case ".toml":
		var table map[string]any
		if err := toml.Unmarshal(data, &table); err != nil {
			return nil, err
		}
		raw = table
	default:
		return nil, fmt.Errorf("unsupported extension %s", ext)
	}

	return ValueFromAny(raw)
}

func supportedExtension(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml", ".toml":
		return true
	default:
		return false
	}
}

func fileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
