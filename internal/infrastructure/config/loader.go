package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader loads showcase configuration using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadDisplay loads display.json
func (l *Loader) LoadDisplay() (*DisplayConfig, error) {
	cfg := DefaultDisplay()
	if err := l.readJSON("display.json", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadTheme loads theme.json
func (l *Loader) LoadTheme() (*ThemeConfig, error) {
	cfg := DefaultTheme()
	if err := l.readJSON("theme.json", cfg); err != nil {
		return nil, err
	}
	if _, err := cfg.Palette(); err != nil {
		return nil, fmt.Errorf("failed to parse theme.json: %w", err)
	}
	return cfg, nil
}

// LoadLogging loads logging.json
func (l *Loader) LoadLogging() (*LoggingConfig, error) {
	cfg := DefaultLogging()
	if err := l.readJSON("logging.json", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadLayout loads a layout YAML file
func (l *Loader) LoadLayout(name string) (*LayoutDoc, error) {
	path := "layouts/" + name + ".yaml"
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout %s: %w", name, err)
	}

	doc, err := ParseLayout(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout %s: %w", name, err)
	}
	if doc.Name == "" {
		doc.Name = name
	}
	return doc, nil
}

// ParseLayout decodes a layout document. Unknown fields are rejected.
func ParseLayout(data []byte) (*LayoutDoc, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc LayoutDoc
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// LoadAll loads display, theme and logging. Missing files fall back to their
// defaults; malformed files are errors.
func (l *Loader) LoadAll() (*AppConfig, error) {
	display, err := orDefault(l.LoadDisplay, DefaultDisplay)
	if err != nil {
		return nil, err
	}

	theme, err := orDefault(l.LoadTheme, DefaultTheme)
	if err != nil {
		return nil, err
	}

	logging, err := orDefault(l.LoadLogging, DefaultLogging)
	if err != nil {
		return nil, err
	}

	return &AppConfig{
		Display: display,
		Theme:   theme,
		Logging: logging,
	}, nil
}

func (l *Loader) readJSON(name string, v any) error {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

func orDefault[T any](load func() (*T, error), def func() *T) (*T, error) {
	cfg, err := load()
	if errors.Is(err, fs.ErrNotExist) {
		return def(), nil
	}
	return cfg, err
}
