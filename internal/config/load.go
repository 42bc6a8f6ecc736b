package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a house plan document from a YAML file. A missing file is not
// an error; the built-in default plan is returned instead so the generator
// always has something to draw. A file that exists but fails to parse is an
// error, a half-read plan is worse than no plan.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Info("config file not found, using built-in plan", "path", path)
			return Default(), nil
		}
		return nil, fmt.Errorf("opening config %s: %w", path, err)
	}
	defer f.Close()

	doc, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes a house plan document from a reader and normalizes its
// settings.
func Parse(r io.Reader) (*Document, error) {
	doc := Default()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Default(), nil
		}
		return nil, err
	}
	for _, w := range doc.Settings.Validate() {
		slog.Warn(w)
	}
	doc.Settings.Normalize()
	return doc, nil
}

// DrawingFor builds the Drawing configuration for a document, applying any
// palette overrides from its colors section.
func DrawingFor(doc *Document) *Drawing {
	d := NewDrawing(doc.Settings)
	d.UpdateColors(doc.Colors)
	return d
}
