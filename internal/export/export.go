// Package export renders floors and writes them out as PNG, SVG, or PDF.
// PNG exports go through an optional in-memory cache keyed by the floor's
// configuration, so re-exporting an unchanged plan skips the render.
package export

import (
	"bytes"
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"

	"floorplan/internal/cache"
	"floorplan/internal/config"
	"floorplan/internal/render"
)

// Floor names accepted by the per-floor exporters.
const (
	MainFloor = "main_floor"
	Basement  = "basement"
)

// Exporter renders floors from one document with one drawing
// configuration.
type Exporter struct {
	doc   *config.Document
	cfg   *config.Drawing
	cache *cache.MemoryCache
}

// New creates an exporter for a document. The drawing configuration is
// derived from the document's settings and palette overrides.
func New(doc *config.Document) *Exporter {
	return &Exporter{doc: doc, cfg: config.DrawingFor(doc)}
}

// WithCache attaches a render cache for PNG exports.
func (e *Exporter) WithCache(c *cache.MemoryCache) *Exporter {
	e.cache = c
	return e
}

// Drawing exposes the exporter's drawing configuration.
func (e *Exporter) Drawing() *config.Drawing {
	return e.cfg
}

func (e *Exporter) section(floor string) (config.FloorSection, error) {
	switch floor {
	case MainFloor:
		return e.doc.MainFloor, nil
	case Basement:
		return e.doc.Basement, nil
	}
	return config.FloorSection{}, fmt.Errorf("unknown floor %q", floor)
}

// FloorPNG renders one floor to PNG bytes, consulting the cache first.
func (e *Exporter) FloorPNG(floor string) ([]byte, error) {
	section, err := e.section(floor)
	if err != nil {
		return nil, err
	}

	var key string
	if e.cache != nil {
		key, err = cache.Key(floor, e.doc.Settings, e.doc.Colors, section)
		if err != nil {
			slog.Warn("cache key failed, rendering uncached", "floor", floor, "err", err)
		} else if data, ok := e.cache.Get(key); ok {
			slog.Debug("render cache hit", "floor", floor)
			return data, nil
		}
	}

	canvas := render.RasterForFigure(section.Figure.Width, section.Figure.Height, e.doc.Settings.OutputDPI)
	render.DrawFloor(canvas, e.cfg, floor, section)

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas.Image()); err != nil {
		return nil, fmt.Errorf("encoding %s: %w", floor, err)
	}
	data := buf.Bytes()
	if e.cache != nil && key != "" {
		e.cache.Put(key, data)
	}
	return data, nil
}

// FloorSVG renders one floor to SVG bytes.
func (e *Exporter) FloorSVG(floor string) ([]byte, error) {
	section, err := e.section(floor)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	canvas := render.SVGForFigure(&buf, section.Figure.Width, section.Figure.Height)
	render.DrawFloor(canvas, e.cfg, floor, section)
	canvas.Close()
	return buf.Bytes(), nil
}

// HousePDF renders the whole house into one PDF, a page per floor.
func (e *Exporter) HousePDF() ([]byte, error) {
	canvas := render.NewPDF()
	for _, floor := range []string{MainFloor, Basement} {
		section, err := e.section(floor)
		if err != nil {
			return nil, err
		}
		canvas.StartPage(section.Figure.Width, section.Figure.Height)
		render.DrawFloor(canvas, e.cfg, floor, section)
	}
	if err := canvas.Err(); err != nil {
		return nil, fmt.Errorf("building pdf: %w", err)
	}
	var buf bytes.Buffer
	if err := canvas.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteAll exports the document in the configured output format into dir
// and returns the written paths. PNG and SVG produce a file per floor; PDF
// produces one combined document.
func (e *Exporter) WriteAll(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	format := e.doc.Settings.OutputFormat
	if format == config.FormatPDF {
		data, err := e.HousePDF()
		if err != nil {
			return nil, err
		}
		path := filepath.Join(dir, "house_plan.pdf")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return nil, err
		}
		return []string{path}, nil
	}

	var paths []string
	for _, floor := range []string{MainFloor, Basement} {
		var data []byte
		var err error
		switch format {
		case config.FormatSVG:
			data, err = e.FloorSVG(floor)
		default:
			data, err = e.FloorPNG(floor)
		}
		if err != nil {
			return nil, err
		}
		path := filepath.Join(dir, floor+"."+format)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
