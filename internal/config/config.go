// Package config defines the configuration document for floor plan
// generation: global settings, the color palette, drawing styles, and the
// per-floor element sections. A Drawing value carries everything a renderer
// needs; it is built once per generation run and passed explicitly instead
// of living in process-wide state.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"floorplan/pkg/colorutil"
)

// Output formats supported by the export drivers.
const (
	FormatPNG = "png"
	FormatSVG = "svg"
	FormatPDF = "pdf"
)

// Settings holds the global generation settings.
type Settings struct {
	Scale          float64 `yaml:"scale"`
	DebugMode      bool    `yaml:"debug_mode"`
	GridSpacing    int     `yaml:"grid_spacing"`
	AutoDimensions bool    `yaml:"auto_dimensions"`
	OutputDPI      int     `yaml:"output_dpi"`
	OutputFormat   string  `yaml:"output_format"`
	ShowNorthArrow bool    `yaml:"show_north_arrow"`
	WallThick      float64 `yaml:"wall_thick"`
}

// DefaultSettings returns the documented fallback settings.
func DefaultSettings() Settings {
	return Settings{
		Scale:          1.0,
		GridSpacing:    10,
		AutoDimensions: true,
		OutputDPI:      300,
		OutputFormat:   FormatPNG,
		ShowNorthArrow: true,
		WallThick:      2,
	}
}

// Normalize repairs out-of-range values in place. Bad values are repaired
// silently here; Validate reports them.
func (s *Settings) Normalize() {
	if s.Scale <= 0 {
		s.Scale = 1.0
	}
	if s.GridSpacing <= 0 {
		s.GridSpacing = 10
	}
	if s.OutputDPI < 72 {
		s.OutputDPI = 72
	}
	switch s.OutputFormat {
	case FormatPNG, FormatSVG, FormatPDF:
	default:
		s.OutputFormat = FormatPNG
	}
	if s.WallThick <= 0 {
		s.WallThick = 2
	}
}

// Validate returns warnings for values Normalize would repair.
func (s Settings) Validate() []string {
	var warnings []string
	if s.Scale <= 0 {
		warnings = append(warnings, fmt.Sprintf("invalid scale %v, using 1.0", s.Scale))
	}
	if s.GridSpacing <= 0 {
		warnings = append(warnings, fmt.Sprintf("invalid grid_spacing %v, using 10", s.GridSpacing))
	}
	if s.OutputDPI > 0 && s.OutputDPI < 72 {
		warnings = append(warnings, fmt.Sprintf("low DPI %d may result in poor quality", s.OutputDPI))
	}
	return warnings
}

// Styles configures how the element renderers draw their primitives.
type Styles struct {
	DoorArcLineWidth   float64
	DoorPanelLineWidth float64

	WindowThickness       float64 // fraction of a foot
	WindowLineWidth       float64
	WindowCenterLineWidth float64

	StairsLineWidth     float64
	StairsStepLineWidth float64
	StairsFaceColor     string
	StairsLabelSize     float64

	FireplaceLineWidth  float64
	FireplaceFaceColor  string
	FireplaceInnerColor string
	FireplaceLabelSize  float64

	NorthArrowLineWidth    float64
	NorthArrowFontSize     float64
	NorthArrowCircleRadius float64

	DimensionFontSize float64
	DimensionColor    string

	PoolAreaLineWidth float64
	PoolLineWidth     float64
	PoolLabelSize     float64
	PoolAreaLabelSize float64
	HotTubLabelSize   float64
	SpaLabelSize      float64

	TheaterChairLineWidth float64
}

// DefaultStyles returns the default drawing styles.
func DefaultStyles() Styles {
	return Styles{
		DoorArcLineWidth:   1.5,
		DoorPanelLineWidth: 1.5,

		WindowThickness:       0.8,
		WindowLineWidth:       1.5,
		WindowCenterLineWidth: 0.5,

		StairsLineWidth:     1,
		StairsStepLineWidth: 0.5,
		StairsFaceColor:     "lightgray",
		StairsLabelSize:     7,

		FireplaceLineWidth:  1,
		FireplaceFaceColor:  "darkgray",
		FireplaceInnerColor: "black",
		FireplaceLabelSize:  6,

		NorthArrowLineWidth:    2,
		NorthArrowFontSize:     12,
		NorthArrowCircleRadius: 0.8,

		DimensionFontSize: 10,
		DimensionColor:    "gray",

		PoolAreaLineWidth: 3,
		PoolLineWidth:     2,
		PoolLabelSize:     10,
		PoolAreaLabelSize: 12,
		HotTubLabelSize:   7,
		SpaLabelSize:      8,

		TheaterChairLineWidth: 1,
	}
}

// Drawing carries everything the renderers need for one generation run:
// resolved settings, drawing styles, and the color palette. Build one per
// run and pass it by value; it is not safe for concurrent mutation.
type Drawing struct {
	Scale          float64
	DebugMode      bool
	GridSpacing    int
	AutoDimensions bool
	ShowNorthArrow bool
	WallThick      float64
	Styles         Styles
	Palette        map[string]string
}

// NewDrawing builds a Drawing from normalized settings and the default
// palette.
func NewDrawing(settings Settings) *Drawing {
	settings.Normalize()
	return &Drawing{
		Scale:          settings.Scale,
		DebugMode:      settings.DebugMode,
		GridSpacing:    settings.GridSpacing,
		AutoDimensions: settings.AutoDimensions,
		ShowNorthArrow: settings.ShowNorthArrow,
		WallThick:      settings.WallThick,
		Styles:         DefaultStyles(),
		Palette:        DefaultPalette(),
	}
}

// DefaultDrawing returns a Drawing with all defaults, for callers that have
// no configuration document.
func DefaultDrawing() *Drawing {
	return NewDrawing(DefaultSettings())
}

// ApplyScale applies the scale factor to a plan value.
func (d *Drawing) ApplyScale(value float64) float64 {
	return value * d.Scale
}

// Color resolves a color name: empty means white, hex values pass through
// verbatim, palette names resolve to their configured value, and anything
// else passes through unchanged. Unknown names that are not plain color
// words are reported at debug level only; a bad color degrades, it never
// fails.
func (d *Drawing) Color(name string) string {
	if name == "" {
		return "#ffffff"
	}
	if strings.HasPrefix(name, "#") {
		return name
	}
	if hex, ok := d.Palette[name]; ok {
		return hex
	}
	if !colorutil.IsNamed(name) {
		slog.Debug("unknown color name, passing through", "name", name)
	}
	return name
}

// UpdateColors merges palette overrides from the configuration document.
func (d *Drawing) UpdateColors(overrides map[string]string) {
	for name, value := range overrides {
		d.Palette[name] = value
	}
}

// Clone returns a deep copy, so a caller can derive a variant configuration
// without touching the original's palette.
func (d *Drawing) Clone() *Drawing {
	clone := *d
	clone.Palette = make(map[string]string, len(d.Palette))
	for k, v := range d.Palette {
		clone.Palette[k] = v
	}
	return &clone
}

// DefaultPalette returns the built-in symbolic color table. Configuration
// documents may override or extend it via the top-level colors section.
func DefaultPalette() map[string]string {
	return map[string]string{
		// Main floor room colors.
		"garage":   "#e0e0e0",
		"bedroom":  "#fffacd",
		"bathroom": "#e6f3ff",
		"kitchen":  "#e8f5e9",
		"living":   "#fff3e0",
		"dining":   "#fce4ec",
		"office":   "#f3e5f5",
		"utility":  "#f5f5f5",
		"porch":    "#c8e6c9",
		"closet":   "#fafafa",
		"hall":     "#ffffff",
		"powder":   "#f0f8ff",
		// Basement room colors.
		"theater":        "#1a1a2e",
		"gaming":         "#4a5568",
		"pool":           "#63b3ed",
		"pool_area":      "#e0f7fa",
		"pool_utilities": "#b0bec5",
		"spa":            "#81e6d9",
		"bar":            "#c4b5fd",
		"storage":        "#d1d5db",
		"bath":           "#e6f3ff",
		"books":          "#fef3c7",
		// Furniture colors.
		"wood":    "#8b4513",
		"leather": "#6b5b4f",
		"chair":   "#4a4a4a",
		"hammock": "#deb887",
		// Fixtures.
		"window":  "#87CEEB",
		"fixture": "#ffffff",
		"tub":     "#e6f3ff",
		"toilet":  "#ffffff",
		"sink":    "#ffffff",
	}
}
