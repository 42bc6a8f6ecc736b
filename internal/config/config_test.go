package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsNormalize(t *testing.T) {
	s := Settings{Scale: -2, GridSpacing: 0, OutputDPI: 50, OutputFormat: "bmp"}
	s.Normalize()

	assert.Equal(t, 1.0, s.Scale)
	assert.Equal(t, 10, s.GridSpacing)
	assert.Equal(t, 72, s.OutputDPI)
	assert.Equal(t, FormatPNG, s.OutputFormat)
	assert.Equal(t, 2.0, s.WallThick)
}

func TestSettingsValidateWarns(t *testing.T) {
	s := Settings{Scale: 0, GridSpacing: -1, OutputDPI: 50}
	warnings := s.Validate()
	assert.Len(t, warnings, 3)

	s = DefaultSettings()
	assert.Empty(t, s.Validate())
}

func TestDrawingColorResolution(t *testing.T) {
	d := DefaultDrawing()

	assert.Equal(t, "#ffffff", d.Color(""), "empty resolves to white")
	assert.Equal(t, "#123abc", d.Color("#123abc"), "hex passes through")
	assert.Equal(t, "#e8f5e9", d.Color("kitchen"), "palette name resolves")
	assert.Equal(t, "lightgray", d.Color("lightgray"), "plain color word passes through")
	assert.Equal(t, "mystery", d.Color("mystery"), "unknown name passes through")
}

func TestDrawingPaletteOverride(t *testing.T) {
	d := DefaultDrawing()
	d.UpdateColors(map[string]string{"kitchen": "#000001", "custom": "#000002"})

	assert.Equal(t, "#000001", d.Color("kitchen"))
	assert.Equal(t, "#000002", d.Color("custom"))

	// Clones do not share palette state.
	clone := d.Clone()
	clone.UpdateColors(map[string]string{"kitchen": "#ff0000"})
	assert.Equal(t, "#000001", d.Color("kitchen"))
}

func TestParseDocument(t *testing.T) {
	src := `
settings:
  scale: 2.0
  output_format: svg
colors:
  kitchen: "#abcdef"
main_floor:
  figure:
    title: Test Floor
    x_min: 0
    x_max: 50
    y_min: 0
    y_max: 40
  rooms:
    - x: 0
      y: 0
      width: 20
      height: 15
      label: Kitchen
      color: kitchen
`
	doc, err := Parse(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, 2.0, doc.Settings.Scale)
	assert.Equal(t, FormatSVG, doc.Settings.OutputFormat)
	assert.Equal(t, "#abcdef", doc.Colors["kitchen"])
	require.Len(t, doc.MainFloor.Rooms, 1)
	assert.Equal(t, "Kitchen", doc.MainFloor.Rooms[0]["label"])

	xMin, xMax, yMin, yMax, ok := doc.MainFloor.Figure.Extent()
	require.True(t, ok)
	assert.Equal(t, []float64{0, 50, 0, 40}, []float64{xMin, xMax, yMin, yMax})
}

func TestParseBadYAML(t *testing.T) {
	_, err := Parse(strings.NewReader("settings: [not: a: mapping"))
	assert.Error(t, err)
}

func TestParseEmptyFallsBack(t *testing.T) {
	doc, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.NotEmpty(t, doc.MainFloor.Rooms, "empty input keeps the built-in plan")
}

func TestDefaultDocumentSane(t *testing.T) {
	doc := Default()
	assert.NotEmpty(t, doc.MainFloor.Rooms)
	assert.NotEmpty(t, doc.Basement.Rooms)
	assert.NotNil(t, doc.Basement.Theater)
	assert.NotNil(t, doc.Basement.Pool)

	_, _, _, _, ok := doc.MainFloor.Figure.Extent()
	assert.True(t, ok, "default main floor declares an extent")
}
