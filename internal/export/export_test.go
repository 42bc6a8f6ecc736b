package export

import (
	"bytes"
	"image/png"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"floorplan/internal/cache"
	"floorplan/internal/config"
)

func smallDoc() *config.Document {
	doc := config.Default()
	// Keep test renders quick.
	doc.Settings.OutputDPI = 72
	doc.MainFloor.Figure.Width = 4
	doc.MainFloor.Figure.Height = 4
	doc.Basement.Figure.Width = 4
	doc.Basement.Figure.Height = 4
	return doc
}

func TestFloorPNGDecodes(t *testing.T) {
	e := New(smallDoc())
	data, err := e.FloorPNG(MainFloor)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 288, img.Bounds().Dx(), "4 inches at 72 DPI")
}

func TestFloorPNGUsesCache(t *testing.T) {
	c := cache.NewMemoryCache(4, time.Minute)
	e := New(smallDoc()).WithCache(c)

	first, err := e.FloorPNG(MainFloor)
	require.NoError(t, err)
	second, err := e.FloorPNG(MainFloor)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, uint64(1), c.Stats().Hits)
}

func TestFloorSVGHasShapes(t *testing.T) {
	e := New(smallDoc())
	data, err := e.FloorSVG(Basement)
	require.NoError(t, err)

	svg := string(data)
	assert.Contains(t, svg, "<svg")
	assert.Contains(t, svg, "<rect")
	assert.Contains(t, svg, "</svg>")
}

func TestHousePDFHasTwoPages(t *testing.T) {
	e := New(smallDoc())
	data, err := e.HousePDF()
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	pages := bytes.Count(data, []byte("/Type /Page")) - bytes.Count(data, []byte("/Type /Pages"))
	assert.Equal(t, 2, pages, "one page per floor")
}

func TestUnknownFloor(t *testing.T) {
	e := New(smallDoc())
	_, err := e.FloorPNG("attic")
	assert.Error(t, err)
}

func TestWriteAllFormats(t *testing.T) {
	for _, format := range []string{config.FormatPNG, config.FormatSVG, config.FormatPDF} {
		doc := smallDoc()
		doc.Settings.OutputFormat = format
		dir := t.TempDir()

		paths, err := New(doc).WriteAll(dir)
		require.NoError(t, err, format)

		if format == config.FormatPDF {
			require.Len(t, paths, 1)
			assert.Equal(t, filepath.Join(dir, "house_plan.pdf"), paths[0])
		} else {
			require.Len(t, paths, 2, format)
			assert.Equal(t, filepath.Join(dir, "main_floor."+format), paths[0])
		}
	}
}
