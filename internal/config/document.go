package config

// Document is the top-level configuration document for a house plan. Floor
// element sections stay as raw records here; the plan package decodes them
// into typed elements so one malformed record never takes down a whole
// floor.
type Document struct {
	Settings  Settings          `yaml:"settings"`
	Colors    map[string]string `yaml:"colors"`
	MainFloor FloorSection      `yaml:"main_floor"`
	Basement  FloorSection      `yaml:"basement"`
}

// FloorSection holds the raw configuration for a single floor.
type FloorSection struct {
	Figure          FigureSpec       `yaml:"figure"`
	Dimensions      DimensionLabels  `yaml:"dimensions"`
	Rooms           []map[string]any `yaml:"rooms"`
	Doors           []map[string]any `yaml:"doors"`
	Windows         []map[string]any `yaml:"windows"`
	Stairs          []map[string]any `yaml:"stairs"`
	Fireplaces      []map[string]any `yaml:"fireplaces"`
	Furniture       []map[string]any `yaml:"furniture"`
	TextAnnotations []map[string]any `yaml:"text_annotations"`
	LineAnnotations []map[string]any `yaml:"line_annotations"`
	Theater         *TheaterSection  `yaml:"theater"`
	Pool            *PoolSection     `yaml:"pool"`
	CeilingNote     *NoteSpec        `yaml:"ceiling_note"`
	NorthArrow      *NorthArrowSpec  `yaml:"north_arrow"`
}

// FigureSpec sets the output figure geometry and title for a floor.
type FigureSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Title  string  `yaml:"title"`
	XMin   float64 `yaml:"x_min"`
	XMax   float64 `yaml:"x_max"`
	YMin   float64 `yaml:"y_min"`
	YMax   float64 `yaml:"y_max"`
}

// Extent reports the configured plan extent and whether one was given.
func (f FigureSpec) Extent() (xMin, xMax, yMin, yMax float64, ok bool) {
	if f.XMax <= f.XMin || f.YMax <= f.YMin {
		return 0, 0, 0, 0, false
	}
	return f.XMin, f.XMax, f.YMin, f.YMax, true
}

// DimensionLabels overrides the overall dimension arrow captions. Empty
// labels fall back to measuring the floor's default extents.
type DimensionLabels struct {
	WidthLabel  string `yaml:"width_label"`
	HeightLabel string `yaml:"height_label"`
}

// TheaterSection holds the raw home theater configuration.
type TheaterSection struct {
	Room      map[string]any `yaml:"room"`
	Seating   map[string]any `yaml:"seating"`
	FalseWall map[string]any `yaml:"false_wall"`
}

// PoolSection holds the raw indoor pool configuration.
type PoolSection struct {
	Area     map[string]any `yaml:"area"`
	Pool     map[string]any `yaml:"pool"`
	HotTub   map[string]any `yaml:"hot_tub"`
	SpaLabel map[string]any `yaml:"spa_label"`
}

// NoteSpec places a free-standing annotation, like a ceiling height note.
type NoteSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Text     string  `yaml:"text"`
	FontSize float64 `yaml:"font_size"`
}

// NorthArrowSpec places the north arrow marker.
type NorthArrowSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}
