package config

// Default returns the built-in two-floor house plan, used when no
// configuration file is given. It doubles as a reference document for the
// supported element records.
func Default() *Document {
	return &Document{
		Settings:  DefaultSettings(),
		MainFloor: defaultMainFloor(),
		Basement:  defaultBasement(),
	}
}

func defaultMainFloor() FloorSection {
	return FloorSection{
		Figure: FigureSpec{
			Width: 20, Height: 24,
			Title: "Main Floor Plan",
			XMin:  -32, XMax: 85,
			YMin: -5, YMax: 120,
		},
		Rooms: []map[string]any{
			{"x": -30.0, "y": 60.0, "width": 26.0, "height": 24.0, "label": "Garage", "color": "garage"},
			{"x": 0.0, "y": 70.0, "width": 14.0, "height": 10.0, "label": "Porch", "color": "porch", "auto_dimension": false},
			{"x": 0.0, "y": 50.0, "width": 14.0, "height": 20.0, "label": "Foyer", "color": "hall"},
			{"x": 14.0, "y": 55.0, "width": 22.0, "height": 25.0, "label": "Living Room", "color": "living"},
			{"x": 36.0, "y": 60.0, "width": 16.0, "height": 20.0, "label": "Dining Room", "color": "dining"},
			{"x": 52.0, "y": 60.0, "width": 18.0, "height": 20.0, "label": "Kitchen", "color": "kitchen"},
			{"x": 52.0, "y": 50.0, "width": 10.0, "height": 10.0, "label": "Pantry", "color": "closet"},
			{"x": 62.0, "y": 50.0, "width": 8.0, "height": 10.0, "label": "Powder", "color": "powder"},
			{"x": 14.0, "y": 30.0, "width": 20.0, "height": 25.0, "label": "Office", "color": "office"},
			{"x": 36.0, "y": 25.0, "width": 24.0, "height": 25.0, "label": "Master Bedroom", "color": "bedroom"},
			{"x": 60.0, "y": 25.0, "width": 12.0, "height": 15.0, "label": "Master Bath", "color": "bathroom"},
			{"x": 60.0, "y": 40.0, "width": 12.0, "height": 10.0, "label": "Closet", "color": "closet"},
			{"x": 14.0, "y": 10.0, "width": 18.0, "height": 20.0, "label": "Bedroom 2", "color": "bedroom"},
			{"x": 32.0, "y": 10.0, "width": 4.0, "height": 15.0, "label": "Hall", "color": "hall", "auto_dimension": false},
			{"x": 36.0, "y": 10.0, "width": 12.0, "height": 15.0, "label": "Bath 2", "color": "bathroom"},
			{"x": 48.0, "y": 10.0, "width": 14.0, "height": 15.0, "label": "Utility", "color": "utility"},
		},
		Doors: []map[string]any{
			{"x": 5.0, "y": 70.0, "width": 3.0, "direction": "right", "swing": "up"},
			{"x": 14.0, "y": 62.0, "width": 3.0, "direction": "up", "swing": "right", "orientation": "vertical"},
			{"x": 40.0, "y": 60.0, "width": 3.0, "direction": "right", "swing": "down"},
			{"x": 52.0, "y": 65.0, "width": 3.0, "direction": "up", "swing": "left", "orientation": "vertical"},
			{"x": 55.0, "y": 50.0, "width": 2.5, "direction": "right", "swing": "up"},
			{"x": 64.0, "y": 50.0, "width": 2.5, "direction": "right", "swing": "up"},
			{"x": 20.0, "y": 55.0, "width": 3.0, "direction": "right", "swing": "down"},
			{"x": 44.0, "y": 50.0, "width": 3.0, "direction": "right", "swing": "down"},
			{"x": 60.0, "y": 30.0, "width": 2.5, "direction": "up", "swing": "right", "orientation": "vertical"},
			{"x": 60.0, "y": 42.0, "width": 2.5, "direction": "up", "swing": "left", "orientation": "vertical"},
			{"x": 22.0, "y": 30.0, "width": 3.0, "direction": "right", "swing": "up"},
			{"x": 32.0, "y": 18.0, "width": 2.5, "direction": "up", "swing": "right", "orientation": "vertical"},
			{"x": 40.0, "y": 25.0, "width": 2.5, "direction": "right", "swing": "down"},
			{"x": 52.0, "y": 25.0, "width": 2.5, "direction": "right", "swing": "down"},
			{"x": -4.0, "y": 60.0, "width": 8.0, "direction": "right", "swing": "up"},
		},
		Windows: []map[string]any{
			{"x": 18.0, "y": 80.0, "width": 4.0},
			{"x": 26.0, "y": 80.0, "width": 4.0},
			{"x": 40.0, "y": 80.0, "width": 4.0},
			{"x": 56.0, "y": 80.0, "width": 5.0},
			{"x": 70.0, "y": 65.0, "width": 4.0, "orientation": "vertical"},
			{"x": 72.0, "y": 30.0, "width": 4.0, "orientation": "vertical"},
			{"x": 44.0, "y": 25.0, "width": 5.0},
			{"x": 18.0, "y": 10.0, "width": 4.0},
			{"x": 26.0, "y": 10.0, "width": 4.0},
			{"x": 14.0, "y": 38.0, "width": 4.0, "orientation": "vertical"},
		},
		Stairs: []map[string]any{
			{"x": 4.0, "y": 50.0, "width": 4.0, "height": 12.0, "num_steps": 13, "direction": "up", "label": "DN"},
		},
		Fireplaces: []map[string]any{
			{"x": 24.0, "y": 78.0, "width": 6.0, "height": 2.0, "label": "Fireplace"},
		},
	}
}

func defaultBasement() FloorSection {
	return FloorSection{
		Figure: FigureSpec{
			Width: 18, Height: 26,
			Title: "Basement Plan",
			XMin:  -5, XMax: 65,
			YMin: -5, YMax: 105,
		},
		Rooms: []map[string]any{
			{"x": 0.0, "y": 60.0, "width": 25.0, "height": 30.0, "label": "Game Room", "color": "gaming", "text_color": "white"},
			{"x": 25.0, "y": 70.0, "width": 15.0, "height": 20.0, "label": "Bar", "color": "bar"},
			{"x": 40.0, "y": 70.0, "width": 20.0, "height": 20.0, "label": "Storage", "color": "storage"},
			{"x": 40.0, "y": 55.0, "width": 10.0, "height": 15.0, "label": "Bath", "color": "bath"},
			{"x": 50.0, "y": 55.0, "width": 10.0, "height": 15.0, "label": "Pool Utilities", "color": "pool_utilities", "auto_dimension": false},
			{"x": 25.0, "y": 55.0, "width": 15.0, "height": 15.0, "label": "Library", "color": "books"},
		},
		Theater: &TheaterSection{
			Room: map[string]any{
				"x": 0.0, "y": 30.0, "width": 25.0, "height": 25.0,
				"label": "Home Theater", "color": "theater", "text_color": "white",
			},
			Seating: map[string]any{
				"start_x": 4.0, "start_y": 34.0,
				"rows": 2, "seats_per_row": 4,
				"seat_width": 2.5, "seat_depth": 2.5,
				"row_spacing": 6.0, "seat_spacing": 4.5,
			},
			FalseWall: map[string]any{
				"x": 0.0, "y": 51.0, "width": 25.0, "label": "False Wall / Screen",
			},
		},
		Pool: &PoolSection{
			Area: map[string]any{
				"x": 0.0, "y": 0.0, "width": 60.0, "height": 30.0,
				"label": "Indoor Pool", "color": "pool_area",
			},
			Pool: map[string]any{
				"x": 8.0, "y": 5.0, "width": 36.0, "height": 18.0,
				"label": "Pool", "color": "pool",
			},
			HotTub: map[string]any{
				"x": 52.0, "y": 10.0, "radius": 4.0,
				"label": "Hot Tub", "color": "spa",
			},
			SpaLabel: map[string]any{"x": 52.0, "y": 22.0},
		},
		Doors: []map[string]any{
			{"x": 25.0, "y": 75.0, "width": 3.0, "direction": "up", "swing": "right", "orientation": "vertical"},
			{"x": 42.0, "y": 70.0, "width": 2.5, "direction": "right", "swing": "down"},
			{"x": 10.0, "y": 55.0, "width": 3.0, "direction": "right", "swing": "up"},
			{"x": 30.0, "y": 30.0, "width": 4.0, "direction": "right", "swing": "down"},
		},
		Stairs: []map[string]any{
			{"x": 55.0, "y": 30.0, "width": 4.0, "height": 12.0, "num_steps": 13, "direction": "up", "label": "UP"},
		},
		Furniture: []map[string]any{
			{"furniture_type": "rectangle", "x": 27.0, "y": 72.0, "width": 10.0, "height": 2.5, "color": "wood", "label": "Bar Top"},
			{"furniture_type": "rectangle", "x": 4.0, "y": 78.0, "width": 8.0, "height": 4.0, "color": "leather", "label": "Sofa"},
			{"furniture_type": "circle", "x": 12.0, "y": 68.0, "width": 5.0, "color": "wood", "label": "Poker Table"},
			{"furniture_type": "circle", "x": 30.0, "y": 60.0, "width": 3.0, "color": "chair"},
			{"furniture_type": "ellipse", "x": 55.0, "y": 25.0, "width": 5.0, "height": 2.5, "color": "hammock", "label": "Hammock", "rotation": 30.0},
		},
		TextAnnotations: []map[string]any{
			{"x": 30.0, "y": 27.0, "text": "Pool Deck", "font_size": 8.0, "style": "italic"},
		},
		CeilingNote: &NoteSpec{X: 30, Y: 92, Text: "9' Ceilings Throughout", FontSize: 8},
		NorthArrow:  &NorthArrowSpec{X: 62, Y: 95},
	}
}
