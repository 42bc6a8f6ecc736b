package plan

import (
	"floorplan/internal/config"
)

// House holds every decoded floor of a plan document.
type House struct {
	MainFloor *Floor
	Basement  *Floor
}

// NewHouse decodes both floors of a document, accumulating decode warnings.
func NewHouse(doc *config.Document) (*House, []string) {
	main, mainWarnings := NewFloor("main_floor", doc.MainFloor)
	basement, basementWarnings := NewFloor("basement", doc.Basement)
	warnings := append(mainWarnings, basementWarnings...)
	return &House{MainFloor: main, Basement: basement}, warnings
}

// Floors returns the house's floors in render order.
func (h *House) Floors() []*Floor {
	return []*Floor{h.MainFloor, h.Basement}
}

// Validate runs every floor's validation pass.
func (h *House) Validate() []string {
	var warnings []string
	for _, f := range h.Floors() {
		warnings = append(warnings, f.Validate()...)
	}
	return warnings
}

// ValidateDocument decodes a document and returns all decode and layout
// warnings in one pass. It is the preflight check the CLI runs before
// rendering.
func ValidateDocument(doc *config.Document) []string {
	warnings := doc.Settings.Validate()
	house, decodeWarnings := NewHouse(doc)
	warnings = append(warnings, decodeWarnings...)
	warnings = append(warnings, house.Validate()...)
	return warnings
}
