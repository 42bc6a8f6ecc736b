// Package colorutil provides shared color utilities for the floor plan
// generator: hex parsing, the plain named colors understood by every canvas
// backend, and lighten/darken helpers.
package colorutil

import (
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Common drawing colors used throughout the renderers.
var (
	Black     = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Gray      = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	LightGray = color.RGBA{R: 211, G: 211, B: 211, A: 255}
	DarkGray  = color.RGBA{R: 169, G: 169, B: 169, A: 255}
	Red       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

// named maps the plain color words accepted anywhere a color string is
// expected. Anything else must be a hex value or a palette key.
var named = map[string]color.RGBA{
	"black":     Black,
	"white":     White,
	"gray":      Gray,
	"grey":      Gray,
	"lightgray": LightGray,
	"lightgrey": LightGray,
	"darkgray":  DarkGray,
	"darkgrey":  DarkGray,
	"red":       Red,
	"green":     {R: 0, G: 128, B: 0, A: 255},
	"blue":      {R: 0, G: 0, B: 255, A: 255},
	"yellow":    {R: 255, G: 255, B: 0, A: 255},
	"orange":    {R: 255, G: 165, B: 0, A: 255},
	"brown":     {R: 139, G: 69, B: 19, A: 255},
}

// IsNamed reports whether s is one of the recognized plain color words.
func IsNamed(s string) bool {
	_, ok := named[strings.ToLower(s)]
	return ok
}

// IsHexColor reports whether s is a #RGB or #RRGGBB hex color.
func IsHexColor(s string) bool {
	if !strings.HasPrefix(s, "#") {
		return false
	}
	hex := s[1:]
	if len(hex) != 3 && len(hex) != 6 {
		return false
	}
	for _, c := range hex {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// ToRGBA converts a resolved color string (hex or plain color word) to an
// RGBA value. Unrecognized strings fall back to black so a bad color still
// produces visible output.
func ToRGBA(s string) color.RGBA {
	if c, ok := named[strings.ToLower(s)]; ok {
		return c
	}
	if IsHexColor(s) {
		hex := expandShortHex(s)
		if c, err := colorful.Hex(hex); err == nil {
			r, g, b := c.RGB255()
			return color.RGBA{R: r, G: g, B: b, A: 255}
		}
	}
	return Black
}

// Lighten blends a hex color toward white by the given factor (0..1).
// Non-hex inputs are returned unchanged.
func Lighten(hexColor string, factor float64) string {
	return blend(hexColor, colorful.Color{R: 1, G: 1, B: 1}, factor)
}

// Darken blends a hex color toward black by the given factor (0..1).
// Non-hex inputs are returned unchanged.
func Darken(hexColor string, factor float64) string {
	return blend(hexColor, colorful.Color{}, factor)
}

func blend(hexColor string, target colorful.Color, factor float64) string {
	if !IsHexColor(hexColor) {
		return hexColor
	}
	c, err := colorful.Hex(expandShortHex(hexColor))
	if err != nil {
		return hexColor
	}
	if factor < 0 {
		factor = 0
	}
	if factor > 1 {
		factor = 1
	}
	return c.BlendRgb(target, factor).Hex()
}

// expandShortHex widens #rgb to #rrggbb; colorful only parses 6-digit hex.
func expandShortHex(s string) string {
	if len(s) != 4 {
		return s
	}
	return "#" + strings.Repeat(string(s[1]), 2) +
		strings.Repeat(string(s[2]), 2) +
		strings.Repeat(string(s[3]), 2)
}
