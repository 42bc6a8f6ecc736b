package colorutil

import (
	"testing"
)

func TestIsHexColor(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"#fff", true},
		{"#FFFFFF", true},
		{"#e0e0e0", true},
		{"fff", false},
		{"#ggg", false},
		{"#ffff", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := IsHexColor(tc.in); got != tc.want {
			t.Errorf("IsHexColor(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestToRGBA(t *testing.T) {
	if c := ToRGBA("white"); c != White {
		t.Errorf("ToRGBA(white) = %v", c)
	}
	if c := ToRGBA("#ff0000"); c != Red {
		t.Errorf("ToRGBA(#ff0000) = %v", c)
	}
	// Short hex expands before parsing.
	if c := ToRGBA("#f00"); c != Red {
		t.Errorf("ToRGBA(#f00) = %v", c)
	}
	// Unknown strings degrade to black rather than failing.
	if c := ToRGBA("no-such-color"); c != Black {
		t.Errorf("ToRGBA(unknown) = %v, want black", c)
	}
}

func TestLightenDarken(t *testing.T) {
	if got := Lighten("#000000", 1); got != "#ffffff" {
		t.Errorf("Lighten(#000000, 1) = %q", got)
	}
	if got := Darken("#ffffff", 1); got != "#000000" {
		t.Errorf("Darken(#ffffff, 1) = %q", got)
	}
	if got := Lighten("#808080", 0); got != "#808080" {
		t.Errorf("Lighten factor 0 changed color: %q", got)
	}
	// Non-hex input passes through untouched.
	if got := Darken("lightgray", 0.5); got != "lightgray" {
		t.Errorf("Darken(named) = %q, want passthrough", got)
	}
}

func TestIsNamed(t *testing.T) {
	if !IsNamed("Gray") || !IsNamed("grey") {
		t.Error("gray spellings should both be named")
	}
	if IsNamed("chartreuse") {
		t.Error("chartreuse is not in the named set")
	}
}
