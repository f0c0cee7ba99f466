// Package palette holds the fixed particle color schemes.
package palette

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Scheme is an ordered list of colors a particle may be painted with.
type Scheme struct {
	Name   string
	Colors []colorful.Color
}

// Schemes is the fixed, cyclically selectable palette list.
var Schemes = []Scheme{
	{"aurora", []colorful.Color{{R: 0.0, G: 1.0, B: 0.53}, {R: 0.0, G: 0.5, B: 1.0}, {R: 1.0, G: 0.0, B: 1.0}}},
	{"ember", []colorful.Color{{R: 1.0, G: 0.0, B: 0.0}, {R: 1.0, G: 0.5, B: 0.0}, {R: 1.0, G: 1.0, B: 0.0}}},
	{"neon", []colorful.Color{{R: 1.0, G: 0.0, B: 0.5}, {R: 0.5, G: 0.0, B: 1.0}, {R: 0.0, G: 1.0, B: 1.0}}},
	{"matrix", []colorful.Color{{R: 0.0, G: 1.0, B: 0.0}, {R: 1.0, G: 1.0, B: 1.0}, {R: 0.0, G: 0.5, B: 0.0}}},
	{"solar", []colorful.Color{{R: 1.0, G: 0.3, B: 0.0}, {R: 1.0, G: 0.8, B: 0.0}, {R: 1.0, G: 1.0, B: 1.0}}},
}

// Background is the clear color behind the cloud.
var Background = mustHex("#000510")

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Get returns scheme i, wrapping out-of-range indices into the list.
func Get(i int) Scheme {
	n := len(Schemes)
	return Schemes[((i%n)+n)%n]
}

// Next returns the index after i, wrapping at the end of the list.
func Next(i int) int {
	return (i + 1) % len(Schemes)
}

// Len reports the number of colors in the scheme.
func (s Scheme) Len() int {
	return len(s.Colors)
}

// RGB returns color i as float32 components for vertex buffers.
func (s Scheme) RGB(i int) (r, g, b float32) {
	c := s.Colors[i]
	return float32(c.R), float32(c.G), float32(c.B)
}
