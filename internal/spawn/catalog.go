package spawn

import (
	"fmt"
	"strings"
)

// ID names a procedural particle template.
type ID string

const (
	Galaxy        ID = "galaxy"
	Heart         ID = "heart"
	Flower        ID = "flower"
	Saturn        ID = "saturn"
	Fireworks     ID = "fireworks"
	Spiral        ID = "spiral"
	Cube          ID = "cube"
	Sphere        ID = "sphere"
	Torus         ID = "torus"
	DNA           ID = "dna"
	Wave          ID = "wave"
	Tornado       ID = "tornado"
	Constellation ID = "constellation"
	Atomic        ID = "atomic"
	Phoenix       ID = "phoenix"
)

// Catalog is the ordered, cyclically selectable template list.
var Catalog = []ID{
	Galaxy, Heart, Flower, Saturn, Fireworks,
	Spiral, Cube, Sphere, Torus, DNA,
	Wave, Tornado, Constellation, Atomic, Phoenix,
}

// Index returns the catalog position of id, or -1.
func Index(id ID) int {
	for i, c := range Catalog {
		if c == id {
			return i
		}
	}
	return -1
}

// Next returns the catalog index after i, wrapping at the end.
func Next(i int) int {
	return (i + 1) % len(Catalog)
}

// At returns the template at catalog index i, wrapping out-of-range values.
func At(i int) ID {
	n := len(Catalog)
	return Catalog[((i%n)+n)%n]
}

// ParseID validates a template name.
func ParseID(s string) (ID, error) {
	id := ID(strings.ToLower(strings.TrimSpace(s)))
	if Index(id) < 0 {
		return "", fmt.Errorf("unknown template %q", s)
	}
	return id, nil
}

// Title returns the display name, e.g. "Galaxy".
func (id ID) Title() string {
	if id == DNA {
		return "DNA"
	}
	s := string(id)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Moving reports whether the template integrates velocity every frame.
func (id ID) Moving() bool {
	return id == Fireworks || id == Tornado
}
