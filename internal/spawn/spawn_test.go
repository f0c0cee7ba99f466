package spawn

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/ThatOtherAndrew/Handcloud/internal/palette"
	"github.com/go-gl/mathgl/mgl32"
)

const testCount = 1000

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0x5eed))
}

func sampleAll(id ID, seed uint64) []Point {
	rng := newRand(seed)
	scheme := palette.Get(0)
	points := make([]Point, testCount)
	for i := range points {
		points[i] = Sample(id, i, testCount, scheme, rng)
	}
	return points
}

func finite(v mgl32.Vec3) bool {
	for _, c := range v {
		f := float64(c)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

func TestCatalog(t *testing.T) {
	if len(Catalog) != 15 {
		t.Fatalf("Expected 15 templates, got %d", len(Catalog))
	}
	seen := map[ID]bool{}
	for i, id := range Catalog {
		if seen[id] {
			t.Errorf("Duplicate template %s", id)
		}
		seen[id] = true
		if Index(id) != i {
			t.Errorf("Index(%s): expected %d, got %d", id, i, Index(id))
		}
	}

	i := 0
	for range len(Catalog) {
		i = Next(i)
	}
	if i != 0 {
		t.Errorf("Expected cycling %d times to return to 0, got %d", len(Catalog), i)
	}
}

func TestParseID(t *testing.T) {
	tests := []struct {
		in      string
		want    ID
		wantErr bool
	}{
		{"galaxy", Galaxy, false},
		{" Tornado ", Tornado, false},
		{"DNA", DNA, false},
		{"blob", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseID(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Expected error=%v, got %v", tt.wantErr, err)
			}
			if got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestAllTemplatesFinite(t *testing.T) {
	ids := append(append([]ID{}, Catalog...), "unrecognised")
	for _, id := range ids {
		t.Run(string(id), func(t *testing.T) {
			for i, p := range sampleAll(id, 7) {
				if !finite(p.Position) || !finite(p.Velocity) {
					t.Fatalf("Particle %d not finite: %+v", i, p)
				}
				if p.ColorIndex < 0 || p.ColorIndex >= palette.Get(0).Len() {
					t.Fatalf("Particle %d color index %d out of range", i, p.ColorIndex)
				}
			}
		})
	}
}

func TestSingleParticleCount(t *testing.T) {
	for _, id := range Catalog {
		p := Sample(id, 0, 0, palette.Get(1), newRand(1))
		if !finite(p.Position) {
			t.Errorf("%s with zero count produced %v", id, p.Position)
		}
	}
}

func TestTemplateBounds(t *testing.T) {
	const eps = 1e-3
	xzLen := func(v mgl32.Vec3) float64 {
		return math.Hypot(float64(v.X()), float64(v.Z()))
	}

	tests := []struct {
		id    ID
		check func(i int, p Point) bool
	}{
		{Galaxy, func(_ int, p Point) bool {
			return xzLen(p.Position) <= 30+eps && math.Abs(float64(p.Position.Y())) <= 2.5
		}},
		{Sphere, func(_ int, p Point) bool {
			r := float64(p.Position.Len())
			return r >= 20-eps && r <= 30+eps
		}},
		{Torus, func(_ int, p Point) bool {
			ring := math.Hypot(float64(p.Position.X()), float64(p.Position.Y())) - 20
			tube := math.Hypot(ring, float64(p.Position.Z()))
			return math.Abs(tube-8) < 1e-2
		}},
		{Cube, func(_ int, p Point) bool {
			for _, c := range p.Position {
				if math.Abs(float64(c)) > 20 {
					return false
				}
			}
			return true
		}},
		{Saturn, func(_ int, p Point) bool {
			ring := xzLen(p.Position)
			inRing := ring >= 15-eps && ring <= 30+eps && math.Abs(float64(p.Position.Y())) <= 1
			inPlanet := float64(p.Position.Len()) <= 10+eps
			return inRing || inPlanet
		}},
		{Fireworks, func(_ int, p Point) bool {
			for _, c := range p.Velocity {
				if math.Abs(float64(c)) > 0.1+1e-6 {
					return false
				}
			}
			return float64(p.Position.Len()) <= 40+eps
		}},
		{Atomic, func(i int, p Point) bool {
			r := float64(p.Position.Len())
			if i < testCount/10 {
				return r <= 3+eps
			}
			for _, shell := range []float64{10, 20, 30} {
				if math.Abs(r-shell) < 1e-2 {
					return true
				}
			}
			return false
		}},
		{Tornado, func(i int, p Point) bool {
			h := float64(i)/testCount*60 - 30
			want := math.Abs(h)*0.3 + 5
			tangential := p.Velocity.Dot(mgl32.Vec3{p.Position.X(), 0, p.Position.Z()})
			return math.Abs(xzLen(p.Position)-want) < 1e-2 &&
				math.Abs(float64(p.Position.Y())-h) < 1e-3 &&
				math.Abs(float64(tangential)) < 1e-3 &&
				math.Abs(float64(p.Velocity.Len())-0.05) < 1e-4
		}},
		{Constellation, func(i int, p Point) bool {
			cluster := math.Floor(float64(i) / (float64(testCount) / ConstellationClusters))
			angle := cluster / ConstellationClusters * 2 * math.Pi
			dx := float64(p.Position.X()) - math.Cos(angle)*25
			dz := float64(p.Position.Z()) - math.Sin(angle)*25
			return math.Abs(dx) <= 5+eps && math.Abs(dz) <= 5+eps && math.Abs(float64(p.Position.Y())) <= 5+eps
		}},
		{"unknown", func(_ int, p Point) bool {
			for _, c := range p.Position {
				if math.Abs(float64(c)) > 20 {
					return false
				}
			}
			return true
		}},
	}

	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			for i, p := range sampleAll(tt.id, 42) {
				if !tt.check(i, p) {
					t.Fatalf("Particle %d out of shape: pos=%v vel=%v", i, p.Position, p.Velocity)
				}
			}
		})
	}
}

func TestCubeFaces(t *testing.T) {
	onFace := 0
	for _, p := range sampleAll(Cube, 3) {
		for _, c := range p.Position {
			if math.Abs(float64(c)) == 20 {
				onFace++
				break
			}
		}
	}
	// roughly 30% of particles are pinned to a face
	if onFace < testCount/5 || onFace > testCount*2/5 {
		t.Errorf("Expected about 30%% of particles on faces, got %d of %d", onFace, testCount)
	}
}

func TestIndexDrivenTemplatesIgnoreRandomness(t *testing.T) {
	for _, id := range []ID{Spiral, Wave} {
		a := sampleAll(id, 1)
		b := sampleAll(id, 2)
		for i := range a {
			if a[i].Position != b[i].Position {
				t.Fatalf("%s particle %d depends on rng: %v vs %v", id, i, a[i].Position, b[i].Position)
			}
		}
	}
}

func TestDNAStrandsAndRungs(t *testing.T) {
	points := sampleAll(DNA, 9)
	for i, p := range points {
		r := xzRadius(p.Position)
		if i%50 == 0 {
			if r > 10+1e-3 {
				t.Errorf("Rung %d outside helix: r=%v", i, r)
			}
			continue
		}
		if math.Abs(r-10) > 1e-3 {
			t.Errorf("Strand particle %d off radius: r=%v", i, r)
		}
	}

	// adjacent particles sit on opposite strands
	a, b := points[1].Position, points[2].Position
	if a.X()*b.X()+a.Z()*b.Z() > 0 {
		t.Errorf("Expected particles 1 and 2 on opposite strands: %v %v", a, b)
	}
}

func TestPhoenixSections(t *testing.T) {
	points := sampleAll(Phoenix, 11)
	for i, p := range points {
		section := int(float64(i) / testCount * 5)
		x := float64(p.Position.X())
		switch section {
		case 0:
			if math.Abs(x) > 2.5 {
				t.Fatalf("Body particle %d too wide: %v", i, x)
			}
		case 1:
			if x < 0 || x > 30 {
				t.Fatalf("Right wing particle %d at x=%v", i, x)
			}
		case 2:
			if x > 0 || x < -30 {
				t.Fatalf("Left wing particle %d at x=%v", i, x)
			}
		default:
			if p.Position.Y() > 0 || p.Position.Y() < -25 {
				t.Fatalf("Tail particle %d at y=%v", i, p.Position.Y())
			}
		}
	}
}

func TestSampleDeterministicForSeed(t *testing.T) {
	for _, id := range Catalog {
		a := sampleAll(id, 99)
		b := sampleAll(id, 99)
		for i := range a {
			if a[i] != b[i] {
				t.Fatalf("%s particle %d differs between identical seeds", id, i)
			}
		}
	}
}

func xzRadius(v mgl32.Vec3) float64 {
	return math.Hypot(float64(v.X()), float64(v.Z()))
}
