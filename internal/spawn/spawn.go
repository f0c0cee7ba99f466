package spawn

import (
	"math"
	"math/rand/v2"

	"github.com/ThatOtherAndrew/Handcloud/internal/palette"
	"github.com/go-gl/mathgl/mgl32"
)

// ConstellationClusters is the number of star clusters on the constellation
// ring.
const ConstellationClusters = 8

// Point is one generated particle.
type Point struct {
	Position   mgl32.Vec3
	Velocity   mgl32.Vec3
	ColorIndex int
}

// Sample generates particle index of count for template id. Index-driven
// templates are pure in index and count; the rest draw from rng. Unknown ids
// fill a 40-wide cube.
func Sample(id ID, index, count int, scheme palette.Scheme, rng *rand.Rand) Point {
	if count < 1 {
		count = 1
	}
	f := float64(index) / float64(count)

	var x, y, z float64
	var vel mgl32.Vec3

	switch id {
	case Galaxy:
		angle := rng.Float64() * 2 * math.Pi
		radius := rng.Float64() * 30
		swirl := radius * 0.3
		x = math.Cos(angle+swirl) * radius
		y = (rng.Float64() - 0.5) * 5
		z = math.Sin(angle+swirl) * radius

	case Heart:
		t := rng.Float64() * 2 * math.Pi
		scale := rng.Float64()*10 + 10
		x = scale * 16 * math.Pow(math.Sin(t), 3)
		y = scale * (13*math.Cos(t) - 5*math.Cos(2*t) - 2*math.Cos(3*t) - math.Cos(4*t)) * 0.7
		z = (rng.Float64() - 0.5) * 5
		x *= 0.15
		y *= 0.15

	case Flower:
		angle := rng.Float64() * 2 * math.Pi
		radius := (math.Sin(angle*5)*0.5 + 1) * rng.Float64() * 20
		x = math.Cos(angle) * radius
		y = math.Sin(angle) * radius
		z = (rng.Float64() - 0.5) * 3

	case Saturn:
		if rng.Float64() > 0.3 {
			angle := rng.Float64() * 2 * math.Pi
			radius := rng.Float64()*15 + 15
			x = math.Cos(angle) * radius
			y = (rng.Float64() - 0.5) * 2
			z = math.Sin(angle) * radius
		} else {
			x, y, z = onSphere(rng, rng.Float64()*10)
		}

	case Fireworks:
		x, y, z = onSphere(rng, math.Pow(rng.Float64(), 0.3)*40)
		vel = mgl32.Vec3{
			float32((rng.Float64() - 0.5) * 0.2),
			float32((rng.Float64() - 0.5) * 0.2),
			float32((rng.Float64() - 0.5) * 0.2),
		}

	case Spiral:
		t := f * math.Pi * 10
		radius := t * 2
		x = math.Cos(t) * radius
		y = t*2 - 30
		z = math.Sin(t) * radius

	case Cube:
		x, y, z = inCube(rng)
		if rng.Float64() > 0.7 {
			switch rng.IntN(6) {
			case 0:
				x = 20
			case 1:
				x = -20
			case 2:
				y = 20
			case 3:
				y = -20
			case 4:
				z = 20
			default:
				z = -20
			}
		}

	case Sphere:
		x, y, z = onSphere(rng, 20+rng.Float64()*10)

	case Torus:
		const major, minor = 20, 8
		a := rng.Float64() * 2 * math.Pi
		b := rng.Float64() * 2 * math.Pi
		x = (major + minor*math.Cos(b)) * math.Cos(a)
		y = (major + minor*math.Cos(b)) * math.Sin(a)
		z = minor * math.Sin(b)

	case DNA:
		const radius = 10
		t := f * math.Pi * 8
		phase := float64(index%2) * math.Pi
		x = math.Cos(t+phase) * radius
		y = t*3 - 30
		z = math.Sin(t+phase) * radius
		if index%50 == 0 {
			// rung between the strands
			x = math.Cos(t) * rng.Float64() * radius
			z = math.Sin(t) * rng.Float64() * radius
		}

	case Wave:
		x = f*80 - 40
		z = f*80 - 40
		y = math.Sin(x*0.2)*10 + math.Cos(z*0.2)*10

	case Tornado:
		height := f*60 - 30
		radius := math.Abs(height)*0.3 + 5
		angle := f*math.Pi*10 + rng.Float64()*0.5
		x = math.Cos(angle) * radius
		y = height
		z = math.Sin(angle) * radius
		vel = mgl32.Vec3{
			float32(math.Cos(angle+math.Pi/2) * 0.05),
			0,
			float32(math.Sin(angle+math.Pi/2) * 0.05),
		}

	case Constellation:
		const ring = 25
		cluster := math.Floor(float64(index) / (float64(count) / ConstellationClusters))
		angle := cluster / ConstellationClusters * 2 * math.Pi
		x = math.Cos(angle)*ring + (rng.Float64()-0.5)*10
		y = (rng.Float64() - 0.5) * 10
		z = math.Sin(angle)*ring + (rng.Float64()-0.5)*10

	case Atomic:
		if float64(index) < float64(count)*0.1 {
			x, y, z = onSphere(rng, rng.Float64()*3)
		} else {
			shell := float64(rng.IntN(3) + 1)
			radius := shell * 10
			angle := rng.Float64() * 2 * math.Pi
			tilt := rng.Float64() * math.Pi
			x = math.Cos(angle) * radius
			y = math.Sin(tilt) * math.Sin(angle) * radius
			z = math.Cos(tilt) * math.Sin(angle) * radius
		}

	case Phoenix:
		t := f * 2 * math.Pi
		switch section := int(f * 5); {
		case section < 1:
			x = (rng.Float64() - 0.5) * 5
			y = rng.Float64()*20 - 10
			z = (rng.Float64() - 0.5) * 5
		case section < 3:
			side := 1.0
			if section == 2 {
				side = -1
			}
			x = side * rng.Float64() * 30
			y = math.Sin(t*2) * 10
			z = math.Abs(math.Cos(t*3))*10 - 5
		default:
			sway := math.Sin(t*3) * 8
			x = sway
			y = -rng.Float64() * 25
			z = sway * 0.5
		}

	default:
		x, y, z = inCube(rng)
	}

	p := Point{
		Position: mgl32.Vec3{float32(x), float32(y), float32(z)},
		Velocity: vel,
	}
	if n := scheme.Len(); n > 0 {
		p.ColorIndex = rng.IntN(n)
	}
	return p
}

// onSphere returns a point at distance r in a direction uniform over the
// sphere.
func onSphere(rng *rand.Rand, r float64) (x, y, z float64) {
	theta := rng.Float64() * 2 * math.Pi
	phi := math.Acos(1 - 2*rng.Float64())
	return r * math.Sin(phi) * math.Cos(theta),
		r * math.Sin(phi) * math.Sin(theta),
		r * math.Cos(phi)
}

func inCube(rng *rand.Rand) (x, y, z float64) {
	return (rng.Float64() - 0.5) * 40,
		(rng.Float64() - 0.5) * 40,
		(rng.Float64() - 0.5) * 40
}
