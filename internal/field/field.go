// Package field owns the particle arrays the renderer draws from.
package field

import (
	"math/rand/v2"
	"runtime"
	"time"

	"github.com/ThatOtherAndrew/Handcloud/internal/palette"
	"github.com/ThatOtherAndrew/Handcloud/internal/scene"
	"github.com/ThatOtherAndrew/Handcloud/internal/spawn"
	"golang.org/x/sync/errgroup"
)

const (
	// Gravity is the fireworks downward acceleration per frame.
	Gravity = 0.01
	// FloorY is the height below which a falling burst is relaunched.
	FloorY = -50

	// below this many particles sampling runs on the calling goroutine
	parallelThreshold = 2048
)

// Field is a fixed-size particle population. All slices are count*3 long
// and laid out x, y, z per particle.
type Field struct {
	count   int
	workers int
	seeds   *rand.Rand

	base     []float32
	rendered []float32
	velocity []float32
	drift    []float32
	color    []float32

	template   spawn.ID
	scheme     int
	generation int
}

// New allocates a field of count particles. seed makes every regeneration
// reproducible; workers caps the sampling goroutines (0 means GOMAXPROCS).
// The arrays stay zeroed until the first Regenerate.
func New(count int, seed uint64, workers int) *Field {
	if count < 0 {
		count = 0
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Field{
		count:    count,
		workers:  workers,
		seeds:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		base:     make([]float32, count*3),
		rendered: make([]float32, count*3),
		velocity: make([]float32, count*3),
		drift:    make([]float32, count*3),
		color:    make([]float32, count*3),
	}
}

// Regenerate resamples every particle for template id painted with scheme.
// All arrays are replaced and accumulated drift is cleared.
func (f *Field) Regenerate(id spawn.ID, scheme int) {
	f.template = id
	f.scheme = scheme
	f.generation++

	n := f.count * 3
	f.base = make([]float32, n)
	f.rendered = make([]float32, n)
	f.velocity = make([]float32, n)
	f.drift = make([]float32, n)
	f.color = make([]float32, n)

	seed := f.seeds.Uint64()
	colors := palette.Get(scheme)

	sampleRange := func(lo, hi int) {
		for i := lo; i < hi; i++ {
			rng := rand.New(rand.NewPCG(seed, uint64(i)))
			p := spawn.Sample(id, i, f.count, colors, rng)

			i3 := i * 3
			copy(f.base[i3:i3+3], p.Position[:])
			copy(f.velocity[i3:i3+3], p.Velocity[:])
			f.color[i3], f.color[i3+1], f.color[i3+2] = colors.RGB(p.ColorIndex)
		}
	}

	if f.count < parallelThreshold || f.workers == 1 {
		sampleRange(0, f.count)
	} else {
		chunk := (f.count + f.workers - 1) / f.workers
		var g errgroup.Group
		g.SetLimit(f.workers)
		for lo := 0; lo < f.count; lo += chunk {
			hi := min(lo+chunk, f.count)
			g.Go(func() error {
				sampleRange(lo, hi)
				return nil
			})
		}
		_ = g.Wait()
	}

	copy(f.rendered, f.base)
}

// Advance moves the population forward by dt. Rendered positions are the
// base positions scaled by expansion plus accumulated drift. Fireworks fall
// under gravity and relaunch once any particle crosses FloorY; tornado
// velocity accumulates into drift and leaves the base untouched.
func (f *Field) Advance(dt time.Duration, expansion float32, id spawn.ID) {
	k := scene.Frames(dt)
	relaunch := false

	switch id {
	case spawn.Fireworks:
		for i3 := 0; i3 < len(f.base); i3 += 3 {
			f.velocity[i3+1] -= Gravity * k
			f.base[i3] += f.velocity[i3] * k
			f.base[i3+1] += f.velocity[i3+1] * k
			f.base[i3+2] += f.velocity[i3+2] * k
			if f.base[i3+1] < FloorY {
				relaunch = true
			}
		}
	case spawn.Tornado:
		for i := range f.drift {
			f.drift[i] += f.velocity[i] * k
		}
	}

	if relaunch {
		f.Regenerate(id, f.scheme)
	}
	f.render(expansion)
}

func (f *Field) render(expansion float32) {
	for i := range f.base {
		f.rendered[i] = f.base[i]*expansion + f.drift[i]
	}
}

// Positions returns the rendered positions. Callers must not modify it.
func (f *Field) Positions() []float32 { return f.rendered }

// Colors returns per-particle RGB. Callers must not modify it.
func (f *Field) Colors() []float32 { return f.color }

// Base returns the rest positions from the last regeneration.
func (f *Field) Base() []float32 { return f.base }

// Drift returns the offset accumulated by tornado flow since the last
// regeneration.
func (f *Field) Drift() []float32 { return f.drift }

// Velocities returns per-particle velocity.
func (f *Field) Velocities() []float32 { return f.velocity }

// Count reports the population size.
func (f *Field) Count() int { return f.count }

// Template reports the template of the last regeneration.
func (f *Field) Template() spawn.ID { return f.template }

// Scheme reports the palette index of the last regeneration.
func (f *Field) Scheme() int { return f.scheme }

// Generation counts regenerations, including fireworks relaunches.
func (f *Field) Generation() int { return f.generation }
