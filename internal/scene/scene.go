// Package scene holds the view state the gesture commands act on.
package scene

import (
	"time"

	"github.com/ThatOtherAndrew/Handcloud/internal/palette"
	"github.com/ThatOtherAndrew/Handcloud/internal/spawn"
)

const (
	// FrameTime is the frame length all per-frame constants are tuned for.
	FrameTime = time.Second / 60
	// SmoothingRate is the default fraction of the remaining expansion gap
	// closed per tick.
	SmoothingRate = 0.05
	// RotationSpeed is the cloud's yaw in radians per frame.
	RotationSpeed = 0.001
)

// Frames converts a frame duration into units of FrameTime.
func Frames(dt time.Duration) float32 {
	return float32(dt) / float32(FrameTime)
}

// Expansion is a scalar eased exponentially toward a target.
type Expansion struct {
	Current float32
	Target  float32
	Rate    float32
}

// SetTarget sets the value Step converges to. Negative targets clamp to 0.
func (e *Expansion) SetTarget(v float32) {
	e.Target = max(v, 0)
}

// Step closes Rate of the gap between Current and Target.
func (e *Expansion) Step() {
	e.Current += (e.Target - e.Current) * e.Rate
}

// Reset snaps both Current and Target to v.
func (e *Expansion) Reset(v float32) {
	v = max(v, 0)
	e.Current = v
	e.Target = v
}

// State is the global view: which template and palette are active, how far
// the cloud is expanded and how far it has spun.
type State struct {
	TemplateIndex int
	Template      spawn.ID
	Scheme        int
	Expansion     Expansion
	Rotation      float32
}

// Default returns the reset state with the standard smoothing rate.
func Default() State {
	return New(SmoothingRate)
}

// New returns the reset state easing expansion at rate.
func New(rate float32) State {
	return State{
		TemplateIndex: 0,
		Template:      spawn.Catalog[0],
		Expansion:     Expansion{Current: 1, Target: 1, Rate: rate},
	}
}

// WithTemplate selects id as the active catalog template.
func (s State) WithTemplate(id spawn.ID) State {
	if i := spawn.Index(id); i >= 0 {
		s.TemplateIndex = i
		s.Template = id
	}
	return s
}

// Palette returns the active color scheme.
func (s State) Palette() palette.Scheme {
	return palette.Get(s.Scheme)
}

// Step advances the continuous parts of the state by one tick.
func (s State) Step(dt time.Duration) State {
	s.Expansion.Step()
	s.Rotation += RotationSpeed * Frames(dt)
	return s
}
