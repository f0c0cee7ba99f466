package dispatch

import (
	"slices"
	"testing"
	"time"

	"github.com/ThatOtherAndrew/Handcloud/internal/gesture"
	"github.com/ThatOtherAndrew/Handcloud/internal/scene"
	"github.com/ThatOtherAndrew/Handcloud/internal/spawn"
)

const ms = time.Millisecond

type frame struct {
	at time.Duration
	g  gesture.Gesture
}

// play feeds frames through d, firing deferred commands before each frame
// the way the update loop does.
func play(d *Dispatcher, s scene.State, frames []frame) scene.State {
	for _, f := range frames {
		s, _ = d.Tick(s, f.at)
		s, _ = d.Observe(s, f.at, f.g)
	}
	return s
}

func TestEndToEndScenario(t *testing.T) {
	d := New(DefaultConfig())
	play(d, scene.Default(), []frame{
		{0, gesture.None},
		{100 * ms, gesture.OpenPalm},
		{150 * ms, gesture.OpenPalm},
		{700 * ms, gesture.ThumbsUp},
	})

	want := []Record{
		{100 * ms, gesture.OpenPalm, ActionPulse},
		{700 * ms, gesture.ThumbsUp, ActionReset},
	}
	if !slices.Equal(d.Log(), want) {
		t.Errorf("Expected log %v, got %v", want, d.Log())
	}
}

func TestRepeatedGestureFiresOnce(t *testing.T) {
	d := New(DefaultConfig())
	play(d, scene.Default(), []frame{
		{0, gesture.Pinch},
		{200 * ms, gesture.Pinch},
		{400 * ms, gesture.Pinch},
		{2000 * ms, gesture.Pinch},
	})
	if len(d.Log()) != 1 {
		t.Errorf("Expected one action for a held pinch, got %v", d.Log())
	}
}

func TestDebounceSuppressesJitter(t *testing.T) {
	d := New(DefaultConfig())
	s := play(d, scene.Default(), []frame{
		{0, gesture.Pinch},
		{100 * ms, gesture.Unknown},
		{200 * ms, gesture.Pinch},
		{300 * ms, gesture.Unknown},
		{400 * ms, gesture.Pinch},
	})
	if len(d.Log()) != 1 {
		t.Fatalf("Expected jitter to be suppressed, got %v", d.Log())
	}
	if s.Scheme != 1 {
		t.Errorf("Expected one recolor, scheme=%d", s.Scheme)
	}
	if d.Last() != gesture.Pinch {
		t.Errorf("Expected suppressed frames to still update last gesture, got %s", d.Last())
	}
}

func TestUnknownConsumesWindowButHandLossDoesNot(t *testing.T) {
	tests := []struct {
		name    string
		between gesture.Gesture
		want    int
	}{
		{"Hand lost", gesture.None, 2},
		{"Unrecognised pose", gesture.Unknown, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New(DefaultConfig())
			play(d, scene.Default(), []frame{
				{0, gesture.Pinch},
				{600 * ms, tt.between},
				{700 * ms, gesture.Pinch},
			})
			if len(d.Log()) != tt.want {
				t.Errorf("Expected %d actions, got %v", tt.want, d.Log())
			}
		})
	}
}

func TestThreeFingersCyclesCatalog(t *testing.T) {
	d := New(DefaultConfig())
	s := scene.Default()
	start := s.Template

	var frames []frame
	for i := range len(spawn.Catalog) {
		at := time.Duration(i) * time.Second
		frames = append(frames, frame{at, gesture.ThreeFingers}, frame{at + 500*ms, gesture.None})
	}
	s = play(d, s, frames)

	if len(d.Log()) != len(spawn.Catalog) {
		t.Fatalf("Expected %d template switches, got %d", len(spawn.Catalog), len(d.Log()))
	}
	if s.Template != start || s.TemplateIndex != 0 {
		t.Errorf("Expected to cycle back to %s, got %s", start, s.Template)
	}
}

func TestPulseReverts(t *testing.T) {
	d := New(DefaultConfig())
	s, regen := d.Observe(scene.Default(), 0, gesture.OpenPalm)
	if regen {
		t.Error("Pulse should not resample the field")
	}
	if s.Expansion.Target != 2 {
		t.Fatalf("Expected target 2, got %v", s.Expansion.Target)
	}

	s, _ = d.Tick(s, 1999*ms)
	if s.Expansion.Target != 2 {
		t.Errorf("Reverted early: target %v", s.Expansion.Target)
	}
	s, _ = d.Tick(s, 2000*ms)
	if s.Expansion.Target != 1 {
		t.Errorf("Expected target back to 1, got %v", s.Expansion.Target)
	}
	if len(d.Pending()) != 0 {
		t.Errorf("Expected no pending reversions, got %v", d.Pending())
	}
}

func TestBurstRestoresPreviousTemplate(t *testing.T) {
	d := New(DefaultConfig())
	s := scene.Default().WithTemplate(spawn.Torus)

	s, regen := d.Observe(s, 0, gesture.Peace)
	if !regen || s.Template != spawn.Fireworks {
		t.Fatalf("Expected fireworks with resample, got %s regen=%v", s.Template, regen)
	}
	if s.TemplateIndex != spawn.Index(spawn.Torus) {
		t.Errorf("Burst should not move the catalog index, got %d", s.TemplateIndex)
	}

	s, regen = d.Tick(s, 3000*ms)
	if !regen || s.Template != spawn.Torus {
		t.Errorf("Expected torus restored with resample, got %s regen=%v", s.Template, regen)
	}
}

func TestOverlappingReversionsFireInIssuedOrder(t *testing.T) {
	d := New(DefaultConfig())
	s := play(d, scene.Default(), []frame{
		{0, gesture.Peace},
		{1000 * ms, gesture.ThreeFingers},
	})
	if s.Template != spawn.Heart {
		t.Fatalf("Expected heart after switching, got %s", s.Template)
	}

	s, _ = d.Tick(s, 3000*ms)
	if s.Template != spawn.Galaxy {
		t.Errorf("Expected the pending burst reversion to still restore galaxy, got %s", s.Template)
	}
	if s.TemplateIndex != 1 {
		t.Errorf("Expected catalog index to stay at 1, got %d", s.TemplateIndex)
	}
}

func TestDoubleBurst(t *testing.T) {
	frames := []frame{
		{0, gesture.Peace},
		{600 * ms, gesture.None},
		{1000 * ms, gesture.Peace},
	}

	tests := []struct {
		name      string
		supersede bool
		want      spawn.ID
		pending   int
	}{
		{"Both reversions fire", false, spawn.Fireworks, 2},
		{"Second supersedes first", true, spawn.Galaxy, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.SupersedeReversions = tt.supersede
			d := New(cfg)

			s := play(d, scene.Default(), frames)
			if len(d.Pending()) != tt.pending {
				t.Fatalf("Expected %d pending, got %v", tt.pending, d.Pending())
			}
			s, _ = d.Tick(s, 10*time.Second)
			if s.Template != tt.want {
				t.Errorf("Expected %s after reversions, got %s", tt.want, s.Template)
			}
		})
	}
}

func TestSupersedeDropsBurstOnTemplateSwitch(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SupersedeReversions = true
	d := New(cfg)

	s := play(d, scene.Default(), []frame{
		{0, gesture.Peace},
		{1000 * ms, gesture.ThreeFingers},
	})
	s, _ = d.Tick(s, 5*time.Second)
	if s.Template != spawn.Heart {
		t.Errorf("Expected heart to stick, got %s", s.Template)
	}
}

func TestResetAction(t *testing.T) {
	d := New(DefaultConfig())
	s := scene.Default().WithTemplate(spawn.Wave)
	s.Scheme = 2
	s.Expansion.Reset(1.8)

	s, regen := d.Observe(s, 0, gesture.ThumbsUp)
	if !regen {
		t.Error("Expected reset to resample")
	}
	if s.Template != spawn.Galaxy || s.TemplateIndex != 0 || s.Scheme != 0 {
		t.Errorf("Expected defaults, got %+v", s)
	}
	if s.Expansion.Current != 1 || s.Expansion.Target != 1 {
		t.Errorf("Expected expansion 1/1, got %+v", s.Expansion)
	}
}

func TestActionFor(t *testing.T) {
	tests := map[gesture.Gesture]Action{
		gesture.None:         ActionNone,
		gesture.Unknown:      ActionNone,
		gesture.OpenPalm:     ActionPulse,
		gesture.Pinch:        ActionRecolor,
		gesture.ThreeFingers: ActionNextTemplate,
		gesture.Peace:        ActionBurst,
		gesture.ThumbsUp:     ActionReset,
	}
	for g, want := range tests {
		if got := ActionFor(g); got != want {
			t.Errorf("ActionFor(%s): expected %s, got %s", g, want, got)
		}
	}
}
