// Package dispatch turns a per-frame gesture stream into edge-triggered,
// debounced commands on the view state.
package dispatch

import (
	"time"

	"github.com/ThatOtherAndrew/Handcloud/internal/gesture"
	"github.com/ThatOtherAndrew/Handcloud/internal/scene"
	"github.com/ThatOtherAndrew/Handcloud/internal/spawn"
)

// Action is what a gesture asks the scene to do.
type Action string

const (
	ActionNone         Action = "none"
	ActionPulse        Action = "pulse"
	ActionRecolor      Action = "recolor"
	ActionNextTemplate Action = "next_template"
	ActionBurst        Action = "burst"
	ActionReset        Action = "reset"
)

// ActionFor maps a gesture to its action.
func ActionFor(g gesture.Gesture) Action {
	switch g {
	case gesture.OpenPalm:
		return ActionPulse
	case gesture.Pinch:
		return ActionRecolor
	case gesture.ThreeFingers:
		return ActionNextTemplate
	case gesture.Peace:
		return ActionBurst
	case gesture.ThumbsUp:
		return ActionReset
	}
	return ActionNone
}

// Record is one dispatched action.
type Record struct {
	At      time.Duration
	Gesture gesture.Gesture
	Action  Action
}

// Config tunes the dispatcher's timing.
type Config struct {
	// Debounce is the minimum gap between two dispatched actions.
	Debounce time.Duration
	// PulseExpansion is the expansion target an open palm sets.
	PulseExpansion float32
	// PulseDuration is how long before the expansion target returns to 1.
	PulseDuration time.Duration
	// BurstDuration is how long the fireworks burst lasts.
	BurstDuration time.Duration
	// SupersedeReversions makes a new action replace pending reversions it
	// conflicts with instead of letting both fire.
	SupersedeReversions bool
}

// DefaultConfig returns the stock timing.
func DefaultConfig() Config {
	return Config{
		Debounce:       500 * time.Millisecond,
		PulseExpansion: 2.0,
		PulseDuration:  2000 * time.Millisecond,
		BurstDuration:  3000 * time.Millisecond,
	}
}

// Dispatcher holds the last observed gesture and when an action last fired.
// Time is a logical clock: the caller passes the elapsed time since start.
type Dispatcher struct {
	cfg Config

	last       gesture.Gesture
	lastAction time.Duration
	acted      bool

	queue Scheduler
	log   []Record
}

// New returns a dispatcher that has seen no hand yet.
func New(cfg Config) *Dispatcher {
	return &Dispatcher{cfg: cfg, last: gesture.None}
}

// Observe feeds one classification at time now. Only a change of symbol can
// fire an action, and only once the debounce window since the previous
// action has passed. Losing the hand updates the last symbol without using
// up the window. It returns the new state and whether the particle field
// needs resampling.
func (d *Dispatcher) Observe(s scene.State, now time.Duration, g gesture.Gesture) (scene.State, bool) {
	if g == d.last {
		return s, false
	}
	d.last = g

	if g == gesture.None {
		return s, false
	}
	if d.acted && now-d.lastAction < d.cfg.Debounce {
		return s, false
	}
	d.acted = true
	d.lastAction = now

	action := ActionFor(g)
	if action == ActionNone {
		return s, false
	}
	d.log = append(d.log, Record{At: now, Gesture: g, Action: action})
	return d.dispatch(s, now, action)
}

func (d *Dispatcher) dispatch(s scene.State, now time.Duration, action Action) (scene.State, bool) {
	switch action {
	case ActionPulse:
		if d.cfg.SupersedeReversions {
			d.queue.Cancel(ActionPulse)
		}
		s, _ = scene.Command{Kind: scene.SetExpansionTarget, Value: d.cfg.PulseExpansion}.Apply(s)
		d.queue.Schedule(now+d.cfg.PulseDuration, ActionPulse,
			scene.Command{Kind: scene.SetExpansionTarget, Value: 1})
		return s, false

	case ActionRecolor:
		return scene.Command{Kind: scene.CycleScheme}.Apply(s)

	case ActionNextTemplate:
		if d.cfg.SupersedeReversions {
			d.queue.Cancel(ActionBurst)
		}
		return scene.Command{Kind: scene.CycleTemplate}.Apply(s)

	case ActionBurst:
		restore := s.Template
		if d.cfg.SupersedeReversions {
			// keep returning to the template from before the first burst
			if pending := d.queue.Cancel(ActionBurst); len(pending) > 0 {
				restore = pending[0].Command.Template
			}
		}
		var regen bool
		s, regen = scene.Command{Kind: scene.SetTemplate, Template: spawn.Fireworks}.Apply(s)
		d.queue.Schedule(now+d.cfg.BurstDuration, ActionBurst,
			scene.Command{Kind: scene.SetTemplate, Template: restore})
		return s, regen

	case ActionReset:
		if d.cfg.SupersedeReversions {
			d.queue.Clear()
		}
		return scene.Command{Kind: scene.Reset}.Apply(s)
	}
	return s, false
}

// Tick fires every deferred command due at now.
func (d *Dispatcher) Tick(s scene.State, now time.Duration) (scene.State, bool) {
	regenerate := false
	for _, ev := range d.queue.Due(now) {
		var r bool
		s, r = ev.Command.Apply(s)
		regenerate = regenerate || r
	}
	return s, regenerate
}

// Last returns the most recently observed gesture.
func (d *Dispatcher) Last() gesture.Gesture {
	return d.last
}

// Log returns every dispatched action in order.
func (d *Dispatcher) Log() []Record {
	return d.log
}

// Pending returns the deferred commands not yet fired.
func (d *Dispatcher) Pending() []Scheduled {
	return d.queue.Pending()
}
