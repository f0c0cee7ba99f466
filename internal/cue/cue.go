// Package cue plays a short tone for every dispatched action.
package cue

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/ThatOtherAndrew/Handcloud/internal/dispatch"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	SampleRate = beep.SampleRate(44100)
	Duration   = 120 * time.Millisecond
	Attack     = 5 * time.Millisecond
	Release    = 60 * time.Millisecond
)

// Notes lists the frequencies sounded together for each action.
var Notes = map[dispatch.Action][]float64{
	dispatch.ActionPulse:        {523.25},
	dispatch.ActionRecolor:      {659.25},
	dispatch.ActionNextTemplate: {783.99},
	dispatch.ActionBurst:        {1046.50, 1318.51},
	dispatch.ActionReset:        {392.00, 261.63},
}

// Tone builds the cue for action at volume in [0, 1]. Actions without a
// cue return nil.
func Tone(action dispatch.Action, volume float64) (beep.Streamer, error) {
	freqs, ok := Notes[action]
	if !ok {
		return nil, nil
	}

	voices := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		sine, err := generators.SineTone(SampleRate, f)
		if err != nil {
			return nil, fmt.Errorf("tone %.2f Hz: %w", f, err)
		}
		shaped := newEnvelope(beep.Take(SampleRate.N(Duration), sine), Duration, Attack, Release, SampleRate)
		voices = append(voices, newVolume(shaped, 1/float64(len(freqs))))
	}
	return newVolume(beep.Mix(voices...), volume), nil
}

// Player mixes cues onto the speaker.
type Player struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	volume  float64
	lock    func()
	unlock  func()
	release func()
	closed  bool
}

// New opens the speaker. Callers treat an error as "no sound" and carry on.
func New(volume float64) (*Player, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	p := newPlayer(volume, speaker.Lock, speaker.Unlock)
	p.release = speaker.Close
	speaker.Play(p.mixer)
	return p, nil
}

func newPlayer(volume float64, lock, unlock func()) *Player {
	return &Player{mixer: &beep.Mixer{}, volume: volume, lock: lock, unlock: unlock}
}

// Play queues the cue for rec. It is safe to call on a nil Player.
func (p *Player) Play(rec dispatch.Record) {
	if p == nil {
		return
	}
	s, err := Tone(rec.Action, p.volume)
	if err != nil || s == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.lock()
	p.mixer.Add(s)
	p.unlock()
}

// Close stops playback and releases the speaker.
func (p *Player) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	p.lock()
	p.mixer.Clear()
	p.unlock()
	if p.release != nil {
		p.release()
	}
}

// Silent volumes are handled apart since log2(0) is -Inf.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
