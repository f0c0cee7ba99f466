package update

import (
	"fmt"
	"log"
	"time"

	"github.com/ThatOtherAndrew/Handcloud/internal/detector"
	"github.com/ThatOtherAndrew/Handcloud/internal/gesture"
	"github.com/ThatOtherAndrew/Handcloud/internal/models"
	"github.com/ThatOtherAndrew/Handcloud/internal/scene"
	"github.com/ThatOtherAndrew/Handcloud/internal/spawn"
)

type App struct {
	app *models.App
}

func New(app *models.App) *App {
	return &App{app: app}
}

// Tick runs one simulation step at elapsed time since start, dt after the
// previous one. Deferred commands due by now fire first, then every frame the
// detector delivered since the last tick is classified and dispatched, then
// the field is resampled if any command asked for it and finally advanced.
func (a *App) Tick(elapsed, dt time.Duration) {
	app := a.app
	before := app.State
	logged := len(app.Dispatcher.Log())

	s, regenerate := app.Dispatcher.Tick(app.State, elapsed)

	if app.Frames != nil {
		frames, closed := detector.Drain(app.Frames)
		if closed {
			log.Printf("Skeleton source finished")
			app.Frames = nil
			app.SourceDone = true
		}
		for _, f := range frames {
			var r bool
			s, r = a.Observe(s, elapsed, f)
			regenerate = regenerate || r
		}
	}

	if regenerate {
		app.Field.Regenerate(s.Template, s.Scheme)
		if s.Template != before.Template {
			log.Printf("Template: %s -> %s", before.Template, s.Template)
		}
	}

	s = s.Step(dt)
	app.Field.Advance(dt, s.Expansion.Current, s.Template)

	app.State = s
	app.Elapsed = elapsed
	app.Ticks++

	for _, rec := range app.Dispatcher.Log()[logged:] {
		log.Printf("Action at %v: %s -> %s", rec.At, rec.Gesture, rec.Action)
		if app.OnAction != nil {
			app.OnAction(rec)
		}
	}
}

// Observe classifies one detector frame and feeds it to the dispatcher.
func (a *App) Observe(s scene.State, now time.Duration, f detector.Frame) (scene.State, bool) {
	g := gesture.Classify(f.Skeleton)
	a.app.Gesture = g
	a.app.HandDetected = f.Hand()
	return a.app.Dispatcher.Observe(s, now, g)
}

// Status is the one-line summary shown to the user.
func (a *App) Status() string {
	hand := "No hand detected"
	if a.app.HandDetected {
		hand = fmt.Sprintf("Gesture: %s", a.app.Gesture)
	}
	return fmt.Sprintf("%s | Template: %s | Palette: %s | Expansion: %.2f",
		hand, spawn.At(a.app.State.TemplateIndex).Title(), a.app.State.Palette().Name, a.app.State.Expansion.Current)
}
