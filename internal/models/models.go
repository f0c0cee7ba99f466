package models

import (
	"time"

	"github.com/ThatOtherAndrew/Handcloud/internal/config"
	"github.com/ThatOtherAndrew/Handcloud/internal/detector"
	"github.com/ThatOtherAndrew/Handcloud/internal/dispatch"
	"github.com/ThatOtherAndrew/Handcloud/internal/field"
	"github.com/ThatOtherAndrew/Handcloud/internal/gesture"
	"github.com/ThatOtherAndrew/Handcloud/internal/scene"
)

type App struct {
	Settings   *config.Settings
	Field      *field.Field
	State      scene.State
	Dispatcher *dispatch.Dispatcher

	Frames       <-chan detector.Frame
	SourceDone   bool
	Gesture      gesture.Gesture
	HandDetected bool
	OnAction     func(dispatch.Record)

	StartTime time.Time
	Elapsed   time.Duration
	Ticks     int

	PointVAO     uint32
	PositionVBO  uint32
	ColorVBO     uint32
	PointProgram uint32
	Width        int
	Height       int
	IsExiting    bool
}

// NewApp builds the simulation state described by settings. A zero seed
// picks one from the start time.
func NewApp(settings *config.Settings, start time.Time) *App {
	seed := settings.Seed
	if seed == 0 {
		seed = uint64(start.UnixNano())
	}

	state := scene.New(settings.SmoothingRate).WithTemplate(settings.Template())
	f := field.New(settings.ParticleCount, seed, settings.Workers)
	f.Regenerate(state.Template, state.Scheme)

	return &App{
		Settings:   settings,
		Field:      f,
		State:      state,
		Dispatcher: dispatch.New(settings.Dispatch()),
		Gesture:    gesture.None,
		StartTime:  start,
	}
}
