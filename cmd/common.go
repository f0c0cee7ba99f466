package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/ThatOtherAndrew/Handcloud/internal/clock"
	"github.com/ThatOtherAndrew/Handcloud/internal/config"
	"github.com/ThatOtherAndrew/Handcloud/internal/cue"
	"github.com/ThatOtherAndrew/Handcloud/internal/detector"
	"github.com/ThatOtherAndrew/Handcloud/internal/models"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// demoInterval is the frame spacing of the scripted tour, about 30 fps.
const demoInterval = 33 * time.Millisecond

var (
	settingsPath  string
	inputPath     string
	demoLoops     int
	particleCount int
	seed          uint64
	templateName  string
	sound         bool
	supersede     bool
)

func loadSettings(cmd *cobra.Command) (*config.Settings, error) {
	var settings *config.Settings
	var err error
	if settingsPath != "" {
		settings, err = config.LoadSettingsFrom(settingsPath)
	} else {
		settings, err = config.LoadSettings()
	}
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("particles") {
		settings.ParticleCount = particleCount
	}
	if flags.Changed("seed") {
		settings.Seed = seed
	}
	if flags.Changed("template") {
		settings.InitialTemplate = templateName
	}
	if flags.Changed("sound") {
		settings.Sound = sound
	}
	if flags.Changed("supersede") {
		settings.SupersedeReversions = supersede
	}
	settings.Validate()
	return settings, nil
}

func openInput() (io.Reader, error) {
	if demoLoops > 0 {
		var buf bytes.Buffer
		if err := detector.WriteScript(&buf, detector.DemoScript(demoLoops), demoInterval); err != nil {
			return nil, err
		}
		return &buf, nil
	}
	if inputPath == "" || inputPath == "-" {
		return os.Stdin, nil
	}
	f, err := os.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	return f, nil
}

// source is a detector stream running in the background.
type source struct {
	stream *detector.Stream
	cancel context.CancelFunc
	group  *errgroup.Group
}

func startSource(ctx context.Context, app *models.App) (*source, error) {
	r, err := openInput()
	if err != nil {
		return nil, err
	}

	stream := detector.NewStream(r, clock.NewReal(), detector.Config{Buffer: 8, Paced: true})
	app.Frames = stream.Frames()

	ctx, cancel := context.WithCancel(ctx)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return stream.Run(ctx)
	})
	return &source{stream: stream, cancel: cancel, group: g}, nil
}

// stop cancels the reader. A reader blocked on a terminal may not return, so
// it is given a moment and then abandoned.
func (s *source) stop() {
	s.cancel()
	if err := s.stream.Close(); err != nil {
		log.Printf("Failed to close input: %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- s.group.Wait() }()
	select {
	case err := <-done:
		if err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("Skeleton source failed: %v", err)
		}
	case <-time.After(200 * time.Millisecond):
	}
}

func startCues(app *models.App) *cue.Player {
	if !app.Settings.Sound {
		return nil
	}
	player, err := cue.New(0.5)
	if err != nil {
		// Non-fatal, the cloud runs without sound
		log.Printf("Audio initialization failed: %v", err)
		return nil
	}
	app.OnAction = player.Play
	return player
}
