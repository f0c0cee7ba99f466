package cmd

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/ThatOtherAndrew/Handcloud/internal/clock"
	"github.com/ThatOtherAndrew/Handcloud/internal/models"
	"github.com/ThatOtherAndrew/Handcloud/internal/scene"
	"github.com/ThatOtherAndrew/Handcloud/internal/terminal"
	"github.com/ThatOtherAndrew/Handcloud/internal/update"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
)

var previewLog string

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render the cloud in the terminal",
	Run:   Preview,
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().StringVar(&previewLog, "log", "", "write log output to this file instead of discarding it")
}

func Preview(cmd *cobra.Command, args []string) {
	settings, err := loadSettings(cmd)
	if err != nil {
		log.Fatal("Failed to load settings:", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal("Failed to create screen:", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal("Failed to initialize screen:", err)
	}
	defer screen.Fini()

	// the screen owns the terminal from here on
	log.SetOutput(io.Discard)
	if previewLog != "" {
		f, err := os.OpenFile(previewLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err == nil {
			defer f.Close()
			log.SetOutput(f)
		}
	}

	app := models.NewApp(settings, time.Now())

	src, err := startSource(cmd.Context(), app)
	if err != nil {
		screen.Fini()
		log.SetOutput(os.Stderr)
		log.Fatal("Failed to start skeleton source:", err)
	}
	defer src.stop()

	player := startCues(app)
	defer player.Close()

	updater := update.New(app)
	view := terminal.New(app, screen, updater.Status)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	frames := time.NewTicker(scene.FrameTime)
	defer frames.Stop()
	ticker := clock.NewTicker(clock.NewReal())

	for {
		select {
		case ev := <-events:
			if !view.HandleEvent(ev) {
				return
			}
		case <-frames.C:
			updater.Tick(ticker.Tick())
			view.Draw()
		}
	}
}
