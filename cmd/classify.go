package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/ThatOtherAndrew/Handcloud/internal/detector"
	"github.com/ThatOtherAndrew/Handcloud/internal/dispatch"
	"github.com/ThatOtherAndrew/Handcloud/internal/gesture"
	"github.com/ThatOtherAndrew/Handcloud/internal/scene"
	"github.com/spf13/cobra"
)

var (
	classifyInterval time.Duration
	classifyFrames   bool
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify a skeleton stream and print the dispatched actions",
	Long: `Reads a skeleton stream without rendering. Frames carrying a "t" field
(milliseconds) are placed at that time; other frames are spaced by --interval.`,
	Run: Classify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)

	classifyCmd.Flags().DurationVar(&classifyInterval, "interval", demoInterval, "time between unstamped frames")
	classifyCmd.Flags().BoolVar(&classifyFrames, "frames", false, "print the gesture of every frame")
}

func Classify(cmd *cobra.Command, args []string) {
	settings, err := loadSettings(cmd)
	if err != nil {
		log.Fatal("Failed to load settings:", err)
	}
	r, err := openInput()
	if err != nil {
		log.Fatal("Failed to open input:", err)
	}

	out := cmd.OutOrStdout()
	d := dispatch.New(settings.Dispatch())
	s := scene.New(settings.SmoothingRate).WithTemplate(settings.Template())

	reader := detector.NewReader(r)
	var now time.Duration
	for {
		f, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		var de *detector.DecodeError
		if errors.As(err, &de) {
			log.Printf("Treating as no hand: %v", de)
		} else if err != nil {
			log.Fatal("Failed to read input:", err)
		}

		now = time.Duration(f.Seq) * classifyInterval
		if f.Stamped {
			now = f.At
		}

		s, _ = d.Tick(s, now)
		g := gesture.Classify(f.Skeleton)
		logged := len(d.Log())
		s, _ = d.Observe(s, now, g)

		if classifyFrames {
			fmt.Fprintf(out, "%10s  %s\n", formatMillis(now), g)
		}
		for _, rec := range d.Log()[logged:] {
			fmt.Fprintf(out, "%10s  %-14s -> %s\n", formatMillis(rec.At), rec.Gesture, rec.Action)
		}
	}

	// let pending reversions play out so the final state is settled
	if next := d.Pending(); len(next) > 0 {
		now = next[len(next)-1].At
		s, _ = d.Tick(s, now)
	}

	fmt.Fprintf(out, "%d action(s); template %s, palette %s\n", len(d.Log()), s.Template, s.Palette().Name)
}

func formatMillis(d time.Duration) string {
	return fmt.Sprintf("%.0fms", float64(d)/float64(time.Millisecond))
}
