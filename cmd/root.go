package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "handcloud",
	Short: "A particle cloud you shape with hand gestures",
	Long: `Handcloud renders a point cloud laid out from a catalog of procedural
templates. Hand skeletons streamed as newline-delimited JSON are classified
into gestures that pulse, recolor, switch and reset the cloud.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&settingsPath, "config", "", "settings file (default ~/.config/handcloud/settings.json)")
	flags.StringVarP(&inputPath, "input", "i", "-", "skeleton stream to read, - for stdin")
	flags.IntVar(&demoLoops, "demo", 0, "replay a scripted gesture tour this many times instead of reading input")
	flags.IntVarP(&particleCount, "particles", "n", 0, "override particle_count")
	flags.Uint64Var(&seed, "seed", 0, "override seed")
	flags.StringVarP(&templateName, "template", "t", "", "override initial_template")
	flags.BoolVar(&sound, "sound", false, "override sound")
	flags.BoolVar(&supersede, "supersede", false, "override supersede_reversions")

	rootCmd.RegisterFlagCompletionFunc("template", completeTemplates)
}
