package cmd

import (
	"fmt"
	"strings"

	"github.com/ThatOtherAndrew/Handcloud/internal/dispatch"
	"github.com/ThatOtherAndrew/Handcloud/internal/gesture"
	"github.com/ThatOtherAndrew/Handcloud/internal/palette"
	"github.com/ThatOtherAndrew/Handcloud/internal/spawn"
	"github.com/spf13/cobra"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the templates, palettes and gestures",
	Run:   listTemplates,
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}

func listTemplates(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Templates:")
	for i, id := range spawn.Catalog {
		motion := ""
		if id.Moving() {
			motion = " (animated)"
		}
		fmt.Fprintf(out, "  %2d  %s%s\n", i, id, motion)
	}

	fmt.Fprintln(out, "Palettes:")
	for _, scheme := range palette.Schemes {
		hex := make([]string, len(scheme.Colors))
		for i, c := range scheme.Colors {
			hex[i] = c.Hex()
		}
		fmt.Fprintf(out, "  %-7s %s\n", scheme.Name, strings.Join(hex, " "))
	}

	fmt.Fprintln(out, "Gestures:")
	for _, g := range gesture.All {
		if a := dispatch.ActionFor(g); a != dispatch.ActionNone {
			fmt.Fprintf(out, "  %-14s %s\n", g, a)
		}
	}
}

func completeTemplates(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	names := make([]string, 0, len(spawn.Catalog))
	for _, id := range spawn.Catalog {
		if strings.HasPrefix(string(id), toComplete) {
			names = append(names, string(id))
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
