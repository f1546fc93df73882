package cmd

import (
	"fmt"

	"github.com/nasaimg/nasaimg/icon"
	"github.com/nasaimg/nasaimg/query"
	"github.com/nasaimg/nasaimg/util"
	"github.com/nasaimg/nasaimg/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type clearTarget struct {
	name    string
	argLong string
	clear   func() error
}

var clearTargets = []clearTarget{
	{"queries history", "queries", query.Forget},
	{"logs", "logs", func() error { return util.Delete(where.Logs()) }},
	{"cache directory", "cache", func() error { return util.Delete(where.Cache()) }},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		clearCmd.Flags().Bool(target.argLong, false, "clear "+target.name)
	}
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear stored history, logs or cache",
	Run: func(cmd *cobra.Command, args []string) {
		var anyCleared bool

		for _, target := range clearTargets {
			if !lo.Must(cmd.Flags().GetBool(target.argLong)) {
				continue
			}

			anyCleared = true
			handleErr(target.clear())
			fmt.Printf("%s %s cleared\n", icon.Get(icon.Success), util.Capitalize(target.name))
		}

		if !anyCleared {
			handleErr(cmd.Help())
		}
	},
}
