package cmd

import (
	"github.com/nasaimg/nasaimg/output"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(albumCmd)

	albumCmd.Flags().BoolP("long", "l", false, "Print titles and descriptions instead of a table")
	addOutputFlags(albumCmd)

	albumCmd.MarkFlagsMutuallyExclusive("long", "json")
}

var albumCmd = &cobra.Command{
	Use:     "album <name>",
	Short:   "List the contents of an album",
	Long:    "List the contents of an album. Album names are case-sensitive.",
	Example: "  nasaimg album Mars",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		progress := newProgressLine()
		items, err := newClient(progress).Album(cmd.Context(), args[0])
		progress.done()
		handleErr(err)

		emit(cmd, &output.Envelope{
			Operation: "album",
			Query:     map[string]string{"album_name": args[0]},
			Count:     len(items),
			Result:    items,
		}, renderItems(cmd, items))
	},
}
