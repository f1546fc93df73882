package cmd

import (
	"fmt"
	"io"

	"github.com/nasaimg/nasaimg/output"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(assetCmd, metadataCmd, captionsCmd)

	for _, c := range []*cobra.Command{assetCmd, metadataCmd, captionsCmd} {
		addOutputFlags(c)
	}
}

var assetCmd = &cobra.Command{
	Use:     "asset <nasa-id>",
	Short:   "List the files of a media asset",
	Example: "  nasaimg asset PIA01535",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		entries, err := newClient(newProgressLine()).Asset(cmd.Context(), args[0])
		handleErr(err)

		emit(cmd, &output.Envelope{
			Operation: "asset",
			Query:     map[string]string{"nasa_id": args[0]},
			Count:     len(entries),
			Result:    entries,
		}, func(w io.Writer) error {
			return output.Manifest(w, entries)
		})
	},
}

var metadataCmd = &cobra.Command{
	Use:     "metadata <nasa-id>",
	Short:   "Print the location of a media asset's metadata file",
	Example: "  nasaimg metadata PIA01535",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		loc, err := newClient(newProgressLine()).Metadata(cmd.Context(), args[0])
		handleErr(err)
		emitLocation(cmd, "metadata", args[0], loc)
	},
}

var captionsCmd = &cobra.Command{
	Use:     "captions <nasa-id>",
	Short:   "Print the location of a video asset's captions file",
	Example: "  nasaimg captions 172_ISS-Slosh",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		loc, err := newClient(newProgressLine()).Captions(cmd.Context(), args[0])
		handleErr(err)
		emitLocation(cmd, "captions", args[0], loc)
	},
}

func emitLocation(cmd *cobra.Command, operation, nasaID, loc string) {
	emit(cmd, &output.Envelope{
		Operation: operation,
		Query:     map[string]string{"nasa_id": nasaID},
		Count:     1,
		Result:    loc,
	}, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, loc)
		return err
	})
}
