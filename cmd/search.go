package cmd

import (
	"errors"
	"io"
	"strings"

	"github.com/nasaimg/nasaimg/key"
	"github.com/nasaimg/nasaimg/nasa"
	"github.com/nasaimg/nasaimg/output"
	"github.com/nasaimg/nasaimg/query"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// searchFilter binds one command line flag to a SearchQuery field.
type searchFilter struct {
	flag  string
	usage string
	field func(*nasa.SearchQuery) *mo.Option[string]
}

var searchFilters = []searchFilter{
	{"center", "NASA center which published the media", func(q *nasa.SearchQuery) *mo.Option[string] { return &q.Center }},
	{"description", "Terms to search for in Description fields", func(q *nasa.SearchQuery) *mo.Option[string] { return &q.Description }},
	{"description-508", "Terms to search for in 508 Description fields", func(q *nasa.SearchQuery) *mo.Option[string] { return &q.Description508 }},
	{"keywords", "Terms to search for in Keywords fields, comma separated", func(q *nasa.SearchQuery) *mo.Option[string] { return &q.Keywords }},
	{"location", "Terms to search for in Location fields", func(q *nasa.SearchQuery) *mo.Option[string] { return &q.Location }},
	{"media-type", "Media types to restrict to: image, video, audio, comma separated", func(q *nasa.SearchQuery) *mo.Option[string] { return &q.MediaType }},
	{"nasa-id", "The media asset's NASA ID", func(q *nasa.SearchQuery) *mo.Option[string] { return &q.NasaID }},
	{"photographer", "The primary photographer's name", func(q *nasa.SearchQuery) *mo.Option[string] { return &q.Photographer }},
	{"secondary-creator", "A secondary photographer or videographer's name", func(q *nasa.SearchQuery) *mo.Option[string] { return &q.SecondaryCreator }},
	{"title", "Terms to search for in Title fields", func(q *nasa.SearchQuery) *mo.Option[string] { return &q.Title }},
	{"year-start", "The start year for results (YYYY)", func(q *nasa.SearchQuery) *mo.Option[string] { return &q.YearStart }},
	{"year-end", "The end year for results (YYYY)", func(q *nasa.SearchQuery) *mo.Option[string] { return &q.YearEnd }},
}

func init() {
	rootCmd.AddCommand(searchCmd)

	for _, f := range searchFilters {
		searchCmd.Flags().String(f.flag, "", f.usage)
	}

	searchCmd.Flags().BoolP("long", "l", false, "Print titles and descriptions instead of a table")
	addOutputFlags(searchCmd)

	searchCmd.MarkFlagsMutuallyExclusive("long", "json")
}

var searchCmd = &cobra.Command{
	Use:     "search [text...]",
	Short:   "Search the library",
	Long:    "Search the library. Free text is compared to all indexed metadata; flags narrow the search to single fields.",
	Example: "  nasaimg search Uranus\n  nasaimg search --center JPL --media-type image --year-start 1986 rings",
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		q := searchQueryFrom(cmd, args)
		if q.IsEmpty() {
			handleErr(errors.New("give search text or at least one filter flag"))
		}

		if text, ok := q.Q.Get(); ok {
			_ = query.Remember(text, 1)
		}

		progress := newProgressLine()
		items, err := newClient(progress).Search(cmd.Context(), q)
		progress.done()
		handleErr(err)

		emit(cmd, &output.Envelope{
			Operation: "search",
			Query:     queryParams(q),
			Count:     len(items),
			Result:    items,
		}, renderItems(cmd, items))
	},
}

// searchQueryFrom collects the positional text and the filter flags that were given.
func searchQueryFrom(cmd *cobra.Command, args []string) nasa.SearchQuery {
	var q nasa.SearchQuery

	q.Q = mo.EmptyableToOption(strings.TrimSpace(strings.Join(args, " ")))
	for _, f := range searchFilters {
		if cmd.Flags().Changed(f.flag) {
			*f.field(&q) = mo.Some(lo.Must(cmd.Flags().GetString(f.flag)))
		}
	}

	return q
}

func queryParams(q nasa.SearchQuery) map[string]string {
	values := q.Values()
	return lo.MapValues(values, func(v []string, _ string) string {
		return strings.Join(v, ",")
	})
}

// renderItems picks the table or the long view.
func renderItems(cmd *cobra.Command, items []nasa.MediaItem) func(io.Writer) error {
	return func(w io.Writer) error {
		if lo.Must(cmd.Flags().GetBool("long")) {
			return output.Details(w, items, viper.GetInt(key.OutputWrap))
		}

		output.Table(w, items, terminalWidth())
		return nil
	}
}
