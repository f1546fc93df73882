package output

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/nasaimg/nasaimg/icon"
	"github.com/nasaimg/nasaimg/nasa"
	"github.com/nasaimg/nasaimg/util"
)

// fixedColumns is the rough width taken by every column but the title.
const fixedColumns = 60

// Table renders items as a rounded table sized for a terminal of the given
// width.
func Table(w io.Writer, items []nasa.MediaItem, width int) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Type", "NASA ID", "Title", "Created", "Center"})

	for i, item := range items {
		tw.AppendRow(table.Row{
			i + 1,
			icon.Get(icon.ForMediaType(stringField(item, "media_type"))),
			item.NasaID(),
			item.Title(),
			dateOnly(stringField(item, "date_created")),
			stringField(item, "center"),
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 4, WidthMax: util.Clamp(width-fixedColumns, 20, 120)},
	})

	tw.Render()
}

// dateOnly trims an RFC 3339 timestamp to its date.
func dateOnly(s string) string {
	if len(s) >= 10 {
		return s[:10]
	}
	return s
}
