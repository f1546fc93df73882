package cmd

import (
	"context"
	"os"

	"github.com/nasaimg/nasaimg/color"
	"github.com/nasaimg/nasaimg/icon"
	"github.com/nasaimg/nasaimg/nasa"
	"github.com/nasaimg/nasaimg/style"
	"github.com/nasaimg/nasaimg/util"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(demoCmd)
	demoCmd.SetOut(os.Stdout)
}

// demoStep is one call of the demonstration run.
type demoStep struct {
	name string
	run  func(ctx context.Context, c *nasa.Client) (string, error)
}

var demoSteps = []demoStep{
	{"search Uranus", func(ctx context.Context, c *nasa.Client) (string, error) {
		items, err := c.Search(ctx, nasa.SearchQuery{Q: mo.Some("Uranus")})
		return util.Quantify(len(items), "item", "items"), err
	}},
	{"asset PIA01535", func(ctx context.Context, c *nasa.Client) (string, error) {
		entries, err := c.Asset(ctx, "PIA01535")
		return util.Quantify(len(entries), "file", "files"), err
	}},
	{"metadata PIA01535", func(ctx context.Context, c *nasa.Client) (string, error) {
		return c.Metadata(ctx, "PIA01535")
	}},
	{"captions PIA01535", func(ctx context.Context, c *nasa.Client) (string, error) {
		return c.Captions(ctx, "PIA01535")
	}},
	{"album Mars", func(ctx context.Context, c *nasa.Client) (string, error) {
		items, err := c.Album(ctx, "Mars")
		return util.Quantify(len(items), "item", "items"), err
	}},
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Call every endpoint once with example arguments",
	Run: func(cmd *cobra.Command, args []string) {
		progress := newProgressLine()
		client := newClient(progress)

		for _, step := range demoSteps {
			summary, err := step.run(cmd.Context(), client)
			progress.done()

			if err != nil {
				if cmd.Context().Err() != nil {
					handleErr(err)
				}

				msg := err.Error()
				if reason := nasa.Reason(err); reason != "" {
					msg = reason
				}
				cmd.Printf("%s %s: %s\n", style.Fg(color.Red)(icon.Get(icon.Fail)), step.name, msg)
				continue
			}

			cmd.Printf("%s %s: %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), step.name, style.Fg(color.Yellow)(summary))
		}
	},
}
