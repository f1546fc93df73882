package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/nasaimg/nasaimg/filesystem"
	"github.com/nasaimg/nasaimg/icon"
	"github.com/nasaimg/nasaimg/key"
	"github.com/nasaimg/nasaimg/log"
	"github.com/nasaimg/nasaimg/nasa"
	"github.com/nasaimg/nasaimg/output"
	"github.com/nasaimg/nasaimg/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// progressLine keeps a single erasable progress line on stderr.
type progressLine struct {
	enabled bool
	erase   func()
}

func newProgressLine() *progressLine {
	fd := os.Stderr.Fd()
	return &progressLine{
		enabled: viper.GetBool(key.CliProgress) && (isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)),
	}
}

func (p *progressLine) report(progress nasa.Progress) {
	log.Infof("%s: %s", progress.Operation, progress)
	if !p.enabled {
		return
	}

	p.done()
	p.erase = util.PrintErasable(os.Stderr, fmt.Sprintf("%s %s", icon.Get(icon.Progress), progress))
}

func (p *progressLine) done() {
	if p.erase != nil {
		p.erase()
		p.erase = nil
	}
}

// newClient builds an API client from the current configuration.
func newClient(progress *progressLine) *nasa.Client {
	return nasa.New(
		nasa.WithBaseURL(viper.GetString(key.APIBaseURL)),
		nasa.WithUserAgent(viper.GetString(key.APIUserAgent)),
		nasa.WithPageDelay(viper.GetDuration(key.APIPageDelay)),
		nasa.WithProgress(progress.report),
	)
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	cmd.Flags().StringP("output", "o", "", "Write the output to a file instead of stdout")
}

// emit writes env as JSON when --json is set, otherwise through render.
func emit(cmd *cobra.Command, env *output.Envelope, render func(io.Writer) error) {
	var (
		asJson = lo.Must(cmd.Flags().GetBool("json"))
		path   = lo.Must(cmd.Flags().GetString("output"))
	)

	if asJson {
		render = func(w io.Writer) error {
			return output.WriteJSON(w, env)
		}
	}

	if path == "" {
		handleErr(render(cmd.OutOrStdout()))
		return
	}

	handleErr(writeFile(path, render))
}

// writeFile renders into path and closes it before reporting any error.
func writeFile(path string, render func(io.Writer) error) error {
	file, err := filesystem.API().Create(path)
	if err != nil {
		return err
	}

	if err = render(file); err != nil {
		util.Ignore(file.Close)
		return err
	}

	return file.Close()
}

// terminalWidth falls back to 120 columns when stdout is not a terminal.
func terminalWidth() int {
	width, _, err := util.TerminalSize()
	if err != nil || width <= 0 {
		return 120
	}
	return width
}
