// Package cmd implements the command-line interface for nasaimg.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/nasaimg/nasaimg/color"
	"github.com/nasaimg/nasaimg/constant"
	"github.com/nasaimg/nasaimg/icon"
	"github.com/nasaimg/nasaimg/key"
	"github.com/nasaimg/nasaimg/log"
	"github.com/nasaimg/nasaimg/nasa"
	"github.com/nasaimg/nasaimg/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the icon variant (emoji, plain, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().Bool("progress", true, "Show page progress while paginating")
	lo.Must0(viper.BindPFlag(key.CliProgress, rootCmd.PersistentFlags().Lookup("progress")))

	rootCmd.PersistentFlags().Duration("page-delay", time.Second, "Pause before each page request")
	lo.Must0(viper.BindPFlag(key.APIPageDelay, rootCmd.PersistentFlags().Lookup("page-delay")))
}

var rootCmd = &cobra.Command{
	Use:   constant.Nasaimg,
	Short: "Search and browse the NASA Image and Video Library",
	Long: constant.AsciiArtLogo + "\n\n" +
		style.New().Italic(true).Foreground(color.HiCyan).Render("    - Search and browse the NASA Image and Video Library"),
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the command tree until completion or interrupt.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		handleErr(err)
	}
}

// handleErr prints err and exits. API failures print the API's own reason.
func handleErr(err error) {
	if err == nil {
		return
	}

	log.Error(err)

	msg := strings.Trim(err.Error(), " \n")
	if reason := nasa.Reason(err); reason != "" {
		msg = reason
	}

	_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), msg)
	os.Exit(1)
}
