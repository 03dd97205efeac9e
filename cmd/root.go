// Package cmd provides command-line interface commands for dcolor
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	dctx "github.com/yeisme/dcolor/pkg/context"
	log2 "github.com/yeisme/dcolor/pkg/utils/log"
	"github.com/yeisme/dcolor/pkg/utils/version"
)

var (
	dcolorCtx *dctx.DcolorContext
	log       log2.Logger

	// Global flags
	globalFlags = dctx.GlobalFlags{}
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dcolor",
	Short: "dcolor turns text into colored Discord messages",
	Long: `dcolor is a command line tool that wraps text in ANSI color codes inside a
Discord "ansi" code block, so the message shows up colored in the Discord client.

Select a part of the text, pick foreground/background colors from the Discord
palette, optionally make it bold or underlined, and paste the output into Discord.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if globalFlags.VersionEnable {
			fmt.Fprintln(cmd.OutOrStdout(), version.GetShortVersionString())
			return nil
		}
		return cmd.Help()
	},
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		ctx, err := dctx.InitDcolorContext(cmd.Context(), globalFlags)
		if err != nil {
			return err
		}

		dcolorCtx = ctx
		log = ctx.Logger

		log.Debug().Msgf("Execute Command: %s %s", "dcolor", strings.Join(os.Args[1:], " "))
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&globalFlags.ConfigPath, "config", "c", "", "config file")
	rootCmd.PersistentFlags().BoolVar(&globalFlags.Debug, "debug", false, "enable debug mode (prints additional information)")
	rootCmd.PersistentFlags().BoolVarP(&globalFlags.Verbose, "verbose", "V", false, "enable verbose output (prints more detailed information)")
	rootCmd.PersistentFlags().BoolVar(&globalFlags.Quiet, "quiet", false, "suppress all log output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
	rootCmd.Flags().BoolVarP(&globalFlags.VersionEnable, "version", "v", false, "show version information")
}
