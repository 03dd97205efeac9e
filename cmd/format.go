package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	xterm "github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
	"github.com/yeisme/dcolor/pkg/generate"
	"github.com/yeisme/dcolor/pkg/palette"
	"github.com/yeisme/dcolor/pkg/picker"
)

var (
	formatOpts = generate.Options{}

	formatCmd = &cobra.Command{
		Use:   "format [text...]",
		Short: "Wrap text in a colored Discord ansi code block",
		Long: `dcolor format colors a span of the input text and prints a Discord "ansi"
code block that can be pasted directly into a Discord message.

Input is read from the arguments, from --file, or from stdin. Without a
selection the whole text is colored.

Colors can be given as palette hex values (#dc322f) or color names (red,
"light gray"); pass "?" to pick one interactively.

Examples:
  dcolor format "hello world" --end 5 --fg red          # color "hello"
  dcolor format "hello world" --select world --bg indigo --bold
  echo "deploy done" | dcolor format --fg green --preview
  dcolor format --file msg.txt --fg ? --bg ?             # interactive pick
  dcolor format --file msg.txt --watch --select ERROR --fg red
  dcolor format "hi" --output json                        # ansi + segments`,
		Aliases: []string{"f", "fmt"},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := formatOpts
			opts.Args = args
			applyFormatDefaults(cmd, &opts)

			var stdin io.Reader
			if len(args) == 0 && (opts.File == "" || opts.File == "-") && !xterm.IsTerminal(os.Stdin.Fd()) {
				stdin = cmd.InOrStdin()
			}
			opts.Pick = picker.Fuzzy

			runner, err := generate.NewRunner(opts, stdin, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return runner.Run(cmd.Context())
		},
	}
)

// applyFormatDefaults 未在命令行显式设置的选项使用配置文件中的值
func applyFormatDefaults(cmd *cobra.Command, opts *generate.Options) {
	cfg := dcolorCtx.Config.Format
	flags := cmd.Flags()
	if !flags.Changed("profile") {
		opts.Profile = cfg.Profile
	}
	if !flags.Changed("fg") {
		opts.Foreground = cfg.Foreground
	}
	if !flags.Changed("bg") {
		opts.Background = cfg.Background
	}
	if !flags.Changed("preview") {
		opts.Preview = cfg.Preview
	}
	if !flags.Changed("debounce") {
		opts.Debounce = time.Duration(cfg.WatchDebounce) * time.Millisecond
	}
}

func init() {
	rootCmd.AddCommand(formatCmd)

	flags := formatCmd.Flags()
	flags.StringVarP(&formatOpts.File, "file", "f", "", "read input text from `file` (\"-\" for stdin)")
	flags.StringVarP(&formatOpts.Select, "select", "s", "", "color the first occurrence of `text`")
	flags.IntVar(&formatOpts.Start, "start", -1, "selection start, in characters")
	flags.IntVar(&formatOpts.End, "end", -1, "selection end (exclusive), in characters")
	flags.StringVarP(&formatOpts.Profile, "profile", "p", palette.DefaultProfile,
		fmt.Sprintf("palette profile (%s)", strings.Join(palette.Names(), ", ")))
	flags.StringVar(&formatOpts.Foreground, "fg", "", "foreground color: hex, name or ? to pick")
	flags.StringVar(&formatOpts.Background, "bg", "", "background color: hex, name or ? to pick")
	flags.BoolVarP(&formatOpts.Bold, "bold", "b", false, "make the selection bold")
	flags.BoolVarP(&formatOpts.Underline, "underline", "u", false, "underline the selection (classic profile only)")
	flags.BoolVar(&formatOpts.Preview, "preview", false, "render a terminal preview to stderr")
	flags.StringVarP(&formatOpts.Output, "output", "o", "text",
		fmt.Sprintf("output format (%s)", strings.Join(generate.ValidOutputs(), ", ")))
	flags.BoolVarP(&formatOpts.Watch, "watch", "w", false, "re-format whenever --file changes")
	flags.DurationVar(&formatOpts.Debounce, "debounce", 300*time.Millisecond, "debounce for --watch")
	formatCmd.MarkFlagsMutuallyExclusive("select", "start")
	formatCmd.MarkFlagsMutuallyExclusive("select", "end")
	_ = formatCmd.RegisterFlagCompletionFunc("profile", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return palette.Names(), cobra.ShellCompDirectiveNoFileComp
	})
}
