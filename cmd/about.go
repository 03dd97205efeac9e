package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yeisme/dcolor/pkg/palette"
	"github.com/yeisme/dcolor/pkg/style"
)

const aboutMarkdown = `# dcolor

Creates colored Discord messages using the ANSI color codes available on the
latest Discord desktop versions.

## How to use

1. Write your text.
2. Select a part of it (` + "`--select`" + ` or ` + "`--start`/`--end`" + `) and assign colors
   with ` + "`--fg`" + ` and ` + "`--bg`" + `. Without a selection the whole text is colored.
3. Optionally add ` + "`--bold`" + ` or ` + "`--underline`" + `.
4. Copy the output and send it in a Discord message.

## Output

The text is wrapped in a code block tagged ` + "`ansi`" + `; the selected part is
surrounded by an escape sequence such as ` + "`ESC[1;31;40m`" + ` and a reset
` + "`ESC[0m`" + `. Codes are always written in the order bold, underline,
foreground, background.

## Profiles

%s
`

var (
	aboutWidth int
	aboutTheme string

	aboutCmd = &cobra.Command{
		Use:   "about",
		Short: "Explain how dcolor and Discord ansi blocks work",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var profiles strings.Builder
			for _, n := range palette.Names() {
				p, _ := palette.Get(n)
				fmt.Fprintf(&profiles, "- **%s**: %s\n", p.Name, p.Description)
			}
			return style.RenderMarkdown(cmd.OutOrStdout(), fmt.Sprintf(aboutMarkdown, profiles.String()), aboutWidth, aboutTheme)
		},
	}
)

func init() {
	rootCmd.AddCommand(aboutCmd)

	aboutCmd.Flags().IntVar(&aboutWidth, "width", 0, "wrap width (0 = terminal width)")
	aboutCmd.Flags().StringVar(&aboutTheme, "theme", "dracula", "glamour theme (dracula, dark, light, notty)")
}
