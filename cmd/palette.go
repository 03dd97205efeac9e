package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yeisme/dcolor/pkg/configs"
	"github.com/yeisme/dcolor/pkg/palette"
	"github.com/yeisme/dcolor/pkg/style"
)

// paletteView 调色板的结构化输出
type paletteView struct {
	Name        string          `json:"name" yaml:"name" toml:"name"`
	Description string          `json:"description" yaml:"description" toml:"description"`
	Underline   bool            `json:"underline" yaml:"underline" toml:"underline"`
	Foreground  []palette.Entry `json:"foreground" yaml:"foreground" toml:"foreground"`
	Background  []palette.Entry `json:"background" yaml:"background" toml:"background"`
}

func newPaletteView(p *palette.Profile) paletteView {
	return paletteView{
		Name:        p.Name,
		Description: p.Description,
		Underline:   p.Underline,
		Foreground:  p.Foreground.Entries(),
		Background:  p.Background.Entries(),
	}
}

var paletteCmd = &cobra.Command{
	Use:   "palette [profile]",
	Short: "Show the Discord color palettes and their ANSI codes",
	Long: `dcolor palette lists the colors of a palette profile with their SGR codes.

Without arguments every profile is shown.

Examples:
  dcolor palette                 # all profiles as tables
  dcolor palette bright          # one profile
  dcolor palette classic --json  # structured output`,
	Aliases:   []string{"colors", "p"},
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: palette.Names(),
	RunE: func(cmd *cobra.Command, args []string) error {
		names := palette.Names()
		if len(args) == 1 {
			names = args[:1]
		}
		profiles := make([]*palette.Profile, 0, len(names))
		for _, n := range names {
			p, err := palette.Get(n)
			if err != nil {
				return err
			}
			profiles = append(profiles, p)
		}

		format := configs.GetOutputFormatFromFlags(cmd, "")
		if format == "" || format == configs.FormatText {
			for _, p := range profiles {
				if err := style.PrintPalette(cmd.OutOrStdout(), p, 0); err != nil {
					return err
				}
			}
			return nil
		}

		views := make([]paletteView, 0, len(profiles))
		for _, p := range profiles {
			views = append(views, newPaletteView(p))
		}
		if len(views) == 1 {
			return configs.OutputData(views[0], format, cmd.OutOrStdout())
		}
		// TOML 顶层必须是表
		return configs.OutputData(map[string][]paletteView{"profiles": views}, format, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(paletteCmd)

	paletteCmd.Flags().StringP("format", "f", "", fmt.Sprintf("Output format (%s)", strings.Join(configs.ValidFormats(), ", ")))
	paletteCmd.Flags().Bool("yaml", false, "Output in YAML format")
	paletteCmd.Flags().Bool("json", false, "Output in JSON format")
	paletteCmd.Flags().Bool("toml", false, "Output in TOML format")
}
