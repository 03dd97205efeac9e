package style

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/yeisme/dcolor/pkg/ansi"
	"github.com/yeisme/dcolor/pkg/palette"
)

// maxSegmentText 片段表中文本列的最大显示宽度
const maxSegmentText = 32

// Swatch 返回一个以 hex 为背景色的色块
func Swatch(re *lipgloss.Renderer, hex string) string {
	return re.NewStyle().Background(lipgloss.Color(hex)).Render("    ")
}

// PaletteRows 生成调色板表格的行：角色、名称、十六进制、SGR 代码、色块
func PaletteRows(re *lipgloss.Renderer, p *palette.Profile) [][]string {
	var rows [][]string
	for _, role := range []palette.Role{palette.Foreground, palette.Background} {
		table := p.Table(role)
		def := table.Default()
		for _, e := range table.Entries() {
			name := e.Name
			if e.Hex == def.Hex {
				name += " (default)"
			}
			rows = append(rows, []string{role.String(), name, e.Hex, e.Code, Swatch(re, e.Hex)})
		}
	}
	return rows
}

// PrintPalette 以表格形式输出一个调色板配置
func PrintPalette(w io.Writer, p *palette.Profile, width int) error {
	if err := PrintHeading(w, p.Name); err != nil {
		return err
	}
	underline := "no"
	if p.Underline {
		underline = "yes"
	}
	if err := PrintNote(w, "%s (underline: %s)", p.Description, underline); err != nil {
		return err
	}
	headers := []string{"role", "name", "hex", "code", "swatch"}
	return PrintTable(w, headers, PaletteRows(lipgloss.NewRenderer(w), p), width)
}

// SegmentText 将片段文本转为单行并按显示宽度截断
func SegmentText(text string) string {
	text = strings.ReplaceAll(text, "\n", "⏎")
	return runewidth.Truncate(text, maxSegmentText, "…")
}

// PrintSegments 以表格形式输出预览片段
func PrintSegments(w io.Writer, segments []ansi.Segment, width int) error {
	headers := []string{"#", "text", "fg", "bg", "bold", "underline"}
	rows := make([][]string, 0, len(segments))
	for i, seg := range segments {
		rows = append(rows, []string{
			fmt.Sprint(i),
			SegmentText(seg.Text),
			seg.Foreground,
			seg.Background,
			fmt.Sprint(seg.Bold),
			fmt.Sprint(seg.Underline),
		})
	}
	return PrintTable(w, headers, rows, width)
}
