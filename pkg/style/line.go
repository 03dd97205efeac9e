package style

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PrintHeading 打印一个区块标题
func PrintHeading(w io.Writer, title string) error {
	re := lipgloss.NewRenderer(w)
	style := re.NewStyle().
		Foreground(ColorAccentText).
		Background(ColorAccentPrimary).
		Bold(true).
		Padding(0, 1)
	_, err := fmt.Fprintln(w, style.Render(strings.ToUpper(title)))
	return err
}

// PrintNote 打印一行弱化的说明文字
func PrintNote(w io.Writer, format string, args ...any) error {
	re := lipgloss.NewRenderer(w)
	style := re.NewStyle().Foreground(ColorText).Italic(true)
	_, err := fmt.Fprintln(w, style.Render(fmt.Sprintf(format, args...)))
	return err
}
