package style

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yeisme/dcolor/pkg/ansi"
)

// RenderPreview 将片段按各自的样式渲染，返回带边框的预览框
//
// 颜色直接使用片段中的十六进制值，终端不支持真彩色时由 lipgloss 降级。
func RenderPreview(re *lipgloss.Renderer, segments []ansi.Segment) string {
	var b strings.Builder
	for _, seg := range segments {
		st := re.NewStyle().
			Foreground(lipgloss.Color(seg.Foreground)).
			Background(lipgloss.Color(seg.Background)).
			Bold(seg.Bold).
			Underline(seg.Underline)
		b.WriteString(st.Render(seg.Text))
	}

	box := re.NewStyle().
		Background(ColorPreviewBackground).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1)
	return box.Render(b.String())
}

// PrintPreview 渲染预览框并写入 w
func PrintPreview(w io.Writer, segments []ansi.Segment) error {
	if len(segments) == 0 {
		return nil
	}
	_, err := fmt.Fprintln(w, RenderPreview(lipgloss.NewRenderer(w), segments))
	return err
}
